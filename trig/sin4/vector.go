package sin4

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-trig/trig"
)

// Vector evaluates the degree-11 sine polynomial across portable vector
// lanes. The lane width follows the best SIMD level go-highway detects at
// startup; a masked tail covers lengths that are not a lane multiple.
// Inputs must already lie in [-π/4, π/4].
func Vector(dst, x []float64) {
	checkLen(dst, x)

	c3 := hwy.Set(trig.C3)
	c5 := hwy.Set(trig.C5)
	c7 := hwy.Set(trig.C7)
	c9 := hwy.Set(trig.C9)
	c11 := hwy.Set(trig.C11)

	sinLanes := func(x1 hwy.Vec[float64]) hwy.Vec[float64] {
		x2 := hwy.Mul(x1, x1)
		x3 := hwy.Mul(x1, x2)
		x5 := hwy.Mul(x2, x3)
		x7 := hwy.Mul(x2, x5)
		x9 := hwy.Mul(x2, x7)
		x11 := hwy.Mul(x2, x9)

		s := x1
		s = hwy.FMA(x3, c3, s)
		s = hwy.FMA(x5, c5, s)
		s = hwy.FMA(x7, c7, s)
		s = hwy.FMA(x9, c9, s)
		s = hwy.FMA(x11, c11, s)

		return s
	}

	hwy.ProcessWithTail[float64](len(x),
		func(offset int) {
			hwy.Store(sinLanes(hwy.Load(x[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			s := sinLanes(hwy.MaskLoad(mask, x[offset:]))
			hwy.MaskStore(mask, s, dst[offset:])
		},
	)
}

// CosVector evaluates the degree-10 cosine polynomial across portable
// vector lanes. Inputs must already lie in [-π/4, π/4].
func CosVector(dst, x []float64) {
	checkLen(dst, x)

	one := hwy.Set(1.0)
	c2 := hwy.Set(trig.C2)
	c4 := hwy.Set(trig.C4)
	c6 := hwy.Set(trig.C6)
	c8 := hwy.Set(trig.C8)
	c10 := hwy.Set(trig.C10)

	cosLanes := func(x1 hwy.Vec[float64]) hwy.Vec[float64] {
		x2 := hwy.Mul(x1, x1)
		x4 := hwy.Mul(x2, x2)
		x6 := hwy.Mul(x2, x4)
		x8 := hwy.Mul(x2, x6)
		x10 := hwy.Mul(x2, x8)

		s := one
		s = hwy.FMA(x2, c2, s)
		s = hwy.FMA(x4, c4, s)
		s = hwy.FMA(x6, c6, s)
		s = hwy.FMA(x8, c8, s)
		s = hwy.FMA(x10, c10, s)

		return s
	}

	hwy.ProcessWithTail[float64](len(x),
		func(offset int) {
			hwy.Store(cosLanes(hwy.Load(x[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			s := cosLanes(hwy.MaskLoad(mask, x[offset:]))
			hwy.MaskStore(mask, s, dst[offset:])
		},
	)
}
