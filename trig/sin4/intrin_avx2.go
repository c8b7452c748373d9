//go:build amd64 && goexperiment.simd

package sin4

import (
	"simd/archsimd"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-trig/trig"
)

var intrinC3 = archsimd.BroadcastFloat64x4(trig.C3)

func init() {
	if hwy.CurrentLevel() >= hwy.DispatchAVX2 {
		intrinImpl = intrinAVX2
		intrinAccelerated = true
	}
}

// intrinAVX2 evaluates x + C3·x³ across Float64x4 lanes, with a scalar
// loop for any tail shorter than four lanes.
func intrinAVX2(dst, x []float64) {
	checkLen(dst, x)

	n := len(x)
	for i := 0; i+4 <= n; i += 4 {
		x1 := archsimd.LoadFloat64x4Slice(x[i:])
		x2 := x1.Mul(x1)
		x3 := x1.Mul(x2)

		s := x3.MulAdd(intrinC3, x1)
		s.StoreSlice(dst[i:])
	}

	for i := n &^ 3; i < n; i++ {
		v := x[i]
		dst[i] = v + trig.C3*v*v*v
	}
}
