package trig

// SinPoly evaluates the degree-11 truncated sine series at x.
// Powers are built by a multiply ladder rather than nested Horner form.
// For |x| <= π/4 the omitted x¹³ term bounds the absolute error below 1e-9.
func SinPoly(x float64) float64 {
	x2 := x * x
	x3 := x * x2
	x5 := x3 * x2
	x7 := x5 * x2
	x9 := x7 * x2
	x11 := x9 * x2

	s := x
	s += x3 * C3
	s += x5 * C5
	s += x7 * C7
	s += x9 * C9
	s += x11 * C11

	return s
}

// CosPoly evaluates the degree-10 truncated cosine series at x,
// using the same power-ladder scheme as SinPoly.
func CosPoly(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	x6 := x2 * x4
	x8 := x2 * x6
	x10 := x2 * x8

	s := 1.0
	s += x2 * C2
	s += x4 * C4
	s += x6 * C6
	s += x8 * C8
	s += x10 * C10

	return s
}

// Eval reconstructs the sine of the original angle from a reduced angle
// and the flags produced by Reduce.
func Eval(reduced float64, sign, useSin bool) float64 {
	var s float64
	if useSin {
		s = SinPoly(reduced)
	} else {
		s = CosPoly(reduced)
	}

	if !sign {
		s = -s
	}

	return s
}

// Sin approximates the sine of a finite angle by range reduction followed
// by truncated Taylor evaluation. The absolute error versus math.Sin stays
// below 1e-9.
func Sin(x float64) float64 {
	return Eval(Reduce(x))
}
