package trig

// Taylor series coefficients for sine (odd powers) and cosine (even
// powers) on [-π/4, π/4]:
//
//	sin(x) = x + C3·x³ + C5·x⁵ + C7·x⁷ + C9·x⁹ + C11·x¹¹
//	cos(x) = 1 + C2·x² + C4·x⁴ + C6·x⁶ + C8·x⁸ + C10·x¹⁰
//
// The constants are the exact reciprocal factorials rounded once to
// float64. They are exported so the batched kernels in trig/sin4 can
// broadcast them into vector lanes.
const (
	C3  = -1.0 / (2 * 3)
	C5  = 1.0 / (2 * 3 * 4 * 5)
	C7  = -1.0 / (2 * 3 * 4 * 5 * 6 * 7)
	C9  = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9)
	C11 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10 * 11)

	C2  = -1.0 / 2
	C4  = 1.0 / (2 * 3 * 4)
	C6  = -1.0 / (2 * 3 * 4 * 5 * 6)
	C8  = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8)
	C10 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10)
)
