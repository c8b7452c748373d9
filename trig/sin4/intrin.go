package sin4

var (
	// intrinImpl is the hardware-backed kernel, registered by init in the
	// build-tagged intrin files when the CPU provides wide enough lanes.
	intrinImpl        func(dst, x []float64)
	intrinAccelerated bool
)

// Intrin evaluates the degree-3 truncation x + C3·x³ using explicit SIMD
// lanes when available, falling back to Reference otherwise. It keeps only
// the first series term beyond x and is therefore deliberately less
// accurate than Taylor and Vector; it exists to benchmark the raw
// instruction-level path.
func Intrin(dst, x []float64) {
	if intrinImpl != nil {
		intrinImpl(dst, x)
		return
	}

	Reference(dst, x)
}

// IntrinAccelerated reports whether Intrin is backed by hardware SIMD on
// this system. When it returns false, Intrin delegates to Reference.
func IntrinAccelerated() bool {
	return intrinAccelerated
}
