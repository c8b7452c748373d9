package trig

import "math"

// Reduce maps a finite angle into [-π/4, π/4] by repeated π/2 steps and
// returns the reduced angle together with the flags needed to reconstruct
// sin(angle): sign reports whether the polynomial result keeps its sign,
// and useSin selects between the sine and cosine series.
//
// Angles already inside the interval (boundaries inclusive) are returned
// unchanged with sign=true, useSin=true. Each step moves the angle by
// exactly π/2, so very large inputs cost proportionally many iterations;
// there is no closed-form fast path. NaN and infinite inputs are
// undefined: the loop would not terminate.
func Reduce(angle float64) (reduced float64, sign, useSin bool) {
	sign = true
	useSin = true

	for angle > math.Pi/4 || angle < -math.Pi/4 {
		if angle < -math.Pi/4 {
			if useSin {
				sign = !sign
			}
			angle += math.Pi / 2
		} else {
			if !useSin {
				sign = !sign
			}
			angle -= math.Pi / 2
		}
		useSin = !useSin
	}

	return angle, sign, useSin
}
