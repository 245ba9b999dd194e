package bezier

import "math"

// epsilon is the fixed tolerance used for the "is approximately zero"
// comparisons in the solver and the degeneracy predicates. Exact comparison
// with zero is never used for these decisions.
const epsilon = 1e-12

// RealRoots finds the real roots of a cubic equation.
//
// Returns values of t for which a t³ + b t² + c t + d = 0, along with the
// number of roots found. At most three roots are reported and duplicates of a
// repeated root are suppressed; the roots are in no particular order.
//
// The solver degrades gracefully by degree: when the leading coefficients
// vanish (relative to the fixed epsilon), the equation is solved as a
// quadratic, linear, or constant equation instead. The cubic case uses
// Cardano's method, falling back to the trigonometric branch when the
// discriminant is negative and all three roots are real.
//
// The function never fails; an empty result means the equation has no real
// solution. Callers filter the roots to whatever sub-domain applies, such as
// the open interval (0, 1) for curve extrema.
func RealRoots(a, b, c, d float64) ([3]float64, int) {
	var out [3]float64

	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			if math.Abs(c) < epsilon {
				// No solutions.
				return out, 0
			}
			// Linear equation.
			out[0] = -d / c
			return out, 1
		}
		// Quadratic equation.
		delta := c*c - 4.0*b*d
		switch {
		case delta > 0.0:
			sq := math.Sqrt(delta)
			out[0] = (-c - sq) / (2.0 * b)
			out[1] = (-c + sq) / (2.0 * b)
			return out, 2
		case math.Abs(delta) < epsilon:
			out[0] = -c / (2.0 * b)
			return out, 1
		default:
			return out, 0
		}
	}

	// Cubic equation, Cardano's method.
	bn := b / a
	cn := c / a
	dn := d / a

	delta0 := (3.0*cn - bn*bn) / 9.0
	delta1 := (9.0*bn*cn - 27.0*dn - 2.0*bn*bn*bn) / 54.0
	delta01 := delta0*delta0*delta0 + delta1*delta1

	if delta01 >= 0.0 {
		sq := math.Sqrt(delta01)
		s := math.Cbrt(delta1 + sq)
		t := math.Cbrt(delta1 - sq)

		out[0] = -bn/3.0 + (s + t)
		n := 1
		// Don't add the repeated root when s + t == 0.
		if math.Abs(s-t) < epsilon && math.Abs(s+t) >= epsilon {
			out[1] = -bn/3.0 - (s+t)/2.0
			n = 2
		}
		return out, n
	}

	// Three distinct real roots, trigonometric branch.
	theta := math.Acos(delta1 / math.Sqrt(-delta0*delta0*delta0))
	twoSqrtDelta0 := 2.0 * math.Sqrt(-delta0)
	out[0] = twoSqrtDelta0*math.Cos(theta/3.0) - bn/3.0
	out[1] = twoSqrtDelta0*math.Cos((theta+2.0*math.Pi)/3.0) - bn/3.0
	out[2] = twoSqrtDelta0*math.Cos((theta+4.0*math.Pi)/3.0) - bn/3.0
	return out, 3
}
