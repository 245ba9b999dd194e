package bezier

import "slices"

// Bezier is a Bézier curve of arbitrary degree, generic over its point type.
//
// The curve is defined solely by its control points; the degree is one less
// than their number. The control point sequence is fixed at construction and
// derived curves from [Bezier.Split] and [Bezier.Differentiate] are
// independent values, never aliases of the parent.
type Bezier[P Point[P]] struct {
	points []P
}

// NewBezier returns the Bézier curve defined by the given control points.
//
// At least one control point is required. Constructing a curve with no
// control points is a programming error; it is not checked here, evaluation
// will panic.
func NewBezier[P Point[P]](points ...P) Bezier[P] {
	return Bezier[P]{points: slices.Clone(points)}
}

// Degree returns the degree of the curve, one less than the number of
// control points.
func (b Bezier[P]) Degree() int {
	return len(b.points) - 1
}

// ControlPoints returns a copy of the curve's control points.
func (b Bezier[P]) ControlPoints() []P {
	return slices.Clone(b.points)
}

// Start returns the first control point, which the curve interpolates at
// t = 0.
func (b Bezier[P]) Start() P {
	return b.points[0]
}

// End returns the last control point, which the curve interpolates at t = 1.
func (b Bezier[P]) End() P {
	return b.points[len(b.points)-1]
}

// Eval evaluates the curve at parameter t using De Casteljau's algorithm,
// repeatedly interpolating a scratch copy of the control points until a
// single point remains.
//
// The curve is defined for any real t; values outside [0, 1] are
// extrapolations.
func (b Bezier[P]) Eval(t float64) P {
	p := slices.Clone(b.points)
	for i := 1; i < len(p); i++ {
		for j := 0; j < len(p)-i; j++ {
			p[j] = p[j].Scale(1.0 - t).Add(p[j+1].Scale(t))
		}
	}
	return p[0]
}

// Split subdivides the curve at parameter t into two curves of the same
// degree. The left curve traces the parent over [0, t] and the right curve
// over [t, 1]:
//
//	left.Eval(s)  == b.Eval(s*t)
//	right.Eval(s) == b.Eval(t + s*(1-t))
//
// up to floating-point error.
func (b Bezier[P]) Split(t float64) (Bezier[P], Bezier[P]) {
	n := len(b.points)
	left := make([]P, n)
	right := make([]P, n)
	scratch := slices.Clone(b.points)

	// Each De Casteljau pass shrinks the pyramid by one point. The first
	// remaining point of each level is a control point of the left curve, the
	// last one a control point of the right curve (in reverse order).
	for i := 1; i <= n; i++ {
		left[i-1] = scratch[0]
		right[n-i] = scratch[n-i]
		for j := 0; j < n-i; j++ {
			scratch[j] = scratch[j].Scale(1.0 - t).Add(scratch[j+1].Scale(t))
		}
	}
	return Bezier[P]{points: left}, Bezier[P]{points: right}
}

// Differentiate returns the derivative curve, which has one control point
// fewer. Control point i of the derivative is the difference of control
// points i+1 and i, scaled by the number of control points.
//
// Evaluating the derivative yields the curve's unnormalized tangent at t.
func (b Bezier[P]) Differentiate() Bezier[P] {
	n := len(b.points)
	points := make([]P, n-1)
	for i := range points {
		points[i] = b.points[i+1].Sub(b.points[i]).Scale(float64(n))
	}
	return Bezier[P]{points: points}
}
