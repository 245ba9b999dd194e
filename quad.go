package bezier

// QuadBezier is a quadratic Bézier curve defined by its start point, a single
// control point, and its end point.
//
// Quadratic curves mostly appear as the derivative of a [CubicBezier]; the
// bounding-box computation consumes the polynomial coefficients of exactly
// that derivative.
type QuadBezier[P Point[P]] struct {
	Start P
	Ctrl  P
	End   P
}

// Eval evaluates the curve at parameter t by direct evaluation of the
// Bernstein polynomial. Values of t outside [0, 1] are extrapolations.
func (q QuadBezier[P]) Eval(t float64) P {
	mt := 1.0 - t
	return q.Start.Scale(mt * mt).
		Add(q.Ctrl.Scale(2.0 * mt * t)).
		Add(q.End.Scale(t * t))
}

// EvalCasteljau evaluates the curve at parameter t using two unrolled levels
// of De Casteljau interpolation. It is numerically more stable than
// [QuadBezier.Eval] near t = 0 and t = 1.
func (q QuadBezier[P]) EvalCasteljau(t float64) P {
	ab := q.Start.Add(q.Ctrl.Sub(q.Start).Scale(t))
	bc := q.Ctrl.Add(q.End.Sub(q.Ctrl).Scale(t))
	return ab.Add(bc.Sub(ab).Scale(t))
}

// Axis returns the coordinate of axis i of the curve point at parameter t.
// It agrees with q.Eval(t).Axis(i) up to floating-point error.
func (q QuadBezier[P]) Axis(t float64, axis int) float64 {
	mt := 1.0 - t
	return q.Start.Axis(axis)*mt*mt +
		q.Ctrl.Axis(axis)*2.0*mt*t +
		q.End.Axis(axis)*t*t
}

// Split subdivides the curve at parameter t into two quadratic curves, the
// left tracing the parent over [0, t] and the right over [t, 1].
func (q QuadBezier[P]) Split(t float64) (QuadBezier[P], QuadBezier[P]) {
	ab := q.Start.Add(q.Ctrl.Sub(q.Start).Scale(t))
	bc := q.Ctrl.Add(q.End.Sub(q.Ctrl).Scale(t))
	mid := ab.Add(bc.Sub(ab).Scale(t))
	return QuadBezier[P]{Start: q.Start, Ctrl: ab, End: mid},
		QuadBezier[P]{Start: mid, Ctrl: bc, End: q.End}
}

// Differentiate returns the derivative of the curve, a line segment whose
// evaluation at t is the curve's tangent.
func (q QuadBezier[P]) Differentiate() LineSegment[P] {
	return LineSegment[P]{
		Start: q.Ctrl.Sub(q.Start).Scale(2.0),
		End:   q.End.Sub(q.Ctrl).Scale(2.0),
	}
}

// coefficients returns the points holding the per-axis polynomial
// coefficients a t² + b t + c of the curve.
func (q QuadBezier[P]) coefficients() (a, b, c P) {
	a = q.Start.Sub(q.Ctrl.Scale(2.0)).Add(q.End)
	b = q.Ctrl.Sub(q.Start).Scale(2.0)
	c = q.Start
	return a, b, c
}

// AxisRoots returns the parameters at which the given axis of the curve
// crosses zero, by feeding the curve's per-axis polynomial coefficients to
// [RealRoots]. The roots are not filtered to [0, 1].
func (q QuadBezier[P]) AxisRoots(axis int) ([3]float64, int) {
	a, b, c := q.coefficients()
	return RealRoots(0.0, a.Axis(axis), b.Axis(axis), c.Axis(axis))
}
