package bezier

// CubicBezier is a cubic Bézier curve defined by four points: the starting
// point, two successive control points and the ending point.
//
// The curve is defined by the equation
//
//	P(t) = (1-t)³ start + 3 t (1-t)² ctrl1 + 3 t² (1-t) ctrl2 + t³ end
//
// for t in [0, 1]; evaluation outside that interval extrapolates.
//
// Degenerate curves (coincident or collinear control points) are detected by
// the predicate methods, not rejected at construction.
type CubicBezier[P Point[P]] struct {
	Start P
	Ctrl1 P
	Ctrl2 P
	End   P
}

// Eval evaluates the curve at parameter t by direct evaluation of the
// Bernstein polynomial.
//
// Direct evaluation is not numerically stable near t = 0 and t = 1; prefer
// [CubicBezier.EvalCasteljau].
func (c CubicBezier[P]) Eval(t float64) P {
	mt := 1.0 - t
	return c.Start.Scale(mt * mt * mt).
		Add(c.Ctrl1.Scale(3.0 * t * mt * mt)).
		Add(c.Ctrl2.Scale(3.0 * t * t * mt)).
		Add(c.End.Scale(t * t * t))
}

// EvalCasteljau evaluates the curve at parameter t using three unrolled
// levels of De Casteljau interpolation.
func (c CubicBezier[P]) EvalCasteljau(t float64) P {
	// First level, from each control point to its successor.
	ab := c.Start.Add(c.Ctrl1.Sub(c.Start).Scale(t))
	bc := c.Ctrl1.Add(c.Ctrl2.Sub(c.Ctrl1).Scale(t))
	cd := c.Ctrl2.Add(c.End.Sub(c.Ctrl2).Scale(t))
	// Second level.
	abc := ab.Add(bc.Sub(ab).Scale(t))
	bcd := bc.Add(cd.Sub(bc).Scale(t))
	// Third level, the point on the curve.
	return abc.Add(bcd.Sub(abc).Scale(t))
}

// Axis returns the coordinate of axis i of the curve point at parameter t,
// without constructing the point. It agrees with c.Eval(t).Axis(i) up to
// floating-point error.
func (c CubicBezier[P]) Axis(t float64, axis int) float64 {
	t2 := t * t
	t3 := t2 * t
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	return c.Start.Axis(axis)*mt3 +
		c.Ctrl1.Axis(axis)*3.0*mt2*t +
		c.Ctrl2.Axis(axis)*3.0*mt*t2 +
		c.End.Axis(axis)*t3
}

// Arclen approximates the arc length of the curve by summing the euclidean
// distances between steps+1 equally spaced samples of the curve.
//
// The approximation improves monotonically with the number of steps but is
// never exact. At 1000 steps the result is good to about two decimal places.
func (c CubicBezier[P]) Arclen(steps int) float64 {
	stepsize := 1.0 / float64(steps)
	var arclen float64
	prev := c.EvalCasteljau(0.0)
	for i := 1; i <= steps; i++ {
		cur := c.EvalCasteljau(float64(i) * stepsize)
		arclen += Distance(prev, cur)
		prev = cur
	}
	return arclen
}

// Split subdivides the curve at parameter t into two cubic curves, the left
// tracing the parent over [0, t] and the right over [t, 1]. This is
// [Bezier.Split] unrolled for four control points.
func (c CubicBezier[P]) Split(t float64) (CubicBezier[P], CubicBezier[P]) {
	ab := c.Start.Add(c.Ctrl1.Sub(c.Start).Scale(t))
	bc := c.Ctrl1.Add(c.Ctrl2.Sub(c.Ctrl1).Scale(t))
	cd := c.Ctrl2.Add(c.End.Sub(c.Ctrl2).Scale(t))
	abc := ab.Add(bc.Sub(ab).Scale(t))
	bcd := bc.Add(cd.Sub(bc).Scale(t))
	mid := abc.Add(bcd.Sub(abc).Scale(t))

	return CubicBezier[P]{
			Start: c.Start,
			Ctrl1: ab,
			Ctrl2: abc,
			End:   mid,
		}, CubicBezier[P]{
			Start: mid,
			Ctrl1: bcd,
			Ctrl2: cd,
			End:   c.End,
		}
}

// Differentiate returns the derivative of the curve, a quadratic Bézier
// whose evaluation at t is the curve's tangent.
func (c CubicBezier[P]) Differentiate() QuadBezier[P] {
	return QuadBezier[P]{
		Start: c.Ctrl1.Sub(c.Start).Scale(3.0),
		Ctrl:  c.Ctrl2.Sub(c.Ctrl1).Scale(3.0),
		End:   c.End.Sub(c.Ctrl2).Scale(3.0),
	}
}

// TangentAxis returns the coordinate of axis i of the curve's tangent at
// parameter t, in closed form. It is a shortcut for
// c.Differentiate().Axis(t, i).
func (c CubicBezier[P]) TangentAxis(t float64, axis int) float64 {
	t2 := t * t
	c0 := -3.0*t2 + 6.0*t - 3.0
	c1 := 9.0*t2 - 12.0*t + 3.0
	c2 := -9.0*t2 + 6.0*t
	c3 := 3.0 * t2
	return c.Start.Axis(axis)*c0 +
		c.Ctrl1.Axis(axis)*c1 +
		c.Ctrl2.Axis(axis)*c2 +
		c.End.Axis(axis)*c3
}

// Baseline returns the line segment from the curve's start to its end point.
func (c CubicBezier[P]) Baseline() LineSegment[P] {
	return LineSegment[P]{
		Start: c.Start,
		End:   c.End,
	}
}

// IsClosed reports whether start and end point coincide within the given
// tolerance.
func (c CubicBezier[P]) IsClosed(tolerance float64) bool {
	return c.Start.Sub(c.End).SquaredLength() <= tolerance*tolerance
}

// IsPoint reports whether the whole set of control points can be considered
// one singular point within the given tolerance.
func (c CubicBezier[P]) IsPoint(tolerance float64) bool {
	t2 := tolerance * tolerance
	// Use <= so that the tolerance can be zero.
	return c.Start.Sub(c.End).SquaredLength() <= t2 &&
		c.Start.Sub(c.Ctrl1).SquaredLength() <= t2 &&
		c.End.Sub(c.Ctrl2).SquaredLength() <= t2
}

// IsLinear reports whether the curve is a straight line within the given
// tolerance, i.e. whether both control points lie within distance tolerance
// of the baseline.
//
// A curve whose start and end point (nearly) coincide has no meaningful
// baseline and reports false.
func (c CubicBezier[P]) IsLinear(tolerance float64) bool {
	if c.Start.Sub(c.End).SquaredLength() < epsilon {
		return false
	}
	return c.controlPointsCollinear(tolerance)
}

func (c CubicBezier[P]) controlPointsCollinear(tolerance float64) bool {
	baseline := c.Baseline()
	return baseline.DistanceToPoint(c.Ctrl1) <= tolerance &&
		baseline.DistanceToPoint(c.Ctrl2) <= tolerance
}

// SolveAxis returns the parameters in the open interval (0, 1) at which the
// given axis of the curve takes the given value, by solving the axis
// polynomial's real roots.
//
// Degenerate curves, where all control points coincide or are collinear,
// yield no solutions.
func (c CubicBezier[P]) SolveAxis(value float64, axis int) ([3]float64, int) {
	var out [3]float64
	var outN int
	if c.IsPoint(0.0) || c.controlPointsCollinear(0.0) {
		return out, 0
	}

	// Polynomial coefficients of the curve's axis component.
	s := c.Start.Axis(axis)
	c1 := c.Ctrl1.Axis(axis)
	c2 := c.Ctrl2.Axis(axis)
	e := c.End.Axis(axis)
	a := -s + 3.0*c1 - 3.0*c2 + e
	b := 3.0*s - 6.0*c1 + 3.0*c2
	cc := -3.0*s + 3.0*c1
	d := s - value

	roots, n := RealRoots(a, b, cc, d)
	for _, root := range roots[:n] {
		if root > 0.0 && root < 1.0 {
			out[outN] = root
			outN++
		}
	}
	return out, outN
}

// Extent is the (min, max) interval covered by one axis of a bounding box.
type Extent struct {
	Min float64
	Max float64
}

// BoundingBox returns the exact bounding box of the curve over t in [0, 1],
// one [Extent] per dimension of the point type.
//
// The extrema of a cubic's components occur only at roots of its derivative
// or at the endpoints; interior control points never bound the curve. Per
// axis, the derivative's polynomial coefficients are handed to [RealRoots],
// roots in the open interval (0, 1) are evaluated on the original curve, and
// the bounds are the minimum and maximum of those values and the endpoint
// coordinates.
//
// The box is recomputed on every call, never cached.
func (c CubicBezier[P]) BoundingBox() []Extent {
	derivative := c.Differentiate()
	bounds := make([]Extent, c.Start.Dim())
	for axis := range bounds {
		lo := min(c.Start.Axis(axis), c.End.Axis(axis))
		hi := max(c.Start.Axis(axis), c.End.Axis(axis))
		roots, n := derivative.AxisRoots(axis)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				v := c.EvalCasteljau(t).Axis(axis)
				lo = min(lo, v)
				hi = max(hi, v)
			}
		}
		bounds[axis] = Extent{Min: lo, Max: hi}
	}
	return bounds
}
