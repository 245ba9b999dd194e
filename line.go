package bezier

import "math"

// LineSegment is the straight line between two points. It is the degree-1
// Bézier curve and the baseline of the degeneracy tests on higher-degree
// curves.
type LineSegment[P Point[P]] struct {
	Start P
	End   P
}

// Eval linearly interpolates between the segment's start and end point.
// Values of t outside [0, 1] are extrapolations.
func (l LineSegment[P]) Eval(t float64) P {
	return l.Start.Add(l.End.Sub(l.Start).Scale(t))
}

// Length returns the length of the segment.
func (l LineSegment[P]) Length() float64 {
	return math.Sqrt(l.End.Sub(l.Start).SquaredLength())
}

// Axis returns the coordinate of axis i of the point at parameter t.
func (l LineSegment[P]) Axis(t float64, axis int) float64 {
	s := l.Start.Axis(axis)
	return s + (l.End.Axis(axis)-s)*t
}

// DistanceToPoint returns the distance from pt to the nearest point on the
// segment.
//
// The nearest point is found by projecting pt onto the segment's carrier
// line; projections falling outside the segment are clamped to the nearer
// endpoint.
func (l LineSegment[P]) DistanceToPoint(pt P) float64 {
	d := l.End.Sub(l.Start)
	dd := d.SquaredLength()
	if dd == 0.0 {
		// Degenerate segment.
		return Distance(pt, l.Start)
	}
	t := dot(d, pt.Sub(l.Start)) / dd
	switch {
	case t <= 0.0:
		return Distance(pt, l.Start)
	case t >= 1.0:
		return Distance(pt, l.End)
	default:
		return Distance(pt, l.Eval(t))
	}
}
