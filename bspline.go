package bezier

import (
	"slices"
	"sort"
)

// BSpline is a B-spline curve of chooseable degree over a knot vector.
//
// The knots must be sorted in non-decreasing order. The curve is only defined
// over the knot domain; evaluation outside of it clamps to the nearest valid
// knot span.
type BSpline[P Point[P]] struct {
	degree int
	points []P
	knots  []float64
}

// NewBSpline returns the B-spline curve interpolating the control points with
// a piecewise polynomial of the given degree within the intervals specified
// by the knot vector.
//
// A valid curve requires at least one more control point than the degree, and
// exactly len(points) + degree + 1 knots. The second return value is false if
// either requirement is violated.
func NewBSpline[P Point[P]](degree int, points []P, knots []float64) (BSpline[P], bool) {
	if len(points) <= degree {
		// Too few control points for the degree.
		return BSpline[P]{}, false
	}
	if len(knots) != len(points)+degree+1 {
		return BSpline[P]{}, false
	}
	return BSpline[P]{
		degree: degree,
		points: slices.Clone(points),
		knots:  slices.Clone(knots),
	}, true
}

// Degree returns the degree of the spline's polynomial pieces.
func (bs BSpline[P]) Degree() int {
	return bs.degree
}

// ControlPoints returns a copy of the spline's control points.
func (bs BSpline[P]) ControlPoints() []P {
	return slices.Clone(bs.points)
}

// Knots returns a copy of the spline's knot vector.
func (bs BSpline[P]) Knots() []float64 {
	return slices.Clone(bs.knots)
}

// KnotDomain returns the minimum and maximum knot values between which the
// curve is defined.
func (bs BSpline[P]) KnotDomain() (float64, float64) {
	return bs.knots[bs.degree], bs.knots[len(bs.knots)-1-bs.degree]
}

// knotSpan returns the index of the knot span containing t, found by binary
// search for the first knot greater than t. The result is clamped to the
// spans of the knot domain.
func (bs BSpline[P]) knotSpan(t float64) int {
	span := sort.Search(len(bs.knots), func(i int) bool {
		return bs.knots[i] > t
	})
	if span < bs.degree+1 {
		span = bs.degree + 1
	}
	if span > len(bs.knots)-bs.degree-1 {
		span = len(bs.knots) - bs.degree - 1
	}
	return span
}

// Eval evaluates the curve at parameter t, which should lie within
// [BSpline.KnotDomain].
//
// This computes de Boor's recurrence iteratively, from the bottom up: the
// degree+1 control points supporting the knot span of t are interpolated in
// place, one level per degree, until a single point remains.
func (bs BSpline[P]) Eval(t float64) P {
	span := bs.knotSpan(t)
	tmp := make([]P, bs.degree+1)
	for j := range tmp {
		tmp[j] = bs.points[j+span-bs.degree-1]
	}
	for lvl := 0; lvl < bs.degree; lvl++ {
		k := lvl + 1
		for j := 0; j < bs.degree-lvl; j++ {
			i := j + k + span - bs.degree
			alpha := (t - bs.knots[i-1]) / (bs.knots[i+bs.degree-k] - bs.knots[i-1])
			tmp[j] = tmp[j].Add(tmp[j+1].Sub(tmp[j]).Scale(alpha))
		}
	}
	return tmp[0]
}
