package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicEvalEquivalence(t *testing.T) {
	// Both evaluation paths must agree for well conditioned control points;
	// they differ only where numerical stability becomes an issue for the
	// direct Bernstein evaluation.
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(1.1, -1),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}

	const maxErr = 1e-14
	const nsteps = 1000
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		err := curve.EvalCasteljau(ts).Sub(curve.Eval(ts))
		for i := 0; i < err.Dim(); i++ {
			if e := math.Abs(err.Axis(i)); e >= maxErr {
				t.Fatalf("t=%g axis %d: error %g", ts, i, e)
			}
		}
	}
}

func TestCubicAxis(t *testing.T) {
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(1.1, -1),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}
	const maxErr = 1e-14
	const nsteps = 100
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		p := curve.Eval(ts)
		for i := 0; i < p.Dim(); i++ {
			if err := math.Abs(curve.Axis(ts, i) - p.Axis(i)); err >= maxErr {
				t.Errorf("t=%g axis %d: error %g", ts, i, err)
			}
		}
	}
}

func TestCubicTangentAxis(t *testing.T) {
	// The closed-form per-axis tangent must match evaluating the derivative
	// curve.
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(1.1, -1),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}
	deriv := curve.Differentiate()

	const maxErr = 1e-12
	const nsteps = 1000
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		d := deriv.Eval(ts)
		for i := 0; i < d.Dim(); i++ {
			if err := math.Abs(curve.TangentAxis(ts, i) - d.Axis(i)); err >= maxErr {
				t.Fatalf("t=%g axis %d: got %g, want %g", ts, i, curve.TangentAxis(ts, i), d.Axis(i))
			}
		}
	}
}

func TestCubicSplitEquivalence(t *testing.T) {
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(2.9, 0),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}
	at := 0.5
	left, right := curve.Split(at)

	// Mapping t to t/2 inevitably accumulates rounding error, so compare the
	// difference of the two points against an absolute bound instead of
	// comparing parameters.
	const maxErr = 1e-14
	const nsteps = 1000
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		errLeft := curve.Eval(ts * at).Sub(left.Eval(ts))
		errRight := curve.Eval(at + ts*(1.0-at)).Sub(right.Eval(ts))
		for i := 0; i < errLeft.Dim(); i++ {
			if err := math.Abs(errLeft.Axis(i)); err >= maxErr {
				t.Fatalf("left, t=%g axis %d: error %g", ts, i, err)
			}
			if err := math.Abs(errRight.Axis(i)); err >= maxErr {
				t.Fatalf("right, t=%g axis %d: error %g", ts, i, err)
			}
		}
	}
}

// circleQuadrants returns four cubic curves approximating the unit circle
// with minimal radial drift, one per quadrant.
//
// See https://spencermortensen.com/articles/bezier-circle/ for the control
// point constant.
func circleQuadrants() [4]CubicBezier[Point2] {
	const c = 0.551915024494
	return [4]CubicBezier[Point2]{
		{Pt2(0, 1), Pt2(c, 1), Pt2(1, c), Pt2(1, 0)},
		{Pt2(1, 0), Pt2(1, -c), Pt2(c, -1), Pt2(0, -1)},
		{Pt2(0, -1), Pt2(-c, -1), Pt2(-1, -c), Pt2(-1, 0)},
		{Pt2(-1, 0), Pt2(-1, c), Pt2(-c, 1), Pt2(0, 1)},
	}
}

func TestCircleApproximationError(t *testing.T) {
	// Radial distance of a point from the unit circle's contour.
	contour := func(p Point2) float64 {
		return math.Sqrt(p.SquaredLength()) - 1.0
	}

	const maxDriftPercent = 0.019608 // maximum radial drift in percent
	const maxErr = maxDriftPercent * 0.01

	const nsteps = 1000
	for qi, quadrant := range circleQuadrants() {
		for step := 0; step <= nsteps; step++ {
			ts := float64(step) / nsteps
			if err := math.Abs(contour(quadrant.Eval(ts))); err > maxErr {
				t.Fatalf("quadrant %d, t=%g: radial error %g, want at most %g", qi, ts, err, maxErr)
			}
		}
	}
}

func TestCircleCircumference(t *testing.T) {
	// The summed arc length of the four quadrants approximates the unit
	// circle's circumference. The approximation is piecewise linear, so the
	// result is only good to about two decimal places at 1000 steps.
	const nsteps = 1000
	const maxErr = 1e-2

	var circumference float64
	for _, quadrant := range circleQuadrants() {
		circumference += quadrant.Arclen(nsteps)
	}
	if err := math.Abs(circumference - 2.0*math.Pi); err > maxErr {
		t.Errorf("got circumference %g, want 2π within %g", circumference, maxErr)
	}
}

func TestCubicArclenImproves(t *testing.T) {
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(1.1, -1),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}
	// Inscribed polylines only grow as the sampling refines.
	prev := 0.0
	for _, steps := range []int{10, 100, 1000} {
		got := curve.Arclen(steps)
		if got < prev {
			t.Fatalf("arc length shrank from %g to %g at %d steps", prev, got, steps)
		}
		prev = got
	}
}

func TestCubicBoundingBoxContains(t *testing.T) {
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(2.9, 0),
		Ctrl2: Pt2(4.3, -3),
		End:   Pt2(3.2, 4),
	}
	bounds := curve.BoundingBox()
	if len(bounds) != 2 {
		t.Fatalf("got %d extents, want 2", len(bounds))
	}

	const maxErr = 1e-2
	const nsteps = 100
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		p := curve.EvalCasteljau(ts)
		for i := 0; i < p.Dim(); i++ {
			v := p.Axis(i)
			if v < bounds[i].Min-maxErr || v > bounds[i].Max+maxErr {
				t.Fatalf("t=%g axis %d: %g outside [%g, %g]", ts, i, v, bounds[i].Min, bounds[i].Max)
			}
		}
	}
}

func TestCubicBoundingBoxMonotone(t *testing.T) {
	// A curve that is monotone in both axes is bounded by its endpoints.
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 0),
		Ctrl1: Pt2(1, 1),
		Ctrl2: Pt2(2, 2),
		End:   Pt2(3, 4),
	}
	want := []Extent{{Min: 0, Max: 3}, {Min: 0, Max: 4}}
	diff(t, want, curve.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBoundingBoxDegenerate(t *testing.T) {
	// All control points coincide; the box collapses to the point.
	pt := Pt2(2, -1)
	curve := CubicBezier[Point2]{pt, pt, pt, pt}
	want := []Extent{{Min: 2, Max: 2}, {Min: -1, Max: -1}}
	diff(t, want, curve.BoundingBox())
}

func TestCubicBoundingBox3D(t *testing.T) {
	curve := CubicBezier[Point3]{
		Start: Pt3(0, 0, 1),
		Ctrl1: Pt3(1, 2, -3),
		Ctrl2: Pt3(2, -2, 5),
		End:   Pt3(3, 0, 0),
	}
	bounds := curve.BoundingBox()
	if len(bounds) != 3 {
		t.Fatalf("got %d extents, want 3", len(bounds))
	}

	const maxErr = 1e-2
	const nsteps = 200
	for step := 0; step <= nsteps; step++ {
		ts := float64(step) / nsteps
		p := curve.EvalCasteljau(ts)
		for i := 0; i < p.Dim(); i++ {
			v := p.Axis(i)
			if v < bounds[i].Min-maxErr || v > bounds[i].Max+maxErr {
				t.Fatalf("t=%g axis %d: %g outside [%g, %g]", ts, i, v, bounds[i].Min, bounds[i].Max)
			}
		}
	}
}

func TestCubicPredicates(t *testing.T) {
	pt := Pt2(1, 1)
	point := CubicBezier[Point2]{pt, pt, pt, pt}
	if !point.IsPoint(0) {
		t.Error("coincident control points: expected IsPoint")
	}
	if point.IsLinear(1e-9) {
		t.Error("coincident control points: IsLinear must be false without a baseline")
	}
	if !point.IsClosed(0) {
		t.Error("coincident control points: expected IsClosed")
	}

	line := CubicBezier[Point2]{Pt2(0, 0), Pt2(1, 1), Pt2(2, 2), Pt2(3, 3)}
	if !line.IsLinear(1e-12) {
		t.Error("collinear control points: expected IsLinear")
	}
	if line.IsPoint(1e-9) {
		t.Error("collinear control points: IsPoint must be false")
	}

	curved := CubicBezier[Point2]{Pt2(0, 0), Pt2(1, 2), Pt2(2, -2), Pt2(3, 0)}
	if curved.IsLinear(1e-9) {
		t.Error("curved: IsLinear must be false")
	}
	// With a generous tolerance the control points count as on the baseline.
	if !curved.IsLinear(2.5) {
		t.Error("curved: expected IsLinear at tolerance 2.5")
	}

	closed := CubicBezier[Point2]{Pt2(0, 0), Pt2(1, 2), Pt2(2, -2), Pt2(1e-8, 0)}
	if !closed.IsClosed(1e-6) {
		t.Error("expected IsClosed within tolerance")
	}
	if closed.IsClosed(1e-12) {
		t.Error("IsClosed must respect the tolerance")
	}
}

func TestCubicSolveAxis(t *testing.T) {
	curve := CubicBezier[Point2]{
		Start: Pt2(0, 1.77),
		Ctrl1: Pt2(1.1, -1),
		Ctrl2: Pt2(4.3, 3),
		End:   Pt2(3.2, -4),
	}

	// The x component of this curve is strictly increasing over a prefix of
	// the parameter range; solving for a sampled value must recover the
	// parameter.
	const t0 = 0.3
	value := curve.Axis(t0, 0)
	roots, n := curve.SolveAxis(value, 0)
	if n == 0 {
		t.Fatal("got no solutions")
	}
	found := false
	for _, root := range roots[:n] {
		if math.Abs(root-t0) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want a solution near %g", roots[:n], t0)
	}
}

func TestCubicSolveAxisDegenerate(t *testing.T) {
	line := CubicBezier[Point2]{Pt2(0, 0), Pt2(1, 1), Pt2(2, 2), Pt2(3, 3)}
	if _, n := line.SolveAxis(1.5, 0); n != 0 {
		t.Errorf("collinear curve: got %d solutions, want 0", n)
	}
	pt := Pt2(1, 1)
	point := CubicBezier[Point2]{pt, pt, pt, pt}
	if _, n := point.SolveAxis(1, 0); n != 0 {
		t.Errorf("point curve: got %d solutions, want 0", n)
	}
}

func TestCubicSplitMatchesGeneric(t *testing.T) {
	points := []Point2{Pt2(0, 1.77), Pt2(2.9, 0), Pt2(4.3, 3), Pt2(3.2, -4)}
	cubic := CubicBezier[Point2]{points[0], points[1], points[2], points[3]}
	generic := NewBezier(points...)

	at := 0.375
	cl, cr := cubic.Split(at)
	gl, gr := generic.Split(at)

	const maxErr = 1e-14
	glPoints := gl.ControlPoints()
	grPoints := gr.ControlPoints()
	for i, pair := range [][2]Point2{
		{cl.Start, glPoints[0]},
		{cl.Ctrl1, glPoints[1]},
		{cl.Ctrl2, glPoints[2]},
		{cl.End, glPoints[3]},
		{cr.Start, grPoints[0]},
		{cr.Ctrl1, grPoints[1]},
		{cr.Ctrl2, grPoints[2]},
		{cr.End, grPoints[3]},
	} {
		for axis := 0; axis < 2; axis++ {
			if err := math.Abs(pair[0].Axis(axis) - pair[1].Axis(axis)); err >= maxErr {
				t.Errorf("control point %d axis %d: error %g", i, axis, err)
			}
		}
	}
}

func TestCubicBaseline(t *testing.T) {
	curve := CubicBezier[Point2]{Pt2(0, 0), Pt2(1, 2), Pt2(2, -2), Pt2(3, 0)}
	base := curve.Baseline()
	diff(t, curve.Start, base.Start)
	diff(t, curve.End, base.End)
}
