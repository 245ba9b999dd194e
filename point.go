package bezier

import (
	"fmt"
	"math"
)

// Point describes fixed-dimensionality points that curves are generic over.
//
// The type parameter is self-referential: a concrete point type Pt implements
// Point[Pt]. All operations are pure and return new values; the zero value of
// an implementation must be the origin.
//
// Axis must report exactly the coordinate used by the arithmetic operations,
// with no hidden transforms, as the solvers recombine per-axis reads with
// whole-point arithmetic.
type Point[P any] interface {
	// Add returns the component-wise sum of the two points.
	Add(o P) P
	// Sub returns the component-wise difference of the two points.
	Sub(o P) P
	// Scale returns the point with every coordinate multiplied by c.
	Scale(c float64) P
	// Axis returns the coordinate of axis i, for i in [0, Dim).
	Axis(i int) float64
	// SquaredLength returns the squared euclidean distance to the origin.
	SquaredLength() float64
	// Dim returns the dimensionality of the point type. It is constant for
	// any given implementation.
	Dim() int
}

// Distance returns the euclidean distance between two points.
func Distance[P Point[P]](a, b P) float64 {
	return math.Sqrt(a.Sub(b).SquaredLength())
}

// dot is the per-axis product sum of two equal-dimension points interpreted
// as vectors.
func dot[P Point[P]](a, b P) float64 {
	var sum float64
	for i := 0; i < a.Dim(); i++ {
		sum += a.Axis(i) * b.Axis(i)
	}
	return sum
}

// Point2 is a two-dimensional point backed by a fixed-size array. It is the
// reference implementation of [Point]; embedding applications are free to use
// their own point types instead.
type Point2 [2]float64

// Pt2 returns the point (x, y).
func Pt2(x, y float64) Point2 {
	return Point2{x, y}
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt[0], pt[1])
}

func (pt Point2) Add(o Point2) Point2 {
	return Point2{pt[0] + o[0], pt[1] + o[1]}
}

func (pt Point2) Sub(o Point2) Point2 {
	return Point2{pt[0] - o[0], pt[1] - o[1]}
}

func (pt Point2) Scale(c float64) Point2 {
	return Point2{pt[0] * c, pt[1] * c}
}

func (pt Point2) Axis(i int) float64 {
	return pt[i]
}

// SquaredLength returns the squared euclidean distance to the origin.
//
// This function is more efficient than squaring [Point2.Distance] to the zero
// point.
func (pt Point2) SquaredLength() float64 {
	return pt[0]*pt[0] + pt[1]*pt[1]
}

func (pt Point2) Dim() int {
	return 2
}

// Distance returns the euclidean distance between two points.
func (pt Point2) Distance(o Point2) float64 {
	return math.Hypot(pt[0]-o[0], pt[1]-o[1])
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point2) IsInf() bool {
	return math.IsInf(pt[0], 0) || math.IsInf(pt[1], 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point2) IsNaN() bool {
	return math.IsNaN(pt[0]) || math.IsNaN(pt[1])
}

// Point3 is a three-dimensional point backed by a fixed-size array,
// implementing [Point].
type Point3 [3]float64

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt[0], pt[1], pt[2])
}

func (pt Point3) Add(o Point3) Point3 {
	return Point3{pt[0] + o[0], pt[1] + o[1], pt[2] + o[2]}
}

func (pt Point3) Sub(o Point3) Point3 {
	return Point3{pt[0] - o[0], pt[1] - o[1], pt[2] - o[2]}
}

func (pt Point3) Scale(c float64) Point3 {
	return Point3{pt[0] * c, pt[1] * c, pt[2] * c}
}

func (pt Point3) Axis(i int) float64 {
	return pt[i]
}

func (pt Point3) SquaredLength() float64 {
	return pt[0]*pt[0] + pt[1]*pt[1] + pt[2]*pt[2]
}

func (pt Point3) Dim() int {
	return 3
}
