// Package bezier provides parametric polynomial curves that are generic over
// their point type: Bézier curves of arbitrary degree, the cubic Bézier
// specialization ubiquitous in vector graphics, CAD and animation, and a
// B-spline collaborator. It serves as numerical infrastructure for geometry
// consumers such as renderers, path flattening, curve fitting and
// intersection engines.
//
// # Points
//
// Curves are polymorphic over any implementation of the small [Point]
// contract: component-wise add, sub and scale, a per-axis read, the squared
// length, and a fixed dimensionality. [Point2] and [Point3] are reference
// implementations backed by fixed-size arrays; embedding applications can use
// their own point or vector types instead.
//
// # Curves
//
// [Bezier] is the degree-N curve over N control points, evaluated and
// subdivided with De Casteljau's algorithm. [CubicBezier] adds a closed-form
// Bernstein evaluation path, arc-length approximation, degeneracy predicates
// and exact bounding boxes on top of the unrolled De Casteljau operations.
// [QuadBezier] is produced by differentiating a cubic, and [LineSegment] by
// differentiating a quadratic.
//
// Every curve is an immutable value; evaluation, splitting and
// differentiation return new values that never alias their parent, so curves
// can be shared between goroutines freely.
//
// # Root solving
//
// [RealRoots] finds the real roots of polynomials up to degree three, using
// Cardano's method with its trigonometric branch and degrading gracefully as
// the leading coefficients vanish. The cubic bounding-box computation is its
// main consumer.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package bezier
