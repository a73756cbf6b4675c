// Package geom provides the low-level planar geometry used by the line
// segmenter: circle fitting through point triples and signed turning-radius
// estimation. Points are carried as complex values internally so the
// circumcentre formula stays a handful of complex multiplications.
package geom

import (
	"math"
)

// Point is a 2D survey position in real-world distance units (metres),
// already scalar-corrected by the container layer.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) complex() complex128 { return complex(p.X, p.Y) }

// collinearTol is the minimum |Im(w)| below which a point triple is treated
// as collinear. Positions are metre-scale, so anything this small is noise.
const collinearTol = 1e-9

// Circle is the result of fitting a circle through three points. A degenerate
// fit (coincident or collinear points) has Radius = +Inf and an undefined
// Center; callers must check Degenerate before using Center.
type Circle struct {
	Center Point
	Radius float64
}

// Degenerate reports whether the fit produced no finite circle.
func (c Circle) Degenerate() bool { return math.IsInf(c.Radius, 1) }

// FitCircle computes the circle through the three points z1, z2, z3.
// Coincident or near-collinear triples yield a degenerate result (infinite
// radius, undefined centre) — a locally straight path, never an error.
//
// With w = (z3-z1)/(z2-z1) the circumcentre is
//
//	c = (z2-z1)·(w - |w|²) / (2i·Im(w)) + z1
//
// and the radius is |z1 - c|.
func FitCircle(z1, z2, z3 Point) Circle {
	if z1 == z2 || z2 == z3 || z1 == z3 {
		return Circle{Radius: math.Inf(1)}
	}
	a := z1.complex()
	b := z2.complex()
	d := z3.complex()

	w := (d - a) / (b - a)
	im := imag(w)
	if math.Abs(im) < collinearTol {
		return Circle{Radius: math.Inf(1)}
	}

	norm := real(w)*real(w) + im*im
	c := (b-a)*(w-complex(norm, 0))/complex(0, 2*im) + a
	center := Point{real(c), imag(c)}
	return Circle{Center: center, Radius: z1.Dist(center)}
}

// SignedRadius estimates the signed turning radius at z2 from the triple
// (z1, z2, z3), where z1 precedes and z3 follows z2 along the path. The
// magnitude is the fitted circle radius; the sign encodes turn handedness
// relative to the direction of travel. Degenerate triples return +Inf.
func SignedRadius(z1, z2, z3 Point) float64 {
	c := FitCircle(z1, z2, z3)
	if c.Degenerate() {
		return c.Radius
	}
	cross := (z3.X-z1.X)*(z1.Y-c.Center.Y) - (z1.X-c.Center.X)*(z3.Y-z1.Y)
	if cross > 0 {
		return c.Radius
	}
	return -c.Radius
}
