package icongen

import "math"

// Point represents a 2D point or vector in canvas space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Clamp restricts x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistanceToSegment returns the Euclidean distance from p to the closest
// point on the segment a–b. The projection parameter is clamped to [0, 1];
// a degenerate (zero-length) segment falls back to point-to-point distance.
func DistanceToSegment(p, a, b Point) float64 {
	v := b.Sub(a)
	w := p.Sub(a)
	c2 := v.Dot(v)
	if c2 <= 1e-9 {
		return w.Length()
	}
	t := Clamp(w.Dot(v)/c2, 0, 1)
	q := Point{X: a.X + t*v.X, Y: a.Y + t*v.Y}
	return p.Sub(q).Length()
}

// SDFRoundRect computes the signed distance from p to a rounded rectangle
// with top-left corner origin, dimensions w×h, and corner radius r.
// Negative values are inside, positive values are outside.
func SDFRoundRect(p, origin Point, w, h, r float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	cx := origin.X + w/2
	cy := origin.Y + h/2
	dx := math.Abs(p.X-cx) - (w/2 - r)
	dy := math.Abs(p.Y-cy) - (h/2 - r)

	// Outside the corner region: max(dx, dy) gives the distance to the edge.
	// Inside the corner region: the Euclidean distance to the corner circle.
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - r
}

// RectContains reports whether p lies inside the axis-aligned rectangle
// with top-left corner origin and dimensions w×h. Boundaries are inclusive.
func RectContains(p, origin Point, w, h float64) bool {
	return origin.X <= p.X && p.X <= origin.X+w &&
		origin.Y <= p.Y && p.Y <= origin.Y+h
}

// Gaussian evaluates an unnormalised 2D Gaussian centered at center with
// standard deviation sigma. The peak value at the center is 1; the result
// is a soft falloff weight, not a probability density.
func Gaussian(p, center Point, sigma float64) float64 {
	d := p.Sub(center)
	return math.Exp(-(d.X*d.X + d.Y*d.Y) / (2 * sigma * sigma))
}
