package icongen

// LinearGradient is a two-stop linear color transition between two points.
// The color at a point is found by projecting it onto the Start–End axis
// and interpolating between From and To with the clamped projection
// parameter.
type LinearGradient struct {
	Start Point // Start point of the gradient (color From)
	End   Point // End point of the gradient (color To)
	From  RGBA
	To    RGBA
}

// ColorAt returns the gradient color at the given point.
func (g LinearGradient) ColorAt(p Point) RGBA {
	// Handle zero-length gradient (start == end).
	axis := g.End.Sub(g.Start)
	lengthSq := axis.Dot(axis)
	if lengthSq == 0 {
		return g.From
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Clamp(p.Sub(g.Start).Dot(axis)/lengthSq, 0, 1)
	return g.From.Lerp(g.To, t)
}
