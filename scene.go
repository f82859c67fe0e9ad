package icongen

// The icon scene: a rounded-square badge with a diagonal gradient
// background, three soft atmospheric glows, edge lighting, a faint
// diagonal guide line, the "E" and "X" monogram glyphs, and a small
// specular spark. All constants are in canvas units.

// Silhouette mask.
var maskOrigin = Pt(1.5, 1.5)

const (
	maskSide   = 29.0
	maskRadius = 7.0
)

// Background gradient (deep navy to cyan-teal). The axis is scaled so the
// projection parameter equals (0.62·x + 0.38·y)/Canvas, the diagonal
// weighting of the icon design.
const bgAxisScale = Canvas / (0.62*0.62 + 0.38*0.38)

var bgGradient = LinearGradient{
	Start: Pt(0, 0),
	End:   Pt(0.62*bgAxisScale, 0.38*bgAxisScale),
	From:  RGB(0.035, 0.075, 0.155),
	To:    RGB(0.035, 0.47, 0.57),
}

// Atmospheric glow centers.
var (
	glowTopLeft     = Pt(9.0, 7.5)
	glowBottomRight = Pt(25.5, 24.5)
	glowCenter      = Pt(17.0, 16.0)
)

// "E" glyph: boolean union of four axis-aligned bars.
var glyphEBars = [4]struct {
	origin Point
	w, h   float64
}{
	{Pt(6.0, 7.0), 3.9, 18.0},  // spine
	{Pt(6.0, 7.0), 11.4, 3.7},  // top arm
	{Pt(6.0, 14.0), 9.0, 3.6},  // middle arm
	{Pt(6.0, 21.2), 11.4, 3.8}, // bottom arm
}

var (
	glyphEFillColor = RGB(0.97, 0.985, 1.0)
	glyphEGlowColor = RGB(0.70, 0.92, 1.0)
)

// "X" glyph: two diagonal strokes, each a wide soft glow band plus a
// narrower near-opaque core.
var (
	xStrokeLeftA  = Pt(18.0, 7.8)
	xStrokeLeftB  = Pt(26.1, 24.1)
	xStrokeRightA = Pt(26.0, 8.0)
	xStrokeRightB = Pt(18.2, 24.1)
)

const (
	xCoreWidth = 1.75
	xGlowWidth = 3.0
)

var sparkCenter = Pt(21.9, 15.9)

// SilhouetteSDF returns the signed distance from p to the icon's
// rounded-square silhouette boundary. Negative inside, positive outside.
func SilhouetteSDF(p Point) float64 {
	return SDFRoundRect(p, maskOrigin, maskSide, maskSide, maskRadius)
}

// layerFunc evaluates one visual layer at p. sdf is the silhouette signed
// distance at p (never positive when a layer runs). ok reports whether the
// layer contributes at this point.
type layerFunc func(p Point, sdf float64) (src Premul, ok bool)

// sceneLayers lists the visual layers in strict back-to-front order.
// SampleScene folds them through Over; reordering entries changes the
// rendered icon.
var sceneLayers = []layerFunc{
	background,
	innerEdgeHighlight,
	lowerEdgeShadow,
	diagonalGuide,
	glyphEGlow,
	glyphEFill,
	glyphXLeftGlow,
	glyphXRightGlow,
	glyphXLeftCore,
	glyphXRightCore,
	centerSpark,
}

// SampleScene evaluates the icon at a continuous canvas coordinate and
// returns the accumulated premultiplied color. It is a pure function:
// identical coordinates always produce identical output, which is what
// makes renders reproducible byte-for-byte.
func SampleScene(p Point) Premul {
	sdf := SilhouetteSDF(p)
	if sdf > 0 {
		return Premul{}
	}

	var out Premul
	for _, layer := range sceneLayers {
		if src, ok := layer(p, sdf); ok {
			out = Over(out, src)
		}
	}
	return out
}

// background paints the diagonal gradient brightened by three Gaussian
// glows. Glow terms are summed per channel before a single clamp;
// clamping per term would clip the combined intensity where glows overlap.
func background(p Point, _ float64) (Premul, bool) {
	bg := bgGradient.ColorAt(p)
	tl := Gaussian(p, glowTopLeft, 7.5)
	br := Gaussian(p, glowBottomRight, 8.5)
	mid := Gaussian(p, glowCenter, 10.0)
	bg.R = Clamp(bg.R+0.10*tl+0.04*mid+0.03*br, 0, 1)
	bg.G = Clamp(bg.G+0.08*tl+0.06*mid+0.07*br, 0, 1)
	bg.B = Clamp(bg.B+0.13*tl+0.08*mid+0.03*br, 0, 1)
	return PM(bg, 1.0), true
}

// innerEdgeHighlight is a thin bright band just inside the silhouette,
// fading linearly to zero over its thickness.
func innerEdgeHighlight(p Point, sdf float64) (Premul, bool) {
	depth := -sdf
	if depth >= 1.15 {
		return Premul{}, false
	}
	return PM(RGB(0.88, 0.96, 1.0), (1.15-depth)/1.15*0.20), true
}

// lowerEdgeShadow darkens the inside edge along the bottom half, weighted
// by vertical position.
func lowerEdgeShadow(p Point, sdf float64) (Premul, bool) {
	depth := -sdf
	if depth >= 2.4 || p.Y <= 15.5 {
		return Premul{}, false
	}
	return PM(Black, (2.4-depth)/2.4*0.10*((p.Y-15.5)/16.5)), true
}

// diagonalGuide is a faint stroke crossing the badge.
func diagonalGuide(p Point, _ float64) (Premul, bool) {
	d := DistanceToSegment(p, Pt(6.5, 26.0), Pt(27.5, 5.5))
	if d > 0.65 {
		return Premul{}, false
	}
	return PM(RGB(0.75, 0.95, 1.0), 0.08*(1.0-d/0.65)), true
}

func glyphEMask(p Point) bool {
	for _, bar := range glyphEBars {
		if RectContains(p, bar.origin, bar.w, bar.h) {
			return true
		}
	}
	return false
}

// glyphEGlow lays a soft cyan wash under the E; glyphEFill paints the
// near-opaque glyph on top. Two separate Over applications, so the fill
// still picks up a hint of the glow at its edges after supersampling.
func glyphEGlow(p Point, _ float64) (Premul, bool) {
	if !glyphEMask(p) {
		return Premul{}, false
	}
	return PM(glyphEGlowColor, 0.12), true
}

func glyphEFill(p Point, _ float64) (Premul, bool) {
	if !glyphEMask(p) {
		return Premul{}, false
	}
	return PM(glyphEFillColor, 0.98), true
}

func glyphXLeftGlow(p Point, _ float64) (Premul, bool) {
	d := DistanceToSegment(p, xStrokeLeftA, xStrokeLeftB)
	if d > xGlowWidth {
		return Premul{}, false
	}
	return PM(RGB(0.09, 0.98, 0.76), 0.16*(1.0-d/xGlowWidth)), true
}

func glyphXRightGlow(p Point, _ float64) (Premul, bool) {
	d := DistanceToSegment(p, xStrokeRightA, xStrokeRightB)
	if d > xGlowWidth {
		return Premul{}, false
	}
	return PM(RGB(0.20, 0.76, 1.0), 0.16*(1.0-d/xGlowWidth)), true
}

// The X cores interpolate their fill color by normalised vertical
// position, which keeps the strokes legible at 16 px.
func glyphXLeftCore(p Point, _ float64) (Premul, bool) {
	d := DistanceToSegment(p, xStrokeLeftA, xStrokeLeftB)
	if d > xCoreWidth {
		return Premul{}, false
	}
	c := RGB(0.10, 0.96, 0.70).Lerp(RGB(0.40, 1.0, 0.88), Clamp(p.Y/Canvas, 0, 1))
	return PM(c, 0.98), true
}

func glyphXRightCore(p Point, _ float64) (Premul, bool) {
	d := DistanceToSegment(p, xStrokeRightA, xStrokeRightB)
	if d > xCoreWidth {
		return Premul{}, false
	}
	c := RGB(0.36, 0.80, 1.0).Lerp(RGB(0.60, 0.88, 1.0), Clamp(p.Y/Canvas, 0, 1))
	return PM(c, 0.98), true
}

// centerSpark is a tiny specular highlight. Contributions below the
// threshold are skipped so the spark stays tightly bounded.
func centerSpark(p Point, _ float64) (Premul, bool) {
	w := Gaussian(p, sparkCenter, 0.75)
	if w <= 0.02 {
		return Premul{}, false
	}
	return PM(White, 0.28*w), true
}
