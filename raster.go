package icongen

// DefaultSupersample is the sub-grid edge length used for the shipped
// icons: 64 scene samples per pixel.
const DefaultSupersample = 8

// minAverageAlpha guards the un-premultiply division. Averaged pixels
// with alpha at or below this are written as fully transparent black.
const minAverageAlpha = 1e-6

// Render rasterises the icon scene into a size×size pixmap.
//
// Each output pixel is estimated from supersample² scene samples placed
// on a uniform sub-grid covering the pixel's footprint in canvas space.
// The samples are averaged in premultiplied space, un-premultiplied, and
// quantized to 8-bit channels. Render is deterministic: the same
// (size, supersample) pair always yields a byte-identical pixmap.
func Render(size, supersample int) *Pixmap {
	pm := NewPixmap(size, size)
	scale := Canvas / float64(size)
	inv := 1.0 / float64(supersample)
	n := float64(supersample * supersample)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var acc Premul
			for sy := 0; sy < supersample; sy++ {
				for sx := 0; sx < supersample; sx++ {
					p := Pt(
						(float64(x)+(float64(sx)+0.5)*inv)*scale,
						(float64(y)+(float64(sy)+0.5)*inv)*scale,
					)
					s := SampleScene(p)
					acc.R += s.R
					acc.G += s.G
					acc.B += s.B
					acc.A += s.A
				}
			}

			avg := Premul{R: acc.R / n, G: acc.G / n, B: acc.B / n, A: acc.A / n}
			var c RGBA
			if avg.A > minAverageAlpha {
				c = avg.Unpremultiply()
				c.R = Clamp(c.R, 0, 1)
				c.G = Clamp(c.G, 0, 1)
				c.B = Clamp(c.B, 0, 1)
			}
			c.A = Clamp(avg.A, 0, 1)
			pm.SetPixel(x, y, c)
		}
	}

	Logger().Debug("rendered icon scene",
		"size", size, "supersample", supersample)
	return pm
}
