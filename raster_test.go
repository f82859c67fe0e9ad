package icongen

import (
	"bytes"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestRender_Deterministic(t *testing.T) {
	a := Render(32, DefaultSupersample)
	b := Render(32, DefaultSupersample)
	if diff := cmp.Diff(a.Scanlines(), b.Scanlines()); diff != "" {
		t.Errorf("two renders differ (-first +second):\n%s", diff)
	}
}

func TestRender_ScanlineLayout(t *testing.T) {
	for _, size := range []int{16, 32} {
		pm := Render(size, 2)
		rows := pm.Scanlines()
		rowLen := size*4 + 1
		if len(rows) != size*rowLen {
			t.Fatalf("size %d: scanline buffer is %d bytes, want %d", size, len(rows), size*rowLen)
		}
		for y := 0; y < size; y++ {
			if filter := rows[y*rowLen]; filter != 0 {
				t.Errorf("size %d row %d: filter byte = %d, want 0 (None)", size, y, filter)
			}
		}
	}
}

func TestRender_SilhouetteCorners(t *testing.T) {
	pm := Render(32, DefaultSupersample)

	// Pixel (1,1) covers canvas [1,2)×[1,2), which the corner rounding
	// cuts off entirely: every sample lands outside the silhouette.
	for _, px := range []image.Point{{0, 0}, {1, 1}, {31, 31}, {30, 0}} {
		if a := pm.GetPixel(px.X, px.Y).A; a != 0 {
			t.Errorf("pixel %v alpha = %v, want 0 (outside silhouette)", px, a)
		}
	}

	// The center pixel covers canvas [16,17)×[16,17), fully inside the
	// opaque background.
	if a := pm.GetPixel(16, 16).A; a != 1 {
		t.Errorf("center pixel alpha = %v, want 1 (opaque)", a)
	}
}

func TestRender_EdgePixelsArePartial(t *testing.T) {
	pm := Render(32, DefaultSupersample)
	// A pixel straddling the straight top edge (canvas y ≈ 1.5) must be
	// neither fully transparent nor fully opaque after supersampling.
	c := pm.GetPixel(16, 1)
	if c.A <= 0 || c.A >= 1 {
		t.Errorf("top edge pixel alpha = %v, want partial coverage", c.A)
	}
}

// opaqueFraction counts fully opaque pixels; coveredFraction counts any
// pixel the silhouette touches.
func opaqueFraction(pm *Pixmap) float64 {
	return alphaFraction(pm, func(a uint8) bool { return a == 255 })
}

func coveredFraction(pm *Pixmap) float64 {
	return alphaFraction(pm, func(a uint8) bool { return a > 0 })
}

func alphaFraction(pm *Pixmap, pred func(uint8) bool) float64 {
	data := pm.Data()
	count := 0
	for i := 3; i < len(data); i += 4 {
		if pred(data[i]) {
			count++
		}
	}
	return float64(count) / float64(pm.Width()*pm.Height())
}

func TestRender_CrossSizeSilhouetteConsistency(t *testing.T) {
	pm16 := Render(16, DefaultSupersample)
	pm32 := Render(32, DefaultSupersample)

	// Covered fractions drift more across scales: a 16 px pixel is a 2×2
	// canvas-unit footprint, so the partial ring claims more of the grid.
	if d := absDiff(coveredFraction(pm16), coveredFraction(pm32)); d > 0.15 {
		t.Errorf("covered fraction differs by %v across sizes: 16px %v, 32px %v",
			d, coveredFraction(pm16), coveredFraction(pm32))
	}
	if d := absDiff(opaqueFraction(pm16), opaqueFraction(pm32)); d > 0.05 {
		t.Errorf("opaque fraction differs by %v across sizes: 16px %v, 32px %v",
			d, opaqueFraction(pm16), opaqueFraction(pm32))
	}
}

func TestRender_DownsampleMatchesSmallRender(t *testing.T) {
	// Downsampling the 32 px render should land close to the direct
	// 16 px render; both are estimates of the same continuous scene.
	pm16 := Render(16, DefaultSupersample)
	pm32 := Render(32, DefaultSupersample)

	down := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	draw.CatmullRom.Scale(down, down.Rect, pm32.ToImage(), pm32.Bounds(), draw.Src, nil)

	var total, n float64
	direct := pm16.Data()
	for i := 3; i < len(direct); i += 4 {
		total += absDiff(float64(direct[i]), float64(down.Pix[i]))
		n++
	}
	if mean := total / n; mean > 8 {
		t.Errorf("mean alpha difference between downsampled 32px and direct 16px render = %v, want ≤ 8", mean)
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 3, RGBA{R: 1, G: 0.5, B: 0, A: 1})

	got := pm.GetPixel(2, 3)
	if got.R != 1 || got.A != 1 {
		t.Errorf("GetPixel = %v", got)
	}
	if absDiff(got.G, 0.5) > 1.0/255 {
		t.Errorf("GetPixel green = %v, want ≈ 0.5", got.G)
	}

	// Out-of-range writes are ignored, reads return Transparent.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(0, 4, White)
	if got := pm.GetPixel(7, 7); got != Transparent {
		t.Errorf("out-of-range GetPixel = %v, want Transparent", got)
	}
}

func TestPixmap_ScanlinesMatchData(t *testing.T) {
	pm := Render(16, 2)
	rows := pm.Scanlines()
	data := pm.Data()
	rowLen := 16 * 4
	for y := 0; y < 16; y++ {
		row := rows[y*(rowLen+1)+1 : (y+1)*(rowLen+1)]
		if !bytes.Equal(row, data[y*rowLen:(y+1)*rowLen]) {
			t.Fatalf("row %d scanline bytes differ from pixel data", y)
		}
	}
}
