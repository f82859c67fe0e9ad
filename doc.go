// Package icongen procedurally renders the exitem "EX" monogram icon and
// packs it into a minimal PNG container.
//
// # Overview
//
// The icon is defined as a pure function from a continuous canvas
// coordinate to a premultiplied RGBA color (SampleScene). Render
// supersamples that function over a pixel grid and averages in
// premultiplied space, and EncodePNG wraps the resulting scanlines into a
// signature + IHDR + IDAT + IEND byte stream. There is no drawing context
// and no mutable scene state; calling the same functions twice produces
// byte-identical output.
//
// # Quick Start
//
//	pm := icongen.Render(32, icongen.DefaultSupersample)
//	png, err := icongen.EncodePNG(pm.Width(), pm.Height(), pm.Scanlines())
//
// # Coordinate System
//
// The scene lives in a fixed 32×32 canvas space with the origin at the
// top-left, X increasing right and Y increasing down. All geometry
// constants (rectangles, stroke endpoints, glow centers) are expressed in
// canvas units, independent of the requested pixel size.
package icongen

// Canvas is the logical extent of the scene in canvas units. Pixel
// footprints scale as Canvas/size, so every output size samples the same
// geometry.
const Canvas = 32.0
