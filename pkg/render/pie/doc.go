// Package pie draws card pie charts.
//
// A [Scene] owns the canvas for one chart. It is sized from the slice labels
// and title, draws the chart base (background, labels, title) and then
// accepts one artwork per wedge through [Scene.Composite]. The scene tracks
// the bounds of everything it draws so the output can be cropped tightly:
//
//	scene, err := pie.NewScene(slices, pie.WithTitle("Regional Top Cut"))
//	scene.DrawBase()
//	for i, w := range scene.Wedges() {
//	    scene.Composite(w, artwork[i], 0.72)
//	}
//	png, err := sink.RenderPNG(scene.Image(), scene.Bounds())
//
// Geometry lives in the [layout] subpackage, the per-wedge clip and draw in
// [composite], colors and fonts in [styles] and encoding in [sink].
//
// # Zoom
//
// The artwork zoom is expressed in points per pixel at [DPI], so a zoom of
// 0.72 draws the artwork at its native pixel size.
//
// [layout]: github.com/matzehuels/cardpie/pkg/render/pie/layout
// [composite]: github.com/matzehuels/cardpie/pkg/render/pie/composite
// [styles]: github.com/matzehuels/cardpie/pkg/render/pie/styles
// [sink]: github.com/matzehuels/cardpie/pkg/render/pie/sink
package pie
