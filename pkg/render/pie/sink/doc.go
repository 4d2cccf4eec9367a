// Package sink encodes rendered charts.
//
// [RenderPNG] crops a canvas to the bounds of its content and encodes it as
// PNG. Scenes track their own bounds, so the crop follows what was drawn
// rather than scanning pixels:
//
//	png, err := sink.RenderPNG(scene.Image(), scene.Bounds())

package sink
