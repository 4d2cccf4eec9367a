package composite

import (
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/cardpie/pkg/asset"
	"github.com/matzehuels/cardpie/pkg/render/pie/layout"
)

// Options controls how a wedge is outlined and composited.
type Options struct {
	Zoom         float64      // Artwork scale factor; values <= 0 mean 1
	OutlineColor color.Color  // Outline stroke color; nil skips the outline
	OutlineWidth float64      // Outline stroke width in pixels; 0 skips the outline
	Anchor       layout.Point // Chart center, where the artwork is centered
}

// Outline strokes the boundary of w. Outlines of all wedges are drawn before
// any artwork, so the artwork of one wedge is never covered by the stroke of
// the next.
func Outline(dc *gg.Context, w layout.Wedge, opts Options) {
	if w.Empty() || opts.OutlineColor == nil || opts.OutlineWidth <= 0 {
		return
	}
	TracePath(dc, w, opts.Anchor)
	dc.SetColor(opts.OutlineColor)
	dc.SetLineWidth(opts.OutlineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.Stroke()
}

// Composite draws a into w, clipped to the wedge boundary. An empty wedge or
// a nil asset draws nothing. The clip is removed before returning.
func Composite(dc *gg.Context, w layout.Wedge, a *asset.Asset, opts Options) {
	if w.Empty() || a == nil {
		return
	}
	img := Scale(a, opts.Zoom)
	if img == nil {
		return
	}

	// Pop keeps the current mask, so the clip has to be reset explicitly.
	dc.Push()
	defer func() {
		dc.ResetClip()
		dc.Pop()
	}()
	TracePath(dc, w, opts.Anchor)
	dc.Clip()
	dc.DrawImageAnchored(img.Image,
		int(math.Round(opts.Anchor.X)), int(math.Round(opts.Anchor.Y)), 0.5, 0.5)
}

// Scale returns a resized by zoom with a Lanczos filter. It returns a itself
// for a zoom of 1 (or <= 0) and nil when the result would be empty.
func Scale(a *asset.Asset, zoom float64) *asset.Asset {
	if zoom <= 0 || zoom == 1 {
		return a
	}
	w := int(math.Round(float64(a.Width()) * zoom))
	h := int(math.Round(float64(a.Height()) * zoom))
	if w < 1 || h < 1 {
		return nil
	}
	return &asset.Asset{Key: a.Key, Image: imaging.Resize(a.Image, w, h, imaging.Lanczos)}
}

// TracePath replaces the current path with the wedge boundary. A full
// circle is traced without the radial edges.
func TracePath(dc *gg.Context, w layout.Wedge, center layout.Point) {
	dc.ClearPath()
	if w.Span() >= 360 {
		dc.DrawCircle(center.X, center.Y, w.Radius)
		return
	}
	pts := w.Boundary(center)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
