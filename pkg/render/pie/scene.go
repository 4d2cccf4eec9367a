package pie

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/cardpie/pkg/asset"
	"github.com/matzehuels/cardpie/pkg/render/pie/composite"
	"github.com/matzehuels/cardpie/pkg/render/pie/layout"
	"github.com/matzehuels/cardpie/pkg/render/pie/styles"
)

const (
	DefaultRadius = 185.0 // Pie radius in pixels
	DPI           = 100.0 // Output resolution the zoom is relative to
	LabelDistance = 1.1   // Label anchor distance as a fraction of the radius
	Padding       = 10.0  // Space kept around the tight bounds

	axisExtent = 1.25 // Half-size of the plot area as a fraction of the radius
	titleGap   = 8.0
)

// ImageScale converts an artwork zoom to a pixel scale factor.
func ImageScale(zoom float64) float64 { return zoom * DPI / 72 }

// Option configures a Scene.
type Option func(*Scene)

// WithTitle sets the chart title. No title is drawn when empty.
func WithTitle(title string) Option { return func(s *Scene) { s.title = title } }

// WithStyle sets colors, outline width and font sizes.
func WithStyle(st styles.Style) Option { return func(s *Scene) { s.style = st } }

// WithRadius sets the pie radius in pixels.
func WithRadius(r float64) Option {
	return func(s *Scene) {
		if r > 0 {
			s.radius = r
		}
	}
}

// Scene is the canvas of one chart.
type Scene struct {
	dc     *gg.Context
	style  styles.Style
	title  string
	radius float64
	center layout.Point
	slices []layout.Slice
	wedges []layout.Wedge

	labelFace font.Face
	titleFace font.Face
	ink       box
}

// NewScene creates a canvas large enough for the pie, its labels and the
// title. Slices must come from [layout.Compute].
func NewScene(slices []layout.Slice, opts ...Option) (*Scene, error) {
	s := &Scene{
		style:  styles.Default(),
		radius: DefaultRadius,
		slices: slices,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.style.Text == nil {
		s.style.Text = color.Black
	}
	if s.style.LabelSize <= 0 {
		s.style.LabelSize = styles.DefaultLabelSize
	}
	if s.style.TitleSize <= 0 {
		s.style.TitleSize = styles.DefaultTitleSize
	}

	var err error
	if s.labelFace, err = s.style.LabelFace(); err != nil {
		return nil, err
	}
	if s.titleFace, err = s.style.TitleFace(); err != nil {
		return nil, err
	}

	var labelW float64
	for _, sl := range slices {
		labelW = max(labelW, measure(s.labelFace, sl.Label))
	}
	labelH := lineHeight(s.labelFace)
	margin := max(axisExtent*s.radius, LabelDistance*s.radius+max(labelW, labelH)) +
		s.style.OutlineWidth + 2*Padding

	var titleBand, titleW float64
	if s.title != "" {
		titleBand = 2*lineHeight(s.titleFace) + titleGap
		titleW = measure(s.titleFace, s.title)
	}

	w := math.Ceil(max(2*margin, titleW+4*Padding))
	h := math.Ceil(2*margin + titleBand)
	s.dc = gg.NewContext(int(w), int(h))
	s.center = layout.Point{X: w / 2, Y: titleBand + margin}
	s.wedges = layout.Build(slices, s.radius)
	return s, nil
}

// Wedges returns the wedge of each slice, in slice order.
func (s *Scene) Wedges() []layout.Wedge { return s.wedges }

// Center returns the pie center in canvas coordinates.
func (s *Scene) Center() layout.Point { return s.center }

// Radius returns the pie radius in pixels.
func (s *Scene) Radius() float64 { return s.radius }

// DrawBase fills the background and draws every wedge outline, the slice
// labels and the title. Artwork composited afterwards sits above all
// outlines.
func (s *Scene) DrawBase() {
	if s.style.Background != nil {
		s.dc.SetColor(s.style.Background)
		s.dc.Clear()
	}

	opts := s.options(0)
	for _, w := range s.wedges {
		composite.Outline(s.dc, w, opts)
	}

	r := s.radius + s.style.OutlineWidth/2
	s.ink.add(s.center.X-r, s.center.Y-r, s.center.X+r, s.center.Y+r)

	s.dc.SetColor(s.style.Text)
	s.dc.SetFontFace(s.labelFace)
	m := s.labelFace.Metrics()
	ascent, descent := px(m.Ascent), px(m.Descent)
	for i, w := range s.wedges {
		label := s.slices[i].Label
		p := layout.PointAt(s.center, w.Mid(), LabelDistance*s.radius)
		ax := 1.0
		if p.X > s.center.X {
			ax = 0
		}
		tw, th := s.dc.MeasureString(label)
		s.dc.DrawStringAnchored(label, p.X, p.Y, ax, 0.5)
		x0 := p.X - ax*tw
		baseline := p.Y + th/2
		s.ink.add(x0, baseline-ascent, x0+tw, baseline+descent)
	}

	if s.title == "" {
		return
	}
	s.dc.SetFontFace(s.titleFace)
	tm := s.titleFace.Metrics()
	baseline := min(s.ink.minY, s.center.Y-axisExtent*s.radius) - titleGap - px(tm.Descent)
	tw, _ := s.dc.MeasureString(s.title)
	s.dc.DrawStringAnchored(s.title, s.center.X, baseline, 0.5, 0)
	s.ink.add(s.center.X-tw/2, baseline-px(tm.Ascent), s.center.X+tw/2, baseline+px(tm.Descent))
}

// Composite draws a into w. zoom is the artwork zoom (see [ImageScale]).
// Call it after [Scene.DrawBase].
func (s *Scene) Composite(w layout.Wedge, a *asset.Asset, zoom float64) {
	composite.Composite(s.dc, w, a, s.options(zoom))
}

func (s *Scene) options(zoom float64) composite.Options {
	return composite.Options{
		Zoom:         ImageScale(zoom),
		OutlineColor: s.style.Outline,
		OutlineWidth: s.style.OutlineWidth,
		Anchor:       s.center,
	}
}

// Image returns the canvas.
func (s *Scene) Image() image.Image { return s.dc.Image() }

// Bounds returns the bounds of everything drawn so far plus [Padding],
// limited to the canvas.
func (s *Scene) Bounds() image.Rectangle {
	canvas := s.dc.Image().Bounds()
	if !s.ink.ok {
		return canvas
	}
	r := image.Rect(
		int(math.Floor(s.ink.minX-Padding)), int(math.Floor(s.ink.minY-Padding)),
		int(math.Ceil(s.ink.maxX+Padding)), int(math.Ceil(s.ink.maxY+Padding)),
	)
	return r.Intersect(canvas)
}

func px(v fixed.Int26_6) float64 { return float64(v) / 64 }

func measure(face font.Face, s string) float64 {
	return px(font.MeasureString(face, s))
}

func lineHeight(face font.Face) float64 {
	return px(face.Metrics().Height)
}

type box struct {
	minX, minY, maxX, maxY float64
	ok                     bool
}

func (b *box) add(x0, y0, x1, y1 float64) {
	if !b.ok {
		*b = box{x0, y0, x1, y1, true}
		return
	}
	b.minX, b.minY = min(b.minX, x0), min(b.minY, y0)
	b.maxX, b.maxY = max(b.maxX, x1), max(b.maxY, y1)
}
