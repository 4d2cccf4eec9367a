package styles

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/matzehuels/cardpie/pkg/fonts"
)

// Defaults.
const (
	DefaultOutlineWidth = 4.0
	DefaultLabelSize    = 14.0
	DefaultTitleSize    = 17.0
)

// Style holds the colors and sizes of a chart.
type Style struct {
	Background   color.Color // Canvas fill
	Outline      color.Color // Wedge outline stroke
	OutlineWidth float64     // Stroke width in pixels
	Text         color.Color // Labels and title
	LabelSize    float64     // Label font size in pixels
	TitleSize    float64     // Title font size in pixels
}

// Default returns the standard style: white canvas, black outlines of width
// 4 and black text.
func Default() Style {
	return Style{
		Background:   color.White,
		Outline:      color.Black,
		OutlineWidth: DefaultOutlineWidth,
		Text:         color.Black,
		LabelSize:    DefaultLabelSize,
		TitleSize:    DefaultTitleSize,
	}
}

// LabelFace returns the font face for wedge labels.
func (s Style) LabelFace() (font.Face, error) { return fonts.Face(s.LabelSize) }

// TitleFace returns the font face for the chart title.
func (s Style) TitleFace() (font.Face, error) { return fonts.Face(s.TitleSize) }
