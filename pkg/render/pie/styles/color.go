package styles

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

// Single-letter color shorthands.
var shortColors = map[string]color.Color{
	"b": color.NRGBA{0, 0, 255, 255},
	"g": color.NRGBA{0, 128, 0, 255},
	"r": color.NRGBA{255, 0, 0, 255},
	"c": color.NRGBA{0, 191, 191, 255},
	"m": color.NRGBA{191, 0, 191, 255},
	"y": color.NRGBA{191, 191, 0, 255},
	"k": color.NRGBA{0, 0, 0, 255},
	"w": color.NRGBA{255, 255, 255, 255},
}

// ParseColor converts a color string to a color. Names are matched case
// insensitively. Unknown colors fail with INVALID_COLOR.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return nil, perrors.New(perrors.ErrCodeInvalidColor, "empty color")
	case "none", "transparent":
		return color.Transparent, nil
	}
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		if len(name) != 4 && len(name) != 7 {
			return nil, perrors.New(perrors.ErrCodeInvalidColor, "invalid hex color %q: want #rgb or #rrggbb", s)
		}
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, 255}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, perrors.New(perrors.ErrCodeInvalidColor, "unknown color %q", s)
}

// ParseColorOr is ParseColor with a fallback for the empty string.
func ParseColorOr(s string, fallback color.Color) (color.Color, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseColor(s)
}
