package benchplot

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("color must be #rgb or #rrggbb")

// Palette is an ordered list of line colors, assigned to series by position.
type Palette []color.Color

// DefaultPalette is blue, green, red, cyan, magenta, yellow, black, white.
var DefaultPalette = Palette{
	color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0xbf, B: 0xbf, A: 0xff},
	color.RGBA{R: 0xbf, G: 0x00, B: 0xbf, A: 0xff},
	color.RGBA{R: 0xbf, G: 0xbf, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Color returns the color for the i-th series, wrapping around the palette.
func (p Palette) Color(i int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ParseHexColor parses "#rrggbb" or the short "#rgb" form.
func ParseHexColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 4) {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	if len(s) == 4 {
		return color.RGBA{
			R: uint8(v>>8&0xf) * 17,
			G: uint8(v>>4&0xf) * 17,
			B: uint8(v&0xf) * 17,
			A: 0xff,
		}, nil
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
