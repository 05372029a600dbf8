package benchplot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"
)

var ErrUnknownStyleKey = errors.New("unknown key in style file")

// Style is the optional TOML file controlling how charts look. Unset fields
// keep the renderer defaults.
type Style struct {
	Palette []string    `toml:"palette"`
	Format  *string     `toml:"format"`
	Width   *float64    `toml:"width"`
	Height  *float64    `toml:"height"`
	Labels  StyleLabels `toml:"labels"`
}

type StyleLabels struct {
	X *string `toml:"x"`
	Y *string `toml:"y"`
}

// LoadStyle decodes the style file at path. An empty path yields the zero
// Style.
func LoadStyle(path string) (Style, error) {
	var st Style
	if path == "" {
		return st, nil
	}
	md, err := toml.DecodeFile(path, &st)
	if err != nil {
		return Style{}, fmt.Errorf("failed to decode style: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Style{}, fmt.Errorf("%w: %s", ErrUnknownStyleKey, strings.Join(keys, ", "))
	}
	return st, nil
}

// Options converts the style to renderer options.
func (st Style) Options() ([]RendererOption, error) {
	opts := []RendererOption{}
	if len(st.Palette) > 0 {
		p := make(Palette, len(st.Palette))
		for i, s := range st.Palette {
			c, err := ParseHexColor(s)
			if err != nil {
				return nil, err
			}
			p[i] = c
		}
		opts = append(opts, WithPalette(p))
	}
	if st.Format != nil {
		opts = append(opts, WithFormat(strings.ToLower(*st.Format)))
	}
	if st.Width != nil || st.Height != nil {
		w, h := DefaultWidth, DefaultHeight
		if st.Width != nil {
			w = vg.Length(*st.Width) * vg.Inch
		}
		if st.Height != nil {
			h = vg.Length(*st.Height) * vg.Inch
		}
		opts = append(opts, WithSize(w, h))
	}
	if st.Labels.X != nil || st.Labels.Y != nil {
		x, y := DefaultXLabel, DefaultYLabel
		if st.Labels.X != nil {
			x = *st.Labels.X
		}
		if st.Labels.Y != nil {
			y = *st.Labels.Y
		}
		opts = append(opts, WithAxisLabels(x, y))
	}
	return opts, nil
}
