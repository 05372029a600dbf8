package benchplot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultXLabel = "Elem number"
	DefaultYLabel = "Time sec"
	DefaultFormat = "png"
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	ErrNoOutputDir      = errors.New("output directory does not exist")
	ErrNoSeries         = errors.New("nothing to plot")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
	ErrInvalidSize      = errors.New("image size must be positive")
	ErrInvalidFormat    = errors.New("unsupported image format")
)

var formats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "svg": true,
	"pdf": true, "eps": true, "tif": true, "tiff": true,
}

// Renderer draws series as lines on a single chart and saves it as an image.
type Renderer struct {
	palette        Palette
	xLabel, yLabel string
	format         string
	width, height  vg.Length
	stdout         io.Writer
}

type RendererOption func(*Renderer) error

func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		palette: DefaultPalette,
		xLabel:  DefaultXLabel,
		yLabel:  DefaultYLabel,
		format:  DefaultFormat,
		width:   DefaultWidth,
		height:  DefaultHeight,
		stdout:  os.Stdout,
	}
	for _, o := range opts {
		err := o(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func WithPalette(p Palette) RendererOption {
	return func(r *Renderer) error {
		if len(p) == 0 {
			return fmt.Errorf("palette: %w", ErrValueCannotBeNil)
		}
		r.palette = p
		return nil
	}
}

func WithAxisLabels(x, y string) RendererOption {
	return func(r *Renderer) error {
		r.xLabel = x
		r.yLabel = y
		return nil
	}
}

func WithFormat(format string) RendererOption {
	return func(r *Renderer) error {
		if !formats[format] {
			return fmt.Errorf("%w %q", ErrInvalidFormat, format)
		}
		r.format = format
		return nil
	}
}

func WithSize(width, height vg.Length) RendererOption {
	return func(r *Renderer) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w, got %v x %v", ErrInvalidSize, width, height)
		}
		r.width = width
		r.height = height
		return nil
	}
}

func WithRendererStdout(w io.Writer) RendererOption {
	return func(r *Renderer) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stdout = w
		return nil
	}
}

func (r Renderer) Palette() Palette {
	return r.palette
}

func (r Renderer) Format() string {
	return r.format
}

func (r Renderer) AxisLabels() (x, y string) {
	return r.xLabel, r.yLabel
}

func (r Renderer) Size() (width, height vg.Length) {
	return r.width, r.height
}

// OutputPath is where Render writes the chart titled title.
func (r Renderer) OutputPath(outputDir, title string) string {
	return filepath.Join(outputDir, title+"."+r.format)
}

// Plot builds the chart without saving it.
func (r Renderer) Plot(title string, series []Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = r.xLabel
	p.Y.Label.Text = r.yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	lines, err := r.Lines(series)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		p.Add(line)
		p.Legend.Add(series[i].Label, line)
	}
	return p, nil
}

// Lines builds one line per series, colored by position in the palette.
func (r Renderer) Lines(series []Series) ([]*plotter.Line, error) {
	lines := make([]*plotter.Line, len(series))
	for i, s := range series {
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = r.palette.Color(i)
		lines[i] = line
	}
	return lines, nil
}

// Render saves the chart to OutputPath and returns that path. outputDir
// must already exist.
func (r Renderer) Render(outputDir, title string, series []Series) (string, error) {
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoOutputDir, outputDir)
	}
	p, err := r.Plot(title, series)
	if err != nil {
		return "", err
	}
	path := r.OutputPath(outputDir, title)
	err = p.Save(r.width, r.height, path)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(r.stdout, "plot saved to %s\n", path)
	return path, nil
}
