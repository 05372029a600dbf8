package benchplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

var (
	ErrMalformedLine = errors.New("line must hold exactly two numeric fields")
	ErrEmptySeries   = errors.New("series has no data points")
)

// Series is one benchmark run: element counts on X, elapsed seconds on Y.
type Series struct {
	Label  string
	Points plotter.XYs
}

// LoadSeries reads a two-column data file from path.
func LoadSeries(path string) (plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	xys, err := ReadSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return xys, nil
}

// ReadSeries parses whitespace separated "x y" rows. Blank lines are skipped
// and the input order is kept as is.
func ReadSeries(r io.Reader) (plotter.XYs, error) {
	xys := plotter.XYs{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w, got %d", line, ErrMalformedLine, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedLine, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedLine, err)
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(xys) == 0 {
		return nil, ErrEmptySeries
	}
	return xys, nil
}

// WriteSeries writes xys in the format ReadSeries accepts.
func WriteSeries(w io.Writer, xys plotter.XYs) error {
	bw := bufio.NewWriter(w)
	for _, xy := range xys {
		_, err := fmt.Fprintf(bw, "%v %v\n", xy.X, xy.Y)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
