package benchplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

var ErrInvalidWindow = errors.New("window size must be at least 1")

// BucketMeans splits xys into consecutive windows of the given size and
// reduces each one to the mean of its X and Y values. A trailing window
// shorter than size is dropped, so the result has len(xys)/size points.
// Means are taken relative to the window's first point, so a window of
// identical points yields that point exactly.
func BucketMeans(xys plotter.XYs, size int) (plotter.XYs, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWindow, size)
	}
	n := len(xys) / size
	means := make(plotter.XYs, n)
	xs := make([]float64, size)
	ys := make([]float64, size)
	for b := 0; b < n; b++ {
		window := xys[b*size : (b+1)*size]
		x0, y0 := window[0].X, window[0].Y
		for j, xy := range window {
			xs[j] = xy.X - x0
			ys[j] = xy.Y - y0
		}
		means[b].X = x0 + stat.Mean(xs, nil)
		means[b].Y = y0 + stat.Mean(ys, nil)
	}
	return means, nil
}
