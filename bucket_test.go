package benchplot_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thiagonache/benchplot"
	"gonum.org/v1/plot/plotter"
)

func TestBucketMeansAveragesConsecutivePairs(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}
	want := plotter.XYs{{X: 0.5, Y: 1.0}, {X: 2.5, Y: 5.0}}
	got, err := benchplot.BucketMeans(xys, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestBucketMeansDropsTrailingPartialWindow(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	want := plotter.XYs{{X: 0.5, Y: 1.0}}
	got, err := benchplot.BucketMeans(xys, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestBucketMeansWithWindowOneIsIdentity(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 10, Y: 0.25}, {X: 20, Y: 0.75}, {X: 30, Y: 3}}
	got, err := benchplot.BucketMeans(xys, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(xys, got) {
		t.Error(cmp.Diff(xys, got))
	}
}

func TestBucketMeansWithWindowLargerThanSeriesIsEmpty(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}}
	got, err := benchplot.BucketMeans(xys, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no points, got %v", got)
	}
}

func TestBucketMeansWithWindowEqualToSeriesGivesOnePoint(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 1, Y: 4}, {X: 2, Y: 8}, {X: 3, Y: 12}}
	want := plotter.XYs{{X: 2, Y: 8}}
	got, err := benchplot.BucketMeans(xys, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestBucketMeansOfUniformWindowIsThatPoint(t *testing.T) {
	t.Parallel()
	points := []plotter.XY{
		{X: 2.5, Y: 0.125},
		{X: 0.1, Y: 0.1},
		{X: 1000, Y: 1e-3},
		{X: 0.3, Y: 0.7},
	}
	for _, pt := range points {
		for w := 1; w <= 7; w++ {
			xys := make(plotter.XYs, w)
			for i := range xys {
				xys[i] = pt
			}
			want := plotter.XYs{pt}
			got, err := benchplot.BucketMeans(xys, w)
			if err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(want, got) {
				t.Errorf("point %v window %d: %s", pt, w, cmp.Diff(want, got))
			}
		}
	}
}

func TestBucketMeansOutputLengthIsFloorOfLenOverWindow(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 20; n++ {
		xys := make(plotter.XYs, n)
		for i := range xys {
			xys[i] = plotter.XY{X: float64(i), Y: float64(i * i)}
		}
		for w := 1; w <= n+1; w++ {
			got, err := benchplot.BucketMeans(xys, w)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != n/w {
				t.Errorf("len %d window %d: want %d points, got %d", n, w, n/w, len(got))
			}
		}
	}
}

func TestBucketMeansWithInvalidWindowReturnsError(t *testing.T) {
	t.Parallel()
	xys := plotter.XYs{{X: 1, Y: 1}}
	for _, w := range []int{0, -1, -10} {
		_, err := benchplot.BucketMeans(xys, w)
		if !errors.Is(err, benchplot.ErrInvalidWindow) {
			t.Errorf("window %d: want ErrInvalidWindow, got %v", w, err)
		}
	}
}
