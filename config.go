package benchplot

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrArgCount           = errors.New("wrong number of arguments")
	ErrNotNumber          = errors.New("argument must be an integer")
	ErrInvalidSeriesCount = errors.New("number of series must be at least 1")
	ErrEmptyTitle         = errors.New("plot title cannot be empty")
	ErrEmptyLabel         = errors.New("series label cannot be empty")
)

// Variant selects which of the two programs the arguments belong to.
type Variant int

const (
	// Sort plots raw series.
	Sort Variant = iota
	// Tree bucket averages every series before plotting.
	Tree
)

func (v Variant) String() string {
	if v == Tree {
		return "treeplot"
	}
	return "sortplot"
}

// Usage is the one-line synopsis of the variant's command line.
func (v Variant) Usage() string {
	if v == Tree {
		return "Usage: treeplot [-style file.toml] <output_folder> <plot_title> <num_series> <window_size> <[label=]file>... (prefix a bare file name containing \"=\" with \"./\")"
	}
	return "Usage: sortplot [-style file.toml] <output_folder> <plot_title> <num_series> <[label=]file>... (prefix a bare file name containing \"=\" with \"./\")"
}

// Input is a data file and the legend label of its series.
type Input struct {
	Label, Path string
}

// Config holds everything one invocation needs. Window is only meaningful
// for the Tree variant.
type Config struct {
	Variant   Variant
	OutputDir string
	Title     string
	NumSeries int
	Window    int
	Inputs    []Input
	StylePath string
}

// ParseSortArgs reads
// [-style file] <output_folder> <plot_title> <num_series> <file>...
func ParseSortArgs(args []string) (Config, error) {
	return ParseArgs(Sort, args)
}

// ParseTreeArgs reads
// [-style file] <output_folder> <plot_title> <num_series> <window_size> <file>...
func ParseTreeArgs(args []string) (Config, error) {
	return ParseArgs(Tree, args)
}

func ParseArgs(v Variant, args []string) (Config, error) {
	fset := flag.NewFlagSet(v.String(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	style := fset.String("style", "", "TOML file with palette, labels, format and size")
	err := fset.Parse(args)
	if err != nil {
		return Config{}, err
	}
	args = fset.Args()
	fixed := 3
	if v == Tree {
		fixed = 4
	}
	if len(args) < fixed {
		return Config{}, fmt.Errorf("%w: want at least %d, got %d", ErrArgCount, fixed+1, len(args))
	}
	cfg := Config{
		Variant:   v,
		OutputDir: args[0],
		Title:     args[1],
		StylePath: *style,
		Window:    1,
	}
	cfg.NumSeries, err = parseInt("num_series", args[2])
	if err != nil {
		return Config{}, err
	}
	if v == Tree {
		cfg.Window, err = parseInt("window_size", args[3])
		if err != nil {
			return Config{}, err
		}
	}
	for _, arg := range args[fixed:] {
		cfg.Inputs = append(cfg.Inputs, ParseInput(v, arg))
	}
	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, ErrNotNumber)
	}
	return n, nil
}

// ParseInput accepts "label=path" or a bare path. The text before the first
// "=" is a label only when it holds no path separator, so "runs/n=1000.txt"
// stays a path. Without an explicit label the file's base name is used: Sort
// drops the extension, Tree keeps what precedes the first underscore.
func ParseInput(v Variant, arg string) Input {
	if label, path, ok := strings.Cut(arg, "="); ok && !strings.ContainsAny(label, `/\`) {
		return Input{Label: label, Path: path}
	}
	return Input{Label: DeriveLabel(v, arg), Path: arg}
}

func DeriveLabel(v Variant, path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if v == Tree {
		if prefix, _, ok := strings.Cut(name, "_"); ok && prefix != "" {
			return prefix
		}
	}
	return name
}

// Validate reports the first problem with cfg.
func (cfg Config) Validate() error {
	if cfg.Title == "" {
		return ErrEmptyTitle
	}
	if cfg.NumSeries < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSeriesCount, cfg.NumSeries)
	}
	if cfg.Variant == Tree && cfg.Window < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidWindow, cfg.Window)
	}
	if len(cfg.Inputs) != cfg.NumSeries {
		return fmt.Errorf("%w: %d series announced, %d files given", ErrArgCount, cfg.NumSeries, len(cfg.Inputs))
	}
	for _, in := range cfg.Inputs {
		if in.Label == "" {
			return fmt.Errorf("%s: %w", in.Path, ErrEmptyLabel)
		}
	}
	return nil
}
