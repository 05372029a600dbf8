package benchplot

import (
	"fmt"
	"io"
	"os"
)

// App runs the load, average and render pipeline for one Config.
type App struct {
	stdout, stderr io.Writer
}

type CLIOption func(*App) error

func NewApp(opts ...CLIOption) (*App, error) {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range opts {
		err := o(app)
		if err != nil {
			return nil, err
		}
	}
	return app, nil
}

func WithCLIStdout(w io.Writer) CLIOption {
	return func(app *App) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		app.stdout = w
		return nil
	}
}

func WithCLIStderr(w io.Writer) CLIOption {
	return func(app *App) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		app.stderr = w
		return nil
	}
}

func (app App) LogStdOut(msg string) {
	fmt.Fprint(app.stdout, msg)
}

func (app App) LogStdErr(msg string) {
	fmt.Fprint(app.stderr, msg)
}

func (app App) LogFStdOut(msg string, opts ...interface{}) {
	fmt.Fprintf(app.stdout, msg, opts...)
}

func (app App) LogFStdErr(msg string, opts ...interface{}) {
	fmt.Fprintf(app.stderr, msg, opts...)
}

// Load reads every input of cfg, averaging in buckets for the Tree variant.
func (app App) Load(cfg Config) ([]Series, error) {
	series := make([]Series, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		xys, err := LoadSeries(in.Path)
		if err != nil {
			return nil, err
		}
		app.LogFStdOut("loaded %q: %d points from %s\n", in.Label, len(xys), in.Path)
		if cfg.Variant == Tree {
			xys, err = BucketMeans(xys, cfg.Window)
			if err != nil {
				return nil, err
			}
			app.LogFStdOut("averaged %q: %d buckets of %d\n", in.Label, len(xys), cfg.Window)
			if len(xys) == 0 {
				app.LogFStdErr("warning: %q has fewer points than window %d, its line is empty\n", in.Label, cfg.Window)
			}
		}
		series = append(series, Series{Label: in.Label, Points: xys})
	}
	return series, nil
}

// Run plots cfg and returns the path of the written image.
func (app App) Run(cfg Config) (string, error) {
	err := cfg.Validate()
	if err != nil {
		return "", err
	}
	style, err := LoadStyle(cfg.StylePath)
	if err != nil {
		return "", err
	}
	opts, err := style.Options()
	if err != nil {
		return "", err
	}
	opts = append(opts, WithRendererStdout(app.stdout))
	renderer, err := NewRenderer(opts...)
	if err != nil {
		return "", err
	}
	series, err := app.Load(cfg)
	if err != nil {
		return "", err
	}
	return renderer.Render(cfg.OutputDir, cfg.Title, series)
}

func RunSortCLI(args []string, opts ...CLIOption) error {
	return runCLI(Sort, args, opts...)
}

func RunTreeCLI(args []string, opts ...CLIOption) error {
	return runCLI(Tree, args, opts...)
}

func runCLI(v Variant, args []string, opts ...CLIOption) error {
	app, err := NewApp(opts...)
	if err != nil {
		return err
	}
	cfg, err := ParseArgs(v, args)
	if err != nil {
		app.LogFStdErr("%s\n", v.Usage())
		return err
	}
	_, err = app.Run(cfg)
	return err
}
