package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/datasheet"
)

type Digitize struct {
	Npoints int     `short:"n" default:"0" desc:"Number of points sampled per curve"`
	Width   float64 `default:"0" desc:"Data-space width of the calibration rectangles (default 50)"`
	Height  float64 `default:"0" desc:"Data-space height of the calibration rectangles (default 50)"`
	X       string  `short:"x" desc:"Data-space x at the left edge of the rectangles (default 0)"`
	Y       string  `short:"y" desc:"Data-space y at the bottom edge of the rectangles (default 0)"`
	Config  string  `short:"c" desc:"YAML or TOML file with options and per-rectangle and per-path overrides"`
	Output  string  `short:"o" desc:"Output file, .csv or .json (default CSV to stdout)"`
	Plot    string  `short:"p" desc:"Plot the curves to an image file (.svg, .png, .pdf, .eps)"`
	Labels  string  `desc:"Comma separated legend labels for the plot"`
	Workers int     `default:"0" desc:"Number of curves sampled concurrently"`
	Verbose bool    `short:"v" desc:"Verbose logging"`
	Input   string  `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Digitize{}, "Datasheet curve digitizer")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Digitize) config() (*datasheet.Config, error) {
	cfg := datasheet.DefaultConfig()
	if cmd.Config != "" {
		// flags override the file, so validate only after applying them
		var err error
		if cfg, err = datasheet.ReadConfig(cmd.Config); err != nil {
			return nil, err
		}
	}

	if cmd.Npoints != 0 {
		cfg.Npoints = cmd.Npoints
	}
	if cmd.Width != 0.0 {
		cfg.Width = cmd.Width
	}
	if cmd.Height != 0.0 {
		cfg.Height = cmd.Height
	}
	if cmd.X != "" {
		x, err := strconv.ParseFloat(cmd.X, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad x: %v", datasheet.ErrConfiguration, err)
		}
		cfg.X = x
	}
	if cmd.Y != "" {
		y, err := strconv.ParseFloat(cmd.Y, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad y: %v", datasheet.ErrConfiguration, err)
		}
		cfg.Y = y
	}
	if cmd.Workers != 0 {
		cfg.Workers = cmd.Workers
	}

	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, cfg.Validate()
}

func (cmd *Digitize) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	cfg, err := cmd.config()
	if err != nil {
		return err
	}

	res, err := datasheet.DigitizeFile(cmd.Input, cfg)
	if err != nil {
		return err
	}

	if cmd.Plot != "" {
		opts := datasheet.PlotOptions{
			Title: filepath.Base(cmd.Input),
		}
		if cmd.Labels != "" {
			opts.Labels = strings.Split(cmd.Labels, ",")
		}
		if err := datasheet.SavePlot(res, opts, cmd.Plot); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if strings.ToLower(filepath.Ext(cmd.Output)) == ".json" {
		return datasheet.WriteJSON(w, res)
	}
	return datasheet.WriteCSV(w, res)
}
