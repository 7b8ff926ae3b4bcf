package datasheet

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RectParams overrides the data-space origin and extent for one calibration rectangle. Nil fields inherit the
// global value.
type RectParams struct {
	X      *float64 `yaml:"x" toml:"x"`
	Y      *float64 `yaml:"y" toml:"y"`
	Width  *float64 `yaml:"width" toml:"width"`
	Height *float64 `yaml:"height" toml:"height"`
}

// PathParams overrides the vertical extent of one curve and associates it with a calibration rectangle. Nil
// fields inherit the global value and an empty RectID selects the default rectangle.
type PathParams struct {
	Y      *float64 `yaml:"y" toml:"y"`
	Height *float64 `yaml:"height" toml:"height"`
	RectID string   `yaml:"rect_id" toml:"rect_id"`
}

// Config holds the options of a digitization run. PathParams are keyed by the curve's index in document order
// ("0", "1", ...) or by its identifier, where the index takes precedence.
type Config struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	X       float64 `yaml:"x" toml:"x"`
	Y       float64 `yaml:"y" toml:"y"`
	Npoints int     `yaml:"npoints" toml:"npoints"`
	Workers int     `yaml:"workers" toml:"workers"`

	PathParams map[string]PathParams `yaml:"path_params" toml:"path_params"`
	RectParams map[string]RectParams `yaml:"rect_params" toml:"rect_params"`

	Logger *slog.Logger `yaml:"-" toml:"-"`
}

// DefaultConfig returns the default options: a data-space extent of 50 by 50 starting at the origin. Npoints has
// no default and must be set.
func DefaultConfig() *Config {
	return &Config{
		Width:  50.0,
		Height: 50.0,
	}
}

// Float returns a pointer to f, for use in overrides.
func Float(f float64) *float64 {
	return &f
}

// LoadConfig reads options from a YAML (.yaml, .yml) or TOML (.toml) file on top of the defaults and validates them.
func LoadConfig(filename string) (*Config, error) {
	cfg, err := ReadConfig(filename)
	if err != nil {
		return nil, err
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig is like LoadConfig but does not validate, so that options can still be added before use.
func ReadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, filename, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown config file extension %q", ErrConfiguration, ext)
	}
	return cfg, nil
}

func validExtent(name string, v float64) error {
	if !isFinite(v) || v <= 0.0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrConfiguration, name, v)
	}
	return nil
}

func validOffset(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s must be finite, got %g", ErrConfiguration, name, v)
	}
	return nil
}

// Validate checks all options and overrides.
func (c *Config) Validate() error {
	if c.Npoints < 1 {
		return fmt.Errorf("%w: npoints must be at least 1, got %d", ErrConfiguration, c.Npoints)
	} else if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfiguration, c.Workers)
	}
	if err := validExtent("width", c.Width); err != nil {
		return err
	} else if err := validExtent("height", c.Height); err != nil {
		return err
	} else if err := validOffset("x", c.X); err != nil {
		return err
	} else if err := validOffset("y", c.Y); err != nil {
		return err
	}

	for id, rp := range c.RectParams {
		if !hasPrefix(id, rectPrefix) {
			return fmt.Errorf("%w: rect_params: %q is not a rectangle identifier", ErrConfiguration, id)
		}
		if rp.X != nil {
			if err := validOffset("rect_params."+id+".x", *rp.X); err != nil {
				return err
			}
		}
		if rp.Y != nil {
			if err := validOffset("rect_params."+id+".y", *rp.Y); err != nil {
				return err
			}
		}
		if rp.Width != nil {
			if err := validExtent("rect_params."+id+".width", *rp.Width); err != nil {
				return err
			}
		}
		if rp.Height != nil {
			if err := validExtent("rect_params."+id+".height", *rp.Height); err != nil {
				return err
			}
		}
	}

	for key, pp := range c.PathParams {
		if index, err := strconv.Atoi(key); err == nil {
			if index < 0 {
				return fmt.Errorf("%w: path_params: negative curve index %d", ErrConfiguration, index)
			}
		} else if !hasPrefix(key, pathPrefix) {
			return fmt.Errorf("%w: path_params: %q is neither a curve index nor a curve identifier", ErrConfiguration, key)
		}
		if pp.Y != nil {
			if err := validOffset("path_params."+key+".y", *pp.Y); err != nil {
				return err
			}
		}
		if pp.Height != nil {
			if err := validExtent("path_params."+key+".height", *pp.Height); err != nil {
				return err
			}
		}
		if pp.RectID != "" && !hasPrefix(pp.RectID, rectPrefix) {
			return fmt.Errorf("%w: path_params.%s: %q is not a rectangle identifier", ErrConfiguration, key, pp.RectID)
		}
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Extent is the resolved data-space origin and extent of a calibration rectangle.
type Extent struct {
	X, Y, Width, Height float64
}

// RectExtent returns the extent for the rectangle with the given identifier, with its overrides applied.
func (c *Config) RectExtent(id string) Extent {
	e := Extent{c.X, c.Y, c.Width, c.Height}
	if rp, ok := c.RectParams[id]; ok {
		if rp.X != nil {
			e.X = *rp.X
		}
		if rp.Y != nil {
			e.Y = *rp.Y
		}
		if rp.Width != nil {
			e.Width = *rp.Width
		}
		if rp.Height != nil {
			e.Height = *rp.Height
		}
	}
	return e
}

// CurveParams returns the resolved vertical start and height of a curve, and the identifier of its associated
// rectangle, which is empty when none was given.
func (c *Config) CurveParams(curve Curve) (float64, float64, string) {
	y, height := c.Y, c.Height
	pp, ok := c.PathParams[strconv.Itoa(curve.Index)]
	if !ok {
		pp, ok = c.PathParams[curve.ID]
	}
	if ok {
		if pp.Y != nil {
			y = *pp.Y
		}
		if pp.Height != nil {
			height = *pp.Height
		}
	}
	return y, height, pp.RectID
}
