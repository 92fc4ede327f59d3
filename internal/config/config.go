// Package config loads the nupmerge server settings from an HCL file:
//
//	listen        = ":8085"
//	log_level     = "info"
//	max_upload_mb = 64
//
//	defaults {
//	  paper       = "A4"
//	  orientation = "portrait"
//	  rows        = 2
//	  cols        = 1
//	  padding     = 10
//	}
//
//	store {
//	  type = "redis"
//	  addr = "127.0.0.1:6379"
//	  ttl  = "1h"
//	}
//
//	preset "4-up" {
//	  rows        = 2
//	  cols        = 2
//	  orientation = "landscape"
//	}
//
// Every attribute and block is optional.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"nupmerge/internal/imposition"
	"nupmerge/internal/outputstore"
)

type Config struct {
	Listen            string
	LogLevel          string
	LogFormat         string
	MaxUploadBytes    int64
	LoadWorkers       int
	RelaxedValidation bool
	SessionIdle       time.Duration

	Defaults Layout
	Store    outputstore.Conf
	Presets  []Preset
}

// Layout is a complete set of merge parameters.
type Layout struct {
	Paper imposition.PaperConfig
	Grid  imposition.GridConfig
}

type Preset struct {
	Name        string
	Rows        int
	Cols        int
	Orientation imposition.Orientation
}

// hclFile mirrors the file layout for gohcl decoding.
type hclFile struct {
	Listen            *string      `hcl:"listen,optional"`
	LogLevel          *string      `hcl:"log_level,optional"`
	LogFormat         *string      `hcl:"log_format,optional"`
	MaxUploadMB       *int         `hcl:"max_upload_mb,optional"`
	LoadWorkers       *int         `hcl:"load_workers,optional"`
	RelaxedValidation *bool        `hcl:"relaxed_validation,optional"`
	SessionIdle       *string      `hcl:"session_idle,optional"`
	Defaults          *hclDefaults `hcl:"defaults,block"`
	Store             *hclStore    `hcl:"store,block"`
	Presets           []*hclPreset `hcl:"preset,block"`
}

type hclDefaults struct {
	Paper       *string  `hcl:"paper,optional"`
	Orientation *string  `hcl:"orientation,optional"`
	Rows        *int     `hcl:"rows,optional"`
	Cols        *int     `hcl:"cols,optional"`
	Padding     *float64 `hcl:"padding,optional"`
}

type hclStore struct {
	Type     string  `hcl:"type"`
	Addr     *string `hcl:"addr,optional"`
	Password *string `hcl:"password,optional"`
	DB       *int    `hcl:"db,optional"`
	TTL      *string `hcl:"ttl,optional"`
	Prefix   *string `hcl:"prefix,optional"`
}

type hclPreset struct {
	Name        string  `hcl:"name,label"`
	Rows        int     `hcl:"rows"`
	Cols        int     `hcl:"cols"`
	Orientation *string `hcl:"orientation,optional"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:            ":8085",
		LogLevel:          "info",
		LogFormat:         "text",
		MaxUploadBytes:    64 << 20,
		LoadWorkers:       4,
		RelaxedValidation: true,
		SessionIdle:       2 * time.Hour,
		Defaults: Layout{
			Paper: imposition.PaperConfig{Size: imposition.A4, Orientation: imposition.Portrait},
			Grid:  imposition.GridConfig{Rows: 2, Cols: 1, Padding: 10},
		},
		Store: outputstore.Conf{Type: "memory", TTL: time.Hour},
		Presets: []Preset{
			{Name: "2-up", Rows: 2, Cols: 1, Orientation: imposition.Portrait},
			{Name: "2-up-landscape", Rows: 1, Cols: 2, Orientation: imposition.Landscape},
			{Name: "4-up", Rows: 2, Cols: 2, Orientation: imposition.Portrait},
			{Name: "6-up", Rows: 3, Cols: 2, Orientation: imposition.Portrait},
			{Name: "8-up", Rows: 2, Cols: 4, Orientation: imposition.Landscape},
		},
	}
}

// Load reads path, or returns Default when path is empty or names no file.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	var f hclFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return f.resolve()
}

// Parse decodes src as if read from filename; the extension selects HCL
// native syntax (.hcl) or JSON (.json).
func Parse(filename string, src []byte) (*Config, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, err)
	}
	return f.resolve()
}

func (f *hclFile) resolve() (*Config, error) {
	c := Default()

	if f.Listen != nil {
		c.Listen = *f.Listen
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.LogFormat != nil {
		c.LogFormat = *f.LogFormat
	}
	if f.MaxUploadMB != nil {
		c.MaxUploadBytes = int64(*f.MaxUploadMB) << 20
	}
	if f.LoadWorkers != nil {
		c.LoadWorkers = *f.LoadWorkers
	}
	if f.RelaxedValidation != nil {
		c.RelaxedValidation = *f.RelaxedValidation
	}
	if f.SessionIdle != nil {
		d, err := time.ParseDuration(*f.SessionIdle)
		if err != nil {
			return nil, fmt.Errorf("session_idle: %w", err)
		}
		c.SessionIdle = d
	}

	if d := f.Defaults; d != nil {
		if d.Paper != nil {
			size, err := imposition.ParsePaperSize(*d.Paper)
			if err != nil {
				return nil, fmt.Errorf("defaults: %w", err)
			}
			c.Defaults.Paper.Size = size
		}
		if d.Orientation != nil {
			o, err := imposition.ParseOrientation(*d.Orientation)
			if err != nil {
				return nil, fmt.Errorf("defaults: %w", err)
			}
			c.Defaults.Paper.Orientation = o
		}
		if d.Rows != nil {
			c.Defaults.Grid.Rows = *d.Rows
		}
		if d.Cols != nil {
			c.Defaults.Grid.Cols = *d.Cols
		}
		if d.Padding != nil {
			c.Defaults.Grid.Padding = *d.Padding
		}
	}

	if s := f.Store; s != nil {
		c.Store.Type = s.Type
		if s.Addr != nil {
			c.Store.Addr = *s.Addr
		}
		if s.Password != nil {
			c.Store.Password = *s.Password
		}
		if s.DB != nil {
			c.Store.DB = *s.DB
		}
		if s.Prefix != nil {
			c.Store.Prefix = *s.Prefix
		}
		if s.TTL != nil {
			d, err := time.ParseDuration(*s.TTL)
			if err != nil {
				return nil, fmt.Errorf("store ttl: %w", err)
			}
			c.Store.TTL = d
		}
	}

	if len(f.Presets) > 0 {
		c.Presets = c.Presets[:0]
		for _, p := range f.Presets {
			preset := Preset{Name: p.Name, Rows: p.Rows, Cols: p.Cols, Orientation: imposition.Portrait}
			if p.Orientation != nil {
				o, err := imposition.ParseOrientation(*p.Orientation)
				if err != nil {
					return nil, fmt.Errorf("preset %q: %w", p.Name, err)
				}
				preset.Orientation = o
			}
			c.Presets = append(c.Presets, preset)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("listen must not be empty"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("max_upload_mb must be positive"))
	}
	if c.LoadWorkers < 1 {
		errs = append(errs, errors.New("load_workers must be at least 1"))
	}
	if _, err := imposition.NewLayout(c.Defaults.Grid, c.Defaults.Paper); err != nil {
		errs = append(errs, fmt.Errorf("defaults: %w", err))
	}
	switch c.Store.Type {
	case "memory":
	case "redis":
		if c.Store.Addr == "" {
			errs = append(errs, errors.New("store: redis needs addr"))
		}
	default:
		errs = append(errs, fmt.Errorf("store: unknown type %q", c.Store.Type))
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("preset %q defined twice", p.Name))
		}
		seen[p.Name] = true
		if err := (imposition.GridConfig{Rows: p.Rows, Cols: p.Cols}).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", p.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
