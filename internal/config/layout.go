package config

import (
	"fmt"
	"strings"

	"nupmerge/internal/imposition"
)

// LayoutRequest carries the user's choices; zero values mean "not set".
type LayoutRequest struct {
	Preset      string
	Paper       string
	Orientation string
	Rows        int
	Cols        int
	Padding     *float64
}

// Resolve layers the request over the preset over the configured defaults.
// An unrecognised paper name falls back to the default paper.
func (c *Config) Resolve(req LayoutRequest) (Layout, error) {
	l := c.Defaults

	if name := strings.TrimSpace(req.Preset); name != "" {
		p, ok := c.Preset(name)
		if !ok {
			return Layout{}, fmt.Errorf("unknown preset %q", name)
		}
		l.Grid.Rows = p.Rows
		l.Grid.Cols = p.Cols
		l.Paper.Orientation = p.Orientation
	}

	if req.Paper != "" {
		if size, err := imposition.ParsePaperSize(req.Paper); err == nil {
			l.Paper.Size = size
		}
	}
	if req.Orientation != "" {
		o, err := imposition.ParseOrientation(req.Orientation)
		if err != nil {
			return Layout{}, err
		}
		l.Paper.Orientation = o
	}
	if req.Rows != 0 {
		l.Grid.Rows = req.Rows
	}
	if req.Cols != 0 {
		l.Grid.Cols = req.Cols
	}
	if req.Padding != nil {
		l.Grid.Padding = *req.Padding
	}
	return l, nil
}
