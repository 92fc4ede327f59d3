package imposition

import (
	"fmt"
	"sort"
	"strings"
)

// PaperSize names one of the fixed output sheet sizes.
type PaperSize string

const (
	A4     PaperSize = "A4"
	A3     PaperSize = "A3"
	A5     PaperSize = "A5"
	Letter PaperSize = "Letter"
	Legal  PaperSize = "Legal"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// dimensions in pt (1" = 72pt), portrait.
type dimensions struct {
	width  float64
	height float64
}

var paperSizes = map[PaperSize]dimensions{
	A4:     {width: 595.28, height: 841.89},  // 210mm x 297mm
	A3:     {width: 841.89, height: 1190.55}, // 297mm x 420mm
	A5:     {width: 419.53, height: 595.28},  // 148mm x 210mm
	Letter: {width: 612, height: 792},        // 8.5" x 11"
	Legal:  {width: 612, height: 1008},       // 8.5" x 14"
}

// PaperSizes returns the known sizes sorted by name.
func PaperSizes() []PaperSize {
	sizes := make([]PaperSize, 0, len(paperSizes))
	for s := range paperSizes {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}

// ParsePaperSize matches name case-insensitively against the known sizes.
func ParsePaperSize(name string) (PaperSize, error) {
	trimmed := strings.TrimSpace(name)
	for s := range paperSizes {
		if strings.EqualFold(string(s), trimmed) {
			return s, nil
		}
	}
	return "", fmt.Errorf("imposition: unknown paper size %q", name)
}

func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return "", fmt.Errorf("imposition: unknown orientation %q", name)
}

type PaperConfig struct {
	Size        PaperSize
	Orientation Orientation
}

// PageSize resolves the output page dimensions. Landscape swaps the base
// width and height.
func (c PaperConfig) PageSize() (width, height float64, err error) {
	dims, ok := paperSizes[c.Size]
	if !ok {
		return 0, 0, &InvalidLayoutError{Reason: fmt.Sprintf("unknown paper size %q", c.Size)}
	}
	switch c.Orientation {
	case Portrait, "":
		return dims.width, dims.height, nil
	case Landscape:
		return dims.height, dims.width, nil
	}
	return 0, 0, &InvalidLayoutError{Reason: fmt.Sprintf("unknown orientation %q", c.Orientation)}
}

func (c PaperConfig) String() string {
	o := c.Orientation
	if o == "" {
		o = Portrait
	}
	return fmt.Sprintf("%s %s", c.Size, o)
}
