package imposition

import (
	"fmt"
	"math"
)

type GridConfig struct {
	Rows    int
	Cols    int
	Padding float64 // pt, applied on every side of a cell
}

func (g GridConfig) Validate() error {
	if g.Rows < 1 {
		return &InvalidLayoutError{Reason: fmt.Sprintf("rows must be at least 1, got %d", g.Rows)}
	}
	if g.Cols < 1 {
		return &InvalidLayoutError{Reason: fmt.Sprintf("cols must be at least 1, got %d", g.Cols)}
	}
	if g.Rows > math.MaxInt/g.Cols {
		return &InvalidLayoutError{Reason: fmt.Sprintf("%dx%d grid has too many cells", g.Rows, g.Cols)}
	}
	if g.Padding < 0 || math.IsNaN(g.Padding) || math.IsInf(g.Padding, 0) {
		return &InvalidLayoutError{Reason: fmt.Sprintf("padding must be a non-negative number, got %v", g.Padding)}
	}
	return nil
}

func (g GridConfig) ItemsPerPage() int {
	return g.Rows * g.Cols
}

// Cell locates the i-th flattened source page: output page, then row-major
// position inside the grid.
type Cell struct {
	Page     int
	Position int
	Row      int
	Col      int
}

func (g GridConfig) CellFor(i int) Cell {
	perPage := g.ItemsPerPage()
	position := i % perPage
	return Cell{
		Page:     i / perPage,
		Position: position,
		Row:      position / g.Cols,
		Col:      position % g.Cols,
	}
}

// OutputPages is ceil(total / rows*cols).
func (g GridConfig) OutputPages(total int) int {
	perPage := g.ItemsPerPage()
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Layout is the resolved geometry of one merge run. All values are in pt with
// a bottom-left origin.
type Layout struct {
	Grid       GridConfig
	PageWidth  float64
	PageHeight float64
	CellWidth  float64
	CellHeight float64
}

func NewLayout(grid GridConfig, paper PaperConfig) (Layout, error) {
	if err := grid.Validate(); err != nil {
		return Layout{}, err
	}
	pageWidth, pageHeight, err := paper.PageSize()
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Grid:       grid,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		CellWidth:  pageWidth / float64(grid.Cols),
		CellHeight: pageHeight / float64(grid.Rows),
	}

	availableWidth, availableHeight := l.Available()
	if availableWidth <= 0 || availableHeight <= 0 {
		return Layout{}, &InvalidLayoutError{Reason: fmt.Sprintf(
			"padding %.2fpt leaves no room in a %.2fx%.2fpt cell", grid.Padding, l.CellWidth, l.CellHeight)}
	}
	return l, nil
}

// Available is the drawable area of a cell once padding is removed.
func (l Layout) Available() (width, height float64) {
	return l.CellWidth - 2*l.Grid.Padding, l.CellHeight - 2*l.Grid.Padding
}

// Placement is where one source page ended up.
type Placement struct {
	Source    PageRef
	Cell      Cell
	Scale     float64
	X         float64
	Y         float64
	Width     float64
	Height    float64
	SrcWidth  float64
	SrcHeight float64
}

// Fit scales a width x height page uniformly into cell and centers it.
func (l Layout) Fit(cell Cell, width, height float64) (Placement, error) {
	if width <= 0 || height <= 0 {
		return Placement{}, fmt.Errorf("page has no area (%.2fx%.2fpt)", width, height)
	}
	availableWidth, availableHeight := l.Available()
	scale := math.Min(availableWidth/width, availableHeight/height)

	scaledWidth := width * scale
	scaledHeight := height * scale

	return Placement{
		Cell:      cell,
		Scale:     scale,
		X:         float64(cell.Col)*l.CellWidth + (l.CellWidth-scaledWidth)/2,
		Y:         l.PageHeight - float64(cell.Row+1)*l.CellHeight + (l.CellHeight-scaledHeight)/2,
		Width:     scaledWidth,
		Height:    scaledHeight,
		SrcWidth:  width,
		SrcHeight: height,
	}, nil
}
