package imposition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"nupmerge/internal/pdfdoc"
)

// SourceFile is one uploaded input document. It is never modified after it
// has been created.
type SourceFile struct {
	ID       string
	Name     string
	Size     int64
	Data     []byte
	Password string
}

// PageRef addresses one page of one loaded source.
type PageRef struct {
	File  int // index into the merged file list
	Name  string
	Index int // zero-based page index within the file

	doc pdfdoc.Document
}

// MergedDocument is the serialized result of one successful merge.
type MergedDocument struct {
	Data       []byte
	PageCount  int
	Layout     Layout
	Placements []Placement
}

const defaultLoadWorkers = 4

type Engine struct {
	svc     pdfdoc.Service
	workers int
	logger  *slog.Logger
}

type Option func(*Engine)

// WithLoadWorkers bounds how many source files are parsed concurrently.
func WithLoadWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(svc pdfdoc.Service, opts ...Option) *Engine {
	e := &Engine{
		svc:     svc,
		workers: defaultLoadWorkers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge imposes every page of files, in file order then page order, onto
// rows x cols grids of the requested paper. Either the complete document or
// an error is returned.
func (e *Engine) Merge(ctx context.Context, files []SourceFile, grid GridConfig, paper PaperConfig, progress Progress) (*MergedDocument, error) {
	if len(files) == 0 {
		return nil, ErrEmptyInput
	}
	if progress == nil {
		progress = NopProgress
	}

	layout, err := NewLayout(grid, paper)
	if err != nil {
		return nil, err
	}

	allPages, err := e.flatten(ctx, files, progress)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("flattened source pages", "files", len(files), "pages", len(allPages), "paper", paper.String())

	progress.Notify("Merging pages...", 50)

	out, err := e.svc.NewDocument()
	if err != nil {
		return nil, err
	}

	placements := make([]Placement, 0, len(allPages))
	var current pdfdoc.OutputPage
	total := len(allPages)

	for i, ref := range allPages {
		if i%10 == 0 {
			progress.Notify(fmt.Sprintf("Merging page %d/%d...", i+1, total), 50+i*40/total)
		}

		cell := grid.CellFor(i)
		if cell.Position == 0 {
			// Only between whole output pages.
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			current, err = e.svc.NewPage(out, layout.PageWidth, layout.PageHeight)
			if err != nil {
				return nil, fmt.Errorf("imposition: new output page %d: %w", cell.Page+1, err)
			}
		}

		copied, err := e.svc.CopyPage(out, ref.doc, ref.Index)
		if err != nil {
			return nil, &InvalidDocumentError{File: ref.Name, Err: fmt.Errorf("page %d: %w", ref.Index+1, err)}
		}
		width, height := e.svc.PageSize(copied)
		placement, err := layout.Fit(cell, width, height)
		if err != nil {
			return nil, &InvalidDocumentError{File: ref.Name, Err: fmt.Errorf("page %d: %w", ref.Index+1, err)}
		}
		placement.Source = ref

		embedded, err := e.svc.Embed(out, copied)
		if err != nil {
			return nil, &InvalidDocumentError{File: ref.Name, Err: fmt.Errorf("page %d: %w", ref.Index+1, err)}
		}
		if err := e.svc.Draw(current, embedded, placement.X, placement.Y, placement.Width, placement.Height); err != nil {
			return nil, fmt.Errorf("imposition: draw %s page %d: %w", ref.Name, ref.Index+1, err)
		}
		placements = append(placements, placement)
	}

	progress.Notify("Generating PDF...", 90)
	data, err := e.svc.Save(out)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	merged := &MergedDocument{
		Data:       data,
		PageCount:  grid.OutputPages(total),
		Layout:     layout,
		Placements: placements,
	}
	e.logger.Debug("merged document", "pages", merged.PageCount, "bytes", len(data))
	progress.Notify("Done!", 100)
	return merged, nil
}

// flatten loads every file and lists its pages, file order outer and page
// order inner. Loading runs concurrently; results are stored by index so the
// order never depends on completion order.
func (e *Engine) flatten(ctx context.Context, files []SourceFile, progress Progress) ([]PageRef, error) {
	docs := make([]pdfdoc.Document, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range files {
		if gctx.Err() != nil {
			break
		}
		progress.Notify(fmt.Sprintf("Loading file %d/%d...", i+1, len(files)), i*40/len(files))

		f := files[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var opts []pdfdoc.LoadOption
			if f.Password != "" {
				opts = append(opts, pdfdoc.WithPassword(f.Password))
			}
			doc, err := e.svc.Load(f.Data, opts...)
			if err != nil {
				return &InvalidDocumentError{File: f.Name, Err: err}
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var allPages []PageRef
	for i, doc := range docs {
		n := e.svc.PageCount(doc)
		if n == 0 {
			return nil, &InvalidDocumentError{File: files[i].Name, Err: errors.New("document has no pages")}
		}
		for j := 0; j < n; j++ {
			allPages = append(allPages, PageRef{File: i, Name: files[i].Name, Index: j, doc: doc})
		}
	}
	return allPages, nil
}
