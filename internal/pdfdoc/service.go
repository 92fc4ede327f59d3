// Package pdfdoc is the document capability the imposition engine draws on:
// load, copy, embed, draw and save. PDFCPU is the production implementation.
//
// Handles (Document, Page, Drawable, OutputPage) are opaque and only valid
// with the Service that produced them. Passing a handle from another Service,
// or a page copied into a different document, fails with ErrForeignHandle.
package pdfdoc

import "errors"

type (
	Document   any
	Page       any
	Drawable   any
	OutputPage any
)

var (
	ErrForeignHandle   = errors.New("pdfdoc: handle does not belong to this document")
	ErrPageOutOfRange  = errors.New("pdfdoc: page index out of range")
	ErrEmptyDocument   = errors.New("pdfdoc: document has no pages")
	ErrInvalidPageSize = errors.New("pdfdoc: page size must be positive")
)

type LoadOptions struct {
	Password string
}

type LoadOption func(*LoadOptions)

// WithPassword opens an encrypted source with the given user/owner password.
func WithPassword(pw string) LoadOption {
	return func(o *LoadOptions) { o.Password = pw }
}

type Service interface {
	Load(data []byte, opts ...LoadOption) (Document, error)
	PageCount(doc Document) int
	NewDocument() (Document, error)
	// CopyPage makes page index (0-based) of src addressable from dst.
	CopyPage(dst, src Document, index int) (Page, error)
	// PageSize is the visible size in pt, rotation applied.
	PageSize(page Page) (width, height float64)
	Embed(dst Document, page Page) (Drawable, error)
	NewPage(doc Document, width, height float64) (OutputPage, error)
	// Draw places d with its lower-left corner at (x, y), origin bottom-left.
	Draw(page OutputPage, d Drawable, x, y, width, height float64) error
	Save(doc Document) ([]byte, error)
}

func loadOptions(opts []LoadOption) LoadOptions {
	var o LoadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
