package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPU implements Service on top of pdfcpu.
//
// Output documents are assembled lazily: CopyPage, Embed, NewPage and Draw only
// record what was asked for, and Save merges the sources into one context,
// turns every embedded source page into a Form XObject and rewrites the leading
// page dicts into the imposed output pages.
type PDFCPU struct {
	relaxed bool
}

type Option func(*PDFCPU)

// WithRelaxedValidation tolerates the common PDF syntax violations found in the wild.
func WithRelaxedValidation(relaxed bool) Option {
	return func(s *PDFCPU) { s.relaxed = relaxed }
}

func NewPDFCPU(opts ...Option) *PDFCPU {
	s := &PDFCPU{relaxed: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Service = (*PDFCPU)(nil)

type sourceDoc struct {
	raw []byte
	ctx *model.Context
}

type outputDoc struct {
	sources   []*sourceDoc
	copies    []*copiedPage
	drawables []*drawable
	pages     []*outputPage
}

type copiedPage struct {
	owner  *outputDoc
	src    *sourceDoc
	index  int
	box    *types.Rectangle
	rotate int
	width  float64
	height float64
}

type drawable struct {
	owner *outputDoc
	page  *copiedPage
	name  string
}

type outputPage struct {
	owner  *outputDoc
	width  float64
	height float64
	ops    []drawOp
}

type drawOp struct {
	d                   *drawable
	x, y, width, height float64
}

func (s *PDFCPU) configuration(password string) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if s.relaxed {
		conf.ValidationMode = model.ValidationRelaxed
	}
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return conf
}

func (s *PDFCPU) Load(data []byte, opts ...LoadOption) (Document, error) {
	if len(data) == 0 {
		return nil, errors.New("pdfdoc: empty input")
	}
	o := loadOptions(opts)

	raw := data
	if o.Password != "" {
		// Sources are merged again at save time with a shared configuration,
		// so encrypted inputs are kept in decrypted form.
		var plain bytes.Buffer
		if err := pdfapi.Decrypt(bytes.NewReader(data), &plain, s.configuration(o.Password)); err != nil {
			return nil, err
		}
		raw = plain.Bytes()
	}

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(raw), s.configuration(""))
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	return &sourceDoc{raw: raw, ctx: ctx}, nil
}

func (s *PDFCPU) PageCount(doc Document) int {
	switch d := doc.(type) {
	case *sourceDoc:
		return d.ctx.PageCount
	case *outputDoc:
		return len(d.pages)
	}
	return 0
}

func (s *PDFCPU) NewDocument() (Document, error) {
	return &outputDoc{}, nil
}

func (s *PDFCPU) CopyPage(dst, src Document, index int) (Page, error) {
	out, ok := dst.(*outputDoc)
	if !ok {
		return nil, ErrForeignHandle
	}
	in, ok := src.(*sourceDoc)
	if !ok {
		return nil, ErrForeignHandle
	}
	if index < 0 || index >= in.ctx.PageCount {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, index, in.ctx.PageCount)
	}

	_, _, inh, err := in.ctx.PageDict(index+1, false)
	if err != nil {
		return nil, err
	}
	box, err := visibleBox(inh, index+1)
	if err != nil {
		return nil, err
	}

	rotate := normalizeRotation(inh.Rotate)
	width, height := box.Width(), box.Height()
	if rotate == 90 || rotate == 270 {
		width, height = height, width
	}

	if !out.hasSource(in) {
		out.sources = append(out.sources, in)
	}
	cp := &copiedPage{
		owner:  out,
		src:    in,
		index:  index,
		box:    box,
		rotate: rotate,
		width:  width,
		height: height,
	}
	out.copies = append(out.copies, cp)
	return cp, nil
}

func (s *PDFCPU) PageSize(page Page) (float64, float64) {
	cp, ok := page.(*copiedPage)
	if !ok {
		return 0, 0
	}
	return cp.width, cp.height
}

func (s *PDFCPU) Embed(dst Document, page Page) (Drawable, error) {
	out, ok := dst.(*outputDoc)
	if !ok {
		return nil, ErrForeignHandle
	}
	cp, ok := page.(*copiedPage)
	if !ok || cp.owner != out {
		return nil, ErrForeignHandle
	}
	d := &drawable{
		owner: out,
		page:  cp,
		name:  fmt.Sprintf("Fm%d", len(out.drawables)),
	}
	out.drawables = append(out.drawables, d)
	return d, nil
}

func (s *PDFCPU) NewPage(doc Document, width, height float64) (OutputPage, error) {
	out, ok := doc.(*outputDoc)
	if !ok {
		return nil, ErrForeignHandle
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %.2fx%.2f", ErrInvalidPageSize, width, height)
	}
	p := &outputPage{owner: out, width: width, height: height}
	out.pages = append(out.pages, p)
	return p, nil
}

func (s *PDFCPU) Draw(page OutputPage, d Drawable, x, y, width, height float64) error {
	p, ok := page.(*outputPage)
	if !ok {
		return ErrForeignHandle
	}
	dr, ok := d.(*drawable)
	if !ok || dr.owner != p.owner {
		return ErrForeignHandle
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %.2fx%.2f", ErrInvalidPageSize, width, height)
	}
	p.ops = append(p.ops, drawOp{d: dr, x: x, y: y, width: width, height: height})
	return nil
}

func (s *PDFCPU) Save(doc Document) ([]byte, error) {
	out, ok := doc.(*outputDoc)
	if !ok {
		return nil, ErrForeignHandle
	}
	if len(out.pages) == 0 || len(out.sources) == 0 {
		return nil, ErrEmptyDocument
	}

	merged, offsets, err := s.combine(out.sources)
	if err != nil {
		return nil, err
	}

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(merged), s.configuration(""))
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	if len(out.pages) > ctx.PageCount {
		return nil, fmt.Errorf("pdfdoc: %d output pages need at least as many source pages, have %d", len(out.pages), ctx.PageCount)
	}

	forms := make(map[*copiedPage]*types.IndirectRef)
	for _, d := range out.drawables {
		if _, done := forms[d.page]; done {
			continue
		}
		pageNr := offsets[d.page.src] + d.page.index + 1
		ref, err := formXObject(ctx, pageNr, d.page)
		if err != nil {
			return nil, fmt.Errorf("pdfdoc: embedding page %d: %w", pageNr, err)
		}
		forms[d.page] = ref
	}

	for i, p := range out.pages {
		if err := imposePage(ctx, i+1, p, forms); err != nil {
			return nil, fmt.Errorf("pdfdoc: writing output page %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &buf); err != nil {
		return nil, err
	}
	if ctx.PageCount == len(out.pages) {
		return buf.Bytes(), nil
	}

	// Leftover source pages past the last output page are dropped.
	var trimmed bytes.Buffer
	selection := []string{fmt.Sprintf("%d-", len(out.pages)+1)}
	if err := pdfapi.RemovePages(bytes.NewReader(buf.Bytes()), &trimmed, selection, s.configuration("")); err != nil {
		return nil, err
	}
	return trimmed.Bytes(), nil
}

// combine merges the sources into one PDF and returns the page offset of each
// source inside it.
func (s *PDFCPU) combine(sources []*sourceDoc) ([]byte, map[*sourceDoc]int, error) {
	offsets := make(map[*sourceDoc]int, len(sources))
	offset := 0
	for _, src := range sources {
		offsets[src] = offset
		offset += src.ctx.PageCount
	}

	if len(sources) == 1 {
		return sources[0].raw, offsets, nil
	}

	readers := make([]io.ReadSeeker, len(sources))
	for i, src := range sources {
		readers[i] = bytes.NewReader(src.raw)
	}

	var out bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &out, false, s.configuration("")); err != nil {
		return nil, nil, err
	}
	return out.Bytes(), offsets, nil
}

func (d *outputDoc) hasSource(src *sourceDoc) bool {
	for _, s := range d.sources {
		if s == src {
			return true
		}
	}
	return false
}

func visibleBox(inh *model.InheritedPageAttrs, pageNr int) (*types.Rectangle, error) {
	box := inh.CropBox
	if box == nil {
		box = inh.MediaBox
	}
	if box == nil {
		return nil, fmt.Errorf("pdfdoc: page %d has no media box", pageNr)
	}
	if box.Width() <= 0 || box.Height() <= 0 {
		return nil, fmt.Errorf("%w: page %d is %.2fx%.2f", ErrInvalidPageSize, pageNr, box.Width(), box.Height())
	}
	return box, nil
}

func normalizeRotation(rotate int) int {
	r := rotate % 360
	if r < 0 {
		r += 360
	}
	return r
}
