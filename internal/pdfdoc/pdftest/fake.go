package pdftest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"nupmerge/internal/pdfdoc"
)

// Fake is an in-memory pdfdoc.Service. Source "documents" are encoded as text:
// one line per page, "WIDTHxHEIGHT" (see FakeDoc). Anything else fails to load.
// It records every draw so tests can inspect the imposed geometry.
type Fake struct {
	mu sync.Mutex

	// SaveErr, when set, is returned by Save.
	SaveErr error

	Loads   int
	Outputs []*FakeOutput
}

// FakeDoc encodes pages for Fake.Load.
func FakeDoc(pages ...Page) []byte {
	lines := make([]string, len(pages))
	for i, p := range pages {
		lines[i] = fmt.Sprintf("%gx%g", p.Width, p.Height)
	}
	return []byte("FAKEPDF\n" + strings.Join(lines, "\n"))
}

var ErrNotFake = errors.New("pdftest: not a fake document")

type FakeSource struct {
	Pages []Page
}

type FakeOutput struct {
	Pages []*FakeOutputPage
}

type FakeCopy struct {
	Owner  *FakeOutput
	Source *FakeSource
	Index  int
}

type FakeDrawable struct {
	Owner *FakeOutput
	Copy  *FakeCopy
}

type FakeOutputPage struct {
	Owner  *FakeOutput
	Width  float64
	Height float64
	Draws  []FakeDraw
}

type FakeDraw struct {
	Source *FakeSource
	Index  int
	X, Y   float64
	Width  float64
	Height float64
}

var _ pdfdoc.Service = (*Fake)(nil)

func (f *Fake) Load(data []byte, _ ...pdfdoc.LoadOption) (pdfdoc.Document, error) {
	f.mu.Lock()
	f.Loads++
	f.mu.Unlock()

	text := string(data)
	if !strings.HasPrefix(text, "FAKEPDF\n") {
		return nil, ErrNotFake
	}
	src := &FakeSource{}
	for _, line := range strings.Split(strings.TrimPrefix(text, "FAKEPDF\n"), "\n") {
		if line == "" {
			continue
		}
		w, h, ok := strings.Cut(line, "x")
		if !ok {
			return nil, fmt.Errorf("pdftest: bad page %q", line)
		}
		var p Page
		var err error
		if p.Width, err = strconv.ParseFloat(w, 64); err != nil {
			return nil, fmt.Errorf("pdftest: bad page %q: %w", line, err)
		}
		if p.Height, err = strconv.ParseFloat(h, 64); err != nil {
			return nil, fmt.Errorf("pdftest: bad page %q: %w", line, err)
		}
		src.Pages = append(src.Pages, p)
	}
	return src, nil
}

func (f *Fake) PageCount(doc pdfdoc.Document) int {
	switch d := doc.(type) {
	case *FakeSource:
		return len(d.Pages)
	case *FakeOutput:
		return len(d.Pages)
	}
	return 0
}

func (f *Fake) NewDocument() (pdfdoc.Document, error) {
	out := &FakeOutput{}
	f.mu.Lock()
	f.Outputs = append(f.Outputs, out)
	f.mu.Unlock()
	return out, nil
}

// LastOutput is the most recently created output document.
func (f *Fake) LastOutput() *FakeOutput {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Outputs) == 0 {
		return nil
	}
	return f.Outputs[len(f.Outputs)-1]
}

func (f *Fake) CopyPage(dst, src pdfdoc.Document, index int) (pdfdoc.Page, error) {
	out, ok := dst.(*FakeOutput)
	if !ok {
		return nil, pdfdoc.ErrForeignHandle
	}
	in, ok := src.(*FakeSource)
	if !ok {
		return nil, pdfdoc.ErrForeignHandle
	}
	if index < 0 || index >= len(in.Pages) {
		return nil, pdfdoc.ErrPageOutOfRange
	}
	return &FakeCopy{Owner: out, Source: in, Index: index}, nil
}

func (f *Fake) PageSize(page pdfdoc.Page) (float64, float64) {
	c, ok := page.(*FakeCopy)
	if !ok {
		return 0, 0
	}
	p := c.Source.Pages[c.Index]
	return p.Width, p.Height
}

func (f *Fake) Embed(dst pdfdoc.Document, page pdfdoc.Page) (pdfdoc.Drawable, error) {
	out, ok := dst.(*FakeOutput)
	if !ok {
		return nil, pdfdoc.ErrForeignHandle
	}
	c, ok := page.(*FakeCopy)
	if !ok || c.Owner != out {
		return nil, pdfdoc.ErrForeignHandle
	}
	return &FakeDrawable{Owner: out, Copy: c}, nil
}

func (f *Fake) NewPage(doc pdfdoc.Document, width, height float64) (pdfdoc.OutputPage, error) {
	out, ok := doc.(*FakeOutput)
	if !ok {
		return nil, pdfdoc.ErrForeignHandle
	}
	p := &FakeOutputPage{Owner: out, Width: width, Height: height}
	out.Pages = append(out.Pages, p)
	return p, nil
}

func (f *Fake) Draw(page pdfdoc.OutputPage, d pdfdoc.Drawable, x, y, width, height float64) error {
	p, ok := page.(*FakeOutputPage)
	if !ok {
		return pdfdoc.ErrForeignHandle
	}
	dr, ok := d.(*FakeDrawable)
	if !ok || dr.Owner != p.Owner {
		return pdfdoc.ErrForeignHandle
	}
	p.Draws = append(p.Draws, FakeDraw{
		Source: dr.Copy.Source,
		Index:  dr.Copy.Index,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
	return nil
}

// Save renders the output as FakeDoc text, one line per output page.
func (f *Fake) Save(doc pdfdoc.Document) ([]byte, error) {
	out, ok := doc.(*FakeOutput)
	if !ok {
		return nil, pdfdoc.ErrForeignHandle
	}
	if f.SaveErr != nil {
		return nil, f.SaveErr
	}
	pages := make([]Page, len(out.Pages))
	for i, p := range out.Pages {
		pages[i] = Page{Width: p.Width, Height: p.Height}
	}
	return FakeDoc(pages...), nil
}
