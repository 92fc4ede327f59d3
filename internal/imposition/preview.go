package imposition

import (
	"fmt"
	"math"

	"nupmerge/internal/pdfdoc"
)

// PagePreview describes one page of a merged document.
type PagePreview struct {
	Number int
	Width  float64
	Height float64
}

func (p PagePreview) Label() string {
	return fmt.Sprintf("Page %d (%d×%dpt)", p.Number, int(math.Round(p.Width)), int(math.Round(p.Height)))
}

// Preview reads back the page sizes of a serialized document.
func Preview(svc pdfdoc.Service, data []byte) ([]PagePreview, error) {
	doc, err := svc.Load(data)
	if err != nil {
		return nil, err
	}
	scratch, err := svc.NewDocument()
	if err != nil {
		return nil, err
	}

	n := svc.PageCount(doc)
	pages := make([]PagePreview, 0, n)
	for i := 0; i < n; i++ {
		page, err := svc.CopyPage(scratch, doc, i)
		if err != nil {
			return nil, err
		}
		w, h := svc.PageSize(page)
		pages = append(pages, PagePreview{Number: i + 1, Width: w, Height: h})
	}
	return pages, nil
}
