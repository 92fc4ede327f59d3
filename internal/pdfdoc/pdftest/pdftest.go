// Package pdftest builds small, well-formed PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Page describes one page of a generated document in pt.
type Page struct {
	Width  float64
	Height float64
	Rotate int
}

var (
	A4Portrait  = Page{Width: 595.28, Height: 841.89}
	A4Landscape = Page{Width: 841.89, Height: 595.28}
	Square      = Page{Width: 300, Height: 300}
)

// Pages returns n copies of p.
func Pages(n int, p Page) []Page {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = p
	}
	return pages
}

// Build writes a PDF 1.4 file with a classic xref table. Each page carries a
// content stream that strokes its diagonal.
func Build(pages ...Page) []byte {
	// 1: catalog, 2: page tree, then a page dict and a content stream per page.
	objCount := 2 + 2*len(pages)
	offsets := make([]int, objCount+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	for i, p := range pages {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1

		rotate := ""
		if p.Rotate != 0 {
			rotate = fmt.Sprintf(" /Rotate %d", p.Rotate)
		}
		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f]%s /Resources << >> /Contents %d 0 R >>",
			p.Width, p.Height, rotate, contentNum))

		content := fmt.Sprintf("0 0 m %.2f %.2f l S", p.Width, p.Height)
		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", objCount+1, xrefOffset)

	return buf.Bytes()
}
