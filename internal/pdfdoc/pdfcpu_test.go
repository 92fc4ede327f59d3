package pdfdoc_test

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nupmerge/internal/imposition"
	"nupmerge/internal/pdfdoc"
	"nupmerge/internal/pdfdoc/pdftest"
)

func TestLoad(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()

	doc, err := svc.Load(pdftest.Build(pdftest.Pages(3, pdftest.A4Portrait)...))
	require.NoError(t, err)
	assert.Equal(t, 3, svc.PageCount(doc))

	_, err = svc.Load(nil)
	assert.Error(t, err)

	_, err = svc.Load([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestCopyPageSizes(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	src, err := svc.Load(pdftest.Build(
		pdftest.A4Portrait,
		pdftest.Page{Width: 595.28, Height: 841.89, Rotate: 90},
		pdftest.Page{Width: 300, Height: 200, Rotate: 180},
	))
	require.NoError(t, err)
	out, err := svc.NewDocument()
	require.NoError(t, err)

	tests := []struct {
		index         int
		width, height float64
	}{
		{0, 595.28, 841.89},
		{1, 841.89, 595.28}, // quarter turn swaps the visible size
		{2, 300, 200},
	}
	for _, tt := range tests {
		page, err := svc.CopyPage(out, src, tt.index)
		require.NoError(t, err)
		w, h := svc.PageSize(page)
		assert.InDelta(t, tt.width, w, 0.01, "page %d width", tt.index)
		assert.InDelta(t, tt.height, h, 0.01, "page %d height", tt.index)
	}

	_, err = svc.CopyPage(out, src, 3)
	assert.ErrorIs(t, err, pdfdoc.ErrPageOutOfRange)
	_, err = svc.CopyPage(out, src, -1)
	assert.ErrorIs(t, err, pdfdoc.ErrPageOutOfRange)
}

func TestForeignHandles(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	src, err := svc.Load(pdftest.Build(pdftest.A4Portrait))
	require.NoError(t, err)
	outA, _ := svc.NewDocument()
	outB, _ := svc.NewDocument()

	_, err = svc.CopyPage(src, src, 0)
	assert.ErrorIs(t, err, pdfdoc.ErrForeignHandle)
	_, err = svc.CopyPage(outA, outB, 0)
	assert.ErrorIs(t, err, pdfdoc.ErrForeignHandle)

	pageA, err := svc.CopyPage(outA, src, 0)
	require.NoError(t, err)
	_, err = svc.Embed(outB, pageA)
	assert.ErrorIs(t, err, pdfdoc.ErrForeignHandle)

	drawableA, err := svc.Embed(outA, pageA)
	require.NoError(t, err)
	sheetB, err := svc.NewPage(outB, 100, 100)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Draw(sheetB, drawableA, 0, 0, 10, 10), pdfdoc.ErrForeignHandle)

	_, err = svc.Save(src)
	assert.ErrorIs(t, err, pdfdoc.ErrForeignHandle)
}

func TestInvalidSizes(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	out, _ := svc.NewDocument()

	_, err := svc.NewPage(out, 0, 100)
	assert.ErrorIs(t, err, pdfdoc.ErrInvalidPageSize)

	_, err = svc.Save(out)
	assert.ErrorIs(t, err, pdfdoc.ErrEmptyDocument)
}

func readBack(t *testing.T, svc pdfdoc.Service, data []byte) []imposition.PagePreview {
	t.Helper()
	pages, err := imposition.Preview(svc, data)
	require.NoError(t, err)
	return pages
}

func TestMergeRoundTrip(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	engine := imposition.New(svc)

	files := []imposition.SourceFile{
		{Name: "first.pdf", Data: pdftest.Build(pdftest.A4Portrait)},
		{Name: "second.pdf", Data: pdftest.Build(pdftest.A4Portrait)},
		{Name: "third.pdf", Data: pdftest.Build(pdftest.A4Portrait)},
	}
	grid := imposition.GridConfig{Rows: 2, Cols: 1, Padding: 10}
	paper := imposition.PaperConfig{Size: imposition.A4, Orientation: imposition.Portrait}

	merged, err := engine.Merge(context.Background(), files, grid, paper, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.PageCount)
	assert.Equal(t, "%PDF", string(merged.Data[:4]))

	pages := readBack(t, svc, merged.Data)
	require.Len(t, pages, 2)
	for _, p := range pages {
		assert.InDelta(t, 595.28, p.Width, 0.01)
		assert.InDelta(t, 841.89, p.Height, 0.01)
	}
	assert.Equal(t, "Page 2 (595×842pt)", pages[1].Label())
}

func TestMergeRoundTripMixedSources(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	engine := imposition.New(svc, imposition.WithLoadWorkers(2))

	files := []imposition.SourceFile{
		{Name: "deck.pdf", Data: pdftest.Build(pdftest.Pages(5, pdftest.A4Landscape)...)},
		{Name: "rotated.pdf", Data: pdftest.Build(pdftest.Page{Width: 612, Height: 792, Rotate: 270})},
		{Name: "square.pdf", Data: pdftest.Build(pdftest.Square, pdftest.Square)},
	}
	grid := imposition.GridConfig{Rows: 2, Cols: 2, Padding: 5}
	paper := imposition.PaperConfig{Size: imposition.A3, Orientation: imposition.Landscape}

	merged, err := engine.Merge(context.Background(), files, grid, paper, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.PageCount)
	require.Len(t, merged.Placements, 8)
	assert.InDelta(t, 792, merged.Placements[5].SrcWidth, 0.01)
	assert.InDelta(t, 612, merged.Placements[5].SrcHeight, 0.01)

	pages := readBack(t, svc, merged.Data)
	require.Len(t, pages, 2)
	for _, p := range pages {
		assert.InDelta(t, 1190.55, p.Width, 0.01)
		assert.InDelta(t, 841.89, p.Height, 0.01)
	}
}

func TestMergeSingleFileSinglePage(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	merged, err := imposition.New(svc).Merge(context.Background(),
		[]imposition.SourceFile{{Name: "one.pdf", Data: pdftest.Build(pdftest.Square)}},
		imposition.GridConfig{Rows: 1, Cols: 1},
		imposition.PaperConfig{Size: imposition.Letter},
		nil,
	)
	require.NoError(t, err)

	pages := readBack(t, svc, merged.Data)
	require.Len(t, pages, 1)
	assert.Equal(t, "Page 1 (612×792pt)", pages[0].Label())
}

var drawOp = regexp.MustCompile(`q (\S+) 0 0 (\S+) (\S+) (\S+) cm /(Fm\d+) Do Q`)

func parseFloats(t *testing.T, ss ...string) []float64 {
	t.Helper()
	out := make([]float64, len(ss))
	for i, s := range ss {
		f, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "operand %q", s)
		out[i] = f
	}
	return out
}

func TestMergeContentStreamMatchesPlacements(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	files := []imposition.SourceFile{
		{Name: "deck.pdf", Data: pdftest.Build(pdftest.Pages(3, pdftest.A4Landscape)...)},
		{Name: "square.pdf", Data: pdftest.Build(pdftest.Square)},
	}
	grid := imposition.GridConfig{Rows: 2, Cols: 2, Padding: 8}
	paper := imposition.PaperConfig{Size: imposition.A4, Orientation: imposition.Portrait}

	merged, err := imposition.New(svc).Merge(context.Background(), files, grid, paper, nil)
	require.NoError(t, err)
	require.Equal(t, 1, merged.PageCount)
	require.Len(t, merged.Placements, 4)

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(merged.Data), model.NewDefaultConfiguration())
	require.NoError(t, err)
	pageDict, _, _, err := ctx.PageDict(1, false)
	require.NoError(t, err)
	content, err := ctx.PageContent(pageDict, 1)
	require.NoError(t, err)

	ops := drawOp.FindAllStringSubmatch(string(content), -1)
	require.Len(t, ops, len(merged.Placements), "content stream:\n%s", content)

	xobjects := pageDict.DictEntry("Resources").DictEntry("XObject")
	require.NotNil(t, xobjects, "page has no XObject resources")

	for i, op := range ops {
		p := merged.Placements[i]
		got := parseFloats(t, op[1], op[2], op[3], op[4])
		assert.InDelta(t, p.Scale, got[0], 1e-4, "placement %d sx", i)
		assert.InDelta(t, p.Scale, got[1], 1e-4, "placement %d sy", i)
		assert.InDelta(t, p.X, got[2], 1e-4, "placement %d x", i)
		assert.InDelta(t, p.Y, got[3], 1e-4, "placement %d y", i)

		ref, ok := xobjects.Find(op[5])
		require.True(t, ok, "resource /%s missing", op[5])
		form, _, err := ctx.DereferenceStreamDict(ref)
		require.NoError(t, err)
		require.NotNil(t, form)
		subtype := form.Dict.NameEntry("Subtype")
		require.NotNil(t, subtype)
		assert.Equal(t, "Form", *subtype)
	}
}

func encrypted(t *testing.T, userPW, ownerPW string, pages ...pdftest.Page) []byte {
	t.Helper()
	var out bytes.Buffer
	conf := model.NewAESConfiguration(userPW, ownerPW, 256)
	require.NoError(t, pdfapi.Encrypt(bytes.NewReader(pdftest.Build(pages...)), &out, conf))
	return out.Bytes()
}

func TestLoadEncrypted(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	data := encrypted(t, "reader", "owner", pdftest.A4Portrait, pdftest.Square)

	doc, err := svc.Load(data, pdfdoc.WithPassword("reader"))
	require.NoError(t, err)
	assert.Equal(t, 2, svc.PageCount(doc))

	doc, err = svc.Load(data, pdfdoc.WithPassword("owner"))
	require.NoError(t, err)
	assert.Equal(t, 2, svc.PageCount(doc))

	_, err = svc.Load(data, pdfdoc.WithPassword("guess"))
	assert.ErrorIs(t, err, pdfcpu.ErrWrongPassword)

	_, err = svc.Load(data)
	assert.ErrorIs(t, err, pdfcpu.ErrWrongPassword)
}

func TestMergeEncryptedSource(t *testing.T) {
	svc := pdfdoc.NewPDFCPU()
	files := []imposition.SourceFile{
		{Name: "plain.pdf", Data: pdftest.Build(pdftest.A4Portrait)},
		{Name: "locked.pdf", Data: encrypted(t, "reader", "owner", pdftest.A4Portrait), Password: "reader"},
	}
	grid := imposition.GridConfig{Rows: 2, Cols: 1}
	paper := imposition.PaperConfig{Size: imposition.A4}

	merged, err := imposition.New(svc).Merge(context.Background(), files, grid, paper, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, merged.PageCount)
	assert.Len(t, readBack(t, svc, merged.Data), 1)

	files[1].Password = "wrong"
	_, err = imposition.New(svc).Merge(context.Background(), files, grid, paper, nil)
	assert.ErrorIs(t, err, pdfcpu.ErrWrongPassword)
	var invalid *imposition.InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "locked.pdf", invalid.File)
}
