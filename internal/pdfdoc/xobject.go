package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Entries that only make sense for the original page geometry.
var staleOutputPageKeys = []string{"TrimBox", "BleedBox", "ArtBox", "Annots", "Thumb", "B", "Group", "StructParents"}

// formXObject wraps page pageNr of ctx into a Form XObject whose bounding box
// is the visible page, rotation baked in, lower-left corner at the origin.
func formXObject(ctx *model.Context, pageNr int, cp *copiedPage) (*types.IndirectRef, error) {
	pageDict, _, inh, err := ctx.PageDict(pageNr, true)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d not found", pageNr)
	}

	content, err := ctx.PageContent(pageDict, pageNr)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("q ")
	if cp.rotate != 0 {
		buf.Write(model.ContentBytesForPageRotation(cp.rotate, cp.box.Width(), cp.box.Height()))
	}
	fmt.Fprintf(&buf, "1 0 0 1 %.5f %.5f cm ", -cp.box.LL.X, -cp.box.LL.Y)
	buf.Write(content)
	buf.WriteString(" Q ")

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	sd.Dict["Type"] = types.Name("XObject")
	sd.Dict["Subtype"] = types.Name("Form")
	sd.Dict["BBox"] = types.RectForWidthAndHeight(0, 0, cp.width, cp.height).Array()
	if res, ok := pageDict["Resources"]; ok && res != nil {
		sd.Dict["Resources"] = res
	} else if len(inh.Resources) > 0 {
		sd.Dict["Resources"] = inh.Resources
	}
	if err := sd.Encode(); err != nil {
		return nil, err
	}

	return ctx.IndRefForNewObject(*sd)
}

// imposePage turns page pageNr of ctx into output page p: new boxes, no
// rotation, and a content stream that draws every placed form.
func imposePage(ctx *model.Context, pageNr int, p *outputPage, forms map[*copiedPage]*types.IndirectRef) error {
	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return err
	}
	if pageDict == nil {
		return fmt.Errorf("page %d not found", pageNr)
	}

	newBox := types.RectForWidthAndHeight(0, 0, p.width, p.height)
	pageDict["MediaBox"] = newBox.Array()
	pageDict["CropBox"] = newBox.Array()
	pageDict["Rotate"] = types.Integer(0)
	for _, key := range staleOutputPageKeys {
		pageDict.Delete(key)
	}

	xobjects := types.Dict{}
	var buf bytes.Buffer
	for _, op := range p.ops {
		ref, ok := forms[op.d.page]
		if !ok {
			return fmt.Errorf("drawable %s was never embedded", op.d.name)
		}
		xobjects[op.d.name] = *ref
		sx := op.width / op.d.page.width
		sy := op.height / op.d.page.height
		fmt.Fprintf(&buf, "q %.5f 0 0 %.5f %.5f %.5f cm /%s Do Q\n", sx, sy, op.x, op.y, op.d.name)
	}
	pageDict["Resources"] = types.Dict{"XObject": xobjects}

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return err
	}
	if err := sd.Encode(); err != nil {
		return err
	}
	indRef, err := ctx.IndRefForNewObject(*sd)
	if err != nil {
		return err
	}
	pageDict["Contents"] = *indRef
	return nil
}
