// seehuhn.de/go/pdfgen - generate PDF files from an in-memory document model
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfgen

import (
	"bytes"
	"io"
	"maps"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// SaveOptions control how a document is written.
// The zero value, or a nil pointer, selects the defaults.
type SaveOptions struct {
	// HumanReadable disables the optimisation pass.  Unused objects are
	// kept, and streams are not compressed.
	HumanReadable bool
}

// Save writes the document to w.
//
// Save consumes the document: afterwards the document cannot be used
// anymore, and a second call to Save returns [ErrConsumed].  This is also
// the case if Save fails.
func (d *Document) Save(w io.Writer, opt *SaveOptions) error {
	if d.consumed {
		return ErrConsumed
	}
	defer d.cell.BorrowMut()()
	d.consumed = true

	if opt == nil {
		opt = &SaveOptions{}
	}
	return d.assemble(w, opt)
}

func (d *Document) assemble(w io.Writer, opt *SaveOptions) error {
	store := d.store
	store.SetVersion(d.meta.Conformance.PDFVersion())

	pagesRef, err := store.Alloc()
	if err != nil {
		return err
	}

	var profile *metadata.ICCProfile
	if len(d.icc) > 0 {
		profile = d.icc[0]
	}
	meta, err := metadata.Sync(d.meta, d.id, profile)
	if err != nil {
		return err
	}
	xmpRef, err := store.Add(meta.XMP)
	if err != nil {
		return err
	}
	infoRef, err := store.Add(meta.Info)
	if err != nil {
		return err
	}

	intent := metadata.FOGRA39()
	if meta.ICC != nil {
		intent.DestinationOutputProfile, err = store.Add(meta.ICC)
		if err != nil {
			return err
		}
	}

	cat := &catalog{
		Pages:         pagesRef,
		Metadata:      xmpRef,
		OutputIntents: []pdf.Dict{intent.AsDict()},
		PageLayout:    "OneColumn",
		PageMode:      "Use0",
	}

	fontResources := d.fonts.ResourceDict()
	tree := &pageTree{}
	for _, pg := range d.pages {
		ref, err := d.writePage(pg, pagesRef, fontResources)
		if err != nil {
			return err
		}
		tree.Kids = append(tree.Kids, ref)
	}

	if len(fontResources) > 0 {
		tree.Resources = pdf.Dict{"Font": fontResources}
	}
	_, err = d.fonts.Embed()
	if err != nil {
		return err
	}
	err = store.Put(pagesRef, tree.AsDict())
	if err != nil {
		return err
	}

	catRef, err := store.Add(cat.AsDict())
	if err != nil {
		return err
	}
	store.SetTrailer("Root", catRef)
	store.SetTrailer("Info", infoRef)
	store.SetTrailer("ID", pdf.Array{
		pdf.String(d.id),
		pdf.String(d.ids.NewID()),
	})

	if !opt.HumanReadable {
		store.Prune()
		store.DeleteZeroLengthStreams()
		err = store.Compress()
		if err != nil {
			return err
		}
	}

	logging.Logger().Debug("writing PDF file",
		"version", store.Version().String(),
		"objects", store.Len(),
		"pages", len(d.pages),
		"fonts", d.fonts.Len(),
		"optimized", !opt.HumanReadable)

	return store.Write(w)
}

// writePage adds the content stream and the page dictionary of pg to the
// store.
func (d *Document) writePage(pg *page, parent pdf.Reference, fonts pdf.Dict) (pdf.Reference, error) {
	box := rect.Rect{URx: pg.width, URy: pg.height}

	resources := pdf.Dict{}
	contents := &bytes.Buffer{}
	for _, ly := range pg.layers {
		if len(ly.xObjects) > 0 {
			resources["XObject"] = mergeDict(resources["XObject"], ly.xObjects)
		}
		if len(ly.extGState) > 0 {
			resources["ExtGState"] = mergeDict(resources["ExtGState"], ly.extGState)
		}
		contents.Write(ly.content.Bytes())
	}
	if len(resources) > 0 && len(fonts) > 0 {
		// page resources replace the inherited ones
		resources["Font"] = fonts
	}

	contentRef, err := d.store.Add(&pdf.Stream{Data: contents.Bytes()})
	if err != nil {
		return pdf.Reference{}, err
	}

	obj := &pageObject{
		Parent:    parent,
		MediaBox:  box,
		TrimBox:   box,
		CropBox:   box,
		Resources: resources,
		Contents:  contentRef,
	}
	return d.store.Add(obj.AsDict())
}

func mergeDict(a pdf.Object, b pdf.Dict) pdf.Dict {
	res, _ := a.(pdf.Dict)
	if res == nil {
		res = pdf.Dict{}
	}
	maps.Copy(res, b)
	return res
}
