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
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/metrics"
	"seehuhn.de/go/pdfgen/internal/borrow"
	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// ErrConsumed is returned by [Document.Save] if the document has already
// been saved.
var ErrConsumed = errors.New("pdfgen: document has already been saved")

// Options control the creation of a new document.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// IDSource generates the document and instance identifiers.
	// The default is [RandomIDs].
	IDSource IDSource

	// Loader parses font programs.  The default is [metrics.SFNT].
	Loader metrics.Loader

	// Now returns the current time.  This is used for the creation and
	// modification dates.  The default is [time.Now].
	Now func() time.Time
}

// Document is a PDF document under construction.
//
// Pages and layers are referred to by index.  The methods of Document and of
// the page and layer references check that the document is not modified
// while it is being read, for example while iterating over the pages; a
// violation causes a panic.
type Document struct {
	cell borrow.Cell

	store *pdf.Store
	pages []*page
	fonts *font.Registry
	icc   []*metadata.ICCProfile
	meta  *metadata.Metadata

	id  string
	ids IDSource

	consumed bool
}

// New creates a new document with a single page of the given size, in PDF
// points.  The page has a single layer with the given name.
func New(title string, width, height float64, layerName string, opt *Options) (*Document, PageIndex, LayerIndex) {
	if opt == nil {
		opt = &Options{}
	}
	ids := opt.IDSource
	if ids == nil {
		ids = RandomIDs()
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}

	meta := metadata.New(title, now())
	store := pdf.NewStore(&pdf.StoreOptions{Version: meta.Conformance.PDFVersion()})
	d := &Document{
		store: store,
		fonts: font.NewRegistry(store, opt.Loader),
		meta:  meta,
		id:    ids.NewID(),
		ids:   ids,
	}
	d.pages = append(d.pages, newPage(width, height, layerName))
	return d, 0, 0
}

// check panics if the document has been saved.
func (d *Document) check() {
	if d.consumed {
		panic(ErrConsumed)
	}
}

// read acquires shared access to the document.
func (d *Document) read() func() {
	d.check()
	return d.cell.Borrow()
}

// write acquires exclusive access to the document.
func (d *Document) write() func() {
	d.check()
	return d.cell.BorrowMut()
}

// ID returns the document identifier, the first element of the trailer ID
// array.
func (d *Document) ID() string {
	defer d.read()()
	return d.id
}

// SetID replaces the document identifier.  This should be used when a
// document is written which represents a new version of an existing file.
func (d *Document) SetID(id string) *Document {
	defer d.write()()
	d.id = id
	return d
}

// AddPage appends a new page of the given size, in PDF points, with a single
// layer.
func (d *Document) AddPage(width, height float64, layerName string) (PageIndex, LayerIndex) {
	defer d.write()()
	d.pages = append(d.pages, newPage(width, height, layerName))
	return PageIndex(len(d.pages) - 1), 0
}

// AddEmptyPage appends a new page without any layers.
func (d *Document) AddEmptyPage(width, height float64) PageIndex {
	defer d.write()()
	d.pages = append(d.pages, &page{width: width, height: height})
	return PageIndex(len(d.pages) - 1)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	defer d.read()()
	return len(d.pages)
}

// Page returns a reference to the given page.
// Page panics if the index is out of range.
func (d *Document) Page(idx PageIndex) PageRef {
	defer d.read()()
	d.page(idx)
	return PageRef{doc: d, idx: idx}
}

func (d *Document) page(idx PageIndex) *page {
	if idx < 0 || int(idx) >= len(d.pages) {
		panic(fmt.Sprintf("pdfgen: page index %d out of range [0, %d)", idx, len(d.pages)))
	}
	return d.pages[idx]
}

// Pages iterates over all pages of the document.  The document cannot be
// modified during the iteration, but the pages can be inspected.
func (d *Document) Pages() iter.Seq2[PageIndex, PageRef] {
	return func(yield func(PageIndex, PageRef) bool) {
		defer d.read()()
		for i := range d.pages {
			if !yield(PageIndex(i), PageRef{doc: d, idx: PageIndex(i)}) {
				return
			}
		}
	}
}

// AddFont reads a font program from r and adds it to the document.
//
// Fonts are identified by their PostScript name.  If a font with the same
// name has been added before, the handle of the existing font is returned
// and the new font data is discarded.
func (d *Document) AddFont(r io.Reader) (font.IndirectRef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return font.IndirectRef{}, &font.DecodeError{Op: "read", Err: err}
	}

	defer d.write()()
	return d.fonts.Register(data)
}

// GetFont returns the font registered under h.
// The second return value is false if h does not belong to this document.
func (d *Document) GetFont(h font.IndirectRef) (*font.DirectRef, bool) {
	defer d.read()()
	return d.fonts.Resolve(h)
}

// AddICCProfile adds an ICC profile to the document.  The first profile
// added is used as the destination profile of the output intent.
func (d *Document) AddICCProfile(data []byte) error {
	profile, err := metadata.NewICCProfile(data)
	if err != nil {
		return err
	}

	defer d.write()()
	d.icc = append(d.icc, profile)
	return nil
}

// AddObject adds an object, for example an image XObject, to the file.
// The returned reference can be used in layer resources.
func (d *Document) AddObject(obj pdf.Object) (pdf.Reference, error) {
	defer d.write()()
	return d.store.Add(obj)
}

// CheckForErrors checks the document against its conformance level.
// This is not implemented yet: a warning is logged and nil is returned.
func (d *Document) CheckForErrors() error {
	defer d.read()()
	logging.Logger().Warn("checking PDF files for errors is not supported",
		"conformance", d.meta.Conformance.String())
	return nil
}

// RepairErrors tries to change the document to match the given conformance
// level.  This is not implemented yet: a warning is logged and nil is
// returned.
func (d *Document) RepairErrors(c metadata.Conformance) error {
	defer d.read()()
	logging.Logger().Warn("repairing PDF files is not supported",
		"conformance", c.String())
	return nil
}
