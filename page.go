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
	"fmt"
	"strconv"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/pdf"
)

// PageIndex identifies a page within a [Document].
type PageIndex int

// LayerIndex identifies a layer within a page.
type LayerIndex int

type page struct {
	width, height float64
	layers        []*layer
}

type layer struct {
	name    string
	content bytes.Buffer

	xObjects  pdf.Dict
	extGState pdf.Dict
}

func newPage(width, height float64, layerName string) *page {
	return &page{
		width:  width,
		height: height,
		layers: []*layer{{name: layerName}},
	}
}

func (p *page) layer(idx LayerIndex) *layer {
	if idx < 0 || int(idx) >= len(p.layers) {
		panic(fmt.Sprintf("pdfgen: layer index %d out of range [0, %d)", idx, len(p.layers)))
	}
	return p.layers[idx]
}

// PageRef refers to a page of a document.
type PageRef struct {
	doc *Document
	idx PageIndex
}

// Index returns the index of the page within the document.
func (p PageRef) Index() PageIndex {
	return p.idx
}

// Size returns the width and height of the page, in PDF points.
func (p PageRef) Size() (width, height float64) {
	defer p.doc.read()()
	pg := p.doc.page(p.idx)
	return pg.width, pg.height
}

// NumLayers returns the number of layers on the page.
func (p PageRef) NumLayers() int {
	defer p.doc.read()()
	return len(p.doc.page(p.idx).layers)
}

// AddLayer adds a new layer on top of the existing layers.
func (p PageRef) AddLayer(name string) LayerIndex {
	defer p.doc.write()()
	pg := p.doc.page(p.idx)
	pg.layers = append(pg.layers, &layer{name: name})
	return LayerIndex(len(pg.layers) - 1)
}

// Layer returns a reference to the given layer.
// Layer panics if the index is out of range.
func (p PageRef) Layer(idx LayerIndex) LayerRef {
	defer p.doc.read()()
	p.doc.page(p.idx).layer(idx)
	return LayerRef{doc: p.doc, page: p.idx, idx: idx}
}

// LayerRef refers to a layer of a page.  The content of all layers of a page
// is concatenated, in the order the layers were created, when the document is
// saved.
type LayerRef struct {
	doc  *Document
	page PageIndex
	idx  LayerIndex
}

func (l LayerRef) get() *layer {
	return l.doc.page(l.page).layer(l.idx)
}

// Name returns the name of the layer.
func (l LayerRef) Name() string {
	defer l.doc.read()()
	return l.get().name
}

// Content returns a copy of the content stream of the layer.
func (l LayerRef) Content() []byte {
	defer l.doc.read()()
	return bytes.Clone(l.get().content.Bytes())
}

// Write appends raw content stream operators to the layer.
// This implements the [io.Writer] interface.
func (l LayerRef) Write(p []byte) (int, error) {
	defer l.doc.write()()
	return l.get().content.Write(p)
}

// ShowText draws a line of text at position (x, y), using a font which was
// added to the document with [Document.AddFont].
//
// Each character is drawn using the glyph the font provides for it; no text
// shaping is performed.  Characters outside the Basic Multilingual Plane and
// characters not supported by the font are shown using glyph 0.
func (l LayerRef) ShowText(f font.IndirectRef, size, x, y float64, text string) error {
	defer l.doc.write()()
	face := l.doc.fonts.Face(f)
	if face == nil {
		return fmt.Errorf("pdfgen: unknown font %q", f)
	}
	ly := l.get()

	var codes []byte
	for _, r := range text {
		gid := face.GlyphIndex(r)
		if r > 0xFFFF {
			gid = 0
		}
		codes = append(codes, byte(gid>>8), byte(gid))
	}

	buf := &ly.content
	buf.WriteString("BT\n")
	f.Label().PDF(buf)
	buf.WriteString(" " + formatNumber(size) + " Tf\n")
	buf.WriteString(formatNumber(x) + " " + formatNumber(y) + " Td\n")
	pdf.String(codes).PDF(buf)
	buf.WriteString(" Tj\nET\n")
	return nil
}

// AddXObject makes an external object, for example an image, available to
// the layer under the given name.
func (l LayerRef) AddXObject(name pdf.Name, ref pdf.Reference) {
	defer l.doc.write()()
	ly := l.get()
	if ly.xObjects == nil {
		ly.xObjects = pdf.Dict{}
	}
	ly.xObjects[name] = ref
}

// AddExtGState makes a graphics state parameter dictionary available to the
// layer under the given name.
func (l LayerRef) AddExtGState(name pdf.Name, obj pdf.Object) {
	defer l.doc.write()()
	ly := l.get()
	if ly.extGState == nil {
		ly.extGState = pdf.Dict{}
	}
	ly.extGState[name] = obj
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
