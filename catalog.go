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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen/pdf"
)

// catalog represents the document catalog.
//
// See section 7.7.2 of PDF 32000-1:2008.
type catalog struct {
	Pages         pdf.Reference // required
	Metadata      pdf.Reference
	OutputIntents []pdf.Dict
	PageLayout    pdf.Name
	PageMode      pdf.Name
}

func (c *catalog) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": c.Pages,
	}
	if c.Metadata.Number != 0 {
		dict["Metadata"] = c.Metadata
	}
	if len(c.OutputIntents) > 0 {
		intents := make(pdf.Array, len(c.OutputIntents))
		for i, oi := range c.OutputIntents {
			intents[i] = oi
		}
		dict["OutputIntents"] = intents
	}
	if c.PageLayout != "" {
		dict["PageLayout"] = c.PageLayout
	}
	if c.PageMode != "" {
		dict["PageMode"] = c.PageMode
	}
	return dict
}

// pageTree represents the root node of the page tree.
// All pages are direct children of the root.
type pageTree struct {
	Kids      []pdf.Reference
	Resources pdf.Dict
}

func (t *pageTree) AsDict() pdf.Dict {
	kids := make(pdf.Array, len(t.Kids))
	for i, ref := range t.Kids {
		kids[i] = ref
	}
	dict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(t.Kids)),
	}
	if len(t.Resources) > 0 {
		dict["Resources"] = t.Resources
	}
	return dict
}

// pageObject represents a leaf node of the page tree.
//
// See section 7.7.3.3 of PDF 32000-1:2008.
type pageObject struct {
	Parent    pdf.Reference
	MediaBox  rect.Rect
	TrimBox   rect.Rect
	CropBox   rect.Rect
	Rotate    int
	Resources pdf.Dict // omitted if empty
	Contents  pdf.Reference
}

func (p *pageObject) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   p.Parent,
		"MediaBox": pdf.Rect(p.MediaBox),
		"TrimBox":  pdf.Rect(p.TrimBox),
		"CropBox":  pdf.Rect(p.CropBox),
		"Rotate":   pdf.Integer(p.Rotate),
		"Contents": p.Contents,
	}
	if len(p.Resources) > 0 {
		dict["Resources"] = p.Resources
	}
	return dict
}
