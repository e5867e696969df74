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

// Package pdfgen builds PDF files from an in-memory document model.
//
// A [Document] consists of pages, and every page consists of one or more
// layers.  Each layer holds a content stream; the layers of a page are
// merged into a single content stream when the document is written.
// Fonts are added using [Document.AddFont] and are embedded in full, as
// composite fonts with Identity-H encoding.
//
// The document information dictionary, the XMP metadata stream and the
// output intent are all generated from the same metadata record when
// [Document.Save] is called, so that they always agree.
//
// A minimal example:
//
//	doc, page, layer := pdfgen.New("Example", pdfgen.A4.URx, pdfgen.A4.URy, "Layer 1", nil)
//	F, err := doc.AddFont(bytes.NewReader(goregular.TTF))
//	if err != nil {
//		...
//	}
//	doc.Page(page).Layer(layer).ShowText(F, 24, 72, 720, "Hello World")
//	err = doc.Save(w, nil)
package pdfgen
