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

package font

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName    string // required
	Flags       Flags
	FontBBox    rect.Rect // required
	ItalicAngle float64   // required
	Ascent      float64   // required
	Descent     float64   // required
	CapHeight   float64   // required
	StemV       float64   // required (0 = unknown)

	// FontFile3 refers to the embedded font program.
	FontFile3 pdf.Reference
}

// AsDict converts the font descriptor into a PDF dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       pdf.Integer(d.Flags),
		"FontBBox":    pdf.Rect(d.FontBBox),
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"CapHeight":   pdf.Number(d.CapHeight),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.FontFile3.Number != 0 {
		dict["FontFile3"] = d.FontFile3
	}
	return dict
}

// Flags represents PDF Font Descriptor Flags.
// See section 9.8.2 of PDF 32000-1:2008.
type Flags uint32

// Possible values for PDF Font Descriptor Flags.
const (
	FlagFixedPitch  Flags = 1 << 0  // All glyphs have the same width.
	FlagSerif       Flags = 1 << 1  // Glyphs have serifs.
	FlagSymbolic    Flags = 1 << 2  // Font contains glyphs outside the Adobe standard Latin character set.
	FlagScript      Flags = 1 << 3  // Glyphs resemble cursive handwriting.
	FlagNonsymbolic Flags = 1 << 5  // Font uses the Adobe standard Latin character set or a subset of it.
	FlagItalic      Flags = 1 << 6  // Glyphs have dominant vertical strokes that are slanted.
	FlagAllCap      Flags = 1 << 16 // Font contains no lowercase letters.
	FlagSmallCap    Flags = 1 << 17 // Lowercase letters are drawn as small capitals.
	FlagForceBold   Flags = 1 << 18 // Bold glyphs are painted with extra pixels even at small text sizes.
)
