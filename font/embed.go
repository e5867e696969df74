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
	"bytes"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfgen/font/metrics"
	"seehuhn.de/go/pdfgen/pdf"
)

// Identity is the character collection used for all embedded fonts.
var Identity = &cid.SystemInfo{
	Registry:   "Adobe",
	Ordering:   "Identity",
	Supplement: 0,
}

// Type0 represents a composite font dictionary.
//
// See section 9.7.6 of PDF 32000-1:2008.
type Type0 struct {
	BaseFont       string
	Encoding       pdf.Name
	DescendantFont pdf.Reference
	ToUnicode      pdf.Reference
}

// AsDict converts the font into a PDF dictionary.
func (f *Type0) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(f.BaseFont),
		"Encoding":        f.Encoding,
		"DescendantFonts": pdf.Array{f.DescendantFont},
	}
	if f.ToUnicode.Number != 0 {
		dict["ToUnicode"] = f.ToUnicode
	}
	return dict
}

// CIDFont represents a CIDFontType0 dictionary.
//
// See section 9.7.4 of PDF 32000-1:2008.
type CIDFont struct {
	BaseFont       string
	ROS            *cid.SystemInfo
	FontDescriptor pdf.Reference
	DW             int
	W              pdf.Array
}

// AsDict converts the CIDFont into a PDF dictionary.
func (f *CIDFont) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType0"),
		"BaseFont": pdf.Name(f.BaseFont),
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String(f.ROS.Registry),
			"Ordering":   pdf.String(f.ROS.Ordering),
			"Supplement": pdf.Integer(f.ROS.Supplement),
		},
		"FontDescriptor": f.FontDescriptor,
	}
	if f.DW != 0 {
		dict["DW"] = pdf.Integer(f.DW)
	}
	if len(f.W) > 0 {
		dict["W"] = f.W
	}
	return dict
}

// Embed writes the font to the store.  The Type0 font dictionary is stored
// under ref, which must have been allocated before.  All other objects are
// allocated by Embed.
//
// The font program is embedded in full and is never compressed.
func (f *Font) Embed(store *pdf.Store, ref pdf.Reference, loader metrics.Loader) error {
	face, err := load(f.Data, loader)
	if err != nil {
		return err
	}
	return embedFace(store, ref, f, face)
}

func embedFace(store *pdf.Store, ref pdf.Reference, f *Font, face metrics.Face) error {
	size, err := face.SizeMetrics()
	if err != nil {
		return &DecodeError{Op: "size metrics", Err: err}
	}
	glyphs := ScanGlyphs(face)

	buf := &bytes.Buffer{}
	err = glyphs.WriteToUnicode(buf)
	if err != nil {
		return err
	}
	toUnicodeRef, err := store.Add(&pdf.Stream{Data: buf.Bytes()})
	if err != nil {
		return err
	}

	fontFileRef, err := store.Add(&pdf.Stream{
		Dict: pdf.Dict{
			"Subtype": pdf.Name("CIDFontType0C"),
			"Length1": pdf.Integer(len(f.Data)),
		},
		Data:       f.Data,
		NoCompress: true,
	})
	if err != nil {
		return err
	}

	maxHeight := float64(glyphs.MaxHeight)
	desc := &Descriptor{
		FontName: f.PostScriptName,
		Flags:    FlagNonsymbolic,
		FontBBox: rect.Rect{
			LLx: 0,
			LLy: maxHeight,
			URx: float64(glyphs.TotalWidth),
			URy: maxHeight,
		},
		Ascent:    float64(size.Ascender),
		Descent:   float64(size.Descender),
		CapHeight: float64(size.Ascender),
		StemV:     80,
		FontFile3: fontFileRef,
	}
	descRef, err := store.Add(desc.AsDict())
	if err != nil {
		return err
	}

	cidFont := &CIDFont{
		BaseFont:       f.PostScriptName,
		ROS:            Identity,
		FontDescriptor: descRef,
		DW:             notdefWidth,
		W:              glyphs.Widths(),
	}
	cidFontRef, err := store.Add(cidFont.AsDict())
	if err != nil {
		return err
	}

	type0 := &Type0{
		BaseFont:       f.PostScriptName,
		Encoding:       "Identity-H",
		DescendantFont: cidFontRef,
		ToUnicode:      toUnicodeRef,
	}
	return store.Put(ref, type0.AsDict())
}
