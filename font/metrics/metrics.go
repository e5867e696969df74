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

// Package metrics provides access to the glyph metrics of font programs.
//
// The [Face] interface is what the font embedding code needs to know about a
// font.  Two implementations are provided: [SFNT] uses seehuhn.de/go/sfnt,
// and [XImage] uses golang.org/x/image/font/sfnt.
//
// All lengths are given in PDF glyph space units, i.e. 1/1000 of the em size,
// rounded to the nearest integer.
package metrics

import "seehuhn.de/go/sfnt/glyph"

// GlyphMetrics describes the size of a single glyph.
type GlyphMetrics struct {
	// Width is the advance width of the glyph.
	Width int

	// Height is the height of the glyph bounding box.
	Height int
}

// SizeMetrics describes the vertical extent of a font.
type SizeMetrics struct {
	Ascender  int
	Descender int // negative for descenders below the baseline
}

// Face gives access to the data of a parsed font program.
type Face interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() (string, error)

	// GlyphIndex returns the glyph used for the given code point,
	// or 0 if the font has no glyph for r.
	GlyphIndex(r rune) glyph.ID

	// GlyphMetrics returns the metrics of the given glyph.
	GlyphMetrics(gid glyph.ID) (GlyphMetrics, error)

	// SizeMetrics returns the ascent and descent of the font.
	SizeMetrics() (SizeMetrics, error)
}

// Loader parses font programs.
type Loader interface {
	Load(data []byte) (Face, error)
}

// LoaderFunc adapts an ordinary function to the [Loader] interface.
type LoaderFunc func(data []byte) (Face, error)

// Load implements the [Loader] interface.
func (f LoaderFunc) Load(data []byte) (Face, error) {
	return f(data)
}
