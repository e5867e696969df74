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

// Package font embeds TrueType and OpenType fonts into PDF files as
// composite fonts.
//
// A font program is first decoded using [Read], which only determines the
// PostScript name.  The font is embedded later, using [Font.Embed], as a
// Type0 font with a CIDFontType0 descendant, Identity-H encoding and a
// ToUnicode CMap covering all glyphs reachable from the Basic Multilingual
// Plane.
//
// A [Registry] keeps track of the fonts used in a document.  Fonts are
// identified by their PostScript name, and each name is embedded at most
// once.
package font

import (
	"io"

	"seehuhn.de/go/pdfgen/font/metrics"
)

// Font is a font program together with its PostScript name.
type Font struct {
	Data           []byte
	PostScriptName string
}

// Read reads a font program from r until EOF and determines the PostScript
// name of the font.  If loader is nil, [metrics.SFNT] is used.
func Read(r io.Reader, loader metrics.Loader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Op: "read", Err: err}
	}
	return Decode(data, loader)
}

// Decode determines the PostScript name of the font program data.
// If loader is nil, [metrics.SFNT] is used.
func Decode(data []byte, loader metrics.Loader) (*Font, error) {
	face, err := load(data, loader)
	if err != nil {
		return nil, err
	}
	name, err := face.PostScriptName()
	if err != nil {
		return nil, &DecodeError{Op: "postscript name", Err: err}
	}
	return &Font{Data: data, PostScriptName: name}, nil
}

func load(data []byte, loader metrics.Loader) (metrics.Face, error) {
	if loader == nil {
		loader = metrics.SFNT{}
	}
	face, err := loader.Load(data)
	if err != nil {
		return nil, &DecodeError{Op: "parse", Err: err}
	}
	return face, nil
}

// Equal reports whether f and other describe the same font.
// Fonts are compared by PostScript name only, the font data is not
// inspected.
func (f *Font) Equal(other *Font) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.PostScriptName == other.PostScriptName
}
