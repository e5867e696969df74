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
	"errors"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen/font/metrics"
)

// fakeFace is a scripted font used to test the exact output of the
// embedding code.
type fakeFace struct {
	name    string
	cmap    map[rune]glyph.ID
	glyphs  map[glyph.ID]metrics.GlyphMetrics
	sizeErr error
}

func newFakeFace(name string) *fakeFace {
	return &fakeFace{
		name:   name,
		cmap:   make(map[rune]glyph.ID),
		glyphs: make(map[glyph.ID]metrics.GlyphMetrics),
	}
}

func (f *fakeFace) add(r rune, gid glyph.ID, width, height int) {
	f.cmap[r] = gid
	f.glyphs[gid] = metrics.GlyphMetrics{Width: width, Height: height}
}

func (f *fakeFace) PostScriptName() (string, error) {
	if f.name == "" {
		return "", errors.New("no name")
	}
	return f.name, nil
}

func (f *fakeFace) GlyphIndex(r rune) glyph.ID {
	return f.cmap[r]
}

func (f *fakeFace) GlyphMetrics(gid glyph.ID) (metrics.GlyphMetrics, error) {
	m, ok := f.glyphs[gid]
	if !ok {
		return metrics.GlyphMetrics{}, errors.New("glyph not found")
	}
	return m, nil
}

func (f *fakeFace) SizeMetrics() (metrics.SizeMetrics, error) {
	if f.sizeErr != nil {
		return metrics.SizeMetrics{}, f.sizeErr
	}
	return metrics.SizeMetrics{Ascender: 800, Descender: -200}, nil
}

var errNotAFont = errors.New("not a font")

// fakeLoader returns the face registered for the given font data.
type fakeLoader map[string]*fakeFace

func (l fakeLoader) Load(data []byte) (metrics.Face, error) {
	face, ok := l[string(data)]
	if !ok {
		return nil, errNotAFont
	}
	return face, nil
}
