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

package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/name"
)

// SFNT loads TrueType and OpenType fonts using the seehuhn.de/go/sfnt
// package.  This is the default loader.
type SFNT struct{}

// Load implements the [Loader] interface.
func (SFNT) Load(data []byte) (Face, error) {
	r := bytes.NewReader(data)
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	psName, err := readPostScriptName(r)
	if err != nil {
		return nil, err
	}

	face := &sfntFace{
		info:   info,
		psName: psName,
		bboxes: info.GlyphBBoxes(),
		q:      info.FontMatrix[3] * 1000,
	}
	if info.CMapTable != nil {
		// Fonts without a usable cmap are still valid, they just
		// don't map any code points.
		subtable, err := info.CMapTable.GetBest()
		if err == nil {
			face.cmap = subtable
		}
	}
	return face, nil
}

// readPostScriptName returns name ID 6 from the "name" table, or the empty
// string if the font has no such entry.
func readPostScriptName(r *bytes.Reader) (string, error) {
	h, err := header.Read(r)
	if err != nil {
		return "", err
	}
	nameData, err := h.ReadTableBytes(r, "name")
	if header.IsMissing(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	nameInfo, err := name.Decode(nameData)
	if err != nil {
		return "", err
	}
	for _, tables := range []name.Tables{nameInfo.Windows, nameInfo.Mac} {
		if len(tables) == 0 {
			continue
		}
		t, _ := tables.Choose(language.AmericanEnglish)
		if t != nil && t.PostScriptName != "" {
			return t.PostScriptName, nil
		}
	}
	return "", nil
}

type sfntFace struct {
	info   *sfnt.Font
	psName string
	cmap   interface{ Lookup(rune) glyph.ID }
	bboxes []funit.Rect16
	q      float64
}

var errNoPostScriptName = errors.New("font has no PostScript name")

func (f *sfntFace) PostScriptName() (string, error) {
	if f.psName != "" {
		return f.psName, nil
	}
	// Fonts without a name table get a name built from the family name.
	fallback := f.info.PostScriptName()
	if fallback == "" {
		return "", errNoPostScriptName
	}
	return fallback, nil
}

func (f *sfntFace) GlyphIndex(r rune) glyph.ID {
	if f.cmap == nil {
		return 0
	}
	return f.cmap.Lookup(r)
}

func (f *sfntFace) GlyphMetrics(gid glyph.ID) (GlyphMetrics, error) {
	if int(gid) >= f.info.NumGlyphs() {
		return GlyphMetrics{}, fmt.Errorf("glyph %d out of range", gid)
	}

	var height int
	if int(gid) < len(f.bboxes) {
		b := f.bboxes[gid]
		height = f.scale(int(b.URy) - int(b.LLy))
	}
	return GlyphMetrics{
		Width:  int(math.Round(f.info.GlyphWidthPDF(gid))),
		Height: height,
	}, nil
}

func (f *sfntFace) SizeMetrics() (SizeMetrics, error) {
	if f.info.UnitsPerEm == 0 {
		return SizeMetrics{}, errors.New("font has no units per em")
	}
	return SizeMetrics{
		Ascender:  f.scale(int(f.info.Ascent)),
		Descender: f.scale(int(f.info.Descent)),
	}, nil
}

func (f *sfntFace) scale(x int) int {
	return int(math.Round(float64(x) * f.q))
}
