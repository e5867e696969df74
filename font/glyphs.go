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
	"cmp"
	"maps"
	"slices"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen/font/metrics"
	"seehuhn.de/go/pdfgen/pdf"
)

// notdefWidth is the width used for glyph 0.
const notdefWidth = 1000

// GlyphEntry describes one glyph which can be reached from Unicode text.
type GlyphEntry struct {
	GID     glyph.ID
	Unicode rune
	Width   int
}

// GlyphTable lists the glyphs of a font which are reachable from the Basic
// Multilingual Plane, ordered by glyph ID.
type GlyphTable struct {
	// Entries is sorted by increasing GID.  The first entry is always
	// glyph 0, mapped to U+0000 with width 1000.
	Entries []GlyphEntry

	// MaxHeight is the largest glyph height seen.
	MaxHeight int

	// TotalWidth is the sum of the glyph widths over all code points which
	// map to a glyph other than glyph 0.  A glyph used for several code
	// points is counted once per code point.
	TotalWidth int
}

// ScanGlyphs enumerates all code points from U+0000 to U+FFFF and records
// the glyphs used for them.  Code points without a glyph, and glyphs for
// which no metrics are available, are skipped.  If several code points map
// to the same glyph, the largest code point is used.
func ScanGlyphs(face metrics.Face) *GlyphTable {
	byGID := make(map[glyph.ID]GlyphEntry)
	noMetrics := make(map[glyph.ID]bool)
	t := &GlyphTable{}
	for r := rune(0); r <= 0xFFFF; r++ {
		gid := face.GlyphIndex(r)
		if gid == 0 || noMetrics[gid] {
			continue
		}

		e, seen := byGID[gid]
		if !seen {
			m, err := face.GlyphMetrics(gid)
			if err != nil {
				noMetrics[gid] = true
				continue
			}
			e = GlyphEntry{GID: gid, Width: m.Width}
			t.MaxHeight = max(t.MaxHeight, m.Height)
		}
		e.Unicode = r
		byGID[gid] = e
		t.TotalWidth += e.Width
	}

	gids := slices.Sorted(maps.Keys(byGID))
	t.Entries = make([]GlyphEntry, 0, len(gids)+1)
	t.Entries = append(t.Entries, GlyphEntry{GID: 0, Unicode: 0, Width: notdefWidth})
	for _, gid := range gids {
		t.Entries = append(t.Entries, byGID[gid])
	}
	return t
}

// Widths returns the /W array of the CIDFont.
//
// Consecutive glyph IDs share a single run.  A font where all glyphs are
// reachable gives the form [0 [w0 w1 ...]].
func (t *GlyphTable) Widths() pdf.Array {
	var res pdf.Array
	var run pdf.Array
	next := glyph.ID(0)
	for i, e := range t.Entries {
		if i == 0 || e.GID != next {
			if run != nil {
				res = append(res, run)
			}
			res = append(res, pdf.Integer(e.GID))
			run = pdf.Array{}
		}
		run = append(run, pdf.Integer(e.Width))
		next = e.GID + 1
	}
	if run != nil {
		res = append(res, run)
	}
	return res
}

// Width returns the width of the given glyph, or the notdef width if the
// glyph is not part of the table.
func (t *GlyphTable) Width(gid glyph.ID) int {
	i, found := slices.BinarySearchFunc(t.Entries, gid, func(e GlyphEntry, gid glyph.ID) int {
		return cmp.Compare(e.GID, gid)
	})
	if !found {
		return notdefWidth
	}
	return t.Entries[i].Width
}
