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
	"math"

	"golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sfnt/glyph"
)

// XImage loads TrueType and OpenType fonts using the
// golang.org/x/image/font/sfnt package.
type XImage struct{}

// Load implements the [Loader] interface.
func (XImage) Load(data []byte) (Face, error) {
	f, err := xsfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	upem := f.UnitsPerEm()
	return &ximageFace{
		font: f,
		// One pixel per font design unit.
		ppem: fixed.I(int(upem)),
		upem: float64(upem),
	}, nil
}

type ximageFace struct {
	font *xsfnt.Font
	buf  xsfnt.Buffer
	ppem fixed.Int26_6
	upem float64
}

func (f *ximageFace) PostScriptName() (string, error) {
	name, err := f.font.Name(&f.buf, xsfnt.NameIDPostScript)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errNoPostScriptName
	}
	return name, nil
}

func (f *ximageFace) GlyphIndex(r rune) glyph.ID {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return glyph.ID(gid)
}

func (f *ximageFace) GlyphMetrics(gid glyph.ID) (GlyphMetrics, error) {
	bounds, advance, err := f.font.GlyphBounds(&f.buf, xsfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return GlyphMetrics{}, err
	}
	return GlyphMetrics{
		Width:  f.scale(advance),
		Height: f.scale(bounds.Max.Y - bounds.Min.Y),
	}, nil
}

func (f *ximageFace) SizeMetrics() (SizeMetrics, error) {
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return SizeMetrics{}, err
	}
	// The y-axis of x/image points downwards.
	return SizeMetrics{
		Ascender:  f.scale(m.Ascent),
		Descender: -f.scale(m.Descent),
	}, nil
}

func (f *ximageFace) scale(x fixed.Int26_6) int {
	return int(math.Round(float64(x) / 64 * 1000 / f.upem))
}
