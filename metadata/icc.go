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

package metadata

import (
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen/pdf"
)

// ICCProfile is an ICC colour profile, used as the destination profile of
// the output intent.
type ICCProfile struct {
	Data []byte

	// N is the number of colour components.
	N int

	// Alternate is the device colour space used by readers which cannot
	// process the profile.
	Alternate pdf.Name
}

// NewICCProfile checks that data is a valid ICC profile for a grey, RGB or
// CMYK colour space.
func NewICCProfile(data []byte) (*ICCProfile, error) {
	if len(data) == 0 {
		return nil, errors.New("metadata: missing ICC profile")
	}

	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("metadata: invalid ICC profile: %w", err)
	}

	var alt pdf.Name
	switch p.ColorSpace {
	case icc.GraySpace:
		alt = "DeviceGray"
	case icc.RGBSpace:
		alt = "DeviceRGB"
	case icc.CMYKSpace:
		alt = "DeviceCMYK"
	default:
		return nil, fmt.Errorf("metadata: unsupported ICC color space %v", p.ColorSpace)
	}

	res := &ICCProfile{
		Data:      data,
		N:         p.ColorSpace.NumComponents(),
		Alternate: alt,
	}
	return res, nil
}

// Stream returns the ICC profile stream.
//
// See section 8.6.5.5 of PDF 32000-1:2008.
func (p *ICCProfile) Stream() *pdf.Stream {
	return &pdf.Stream{
		Dict: pdf.Dict{
			"N":         pdf.Integer(p.N),
			"Alternate": p.Alternate,
		},
		Data: p.Data,
	}
}
