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

import "seehuhn.de/go/pdfgen/pdf"

// OutputIntent describes the colour characteristics of the output device
// for which the document was prepared.
//
// See section 14.11.5 of PDF 32000-1:2008.
type OutputIntent struct {
	OutputCondition           string
	OutputConditionIdentifier string // required
	RegistryName              string
	Info                      string

	// DestinationOutputProfile refers to the ICC profile stream.
	// The zero value omits the entry.
	DestinationOutputProfile pdf.Reference
}

// FOGRA39 returns the output intent for coated offset paper.
// This is the output intent written into every document.
func FOGRA39() *OutputIntent {
	return &OutputIntent{
		OutputCondition:           "Commercial and special offset print acccording to ISO 12647-2:2004 / Amd 1, paper type 1 or 2 (matte or gloss-coated offset paper, 115 g/m2), screen ruling 60/cm",
		OutputConditionIdentifier: "FOGRA39",
		RegistryName:              "http://www.color.org",
		Info:                      "Coated FOGRA39 (ISO 12647-2:2004)",
	}
}

// AsDict converts the output intent into a PDF dictionary.
func (o *OutputIntent) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFX"),
		"OutputConditionIdentifier": pdf.String(o.OutputConditionIdentifier),
	}
	if o.OutputCondition != "" {
		dict["OutputCondition"] = pdf.String(o.OutputCondition)
	}
	if o.RegistryName != "" {
		dict["RegistryName"] = pdf.String(o.RegistryName)
	}
	if o.Info != "" {
		dict["Info"] = pdf.String(o.Info)
	}
	if o.DestinationOutputProfile.Number != 0 {
		dict["DestinationOutputProfile"] = o.DestinationOutputProfile
	}
	return dict
}
