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
	"fmt"
	"strings"

	"seehuhn.de/go/pdfgen/pdf"
)

// Conformance is a standard which a PDF file claims to follow.
type Conformance int

// The supported conformance levels.
const (
	PDFA1b2005 Conformance = iota + 1
	PDFA1a2005
	PDFA2_2011
	PDFA2a2011
	PDFA2b2011
	PDFA2u2011
	PDFA3_2012
	PDFUA2014
	PDFX1a2001
	PDFX3_2002
	PDFX1a2003
	PDFX3_2003
	PDFX4_2010
	PDFX4p2010
	PDFX5g2010
	PDFX5pg2010
	PDFX5n2010

	// Custom marks files which do not claim to follow any of the
	// listed standards.
	Custom
)

// DefaultConformance is used for new documents.
const DefaultConformance = PDFX3_2002

type conformanceInfo struct {
	id      string
	version pdf.Version
}

var conformanceTable = map[Conformance]conformanceInfo{
	PDFA1b2005:  {"PDF/A-1b:2005", pdf.V1_4},
	PDFA1a2005:  {"PDF/A-1a:2005", pdf.V1_4},
	PDFA2_2011:  {"PDF/A-2:2011", pdf.V1_7},
	PDFA2a2011:  {"PDF/A-2a:2011", pdf.V1_7},
	PDFA2b2011:  {"PDF/A-2b:2011", pdf.V1_7},
	PDFA2u2011:  {"PDF/A-2u:2011", pdf.V1_7},
	PDFA3_2012:  {"PDF/A-3:2012", pdf.V1_7},
	PDFUA2014:   {"PDF/UA", pdf.V1_6},
	PDFX1a2001:  {"PDF/X-1a:2001", pdf.V1_3},
	PDFX3_2002:  {"PDF/X-3:2002", pdf.V1_3},
	PDFX1a2003:  {"PDF/X-1a:2003", pdf.V1_4},
	PDFX3_2003:  {"PDF/X-3:2003", pdf.V1_4},
	PDFX4_2010:  {"PDF/X-4", pdf.V1_4},
	PDFX4p2010:  {"PDF/X-4p", pdf.V1_6},
	PDFX5g2010:  {"PDF/X-5g", pdf.V1_6},
	PDFX5pg2010: {"PDF/X-5pg", pdf.V1_6},
	PDFX5n2010:  {"PDF/X-5n", pdf.V1_6},
	Custom:      {"Custom PDF conformance", pdf.V1_3},
}

// Identifier returns the string used for the GTS_PDFXVersion entry in the
// document information dictionary.
func (c Conformance) Identifier() string {
	info, ok := conformanceTable[c]
	if !ok {
		return conformanceTable[Custom].id
	}
	return info.id
}

// PDFVersion returns the PDF version required by the standard.
func (c Conformance) PDFVersion() pdf.Version {
	info, ok := conformanceTable[c]
	if !ok {
		return pdf.V1_3
	}
	return info.version
}

// IsPDFX reports whether c is one of the PDF/X standards.
func (c Conformance) IsPDFX() bool {
	return c >= PDFX1a2001 && c <= PDFX5n2010
}

// IsPDFA reports whether c is one of the PDF/A standards.
func (c Conformance) IsPDFA() bool {
	return c >= PDFA1b2005 && c <= PDFA3_2012
}

func (c Conformance) String() string {
	if _, ok := conformanceTable[c]; !ok {
		return fmt.Sprintf("metadata.Conformance(%d)", int(c))
	}
	return c.Identifier()
}

// ParseConformance returns the conformance level with the given identifier.
// The comparison ignores case, so that both "PDF/X-3:2002" and
// "pdf/x-3:2002" are accepted.
func ParseConformance(s string) (Conformance, error) {
	for c := PDFA1b2005; c <= Custom; c++ {
		if strings.EqualFold(s, c.Identifier()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("metadata: unknown conformance level %q", s)
}
