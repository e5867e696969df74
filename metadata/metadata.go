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

// Package metadata keeps the document information dictionary, the XMP
// metadata stream and the output intent of a PDF file consistent.
//
// All three are generated from a single [Metadata] record, at the time the
// file is written, so that they never disagree.
package metadata

import (
	"strings"
	"time"

	"seehuhn.de/go/pdfgen/pdf"
)

// Metadata holds the document level metadata of a PDF file.
type Metadata struct {
	Title      string
	Author     string
	Creator    string
	Producer   string
	Subject    string
	Identifier string
	Keywords   []string

	// Trapping indicates whether the document has been modified to include
	// trapping information.
	Trapping bool

	CreationDate     time.Time
	ModificationDate time.Time

	Conformance Conformance

	// DocumentVersion is stored as the XMP version ID.
	DocumentVersion int

	// XMPDocumentID is the document ID stored in the XMP packet.
	// If this is empty, the file identifier is used.
	XMPDocumentID string
}

// New returns the metadata for a new document.
// Both timestamps are set to now.
func New(title string, now time.Time) *Metadata {
	now = Timestamp(now)
	return &Metadata{
		Title:            title,
		CreationDate:     now,
		ModificationDate: now,
		Conformance:      DefaultConformance,
		DocumentVersion:  1,
	}
}

func (m *Metadata) trapped() pdf.Name {
	if m.Trapping {
		return "True"
	}
	return "False"
}

func (m *Metadata) keywords() string {
	return strings.Join(m.Keywords, ",")
}

// InfoDict returns the document information dictionary.
//
// See section 14.3.3 of PDF 32000-1:2008.
func (m *Metadata) InfoDict() pdf.Dict {
	return pdf.Dict{
		"Trapped":         m.trapped(),
		"CreationDate":    pdf.String(FormatDate(m.CreationDate)),
		"ModDate":         pdf.String(FormatDate(m.ModificationDate)),
		"GTS_PDFXVersion": pdf.String(m.Conformance.Identifier()),
		"Title":           pdf.TextString(m.Title),
		"Author":          pdf.TextString(m.Author),
		"Creator":         pdf.TextString(m.Creator),
		"Producer":        pdf.TextString(m.Producer),
		"Subject":         pdf.TextString(m.Subject),
		"Identifier":      pdf.TextString(m.Identifier),
		"Keywords":        pdf.TextString(m.keywords()),
	}
}

// Artifacts are the objects derived from a [Metadata] record.
type Artifacts struct {
	Info pdf.Dict
	XMP  *pdf.Stream

	// ICC is the destination profile of the output intent,
	// or nil if no profile was given.
	ICC *pdf.Stream
}

// Sync derives the information dictionary, the XMP metadata stream and the
// output intent profile stream from m.  The file identifier docID is used as
// the XMP document ID, unless m.XMPDocumentID is set.  The profile may be
// nil.
func Sync(m *Metadata, docID string, profile *ICCProfile) (*Artifacts, error) {
	xmpStream, err := m.XMPStream(docID)
	if err != nil {
		return nil, err
	}
	res := &Artifacts{
		Info: m.InfoDict(),
		XMP:  xmpStream,
	}
	if profile != nil {
		res.ICC = profile.Stream()
	}
	return res, nil
}
