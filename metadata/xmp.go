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
	"bytes"
	"strconv"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/pdf"
)

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
	Trapped    xmp.Text
}

// Basic is the XMP basic namespace.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/xmp/
type Basic struct {
	_            xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_            xmp.Prefix    `xmp:"xmp"`
	CreateDate   xmp.Date
	ModifyDate   xmp.Date
	MetadataDate xmp.Date
	CreatorTool  xmp.AgentName
}

// MediaManagement is the XMP media management namespace.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/xmpMM/
type MediaManagement struct {
	_              xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/mm/"`
	_              xmp.Prefix    `xmp:"xmpMM"`
	DocumentID     xmp.Text
	VersionID      xmp.Text
	RenditionClass xmp.Text
}

// PDFXID is the namespace used by PDF/X to identify the standard.
type PDFXID struct {
	_               xmp.Namespace `xmp:"http://www.npes.org/pdfx/ns/id/"`
	_               xmp.Prefix    `xmp:"pdfxid"`
	GTS_PDFXVersion xmp.Text
}

type dcIdentifier struct {
	_          xmp.Namespace `xmp:"http://purl.org/dc/elements/1.1/"`
	_          xmp.Prefix    `xmp:"dc"`
	Identifier xmp.Text      `xmp:"identifier"`
}

func text(s string) xmp.Text {
	if s == "" {
		return xmp.Text{}
	}
	return xmp.NewText(s)
}

func agent(s string) xmp.AgentName {
	if s == "" {
		return xmp.AgentName{}
	}
	return xmp.NewAgentName(s)
}

// Packet returns the XMP representation of m.  The file identifier docID is
// used as the document ID, unless m.XMPDocumentID is set.
//
// The packet contains no instance ID, so that packets generated from the
// same record are identical.
func (m *Metadata) Packet(docID string) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if m.Title != "" {
		dc.Title.Set(language.Und, m.Title)
	}
	if m.Author != "" {
		dc.Creator.Append(xmp.NewProperName(m.Author))
	}
	if m.Subject != "" {
		dc.Description.Set(language.Und, m.Subject)
	}

	basic := &Basic{
		CreateDate:   xmp.NewDate(Timestamp(m.CreationDate)),
		ModifyDate:   xmp.NewDate(Timestamp(m.ModificationDate)),
		MetadataDate: xmp.NewDate(Timestamp(m.ModificationDate)),
		CreatorTool:  agent(m.Creator),
	}

	pdfInfo := &PDF{
		Keywords:   text(m.keywords()),
		PDFVersion: text(m.Conformance.PDFVersion().String()),
		Producer:   agent(m.Producer),
		Trapped:    text(string(m.trapped())),
	}

	documentID := m.XMPDocumentID
	if documentID == "" {
		documentID = docID
	}
	mm := &MediaManagement{
		DocumentID:     text(documentID),
		VersionID:      text(strconv.Itoa(m.DocumentVersion)),
		RenditionClass: text("default"),
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo, mm)
	if err != nil {
		return nil, err
	}
	if m.Identifier != "" {
		err = packet.Set(&dcIdentifier{Identifier: xmp.NewText(m.Identifier)})
		if err != nil {
			return nil, err
		}
	}
	if m.Conformance.IsPDFX() {
		err = packet.Set(&PDFXID{GTS_PDFXVersion: xmp.NewText(m.Conformance.Identifier())})
		if err != nil {
			return nil, err
		}
	}
	return packet, nil
}

// XMPStream returns the XMP metadata stream for the document catalog.
//
// The stream is never compressed, so that the metadata can be found by
// tools which do not understand PDF.
func (m *Metadata) XMPStream(docID string) (*pdf.Stream, error) {
	packet, err := m.Packet(docID)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}

	return &pdf.Stream{
		Dict: pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		},
		Data:       buf.Bytes(),
		NoCompress: true,
	}, nil
}
