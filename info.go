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

package pdfgen

import (
	"slices"
	"time"

	"seehuhn.de/go/pdfgen/metadata"
)

// Metadata returns a copy of the document metadata.
func (d *Document) Metadata() metadata.Metadata {
	defer d.read()()
	m := *d.meta
	m.Keywords = slices.Clone(m.Keywords)
	return m
}

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) *Document {
	defer d.write()()
	d.meta.Title = title
	return d
}

// SetAuthor sets the name of the person who created the document.
func (d *Document) SetAuthor(author string) *Document {
	defer d.write()()
	d.meta.Author = author
	return d
}

// SetCreator sets the name of the application which created the
// original document.
func (d *Document) SetCreator(creator string) *Document {
	defer d.write()()
	d.meta.Creator = creator
	return d
}

// SetProducer sets the name of the application which converted the document
// to PDF.
func (d *Document) SetProducer(producer string) *Document {
	defer d.write()()
	d.meta.Producer = producer
	return d
}

// SetSubject sets the subject of the document.
func (d *Document) SetSubject(subject string) *Document {
	defer d.write()()
	d.meta.Subject = subject
	return d
}

// SetIdentifier sets the identifier of the document, for example an ISBN.
// It is stored as dc:identifier in the XMP metadata.
func (d *Document) SetIdentifier(identifier string) *Document {
	defer d.write()()
	d.meta.Identifier = identifier
	return d
}

// SetKeywords replaces the list of keywords.
func (d *Document) SetKeywords(keywords ...string) *Document {
	defer d.write()()
	d.meta.Keywords = slices.Clone(keywords)
	return d
}

// SetTrapping records whether the document contains trapping information.
func (d *Document) SetTrapping(trapping bool) *Document {
	defer d.write()()
	d.meta.Trapping = trapping
	return d
}

// SetXMPDocumentID sets the document ID stored in the XMP metadata.
// By default, the document identifier is used.
func (d *Document) SetXMPDocumentID(id string) *Document {
	defer d.write()()
	d.meta.XMPDocumentID = id
	return d
}

// SetDocumentVersion sets the version number stored as xmpMM:VersionID.
func (d *Document) SetDocumentVersion(version int) *Document {
	defer d.write()()
	d.meta.DocumentVersion = version
	return d
}

// SetConformance changes the conformance level of the document.  This also
// changes the PDF version of the output file.  It is recommended to call
// [Document.CheckForErrors] afterwards.
func (d *Document) SetConformance(c metadata.Conformance) *Document {
	defer d.write()()
	d.meta.Conformance = c
	return d
}

// SetCreationDate sets the creation date.  The time is stored in UTC,
// truncated to whole seconds.
func (d *Document) SetCreationDate(t time.Time) *Document {
	defer d.write()()
	d.meta.CreationDate = metadata.Timestamp(t)
	return d
}

// SetModificationDate sets the modification date.  This is intended for
// documents which already have a modification date.
func (d *Document) SetModificationDate(t time.Time) *Document {
	defer d.write()()
	d.meta.ModificationDate = metadata.Timestamp(t)
	return d
}
