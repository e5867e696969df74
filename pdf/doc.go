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

// Package pdf implements the native PDF object types and an in-memory store
// for indirect objects.
//
// Objects are added to a [Store] using [Store.Add] or, for objects which need
// to be referenced before they are complete, [Store.Alloc] followed by
// [Store.Put].  Once all objects are in place, the trailer entries are set
// using [Store.SetTrailer] and the file is serialized using [Store.Write].
//
//	st := pdf.NewStore(nil)
//	pages, _ := st.Alloc()
//	catalog, _ := st.Add(pdf.Dict{
//	    "Type":  pdf.Name("Catalog"),
//	    "Pages": pages,
//	})
//	... store the page tree under the reference pages ...
//	st.SetTrailer("Root", catalog)
//	err := st.Write(w)
//
// The optional passes [Store.Prune], [Store.DeleteZeroLengthStreams] and
// [Store.Compress] reduce the file size without changing its meaning.
package pdf
