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

package pdf

import "seehuhn.de/go/geom/rect"

// Rect converts a rectangle into the array form used in PDF files,
// [LLx LLy URx URy].  Integral coordinates are written as integers.
func Rect(r rect.Rect) Array {
	return Array{
		Number(r.LLx),
		Number(r.LLy),
		Number(r.URx),
		Number(r.URy),
	}
}
