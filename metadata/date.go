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
	"time"
)

// Timestamp converts t to the precision stored in PDF files:
// UTC, with whole seconds.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// FormatDate converts t to the PDF date format D:YYYYMMDDHHmmSS+00'00'.
// The time is converted to UTC first, so the offset is always zero.
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("D:%04d%02d%02d%02d%02d%02d+00'00'",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}
