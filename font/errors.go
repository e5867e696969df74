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

package font

// DecodeError is returned when a font program cannot be read or parsed, or
// when required information is missing from the font.
type DecodeError struct {
	// Op describes the step which failed, for example "read", "parse"
	// or "size metrics".
	Op  string
	Err error
}

func (err *DecodeError) Error() string {
	msg := "font: cannot decode font (" + err.Op + ")"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}
