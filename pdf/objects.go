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

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Object is implemented by the native PDF object types used in this package:
// [Array], [Dict], [Integer], [Name], [Real], [Reference], [*Stream], and
// [String].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	return writeString(w, strconv.FormatInt(int64(x), 10))
}

// Real represents a real number in a PDF file.
// Integral values are written with a trailing decimal point.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += "."
	}
	return writeString(w, s)
}

// Number returns x as an [Integer] if x has no fractional part,
// and as a [Real] otherwise.
func Number(x float64) Object {
	if x == float64(int64(x)) {
		return Integer(x)
	}
	return Real(x)
}

// String represents a string object in a PDF file.  The bytes are written
// unchanged, any character encoding is determined by the context.
type String []byte

// PDF implements the [Object] interface.
//
// Mostly printable strings are written as literal strings, in parentheses.
// If more than a third of the bytes would need escaping, the hexadecimal
// form is used instead.
func (x String) PDF(w io.Writer) error {
	escapeParens := !parensBalanced(x)
	needsEscape := func(c byte) bool {
		return c < 0x20 || c == '\\' || escapeParens && (c == '(' || c == ')')
	}

	count := 0
	for _, c := range x {
		if needsEscape(c) {
			count++
		}
	}
	if 3*count > len(x) {
		_, err := fmt.Fprintf(w, "<%x>", []byte(x))
		return err
	}

	buf := make([]byte, 0, len(x)+count+2)
	buf = append(buf, '(')
	for _, c := range x {
		if !needsEscape(c) {
			buf = append(buf, c)
			continue
		}
		switch c {
		case '\n':
			buf = append(buf, `\n`...)
		case '\r':
			buf = append(buf, `\r`...)
		case '\t':
			buf = append(buf, `\t`...)
		case '\b':
			buf = append(buf, `\b`...)
		case '\f':
			buf = append(buf, `\f`...)
		case '(', ')', '\\':
			buf = append(buf, '\\', c)
		default:
			buf = fmt.Appendf(buf, `\%03o`, c)
		}
	}
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// parensBalanced reports whether every ')' in s closes an earlier '('
// and all parentheses are closed at the end.
func parensBalanced(s []byte) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// TextString encodes s as a PDF text string.  ASCII text is stored
// unchanged, all other text as UTF-16BE with a byte order mark.
func TextString(s string) String {
	if isASCII(s) {
		return String(s)
	}
	buf := []byte{0xFE, 0xFF}
	for _, c := range utf16.Encode([]rune(s)) {
		buf = append(buf, byte(c>>8), byte(c))
	}
	return String(buf)
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
//
// Delimiters, white space, non-ASCII bytes and '#' are written using
// the #xx hex notation.
func (x Name) PDF(w io.Writer) error {
	buf := make([]byte, 1, len(x)+1)
	buf[0] = '/'
	for i := range len(x) {
		c := x[i]
		if c <= ' ' || c > '~' || strings.IndexByte("#()<>[]{}/%", c) >= 0 {
			buf = fmt.Appendf(buf, "#%02x", c)
		} else {
			buf = append(buf, c)
		}
	}
	_, err := w.Write(buf)
	return err
}

// Array represents an array object in a PDF file.
// Nil elements are written as null.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	sep := "["
	for _, val := range x {
		if err := writeString(w, sep); err != nil {
			return err
		}
		sep = " "
		if err := writeObject(w, val); err != nil {
			return err
		}
	}
	if len(x) == 0 {
		return writeString(w, "[]")
	}
	return writeString(w, "]")
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		return writeString(w, "null")
	}
	return obj.PDF(w)
}

// Dict represents a dictionary object in a PDF file.
type Dict map[Name]Object

// PDF implements the [Object] interface.
//
// Entries are written one per line, with the keys in sorted order.
// Entries with a nil value are omitted.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		return writeString(w, "null")
	}
	if err := writeString(w, "<<"); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(x)) {
		val := x[key]
		if val == nil {
			continue
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := val.PDF(w); err != nil {
			return err
		}
	}
	return writeString(w, "\n>>")
}

// Stream represents a stream object in a PDF file.
//
// The /Length entry is set from Data when the stream is written;
// the Dict itself is not modified.
type Stream struct {
	Dict
	Data []byte

	// NoCompress marks streams which must be stored exactly as given,
	// for example embedded font programs.
	NoCompress bool
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := make(Dict, len(x.Dict)+1)
	for key, val := range x.Dict {
		dict[key] = val
	}
	dict["Length"] = Integer(len(x.Data))
	if err := dict.PDF(w); err != nil {
		return err
	}
	if err := writeString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(x.Data); err != nil {
		return err
	}
	return writeString(w, "\nendstream")
}

// Reference points to an indirect object in a PDF file.
type Reference struct {
	Number     int
	Generation uint16
}

func (x Reference) String() string {
	if x.Generation == 0 {
		return "obj_" + strconv.Itoa(x.Number)
	}
	return fmt.Sprintf("obj_%d@%d", x.Number, x.Generation)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

// Format returns the PDF representation of obj, for use in tests
// and log messages.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	if err := writeObject(buf, obj); err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
