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

import (
	"fmt"
	"io"
	"text/template"
)

// maxBlockSpan limits the range of glyph IDs in a single bfchar block.
const maxBlockSpan = 100

// Blocks splits the entries of t into bfchar blocks.
//
// A new block is started whenever the high byte of the glyph ID changes, or
// when the glyph ID exceeds the first glyph ID of the current block by more
// than 100.
func (t *GlyphTable) Blocks() [][]GlyphEntry {
	var res [][]GlyphEntry
	start := 0
	for i := 1; i <= len(t.Entries); i++ {
		if i < len(t.Entries) {
			first := t.Entries[start].GID
			gid := t.Entries[i].GID
			if gid>>8 == first>>8 && int(gid) <= int(first)+maxBlockSpan {
				continue
			}
		}
		if i > start {
			res = append(res, t.Entries[start:i])
		}
		start = i
	}
	return res
}

// WriteToUnicode writes a ToUnicode CMap which maps the two-byte glyph IDs
// of t to Unicode text.
func (t *GlyphTable) WriteToUnicode(w io.Writer) error {
	return toUnicodeTmpl.Execute(w, t.Blocks())
}

func formatEntry(e GlyphEntry) string {
	return fmt.Sprintf("<%04X> <%04X>", uint16(e.GID), e.Unicode)
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"Entry": formatEntry,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
{{range . -}}
{{len .}} beginbfchar
{{range . -}}
{{Entry .}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
