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
	"compress/zlib"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrune(t *testing.T) {
	st := NewStore(nil)
	leaf, _ := st.Add(Integer(1))
	unused, _ := st.Add(Name("unused"))
	inner, _ := st.Add(&Stream{Dict: Dict{"Leaf": leaf}, Data: []byte("x")})
	root, _ := st.Add(Dict{"Kids": Array{inner}})
	st.SetTrailer("Root", root)

	removed := st.Prune()
	if removed != 1 {
		t.Errorf("removed %d objects, want 1", removed)
	}
	if st.Get(unused) != nil {
		t.Error("unused object was kept")
	}
	for _, ref := range []Reference{leaf, inner, root} {
		if st.Get(ref) == nil {
			t.Errorf("object %s was removed", ref)
		}
	}
}

func TestDeleteZeroLengthStreams(t *testing.T) {
	st := NewStore(nil)
	empty, _ := st.Add(&Stream{})
	full, _ := st.Add(&Stream{Data: []byte("q Q")})
	page, _ := st.Add(Dict{
		"Contents": empty,
		"Other":    Array{empty, full},
	})
	st.SetTrailer("Root", page)

	gone := st.DeleteZeroLengthStreams()
	if d := cmp.Diff([]int{empty.Number}, gone); d != "" {
		t.Errorf("wrong objects removed (-want +got):\n%s", d)
	}

	got := st.Get(page).(Dict)
	want := Dict{"Other": Array{full}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("references not cleaned up (-want +got):\n%s", d)
	}
}

func TestCompress(t *testing.T) {
	st := NewStore(nil)
	text := bytes.Repeat([]byte("0 0 m 100 100 l S\n"), 50)
	plain, _ := st.Add(&Stream{Data: bytes.Clone(text)})
	fixed, _ := st.Add(&Stream{Data: bytes.Clone(text), NoCompress: true})
	tiny, _ := st.Add(&Stream{Data: []byte("q")})

	err := st.Compress()
	if err != nil {
		t.Fatal(err)
	}

	stm := st.Get(plain).(*Stream)
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Fatal("stream was not compressed")
	}
	zr, err := zlib.NewReader(bytes.NewReader(stm.Data))
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, text) {
		t.Error("compressed data does not round-trip")
	}

	if st.Get(fixed).(*Stream).Dict["Filter"] != nil {
		t.Error("NoCompress stream was compressed")
	}
	if st.Get(tiny).(*Stream).Dict["Filter"] != nil {
		t.Error("compression was applied although it grows the stream")
	}
}
