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
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/pdf"
)

func testLoader() fakeLoader {
	a := newFakeFace("FontA")
	a.add('A', 1, 500, 700)
	b := newFakeFace("FontB")
	b.add('B', 1, 600, 700)
	alsoA := newFakeFace("FontA")
	bad := newFakeFace("Broken")
	bad.sizeErr = errors.New("no hhea table")
	return fakeLoader{
		"a":      a,
		"b":      b,
		"a2":     alsoA,
		"noname": newFakeFace(""),
		"broken": bad,
	}
}

func TestRegistryDedup(t *testing.T) {
	store := pdf.NewStore(nil)
	reg := NewRegistry(store, testLoader())

	h1, err := reg.Register([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	h2, err := reg.Register([]byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	h3, err := reg.Register([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}

	if h1 != h3 {
		t.Errorf("same font registered twice: %s != %s", h1, h3)
	}
	if h1 == h2 {
		t.Errorf("different fonts share handle %s", h1)
	}
	if h1.Label() != "F0" || h2.Label() != "F1" {
		t.Errorf("unexpected labels %s, %s", h1, h2)
	}
	if reg.Len() != 2 {
		t.Errorf("registry has %d fonts, want 2", reg.Len())
	}

	d1, ok := reg.Resolve(h1)
	if !ok {
		t.Fatal("cannot resolve h1")
	}
	if d1.Font.PostScriptName != "FontA" || d1.Ref.Number != 1 {
		t.Errorf("unexpected font %v at %s", d1.Font.PostScriptName, d1.Ref)
	}
	if _, ok := reg.Resolve(IndirectRef{label: "F99"}); ok {
		t.Error("unknown handle resolved")
	}
	if reg.Face(IndirectRef{}) != nil {
		t.Error("zero handle has a face")
	}
}

func TestRegistryCollision(t *testing.T) {
	h := logging.NewBufferedHandler(nil)
	logging.SetLogger(slog.New(h))
	defer logging.SetLogger(nil)

	reg := NewRegistry(pdf.NewStore(nil), testLoader())
	first, err := reg.Register([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := reg.Register([]byte("a2"))
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("fonts with the same name got different handles")
	}
	d, _ := reg.Resolve(first)
	if string(d.Font.Data) != "a" {
		t.Errorf("font data was replaced by %q", d.Font.Data)
	}
	if !h.Contains("font name collision") || !h.Contains("font=FontA") {
		t.Errorf("missing collision warning, got %q", h.String())
	}
}

func TestRegistryErrors(t *testing.T) {
	store := pdf.NewStore(nil)
	reg := NewRegistry(store, testLoader())

	cases := []struct {
		data string
		op   string
	}{
		{"garbage", "parse"},
		{"noname", "postscript name"},
		{"broken", "size metrics"},
	}
	for _, c := range cases {
		_, err := reg.Register([]byte(c.data))
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("%s: expected DecodeError, got %v", c.data, err)
		}
		if decErr.Op != c.op {
			t.Errorf("%s: op = %q, want %q", c.data, decErr.Op, c.op)
		}
	}
	_, err := reg.Register([]byte("garbage"))
	if !errors.Is(err, errNotAFont) {
		t.Error("parse error does not wrap the loader error")
	}

	if reg.Len() != 0 {
		t.Error("failed registrations changed the registry")
	}
	ref, err := store.Alloc()
	if err != nil {
		t.Fatal(err)
	}
	if ref.Number != 1 {
		t.Errorf("failed registrations allocated objects, next is %d", ref.Number)
	}
}

func TestRegistryAllocationLimit(t *testing.T) {
	store := pdf.NewStore(&pdf.StoreOptions{MaxObjects: 1})
	reg := NewRegistry(store, testLoader())

	_, err := reg.Register([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = reg.Register([]byte("b"))
	var allocErr *pdf.AllocationError
	if !errors.As(err, &allocErr) {
		t.Fatalf("expected AllocationError, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d fonts, want 1", reg.Len())
	}
}

func TestRegistryEmbed(t *testing.T) {
	store := pdf.NewStore(nil)
	reg := NewRegistry(store, testLoader())
	hA, _ := reg.Register([]byte("a"))
	hB, _ := reg.Register([]byte("b"))

	fonts, err := reg.Embed()
	if err != nil {
		t.Fatal(err)
	}
	dA, _ := reg.Resolve(hA)
	dB, _ := reg.Resolve(hB)
	want := pdf.Dict{"F0": dA.Ref, "F1": dB.Ref}
	if d := cmp.Diff(want, fonts); d != "" {
		t.Errorf("font resources (-want +got):\n%s", d)
	}

	type0, ok := store.Get(dA.Ref).(pdf.Dict)
	if !ok {
		t.Fatal("font dict missing")
	}
	if type0["Subtype"] != pdf.Name("Type0") || type0["Encoding"] != pdf.Name("Identity-H") {
		t.Errorf("wrong font dict %s", pdf.Format(type0))
	}
	if type0["BaseFont"] != pdf.Name("FontA") {
		t.Errorf("wrong base font %v", type0["BaseFont"])
	}

	kids := type0["DescendantFonts"].(pdf.Array)
	cidFont := store.Get(kids[0].(pdf.Reference)).(pdf.Dict)
	if got := pdf.Format(cidFont["W"]); got != "[0 [1000 500]]" {
		t.Errorf("W = %s", got)
	}
	if got := pdf.Format(cidFont["CIDSystemInfo"]); got != "<<\n/Ordering (Identity)\n/Registry (Adobe)\n/Supplement 0\n>>" {
		t.Errorf("CIDSystemInfo = %s", got)
	}

	desc := store.Get(cidFont["FontDescriptor"].(pdf.Reference)).(pdf.Dict)
	checks := map[pdf.Name]string{
		"Ascent":      "800",
		"Descent":     "-200",
		"CapHeight":   "800",
		"Flags":       "32",
		"StemV":       "80",
		"ItalicAngle": "0",
		"FontBBox":    "[0 700 500 700]",
	}
	for key, want := range checks {
		if got := pdf.Format(desc[key]); got != want {
			t.Errorf("%s = %s, want %s", key, got, want)
		}
	}

	fontFile := store.Get(desc["FontFile3"].(pdf.Reference)).(*pdf.Stream)
	if !fontFile.NoCompress {
		t.Error("font file can be compressed")
	}
	if fontFile.Dict["Subtype"] != pdf.Name("CIDFontType0C") || fontFile.Dict["Length1"] != pdf.Integer(1) {
		t.Errorf("wrong font file dict %s", pdf.Format(fontFile.Dict))
	}
}

func TestEmbedSizeMetricsError(t *testing.T) {
	store := pdf.NewStore(nil)
	ref, err := store.Alloc()
	if err != nil {
		t.Fatal(err)
	}
	f := &Font{Data: []byte("broken"), PostScriptName: "Broken"}

	err = f.Embed(store, ref, testLoader())
	var decErr *DecodeError
	if !errors.As(err, &decErr) || decErr.Op != "size metrics" {
		t.Errorf("expected size metrics error, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("failed embedding stored %d objects", store.Len())
	}
}

func TestEmbedGoFonts(t *testing.T) {
	store := pdf.NewStore(nil)
	reg := NewRegistry(store, nil)
	for _, data := range [][]byte{goregular.TTF, gomono.TTF, goregular.TTF} {
		_, err := reg.Register(data)
		if err != nil {
			t.Fatal(err)
		}
	}
	if reg.Len() != 2 {
		t.Fatalf("registry has %d fonts, want 2", reg.Len())
	}

	fonts, err := reg.Embed()
	if err != nil {
		t.Fatal(err)
	}
	root, err := store.Add(pdf.Dict{"Fonts": fonts})
	if err != nil {
		t.Fatal(err)
	}
	store.SetTrailer("Root", root)

	buf := &bytes.Buffer{}
	err = store.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), goregular.TTF) {
		t.Error("font program was not embedded verbatim")
	}
}
