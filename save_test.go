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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// objects of a saved document, looked up from the trailer
type saved struct {
	store   *pdf.Store
	catalog pdf.Dict
	pages   pdf.Dict
	kids    []pdf.Dict
}

func inspect(t *testing.T, d *Document) *saved {
	t.Helper()
	s := &saved{store: d.store}
	root, ok := d.store.Trailer("Root").(pdf.Reference)
	if !ok {
		t.Fatal("missing /Root")
	}
	s.catalog = d.store.Get(root).(pdf.Dict)
	s.pages = d.store.Get(s.catalog["Pages"].(pdf.Reference)).(pdf.Dict)
	for _, kid := range s.pages["Kids"].(pdf.Array) {
		s.kids = append(s.kids, d.store.Get(kid.(pdf.Reference)).(pdf.Dict))
	}
	return s
}

func save(t *testing.T, d *Document, humanReadable bool) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := d.Save(buf, &SaveOptions{HumanReadable: humanReadable})
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPageBoxes(t *testing.T) {
	doc, _, _ := New("Test", 595, 842, "a", nil)
	doc.AddPage(100.5, 200, "b")
	save(t, doc, true)

	s := inspect(t, doc)
	want := []string{"[0 0 595 842]", "[0 0 100.5 200]"}
	if len(s.kids) != len(want) {
		t.Fatalf("got %d pages", len(s.kids))
	}
	for i, page := range s.kids {
		for _, key := range []pdf.Name{"MediaBox", "TrimBox", "CropBox"} {
			if got := pdf.Format(page[key]); got != want[i] {
				t.Errorf("page %d: %s = %s, want %s", i, key, got, want[i])
			}
		}
		if page["Rotate"] != pdf.Integer(0) || page["Type"] != pdf.Name("Page") {
			t.Errorf("page %d: wrong page dict %s", i, pdf.Format(page))
		}
		if page["Parent"] != s.catalog["Pages"] {
			t.Errorf("page %d: wrong parent", i)
		}
		if _, ok := page["Resources"]; ok {
			t.Errorf("page %d: unexpected resources", i)
		}
	}
	if s.pages["Count"] != pdf.Integer(2) {
		t.Errorf("wrong page count %v", s.pages["Count"])
	}
}

func TestMergedContent(t *testing.T) {
	doc, page, first := New("Test", 100, 100, "a", nil)
	layers := []LayerRef{doc.Page(page).Layer(first)}
	layers = append(layers, doc.Page(page).Layer(doc.Page(page).AddLayer("b")))
	layers = append(layers, doc.Page(page).Layer(doc.Page(page).AddLayer("c")))

	var want []byte
	for i, l := range layers {
		ops := fmt.Sprintf("%d 0 0 RG\n0 0 m 100 %d l S\n", i, 10*i)
		fmt.Fprint(l, ops)
		want = append(want, ops...)
	}
	save(t, doc, true)

	s := inspect(t, doc)
	contents := s.store.Get(s.kids[0]["Contents"].(pdf.Reference)).(*pdf.Stream)
	if d := cmp.Diff(string(want), string(contents.Data)); d != "" {
		t.Errorf("content (-want +got):\n%s", d)
	}
}

func TestLayerResources(t *testing.T) {
	doc, page, layer := New("Test", 100, 100, "a", nil)
	F, err := doc.AddFont(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	img, err := doc.AddObject(&pdf.Stream{
		Dict: pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(1),
			"Height":           pdf.Integer(1),
			"ColorSpace":       pdf.Name("DeviceGray"),
			"BitsPerComponent": pdf.Integer(8),
		},
		Data: []byte{0x80},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc.Page(page).Layer(layer).AddXObject("Im1", img)
	second := doc.Page(page).Layer(doc.Page(page).AddLayer("b"))
	second.AddExtGState("GS1", pdf.Dict{"CA": pdf.Real(0.5)})
	fmt.Fprint(second, "/GS1 gs\n/Im1 Do\n")
	save(t, doc, false)

	s := inspect(t, doc)
	res, ok := s.kids[0]["Resources"].(pdf.Dict)
	if !ok {
		t.Fatal("page resources missing")
	}
	if d := cmp.Diff(pdf.Dict{"Im1": img}, res["XObject"]); d != "" {
		t.Errorf("XObject (-want +got):\n%s", d)
	}
	if _, ok := res["ExtGState"].(pdf.Dict)["GS1"]; !ok {
		t.Error("ExtGState missing")
	}
	fonts, ok := res["Font"].(pdf.Dict)
	if !ok {
		t.Fatal("page resources do not include the fonts")
	}
	direct, _ := doc.fonts.Resolve(F)
	if fonts[F.Label()] != direct.Ref {
		t.Errorf("wrong font reference %v", fonts[F.Label()])
	}
	if s.store.Get(img) == nil {
		t.Error("image was pruned")
	}
}

func TestEmptyDocument(t *testing.T) {
	for _, humanReadable := range []bool{true, false} {
		doc, _, _ := New("Empty", 100, 100, "a", nil)
		doc.pages = nil
		out := save(t, doc, humanReadable)

		s := inspect(t, doc)
		if s.pages["Count"] != pdf.Integer(0) || len(s.kids) != 0 {
			t.Errorf("wrong page tree %s", pdf.Format(s.pages))
		}
		if _, ok := s.pages["Resources"]; ok {
			t.Error("unexpected resources on page tree")
		}
		if !bytes.HasPrefix(out, []byte("%PDF-1.3\n")) || !bytes.HasSuffix(out, []byte("%%EOF\n")) {
			t.Error("not a PDF file")
		}
	}
}

func TestPageWithoutLayers(t *testing.T) {
	for _, humanReadable := range []bool{true, false} {
		doc, _, _ := New("Test", 100, 100, "a", nil)
		doc.AddEmptyPage(50, 50)
		save(t, doc, humanReadable)

		s := inspect(t, doc)
		for i, page := range s.kids {
			ref, hasContents := page["Contents"].(pdf.Reference)
			if humanReadable {
				stm, ok := s.store.Get(ref).(*pdf.Stream)
				if !ok || len(stm.Data) != 0 {
					t.Errorf("page %d: expected empty content stream", i)
				}
			} else if hasContents {
				t.Errorf("page %d: empty content stream was kept", i)
			}
		}
	}
}

func TestFontResources(t *testing.T) {
	doc, _, _ := New("Test", 100, 100, "a", nil)
	for _, data := range [][]byte{goregular.TTF, gomono.TTF, goregular.TTF, gomono.TTF} {
		_, err := doc.AddFont(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
	}
	save(t, doc, false)

	s := inspect(t, doc)
	res := s.pages["Resources"].(pdf.Dict)
	fonts := res["Font"].(pdf.Dict)
	if len(fonts) != 2 {
		t.Errorf("got %d fonts, want 2", len(fonts))
	}
	for label, ref := range fonts {
		dict, ok := s.store.Get(ref.(pdf.Reference)).(pdf.Dict)
		if !ok || dict["Subtype"] != pdf.Name("Type0") {
			t.Errorf("%s: not a Type0 font", label)
		}
	}
}

func TestNoFonts(t *testing.T) {
	doc, _, _ := New("Test", 100, 100, "a", nil)
	save(t, doc, false)
	s := inspect(t, doc)
	if _, ok := s.pages["Resources"]; ok {
		t.Error("page tree has resources without fonts")
	}
}

func TestCatalogAndTrailer(t *testing.T) {
	doc, _, _ := New("Catalog Test", 100, 100, "a", testOptions("0123456789abcdef0123456789abcdef"))
	save(t, doc, true)
	s := inspect(t, doc)

	checks := map[pdf.Name]pdf.Object{
		"Type":       pdf.Name("Catalog"),
		"PageLayout": pdf.Name("OneColumn"),
		"PageMode":   pdf.Name("Use0"),
	}
	for key, want := range checks {
		if s.catalog[key] != want {
			t.Errorf("%s = %v, want %v", key, s.catalog[key], want)
		}
	}
	meta, ok := s.store.Get(s.catalog["Metadata"].(pdf.Reference)).(*pdf.Stream)
	if !ok || meta.Dict["Type"] != pdf.Name("Metadata") {
		t.Error("metadata stream missing")
	}
	intents := s.catalog["OutputIntents"].(pdf.Array)
	if len(intents) != 1 {
		t.Fatalf("got %d output intents", len(intents))
	}

	wantID := pdf.Array{
		pdf.String("0123456789abcdef0123456789abcdef"),
		pdf.String(fmt.Sprintf("%032d", 1)),
	}
	if d := cmp.Diff(wantID, s.store.Trailer("ID")); d != "" {
		t.Errorf("ID (-want +got):\n%s", d)
	}

	info := s.store.Get(s.store.Trailer("Info").(pdf.Reference)).(pdf.Dict)
	if pdf.Format(info["Title"]) != "(Catalog Test)" {
		t.Errorf("wrong title %v", info["Title"])
	}
	if pdf.Format(info["CreationDate"]) != "(D:20170505150224+00'00')" {
		t.Errorf("wrong creation date %v", info["CreationDate"])
	}
}

func TestOutputIntentProfile(t *testing.T) {
	for _, withICC := range []bool{false, true} {
		doc, _, _ := New("Test", 100, 100, "a", nil)
		if withICC {
			err := doc.AddICCProfile(icc.SRGBv2Profile)
			if err != nil {
				t.Fatal(err)
			}
		}
		save(t, doc, false)

		s := inspect(t, doc)
		intent := s.catalog["OutputIntents"].(pdf.Array)[0].(pdf.Dict)
		if intent["S"] != pdf.Name("GTS_PDFX") || pdf.Format(intent["OutputConditionIdentifier"]) != "(FOGRA39)" {
			t.Errorf("wrong output intent %s", pdf.Format(intent))
		}
		ref, ok := intent["DestinationOutputProfile"].(pdf.Reference)
		if ok != withICC {
			t.Errorf("withICC=%t: DestinationOutputProfile present=%t", withICC, ok)
		}
		if ok {
			stm := s.store.Get(ref).(*pdf.Stream)
			if stm.Dict["N"] != pdf.Integer(3) {
				t.Errorf("wrong ICC stream dict %s", pdf.Format(stm.Dict))
			}
		}
	}
}

func buildDocument(t *testing.T, ids *seqIDs) *Document {
	t.Helper()
	doc, page, layer := New("Repeat", 200, 200, "a", &Options{
		IDSource: ids,
		Now:      func() time.Time { return testTime },
	})
	doc.SetAuthor("Jane Doe").SetKeywords("x", "y")
	F, err := doc.AddFont(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Page(page).Layer(layer).ShowText(F, 10, 20, 30, "Hello")
	if err != nil {
		t.Fatal(err)
	}
	doc.AddPage(100, 100, "b")
	return doc
}

func TestRepeatedSaves(t *testing.T) {
	for _, humanReadable := range []bool{true, false} {
		ids := &seqIDs{docID: "0123456789abcdef0123456789abcdef"}
		a := save(t, buildDocument(t, ids), humanReadable)
		ids.started = false
		ids.next = 10
		b := save(t, buildDocument(t, ids), humanReadable)

		if bytes.Equal(a, b) {
			t.Fatal("instance IDs are equal")
		}
		idA := []byte(fmt.Sprintf("(%032d)", 1))
		idB := []byte(fmt.Sprintf("(%032d)", 11))
		if bytes.Count(a, idA) != 1 || bytes.Count(b, idB) != 1 {
			t.Fatal("instance ID not found")
		}
		b = bytes.Replace(b, idB, idA, 1)
		if !bytes.Equal(a, b) {
			t.Error("saved files differ in more than the instance ID")
		}
	}
}

func TestSaveConsumes(t *testing.T) {
	doc, _, _ := New("Test", 100, 100, "a", nil)
	save(t, doc, false)

	err := doc.Save(&bytes.Buffer{}, nil)
	if !errors.Is(err, ErrConsumed) {
		t.Errorf("second save: got %v", err)
	}
	res := expectPanic(t, func() { doc.AddPage(10, 10, "x") })
	if res != ErrConsumed {
		t.Errorf("unexpected panic value %v", res)
	}
}

func TestSaveDuringIteration(t *testing.T) {
	doc, _, _ := New("Test", 100, 100, "a", nil)
	for range doc.Pages() {
		expectPanic(t, func() { doc.Save(&bytes.Buffer{}, nil) })
	}
	save(t, doc, false)
}

func TestSaveLogs(t *testing.T) {
	h := logging.NewBufferedHandler(nil)
	logging.SetLogger(slog.New(h))
	defer logging.SetLogger(nil)

	doc, _, _ := New("Test", 100, 100, "a", nil)
	save(t, doc, false)
	if !h.Contains("writing PDF file") || !h.Contains("optimized=true") {
		t.Errorf("unexpected log output %q", h.String())
	}
}

func TestConformanceVersion(t *testing.T) {
	doc, _, _ := New("Test", 100, 100, "a", nil)
	doc.SetConformance(metadata.PDFA2a2011)
	out := save(t, doc, false)
	if !bytes.HasPrefix(out, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header %q", out[:9])
	}
}
