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
	"strconv"

	"seehuhn.de/go/pdfgen/font/metrics"
	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/pdf"
)

// IndirectRef is a handle for a font registered with a [Registry].
// The zero value does not refer to any font.
type IndirectRef struct {
	label string
}

// Label returns the name used for the font in resource dictionaries.
func (h IndirectRef) Label() pdf.Name {
	return pdf.Name(h.label)
}

func (h IndirectRef) String() string {
	return h.label
}

// DirectRef describes a registered font, together with the reference
// under which the font dictionary will be stored.
type DirectRef struct {
	Ref  pdf.Reference
	Font *Font
}

type registered struct {
	DirectRef
	face metrics.Face
}

// Registry keeps track of the fonts used in a document.
//
// Fonts are identified by their PostScript name: registering a second font
// with the same name returns the handle of the first one.  The data of the
// second font is discarded.
type Registry struct {
	store  *pdf.Store
	loader metrics.Loader

	byName map[string]IndirectRef
	fonts  map[IndirectRef]*registered
	order  []IndirectRef
}

// NewRegistry creates an empty font registry.  Object numbers for the fonts
// are allocated from store.  If loader is nil, [metrics.SFNT] is used.
func NewRegistry(store *pdf.Store, loader metrics.Loader) *Registry {
	if loader == nil {
		loader = metrics.SFNT{}
	}
	return &Registry{
		store:  store,
		loader: loader,
		byName: make(map[string]IndirectRef),
		fonts:  make(map[IndirectRef]*registered),
	}
}

// Register adds the font program data to the registry.
//
// The font must have a PostScript name and size metrics, otherwise a
// [*DecodeError] is returned.  If a font with the same PostScript name is
// already registered, the existing handle is returned.  If the registration
// fails, the registry is left unchanged.
func (r *Registry) Register(data []byte) (IndirectRef, error) {
	face, err := load(data, r.loader)
	if err != nil {
		return IndirectRef{}, err
	}
	name, err := face.PostScriptName()
	if err != nil {
		return IndirectRef{}, &DecodeError{Op: "postscript name", Err: err}
	}
	_, err = face.SizeMetrics()
	if err != nil {
		return IndirectRef{}, &DecodeError{Op: "size metrics", Err: err}
	}

	if h, ok := r.byName[name]; ok {
		old := r.fonts[h].Font
		if !bytes.Equal(old.Data, data) {
			logging.Logger().Warn("font name collision, keeping first font",
				"font", name,
				"kept", len(old.Data),
				"discarded", len(data))
		}
		return h, nil
	}

	ref, err := r.store.Alloc()
	if err != nil {
		return IndirectRef{}, err
	}

	h := IndirectRef{label: "F" + strconv.Itoa(len(r.order))}
	r.byName[name] = h
	r.fonts[h] = &registered{
		DirectRef: DirectRef{
			Ref:  ref,
			Font: &Font{Data: data, PostScriptName: name},
		},
		face: face,
	}
	r.order = append(r.order, h)
	return h, nil
}

// Resolve returns the font registered under h.
// The second return value is false if h is not known to the registry.
func (r *Registry) Resolve(h IndirectRef) (*DirectRef, bool) {
	f, ok := r.fonts[h]
	if !ok {
		return nil, false
	}
	return &f.DirectRef, true
}

// Face returns the parsed font program registered under h,
// or nil if h is not known.
func (r *Registry) Face(h IndirectRef) metrics.Face {
	f, ok := r.fonts[h]
	if !ok {
		return nil
	}
	return f.face
}

// Len returns the number of distinct fonts in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// ResourceDict returns the font resource dictionary, which maps the labels
// of all registered fonts to their font dictionaries.  The fonts themselves
// are written by [Registry.Embed].
func (r *Registry) ResourceDict() pdf.Dict {
	res := make(pdf.Dict, len(r.order))
	for _, h := range r.order {
		res[h.Label()] = r.fonts[h].Ref
	}
	return res
}

// Embed writes all registered fonts to the store, in registration order,
// and returns the font resource dictionary.
func (r *Registry) Embed() (pdf.Dict, error) {
	for _, h := range r.order {
		f := r.fonts[h]
		err := embedFace(r.store, f.Ref, f.Font, f.face)
		if err != nil {
			return nil, err
		}
	}
	return r.ResourceDict(), nil
}
