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
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this package.
const (
	V1_3 Version = iota + 3
	V1_4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	if ver < V1_3 || ver > V1_7 {
		return "pdf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return "1." + strconv.Itoa(int(ver))
}

// DefaultMaxObjects is the largest object number allowed by the PDF
// implementation limits.
const DefaultMaxObjects = 8_388_607

// StoreOptions controls the behaviour of a [Store].
// The zero value selects PDF version 1.3 and the default object limit.
type StoreOptions struct {
	Version Version

	// MaxObjects is the largest object number which can be allocated.
	MaxObjects int
}

// AllocationError is returned when the object store runs out of object
// numbers.  This error is not recoverable.
type AllocationError struct {
	Limit int
}

func (err *AllocationError) Error() string {
	return "pdf: cannot allocate more than " + strconv.Itoa(err.Limit) + " objects"
}

// Store holds the indirect objects of a PDF file in memory, until the file is
// serialized using [Store.Write].
type Store struct {
	version    Version
	maxObjects int

	nextRef int
	objects map[int]Object
	trailer Dict
}

// NewStore creates an empty object store.
func NewStore(opt *StoreOptions) *Store {
	if opt == nil {
		opt = &StoreOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_3
	}
	maxObjects := opt.MaxObjects
	if maxObjects <= 0 {
		maxObjects = DefaultMaxObjects
	}
	return &Store{
		version:    ver,
		maxObjects: maxObjects,
		nextRef:    1,
		objects:    make(map[int]Object),
		trailer:    Dict{},
	}
}

// Version returns the PDF version written into the file header.
func (s *Store) Version() Version {
	return s.version
}

// SetVersion changes the PDF version written into the file header.
func (s *Store) SetVersion(ver Version) {
	s.version = ver
}

// Alloc allocates an object number for an indirect object.
// The object itself can be stored later, using [Store.Put].
func (s *Store) Alloc() (Reference, error) {
	if s.nextRef > s.maxObjects {
		return Reference{}, &AllocationError{Limit: s.maxObjects}
	}
	ref := Reference{Number: s.nextRef}
	s.nextRef++
	return ref, nil
}

// Add allocates a new object number and stores obj under this number.
func (s *Store) Add(obj Object) (Reference, error) {
	ref, err := s.Alloc()
	if err != nil {
		return Reference{}, err
	}
	s.objects[ref.Number] = obj
	return ref, nil
}

// Put stores obj under a previously allocated reference.
// An existing object with the same number is replaced.
func (s *Store) Put(ref Reference, obj Object) error {
	if ref.Number <= 0 || ref.Number >= s.nextRef {
		return fmt.Errorf("pdf: reference %s was not allocated", ref)
	}
	s.objects[ref.Number] = obj
	return nil
}

// Get returns the object stored under ref, or nil if there is no such object.
func (s *Store) Get(ref Reference) Object {
	return s.objects[ref.Number]
}

// Len returns the number of objects currently held in the store.
func (s *Store) Len() int {
	return len(s.objects)
}

// SetTrailer sets an entry in the trailer dictionary.
// The /Size entry is managed by the store and cannot be set.
func (s *Store) SetTrailer(key Name, val Object) {
	if key == "Size" {
		return
	}
	s.trailer[key] = val
}

// Trailer returns the value of a trailer dictionary entry.
func (s *Store) Trailer(key Name) Object {
	return s.trailer[key]
}

var errMissingRoot = errors.New("pdf: missing /Root in trailer")

// Write serializes the file to w.  Objects are written in order of
// increasing object number, followed by a classic cross-reference table
// and the trailer.
func (s *Store) Write(w io.Writer) error {
	if s.trailer["Root"] == nil {
		return errMissingRoot
	}

	pw := &posWriter{w: w}
	_, err := fmt.Fprintf(pw, "%%PDF-%s\n%%\x80\x80\x80\x80\n", s.version)
	if err != nil {
		return err
	}

	numbers := make([]int, 0, len(s.objects))
	for number := range s.objects {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)

	pos := make(map[int]int64, len(numbers))
	for _, number := range numbers {
		obj := s.objects[number]
		if obj == nil {
			continue
		}
		pos[number] = pw.pos
		_, err := fmt.Fprintf(pw, "%d 0 obj\n", number)
		if err != nil {
			return err
		}
		err = obj.PDF(pw)
		if err != nil {
			return err
		}
		_, err = pw.Write([]byte("\nendobj\n"))
		if err != nil {
			return err
		}
	}

	xRefPos := pw.pos
	_, err = fmt.Fprintf(pw, "xref\n0 %d\n", s.nextRef)
	if err != nil {
		return err
	}
	for i := 0; i < s.nextRef; i++ {
		p, ok := pos[i]
		if ok {
			_, err = fmt.Fprintf(pw, "%010d 00000 n\r\n", p)
		} else {
			// free object
			_, err = pw.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	trailer := make(Dict, len(s.trailer)+1)
	for key, val := range s.trailer {
		trailer[key] = val
	}
	trailer["Size"] = Integer(s.nextRef)

	_, err = pw.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pw)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
