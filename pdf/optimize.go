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
	"slices"
)

// Prune removes all objects which cannot be reached from the trailer
// dictionary.  The number of removed objects is returned.
func (s *Store) Prune() int {
	seen := make(map[int]bool)
	var todo []Object
	for _, val := range s.trailer {
		todo = append(todo, val)
	}
	for len(todo) > 0 {
		obj := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		switch obj := obj.(type) {
		case Reference:
			if seen[obj.Number] {
				continue
			}
			seen[obj.Number] = true
			if next, ok := s.objects[obj.Number]; ok {
				todo = append(todo, next)
			}
		case Array:
			todo = append(todo, obj...)
		case Dict:
			for _, val := range obj {
				todo = append(todo, val)
			}
		case *Stream:
			for _, val := range obj.Dict {
				todo = append(todo, val)
			}
		}
	}

	removed := 0
	for number := range s.objects {
		if !seen[number] {
			delete(s.objects, number)
			removed++
		}
	}
	return removed
}

// DeleteZeroLengthStreams removes all indirect stream objects without data.
// References to the removed streams are removed from all dictionaries and
// arrays in the file.  The object numbers of the removed streams are
// returned in increasing order.
func (s *Store) DeleteZeroLengthStreams() []int {
	gone := make(map[int]bool)
	for number, obj := range s.objects {
		if stm, ok := obj.(*Stream); ok && len(stm.Data) == 0 {
			gone[number] = true
		}
	}
	if len(gone) == 0 {
		return nil
	}

	var numbers []int
	for number := range gone {
		delete(s.objects, number)
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)

	for number, obj := range s.objects {
		s.objects[number] = dropRefs(obj, gone)
	}
	for key, val := range s.trailer {
		if r, ok := val.(Reference); ok && gone[r.Number] {
			delete(s.trailer, key)
			continue
		}
		s.trailer[key] = dropRefs(val, gone)
	}
	return numbers
}

func dropRefs(obj Object, gone map[int]bool) Object {
	switch obj := obj.(type) {
	case Array:
		res := obj[:0]
		for _, elem := range obj {
			if r, ok := elem.(Reference); ok && gone[r.Number] {
				continue
			}
			res = append(res, dropRefs(elem, gone))
		}
		return res
	case Dict:
		for key, val := range obj {
			if r, ok := val.(Reference); ok && gone[r.Number] {
				delete(obj, key)
				continue
			}
			obj[key] = dropRefs(val, gone)
		}
		return obj
	case *Stream:
		obj.Dict, _ = dropRefs(obj.Dict, gone).(Dict)
		return obj
	default:
		return obj
	}
}

// Compress applies the FlateDecode filter to all indirect streams which are
// not yet filtered and not marked as NoCompress.  Streams for which
// compression does not save space are left unchanged.
func (s *Store) Compress() error {
	for _, obj := range s.objects {
		stm, ok := obj.(*Stream)
		if !ok || stm.NoCompress || len(stm.Data) == 0 || stm.Dict["Filter"] != nil {
			continue
		}

		buf := &bytes.Buffer{}
		zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
		if err != nil {
			return err
		}
		_, err = zw.Write(stm.Data)
		if err != nil {
			return err
		}
		err = zw.Close()
		if err != nil {
			return err
		}
		if buf.Len() >= len(stm.Data) {
			continue
		}

		if stm.Dict == nil {
			stm.Dict = Dict{}
		}
		stm.Dict["Filter"] = Name("FlateDecode")
		stm.Data = buf.Bytes()
	}
	return nil
}
