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

import "crypto/rand"

// IDSource generates the identifiers written into the trailer ID array.
type IDSource interface {
	// NewID returns a fresh identifier.
	NewID() string
}

// IDLength is the length of the identifiers generated by [RandomIDs].
const IDLength = 32

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type randomIDs struct{}

// RandomIDs returns an IDSource which generates random alphanumeric
// identifiers of length [IDLength].
func RandomIDs() IDSource {
	return randomIDs{}
}

func (randomIDs) NewID() string {
	return randomString(IDLength)
}

func randomString(n int) string {
	// largest multiple of len(idAlphabet) which fits into a byte
	const limit = 256 / len(idAlphabet) * len(idAlphabet)

	res := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(res) < n {
		_, err := rand.Read(buf)
		if err != nil {
			panic(err)
		}
		for _, b := range buf {
			if int(b) >= limit || len(res) == n {
				continue
			}
			res = append(res, idAlphabet[int(b)%len(idAlphabet)])
		}
	}
	return string(res)
}
