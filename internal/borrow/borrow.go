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

// Package borrow implements a runtime-checked shared/exclusive access flag.
//
// Any number of shared borrows may be active at the same time, but an
// exclusive borrow requires that no other borrow is active.  Violations
// panic immediately, so that inconsistent state is never observed.
package borrow

import "errors"

// Panic values used by [Cell].
var (
	ErrAlreadyBorrowed        = errors.New("borrow: already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("borrow: already mutably borrowed")
)

// Cell tracks the borrows of a single resource.
// The zero value is ready to use.  A Cell must not be copied after first use.
//
// Cell is not safe for concurrent use.
type Cell struct {
	readers int
	writer  bool
}

// Borrow acquires shared access.  The returned function ends the borrow;
// calling it more than once has no effect.
func (c *Cell) Borrow() (release func()) {
	if c.writer {
		panic(ErrAlreadyMutablyBorrowed)
	}
	c.readers++
	done := false
	return func() {
		if !done {
			done = true
			c.readers--
		}
	}
}

// BorrowMut acquires exclusive access.  The returned function ends the
// borrow; calling it more than once has no effect.
func (c *Cell) BorrowMut() (release func()) {
	if c.writer {
		panic(ErrAlreadyMutablyBorrowed)
	}
	if c.readers > 0 {
		panic(ErrAlreadyBorrowed)
	}
	c.writer = true
	done := false
	return func() {
		if !done {
			done = true
			c.writer = false
		}
	}
}

// Borrowed reports whether any borrow is currently active.
func (c *Cell) Borrowed() bool {
	return c.writer || c.readers > 0
}
