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

package borrow

import "testing"

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got != want {
			t.Errorf("got panic %v, want %v", got, want)
		}
	}()
	fn()
}

func TestSharedBorrows(t *testing.T) {
	var c Cell
	r1 := c.Borrow()
	r2 := c.Borrow()
	if !c.Borrowed() {
		t.Error("cell not marked as borrowed")
	}
	r1()
	r1() // no effect
	expectPanic(t, ErrAlreadyBorrowed, func() { c.BorrowMut() })
	r2()
	if c.Borrowed() {
		t.Error("cell still borrowed after release")
	}
	w := c.BorrowMut()
	w()
}

func TestExclusiveBorrow(t *testing.T) {
	var c Cell
	w := c.BorrowMut()
	expectPanic(t, ErrAlreadyMutablyBorrowed, func() { c.Borrow() })
	expectPanic(t, ErrAlreadyMutablyBorrowed, func() { c.BorrowMut() })
	w()
	r := c.Borrow()
	r()
}
