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

// Package logging holds the logger used by all pdfgen packages.
//
// By default all log output is discarded.  Use [SetLogger] to receive
// warnings, for example about font name collisions or unsupported
// conformance checks:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package logging

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

var discard = slog.New(slog.DiscardHandler)

// SetLogger sets the logger used by pdfgen.
// Passing nil restores the default, which discards all output.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger used by pdfgen.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
