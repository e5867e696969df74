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

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler is a [slog.Handler] which keeps all records in memory,
// one JSON object per line.  This is used in tests to check which warnings
// were emitted.
type BufferedHandler struct {
	level  slog.Leveler
	shared *buffer
	attrs  []slog.Attr
	groups []string
}

type buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBufferedHandler creates a new BufferedHandler.
// If opts is nil or opts.Level is nil, all levels are recorded.
func NewBufferedHandler(opts *slog.HandlerOptions) *BufferedHandler {
	h := &BufferedHandler{shared: &buffer{}}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements [slog.Handler].
func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements [slog.Handler].
func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	e := entry{
		Level:   r.Level.String(),
		Message: r.Message,
	}
	for _, a := range h.attrs {
		e.Attrs = append(e.Attrs, h.format(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs = append(e.Attrs, h.format(a))
		return true
	})

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	h.shared.buf.Write(data)
	h.shared.buf.WriteByte('\n')
	return nil
}

func (h *BufferedHandler) format(a slog.Attr) string {
	if len(h.groups) == 0 {
		return a.String()
	}
	return strings.Join(h.groups, ".") + "." + a.String()
}

// WithAttrs implements [slog.Handler].
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := *h
	res.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &res
}

// WithGroup implements [slog.Handler].
func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	res := *h
	res.groups = append(append([]string(nil), h.groups...), name)
	return &res
}

// String returns everything recorded so far.
func (h *BufferedHandler) String() string {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	return h.shared.buf.String()
}

// Contains reports whether the recorded output contains s.
func (h *BufferedHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

// Lines returns the number of records written so far.
func (h *BufferedHandler) Lines() int {
	return strings.Count(h.String(), "\n")
}

// Reset discards all recorded output.
func (h *BufferedHandler) Reset() {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	h.shared.buf.Reset()
}

type entry struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Attrs   []string `json:"attrs,omitempty"`
}
