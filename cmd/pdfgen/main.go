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

// Command pdfgen writes a single-page PDF file containing a line of text.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/metrics"
	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/metadata"
)

var paperSizes = map[string]rect.Rect{
	"a4":     pdfgen.A4,
	"a5":     pdfgen.A5,
	"letter": pdfgen.Letter,
}

func main() {
	out := flag.String("o", "-", "output file (\"-\" for stdout)")
	fontFile := flag.String("font", "", "TrueType or OpenType font (default: Go Regular)")
	title := flag.String("title", "Hello", "document title")
	author := flag.String("author", "", "document author")
	text := flag.String("text", "Hello, World!", "text to show on the page")
	fontSize := flag.Float64("size", 24, "font size in points")
	paper := flag.String("paper", "a4", "paper size (a4, a5 or letter)")
	iccFile := flag.String("icc", "", "ICC profile for the output intent")
	conformance := flag.String("conformance", metadata.DefaultConformance.Identifier(), "conformance level")
	useXImage := flag.Bool("ximage", false, "use golang.org/x/image to read the font")
	humanReadable := flag.Bool("human", false, "do not compress the output")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logging.SetLogger(slog.New(h))
	}

	opt := &options{
		out:           *out,
		fontFile:      *fontFile,
		title:         *title,
		author:        *author,
		text:          *text,
		fontSize:      *fontSize,
		paper:         *paper,
		iccFile:       *iccFile,
		conformance:   *conformance,
		useXImage:     *useXImage,
		humanReadable: *humanReadable,
	}
	err := run(opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfgen: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	out           string
	fontFile      string
	title         string
	author        string
	text          string
	fontSize      float64
	paper         string
	iccFile       string
	conformance   string
	useXImage     bool
	humanReadable bool
}

func run(opt *options) error {
	size, ok := paperSizes[strings.ToLower(opt.paper)]
	if !ok {
		return fmt.Errorf("unknown paper size %q", opt.paper)
	}
	conformance, err := metadata.ParseConformance(opt.conformance)
	if err != nil {
		return err
	}

	if opt.out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write binary data to a terminal, use -o")
		}
		return generate(os.Stdout, opt, size, conformance)
	}

	fd, err := os.Create(opt.out)
	if err != nil {
		return err
	}
	err = generate(fd, opt, size, conformance)
	closeErr := fd.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(opt.out)
		return err
	}
	return nil
}

// generate writes a one-page document showing opt.text to w.
func generate(w io.Writer, opt *options, size rect.Rect, conformance metadata.Conformance) error {
	docOpt := &pdfgen.Options{}
	if opt.useXImage {
		docOpt.Loader = metrics.XImage{}
	}
	doc, page, layer := pdfgen.New(opt.title, size.URx, size.URy, "Text", docOpt)
	doc.SetAuthor(opt.author).
		SetCreator("pdfgen").
		SetProducer("seehuhn.de/go/pdfgen").
		SetConformance(conformance)

	fontData := goregular.TTF
	if opt.fontFile != "" {
		var err error
		fontData, err = os.ReadFile(opt.fontFile)
		if err != nil {
			return err
		}
	}
	F, err := doc.AddFont(bytes.NewReader(fontData))
	if err != nil {
		return err
	}

	if opt.iccFile != "" {
		profile, err := os.ReadFile(opt.iccFile)
		if err != nil {
			return err
		}
		err = doc.AddICCProfile(profile)
		if err != nil {
			return err
		}
	}

	err = doc.Page(page).Layer(layer).ShowText(F, opt.fontSize, 72, size.URy-72-opt.fontSize, opt.text)
	if err != nil {
		return err
	}
	err = doc.CheckForErrors()
	if err != nil {
		return err
	}

	return doc.Save(w, &pdfgen.SaveOptions{HumanReadable: opt.humanReadable})
}
