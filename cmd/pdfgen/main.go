// seehuhn.de/go/pdfgen - generate PDF page content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/coords"
	"seehuhn.de/go/pdfgen/document"
	"seehuhn.de/go/pdfgen/text"
	"seehuhn.de/go/pdfgen/text/markup"
)

var (
	paper    = flag.String("paper", "A4", "paper size (A3, A4, A5, Letter, Legal, Tabloid)")
	unit     = flag.String("unit", "mm", "unit for margins")
	margin   = flag.Float64("margin", 20, "page margin, in the given unit")
	family   = flag.String("font", "Helvetica", "font family, or the path of a font file")
	size     = flag.Float64("size", 11, "font size in points")
	leading  = flag.Float64("leading", 1.2, "line height, as a multiple of the font height")
	justify  = flag.Bool("justify", false, "justify paragraphs")
	verbose  = flag.Bool("v", false, "log debug messages")
	errEmpty = errors.New("text does not fit on a page")
)

func main() {
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %s [options] input.{md,html,txt} outdir\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	n, err := run(flag.Arg(0), flag.Arg(1), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %d pages of %s to %s\n", n, flag.Arg(0), flag.Arg(1))
}

func run(inputFile, outDir string, logger *slog.Logger) (int, error) {
	src, err := os.ReadFile(inputFile)
	if err != nil {
		return 0, err
	}
	pageSize, ok := paperSize(*paper)
	if !ok {
		return 0, fmt.Errorf("unknown paper size %q", *paper)
	}

	asm := pdfgen.NewMemoryAssembler()
	doc, err := document.New(&document.Options{
		PageSize:  pageSize,
		Unit:      *unit,
		Assembler: asm,
		Logger:    logger,
	})
	if err != nil {
		return 0, err
	}
	f, err := doc.Font(*family, *size, nil)
	if err != nil {
		return 0, err
	}

	rt := text.New(text.Spacing{})
	base := text.Style{Font: f, Color: f.Color}
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".md", ".markdown":
		err = markup.AppendMarkdown(rt, string(src), base, doc)
	case ".html", ".htm":
		err = markup.AppendHTML(rt, string(src), base, doc)
	default:
		rt.Append(string(src), base)
	}
	if err != nil {
		return 0, err
	}

	opt := &document.ParagraphOptions{LineHeight: *leading}
	if *justify {
		opt.Align = document.AlignJustify
	}
	for !rt.Empty() {
		before := rt.String()
		err := writePage(doc, rt, opt)
		if err != nil {
			return 0, err
		}
		if rt.String() == before {
			return 0, errEmpty
		}
	}
	if err := doc.Close(); err != nil {
		return 0, err
	}

	err = os.MkdirAll(outDir, 0o755)
	if err != nil {
		return 0, err
	}
	pages := asm.Pages()
	for i, page := range pages {
		name := filepath.Join(outDir, fmt.Sprintf("page%03d.txt", i+1))
		err := os.WriteFile(name, page.Content, 0o644)
		if err != nil {
			return 0, err
		}
	}
	return len(pages), nil
}

// writePage fills one page with as much of rt as fits.
func writePage(doc *document.Document, rt *text.RichText, opt *document.ParagraphOptions) error {
	page, err := doc.OpenPage(&document.PageOptions{Margins: []float64{*margin}})
	if err != nil {
		return err
	}
	f, err := doc.Font(*family, *size, nil)
	if err != nil {
		return err
	}
	page.UseFont(f)

	// the first baseline is one ascent below the top margin
	_, height := page.Size()
	ascent, err := doc.Units().FromPoints(*unit, f.Ascent())
	if err != nil {
		return err
	}
	page.SetPen(0, ascent)

	o := *opt
	o.Height = height - ascent
	err = page.RichParagraph(rt, &o)
	if err != nil {
		return err
	}
	return page.Close()
}

func paperSize(name string) (r rect.Rect, ok bool) {
	switch strings.ToLower(name) {
	case "a3":
		return coords.A3, true
	case "a4":
		return coords.A4, true
	case "a5":
		return coords.A5, true
	case "letter":
		return coords.Letter, true
	case "legal":
		return coords.Legal, true
	case "tabloid":
		return coords.Tabloid, true
	}
	return r, false
}
