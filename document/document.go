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

// Package document generates the content of PDF pages.
//
// A [Document] holds the registries which are shared between pages: units,
// named colors, line patterns, bullets, and the caches for fonts and
// images.  Pages are opened one at a time using [Document.OpenPage]; the
// returned [Page] provides the drawing and text operations.  When a page
// is closed, its content stream and resources are handed to the
// [pdfgen.Assembler] configured in the [Options].
//
// Caller coordinates have their origin in the top left corner of the
// content area (inside the margins), with the y-axis pointing down.
// Angles are in degrees and are measured counter-clockwise, as seen on
// the page.
package document

import (
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/coords"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/afmfont"
	"seehuhn.de/go/pdfgen/font/gofont"
	"seehuhn.de/go/pdfgen/font/standard"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/image"
)

// Options configure a [Document].  The zero value selects the defaults
// given for each field.
type Options struct {
	// PageSize is the default media box for new pages.
	// The default is A4.
	PageSize rect.Rect

	// Unit is the default unit for caller coordinates.
	// The default is "pt".
	Unit string

	// Units lists additional units, in points per unit.
	Units map[string]float64

	// Colors lists additional named colors.
	Colors map[string]color.Color

	// LinePatterns lists additional named dash patterns, in points.
	LinePatterns map[string][]float64

	// Fonts loads font metrics.  The default provider knows the standard
	// PDF fonts, the Go fonts, and fonts given by the path of an AFM or
	// TrueType file.
	Fonts font.Provider

	// Encoding is the default font encoding.
	// The default is WinAnsiEncoding.
	Encoding string

	// Images determines image dimensions.
	// The default is [image.DecodeConfigIntrospector].
	Images image.Introspector

	// Assembler receives the generated resources and pages.
	// The default is a new [pdfgen.MemoryAssembler].
	Assembler pdfgen.Assembler

	// Logger, if set, receives diagnostic messages.
	Logger *slog.Logger
}

// Document holds the state shared by all pages of a PDF file.
type Document struct {
	units    *coords.Units
	colors   *color.Table
	patterns map[string]graphics.Dash
	bullets  map[string]*Bullet

	provider     font.Provider
	fontRequests map[font.Request]*fontEntry
	fonts        map[font.Key]*fontEntry
	encoding     string

	introspector image.Introspector
	images       map[imageKey]*imageEntry

	asm  pdfgen.Assembler
	log  *slog.Logger
	size rect.Rect
	unit string

	page     *Page
	numPages int
	closed   bool
}

type fontEntry struct {
	metrics *font.Metrics
	name    pdfgen.Name
}

// New creates a new document.
func New(opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}

	d := &Document{
		units:        coords.NewUnits(),
		colors:       color.NewTable(),
		patterns:     make(map[string]graphics.Dash),
		bullets:      make(map[string]*Bullet),
		provider:     opt.Fonts,
		fontRequests: make(map[font.Request]*fontEntry),
		fonts:        make(map[font.Key]*fontEntry),
		encoding:     opt.Encoding,
		introspector: opt.Images,
		images:       make(map[imageKey]*imageEntry),
		asm:          opt.Assembler,
		log:          opt.Logger,
		size:         opt.PageSize,
		unit:         opt.Unit,
	}
	if d.provider == nil {
		d.provider = font.Chain{standard.Provider, gofont.New(), afmfont.New(nil)}
	}
	if d.introspector == nil {
		d.introspector = image.DecodeConfigIntrospector{}
	}
	if d.asm == nil {
		d.asm = pdfgen.NewMemoryAssembler()
	}
	if d.log == nil {
		d.log = newNopLogger()
	}
	if d.size == (rect.Rect{}) {
		d.size = coords.A4
	}
	if d.unit == "" {
		d.unit = coords.Point
	}

	for _, name := range sortedKeys(opt.Units) {
		err := d.units.Add(name, opt.Units[name])
		if err != nil {
			return nil, err
		}
	}
	if !d.units.Has(d.unit) {
		return nil, &coords.UnknownUnitError{Unit: d.unit}
	}
	for _, name := range sortedKeys(opt.Colors) {
		err := d.colors.Add(name, opt.Colors[name])
		if err != nil {
			return nil, err
		}
	}
	for name, pat := range defaultPatterns {
		d.patterns[name] = graphics.Dash{Pattern: pat}
	}
	for name, pat := range opt.LinePatterns {
		d.patterns[name] = graphics.Dash{Pattern: slices.Clone(pat)}
	}
	for _, b := range defaultBullets() {
		d.bullets[b.Name] = b
	}
	return d, nil
}

// Assembler returns the assembler which receives the generated resources.
func (d *Document) Assembler() pdfgen.Assembler {
	return d.asm
}

// Units returns the unit table of the document.
func (d *Document) Units() *coords.Units {
	return d.units
}

// Colors returns the named-color table of the document.
func (d *Document) Colors() *color.Table {
	return d.colors
}

// LinePatterns returns the names of all known line patterns, in
// alphabetical order.
func (d *Document) LinePatterns() []string {
	return sortedKeys(d.patterns)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// AddLinePattern registers a named dash pattern.  The lengths are given
// in points.
func (d *Document) AddLinePattern(name string, pattern []float64) {
	d.patterns[name] = graphics.Dash{Pattern: slices.Clone(pattern)}
}

// NumPages returns the number of pages which have been closed.
func (d *Document) NumPages() int {
	return d.numPages
}

// Close finishes the document.  All pages must be closed before this is
// called.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	if d.page != nil {
		return pdfgen.Usage("Close", pdfgen.ErrPageOpen)
	}
	d.closed = true
	d.log.Debug("document closed", "pages", d.numPages)
	return nil
}
