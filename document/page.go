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

package document

import (
	"bytes"
	"errors"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/coords"
	"seehuhn.de/go/pdfgen/graphics"
)

// PageOptions configure a new page.  The zero value uses the document
// defaults.
type PageOptions struct {
	// Size is the media box of the physical page.
	Size rect.Rect

	// Unit is the unit for caller coordinates on this page.
	Unit string

	// SubPage, if set, places the page content into one tile of a grid
	// of virtual pages on the physical sheet.
	SubPage *coords.Tile

	// Margins are given in Unit, with 1, 2 or 4 values as for
	// [Page.SetMargins].
	Margins []float64
}

// Page is an open page of a document.  All drawing and text operations
// are methods of Page.
type Page struct {
	doc *Document
	buf *bytes.Buffer
	w   *graphics.Writer
	sys *coords.System

	pen       vec.Vec2 // caller coordinates
	underline bool

	marginDepth int // number of saved states below the margin transform
	hasMargins  bool

	fonts  map[pdfgen.Name]bool
	images map[pdfgen.Name]bool
	closed bool
}

var errBadDepth = errors.New("margins changed inside a saved graphics state")

// OpenPage starts a new page.  Only one page can be open at a time.
func (d *Document) OpenPage(opt *PageOptions) (*Page, error) {
	if d.closed {
		return nil, pdfgen.Usage("OpenPage", pdfgen.ErrClosed)
	}
	if d.page != nil {
		return nil, pdfgen.Usage("OpenPage", pdfgen.ErrPageOpen)
	}
	if opt == nil {
		opt = &PageOptions{}
	}

	size := opt.Size
	if size == (rect.Rect{}) {
		size = d.size
	}
	unit := opt.Unit
	if unit == "" {
		unit = d.unit
	}
	sys, err := coords.NewSystem(d.units, size, unit)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	p := &Page{
		doc:    d,
		buf:    buf,
		w:      graphics.NewWriter(buf),
		sys:    sys,
		fonts:  make(map[pdfgen.Name]bool),
		images: make(map[pdfgen.Name]bool),
	}

	if opt.SubPage != nil {
		pl, err := sys.SetSubPage(*opt.SubPage)
		if err != nil {
			return nil, err
		}
		w := p.w
		w.Save()
		w.Transform(pl.Matrix)
		w.Shape(graphics.Paint{Clip: true}, func() {
			w.Rectangle(pl.Clip.LLx, pl.Clip.LLy, pl.Clip.URx-pl.Clip.LLx, pl.Clip.URy-pl.Clip.LLy)
		})
		if w.Err != nil {
			return nil, w.Err
		}
	}
	if len(opt.Margins) > 0 {
		_, err := p.SetMargins(opt.Margins...)
		if err != nil {
			return nil, err
		}
	}

	d.page = p
	d.log.Debug("page opened", "page", d.numPages+1,
		"width", sys.Size().Width, "height", sys.Size().Height)
	return p, nil
}

// Document returns the document the page belongs to.
func (p *Page) Document() *Document {
	return p.doc
}

// Writer returns the content stream writer of the page.
func (p *Page) Writer() *graphics.Writer {
	return p.w
}

// check returns an error if the page cannot be drawn on.
func (p *Page) check(op string) error {
	if p.closed {
		return pdfgen.Usage(op, pdfgen.ErrNoPage)
	}
	return p.w.Err
}

// Close finishes the page.  Pending lines are stroked, open text objects
// and saved graphics states are closed, and the content stream is passed
// to the assembler together with the names of all used resources.
func (p *Page) Close() error {
	if p.closed {
		return pdfgen.Usage("Close", pdfgen.ErrNoPage)
	}
	p.closed = true
	p.doc.page = nil

	err := p.w.Close()
	if err != nil {
		return err
	}

	res := &pdfgen.PageResource{
		Content:  p.buf.Bytes(),
		MediaBox: p.sys.MediaBox(),
		CropBox:  p.sys.CropBox(),
		Fonts:    make(map[pdfgen.Name]pdfgen.Name, len(p.fonts)),
		Images:   make(map[pdfgen.Name]pdfgen.Name, len(p.images)),
	}
	for name := range p.fonts {
		res.Fonts[name] = name
	}
	for name := range p.images {
		res.Images[name] = name
	}
	_, err = p.doc.asm.Add(res)
	if err != nil {
		return err
	}
	p.doc.numPages++
	p.doc.log.Debug("page closed", "page", p.doc.numPages, "bytes", len(res.Content))
	return nil
}

// Content returns the content stream written so far.
func (p *Page) Content() []byte {
	return p.buf.Bytes()
}

// SetUnit changes the unit for caller coordinates and returns the previous
// unit.
func (p *Page) SetUnit(unit string) (string, error) {
	prev, err := p.sys.SetUnit(unit)
	if err != nil {
		return prev, pdfgen.Usage("SetUnit", err)
	}
	return prev, nil
}

// Unit returns the current unit for caller coordinates.
func (p *Page) Unit() string {
	return p.sys.Unit()
}

// SetMargins sets the page margins, in the current unit.  One value
// applies to all four sides, two values give the vertical and horizontal
// margins, four values give top, right, bottom and left.  The previous
// margins are returned, in the current unit.
//
// The margins move the origin of the caller coordinates.  Setting new
// margins replaces the previous margin transformation.
func (p *Page) SetMargins(values ...float64) (coords.Margins, error) {
	prev, _ := p.sys.MarginsIn(p.sys.Unit())
	if err := p.check("SetMargins"); err != nil {
		return prev, err
	}
	if p.hasMargins && p.w.Depth() != p.marginDepth+1 {
		return prev, pdfgen.Usage("SetMargins", errBadDepth)
	}

	_, err := p.sys.SetMargins(p.sys.Unit(), values...)
	if err != nil {
		return prev, pdfgen.Usage("SetMargins", err)
	}

	if p.hasMargins {
		if err := p.w.Restore(); err != nil {
			return prev, err
		}
	}
	p.marginDepth = p.w.Depth()
	if err := p.w.Save(); err != nil {
		return prev, err
	}
	p.hasMargins = true
	return prev, p.w.Transform(p.sys.Margins().Matrix())
}

// Margins returns the current margins in the given unit.  If unit is
// empty, the current unit is used.
func (p *Page) Margins(unit string) (coords.Margins, error) {
	if unit == "" {
		unit = p.sys.Unit()
	}
	return p.sys.MarginsIn(unit)
}

// SetCropBox sets the visible region of the page.  The coordinates are
// PDF coordinates in the current unit, relative to the bottom left corner
// of the physical page.
func (p *Page) SetCropBox(llx, lly, urx, ury float64) error {
	return p.sys.SetCropBox(rect.Rect{
		LLx: p.sys.Length(llx),
		LLy: p.sys.Length(lly),
		URx: p.sys.Length(urx),
		URy: p.sys.Length(ury),
	})
}

// Size returns the width and height of the content area, in the current
// unit.
func (p *Page) Size() (width, height float64) {
	return p.sys.ContentSize()
}

// toPage converts caller coordinates into PDF coordinates.
func (p *Page) toPage(x, y float64) vec.Vec2 {
	return p.sys.ToPage(x, y)
}
