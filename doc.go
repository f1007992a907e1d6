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

// Package pdfgen generates the content streams of PDF pages.
//
// The engine turns high level drawing and text calls into the low level
// operators of a PDF content stream, together with the font, image and
// encoding resources those operators refer to.  The actual file structure
// is written by an [Assembler].
//
// A typical use looks like this:
//
//	doc := document.New(nil)
//	page, err := doc.OpenPage(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page.SetFont("Helvetica", 12, nil)
//	page.Paragraph("Hello World!", &document.ParagraphOptions{Width: 300})
//	err = page.Close()
//
// The sub-packages are organised as follows:
//   - coords converts between units and handles margins and sub-pages,
//   - geometry computes Bezier approximations for circles, arcs and polygons,
//   - graphics writes content stream operators with dirty state tracking,
//   - text breaks rich text into lines,
//   - document ties everything together.
package pdfgen
