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

package graphics

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
)

// This file implements the text object and text showing operators.
// See tables 105, 106 and 107 of ISO 32000-2:2020.

// BeginText starts a new text object.  An open auto path is stroked
// first.  If a text object is already open, nothing happens.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) BeginText() error {
	if !w.isValid("BeginText", objPage|objText|objPath) {
		return w.Err
	}
	if w.currentObject == objText {
		return nil
	}
	if w.path == pathManual || w.path == pathShape {
		return pdfgen.Usage("BeginText", errTextInPath)
	}
	w.Flush()
	if w.Err != nil {
		return w.Err
	}
	w.currentObject = objText
	_, w.Err = fmt.Fprintln(w.Content, "BT")
	return w.Err
}

// EndText ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) EndText() {
	if w.Err != nil || w.currentObject != objText {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// InText reports whether a text object is open.
func (w *Writer) InText() bool {
	return w.currentObject == objText
}

// SetTextMatrix sets the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) SetTextMatrix(m matrix.Matrix) {
	if !w.isValid("SetTextMatrix", objText) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(m[0]), w.coord(m[1]), w.coord(m[2]),
		w.coord(m[3]), w.coord(m[4]), w.coord(m[5]), "Tm")
}

// MoveText starts a new line, offset by (dx, dy) from the start of the
// current line.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) MoveText(dx, dy float64) {
	if !w.isValid("MoveText", objText) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// ShowText shows the encoded string codes, using the current font and
// text parameters.  Changed parameters are written first.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) ShowText(codes []byte) {
	if !w.isValid("ShowText", objText) {
		return
	}
	w.ensureText()
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, quote(codes), "Tj")
}

// quote returns the PDF literal string for s.
// Backslashes, parentheses and carriage returns are escaped.
func quote(s []byte) string {
	buf := bytes.NewBuffer(make([]byte, 0, len(s)+2))
	buf.WriteByte('(')
	for _, c := range s {
		switch c {
		case '\\', '(', ')':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
	return buf.String()
}
