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
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
)

// DrawXObject paints the XObject with the given name, after applying the
// transformation m.  For images, m maps the unit square to the image
// position on the page.  The graphics state is saved and restored around
// the operation.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(name pdfgen.Name, m matrix.Matrix) error {
	if !w.isValid("DrawXObject", objPage|objText|objPath) {
		return w.Err
	}
	err := w.Save()
	if err != nil {
		return err
	}
	err = w.Transform(m)
	if err != nil {
		return err
	}
	_, w.Err = fmt.Fprintln(w.Content, name, "Do")
	if w.Err != nil {
		return w.Err
	}
	return w.Restore()
}
