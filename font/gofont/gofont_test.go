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

package gofont

import (
	"testing"

	"seehuhn.de/go/pdfgen/font"
)

func TestAllFaces(t *testing.T) {
	p := New()
	for _, f := range faces {
		req := font.Request{Family: f.family}
		if f.bold {
			req.Weight = font.WeightBold
		}
		if f.italic {
			req.Style = font.StyleItalic
		}
		m, err := p.Metrics(req)
		if err != nil {
			t.Errorf("%s: %v", req, err)
			continue
		}
		if m.Width('M') <= 0 {
			t.Errorf("%s: no width for M", req)
		}
		isMono := m.Flags&font.FlagFixedPitch != 0
		if isMono != (f.family == GoMono) {
			t.Errorf("%s: wrong fixed pitch flag", req)
		}
	}
}
