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

package coords

import "seehuhn.de/go/geom/rect"

// Default paper sizes as PDF rectangles.
var (
	A3      = rect.Rect{URx: 841.890, URy: 1190.551}
	A4      = rect.Rect{URx: 595.276, URy: 841.890}
	A5      = rect.Rect{URx: 420.945, URy: 595.276}
	Letter  = rect.Rect{URx: 612, URy: 792}
	Legal   = rect.Rect{URx: 612, URy: 1008}
	Tabloid = rect.Rect{URx: 792, URy: 1224}
)

// Landscape returns the paper size with width and height swapped.
func Landscape(paper rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: paper.LLy,
		LLy: paper.LLx,
		URx: paper.URy,
		URy: paper.URx,
	}
}

// Size is the width and height of a rectangle, in PDF points.
type Size struct {
	Width, Height float64
}

// SizeOf returns the size of a rectangle.
func SizeOf(r rect.Rect) Size {
	return Size{Width: r.URx - r.LLx, Height: r.URy - r.LLy}
}
