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

package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Rotate rotates the points about the given center.  The angle is given in
// degrees.  The input slice is not modified.
func Rotate(points []vec.Vec2, center vec.Vec2, angle float64) []vec.Vec2 {
	phi := angle * math.Pi / 180
	cos, sin := math.Cos(phi), math.Sin(phi)

	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		dx, dy := p.X-center.X, p.Y-center.Y
		res[i] = vec.Vec2{
			X: center.X + dx*cos - dy*sin,
			Y: center.Y + dx*sin + dy*cos,
		}
	}
	return res
}

// Reverse returns the points in opposite order.  This flips the winding
// direction of a closed contour.  The input slice is not modified.
func Reverse(points []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		res[len(points)-1-i] = p
	}
	return res
}

// ReverseCurves returns the curves in opposite order, with each curve
// traversed backwards.
func ReverseCurves(curves []Bezier) []Bezier {
	res := make([]Bezier, len(curves))
	for i, b := range curves {
		res[len(curves)-1-i] = b.Reverse()
	}
	return res
}
