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

// Polygon returns the vertices of a regular polygon with the given number of
// sides, inscribed in a circle of radius r.
//
// The vertices are computed for a coordinate system where the y-axis points
// down: the first vertex is at angle 90° + step/2, so that the polygon
// stands on a flat side and the apex of a triangle points up.  The
// rotation, in degrees, is added to all angles.
//
// If sides < 3, the result is nil.
func Polygon(c vec.Vec2, r float64, sides int, rotation float64) []vec.Vec2 {
	if sides < 3 {
		return nil
	}
	step := 360 / float64(sides)
	start := 90 + step/2 + rotation
	return ring(c, r, sides, start, step)
}

// Star returns the vertices of a star with the given number of points.
// The outer vertices lie on a circle of radius r1, the inner vertices on a
// circle of radius r2.  Outer and inner vertices alternate, starting with an
// outer vertex.  Angles are computed as for [Polygon].
//
// If points < 5, the result is nil.
func Star(c vec.Vec2, r1, r2 float64, points int, rotation float64) []vec.Vec2 {
	if points < 5 {
		return nil
	}
	step := 360 / float64(points)
	start := 90 + step/2 + rotation
	outer := ring(c, r1, points, start, step)
	inner := ring(c, r2, points, start+step/2, step)

	res := make([]vec.Vec2, 0, 2*points)
	for i := range outer {
		res = append(res, outer[i], inner[i])
	}
	return res
}

func ring(c vec.Vec2, r float64, n int, start, step float64) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		phi := (start + float64(i)*step) * math.Pi / 180
		res[i] = vec.Vec2{
			X: c.X + r*math.Cos(phi),
			Y: c.Y + r*math.Sin(phi),
		}
	}
	return res
}

// Corners gives the corner radii of a rounded rectangle.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform returns corner radii which are all equal to r.
func Uniform(r float64) Corners {
	return Corners{r, r, r, r}
}

// RoundedRect returns the four corner curves of a rectangle with rounded
// corners.  The rectangle has lower left corner (x, y) in a coordinate
// system where the y-axis points up.  The curves are ordered
// counter-clockwise, starting with the bottom right corner; consecutive
// curves are joined by straight lines.  A corner with radius zero is
// represented by a curve where all points coincide.
//
// Radii larger than half the width or height of the rectangle are reduced.
func RoundedRect(x, y, w, h float64, r Corners) []Bezier {
	limit := math.Min(math.Abs(w), math.Abs(h)) / 2
	clamp := func(v float64) float64 {
		return math.Max(0, math.Min(v, limit))
	}
	bl, br := clamp(r.BottomLeft), clamp(r.BottomRight)
	tr, tl := clamp(r.TopRight), clamp(r.TopLeft)

	return []Bezier{
		Quadrant(vec.Vec2{X: x + w - br, Y: y + br}, br, br, 4),
		Quadrant(vec.Vec2{X: x + w - tr, Y: y + h - tr}, tr, tr, 1),
		Quadrant(vec.Vec2{X: x + tl, Y: y + h - tl}, tl, tl, 2),
		Quadrant(vec.Vec2{X: x + bl, Y: y + bl}, bl, bl, 3),
	}
}
