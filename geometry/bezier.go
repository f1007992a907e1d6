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

// Package geometry approximates circles, ellipses and arcs by cubic Bezier
// curves and computes the vertices of regular polygons and stars.
//
// Unless noted otherwise, angles are given in degrees and are measured
// counter-clockwise from the positive x-axis, in a coordinate system where
// the y-axis points up.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Kappa is the distance of the inner control points from the end points,
// for a cubic Bezier curve approximating a quarter circle of radius 1.
var Kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)

// Bezier is a cubic Bezier curve, given by the start point, the two control
// points and the end point.
type Bezier [4]vec.Vec2

// Reverse returns the same curve, traversed in the opposite direction.
func (b Bezier) Reverse() Bezier {
	return Bezier{b[3], b[2], b[1], b[0]}
}

// IsPoint reports whether all four points of the curve coincide.
func (b Bezier) IsPoint() bool {
	return b[0] == b[1] && b[0] == b[2] && b[0] == b[3]
}

// quadrantSign gives the signs of x and y in quadrants 1 to 4.
var quadrantSign = [4][2]float64{
	{1, 1},
	{-1, 1},
	{-1, -1},
	{1, -1},
}

// Quadrant returns the curve approximating one quarter of an ellipse.
// The quadrants are numbered 1 to 4, counter-clockwise, starting with the
// upper right quadrant.  Each curve is traversed counter-clockwise: odd
// quadrants start on the x-axis, even quadrants start on the y-axis.
func Quadrant(c vec.Vec2, rx, ry float64, q int) Bezier {
	if q < 1 || q > 4 {
		panic("invalid quadrant")
	}
	sx := quadrantSign[q-1][0] * rx
	sy := quadrantSign[q-1][1] * ry
	a := Kappa

	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: c.X + x, Y: c.Y + y}
	}
	if q%2 == 1 {
		return Bezier{pt(sx, 0), pt(sx, a*sy), pt(a*sx, sy), pt(0, sy)}
	}
	return Bezier{pt(0, sy), pt(a*sx, sy), pt(sx, a*sy), pt(sx, 0)}
}

// Ellipse returns four curves which together approximate an axis-parallel
// ellipse.  The curves are traversed counter-clockwise, starting at the
// point (c.X+rx, c.Y).
func Ellipse(c vec.Vec2, rx, ry float64) []Bezier {
	res := make([]Bezier, 4)
	for q := 1; q <= 4; q++ {
		res[q-1] = Quadrant(c, rx, ry, q)
	}
	return res
}

// Circle returns four curves which together approximate a circle.
func Circle(c vec.Vec2, r float64) []Bezier {
	return Ellipse(c, r, r)
}

// Arc returns curves which approximate the arc of an ellipse between the
// given angles.  If end > start the arc is traversed counter-clockwise,
// otherwise clockwise.  The arc is split into the smallest number of equal
// pieces such that no piece spans more than 90 degrees.
//
// If start == end, the result is nil.
func Arc(c vec.Vec2, rx, ry, start, end float64) []Bezier {
	span := end - start
	if span == 0 || math.IsNaN(span) {
		return nil
	}
	n := int(math.Ceil(math.Abs(span) / 90))
	step := span / float64(n)

	dir := 1.0
	if span < 0 {
		dir = -1
	}
	h := math.Abs(step) / 2 * math.Pi / 180
	cosH, sinH := math.Cos(h), math.Sin(h)
	cx := (4 - cosH) / 3
	cy := (1 - cosH) * (3 - cosH) / (3 * sinH)

	onEllipse := func(deg float64) vec.Vec2 {
		phi := deg * math.Pi / 180
		return vec.Vec2{X: c.X + rx*math.Cos(phi), Y: c.Y + ry*math.Sin(phi)}
	}

	res := make([]Bezier, n)
	p0 := onEllipse(start)
	for i := 0; i < n; i++ {
		a0 := start + float64(i)*step
		a1 := start + float64(i+1)*step
		if i == n-1 {
			a1 = end
		}
		mid := (a0 + a1) / 2 * math.Pi / 180
		cosM, sinM := math.Cos(mid), math.Sin(mid)

		// control points of the unit arc from -h to +h, rotated to the
		// mid angle and scaled to the ellipse
		ctrl := func(x, y float64) vec.Vec2 {
			return vec.Vec2{
				X: c.X + rx*(x*cosM-y*sinM),
				Y: c.Y + ry*(x*sinM+y*cosM),
			}
		}
		p3 := onEllipse(a1)
		res[i] = Bezier{p0, ctrl(cx, -dir*cy), ctrl(cx, dir*cy), p3}
		p0 = p3
	}
	return res
}

// Points flattens a sequence of connected curves into a list of points:
// the start point of the first curve, followed by the two control points
// and the end point of each curve.
func Points(curves []Bezier) []vec.Vec2 {
	if len(curves) == 0 {
		return nil
	}
	res := make([]vec.Vec2, 0, 1+3*len(curves))
	res = append(res, curves[0][0])
	for _, b := range curves {
		res = append(res, b[1], b[2], b[3])
	}
	return res
}
