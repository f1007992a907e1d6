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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/geometry"
	"seehuhn.de/go/pdfgen/graphics"
)

type choiceKind uint8

const (
	choiceDefault choiceKind = iota
	choiceNone
	choiceCurrent
	choiceColor
)

// ColorChoice selects the color used for the border or the interior of
// a shape.
type ColorChoice struct {
	kind  choiceKind
	color color.Color
}

// Possible values for ColorChoice.  The zero value is Default.
var (
	// Default draws borders in the current line color and leaves
	// interiors unfilled.
	Default = ColorChoice{}

	// None disables the border or fill.
	None = ColorChoice{kind: choiceNone}

	// Current uses the current line color for borders, and the current
	// fill color for interiors.
	Current = ColorChoice{kind: choiceCurrent}
)

// Use returns a ColorChoice which selects the given color.
func Use(c color.Color) ColorChoice {
	return ColorChoice{kind: choiceColor, color: c}
}

// ShapeOptions control how a shape is drawn.
//
// While a manual path is open, shapes only add their outline to the path.
// Border, Fill, Clip and EvenOdd are then ignored: the path is painted
// with the colors given to [Page.BeginPath] and the operator chosen when
// it is resolved.
type ShapeOptions struct {
	Border ColorChoice
	Fill   ColorChoice

	// Clip intersects the clipping path with the shape.
	Clip bool

	// EvenOdd selects the even-odd rule for filling and clipping.
	EvenOdd bool

	// Reverse draws the outline in the opposite direction.  Inside a
	// manual path, this can be used to cut holes into a shape.
	Reverse bool

	// Path adds the shape to the open manual path, instead of drawing it.
	Path bool

	// Corners gives the corner radii of rectangles.
	Corners *geometry.Corners

	// Rotate rotates the outline of rectangles, polygons, stars and
	// poly-lines about their center, by the given angle in degrees.
	Rotate float64
}

// PathOptions control the colors of a manual path.
type PathOptions struct {
	Border ColorChoice
	Fill   ColorChoice
}

// MoveTo moves the pen to the given point, without drawing.
func (p *Page) MoveTo(x, y float64) {
	if p.check("MoveTo") != nil {
		return
	}
	p.pen = vec.Vec2{X: x, Y: y}
	p.w.MoveTo(p.toPage(x, y))
}

// SetPen moves the pen to the given point.  This is the same as MoveTo.
func (p *Page) SetPen(x, y float64) {
	p.MoveTo(x, y)
}

// Pen returns the current pen position.
func (p *Page) Pen() (x, y float64) {
	return p.pen.X, p.pen.Y
}

// syncPen makes sure that the path continues at the pen position.
func (p *Page) syncPen() {
	if pt := p.toPage(p.pen.X, p.pen.Y); p.w.Pen() != pt {
		p.w.MoveTo(pt)
	}
}

// LineTo draws a straight line from the pen position to the given point.
func (p *Page) LineTo(x, y float64) error {
	if err := p.check("LineTo"); err != nil {
		return err
	}
	p.syncPen()
	p.w.LineTo(p.toPage(x, y))
	p.pen = vec.Vec2{X: x, Y: y}
	return p.w.Err
}

// CurveTo draws a cubic Bezier curve from the pen position.
func (p *Page) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if err := p.check("CurveTo"); err != nil {
		return err
	}
	p.syncPen()
	p.w.CurveTo(p.toPage(x1, y1), p.toPage(x2, y2), p.toPage(x3, y3))
	p.pen = vec.Vec2{X: x3, Y: y3}
	return p.w.Err
}

// Line draws a straight line between two points.
func (p *Page) Line(x1, y1, x2, y2 float64) error {
	p.MoveTo(x1, y1)
	return p.LineTo(x2, y2)
}

// Flush strokes all pending lines.
func (p *Page) Flush() error {
	if err := p.check("Flush"); err != nil {
		return err
	}
	p.w.Flush()
	return p.w.Err
}

// drawShape resolves the options and draws the outline given by build.
func (p *Page) drawShape(op string, opt *ShapeOptions, build func(w *graphics.Writer)) error {
	if err := p.check(op); err != nil {
		return err
	}
	if opt == nil {
		opt = &ShapeOptions{}
	}
	w := p.w

	// a manual path is painted when it is resolved, not per shape
	if opt.Path || w.InPath() {
		if !w.InPath() {
			return pdfgen.Usage(op, pdfgen.ErrNotInPath)
		}
		w.Shape(graphics.Paint{}, func() { build(w) })
		return w.Err
	}

	paint := graphics.Paint{Clip: opt.Clip, EvenOdd: opt.EvenOdd}
	props := w.Properties()

	switch opt.Border.kind {
	case choiceNone:
	case choiceColor:
		c, err := p.doc.resolveColor(opt.Border.color)
		if err != nil {
			return err
		}
		w.SetLineColor(c)
		paint.Stroke = true
	default:
		paint.Stroke = true
	}
	switch opt.Fill.kind {
	case choiceColor:
		c, err := p.doc.resolveColor(opt.Fill.color)
		if err != nil {
			return err
		}
		w.SetFillColor(c)
		paint.Fill = true
	case choiceCurrent:
		paint.Fill = true
	}

	w.Shape(paint, func() { build(w) })

	w.SetLineColor(props.LineColor)
	w.SetFillColor(props.FillColor)
	return w.Err
}

// polygon adds a closed polygon to the path.
func polygon(w *graphics.Writer, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	w.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		w.LineTo(pt)
	}
	w.ClosePath()
}

// curves adds a sequence of connected curves to the path.
func curves(w *graphics.Writer, cc []geometry.Bezier) {
	if len(cc) == 0 {
		return
	}
	w.MoveTo(cc[0][0])
	for _, b := range cc {
		w.CurveTo(b[1], b[2], b[3])
	}
}

// center returns the mean of the points.
func center(pts []vec.Vec2) vec.Vec2 {
	var c vec.Vec2
	for _, pt := range pts {
		c.X += pt.X
		c.Y += pt.Y
	}
	n := float64(len(pts))
	return vec.Vec2{X: c.X / n, Y: c.Y / n}
}

// outline converts caller points into PDF points and applies the
// rotation and direction options.
func (p *Page) outline(pts []vec.Vec2, opt *ShapeOptions) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		res[i] = p.toPage(pt.X, pt.Y)
	}
	if opt != nil && opt.Rotate != 0 && len(res) > 0 {
		res = geometry.Rotate(res, center(res), opt.Rotate)
	}
	if opt != nil && opt.Reverse {
		res = geometry.Reverse(res)
	}
	return res
}

func reverseCurves(cc []geometry.Bezier, opt *ShapeOptions) []geometry.Bezier {
	if opt != nil && opt.Reverse {
		return geometry.ReverseCurves(cc)
	}
	return cc
}

// Rectangle draws a rectangle with top left corner (x, y).
func (p *Page) Rectangle(x, y, width, height float64, opt *ShapeOptions) error {
	if width == 0 || height == 0 {
		return nil
	}
	if opt != nil && opt.Corners != nil {
		ll := p.toPage(x, y+height)
		s := p.sys
		r := geometry.Corners{
			TopLeft:     s.Length(opt.Corners.TopLeft),
			TopRight:    s.Length(opt.Corners.TopRight),
			BottomRight: s.Length(opt.Corners.BottomRight),
			BottomLeft:  s.Length(opt.Corners.BottomLeft),
		}
		cc := geometry.RoundedRect(ll.X, ll.Y, s.Length(width), s.Length(height), r)
		return p.drawShape("Rectangle", opt, func(w *graphics.Writer) {
			roundedRect(w, cc, opt.Reverse)
		})
	}
	if opt != nil && (opt.Reverse || opt.Rotate != 0) {
		pts := p.outline([]vec.Vec2{
			{X: x, Y: y + height},
			{X: x + width, Y: y + height},
			{X: x + width, Y: y},
			{X: x, Y: y},
		}, opt)
		return p.drawShape("Rectangle", opt, func(w *graphics.Writer) {
			polygon(w, pts)
		})
	}

	ll := p.toPage(x, y+height)
	wd, ht := p.sys.Length(width), p.sys.Length(height)
	return p.drawShape("Rectangle", opt, func(w *graphics.Writer) {
		w.Rectangle(ll.X, ll.Y, wd, ht)
	})
}

// roundedRect adds the outline of a rounded rectangle to the path.
func roundedRect(w *graphics.Writer, cc []geometry.Bezier, reverse bool) {
	if reverse {
		cc = geometry.ReverseCurves(cc)
	}
	w.MoveTo(cc[0][0])
	for i, b := range cc {
		if i > 0 {
			w.LineTo(b[0])
		}
		if !b.IsPoint() {
			w.CurveTo(b[1], b[2], b[3])
		}
	}
	w.ClosePath()
}

// Circle draws a circle with center (x, y) and radius r.
// Nothing is drawn if r is zero.
func (p *Page) Circle(x, y, r float64, opt *ShapeOptions) error {
	return p.Ellipse(x, y, r, r, opt)
}

// Ellipse draws an axis-parallel ellipse with center (x, y).
// Nothing is drawn if one of the radii is zero.
func (p *Page) Ellipse(x, y, rx, ry float64, opt *ShapeOptions) error {
	if rx == 0 || ry == 0 {
		return nil
	}
	cc := geometry.Ellipse(p.toPage(x, y), p.sys.Length(rx), p.sys.Length(ry))
	cc = reverseCurves(cc, opt)
	return p.drawShape("Ellipse", opt, func(w *graphics.Writer) {
		curves(w, cc)
		w.ClosePath()
	})
}

// Arc draws an arc of the circle with center (x, y) and radius r.  The
// angles are in degrees.  If end > start the arc runs counter-clockwise.
// The arc is not closed.  Nothing is drawn if start == end.
func (p *Page) Arc(x, y, r, start, end float64, opt *ShapeOptions) error {
	cc := geometry.Arc(p.toPage(x, y), p.sys.Length(r), p.sys.Length(r), start, end)
	if len(cc) == 0 || r == 0 {
		return nil
	}
	cc = reverseCurves(cc, opt)
	return p.drawShape("Arc", opt, func(w *graphics.Writer) {
		curves(w, cc)
	})
}

// Pie draws a sector of the circle with center (x, y) and radius r,
// between the given angles.
func (p *Page) Pie(x, y, r, start, end float64, opt *ShapeOptions) error {
	c := p.toPage(x, y)
	cc := geometry.Arc(c, p.sys.Length(r), p.sys.Length(r), start, end)
	if len(cc) == 0 || r == 0 {
		return nil
	}
	reverse := opt != nil && opt.Reverse
	return p.drawShape("Pie", opt, func(w *graphics.Writer) {
		w.MoveTo(c)
		if reverse {
			cc = geometry.ReverseCurves(cc)
		}
		w.LineTo(cc[0][0])
		for _, b := range cc {
			w.CurveTo(b[1], b[2], b[3])
		}
		w.ClosePath()
	})
}

// Arch draws the part of the ring between radius r1 and r2 around the
// center (x, y), between the given angles.
func (p *Page) Arch(x, y, r1, r2, start, end float64, opt *ShapeOptions) error {
	c := p.toPage(x, y)
	outer := geometry.Arc(c, p.sys.Length(r1), p.sys.Length(r1), start, end)
	inner := geometry.Arc(c, p.sys.Length(r2), p.sys.Length(r2), end, start)
	if len(outer) == 0 || r1 == r2 {
		return nil
	}
	cc := append(outer, inner...)
	reverse := opt != nil && opt.Reverse
	if reverse {
		cc = geometry.ReverseCurves(cc)
	}
	return p.drawShape("Arch", opt, func(w *graphics.Writer) {
		w.MoveTo(cc[0][0])
		for i, b := range cc {
			if i > 0 && b[0] != cc[i-1][3] {
				w.LineTo(b[0])
			}
			w.CurveTo(b[1], b[2], b[3])
		}
		w.ClosePath()
	})
}

// Polygon draws a regular polygon with the given number of sides,
// inscribed in the circle with center (x, y) and radius r.  The polygon
// rests on a flat side.  Nothing is drawn if sides < 3.
func (p *Page) Polygon(x, y, r float64, sides int, opt *ShapeOptions) error {
	pts := geometry.Polygon(vec.Vec2{X: x, Y: y}, r, sides, 0)
	if len(pts) == 0 || r == 0 {
		return nil
	}
	pts = p.outline(pts, opt)
	return p.drawShape("Polygon", opt, func(w *graphics.Writer) {
		polygon(w, pts)
	})
}

// Star draws a star with the given number of points.  The outer vertices
// lie on the circle with radius r1, the inner vertices on the circle with
// radius r2.  Nothing is drawn if points < 5 or r1 is zero.
func (p *Page) Star(x, y, r1, r2 float64, points int, opt *ShapeOptions) error {
	pts := geometry.Star(vec.Vec2{X: x, Y: y}, r1, r2, points, 0)
	if len(pts) == 0 || r1 == 0 {
		return nil
	}
	pts = p.outline(pts, opt)
	return p.drawShape("Star", opt, func(w *graphics.Writer) {
		polygon(w, pts)
	})
}

// PolyLine draws straight lines connecting the given points.  The lines
// are closed into a polygon if a fill is requested.
func (p *Page) PolyLine(points []vec.Vec2, opt *ShapeOptions) error {
	if len(points) < 2 {
		return nil
	}
	pts := p.outline(points, opt)
	closed := opt != nil && (opt.Fill.kind == choiceColor || opt.Fill.kind == choiceCurrent)
	return p.drawShape("PolyLine", opt, func(w *graphics.Writer) {
		w.MoveTo(pts[0])
		for _, pt := range pts[1:] {
			w.LineTo(pt)
		}
		if closed {
			w.ClosePath()
		}
	})
}

// BeginPath opens a manual path.  Shapes and lines are collected until
// the path is resolved by FillPath, StrokePath, FillAndStrokePath,
// ClipPath or EndPath.  The colors given in opt apply until then.
func (p *Page) BeginPath(opt *PathOptions) error {
	if err := p.check("BeginPath"); err != nil {
		return err
	}
	var border, fill *color.Value
	if opt != nil {
		if opt.Border.kind == choiceColor {
			c, err := p.doc.resolveColor(opt.Border.color)
			if err != nil {
				return err
			}
			border = &c
		}
		if opt.Fill.kind == choiceColor {
			c, err := p.doc.resolveColor(opt.Fill.color)
			if err != nil {
				return err
			}
			fill = &c
		}
	}
	return p.w.BeginPath(border, fill)
}

// FillPath fills the manual path.
func (p *Page) FillPath() error {
	if err := p.check("FillPath"); err != nil {
		return err
	}
	return p.w.FillPath()
}

// StrokePath strokes the manual path.
func (p *Page) StrokePath() error {
	if err := p.check("StrokePath"); err != nil {
		return err
	}
	return p.w.StrokePath()
}

// FillAndStrokePath fills and strokes the manual path.
func (p *Page) FillAndStrokePath() error {
	if err := p.check("FillAndStrokePath"); err != nil {
		return err
	}
	return p.w.FillAndStrokePath()
}

// ClipPath intersects the clipping path with the manual path.
func (p *Page) ClipPath() error {
	if err := p.check("ClipPath"); err != nil {
		return err
	}
	return p.w.ClipPath()
}

// EndPath discards the manual path.
func (p *Page) EndPath() error {
	if err := p.check("EndPath"); err != nil {
		return err
	}
	return p.w.EndPath()
}
