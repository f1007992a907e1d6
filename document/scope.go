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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/graphics"
)

// WithState saves the graphics state, calls fn, and restores the state.
// The state is restored on every exit path, including when fn returns an
// error.  A manual path left open by fn is discarded.
func (p *Page) WithState(fn func() error) (err error) {
	if err := p.check("WithState"); err != nil {
		return err
	}
	w := p.w
	props := w.Properties()
	depth := w.Depth()
	pen := p.pen
	if err := w.Save(); err != nil {
		return err
	}
	defer func() {
		if w.InPath() {
			w.EndPath()
		}
		for w.Err == nil && w.Depth() > depth {
			w.Restore()
		}
		w.SetProperties(props)
		p.pen = pen
		if err == nil {
			err = w.Err
		}
	}()
	return fn()
}

// withTransform runs fn inside a saved state with m applied to the
// coordinate system.  The matrix is given in PDF coordinates.
func (p *Page) withTransform(op string, m matrix.Matrix, fn func() error) error {
	if err := p.check(op); err != nil {
		return err
	}
	return p.WithState(func() error {
		if err := p.w.Transform(m); err != nil {
			return err
		}
		return fn()
	})
}

// WithRotation calls fn with the coordinate system rotated by angle
// degrees counter-clockwise about the point (cx, cy).
func (p *Page) WithRotation(angle, cx, cy float64, fn func() error) error {
	c := p.toPage(cx, cy)
	sin, cos := math.Sincos(angle * math.Pi / 180)
	m := matrix.Matrix{
		cos, sin,
		-sin, cos,
		c.X - c.X*cos + c.Y*sin, c.Y - c.X*sin - c.Y*cos,
	}
	return p.withTransform("WithRotation", m, fn)
}

// WithScale calls fn with the coordinate system scaled by sx and sy,
// keeping the point (cx, cy) fixed.
func (p *Page) WithScale(sx, sy, cx, cy float64, fn func() error) error {
	c := p.toPage(cx, cy)
	m := matrix.Matrix{sx, 0, 0, sy, c.X - sx*c.X, c.Y - sy*c.Y}
	return p.withTransform("WithScale", m, fn)
}

// WithClip calls fn with the clipping path restricted to a shape.
// The function clip draws the shape using the given options, for example
// by calling p.Circle.
func (p *Page) WithClip(clip func(opt *ShapeOptions) error, fn func() error) error {
	if err := p.check("WithClip"); err != nil {
		return err
	}
	return p.WithState(func() error {
		err := clip(&ShapeOptions{Border: None, Clip: true})
		if err != nil {
			return err
		}
		return fn()
	})
}

// WithPath opens a manual path, calls fn to build the path, and resolves
// the path using paint.  If fn fails, the path is discarded.
func (p *Page) WithPath(opt *PathOptions, paint graphics.Paint, fn func() error) error {
	if err := p.BeginPath(opt); err != nil {
		return err
	}
	if err := fn(); err != nil {
		if p.w.InPath() {
			p.w.EndPath()
		}
		return err
	}
	if !p.w.InPath() {
		return pdfgen.Usage("WithPath", pdfgen.ErrNotInPath)
	}
	return p.w.ResolvePath(paint)
}
