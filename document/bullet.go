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
	"errors"

	"seehuhn.de/go/pdfgen"
)

// Bullet is a symbol drawn in front of the first line of a paragraph.
type Bullet struct {
	Name string

	// Width is the horizontal space reserved for the bullet, in points.
	Width float64

	// Render draws the bullet.  The point (x, y) is the left end of the
	// baseline, in the current unit, and size is the font size in points.
	// The fill color is set to the font color.
	Render func(p *Page, x, y, size float64) error
}

var errUnknownBullet = errors.New("unknown bullet")

// AddBullet registers a bullet.  An existing bullet with the same name is
// replaced.
func (d *Document) AddBullet(b *Bullet) {
	d.bullets[b.Name] = b
}

// bullet returns the bullet with the given name.
func (d *Document) bullet(name string) (*Bullet, error) {
	b, ok := d.bullets[name]
	if !ok {
		return nil, &pdfgen.ResourceError{Kind: "bullet", ID: name, Err: errUnknownBullet}
	}
	return b, nil
}

func defaultBullets() []*Bullet {
	filled := &ShapeOptions{Border: None, Fill: Current}
	return []*Bullet{
		{
			Name:  "disc",
			Width: 12,
			Render: func(p *Page, x, y, size float64) error {
				u := p.sys.FromLength(size)
				return p.Circle(x+0.3*u, y-0.3*u, 0.15*u, filled)
			},
		},
		{
			Name:  "circle",
			Width: 12,
			Render: func(p *Page, x, y, size float64) error {
				u := p.sys.FromLength(size)
				p.w.SetLineWidth(0.06 * size)
				return p.Circle(x+0.3*u, y-0.3*u, 0.15*u, &ShapeOptions{Border: Use(p.w.Properties().FillColor)})
			},
		},
		{
			Name:  "square",
			Width: 12,
			Render: func(p *Page, x, y, size float64) error {
				u := p.sys.FromLength(size)
				return p.Rectangle(x+0.15*u, y-0.45*u, 0.3*u, 0.3*u, filled)
			},
		},
		{
			Name:  "dash",
			Width: 12,
			Render: func(p *Page, x, y, size float64) error {
				u := p.sys.FromLength(size)
				return p.Rectangle(x+0.1*u, y-0.33*u, 0.4*u, 0.06*u, filled)
			},
		},
	}
}
