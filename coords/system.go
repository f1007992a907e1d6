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

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Margins gives the page margins, in PDF points.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// IsZero reports whether all margins are zero.
func (m Margins) IsZero() bool {
	return m == Margins{}
}

// Matrix returns the translation which moves the origin to the top left
// corner of the content area.  The translation is relative to the top left
// corner of the page.
func (m Margins) Matrix() matrix.Matrix {
	return matrix.Translate(m.Left, -m.Top)
}

// Tile describes the position of a virtual page, when several virtual
// pages are placed on one physical sheet of paper.
//
// Tiles are numbered from left to right and from top to bottom: the tile
// with Y=0 is placed in the top row of the sheet.
type Tile struct {
	X, Across int
	Y, Down   int

	// Unscaled means that every tile has size (width/Across,
	// height/Down) and that content is clipped instead of shrunk.
	Unscaled bool
}

// Placement describes where a virtual page is drawn on the physical sheet.
type Placement struct {
	// Matrix maps virtual page coordinates to sheet coordinates.
	Matrix matrix.Matrix

	// Clip is the extent of the virtual page, in virtual page coordinates.
	Clip rect.Rect

	// Ratio is the scale factor applied to the virtual page.
	Ratio float64
}

var errMarginCount = errors.New("margins need 1, 2 or 4 values")

// System keeps track of the coordinate system of one page.
type System struct {
	units *Units
	unit  string

	media rect.Rect
	crop  rect.Rect

	// size is the size of the (possibly virtual) page, in points.
	size Size

	margins Margins

	tile      *Tile
	placement Placement
}

// NewSystem returns a coordinate system for a page with the given media
// box.  Caller coordinates are interpreted in the given unit.
func NewSystem(units *Units, media rect.Rect, unit string) (*System, error) {
	if !units.Has(unit) {
		return nil, &UnknownUnitError{Unit: unit}
	}
	size := SizeOf(media)
	if !(size.Width > 0 && size.Height > 0) {
		return nil, fmt.Errorf("invalid page size %gx%g", size.Width, size.Height)
	}
	return &System{
		units: units,
		unit:  unit,
		media: media,
		crop:  media,
		size:  size,
		placement: Placement{
			Matrix: matrix.Identity,
			Clip:   rect.Rect{URx: size.Width, URy: size.Height},
			Ratio:  1,
		},
	}, nil
}

// Units returns the unit table used by the coordinate system.
func (s *System) Units() *Units {
	return s.units
}

// Unit returns the unit used for caller coordinates.
func (s *System) Unit() string {
	return s.unit
}

// SetUnit changes the unit used for caller coordinates and returns the
// previous unit.  If the unit is not known, the state is unchanged.
func (s *System) SetUnit(unit string) (string, error) {
	prev := s.unit
	if !s.units.Has(unit) {
		return prev, &UnknownUnitError{Unit: unit}
	}
	s.unit = unit
	return prev, nil
}

// MediaBox returns the physical page size.
func (s *System) MediaBox() rect.Rect {
	return s.media
}

// CropBox returns the visible region of the physical page.
func (s *System) CropBox() rect.Rect {
	return s.crop
}

// SetCropBox sets the visible region of the physical page, in points.
func (s *System) SetCropBox(crop rect.Rect) error {
	if crop.URx <= crop.LLx || crop.URy <= crop.LLy {
		return fmt.Errorf("invalid crop box %v", crop)
	}
	s.crop = crop
	return nil
}

// Size returns the size of the (possibly virtual) page in points.
func (s *System) Size() Size {
	return s.size
}

// ContentSize returns the size of the area inside the margins, in caller
// units.
func (s *System) ContentSize() (width, height float64) {
	w := s.size.Width - s.margins.Left - s.margins.Right
	h := s.size.Height - s.margins.Top - s.margins.Bottom
	return s.fromPoints(w), s.fromPoints(h)
}

// Margins returns the current margins, in points.
func (s *System) Margins() Margins {
	return s.margins
}

// MarginsIn returns the current margins in the given unit.
func (s *System) MarginsIn(unit string) (Margins, error) {
	f, err := s.units.Points(unit)
	if err != nil {
		return Margins{}, err
	}
	m := s.margins
	return Margins{Top: m.Top / f, Right: m.Right / f, Bottom: m.Bottom / f, Left: m.Left / f}, nil
}

// SetMargins sets the page margins.  The values are given in the given unit
// and are interpreted as in CSS: one value applies to all sides, two values
// give the vertical and horizontal margins, four values give the top,
// right, bottom and left margins.
//
// The previous margins (in points) are returned.  If the unit is not known
// or the number of values is wrong, the margins are left unchanged.
func (s *System) SetMargins(unit string, values ...float64) (Margins, error) {
	prev := s.margins

	f, err := s.units.Points(unit)
	if err != nil {
		return prev, err
	}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return prev, fmt.Errorf("invalid margin %g", v)
		}
	}

	var m Margins
	switch len(values) {
	case 1:
		m = Margins{values[0], values[0], values[0], values[0]}
	case 2:
		m = Margins{values[0], values[1], values[0], values[1]}
	case 4:
		m = Margins{values[0], values[1], values[2], values[3]}
	default:
		return prev, errMarginCount
	}
	m.Top *= f
	m.Right *= f
	m.Bottom *= f
	m.Left *= f

	s.margins = m
	return prev, nil
}

// Tile returns the current sub-page tile, or nil if the whole sheet is used.
func (s *System) Tile() *Tile {
	return s.tile
}

// Placement returns the placement of the virtual page on the sheet.
func (s *System) Placement() Placement {
	return s.placement
}

// SetSubPage arranges for the page content to be drawn into one tile of a
// tiles.Across × tiles.Down grid on the physical sheet.
//
// Unless tile.Unscaled is set, every tile is a scaled down copy of the full
// page.  The orientation (portrait or landscape) of the virtual page is
// chosen to make the tiles as large as possible.
func (s *System) SetSubPage(tile Tile) (Placement, error) {
	if tile.Across < 1 || tile.Down < 1 {
		return s.placement, fmt.Errorf("invalid tile grid %dx%d", tile.Across, tile.Down)
	}
	if tile.X < 0 || tile.X >= tile.Across || tile.Y < 0 || tile.Y >= tile.Down {
		return s.placement, fmt.Errorf("tile (%d,%d) outside %dx%d grid",
			tile.X, tile.Y, tile.Across, tile.Down)
	}

	sheet := SizeOf(s.media)
	across := float64(tile.Across)
	down := float64(tile.Down)

	var tw, th, ratio float64
	if tile.Unscaled {
		tw = sheet.Width / across
		th = sheet.Height / down
		ratio = 1
	} else {
		tw, th = sheet.Width, sheet.Height
		ratio = math.Min(sheet.Width/(across*tw), sheet.Height/(down*th))
		rotated := math.Min(sheet.Width/(across*th), sheet.Height/(down*tw))
		if rotated > ratio {
			tw, th = th, tw
			ratio = rotated
		}
	}

	e := tw * ratio * float64(tile.X)
	f := th * ratio * (down - 1 - float64(tile.Y))
	p := Placement{
		Matrix: matrix.Matrix{ratio, 0, 0, ratio, e, f},
		Clip:   rect.Rect{URx: tw, URy: th},
		Ratio:  ratio,
	}

	s.tile = &tile
	s.placement = p
	s.size = Size{Width: tw, Height: th}
	return p, nil
}

func (s *System) toPoints(v float64) float64 {
	f, _ := s.units.Points(s.unit)
	return v * f
}

func (s *System) fromPoints(v float64) float64 {
	f, _ := s.units.Points(s.unit)
	return v / f
}

// ToPage converts a point from caller coordinates to PDF coordinates, as
// seen after the margin transformation.  This flips the y-axis.
func (s *System) ToPage(x, y float64) vec.Vec2 {
	return vec.Vec2{X: s.toPoints(x), Y: s.size.Height - s.toPoints(y)}
}

// FromPage converts a point from PDF coordinates back to caller
// coordinates.
func (s *System) FromPage(p vec.Vec2) (x, y float64) {
	return s.fromPoints(p.X), s.fromPoints(s.size.Height - p.Y)
}

// Length converts a distance from caller units to points.
func (s *System) Length(d float64) float64 {
	return s.toPoints(d)
}

// FromLength converts a distance from points to caller units.
func (s *System) FromLength(d float64) float64 {
	return s.fromPoints(d)
}
