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

// Package coords converts between user units and PDF points, and keeps
// track of the page geometry: page size, margins and sub-page tiling.
//
// Callers use a coordinate system with the origin at the top left corner
// of the content area and the y-axis pointing down.  PDF uses points with
// the origin at the bottom left corner and the y-axis pointing up.
package coords

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
)

// The default unit names.
const (
	Point      = "pt"
	Inch       = "in"
	Centimeter = "cm"
	Millimeter = "mm"
	Pica       = "pc"
)

// UnknownUnitError is returned when a unit name is not in the unit table.
type UnknownUnitError struct {
	Unit string
}

func (err *UnknownUnitError) Error() string {
	return "unknown unit " + strconv.Quote(err.Unit)
}

// Units is a table of length units, given as the number of PDF points per
// unit.  The zero value is not usable, use [NewUnits] instead.
type Units struct {
	perUnit map[string]float64
}

// NewUnits returns a unit table which contains the default units
// pt, in, cm, mm and pc.
func NewUnits() *Units {
	return &Units{
		perUnit: map[string]float64{
			Point:      1,
			Inch:       72,
			Centimeter: 28.35,
			Millimeter: 2.835,
			Pica:       12,
		},
	}
}

// Add adds a new unit, or changes the size of an existing one.
func (u *Units) Add(name string, points float64) error {
	if name == "" {
		return fmt.Errorf("empty unit name")
	}
	if !(points > 0) || math.IsInf(points, 0) {
		return fmt.Errorf("unit %q: invalid size %g", name, points)
	}
	u.perUnit[name] = points
	return nil
}

// Points returns the number of PDF points per unit.
func (u *Units) Points(unit string) (float64, error) {
	f, ok := u.perUnit[unit]
	if !ok {
		return 0, &UnknownUnitError{Unit: unit}
	}
	return f, nil
}

// Has reports whether the unit is known.
func (u *Units) Has(unit string) bool {
	_, ok := u.perUnit[unit]
	return ok
}

// ToPoints converts a value from the given unit to PDF points.
func (u *Units) ToPoints(unit string, v float64) (float64, error) {
	f, err := u.Points(unit)
	if err != nil {
		return 0, err
	}
	return v * f, nil
}

// FromPoints converts a value from PDF points to the given unit.
func (u *Units) FromPoints(unit string, v float64) (float64, error) {
	f, err := u.Points(unit)
	if err != nil {
		return 0, err
	}
	return v / f, nil
}

// Convert converts a value between two units.
func (u *Units) Convert(v float64, from, to string) (float64, error) {
	pt, err := u.ToPoints(from, v)
	if err != nil {
		return 0, err
	}
	return u.FromPoints(to, pt)
}

// Names returns the names of all known units, in alphabetical order.
func (u *Units) Names() []string {
	names := maps.Keys(u.perUnit)
	slices.Sort(names)
	return names
}
