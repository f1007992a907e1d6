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

package color

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
)

// UnknownColorError is returned when a color name cannot be resolved.
type UnknownColorError struct {
	Name string
}

func (err *UnknownColorError) Error() string {
	return "unknown color " + strconv.Quote(err.Name)
}

// Table maps color names to colors.  Names are case-insensitive.
type Table struct {
	named map[string]Value
}

// NewTable returns a table which contains the SVG 1.1 color keywords.
func NewTable() *Table {
	t := &Table{named: make(map[string]Value, len(colornames.Map))}
	for name, c := range colornames.Map {
		t.named[name] = RGB{c.R, c.G, c.B}.mustResolve()
	}
	return t
}

// Add adds a new named color, or replaces an existing one.
// The color is resolved immediately, so c may refer to other names in the
// table.
func (t *Table) Add(name string, c Color) error {
	if name == "" || strings.HasPrefix(name, "#") {
		return &UnknownColorError{Name: name}
	}
	v, err := t.Resolve(c)
	if err != nil {
		return err
	}
	t.named[strings.ToLower(name)] = v
	return nil
}

// Resolve converts a color into a [Value].
func (t *Table) Resolve(c Color) (Value, error) {
	if c == nil {
		return Value{}, &UnknownColorError{}
	}
	return c.resolve(t)
}

// Names returns all color names in the table, in alphabetical order.
func (t *Table) Names() []string {
	names := maps.Keys(t.named)
	slices.Sort(names)
	return names
}

func (t *Table) lookup(name string) (Value, error) {
	v, ok := t.named[strings.ToLower(name)]
	if !ok {
		return Value{}, &UnknownColorError{Name: name}
	}
	return v, nil
}

func (c RGB) mustResolve() Value {
	v, _ := c.resolve(nil)
	return v
}
