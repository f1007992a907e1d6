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

// Package color implements the colors used for lines, fills and text.
//
// Callers specify colors using one of the types [Named], [RGB], [Packed],
// [Gray] or [CMYK].  Before use, a color is resolved into a [Value] using
// a [Table] of named colors.
package color

import (
	"fmt"
	"io"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Color is a color as specified by the caller.
type Color interface {
	resolve(t *Table) (Value, error)
}

// Named is a color given by name, for example "red" or "darkslategray".
// Names of the form "#rgb" or "#rrggbb" are interpreted as hexadecimal RGB
// values.
type Named string

func (c Named) resolve(t *Table) (Value, error) {
	if len(c) > 0 && c[0] == '#' {
		p, ok := parseHex(string(c[1:]))
		if !ok {
			return Value{}, &UnknownColorError{Name: string(c)}
		}
		return p.value(), nil
	}
	if t == nil {
		return Value{}, &UnknownColorError{Name: string(c)}
	}
	return t.lookup(string(c))
}

// RGB is a color given by 8-bit red, green and blue components.
type RGB struct {
	R, G, B uint8
}

func (c RGB) resolve(*Table) (Value, error) {
	return Packed(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)).value(), nil
}

// Packed is a 24-bit RGB color of the form 0xRRGGBB.
type Packed uint32

func (c Packed) resolve(*Table) (Value, error) {
	if c > 0xFFFFFF {
		return Value{}, fmt.Errorf("packed color 0x%x out of range", uint32(c))
	}
	return c.value(), nil
}

func (c Packed) value() Value {
	return Value{
		Space: DeviceRGB,
		C: [4]float64{
			float64(c>>16&0xFF) / 255,
			float64(c>>8&0xFF) / 255,
			float64(c&0xFF) / 255,
		},
	}
}

// Gray is a color in the DeviceGray color space.
// The value must be in the range from 0 (black) to 1 (white).
type Gray float64

func (c Gray) resolve(*Table) (Value, error) {
	if c < 0 || c > 1 {
		return Value{}, fmt.Errorf("gray value %g out of range", float64(c))
	}
	return Value{Space: DeviceGray, C: [4]float64{float64(c)}}, nil
}

// CMYK is a color in the DeviceCMYK color space.
// Each component must be in the range [0, 1].
type CMYK struct {
	C, M, Y, K float64
}

func (c CMYK) resolve(*Table) (Value, error) {
	for _, x := range []float64{c.C, c.M, c.Y, c.K} {
		if x < 0 || x > 1 {
			return Value{}, fmt.Errorf("CMYK component %g out of range", x)
		}
	}
	return Value{Space: DeviceCMYK, C: [4]float64{c.C, c.M, c.Y, c.K}}, nil
}

// Space is a PDF device color space.
type Space byte

// These are the supported color spaces.
const (
	DeviceGray Space = iota + 1
	DeviceRGB
	DeviceCMYK
)

// Value is a resolved color.  Values are comparable with ==.
type Value struct {
	Space Space
	C     [4]float64
}

// Black is the initial stroke and fill color of a PDF content stream.
var Black = Value{Space: DeviceGray}

// A resolved Value can be used wherever a Color is expected.
func (v Value) resolve(*Table) (Value, error) {
	return v, nil
}

// Packed returns the 24-bit RGB representation of an RGB color.
// The second return value is false for colors in other color spaces.
func (v Value) Packed() (Packed, bool) {
	if v.Space != DeviceRGB {
		return 0, false
	}
	var p Packed
	for i := 0; i < 3; i++ {
		p = p<<8 | Packed(v.C[i]*255+0.5)
	}
	return p, true
}

// SetStroke writes the operator which makes v the stroke color.
func (v Value) SetStroke(w io.Writer) error {
	return v.write(w, "G", "RG", "K")
}

// SetFill writes the operator which makes v the fill color.
func (v Value) SetFill(w io.Writer) error {
	return v.write(w, "g", "rg", "k")
}

func (v Value) write(w io.Writer, gray, rgb, cmyk string) error {
	var err error
	switch v.Space {
	case DeviceGray:
		_, err = fmt.Fprintln(w, float.Format(v.C[0]), gray)
	case DeviceRGB:
		_, err = fmt.Fprintln(w, float.Format(v.C[0]), float.Format(v.C[1]), float.Format(v.C[2]), rgb)
	case DeviceCMYK:
		_, err = fmt.Fprintln(w, float.Format(v.C[0]), float.Format(v.C[1]), float.Format(v.C[2]), float.Format(v.C[3]), cmyk)
	default:
		err = fmt.Errorf("invalid color space %d", v.Space)
	}
	return err
}

func parseHex(s string) (Packed, bool) {
	var digits []uint32
	for _, c := range s {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		digits = append(digits, d)
	}
	var p uint32
	switch len(digits) {
	case 3:
		for _, d := range digits {
			p = p<<8 | d<<4 | d
		}
	case 6:
		for _, d := range digits {
			p = p<<4 | d
		}
	default:
		return 0, false
	}
	return Packed(p), true
}
