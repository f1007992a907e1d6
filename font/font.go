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

package font

import (
	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
)

// Font is an immutable snapshot of a font selection: a face in a given
// encoding, together with size and color.  Changing any attribute gives a
// new Font.
type Font struct {
	Metrics *Metrics
	Request Request

	// Resource is the name of the font dictionary within the content
	// stream resources.
	Resource pdfgen.Name

	Size  float64 // in points
	Color color.Value
}

// Key returns the cache key of the underlying face.
func (f *Font) Key() Key {
	return f.Metrics.Key()
}

// WithSize returns a copy of f with the given size.
func (f *Font) WithSize(size float64) *Font {
	g := *f
	g.Size = size
	return &g
}

// WithColor returns a copy of f with the given color.
func (f *Font) WithColor(c color.Value) *Font {
	g := *f
	g.Color = c
	return &g
}

// Encode converts s into a sequence of character codes.
// Runes which cannot be represented are returned in missing.
func (f *Font) Encode(s string) (codes []byte, missing []rune) {
	return f.Metrics.Encoding.Encode(s)
}

// CodeWidth returns the advance width of a single code, in points.
func (f *Font) CodeWidth(code byte) float64 {
	return f.Metrics.Width(code) * f.Size / 1000
}

// Width returns the advance width of the codes, in points, without any
// character or word spacing.
func (f *Font) Width(codes []byte) float64 {
	var w float64
	for _, c := range codes {
		w += f.Metrics.Width(c)
	}
	return w * f.Size / 1000
}

// StringWidth returns the advance width of s in points.
func (f *Font) StringWidth(s string) float64 {
	codes, _ := f.Encode(s)
	return f.Width(codes)
}

// Ascent returns the distance from the baseline to the top of the tallest
// glyphs, in points.
func (f *Font) Ascent() float64 {
	return f.Metrics.Ascent * f.Size / 1000
}

// Descent returns the (negative) distance from the baseline to the bottom
// of the glyphs, in points.
func (f *Font) Descent() float64 {
	return f.Metrics.Descent * f.Size / 1000
}

// Height returns the distance between the ascender and descender lines.
func (f *Font) Height() float64 {
	return f.Ascent() - f.Descent()
}

// UnderlinePosition returns the offset of the underline from the baseline.
// The value is negative for underlines below the baseline.
func (f *Font) UnderlinePosition() float64 {
	return f.Metrics.UnderlinePosition * f.Size / 1000
}

// UnderlineThickness returns the line width for underlines.
func (f *Font) UnderlineThickness() float64 {
	return f.Metrics.UnderlineThickness * f.Size / 1000
}

// SameFace reports whether f and g use the same font dictionary at the same
// size, so that switching between them needs no Tf operator.
func (f *Font) SameFace(g *Font) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.Metrics == g.Metrics && f.Resource == g.Resource && f.Size == g.Size
}
