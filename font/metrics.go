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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// SubType is the PDF font type.
type SubType string

// These are the supported font types.
const (
	Type1    SubType = "Type1"
	TrueType SubType = "TrueType"
)

// Metrics describes a simple font for one particular encoding.
// All lengths are in PDF glyph space units, i.e. 1/1000 of the font size.
type Metrics struct {
	FontName string // PostScript name, used as the BaseFont
	FullName string
	SubType  SubType
	Encoding *pdfenc.Encoding

	// Widths holds the glyph widths, indexed by code.
	Widths       [256]float64
	MissingWidth float64

	Ascent    float64
	Descent   float64 // negative
	Leading   float64
	CapHeight float64
	XHeight   float64
	BBox      rect.Rect

	ItalicAngle float64
	StemV       float64
	StemH       float64
	AvgWidth    float64
	MaxWidth    float64

	UnderlinePosition  float64
	UnderlineThickness float64

	Flags Flags

	// Builtin is set for the standard 14 fonts, which need neither a
	// font descriptor nor an embedded font program.
	Builtin bool

	// Differences lists codes where the font uses a glyph different from
	// the one given by Encoding.
	Differences []pdfgen.Difference
}

// Key returns the cache key for fonts using these metrics.
func (m *Metrics) Key() Key {
	enc := ""
	if m.Encoding != nil {
		enc = m.Encoding.Name
	}
	return Key{Name: m.FontName, Encoding: enc, SubType: m.SubType}
}

// Width returns the width of the glyph for the given code.
func (m *Metrics) Width(code byte) float64 {
	w := m.Widths[code]
	if w == 0 && m.Encoding != nil && m.Encoding.GlyphName(code) == ".notdef" {
		return m.MissingWidth
	}
	return w
}

// NeedsDescriptor reports whether the font dictionary must include a font
// descriptor.
func (m *Metrics) NeedsDescriptor() bool {
	return !m.Builtin
}

// Descriptor returns the font descriptor for the font.
// The result is nil for built-in fonts.
func (m *Metrics) Descriptor() *pdfgen.FontDescriptor {
	if !m.NeedsDescriptor() {
		return nil
	}
	return &pdfgen.FontDescriptor{
		FontName:     m.FontName,
		Flags:        uint32(m.Flags),
		FontBBox:     m.BBox,
		ItalicAngle:  m.ItalicAngle,
		Ascent:       m.Ascent,
		Descent:      m.Descent,
		Leading:      m.Leading,
		CapHeight:    m.CapHeight,
		XHeight:      m.XHeight,
		StemV:        m.StemV,
		StemH:        m.StemH,
		AvgWidth:     m.AvgWidth,
		MaxWidth:     m.MaxWidth,
		MissingWidth: m.MissingWidth,
	}
}

// Resource returns the font dictionary for the font.
// The widths array covers the range of codes with a glyph.
func (m *Metrics) Resource() *pdfgen.FontResource {
	first, last := 256, -1
	for c := range 256 {
		if m.Encoding != nil && m.Encoding.GlyphName(byte(c)) == ".notdef" {
			continue
		}
		if m.Widths[c] == 0 {
			continue
		}
		first = min(first, c)
		last = max(last, c)
	}

	res := &pdfgen.FontResource{
		BaseFont:   m.FontName,
		SubType:    string(m.SubType),
		Descriptor: m.Descriptor(),
	}
	if m.Encoding != nil {
		res.Encoding = m.Encoding.Name
	}
	if last >= first {
		res.FirstChar = byte(first)
		res.Widths = make([]float64, last-first+1)
		for c := first; c <= last; c++ {
			res.Widths[c-first] = m.Width(byte(c))
		}
	}
	return res
}

// EncodingResource returns the encoding dictionary for the font, or nil if
// the base encoding can be used unchanged.
func (m *Metrics) EncodingResource() *pdfgen.EncodingResource {
	if len(m.Differences) == 0 {
		return nil
	}
	res := &pdfgen.EncodingResource{
		Differences: make([]pdfgen.Difference, len(m.Differences)),
	}
	if m.Encoding != nil {
		res.BaseEncoding = m.Encoding.Name
	}
	copy(res.Differences, m.Differences)
	return res
}
