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
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/graphics"
)

// defaultPatterns are the predefined line patterns, in points.
var defaultPatterns = map[string][]float64{
	"solid":   nil,
	"dotted":  {1, 2},
	"dashed":  {4, 2},
	"dashdot": {4, 2, 1, 2},
}

var errUnknownPattern = errors.New("unknown line pattern")

// Properties returns the current graphics properties.
func (p *Page) Properties() graphics.Properties {
	return p.w.Properties()
}

// SetProperties replaces all graphics properties.
func (p *Page) SetProperties(props graphics.Properties) {
	p.w.SetProperties(props)
}

// SetLineColor sets the color for lines and shape borders.
func (p *Page) SetLineColor(c color.Color) error {
	v, err := p.doc.resolveColor(c)
	if err != nil {
		return err
	}
	p.w.SetLineColor(v)
	return nil
}

// SetFillColor sets the color for shape interiors.
func (p *Page) SetFillColor(c color.Color) error {
	v, err := p.doc.resolveColor(c)
	if err != nil {
		return err
	}
	p.w.SetFillColor(v)
	return nil
}

// SetFontColor sets the color for text.
func (p *Page) SetFontColor(c color.Color) error {
	v, err := p.doc.resolveColor(c)
	if err != nil {
		return err
	}
	p.w.SetFontColor(v)
	return nil
}

// SetLineWidth sets the line width, in the current unit.
func (p *Page) SetLineWidth(width float64) {
	p.w.SetLineWidth(p.sys.Length(width))
}

// SetLineDash sets the dash pattern.  The lengths are given in the
// current unit.  An empty pattern selects solid lines.
func (p *Page) SetLineDash(pattern []float64, phase float64) {
	var d graphics.Dash
	if len(pattern) > 0 {
		d.Pattern = make([]float64, len(pattern))
		for i, x := range pattern {
			d.Pattern[i] = p.sys.Length(x)
		}
		d.Phase = p.sys.Length(phase)
	}
	p.w.SetLineDash(d)
}

// SetLinePattern selects a named dash pattern.  The names "solid",
// "dotted", "dashed" and "dashdot" are always available; more patterns
// can be registered using [Document.AddLinePattern].
func (p *Page) SetLinePattern(name string) error {
	d, ok := p.doc.patterns[name]
	if !ok {
		return &pdfgen.ResourceError{Kind: "line pattern", ID: name, Err: errUnknownPattern}
	}
	p.w.SetLineDash(d)
	return nil
}

// SetLineCap sets the line cap style.
func (p *Page) SetLineCap(cap graphics.LineCap) {
	p.w.SetLineCap(cap)
}

// SetLineJoin sets the line join style.
func (p *Page) SetLineJoin(join graphics.LineJoin) {
	p.w.SetLineJoin(join)
}

// SetMiterLimit sets the miter limit.
func (p *Page) SetMiterLimit(limit float64) {
	p.w.SetMiterLimit(limit)
}

// SetVAlign sets the vertical alignment of text relative to the pen.
func (p *Page) SetVAlign(a graphics.VAlign) {
	p.w.SetVAlign(a)
}

// SetCharSpacing sets the extra space between characters, in points.
func (p *Page) SetCharSpacing(spacing float64) {
	p.w.SetCharSpacing(spacing)
}

// SetWordSpacing sets the extra space between words, in points.
func (p *Page) SetWordSpacing(spacing float64) {
	p.w.SetWordSpacing(spacing)
}

// SetTextScale sets the horizontal scaling of text, in percent.
func (p *Page) SetTextScale(percent float64) {
	p.w.SetScale(percent)
}

// SetRenderMode sets the text rendering mode.
func (p *Page) SetRenderMode(mode graphics.RenderMode) {
	p.w.SetRenderMode(mode)
}

// SetUnderline switches underlining for Print and PrintAt on or off.
func (p *Page) SetUnderline(on bool) {
	p.underline = on
}
