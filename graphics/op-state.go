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

package graphics

import (
	"fmt"
	"strings"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
)

// This file implements the setters for the graphics properties, and the
// code which writes changed properties to the content stream.  The
// operators used here are defined in tables 56, 74 and 103 of
// ISO 32000-2:2020.

// beforeStrokeChange resolves an open auto path, since a change of a
// stroke parameter would otherwise apply retroactively.
func (w *Writer) beforeStrokeChange() {
	if w.path == pathLines && w.hasContent {
		w.Flush()
	}
}

// SetLineColor sets the color used for stroking paths.
func (w *Writer) SetLineColor(c color.Value) {
	if c == w.props.LineColor {
		return
	}
	w.beforeStrokeChange()
	w.props.LineColor = c
}

// SetFillColor sets the color used for filling paths.
func (w *Writer) SetFillColor(c color.Value) {
	w.props.FillColor = c
}

// SetFontColor sets the color used for text.
func (w *Writer) SetFontColor(c color.Value) {
	w.props.FontColor = c
}

// SetLineWidth sets the line width.
func (w *Writer) SetLineWidth(width float64) {
	if nearlyEqual(width, w.props.LineWidth) {
		return
	}
	w.beforeStrokeChange()
	w.props.LineWidth = width
}

// SetLineDash sets the line dash pattern.
func (w *Writer) SetLineDash(d Dash) {
	if d.Equal(w.props.Dash) {
		return
	}
	w.beforeStrokeChange()
	w.props.Dash = d.clone()
}

// SetLineCap sets the line cap style.
func (w *Writer) SetLineCap(cap LineCap) {
	if cap == w.props.LineCap {
		return
	}
	w.beforeStrokeChange()
	w.props.LineCap = cap
}

// SetLineJoin sets the line join style.
func (w *Writer) SetLineJoin(join LineJoin) {
	if join == w.props.LineJoin {
		return
	}
	w.beforeStrokeChange()
	w.props.LineJoin = join
}

// SetMiterLimit sets the miter limit.
func (w *Writer) SetMiterLimit(limit float64) {
	if nearlyEqual(limit, w.props.MiterLimit) {
		return
	}
	w.beforeStrokeChange()
	w.props.MiterLimit = limit
}

// SetVAlign sets the vertical alignment of text.
func (w *Writer) SetVAlign(a VAlign) {
	w.props.VAlign = a
}

// SetCharSpacing sets the additional space between characters,
// in unscaled text space units.
func (w *Writer) SetCharSpacing(spacing float64) {
	w.props.CharSpacing = spacing
}

// SetWordSpacing sets the additional space added to every space character,
// in unscaled text space units.
func (w *Writer) SetWordSpacing(spacing float64) {
	w.props.WordSpacing = spacing
}

// SetScale sets the horizontal scaling of text, in percent.
func (w *Writer) SetScale(percent float64) {
	w.props.Scale = percent
}

// SetRenderMode sets the text rendering mode.
func (w *Writer) SetRenderMode(mode RenderMode) {
	if mode.strokes() && !w.props.RenderMode.strokes() {
		w.beforeStrokeChange()
	}
	w.props.RenderMode = mode
}

// SetFont sets the font used for text.
func (w *Writer) SetFont(f *font.Font) {
	w.props.Font = f
}

// ensureStroke writes all parameters which affect stroking and differ
// from the values in the content stream.
func (w *Writer) ensureStroke() {
	if w.Err != nil {
		return
	}
	p := &w.props
	s := &w.shadow

	if !s.isSet(StateStrokeColor) || p.LineColor != s.stroke {
		w.Err = p.LineColor.SetStroke(w.Content)
		s.stroke = p.LineColor
		s.Set |= StateStrokeColor
	}
	if w.Err == nil && (!s.isSet(StateLineWidth) || !nearlyEqual(p.LineWidth, s.lineWidth)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(p.LineWidth), "w")
		s.lineWidth = p.LineWidth
		s.Set |= StateLineWidth
	}
	if w.Err == nil && (!s.isSet(StateLineDash) || !p.Dash.Equal(s.dash)) {
		parts := make([]string, len(p.Dash.Pattern))
		for i, x := range p.Dash.Pattern {
			parts[i] = w.coord(x)
		}
		_, w.Err = fmt.Fprintln(w.Content, "["+strings.Join(parts, " ")+"]", w.coord(p.Dash.Phase), "d")
		s.dash = p.Dash.clone()
		s.Set |= StateLineDash
	}
	if w.Err == nil && (!s.isSet(StateLineCap) || p.LineCap != s.lineCap) {
		_, w.Err = fmt.Fprintln(w.Content, int(p.LineCap), "J")
		s.lineCap = p.LineCap
		s.Set |= StateLineCap
	}
	if w.Err == nil && (!s.isSet(StateLineJoin) || p.LineJoin != s.lineJoin) {
		_, w.Err = fmt.Fprintln(w.Content, int(p.LineJoin), "j")
		s.lineJoin = p.LineJoin
		s.Set |= StateLineJoin
	}
	if w.Err == nil && (!s.isSet(StateMiterLimit) || !nearlyEqual(p.MiterLimit, s.miterLimit)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(p.MiterLimit), "M")
		s.miterLimit = p.MiterLimit
		s.Set |= StateMiterLimit
	}
}

// ensureNonStroking writes the non-stroking color, if needed.
// Fill color and font color share this parameter.
func (w *Writer) ensureNonStroking(c color.Value) {
	if w.Err != nil {
		return
	}
	s := &w.shadow
	if !s.isSet(StateFillColor) || c != s.fill {
		w.Err = c.SetFill(w.Content)
		s.fill = c
		s.Set |= StateFillColor
	}
}

// ensureFill writes the fill color, if needed.
func (w *Writer) ensureFill() {
	w.ensureNonStroking(w.props.FillColor)
}

// ensureText writes all parameters which affect text and differ from the
// values in the content stream.
func (w *Writer) ensureText() {
	if w.Err != nil {
		return
	}
	p := &w.props
	s := &w.shadow

	if p.Font == nil {
		w.Err = pdfgen.Usage("ShowText", errNoFont)
		return
	}

	w.ensureNonStroking(p.FontColor)
	if p.RenderMode.strokes() {
		w.ensureStroke()
	}
	if w.Err != nil {
		return
	}

	f := p.Font
	if !s.isSet(StateTextFont) || f.Resource != s.fontName || !nearlyEqual(f.Size, s.fontSize) {
		_, w.Err = fmt.Fprintln(w.Content, f.Resource, w.coord(f.Size), "Tf")
		s.fontName = f.Resource
		s.fontSize = f.Size
		s.Set |= StateTextFont
	}
	if w.Err == nil && (!s.isSet(StateTextCharacterSpacing) || !nearlyEqual(p.CharSpacing, s.charSpacing)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(p.CharSpacing), "Tc")
		s.charSpacing = p.CharSpacing
		s.Set |= StateTextCharacterSpacing
	}
	if w.Err == nil && (!s.isSet(StateTextWordSpacing) || !nearlyEqual(p.WordSpacing, s.wordSpacing)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(p.WordSpacing), "Tw")
		s.wordSpacing = p.WordSpacing
		s.Set |= StateTextWordSpacing
	}
	if w.Err == nil && (!s.isSet(StateTextHorizontalScaling) || !nearlyEqual(p.Scale, s.scale)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(p.Scale), "Tz")
		s.scale = p.Scale
		s.Set |= StateTextHorizontalScaling
	}
	if w.Err == nil && (!s.isSet(StateTextRenderingMode) || p.RenderMode != s.renderMode) {
		_, w.Err = fmt.Fprintln(w.Content, int(p.RenderMode), "Tr")
		s.renderMode = p.RenderMode
		s.Set |= StateTextRenderingMode
	}
	rise := w.rise()
	if w.Err == nil && (!s.isSet(StateTextRise) || !nearlyEqual(rise, s.rise)) {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(rise), "Ts")
		s.rise = rise
		s.Set |= StateTextRise
	}
}

// rise returns the text rise which implements the vertical alignment.
func (w *Writer) rise() float64 {
	f := w.props.Font
	switch w.props.VAlign {
	case VAlignTop:
		return -f.Ascent()
	case VAlignBottom:
		return -f.Descent()
	case VAlignMiddle:
		return -(f.Ascent() + f.Descent()) / 2
	default:
		return 0
	}
}

// TextRise returns the text rise used for the current font and vertical
// alignment.  The result is zero if no font is set.
func (w *Writer) TextRise() float64 {
	if w.props.Font == nil {
		return 0
	}
	return w.rise()
}

// Emitted returns the set of parameters whose value in the content stream
// is known.
func (w *Writer) Emitted() Bits {
	return w.shadow.Set
}
