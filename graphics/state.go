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
	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
)

// LineCap is the shape at the ends of open stroked paths.
type LineCap uint8

// Possible values for LineCap.
// See section 8.4.3.3 of PDF 32000-1:2008.
const (
	LineCapButt   LineCap = 0
	LineCapRound  LineCap = 1
	LineCapSquare LineCap = 2
)

// LineJoin is the shape at the corners of stroked paths.
type LineJoin uint8

// Possible values for LineJoin.
// See section 8.4.3.4 of PDF 32000-1:2008.
const (
	LineJoinMiter LineJoin = 0
	LineJoinRound LineJoin = 1
	LineJoinBevel LineJoin = 2
)

// Dash describes the dash pattern for stroked lines.
// An empty pattern gives solid lines.
type Dash struct {
	Pattern []float64
	Phase   float64
}

// Equal reports whether d and other describe the same dash pattern.
func (d Dash) Equal(other Dash) bool {
	return nearlyEqual(d.Phase, other.Phase) && sliceNearlyEqual(d.Pattern, other.Pattern)
}

func (d Dash) clone() Dash {
	if d.Pattern == nil {
		return d
	}
	return Dash{Pattern: append([]float64(nil), d.Pattern...), Phase: d.Phase}
}

// VAlign is the vertical alignment of text relative to the text position.
// It is implemented using the text rise.
type VAlign uint8

// Possible values for VAlign.
const (
	VAlignBaseline VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// RenderMode is the text rendering mode.
// See section 9.3.6 of PDF 32000-1:2008.
type RenderMode uint8

// Possible values for RenderMode.
const (
	RenderFill RenderMode = iota
	RenderStroke
	RenderFillStroke
	RenderInvisible
	RenderFillClip
	RenderStrokeClip
	RenderFillStrokeClip
	RenderClip
)

func (m RenderMode) strokes() bool {
	return m == RenderStroke || m == RenderFillStroke ||
		m == RenderStrokeClip || m == RenderFillStrokeClip
}

// Properties are the user-visible graphics properties.
// Changing a property does not emit any operator; the value is written
// to the content stream just before it is first needed.
type Properties struct {
	LineColor color.Value
	FillColor color.Value
	FontColor color.Value

	LineWidth  float64
	Dash       Dash
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	VAlign      VAlign
	CharSpacing float64
	WordSpacing float64
	Scale       float64 // horizontal scaling in percent
	RenderMode  RenderMode

	Font *font.Font
}

// DefaultProperties returns the properties in effect at the start of a
// page.  These agree with the initial PDF graphics state.
func DefaultProperties() Properties {
	return Properties{
		LineColor:  color.Black,
		FillColor:  color.Black,
		FontColor:  color.Black,
		LineWidth:  1,
		MiterLimit: 10,
		Scale:      100,
	}
}

func (p Properties) clone() Properties {
	p.Dash = p.Dash.clone()
	return p
}

// shadow records the values last written to the content stream.
// Only the parameters listed in Set are known.
type shadow struct {
	Set Bits

	stroke color.Value
	fill   color.Value

	lineWidth  float64
	dash       Dash
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64

	charSpacing float64
	wordSpacing float64
	scale       float64
	renderMode  RenderMode
	rise        float64
	fontName    pdfgen.Name
	fontSize    float64
}

// newShadow returns the shadow state for a new content stream.
// Everything except the font has a defined initial value.
func newShadow() shadow {
	return shadow{
		Set:        AllBits &^ StateTextFont,
		stroke:     color.Black,
		fill:       color.Black,
		lineWidth:  1,
		miterLimit: 10,
		scale:      100,
	}
}

func (s shadow) clone() shadow {
	s.dash = s.dash.clone()
	return s
}

func (s *shadow) isSet(b Bits) bool {
	return s.Set&b == b
}
