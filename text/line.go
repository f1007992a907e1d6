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

package text

import (
	"strings"

	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
)

// Piece is a part of a line where all text has the same style.
type Piece struct {
	Text      string
	Width     float64 // in points, including character and word spacing
	Font      *font.Font
	Color     color.Value
	Underline bool

	CharCount  int
	TokenCount int
}

// Line is a single line of text, as returned by [RichText.Next].
//
// A single trailing space is kept in the text of the last piece, but is
// not included in Width, Tokens, Chars or Spaces.
type Line struct {
	Pieces []Piece

	Width  float64 // natural width in points
	Tokens int
	Chars  int
	Spaces int // number of space characters, affected by word spacing

	// Newline is set if the line was ended by a newline character.
	Newline bool

	// Last is set if this is the last line of the text.
	Last bool

	newline Style // style of the newline which ended the line

	ascent, descent float64
	height          float64
	hasFont         bool
}

func (l *Line) add(st Style, t token) {
	n := len(l.Pieces)
	if n == 0 || !l.Pieces[n-1].style().same(st) {
		l.Pieces = append(l.Pieces, Piece{
			Font:      st.Font,
			Color:     st.Color,
			Underline: st.Underline,
		})
		n++
	}
	p := &l.Pieces[n-1]
	p.Text += t.text
	p.Width += t.width
	p.CharCount += t.chars
	p.TokenCount++

	l.Width += t.width
	l.Tokens++
	l.Chars += t.chars
	l.Spaces += t.spaces
}

func (l *Line) addFont(f *font.Font) {
	a, d := f.Ascent(), f.Descent()
	if !l.hasFont || a > l.ascent {
		l.ascent = a
	}
	if !l.hasFont || d < l.descent {
		l.descent = d
	}
	if h := f.Height(); h > l.height {
		l.height = h
	}
	l.hasFont = true
}

// Shown returns the text of the piece as it is rendered, with tabs
// replaced by spaces.
func (p *Piece) Shown() string {
	return expandTabs(p.Text)
}

func (p *Piece) style() Style {
	return Style{Font: p.Font, Color: p.Color, Underline: p.Underline}
}

// Text returns the text of the line, including a trailing space.
// Lines ended by a newline include the newline character.
func (l *Line) Text() string {
	var b strings.Builder
	for _, p := range l.Pieces {
		b.WriteString(p.Text)
	}
	if l.Newline {
		b.WriteByte('\n')
	}
	return b.String()
}

// Ascent returns the largest ascent of all fonts used in the line.
func (l *Line) Ascent() float64 {
	return l.ascent
}

// Descent returns the lowest (most negative) descent of all fonts used in
// the line.
func (l *Line) Descent() float64 {
	return l.descent
}

// Height returns the height of the tallest font in the line.
func (l *Line) Height() float64 {
	return l.height
}
