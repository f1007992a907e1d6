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
	"iter"
	"strings"

	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
)

// Style describes the appearance of a run of text.
type Style struct {
	Font      *font.Font
	Color     color.Value
	Underline bool
}

func (s Style) same(other Style) bool {
	return s.Font.SameFace(other.Font) && s.Color == other.Color && s.Underline == other.Underline
}

// Spacing holds the extra character and word spacing, in points, which is
// used when the text is measured and shown.
type Spacing struct {
	Char float64
	Word float64
}

type run struct {
	style  Style
	tokens []token
}

// RichText is a sequence of text runs with different styles.
//
// Text is consumed line by line using [RichText.Next].  This removes the
// returned text from the RichText; use [RichText.Clone] to measure text
// without consuming it.
type RichText struct {
	Spacing Spacing
	runs    []run
}

// New returns an empty RichText which measures text using the given
// spacing.
func New(sp Spacing) *RichText {
	return &RichText{Spacing: sp}
}

// Append adds s to the end of the text, using the given style.
func (rt *RichText) Append(s string, st Style) {
	if s == "" {
		return
	}
	tokens := tokenize(s, st.Font, rt.Spacing.Char, rt.Spacing.Word)
	if len(tokens) == 0 {
		return
	}
	if n := len(rt.runs); n > 0 && rt.runs[n-1].style.same(st) {
		rt.runs[n-1].tokens = append(rt.runs[n-1].tokens, tokens...)
		return
	}
	rt.runs = append(rt.runs, run{style: st, tokens: tokens})
}

// Empty reports whether all text has been consumed.
func (rt *RichText) Empty() bool {
	for _, r := range rt.runs {
		if len(r.tokens) > 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of rt.
func (rt *RichText) Clone() *RichText {
	res := &RichText{Spacing: rt.Spacing, runs: make([]run, len(rt.runs))}
	for i, r := range rt.runs {
		res.runs[i] = run{style: r.style, tokens: append([]token(nil), r.tokens...)}
	}
	return res
}

// String returns the remaining text.
func (rt *RichText) String() string {
	var b strings.Builder
	for _, r := range rt.runs {
		for _, t := range r.tokens {
			if t.kind == kindNewline {
				b.WriteByte('\n')
			} else {
				b.WriteString(t.text)
			}
		}
	}
	return b.String()
}

// Next removes the next line from the text and returns it.  Lines break
// at token boundaries, so that the line fits into the given width.  A
// line always contains at least one token, even if this token is wider
// than width.  A newline ends the current line.
//
// If no text is left, nil is returned.
func (rt *RichText) Next(width float64) *Line {
	rt.skipSpaces()
	if len(rt.runs) == 0 {
		return nil
	}

	line := &Line{}
	var lastTok token
	acc := 0.0
	count := 0
loop:
	for len(rt.runs) > 0 {
		r := &rt.runs[0]
		for len(r.tokens) > 0 {
			t := r.tokens[0]
			if count > 0 && !(acc+t.width < width) {
				break loop
			}
			r.tokens = r.tokens[1:]
			count++
			acc += t.width
			line.addFont(r.style.Font)
			if t.kind == kindNewline {
				line.Newline = true
				line.newline = r.style
				break loop
			}
			line.add(r.style, t)
			lastTok = t
		}
		rt.runs = rt.runs[1:]
	}
	rt.dropEmpty()

	if n := len(line.Pieces); n > 0 && lastTok.kind == kindSpace {
		// The trailing space stays in the text, but does not count
		// towards the line width.
		p := &line.Pieces[n-1]
		p.Width -= lastTok.width
		p.TokenCount--
		p.CharCount -= lastTok.chars
		line.Width -= lastTok.width
		line.Tokens--
		line.Chars -= lastTok.chars
		line.Spaces -= lastTok.spaces
	}
	line.Last = rt.Empty()
	return line
}

// Unread puts a line returned by [RichText.Next] back in front of the
// remaining text.  This allows to stop a paragraph at a page break.
func (rt *RichText) Unread(l *Line) {
	var runs []run
	for _, p := range l.Pieces {
		tokens := tokenize(p.Text, p.Font, rt.Spacing.Char, rt.Spacing.Word)
		runs = append(runs, run{style: p.style(), tokens: tokens})
	}
	if l.Newline {
		nl := token{kind: kindNewline}
		if n := len(runs); n > 0 && runs[n-1].style.same(l.newline) {
			runs[n-1].tokens = append(runs[n-1].tokens, nl)
		} else {
			runs = append(runs, run{style: l.newline, tokens: []token{nl}})
		}
	}
	rt.runs = append(runs, rt.runs...)
}

// Lines returns an iterator over the remaining lines of text.
// The lines are consumed as they are produced.
func (rt *RichText) Lines(width float64) iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		for {
			l := rt.Next(width)
			if l == nil || !yield(l) {
				return
			}
		}
	}
}

// Height returns the total height of the text when wrapped at the given
// width.  The line heights are multiplied by lineHeight.
// The text is not consumed.
func (rt *RichText) Height(width, lineHeight float64) float64 {
	var h float64
	for l := range rt.Clone().Lines(width) {
		h += l.Height() * lineHeight
	}
	return h
}

// skipSpaces removes leading space tokens.
func (rt *RichText) skipSpaces() {
	rt.dropEmpty()
	for len(rt.runs) > 0 {
		r := &rt.runs[0]
		for len(r.tokens) > 0 && r.tokens[0].kind == kindSpace {
			r.tokens = r.tokens[1:]
		}
		if len(r.tokens) > 0 {
			return
		}
		rt.runs = rt.runs[1:]
	}
}

func (rt *RichText) dropEmpty() {
	for len(rt.runs) > 0 && len(rt.runs[0].tokens) == 0 {
		rt.runs = rt.runs[1:]
	}
}
