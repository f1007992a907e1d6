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

// Package markup converts inline HTML and Markdown into rich text.
//
// Only the formatting which can be expressed with [text.Style] is kept:
// bold and italic variants of the base font, underlines and text colors.
// Block elements are separated by newlines, and list items are prefixed
// with a bullet character.
package markup

import (
	"strings"

	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/text"
)

// Resolver finds the fonts and colors referenced by markup.
type Resolver interface {
	// Variant returns the font from the same family as f, with the given
	// weight and slant, and the same size as f.
	Variant(f *font.Font, bold, italic bool) (*font.Font, error)

	// Color resolves a color name, for example "red" or "#ff8800".
	Color(name string) (color.Value, error)
}

// bullet is the prefix for list items.
const bullet = "• "

type styleState struct {
	bold, italic, underline bool
	color                   color.Value
}

// builder appends styled text to a RichText.
type builder struct {
	rt       *text.RichText
	base     text.Style
	resolver Resolver

	stack   []styleState
	pending bool // a block ended, a newline is needed before more text
	started bool
	fonts   map[[2]bool]*font.Font
}

func newBuilder(rt *text.RichText, base text.Style, r Resolver) *builder {
	return &builder{
		rt:       rt,
		base:     base,
		resolver: r,
		stack:    []styleState{{underline: base.Underline, color: base.Color}},
		fonts:    make(map[[2]bool]*font.Font),
	}
}

func (b *builder) top() styleState {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(modify func(s *styleState)) {
	s := b.top()
	modify(&s)
	b.stack = append(b.stack, s)
}

func (b *builder) pop() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *builder) font(bold, italic bool) (*font.Font, error) {
	if !bold && !italic {
		return b.base.Font, nil
	}
	key := [2]bool{bold, italic}
	if f, ok := b.fonts[key]; ok {
		return f, nil
	}
	f, err := b.resolver.Variant(b.base.Font, bold, italic)
	if err != nil {
		return nil, err
	}
	b.fonts[key] = f
	return f, nil
}

// write appends s using the current style.
func (b *builder) write(s string) error {
	if s == "" {
		return nil
	}
	if (b.pending || !b.started) && strings.TrimSpace(s) == "" {
		return nil
	}
	s0 := b.top()
	if b.pending && b.started {
		b.rt.Append("\n", text.Style{Font: b.base.Font, Color: s0.color})
	}
	b.pending = false
	b.started = true

	f, err := b.font(s0.bold, s0.italic)
	if err != nil {
		return err
	}
	b.rt.Append(s, text.Style{Font: f, Color: s0.color, Underline: s0.underline})
	return nil
}

// endBlock marks the end of a block element.
func (b *builder) endBlock() {
	b.pending = true
}

// collapseSpace replaces runs of white space with a single space, as HTML
// renderers do.
func collapseSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				sb.WriteByte(' ')
			}
			space = true
		default:
			sb.WriteRune(r)
			space = false
		}
	}
	return sb.String()
}
