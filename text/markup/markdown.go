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

package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"seehuhn.de/go/pdfgen/text"
)

// FromMarkdown parses Markdown source into rich text.
//
// Emphasis is set in italics, strong emphasis and headings in bold.  Code
// spans and code blocks use the base font.  Links contribute their text.
func FromMarkdown(src string, base text.Style, r Resolver) (*text.RichText, error) {
	rt := text.New(text.Spacing{})
	err := AppendMarkdown(rt, src, base, r)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// AppendMarkdown parses Markdown source and appends the text to rt.
func AppendMarkdown(rt *text.RichText, src string, base text.Style, r Resolver) error {
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	b := newBuilder(rt, base, r)
	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return b.visitMarkdown(n, entering, source)
	})
}

func (b *builder) visitMarkdown(n ast.Node, entering bool, source []byte) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Emphasis:
		if !entering {
			b.pop()
		} else if n.Level >= 2 {
			b.push(func(s *styleState) { s.bold = true })
		} else {
			b.push(func(s *styleState) { s.italic = true })
		}

	case *ast.Heading:
		if entering {
			b.push(func(s *styleState) { s.bold = true })
		} else {
			b.pop()
			b.endBlock()
		}

	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			b.endBlock()
		}

	case *ast.ListItem:
		if entering {
			b.endBlock()
			if err := b.write(bullet); err != nil {
				return ast.WalkStop, err
			}
		} else {
			b.endBlock()
		}

	case *ast.Text:
		if !entering {
			break
		}
		s := string(n.Segment.Value(source))
		if n.HardLineBreak() {
			s = strings.TrimRight(s, " ")
		}
		if err := b.write(s); err != nil {
			return ast.WalkStop, err
		}
		var err error
		if n.HardLineBreak() {
			err = b.write("\n")
		} else if n.SoftLineBreak() {
			err = b.write(" ")
		}
		if err != nil {
			return ast.WalkStop, err
		}

	case *ast.String:
		if entering {
			if err := b.write(string(n.Value)); err != nil {
				return ast.WalkStop, err
			}
		}

	case *ast.AutoLink:
		if entering {
			if err := b.write(string(n.Label(source))); err != nil {
				return ast.WalkStop, err
			}
		}

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		if !entering {
			break
		}
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if err := b.write(string(seg.Value(source))); err != nil {
				return ast.WalkStop, err
			}
		}
		b.endBlock()
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}
