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
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"seehuhn.de/go/pdfgen/text"
)

// FromHTML parses an HTML fragment into rich text.
//
// The supported elements are b, strong, i, em, u, ins, br, font (with a
// color attribute), span (with a "color:" style), p, div, li and the
// headings h1 to h6, which are set in bold.  Other elements contribute
// their text only.
func FromHTML(src string, base text.Style, r Resolver) (*text.RichText, error) {
	rt := text.New(text.Spacing{})
	err := AppendHTML(rt, src, base, r)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// AppendHTML parses an HTML fragment and appends the text to rt.
func AppendHTML(rt *text.RichText, src string, base text.Style, r Resolver) error {
	nodes, err := html.ParseFragment(strings.NewReader(src), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	b := newBuilder(rt, base, r)
	for _, n := range nodes {
		err := b.walkHTML(n)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) walkHTML(n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		return b.write(collapseSpace(n.Data))
	case html.ElementNode:
		// handled below
	default:
		return nil
	}

	pushed := true
	switch n.DataAtom {
	case atom.B, atom.Strong, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.push(func(s *styleState) { s.bold = true })
	case atom.I, atom.Em:
		b.push(func(s *styleState) { s.italic = true })
	case atom.U, atom.Ins:
		b.push(func(s *styleState) { s.underline = true })
	case atom.Font, atom.Span:
		name := colorAttr(n)
		if name == "" {
			pushed = false
			break
		}
		c, err := b.resolver.Color(name)
		if err != nil {
			return err
		}
		b.push(func(s *styleState) { s.color = c })
	case atom.Br:
		b.pending = false
		b.started = true
		return b.write("\n")
	case atom.Li:
		b.endBlock()
		if err := b.write(bullet); err != nil {
			return err
		}
		pushed = false
	case atom.Script, atom.Style, atom.Head:
		return nil
	default:
		pushed = false
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		err := b.walkHTML(c)
		if err != nil {
			return err
		}
	}
	if pushed {
		b.pop()
	}

	switch n.DataAtom {
	case atom.P, atom.Div, atom.Li, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.endBlock()
	}
	return nil
}

// colorAttr returns the color given by a color attribute, or by a color
// declaration in a style attribute.
func colorAttr(n *html.Node) string {
	for _, a := range n.Attr {
		switch a.Key {
		case "color":
			return strings.TrimSpace(a.Val)
		case "style":
			for _, decl := range strings.Split(a.Val, ";") {
				key, val, ok := strings.Cut(decl, ":")
				if ok && strings.TrimSpace(strings.ToLower(key)) == "color" {
					return strings.TrimSpace(val)
				}
			}
		}
	}
	return ""
}
