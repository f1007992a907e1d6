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
	"regexp"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/pdfgen/font"
)

type tokenKind uint8

const (
	kindWord tokenKind = iota
	kindSpace
	kindTab
	kindNewline
)

// A token is the smallest unit of text which is never split across lines.
type token struct {
	kind   tokenKind
	text   string
	width  float64
	chars  int
	spaces int
}

// tabWidth is the number of spaces a tab character is rendered as.
const tabWidth = 4

var tabSpaces = strings.Repeat(" ", tabWidth)

// expandTabs replaces each tab in s by tabWidth spaces.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", tabSpaces)
}

// tokenRegexp matches, in order of priority, a newline, a tab, a single
// space, a word ending in hyphens, and a word.
var tokenRegexp = regexp.MustCompile("\n|\t| |[^ \t\n]+-+|[^ \t\n]+")

// tokenize splits s into measured tokens.  charSpacing and wordSpacing are
// the extra spacings, in points, which will be in effect when the text is
// shown.
func tokenize(s string, f *font.Font, charSpacing, wordSpacing float64) []token {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var res []token
	for _, m := range tokenRegexp.FindAllString(s, -1) {
		t := token{text: m}
		switch m {
		case "\n":
			t.kind = kindNewline
			t.text = ""
			res = append(res, t)
			continue
		case "\t":
			t.kind = kindTab
		case " ":
			t.kind = kindSpace
		}
		shown := expandTabs(t.text)
		t.chars = utf8.RuneCountInString(shown)
		t.spaces = strings.Count(shown, " ")
		t.width = f.StringWidth(shown) + charSpacing*float64(t.chars) + wordSpacing*float64(t.spaces)
		res = append(res, t)
	}
	return res
}
