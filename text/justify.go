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
	"math"

	"seehuhn.de/go/pdfgen/font"
)

// Adjust is the extra spacing used to justify a line.  The values are
// added to the character and word spacing in effect while the line is
// shown.
type Adjust struct {
	CharSpacing float64
	WordSpacing float64
}

// maxWordSpacing is the largest extra word spacing, in points, used for
// justification.  Any remaining space is distributed between characters.
const maxWordSpacing = 3

// maxStretch is the largest fraction of the target width which may be
// filled by justification.
const maxStretch = 0.2

// Justify computes the spacing needed to stretch l to the target width.
// The zero Adjust is returned if the line cannot be justified: if it is
// already wide enough, if it has fewer than two tokens, or if more than
// 20% of the target width would need to be filled.
func Justify(l *Line, target float64) Adjust {
	delta := target - l.Width
	if delta <= 0 || target <= 0 || delta/target >= maxStretch || l.Tokens < 2 {
		return Adjust{}
	}

	gaps := float64(l.Tokens - 1)
	var adj Adjust
	if delta/gaps > maxWordSpacing {
		if l.Spaces > 0 {
			// tabs contribute several spaces to a single gap
			adj.WordSpacing = math.Min(maxWordSpacing, maxWordSpacing*gaps/float64(l.Spaces))
		}
		delta -= gaps * maxWordSpacing
		if l.Chars > 0 {
			adj.CharSpacing = delta / float64(l.Chars)
		}
	} else if l.Spaces > 0 {
		adj.WordSpacing = math.Min(2*delta/gaps, delta/float64(l.Spaces))
	}
	return adj
}

// Wrap breaks s into lines which fit into the given width, using font f.
// Each returned string includes the trailing space or newline at which the
// line was broken.
func Wrap(s string, f *font.Font, width float64) []string {
	rt := New(Spacing{})
	rt.Append(s, Style{Font: f})
	var res []string
	for l := range rt.Lines(width) {
		res = append(res, l.Text())
	}
	return res
}
