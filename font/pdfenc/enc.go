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

package pdfenc

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// An Encoding is a mapping between single byte codes, glyph names and
// Unicode text.
type Encoding struct {
	// Name is the PDF name of the encoding, for example "WinAnsiEncoding".
	Name string

	cm    *charmap.Charmap
	names *[256]string
}

// WinAnsi is the PDF version of the standard Microsoft Windows specific
// encoding for Latin text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var WinAnsi = &Encoding{
	Name:  "WinAnsiEncoding",
	cm:    charmap.Windows1252,
	names: &winAnsiNames,
}

// MacRoman is the PDF version of the MacOS standard encoding for Latin
// text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var MacRoman = &Encoding{
	Name:  "MacRomanEncoding",
	cm:    charmap.Macintosh,
	names: &macRomanNames,
}

// ByName returns the encoding with the given name.  Both the PDF names
// ("WinAnsiEncoding") and the short forms ("WinAnsi", "cp1252", "MacRoman")
// are recognised.  The empty string selects [WinAnsi].
func ByName(name string) (*Encoding, bool) {
	switch name {
	case "", "WinAnsiEncoding", "WinAnsi", "winansi", "cp1252", "windows-1252":
		return WinAnsi, true
	case "MacRomanEncoding", "MacRoman", "macroman", "macintosh":
		return MacRoman, true
	}
	return nil, false
}

// GlyphName returns the glyph name for the given code.
// Unused codes map to ".notdef".
func (e *Encoding) GlyphName(code byte) string {
	return e.names[code]
}

// Code returns the code for the rune r.  The second return value is false
// if r cannot be represented in the encoding.
func (e *Encoding) Code(r rune) (byte, bool) {
	c, ok := e.cm.EncodeRune(r)
	if !ok || e.names[c] == ".notdef" {
		return 0, false
	}
	return c, true
}

// Decode returns the Unicode text for a single code.
func (e *Encoding) Decode(code byte) rune {
	if e.names[code] == ".notdef" {
		return 0xFFFD
	}
	return e.cm.DecodeByte(code)
}

// Encode converts s to NFC and then to a sequence of codes.  Runes which
// have no code are replaced by a question mark and returned in missing,
// once each.
func (e *Encoding) Encode(s string) (codes []byte, missing []rune) {
	s = norm.NFC.String(s)
	codes = make([]byte, 0, len(s))
	var seen map[rune]bool
	for _, r := range s {
		c, ok := e.Code(r)
		if !ok {
			if !seen[r] {
				if seen == nil {
					seen = make(map[rune]bool)
				}
				seen[r] = true
				missing = append(missing, r)
			}
			c = '?'
		}
		codes = append(codes, c)
	}
	return codes, missing
}

// Names returns a copy of the glyph name table.
func (e *Encoding) Names() [256]string {
	return *e.names
}
