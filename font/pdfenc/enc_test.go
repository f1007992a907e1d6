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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	type testCase struct {
		enc     *Encoding
		in      string
		codes   []byte
		missing []rune
	}
	cases := []testCase{
		{WinAnsi, "Hello", []byte("Hello"), nil},
		{WinAnsi, "café", []byte{'c', 'a', 'f', 0xE9}, nil},
		{WinAnsi, "cafe\u0301", []byte{'c', 'a', 'f', 0xE9}, nil},
		{WinAnsi, "5€", []byte{'5', 0x80}, nil},
		{WinAnsi, "a世b世", []byte("a?b?"), []rune{'世'}},
		{MacRoman, "é", []byte{0x8E}, nil},
		{MacRoman, "†", []byte{0xA0}, nil},
	}
	for _, c := range cases {
		codes, missing := c.enc.Encode(c.in)
		if d := cmp.Diff(c.codes, codes); d != "" {
			t.Errorf("%s %q: codes (-want +got):\n%s", c.enc.Name, c.in, d)
		}
		if d := cmp.Diff(c.missing, missing); d != "" {
			t.Errorf("%s %q: missing (-want +got):\n%s", c.enc.Name, c.in, d)
		}
	}
}

func TestGlyphNames(t *testing.T) {
	for _, enc := range []*Encoding{WinAnsi, MacRoman} {
		if got := enc.GlyphName('A'); got != "A" {
			t.Errorf("%s: GlyphName('A') = %q", enc.Name, got)
		}
		if got := enc.GlyphName(' '); got != "space" {
			t.Errorf("%s: GlyphName(' ') = %q", enc.Name, got)
		}
		if got := enc.GlyphName(0); got != ".notdef" {
			t.Errorf("%s: GlyphName(0) = %q", enc.Name, got)
		}
	}
	if got := WinAnsi.GlyphName(0x80); got != "Euro" {
		t.Errorf("WinAnsi 0x80 = %q", got)
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for _, enc := range []*Encoding{WinAnsi, MacRoman} {
		for c := 0x20; c < 0x7F; c++ {
			r := enc.Decode(byte(c))
			code, ok := enc.Code(r)
			if !ok || code != byte(c) {
				t.Errorf("%s: %d -> %q -> %d %t", enc.Name, c, r, code, ok)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "WinAnsiEncoding", "cp1252"} {
		if enc, ok := ByName(name); !ok || enc != WinAnsi {
			t.Errorf("ByName(%q) failed", name)
		}
	}
	if enc, ok := ByName("MacRomanEncoding"); !ok || enc != MacRoman {
		t.Error("MacRomanEncoding not found")
	}
	if _, ok := ByName("Symbol"); ok {
		t.Error("Symbol should not be found")
	}
}
