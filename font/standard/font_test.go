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

package standard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

func TestAllFonts(t *testing.T) {
	for _, F := range All {
		t.Run(string(F), func(t *testing.T) {
			m := F.Metrics(pdfenc.WinAnsi)
			if m == nil {
				t.Fatal("no metrics")
			}
			if m.FontName != string(F) {
				t.Errorf("wrong FontName %q", m.FontName)
			}
			if m.Width('A') <= 0 || m.Width(' ') <= 0 {
				t.Errorf("missing widths: A=%g space=%g", m.Width('A'), m.Width(' '))
			}
			if m.Ascent <= 0 || m.Descent >= 0 {
				t.Errorf("bad vertical metrics %g %g", m.Ascent, m.Descent)
			}
			if m.Descriptor() != nil {
				t.Error("standard fonts need no descriptor")
			}
		})
	}
}

func TestHelveticaWidth(t *testing.T) {
	m := Helvetica.Metrics(pdfenc.WinAnsi)
	f := &font.Font{Metrics: m, Size: 10}
	got := f.StringWidth("Hello")
	want := (722 + 556 + 222 + 222 + 556) / 100.0
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("width (-want +got):\n%s", d)
	}
}

func TestCourierFixedPitch(t *testing.T) {
	m := CourierBold.Metrics(pdfenc.WinAnsi)
	for _, c := range []byte("iW. ") {
		if w := m.Width(c); w != 600 {
			t.Errorf("width of %q = %g", c, w)
		}
	}
	if m.Flags&font.FlagFixedPitch == 0 {
		t.Error("Courier is not flagged as fixed pitch")
	}
}

func TestMacRomanWidths(t *testing.T) {
	win := TimesRoman.Metrics(pdfenc.WinAnsi)
	mac := TimesRoman.Metrics(pdfenc.MacRoman)
	for _, r := range "aZé†" {
		wc, _ := pdfenc.WinAnsi.Code(r)
		mc, ok := pdfenc.MacRoman.Code(r)
		if !ok {
			t.Fatalf("%q not in MacRoman", r)
		}
		if win.Width(wc) != mac.Width(mc) {
			t.Errorf("%q: %g != %g", r, win.Width(wc), mac.Width(mc))
		}
	}
	if mac.Key().Encoding != "MacRomanEncoding" {
		t.Errorf("wrong key %v", mac.Key())
	}
}

func TestSelect(t *testing.T) {
	type testCase struct {
		family       string
		bold, italic bool
		want         Font
	}
	cases := []testCase{
		{"Helvetica", false, false, Helvetica},
		{"arial", true, false, HelveticaBold},
		{"Times", false, true, TimesItalic},
		{"times new roman", true, true, TimesBoldItalic},
		{"Courier", false, true, CourierOblique},
		{"Courier-Bold", false, false, CourierBold},
	}
	for _, c := range cases {
		got, ok := Select(c.family, c.bold, c.italic)
		if !ok || got != c.want {
			t.Errorf("Select(%q, %t, %t) = %q, %t", c.family, c.bold, c.italic, got, ok)
		}
	}
	if _, ok := Select("Zapfino", false, false); ok {
		t.Error("unknown family found")
	}
}

func TestProvider(t *testing.T) {
	m, err := Provider.Metrics(font.Request{Family: "Helvetica", Weight: font.WeightBold})
	if err != nil {
		t.Fatal(err)
	}
	if m.FontName != "Helvetica-Bold" {
		t.Errorf("got %q", m.FontName)
	}

	_, err = Provider.Metrics(font.Request{Family: "Comic Sans"})
	if !errors.Is(err, pdfgen.ErrUnknownFont) {
		t.Errorf("unexpected error %v", err)
	}

	_, err = Provider.Metrics(font.Request{Family: "Helvetica", Encoding: "Symbol"})
	if !errors.Is(err, pdfgen.ErrUnsupportedEncoding) {
		t.Errorf("unexpected error %v", err)
	}
}
