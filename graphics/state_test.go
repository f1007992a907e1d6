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

package graphics

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitsNames(t *testing.T) {
	b := StateLineWidth | StateTextFont
	if got := b.Names(); got != "StateLineWidth|StateTextFont" {
		t.Errorf("got %q", got)
	}
	if got := Bits(1 << 31).Names(); got != "0x80000000" {
		t.Errorf("got %q", got)
	}
}

func TestInitialState(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if got := w.Emitted(); got != AllBits&^StateTextFont {
		t.Errorf("initial state: %s", got.Names())
	}

	w.SetFont(helvetica(12))
	w.BeginText()
	w.ShowText([]byte("x"))
	if got := w.Emitted(); got != AllBits {
		t.Errorf("after text: %s", got.Names())
	}
}

// TestRestoreForgetsFont checks that the font selected inside a saved
// state is written again after Restore.
func TestRestoreForgetsFont(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetFont(helvetica(12))
	w.Save()
	w.BeginText()
	w.ShowText([]byte("a"))
	w.Restore()
	w.BeginText()
	w.ShowText([]byte("b"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := "q\nBT\n/F1 12 Tf\n(a) Tj\nET\nQ\nBT\n/F1 12 Tf\n(b) Tj\nET\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content stream (-want +got):\n%s", d)
	}
}

func TestPropertiesRoundTrip(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	p := DefaultProperties()
	p.LineColor = red
	p.LineWidth = 0.25
	p.Dash = Dash{Pattern: []float64{1, 2}, Phase: 1}
	p.LineCap = LineCapRound
	p.WordSpacing = 2
	fnt := helvetica(9)
	p.Font = fnt
	w.SetProperties(p)

	got := w.Properties()
	if got.Font != fnt {
		t.Error("font not set")
	}
	p.Font, got.Font = nil, nil
	if d := cmp.Diff(p, got); d != "" {
		t.Errorf("properties (-want +got):\n%s", d)
	}

	// the returned value must not alias internal state
	got.Dash.Pattern[0] = 99
	if w.Properties().Dash.Pattern[0] != 1 {
		t.Error("Properties returned an aliased dash pattern")
	}
}

func TestDashEqual(t *testing.T) {
	a := Dash{Pattern: []float64{3, 1}}
	b := Dash{Pattern: []float64{3, 1 + 1e-9}}
	if !a.Equal(b) {
		t.Error("nearly equal patterns differ")
	}
	if a.Equal(Dash{}) {
		t.Error("solid and dashed compare equal")
	}
}
