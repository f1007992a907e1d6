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

package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnitRoundTrip(t *testing.T) {
	u := NewUnits()
	if err := u.Add("furlong", 201.168*72/0.0254); err != nil {
		t.Fatal(err)
	}
	names := u.Names()
	for _, v := range []float64{0, 1, -2.5, 1000, 0.001} {
		for _, u1 := range names {
			for _, u2 := range names {
				pt, err := u.ToPoints(u1, v)
				if err != nil {
					t.Fatal(err)
				}
				direct, err := u.FromPoints(u2, pt)
				if err != nil {
					t.Fatal(err)
				}
				converted, err := u.Convert(v, u1, u2)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(direct-converted) > 1e-9*math.Max(1, math.Abs(direct)) {
					t.Errorf("%g %s -> %s: %g != %g", v, u1, u2, direct, converted)
				}
				back, _ := u.Convert(converted, u2, u1)
				if math.Abs(back-v) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("%g %s -> %s -> %s: got %g", v, u1, u2, u1, back)
				}
			}
		}
	}
}

func TestDefaultUnits(t *testing.T) {
	u := NewUnits()
	cases := []struct {
		unit string
		pt   float64
	}{
		{"pt", 1},
		{"in", 72},
		{"cm", 28.35},
		{"mm", 2.835},
		{"pc", 12},
	}
	for _, c := range cases {
		got, err := u.ToPoints(c.unit, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.pt {
			t.Errorf("1%s = %gpt, want %gpt", c.unit, got, c.pt)
		}
	}

	want := []string{"cm", "in", "mm", "pc", "pt"}
	if d := cmp.Diff(want, u.Names()); d != "" {
		t.Errorf("unit names (-want +got):\n%s", d)
	}
}

func TestUnknownUnit(t *testing.T) {
	u := NewUnits()
	_, err := u.ToPoints("parsec", 1)
	var unitErr *UnknownUnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected UnknownUnitError, got %v", err)
	}
	if unitErr.Unit != "parsec" {
		t.Errorf("wrong unit %q", unitErr.Unit)
	}
	if _, err := u.Convert(1, "pt", "parsec"); err == nil {
		t.Error("conversion to unknown unit succeeded")
	}
}

func TestAddUnitInvalid(t *testing.T) {
	u := NewUnits()
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := u.Add("bad", f); err == nil {
			t.Errorf("unit size %g accepted", f)
		}
	}
	if u.Has("bad") {
		t.Error("invalid unit was added")
	}
}
