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

package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestPolygonApexUp(t *testing.T) {
	c := vec.Vec2{X: 50, Y: 50}
	tri := Polygon(c, 10, 3, 0)
	if len(tri) != 3 {
		t.Fatalf("got %d vertices", len(tri))
	}

	// With the y-axis pointing down, the apex has the smallest y value.
	top := 0
	for i, p := range tri {
		if p.Y < tri[top].Y {
			top = i
		}
		if r := dist(p, c); math.Abs(r-10) > 1e-9 {
			t.Errorf("vertex %d has radius %g", i, r)
		}
	}
	want := vec.Vec2{X: 50, Y: 40}
	if d := cmp.Diff(want, tri[top], cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("apex (-want +got):\n%s", d)
	}

	// The base is horizontal.
	var base []vec.Vec2
	for i, p := range tri {
		if i != top {
			base = append(base, p)
		}
	}
	if math.Abs(base[0].Y-base[1].Y) > 1e-9 {
		t.Errorf("base is not horizontal: %v", base)
	}
}

func TestPolygonDegenerate(t *testing.T) {
	if p := Polygon(vec.Vec2{}, 1, 2, 0); p != nil {
		t.Errorf("got %v", p)
	}
}

func TestPolygonRotation(t *testing.T) {
	c := vec.Vec2{X: 1, Y: 1}
	a := Polygon(c, 2, 6, 15)
	b := Rotate(Polygon(c, 2, 6, 0), c, 15)
	if d := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestStar(t *testing.T) {
	for _, n := range []int{-1, 0, 3, 4} {
		if s := Star(vec.Vec2{}, 10, 5, n, 0); s != nil {
			t.Errorf("%d points: got %d vertices", n, len(s))
		}
	}

	c := vec.Vec2{X: 3, Y: 4}
	s := Star(c, 10, 4, 5, 0)
	if len(s) != 10 {
		t.Fatalf("got %d vertices, want 10", len(s))
	}
	for i, p := range s {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if r := dist(p, c); math.Abs(r-want) > 1e-9 {
			t.Errorf("vertex %d has radius %g, want %g", i, r, want)
		}
	}
	// the inner vertex lies half way between two outer vertices
	a0 := math.Atan2(s[0].Y-c.Y, s[0].X-c.X)
	a1 := math.Atan2(s[1].Y-c.Y, s[1].X-c.X)
	diff := math.Mod(a1-a0+4*math.Pi, 2*math.Pi) * 180 / math.Pi
	if math.Abs(diff-36) > 1e-9 {
		t.Errorf("inner offset %g degrees, want 36", diff)
	}
}

func TestReverse(t *testing.T) {
	in := []vec.Vec2{{X: 1}, {X: 2}, {X: 3}}
	got := Reverse(in)
	want := []vec.Vec2{{X: 3}, {X: 2}, {X: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if in[0].X != 1 {
		t.Error("input modified")
	}
}

func TestRotate(t *testing.T) {
	got := Rotate([]vec.Vec2{{X: 2, Y: 1}}, vec.Vec2{X: 1, Y: 1}, 90)
	want := []vec.Vec2{{X: 1, Y: 2}}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestRoundedRect(t *testing.T) {
	curves := RoundedRect(0, 0, 100, 50, Corners{TopLeft: 5, TopRight: 10, BottomRight: 0, BottomLeft: 80})
	if len(curves) != 4 {
		t.Fatalf("got %d curves", len(curves))
	}
	if !curves[0].IsPoint() {
		t.Error("zero radius corner is not degenerate")
	}
	wantStart := []vec.Vec2{
		{X: 100, Y: 0},  // bottom right, radius 0
		{X: 100, Y: 40}, // top right, radius 10
		{X: 5, Y: 50},   // top left, radius 5
		{X: 0, Y: 25},   // bottom left, radius clamped to 25
	}
	for i, b := range curves {
		if d := cmp.Diff(wantStart[i], b[0], cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("corner %d start (-want +got):\n%s", i, d)
		}
	}
	// the last corner ends where the bottom edge starts
	if d := cmp.Diff(vec.Vec2{X: 25, Y: 0}, curves[3][3], cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}
