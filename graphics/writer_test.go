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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/pdfenc"
	"seehuhn.de/go/pdfgen/font/standard"
)

var (
	red  = color.Value{Space: color.DeviceRGB, C: [4]float64{1, 0, 0}}
	blue = color.Value{Space: color.DeviceRGB, C: [4]float64{0, 0, 1}}
	gray = color.Value{Space: color.DeviceGray, C: [4]float64{0.5}}
)

func helvetica(size float64) *font.Font {
	return &font.Font{
		Metrics:  standard.Helvetica.Metrics(pdfenc.WinAnsi),
		Resource: "F1",
		Size:     size,
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestWriterOutput(t *testing.T) {
	cases := []struct {
		name string
		draw func(w *Writer)
		want string
	}{
		{
			name: "connected lines",
			draw: func(w *Writer) {
				w.MoveTo(pt(10, 10))
				w.LineTo(pt(20, 10))
				w.LineTo(pt(20, 20))
			},
			want: "10 10 m\n20 10 l\n20 20 l\nS\n",
		},
		{
			name: "disjoint move strokes",
			draw: func(w *Writer) {
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(10, 0))
				w.MoveTo(pt(10, 0)) // continues the subpath
				w.LineTo(pt(10, 10))
				w.MoveTo(pt(50, 50))
				w.LineTo(pt(60, 60))
			},
			want: "0 0 m\n10 0 l\n10 10 l\nS\n50 50 m\n60 60 l\nS\n",
		},
		{
			name: "stroke change flushes",
			draw: func(w *Writer) {
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(10, 0))
				w.SetLineWidth(2)
				w.LineTo(pt(20, 0))
			},
			want: "0 0 m\n10 0 l\nS\n2 w\n10 0 m\n20 0 l\nS\n",
		},
		{
			name: "unchanged parameters are written once",
			draw: func(w *Writer) {
				w.SetLineColor(red)
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(1, 0))
				w.SetLineColor(red)
				w.MoveTo(pt(5, 5))
				w.LineTo(pt(6, 5))
			},
			want: "1 0 0 RG\n0 0 m\n1 0 l\nS\n5 5 m\n6 5 l\nS\n",
		},
		{
			name: "dash pattern",
			draw: func(w *Writer) {
				w.SetLineDash(Dash{Pattern: []float64{4, 2}})
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(1, 0))
			},
			want: "[4 2] 0 d\n0 0 m\n1 0 l\nS\n",
		},
		{
			name: "filled shape",
			draw: func(w *Writer) {
				w.SetFillColor(gray)
				w.Shape(Paint{Fill: true}, func() {
					w.Rectangle(0, 0, 10, 20)
				})
			},
			want: "0.5 g\n0 0 10 20 re\nf\n",
		},
		{
			name: "hollow shape",
			draw: func(w *Writer) {
				w.Shape(Paint{Fill: true, Stroke: true, EvenOdd: true}, func() {
					w.Rectangle(0, 0, 10, 10)
					w.Rectangle(2, 2, 6, 6)
				})
			},
			want: "0 0 10 10 re\n2 2 6 6 re\nB*\n",
		},
		{
			name: "clip",
			draw: func(w *Writer) {
				w.Shape(Paint{Clip: true}, func() {
					w.Rectangle(0, 0, 10, 20)
				})
			},
			want: "0 0 10 20 re\nW\nn\n",
		},
		{
			name: "manual path",
			draw: func(w *Writer) {
				w.BeginPath(nil, &blue)
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(10, 0))
				w.LineTo(pt(10, 10))
				w.ClosePath()
				w.FillPath()
			},
			want: "0 0 1 rg\n0 0 m\n10 0 l\n10 10 l\nh\nf\n",
		},
		{
			name: "save and restore",
			draw: func(w *Writer) {
				w.SetLineWidth(3)
				w.Save()
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(1, 0))
				w.Restore()
				w.MoveTo(pt(5, 5))
				w.LineTo(pt(6, 5))
			},
			want: "q\n3 w\n0 0 m\n1 0 l\nS\nQ\n3 w\n5 5 m\n6 5 l\nS\n",
		},
		{
			name: "close restores",
			draw: func(w *Writer) {
				w.Save()
				w.Save()
			},
			want: "q\nq\nQ\nQ\n",
		},
		{
			name: "text",
			draw: func(w *Writer) {
				w.SetFont(helvetica(12))
				w.BeginText()
				w.SetTextMatrix(matrix.Matrix{1, 0, 0, 1, 72, 700})
				w.ShowText([]byte("Hi (x)"))
				w.MoveText(0, -14)
				w.ShowText([]byte("again"))
				w.EndText()
			},
			want: "BT\n1 0 0 1 72 700 Tm\n/F1 12 Tf\n(Hi \\(x\\)) Tj\n0 -14 Td\n(again) Tj\nET\n",
		},
		{
			name: "text after lines",
			draw: func(w *Writer) {
				w.SetFont(helvetica(10))
				w.MoveTo(pt(0, 0))
				w.LineTo(pt(1, 1))
				w.BeginText()
				w.ShowText([]byte("x"))
				w.LineTo(pt(2, 2))
			},
			want: "0 0 m\n1 1 l\nS\nBT\n/F1 10 Tf\n(x) Tj\nET\n1 1 m\n2 2 l\nS\n",
		},
		{
			name: "text parameters",
			draw: func(w *Writer) {
				w.SetFont(helvetica(12))
				w.SetFontColor(red)
				w.SetRenderMode(RenderStroke)
				w.SetVAlign(VAlignTop)
				w.SetCharSpacing(0.5)
				w.BeginText()
				w.ShowText([]byte("a"))
				w.ShowText([]byte("b"))
			},
			want: "BT\n1 0 0 rg\n/F1 12 Tf\n0.5 Tc\n1 Tr\n-8.616 Ts\n(a) Tj\n(b) Tj\nET\n",
		},
		{
			name: "image",
			draw: func(w *Writer) {
				w.DrawXObject("Im1", matrix.Matrix{100, 0, 0, 50, 10, 20})
			},
			want: "q\n100 0 0 50 10 20 cm\n/Im1 Do\nQ\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			c.draw(w)
			err := w.Close()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, buf.String()); d != "" {
				t.Errorf("content stream (-want +got):\n%s", d)
			}
		})
	}
}

func TestManualPathColors(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.SetFillColor(gray)
	err := w.BeginPath(&red, &blue)
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Properties().LineColor; got != red {
		t.Errorf("line color inside path: got %v", got)
	}
	w.Rectangle(0, 0, 1, 1)
	err = w.FillAndStrokePath()
	if err != nil {
		t.Fatal(err)
	}
	p := w.Properties()
	if p.LineColor != color.Black || p.FillColor != gray {
		t.Errorf("colors not restored: %v %v", p.LineColor, p.FillColor)
	}
}

func TestPathErrors(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	err := w.FillPath()
	if !errors.Is(err, pdfgen.ErrNotInPath) {
		t.Errorf("FillPath without path: got %v", err)
	}
	var usage *pdfgen.UsageError
	if !errors.As(err, &usage) || usage.Op != "FillPath" {
		t.Errorf("wrong error type %T", err)
	}

	w.Rectangle(0, 0, 1, 1)
	if !errors.Is(w.Err, pdfgen.ErrNotInPath) {
		t.Errorf("Rectangle outside of path: got %v", w.Err)
	}

	w = NewWriter(&bytes.Buffer{})
	if err := w.BeginPath(nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := w.BeginPath(nil, nil); err == nil {
		t.Error("nested path not detected")
	}
	if err := w.BeginText(); err == nil {
		t.Error("text inside path not detected")
	}
	if err := w.Close(); err == nil {
		t.Error("open path at Close not detected")
	}
}

func TestShowTextWithoutFont(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.BeginText()
	w.ShowText([]byte("x"))
	var usage *pdfgen.UsageError
	if !errors.As(w.Err, &usage) {
		t.Errorf("expected usage error, got %v", w.Err)
	}
}

func TestRestoreUnbalanced(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.Restore(); err == nil {
		t.Error("unbalanced Restore not detected")
	}
}

func TestClosed(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if !w.Closed() {
		t.Error("writer not marked as closed")
	}
	w.MoveTo(pt(1, 1))
	w.LineTo(pt(2, 2))
	if w.Err == nil {
		t.Error("drawing on closed writer not detected")
	}
}

func TestQuote(t *testing.T) {
	got := quote([]byte("a\\b(c)\r"))
	want := `(a\\b\(c\)\r)`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
