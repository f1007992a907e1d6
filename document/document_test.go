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

package document

import (
	"bytes"
	"errors"
	goimage "image"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/coords"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/text"
)

const sentence = "This is the first day of the *rest* of your life--or so it has been said (by a forgotten pundit)."

// newTestDoc returns a document with 200x100pt pages.
func newTestDoc(t *testing.T) (*Document, *pdfgen.MemoryAssembler) {
	t.Helper()
	asm := pdfgen.NewMemoryAssembler()
	d, err := New(&Options{
		PageSize:  rect.Rect{URx: 200, URy: 100},
		Assembler: asm,
	})
	if err != nil {
		t.Fatal(err)
	}
	return d, asm
}

func openPage(t *testing.T, d *Document) *Page {
	t.Helper()
	p, err := d.OpenPage(nil)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMarginsInPoints(t *testing.T) {
	d, err := New(&Options{Unit: "cm"})
	if err != nil {
		t.Fatal(err)
	}
	p, err := d.OpenPage(&PageOptions{Margins: []float64{1, 2, 3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Margins("pt")
	if err != nil {
		t.Fatal(err)
	}
	want := coords.Margins{Top: 28.35, Right: 56.7, Bottom: 85.05, Left: 113.4}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("margins mismatch (-want +got):\n%s", d)
	}

	cm, err := p.Margins("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(coords.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}, cm, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("margins in cm (-want +got):\n%s", d)
	}
}

func TestMarginTransform(t *testing.T) {
	d, asm := newTestDoc(t)
	p := openPage(t, d)

	if _, err := p.SetMargins(10); err != nil {
		t.Fatal(err)
	}
	if err := p.Line(0, 0, 20, 0); err != nil {
		t.Fatal(err)
	}
	prev, err := p.SetMargins(5)
	if err != nil {
		t.Fatal(err)
	}
	if prev.Top != 10 {
		t.Errorf("previous margin: got %g, want 10", prev.Top)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	want := "q\n1 0 0 1 10 -10 cm\n0 100 m\n20 100 l\nS\nQ\nq\n1 0 0 1 5 -5 cm\nQ\n"
	pages := asm.Pages()
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if got := string(pages[0].Content); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}

	w, h := p.Size()
	if w != 190 || h != 90 {
		t.Errorf("content size: got %gx%g, want 190x90", w, h)
	}
}

func TestMarginsInsideState(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetMargins(10); err != nil {
		t.Fatal(err)
	}
	err := p.WithState(func() error {
		_, err := p.SetMargins(20)
		return err
	})
	var usage *pdfgen.UsageError
	if !errors.As(err, &usage) {
		t.Errorf("expected a usage error, got %v", err)
	}
}

func TestShapes(t *testing.T) {
	cases := []struct {
		name string
		draw func(p *Page) error
		want string
	}{
		{
			name: "rectangle",
			draw: func(p *Page) error {
				return p.Rectangle(10, 10, 30, 20, nil)
			},
			want: "10 70 30 20 re\nS\n",
		},
		{
			name: "filled rectangle",
			draw: func(p *Page) error {
				return p.Rectangle(10, 10, 30, 20, &ShapeOptions{
					Border: None,
					Fill:   Use(color.RGB{R: 255}),
				})
			},
			want: "1 0 0 rg\n10 70 30 20 re\nf\n",
		},
		{
			name: "current colors",
			draw: func(p *Page) error {
				return p.Rectangle(10, 10, 30, 20, &ShapeOptions{Fill: Current, EvenOdd: true})
			},
			want: "10 70 30 20 re\nB*\n",
		},
		{
			name: "reversed rectangle",
			draw: func(p *Page) error {
				return p.Rectangle(0, 0, 10, 10, &ShapeOptions{Reverse: true})
			},
			want: "0 100 m\n10 100 l\n10 90 l\n0 90 l\nh\nS\n",
		},
		{
			name: "polyline",
			draw: func(p *Page) error {
				return p.PolyLine([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, nil)
			},
			want: "0 100 m\n10 100 l\n10 90 l\nS\n",
		},
		{
			name: "star with four points",
			draw: func(p *Page) error {
				return p.Star(50, 50, 20, 10, 4, nil)
			},
			want: "",
		},
		{
			name: "zero radius",
			draw: func(p *Page) error {
				return p.Circle(50, 50, 0, nil)
			},
			want: "",
		},
		{
			name: "star with zero radius",
			draw: func(p *Page) error {
				return p.Star(50, 50, 0, 0, 5, nil)
			},
			want: "",
		},
		{
			name: "polygon with zero radius",
			draw: func(p *Page) error {
				return p.Polygon(50, 50, 0, 6, nil)
			},
			want: "",
		},
		{
			name: "empty arc",
			draw: func(p *Page) error {
				return p.Arc(50, 50, 10, 30, 30, nil)
			},
			want: "",
		},
		{
			name: "lines then shape",
			draw: func(p *Page) error {
				if err := p.Line(0, 0, 10, 0); err != nil {
					return err
				}
				return p.Rectangle(0, 0, 5, 5, &ShapeOptions{Border: None, Fill: Current})
			},
			want: "0 100 m\n10 100 l\nS\n0 95 5 5 re\nf\n",
		},
		{
			name: "clip",
			draw: func(p *Page) error {
				return p.WithClip(func(opt *ShapeOptions) error {
					return p.Rectangle(0, 0, 10, 10, opt)
				}, func() error {
					return p.Line(0, 0, 10, 10)
				})
			},
			want: "q\n0 90 10 10 re\nW\nn\n0 100 m\n10 90 l\nS\nQ\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, _ := newTestDoc(t)
			p := openPage(t, d)
			if err := c.draw(p); err != nil {
				t.Fatal(err)
			}
			if err := p.Flush(); err != nil {
				t.Fatal(err)
			}
			if got := string(p.Content()); got != c.want {
				t.Errorf("wrong content:\n%s\nwant:\n%s", got, c.want)
			}
		})
	}
}

func TestCircle(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if err := p.Circle(50, 50, 10, nil); err != nil {
		t.Fatal(err)
	}
	got := string(p.Content())
	if !strings.HasPrefix(got, "60 50 m\n60 55.5228 55.5228 60 50 60 c\n") {
		t.Errorf("unexpected start of circle:\n%s", got)
	}
	if n := strings.Count(got, " c\n"); n != 4 {
		t.Errorf("got %d curves, want 4", n)
	}
	if !strings.HasSuffix(got, "h\nS\n") {
		t.Errorf("circle is not closed and stroked:\n%s", got)
	}
}

func TestManualPath(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)

	err := p.Rectangle(0, 0, 10, 10, &ShapeOptions{Path: true})
	if !errors.Is(err, pdfgen.ErrNotInPath) {
		t.Errorf("shape outside of path: got %v", err)
	}
	if err := p.FillPath(); !errors.Is(err, pdfgen.ErrNotInPath) {
		t.Errorf("FillPath outside of path: got %v", err)
	}

	err = p.WithPath(&PathOptions{Fill: Use(color.Gray(0.5))}, graphics.Paint{Fill: true, EvenOdd: true}, func() error {
		if err := p.Rectangle(0, 0, 20, 20, nil); err != nil {
			return err
		}
		// inside a manual path, the colors and painting of the path apply
		return p.Rectangle(5, 5, 10, 10, &ShapeOptions{
			Border:  Use(color.RGB{R: 255}),
			Fill:    Use(color.Named("no-such-color")),
			Clip:    true,
			Reverse: true,
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "0.5 g\n0 80 20 20 re\n5 95 m\n15 95 l\n15 85 l\n5 85 l\nh\nf*\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}
	if c := p.Properties().FillColor; c != color.Black {
		t.Errorf("fill color not restored: %v", c)
	}
}

func TestScopeRestoresOnError(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)

	errTest := errors.New("test error")
	err := p.WithRotation(90, 0, 0, func() error {
		p.SetLineWidth(3)
		if err := p.BeginPath(nil); err != nil {
			return err
		}
		return errTest
	})
	if !errors.Is(err, errTest) {
		t.Errorf("got error %v, want %v", err, errTest)
	}
	if w := p.Properties().LineWidth; w != 1 {
		t.Errorf("line width not restored: %g", w)
	}
	if p.Writer().InPath() {
		t.Error("manual path still open")
	}
	if depth := p.Writer().Depth(); depth != 0 {
		t.Errorf("graphics state depth %d, want 0", depth)
	}
	want := "q\n0 1 -1 0 100 100 cm\nQ\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}
}

func TestPageErrors(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)

	if _, err := d.OpenPage(nil); !errors.Is(err, pdfgen.ErrPageOpen) {
		t.Errorf("second OpenPage: got %v", err)
	}
	if err := d.Close(); !errors.Is(err, pdfgen.ErrPageOpen) {
		t.Errorf("Close with open page: got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.LineTo(1, 1); !errors.Is(err, pdfgen.ErrNoPage) {
		t.Errorf("drawing on closed page: got %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.OpenPage(nil); !errors.Is(err, pdfgen.ErrClosed) {
		t.Errorf("OpenPage on closed document: got %v", err)
	}
	if d.NumPages() != 1 {
		t.Errorf("got %d pages, want 1", d.NumPages())
	}
}

func TestUnknownResources(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)

	_, err := p.SetFont("No Such Font", 12, nil)
	var unknown *font.UnknownFontError
	if !errors.As(err, &unknown) {
		t.Errorf("SetFont: got %v", err)
	}
	var resErr *pdfgen.ResourceError
	if !errors.As(err, &resErr) || resErr.Kind != "font" {
		t.Errorf("SetFont: expected a font ResourceError, got %v", err)
	}

	err = p.SetLineColor(color.Named("no-such-color"))
	var unknownColor *color.UnknownColorError
	if !errors.As(err, &unknownColor) {
		t.Errorf("SetLineColor: got %v", err)
	}

	if err := p.SetLinePattern("wavy"); !errors.As(err, &resErr) {
		t.Errorf("SetLinePattern: got %v", err)
	}
	if err := p.Print("x"); !errors.As(err, new(*pdfgen.UsageError)) {
		t.Errorf("Print without font: got %v", err)
	}
}

func TestLinePattern(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if err := p.SetLinePattern("dashed"); err != nil {
		t.Fatal(err)
	}
	if err := p.Line(0, 0, 10, 0); err != nil {
		t.Fatal(err)
	}
	p.Flush()
	want := "[4 2] 0 d\n0 100 m\n10 100 l\nS\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}

	names := d.LinePatterns()
	if d := cmp.Diff([]string{"dashdot", "dashed", "dotted", "solid"}, names); d != "" {
		t.Errorf("line patterns (-want +got):\n%s", d)
	}
}

func TestFontCache(t *testing.T) {
	d, asm := newTestDoc(t)

	var names []pdfgen.Name
	for _, size := range []float64{12, 10} {
		p := openPage(t, d)
		f, err := p.SetFont("Helvetica", size, nil)
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, f.Resource)
		if err := p.PrintAt(0, 20, "x"); err != nil {
			t.Fatal(err)
		}
		if err := p.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if names[0] != names[1] {
		t.Errorf("font resource not shared: %v", names)
	}

	numFonts := 0
	for _, res := range asm.Resources {
		if res.ResourceKind() == pdfgen.KindFont {
			numFonts++
		}
	}
	if numFonts != 1 {
		t.Errorf("got %d font resources, want 1", numFonts)
	}
	for i, page := range asm.Pages() {
		if _, ok := page.Fonts[names[0]]; !ok {
			t.Errorf("page %d does not list the font", i+1)
		}
	}

	// a different face is a different resource
	bold, err := d.Font("Helvetica", 12, &FontOptions{Bold: true})
	if err != nil {
		t.Fatal(err)
	}
	if bold.Resource == names[0] {
		t.Error("bold font shares the regular resource")
	}
}

func TestPrint(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 12, nil); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintAt(10, 20, "Hi"); err != nil {
		t.Fatal(err)
	}
	p.SetUnderline(true)
	if err := p.Print("!"); err != nil {
		t.Fatal(err)
	}

	// H=722, i=222 and !=278 in Helvetica
	want := "BT\n1 0 0 1 10 80 Tm\n/F1 12 Tf\n(Hi) Tj\n" +
		"1 0 0 1 21.328 80 Tm\n(!) Tj\nET\n21.328 78.5 3.336 0.6 re\nf\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}
	x, y := p.Pen()
	if math.Abs(x-24.664) > 1e-9 || y != 20 {
		t.Errorf("pen at (%g, %g), want (24.664, 20)", x, y)
	}
	if w := p.TextWidth("Hi"); math.Abs(w-11.328) > 1e-9 {
		t.Errorf("TextWidth: got %g, want 11.328", w)
	}
}

func TestParagraph(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 12, nil); err != nil {
		t.Fatal(err)
	}

	lines, err := p.Wrap(sentence, 110)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 5 || lines[0] != "This is the first day " {
		t.Errorf("unexpected lines: %q", lines)
	}

	p.SetPen(0, 20)
	if err := p.Paragraph(sentence, &ParagraphOptions{Width: 110}); err != nil {
		t.Fatal(err)
	}
	got := string(p.Content())
	if n := strings.Count(got, " Tj\n"); n != 5 {
		t.Errorf("got %d lines of text, want 5", n)
	}
	for _, tm := range []string{"1 0 0 1 0 80 Tm", "1 0 0 1 0 68.9 Tm", "1 0 0 1 0 35.6 Tm"} {
		if !strings.Contains(got, tm+"\n") {
			t.Errorf("missing %q in\n%s", tm, got)
		}
	}
	if !strings.Contains(got, "(been said \\(by a ) Tj\n") {
		t.Errorf("parentheses not escaped:\n%s", got)
	}
	x, y := p.Pen()
	if x != 0 || math.Abs(y-75.5) > 1e-9 {
		t.Errorf("pen at (%g, %g), want (0, 75.5)", x, y)
	}
}

func TestParagraphTab(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 12, nil); err != nil {
		t.Fatal(err)
	}

	lines, err := p.Wrap("a\tb", 100)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a\tb"}, lines); d != "" {
		t.Errorf("Wrap mismatch (-want +got):\n%s", d)
	}

	p.SetPen(0, 20)
	if err := p.Paragraph("a\tb", nil); err != nil {
		t.Fatal(err)
	}
	if got := string(p.Content()); !strings.Contains(got, "(a    b) Tj\n") {
		t.Errorf("tab not shown as spaces:\n%s", got)
	}
}

func TestParagraphJustify(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 12, nil); err != nil {
		t.Fatal(err)
	}
	p.SetPen(0, 20)
	err := p.Paragraph(sentence, &ParagraphOptions{Width: 110, Align: AlignJustify})
	if err != nil {
		t.Fatal(err)
	}
	got := string(p.Content())
	if !strings.Contains(got, " Tw\n") {
		t.Errorf("no word spacing in justified text:\n%s", got)
	}
	// the word spacing is reset for lines which are not stretched
	if !strings.Contains(got, "\n0 Tw\n") {
		t.Errorf("word spacing not reset:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n(forgotten pundit\\).) Tj\n") {
		t.Errorf("last line is justified:\n%s", got)
	}
	if props := p.Properties(); props.WordSpacing != 0 || props.CharSpacing != 0 {
		t.Errorf("spacing not restored: %g %g", props.CharSpacing, props.WordSpacing)
	}
}

func TestBullet(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 10, nil); err != nil {
		t.Fatal(err)
	}
	p.SetPen(0, 20)
	if err := p.Paragraph("item", &ParagraphOptions{Bullet: "square"}); err != nil {
		t.Fatal(err)
	}
	got := string(p.Content())
	if !strings.HasPrefix(got, "q\n1.5 81.5 3 3 re\nf\nQ\n") {
		t.Errorf("unexpected bullet:\n%s", got)
	}
	if !strings.Contains(got, "1 0 0 1 12 80 Tm\n") {
		t.Errorf("text not indented:\n%s", got)
	}
	x, _ := p.Pen()
	if x != 0 {
		t.Errorf("pen x = %g, want 0", x)
	}

	err := p.Paragraph("item", &ParagraphOptions{Bullet: "no-such-bullet"})
	var resErr *pdfgen.ResourceError
	if !errors.As(err, &resErr) || resErr.Kind != "bullet" {
		t.Errorf("unknown bullet: got %v", err)
	}
}

func TestMarkup(t *testing.T) {
	d, asm := newTestDoc(t)
	p := openPage(t, d)
	if _, err := p.SetFont("Helvetica", 10, nil); err != nil {
		t.Fatal(err)
	}
	p.SetPen(0, 20)
	if err := p.HTML("<p>plain <b>bold</b></p>", nil); err != nil {
		t.Fatal(err)
	}
	if err := p.Markdown("*italic*", nil); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	page := asm.Pages()[0]
	if len(page.Fonts) != 3 {
		t.Errorf("page uses %d fonts, want 3", len(page.Fonts))
	}
}

func TestImage(t *testing.T) {
	img := goimage.NewGray(goimage.Rect(0, 0, 4, 2))
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	d, asm := newTestDoc(t)
	p := openPage(t, d)
	if err := p.Image(data, 10, 10, 40, 0, nil); err != nil {
		t.Fatal(err)
	}
	if err := p.Image(data, 0, 0, 0, 0, nil); err != nil {
		t.Fatal(err)
	}
	want := "q\n40 0 0 20 10 70 cm\n/Im1 Do\nQ\nq\n4 0 0 2 0 98 cm\n/Im1 Do\nQ\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}

	numImages := 0
	for _, res := range asm.Resources {
		if im, ok := res.(*pdfgen.ImageResource); ok {
			numImages++
			if im.Width != 4 || im.Height != 2 || im.Format != "png" {
				t.Errorf("unexpected image resource %+v", im)
			}
		}
	}
	if numImages != 1 {
		t.Errorf("got %d image resources, want 1", numImages)
	}

	err := p.Image([]byte("not an image"), 0, 0, 10, 10, nil)
	var resErr *pdfgen.ResourceError
	if !errors.As(err, &resErr) || resErr.Kind != "image" {
		t.Errorf("invalid image: got %v", err)
	}
}

func TestSubPage(t *testing.T) {
	d, _ := newTestDoc(t)
	p, err := d.OpenPage(&PageOptions{
		Size:    rect.Rect{URx: 200, URy: 200},
		SubPage: &coords.Tile{X: 1, Across: 2, Y: 0, Down: 2, Unscaled: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "q\n1 0 0 1 100 100 cm\n0 0 100 100 re\nW\nn\n"
	if got := string(p.Content()); got != want {
		t.Errorf("wrong content:\n%s\nwant:\n%s", got, want)
	}
	w, h := p.Size()
	if w != 100 || h != 100 {
		t.Errorf("sub-page size %gx%g, want 100x100", w, h)
	}
}

func TestParagraphHeight(t *testing.T) {
	d, _ := newTestDoc(t)
	p := openPage(t, d)
	f, err := p.SetFont("Helvetica", 12, nil)
	if err != nil {
		t.Fatal(err)
	}
	rt := text.New(text.Spacing{})
	rt.Append(sentence, text.Style{Font: f})

	p.SetPen(0, 20)
	err = p.RichParagraph(rt, &ParagraphOptions{Width: 110, Height: 25})
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(p.Content()), " Tj\n"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
	if rest := rt.String(); !strings.HasPrefix(rest, "life--or so") {
		t.Errorf("unexpected remaining text %q", rest)
	}
}
