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
	"errors"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/text"
	"seehuhn.de/go/pdfgen/text/markup"
)

// Align is the horizontal alignment of paragraph lines.
type Align uint8

// Possible values for Align.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// ParagraphOptions control the layout of a paragraph.
type ParagraphOptions struct {
	// Width is the line width, in the current unit.  If zero, the lines
	// extend from the pen to the right edge of the content area.
	Width float64

	Align Align

	// LineHeight multiplies the height of each line.
	// The default is 1.
	LineHeight float64

	// Bullet, if set, names a bullet which is drawn in front of the
	// first line.
	Bullet string

	// Height, if positive, limits the height of the paragraph, in the
	// current unit.  Lines which do not fit are left in the text given to
	// RichParagraph.
	Height float64
}

var errNoFont = errors.New("no font selected")

// SetFont selects the font for subsequent text.  The size is given in
// points.
func (p *Page) SetFont(family string, size float64, opt *FontOptions) (*font.Font, error) {
	if err := p.check("SetFont"); err != nil {
		return nil, err
	}
	f, err := p.doc.Font(family, size, opt)
	if err != nil {
		return nil, err
	}
	p.UseFont(f)
	return f, nil
}

// UseFont selects a font which was obtained from [Document.Font] or
// [Document.Variant].
func (p *Page) UseFont(f *font.Font) {
	p.w.SetFont(f)
	if f != nil {
		p.fonts[f.Resource] = true
	}
}

// Font returns the current font, or nil if no font has been selected.
func (p *Page) Font() *font.Font {
	return p.w.Properties().Font
}

// encode converts s into character codes for f.  Characters which
// cannot be represented are shown as "?" and logged.
func (p *Page) encode(f *font.Font, s string) []byte {
	codes, missing := f.Encode(s)
	if len(missing) > 0 {
		p.doc.log.Warn("characters not representable in font",
			"font", f.Metrics.FontName, "encoding", f.Request.Encoding,
			"missing", string(missing))
	}
	return codes
}

// advance returns the width of the codes in points, taking the text
// parameters of props into account.
func advance(props graphics.Properties, codes []byte) float64 {
	f := props.Font
	w := f.Width(codes) + props.CharSpacing*float64(len(codes))
	for _, c := range codes {
		if c == ' ' {
			w += props.WordSpacing
		}
	}
	return w * props.Scale / 100
}

// TextWidth returns the width of s in the current font, in the current
// unit.  The result is zero if no font is selected.
func (p *Page) TextWidth(s string) float64 {
	props := p.w.Properties()
	if props.Font == nil {
		return 0
	}
	codes, _ := props.Font.Encode(s)
	return p.sys.FromLength(advance(props, codes))
}

// Print shows s at the pen position and moves the pen to the end of the
// text.  The pen is on the baseline, unless a different vertical
// alignment has been selected.
func (p *Page) Print(s string) error {
	if err := p.check("Print"); err != nil {
		return err
	}
	props := p.w.Properties()
	if props.Font == nil {
		return pdfgen.Usage("Print", errNoFont)
	}
	if s == "" {
		return nil
	}

	codes := p.encode(props.Font, s)
	pos := p.toPage(p.pen.X, p.pen.Y)
	w := p.w
	if err := w.BeginText(); err != nil {
		return err
	}
	w.SetTextMatrix(matrix.Translate(pos.X, pos.Y))
	w.ShowText(codes)
	if w.Err != nil {
		return w.Err
	}

	width := advance(props, codes)
	if p.underline {
		p.underlineText(props, pos.X, pos.Y, width)
	}
	p.pen.X += p.sys.FromLength(width)
	return w.Err
}

// PrintAt moves the pen to (x, y) and shows s.
func (p *Page) PrintAt(x, y float64, s string) error {
	p.pen = vec.Vec2{X: x, Y: y}
	return p.Print(s)
}

// underlineText draws an underline below text of the given width.
// The coordinates are PDF coordinates of the start of the baseline.
func (p *Page) underlineText(props graphics.Properties, x, y, width float64) {
	f := props.Font
	w := p.w
	th := f.UnderlineThickness()
	if th <= 0 {
		th = f.Size / 20
	}
	w.SetFont(f)
	w.SetVAlign(props.VAlign)
	pos := y + w.TextRise() + f.UnderlinePosition()

	w.SetFillColor(props.FontColor)
	w.Shape(graphics.Paint{Fill: true}, func() {
		w.Rectangle(x, pos-th/2, width, th)
	})
	w.SetFillColor(props.FillColor)
}

// Wrap breaks s into lines which fit into the given width, in the current
// unit, using the current font and text parameters.
func (p *Page) Wrap(s string, width float64) ([]string, error) {
	props := p.w.Properties()
	if props.Font == nil {
		return nil, pdfgen.Usage("Wrap", errNoFont)
	}
	rt := p.richText(props)
	rt.Append(s, text.Style{Font: props.Font, Color: props.FontColor})
	var res []string
	for l := range rt.Lines(p.textWidth(props, width)) {
		res = append(res, l.Text())
	}
	return res, nil
}

func (p *Page) richText(props graphics.Properties) *text.RichText {
	return text.New(text.Spacing{Char: props.CharSpacing, Word: props.WordSpacing})
}

// textWidth converts a width in the current unit into the unscaled width
// in text space.
func (p *Page) textWidth(props graphics.Properties, width float64) float64 {
	w := p.sys.Length(width)
	if props.Scale > 0 {
		w = w * 100 / props.Scale
	}
	return w
}

// Paragraph shows s as a paragraph, wrapped using the current font and
// text parameters.  The baseline of the first line is at the pen
// position.  Afterwards, the pen is on the baseline of the line following
// the paragraph.
func (p *Page) Paragraph(s string, opt *ParagraphOptions) error {
	if err := p.check("Paragraph"); err != nil {
		return err
	}
	props := p.w.Properties()
	if props.Font == nil {
		return pdfgen.Usage("Paragraph", errNoFont)
	}
	rt := p.richText(props)
	rt.Append(s, text.Style{Font: props.Font, Color: props.FontColor, Underline: p.underline})
	return p.RichParagraph(rt, opt)
}

// HTML shows an HTML fragment as a paragraph.  The current font is used
// as the base font.
func (p *Page) HTML(src string, opt *ParagraphOptions) error {
	return p.markup("HTML", src, opt, markup.AppendHTML)
}

// Markdown shows Markdown text as a paragraph.  The current font is used
// as the base font.
func (p *Page) Markdown(src string, opt *ParagraphOptions) error {
	return p.markup("Markdown", src, opt, markup.AppendMarkdown)
}

type appendFunc func(rt *text.RichText, src string, base text.Style, r markup.Resolver) error

func (p *Page) markup(op, src string, opt *ParagraphOptions, parse appendFunc) error {
	if err := p.check(op); err != nil {
		return err
	}
	props := p.w.Properties()
	if props.Font == nil {
		return pdfgen.Usage(op, errNoFont)
	}
	rt := p.richText(props)
	base := text.Style{Font: props.Font, Color: props.FontColor, Underline: p.underline}
	if err := parse(rt, src, base, p.doc); err != nil {
		return err
	}
	return p.RichParagraph(rt, opt)
}

// RichParagraph shows rich text as a paragraph.  The text is consumed.
// See [Page.Paragraph] for the placement of the lines.
func (p *Page) RichParagraph(rt *text.RichText, opt *ParagraphOptions) error {
	if err := p.check("RichParagraph"); err != nil {
		return err
	}
	if opt == nil {
		opt = &ParagraphOptions{}
	}
	lineHeight := opt.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}

	w := p.w
	props := w.Properties()
	x0, y0 := p.pen.X, p.pen.Y
	y := y0
	width := opt.Width
	if width <= 0 {
		cw, _ := p.sys.ContentSize()
		width = cw - x0
	}

	indent := 0.0
	if opt.Bullet != "" {
		b, err := p.doc.bullet(opt.Bullet)
		if err != nil {
			return err
		}
		size := 12.0
		if props.Font != nil {
			size = props.Font.Size
		}
		err = p.WithState(func() error {
			w.SetFillColor(props.FontColor)
			return b.Render(p, x0, y, size)
		})
		if err != nil {
			return err
		}
		indent = p.sys.FromLength(b.Width)
	}

	avail := p.textWidth(props, width-indent)
	var err error
	for line := range rt.Lines(avail) {
		if opt.Height > 0 && y+p.sys.FromLength(line.Height()*lineHeight)-y0 > opt.Height {
			rt.Unread(line)
			break
		}
		err = p.showLine(line, props, x0+indent, y, avail, opt.Align)
		if err != nil {
			break
		}
		y += p.sys.FromLength(line.Height() * lineHeight)
	}

	w.SetProperties(props)
	p.pen = vec.Vec2{X: x0, Y: y}
	if err != nil {
		return err
	}
	return w.Err
}

// showLine shows one line of a paragraph with its baseline starting at
// (x, y).  The width avail is in unscaled text space units.
func (p *Page) showLine(line *text.Line, props graphics.Properties, x, y, avail float64, align Align) error {
	if len(line.Pieces) == 0 {
		return nil
	}
	w := p.w
	scale := props.Scale / 100

	var adj text.Adjust
	offset := 0.0
	switch align {
	case AlignRight:
		offset = (avail - line.Width) * scale
	case AlignCenter:
		offset = (avail - line.Width) * scale / 2
	case AlignJustify:
		if !line.Last && !line.Newline {
			adj = text.Justify(line, avail)
		}
	}
	w.SetCharSpacing(props.CharSpacing + adj.CharSpacing)
	w.SetWordSpacing(props.WordSpacing + adj.WordSpacing)

	pos := p.toPage(x, y)
	pos.X += offset
	if err := w.BeginText(); err != nil {
		return err
	}
	w.SetTextMatrix(matrix.Translate(pos.X, pos.Y))

	type span struct {
		x, width float64
		props    graphics.Properties
	}
	var underlines []span
	cur := pos.X
	for i, piece := range line.Pieces {
		if piece.Font == nil {
			continue
		}
		p.UseFont(piece.Font)
		if piece.Color.Space != 0 {
			w.SetFontColor(piece.Color)
		} else {
			w.SetFontColor(props.FontColor)
		}
		shown := piece.Shown()
		codes := p.encode(piece.Font, shown)
		w.ShowText(codes)
		if w.Err != nil {
			return w.Err
		}

		pp := w.Properties()
		pw := piece.Width + adj.CharSpacing*float64(piece.CharCount)
		spaces := strings.Count(shown, " ")
		if i == len(line.Pieces)-1 && strings.HasSuffix(piece.Text, " ") {
			spaces--
		}
		pw += adj.WordSpacing * float64(spaces)
		pw *= scale
		if piece.Underline {
			underlines = append(underlines, span{x: cur, width: pw, props: pp})
		}
		cur += pw
	}
	for _, u := range underlines {
		p.underlineText(u.props, u.x, pos.Y, u.width)
	}
	return w.Err
}
