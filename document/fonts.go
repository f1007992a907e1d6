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
	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/font"
)

// FontOptions select a face within a font family.
type FontOptions struct {
	Bold   bool
	Italic bool

	// Encoding is the name of the text encoding.  The empty string
	// selects the document default.
	Encoding string

	// SubType selects between Type1 and TrueType fonts.  The empty value
	// accepts either.
	SubType font.SubType
}

func (d *Document) request(family string, opt *FontOptions) font.Request {
	req := font.Request{
		Family:   family,
		Weight:   font.WeightNormal,
		Style:    font.StyleNormal,
		Encoding: d.encoding,
	}
	if opt != nil {
		if opt.Bold {
			req.Weight = font.WeightBold
		}
		if opt.Italic {
			req.Style = font.StyleItalic
		}
		if opt.Encoding != "" {
			req.Encoding = opt.Encoding
		}
		req.SubType = opt.SubType
	}
	return req
}

// loadFont returns the metrics and the resource name for a font request.
// Font resources are shared between all pages of the document.
func (d *Document) loadFont(req font.Request) (*fontEntry, error) {
	if e, ok := d.fontRequests[req]; ok {
		d.log.Debug("font cache hit", "font", req.String(), "resource", e.name)
		return e, nil
	}

	m, err := d.provider.Metrics(req)
	if err != nil {
		return nil, &pdfgen.ResourceError{Kind: "font", ID: req.String(), Err: err}
	}

	key := m.Key()
	e, ok := d.fonts[key]
	if !ok {
		name, err := d.addFont(m)
		if err != nil {
			return nil, err
		}
		e = &fontEntry{metrics: m, name: name}
		d.fonts[key] = e
		d.log.Debug("font loaded",
			"font", req.String(), "name", m.FontName, "resource", name)
	}
	d.fontRequests[req] = e
	return e, nil
}

func (d *Document) addFont(m *font.Metrics) (pdfgen.Name, error) {
	res := m.Resource()
	if enc := m.EncodingResource(); enc != nil {
		encName, err := d.asm.Add(enc)
		if err != nil {
			return "", err
		}
		res.EncodingRef = encName
	}
	return d.asm.Add(res)
}

// Font returns a font of the given family and size.  The size is given in
// points.
func (d *Document) Font(family string, size float64, opt *FontOptions) (*font.Font, error) {
	req := d.request(family, opt)
	e, err := d.loadFont(req)
	if err != nil {
		return nil, err
	}
	return &font.Font{
		Metrics:  e.metrics,
		Request:  req,
		Resource: e.name,
		Size:     size,
	}, nil
}

// Variant returns the font from the same family as f with the given weight
// and slant.
func (d *Document) Variant(f *font.Font, bold, italic bool) (*font.Font, error) {
	req := f.Request
	req.Weight = font.WeightNormal
	if bold {
		req.Weight = font.WeightBold
	}
	req.Style = font.StyleNormal
	if italic {
		req.Style = font.StyleItalic
	}
	e, err := d.loadFont(req)
	if err != nil {
		return nil, err
	}
	g := *f
	g.Metrics = e.metrics
	g.Request = req
	g.Resource = e.name
	return &g, nil
}

// Color resolves a color name using the color table of the document.
func (d *Document) Color(name string) (color.Value, error) {
	return d.resolveColor(color.Named(name))
}

func (d *Document) resolveColor(c color.Color) (color.Value, error) {
	v, err := d.colors.Resolve(c)
	if err != nil {
		return color.Value{}, &pdfgen.ResourceError{Kind: "color", ID: colorID(c), Err: err}
	}
	return v, nil
}

func colorID(c color.Color) string {
	if n, ok := c.(color.Named); ok {
		return string(n)
	}
	return ""
}
