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

// Package standard provides metrics for the Latin fonts among the 14
// standard PDF fonts.  These fonts are available in every PDF viewer and
// need not be embedded.
package standard

import (
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// Font identifies the individual fonts.
type Font string

// Constants for the standard PDF fonts with a Latin character set.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
)

// All lists the fonts defined in this package.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
}

type faceInfo struct {
	widths      *[256]uint16 // nil for Courier
	bbox        rect.Rect
	capHeight   float64
	xHeight     float64
	ascent      float64
	descent     float64
	stemV       float64
	stemH       float64
	italicAngle float64
}

var faces = map[Font]*faceInfo{
	Courier: {
		bbox: rect.Rect{LLx: -23, LLy: -250, URx: 715, URy: 805}, capHeight: 562, xHeight: 426,
		ascent: 629, descent: -157, stemV: 51, stemH: 51,
	},
	CourierBold: {
		bbox: rect.Rect{LLx: -113, LLy: -250, URx: 749, URy: 801}, capHeight: 562, xHeight: 439,
		ascent: 629, descent: -157, stemV: 106, stemH: 84,
	},
	CourierOblique: {
		bbox: rect.Rect{LLx: -27, LLy: -250, URx: 849, URy: 805}, capHeight: 562, xHeight: 426,
		ascent: 629, descent: -157, stemV: 51, stemH: 51, italicAngle: -12,
	},
	CourierBoldOblique: {
		bbox: rect.Rect{LLx: -57, LLy: -250, URx: 869, URy: 801}, capHeight: 562, xHeight: 439,
		ascent: 629, descent: -157, stemV: 106, stemH: 84, italicAngle: -12,
	},
	Helvetica: {
		widths: &helveticaWidths,
		bbox:   rect.Rect{LLx: -166, LLy: -225, URx: 1000, URy: 931}, capHeight: 718, xHeight: 523,
		ascent: 718, descent: -207, stemV: 88, stemH: 76,
	},
	HelveticaBold: {
		widths: &helveticaBoldWidths,
		bbox:   rect.Rect{LLx: -170, LLy: -228, URx: 1003, URy: 962}, capHeight: 718, xHeight: 532,
		ascent: 718, descent: -207, stemV: 140, stemH: 118,
	},
	HelveticaOblique: {
		widths: &helveticaWidths,
		bbox:   rect.Rect{LLx: -170, LLy: -225, URx: 1116, URy: 931}, capHeight: 718, xHeight: 523,
		ascent: 718, descent: -207, stemV: 88, stemH: 76, italicAngle: -12,
	},
	HelveticaBoldOblique: {
		widths: &helveticaBoldWidths,
		bbox:   rect.Rect{LLx: -174, LLy: -228, URx: 1114, URy: 962}, capHeight: 718, xHeight: 532,
		ascent: 718, descent: -207, stemV: 140, stemH: 118, italicAngle: -12,
	},
	TimesRoman: {
		widths: &timesRomanWidths,
		bbox:   rect.Rect{LLx: -168, LLy: -218, URx: 1000, URy: 898}, capHeight: 662, xHeight: 450,
		ascent: 683, descent: -217, stemV: 84, stemH: 28,
	},
	TimesBold: {
		widths: &timesBoldWidths,
		bbox:   rect.Rect{LLx: -168, LLy: -218, URx: 1000, URy: 935}, capHeight: 676, xHeight: 461,
		ascent: 683, descent: -217, stemV: 139, stemH: 44,
	},
	TimesItalic: {
		widths: &timesItalicWidths,
		bbox:   rect.Rect{LLx: -169, LLy: -217, URx: 1010, URy: 883}, capHeight: 653, xHeight: 441,
		ascent: 683, descent: -217, stemV: 76, stemH: 32, italicAngle: -15.5,
	},
	TimesBoldItalic: {
		widths: &timesBoldItalicWidths,
		bbox:   rect.Rect{LLx: -200, LLy: -218, URx: 996, URy: 921}, capHeight: 669, xHeight: 462,
		ascent: 683, descent: -217, stemV: 121, stemH: 42, italicAngle: -15,
	},
}

// Metrics returns the metrics of the font in the given encoding.
func (f Font) Metrics(enc *pdfenc.Encoding) *font.Metrics {
	info := faces[f]
	if info == nil {
		return nil
	}
	family := strings.SplitN(string(f), "-", 2)[0]

	m := &font.Metrics{
		FontName:           string(f),
		FullName:           fullName(f),
		SubType:            font.Type1,
		Encoding:           enc,
		Ascent:             info.ascent,
		Descent:            info.descent,
		CapHeight:          info.capHeight,
		XHeight:            info.xHeight,
		BBox:               info.bbox,
		ItalicAngle:        info.italicAngle,
		StemV:              info.stemV,
		StemH:              info.stemH,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		Builtin:            true,
		Flags: font.MakeFlags(font.Properties{
			IsFixedPitch: family == "Courier",
			IsSerif:      family != "Helvetica",
			IsItalic:     info.italicAngle != 0,
		}),
	}

	var total float64
	var count int
	for c := range 256 {
		code := byte(c)
		if enc.GlyphName(code) == ".notdef" {
			continue
		}
		var w float64
		if info.widths == nil {
			w = 600
		} else if enc == pdfenc.WinAnsi {
			w = float64(info.widths[code])
		} else if wc, ok := pdfenc.WinAnsi.Code(enc.Decode(code)); ok {
			w = float64(info.widths[wc])
		}
		m.Widths[code] = w
		if w > 0 {
			total += w
			count++
			m.MaxWidth = max(m.MaxWidth, w)
		}
	}
	if count > 0 {
		m.AvgWidth = total / float64(count)
	}
	return m
}

func fullName(f Font) string {
	name := strings.ReplaceAll(string(f), "-", " ")
	name = strings.Replace(name, "BoldOblique", "Bold Oblique", 1)
	name = strings.Replace(name, "BoldItalic", "Bold Italic", 1)
	return name
}

var familyAlias = map[string]string{
	"helvetica":       "Helvetica",
	"arial":           "Helvetica",
	"sans":            "Helvetica",
	"sans-serif":      "Helvetica",
	"times":           "Times",
	"times-roman":     "Times",
	"times new roman": "Times",
	"serif":           "Times",
	"courier":         "Courier",
	"courier new":     "Courier",
	"monospace":       "Courier",
}

// Select returns the standard font for the given family and style.
// The second return value is false if the family is not known.
func Select(family string, bold, italic bool) (Font, bool) {
	fam, ok := familyAlias[strings.ToLower(family)]
	if !ok {
		for _, f := range All {
			if string(f) == family {
				return f, true
			}
		}
		return "", false
	}

	var name string
	switch fam {
	case "Times":
		switch {
		case bold && italic:
			name = "Times-BoldItalic"
		case bold:
			name = "Times-Bold"
		case italic:
			name = "Times-Italic"
		default:
			name = "Times-Roman"
		}
	default:
		switch {
		case bold && italic:
			name = fam + "-BoldOblique"
		case bold:
			name = fam + "-Bold"
		case italic:
			name = fam + "-Oblique"
		default:
			name = fam
		}
	}
	return Font(name), true
}

// Provider is a [font.Provider] for the standard fonts.
var Provider font.Provider = font.ProviderFunc(metrics)

func metrics(req font.Request) (*font.Metrics, error) {
	if req.SubType != "" && req.SubType != font.Type1 {
		return nil, &font.UnknownFontError{Request: req}
	}
	f, ok := Select(req.Family, req.IsBold(), req.IsItalic())
	if !ok {
		return nil, &font.UnknownFontError{Request: req}
	}
	enc, ok := pdfenc.ByName(req.Encoding)
	if !ok {
		return nil, &font.UnsupportedEncodingError{Encoding: req.Encoding}
	}
	return f.Metrics(enc), nil
}
