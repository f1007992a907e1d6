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

// Package sfntfont provides font metrics for TrueType and OpenType fonts.
package sfntfont

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// Provider is a [font.Provider] for sfnt-based fonts.
// Fonts are registered by family and style, either from memory or from
// files.  A request whose family is the name of a .ttf or .otf file loads
// that file.
type Provider struct {
	mu      sync.Mutex
	sources map[faceKey]source
	parsed  map[source]*sfnt.Font
}

type faceKey struct {
	family       string
	bold, italic bool
}

type source struct {
	path string
	data *[]byte
}

// New returns a Provider without any registered fonts.
func New() *Provider {
	return &Provider{
		sources: make(map[faceKey]source),
		parsed:  make(map[source]*sfnt.Font),
	}
}

// Register adds a font, given as the contents of a font file.
func (p *Provider) Register(family string, bold, italic bool, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[faceKey{strings.ToLower(family), bold, italic}] = source{data: &data}
}

// RegisterFile adds a font file.  The file is read on first use.
func (p *Provider) RegisterFile(family string, bold, italic bool, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[faceKey{strings.ToLower(family), bold, italic}] = source{path: path}
}

// Metrics implements the [font.Provider] interface.
func (p *Provider) Metrics(req font.Request) (*font.Metrics, error) {
	if req.SubType != "" && req.SubType != font.TrueType {
		return nil, &font.UnknownFontError{Request: req}
	}
	enc, ok := pdfenc.ByName(req.Encoding)
	if !ok {
		return nil, &font.UnsupportedEncodingError{Encoding: req.Encoding}
	}

	p.mu.Lock()
	src, ok := p.sources[faceKey{strings.ToLower(req.Family), req.IsBold(), req.IsItalic()}]
	p.mu.Unlock()
	if !ok {
		ext := strings.ToLower(filepath.Ext(req.Family))
		if ext != ".ttf" && ext != ".otf" {
			return nil, &font.UnknownFontError{Request: req}
		}
		src = source{path: req.Family}
	}

	info, err := p.load(src)
	if err != nil {
		return nil, err
	}
	return FromFont(info, enc)
}

func (p *Provider) load(src source) (*sfnt.Font, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if info, ok := p.parsed[src]; ok {
		return info, nil
	}

	var data []byte
	if src.data != nil {
		data = *src.data
	} else {
		var err error
		data, err = os.ReadFile(src.path)
		if err != nil {
			return nil, err
		}
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		if src.path != "" {
			return nil, fmt.Errorf("%s: %w", src.path, err)
		}
		return nil, fmt.Errorf("sfnt: %w", err)
	}
	p.parsed[src] = info
	return info, nil
}

// FromFont extracts the metrics of an sfnt font for the given encoding.
// Codes whose character is not mapped by the font get the width of the
// .notdef glyph.
func FromFont(info *sfnt.Font, enc *pdfenc.Encoding) (*font.Metrics, error) {
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", info.PostScriptName(), err)
	}

	qv := info.FontMatrix[3] * 1000
	scale := func(x funit.Int16) float64 {
		return float64(x) * qv
	}

	m := &font.Metrics{
		FontName:           info.PostScriptName(),
		FullName:           info.FamilyName,
		SubType:            font.TrueType,
		Encoding:           enc,
		Ascent:             scale(info.Ascent),
		Descent:            scale(info.Descent),
		Leading:            scale(info.Ascent - info.Descent + info.LineGap),
		CapHeight:          scale(info.CapHeight),
		XHeight:            scale(info.XHeight),
		ItalicAngle:        info.ItalicAngle,
		BBox:               info.FontBBoxPDF(),
		UnderlinePosition:  float64(info.UnderlinePosition) * qv,
		UnderlineThickness: float64(info.UnderlineThickness) * qv,
		MissingWidth:       info.GlyphWidthPDF(0),
		Flags: font.MakeFlags(font.Properties{
			IsFixedPitch: info.IsFixedPitch(),
			IsSerif:      info.IsSerif,
			IsScript:     info.IsScript,
			IsItalic:     info.IsItalic,
		}),
	}
	if info.IsBold {
		m.FullName += " Bold"
	}
	if info.IsItalic {
		m.FullName += " Italic"
	}

	var total float64
	var count int
	for c := range 256 {
		code := byte(c)
		if enc.GlyphName(code) == ".notdef" {
			continue
		}
		gid := cmap.Lookup(enc.Decode(code))
		if gid == 0 {
			m.Widths[code] = m.MissingWidth
			continue
		}
		w := info.GlyphWidthPDF(gid)
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
	return m, nil
}
