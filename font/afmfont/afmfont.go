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

// Package afmfont provides font metrics read from Adobe Font Metrics (.afm)
// files.
package afmfont

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// Options control the behaviour of a [Provider].
type Options struct {
	// Dirs lists directories which are searched for "<Family>.afm".
	Dirs []string

	// SubType is the font type used for the fonts.  The default is Type1.
	SubType font.SubType
}

// Provider is a [font.Provider] which reads .afm files.
type Provider struct {
	opt Options

	mu       sync.Mutex
	files    map[faceKey]string
	afmCache map[string]*afm.Metrics
}

type faceKey struct {
	family       string
	bold, italic bool
}

// New returns a new Provider.  A nil opt is the same as the zero Options.
func New(opt *Options) *Provider {
	p := &Provider{
		files:    make(map[faceKey]string),
		afmCache: make(map[string]*afm.Metrics),
	}
	if opt != nil {
		p.opt = *opt
	}
	if p.opt.SubType == "" {
		p.opt.SubType = font.Type1
	}
	return p
}

// Register associates an .afm file with a font family and style.
func (p *Provider) Register(family string, bold, italic bool, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[faceKey{strings.ToLower(family), bold, italic}] = path
}

// Metrics implements the [font.Provider] interface.
//
// The family is looked up in the registered files first.  If the family
// names an .afm file directly, this file is used.  Finally, the directories
// from [Options.Dirs] are searched.
func (p *Provider) Metrics(req font.Request) (*font.Metrics, error) {
	if req.SubType != "" && req.SubType != p.opt.SubType {
		return nil, &font.UnknownFontError{Request: req}
	}
	enc, ok := pdfenc.ByName(req.Encoding)
	if !ok {
		return nil, &font.UnsupportedEncodingError{Encoding: req.Encoding}
	}

	path := p.find(req)
	if path == "" {
		return nil, &font.UnknownFontError{Request: req}
	}
	data, err := p.load(path)
	if err != nil {
		return nil, err
	}
	m := FromAFM(data, enc)
	m.SubType = p.opt.SubType
	return m, nil
}

func (p *Provider) find(req font.Request) string {
	p.mu.Lock()
	path := p.files[faceKey{strings.ToLower(req.Family), req.IsBold(), req.IsItalic()}]
	p.mu.Unlock()
	if path != "" {
		return path
	}

	if strings.EqualFold(filepath.Ext(req.Family), ".afm") {
		if _, err := os.Stat(req.Family); err == nil {
			return req.Family
		}
		return ""
	}

	for _, dir := range p.opt.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".afm") {
				continue
			}
			if strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), req.Family) {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}

func (p *Provider) load(path string) (*afm.Metrics, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if m, ok := p.afmCache[path]; ok {
		return m, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	m, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.afmCache[path] = m
	return m, nil
}

// Read parses an .afm file.
func Read(r io.Reader) (*afm.Metrics, error) {
	m, err := afm.Read(r)
	if err != nil {
		return nil, fmt.Errorf("afm: %w", err)
	}
	return m, nil
}

// FromAFM converts AFM data into font metrics for the given encoding.
// Codes whose glyph is missing from the font have no width.
func FromAFM(data *afm.Metrics, enc *pdfenc.Encoding) *font.Metrics {
	m := &font.Metrics{
		FontName:           data.FontName,
		FullName:           data.FullName,
		SubType:            font.Type1,
		Encoding:           enc,
		Ascent:             data.Ascent,
		Descent:            data.Descent,
		CapHeight:          data.CapHeight,
		XHeight:            data.XHeight,
		ItalicAngle:        data.ItalicAngle,
		BBox:               data.FontBBoxPDF(),
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		Flags: font.MakeFlags(font.Properties{
			IsFixedPitch: data.IsFixedPitch,
			IsItalic:     data.ItalicAngle != 0,
		}),
	}
	if m.FullName == "" {
		m.FullName = m.FontName
	}
	if m.Ascent == 0 {
		m.Ascent = m.BBox.URy
	}
	if m.Descent == 0 {
		m.Descent = m.BBox.LLy
	}

	if g, ok := data.Glyphs[".notdef"]; ok {
		m.MissingWidth = g.WidthX
	}

	var total float64
	var count int
	for c := range 256 {
		code := byte(c)
		name := enc.GlyphName(code)
		if name == ".notdef" {
			continue
		}
		g, ok := data.Glyphs[name]
		if !ok {
			continue
		}
		m.Widths[code] = g.WidthX
		if g.WidthX > 0 {
			total += g.WidthX
			count++
			m.MaxWidth = max(m.MaxWidth, g.WidthX)
		}
	}
	if count > 0 {
		m.AvgWidth = total / float64(count)
	}
	if g, ok := data.Glyphs["l"]; ok {
		// The stem width of the lowercase l is a common approximation.
		m.StemV = g.BBox.URx - g.BBox.LLx
	}
	return m
}
