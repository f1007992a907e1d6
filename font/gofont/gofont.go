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

// Package gofont makes the Go font family available as TrueType fonts.
package gofont

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/pdfgen/font/sfntfont"
)

// Family names under which the fonts are registered.
const (
	Go          = "Go"
	GoMedium    = "Go Medium"
	GoMono      = "Go Mono"
	GoSmallcaps = "Go Smallcaps"
)

type face struct {
	family       string
	bold, italic bool
	ttf          []byte
}

var faces = []face{
	{Go, false, false, goregular.TTF},
	{Go, true, false, gobold.TTF},
	{Go, false, true, goitalic.TTF},
	{Go, true, true, gobolditalic.TTF},
	{GoMedium, false, false, gomedium.TTF},
	{GoMedium, false, true, gomediumitalic.TTF},
	{GoMono, false, false, gomono.TTF},
	{GoMono, true, false, gomonobold.TTF},
	{GoMono, false, true, gomonoitalic.TTF},
	{GoMono, true, true, gomonobolditalic.TTF},
	{GoSmallcaps, false, false, gosmallcaps.TTF},
	{GoSmallcaps, false, true, gosmallcapsitalic.TTF},
}

// Register adds the Go fonts to p.
func Register(p *sfntfont.Provider) {
	for _, f := range faces {
		p.Register(f.family, f.bold, f.italic, f.ttf)
	}
}

// New returns a provider for the Go fonts.
func New() *sfntfont.Provider {
	p := sfntfont.New()
	Register(p)
	return p
}
