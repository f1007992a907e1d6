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

package font

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/pdfgen"
)

// Weight is the boldness of a font, on the usual 100 to 900 scale.
type Weight int

// Common font weights.
const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// Style distinguishes upright from slanted fonts.
type Style int

// These are the supported font styles.
const (
	StyleNormal Style = iota
	StyleItalic
)

// Request describes a font to be loaded.
type Request struct {
	Family   string // e.g. "Helvetica", or a file name for loaded fonts
	Weight   Weight
	Style    Style
	Encoding string // empty selects WinAnsiEncoding
	SubType  SubType
}

// IsBold reports whether the request asks for a bold face.
func (r Request) IsBold() bool {
	return r.Weight >= 600
}

// IsItalic reports whether the request asks for a slanted face.
func (r Request) IsItalic() bool {
	return r.Style == StyleItalic
}

func (r Request) String() string {
	var b strings.Builder
	b.WriteString(r.Family)
	if r.IsBold() {
		b.WriteString(" bold")
	}
	if r.IsItalic() {
		b.WriteString(" italic")
	}
	if r.Encoding != "" {
		b.WriteString(" (")
		b.WriteString(r.Encoding)
		b.WriteString(")")
	}
	return b.String()
}

// Key identifies a loaded face.  Fonts with equal keys share one font
// dictionary.
type Key struct {
	Name     string
	Encoding string
	SubType  SubType
}

// A Provider loads font metrics.
type Provider interface {
	Metrics(req Request) (*Metrics, error)
}

// ProviderFunc adapts an ordinary function to the [Provider] interface.
type ProviderFunc func(req Request) (*Metrics, error)

// Metrics implements the [Provider] interface.
func (f ProviderFunc) Metrics(req Request) (*Metrics, error) {
	return f(req)
}

// Chain is a [Provider] which tries a list of providers in turn.
type Chain []Provider

// Metrics returns the result of the first provider which knows the
// requested font.  Errors other than [UnknownFontError] stop the search.
func (c Chain) Metrics(req Request) (*Metrics, error) {
	for _, p := range c {
		m, err := p.Metrics(req)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, pdfgen.ErrUnknownFont) {
			return nil, err
		}
	}
	return nil, &UnknownFontError{Request: req}
}

// UnknownFontError is returned when no provider knows a font.
type UnknownFontError struct {
	Request Request
}

func (err *UnknownFontError) Error() string {
	return fmt.Sprintf("font %q not found", err.Request.String())
}

// Unwrap allows to match the error against [pdfgen.ErrUnknownFont].
func (err *UnknownFontError) Unwrap() error {
	return pdfgen.ErrUnknownFont
}

// UnsupportedEncodingError is returned when a font cannot be used with the
// requested encoding.
type UnsupportedEncodingError struct {
	Encoding string
}

func (err *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("encoding %q not supported", err.Encoding)
}

// Unwrap allows to match the error against [pdfgen.ErrUnsupportedEncoding].
func (err *UnsupportedEncodingError) Unwrap() error {
	return pdfgen.ErrUnsupportedEncoding
}
