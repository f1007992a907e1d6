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

// Package image determines the properties of raster images which are
// placed on a page.  Image data is passed on to the [pdfgen.Assembler]
// unchanged; this package only reads the image headers.
package image

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif" // register image formats
	_ "image/jpeg"
	_ "image/png"
	"slices"

	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/pdfgen"
)

// Info describes a raster image.
type Info struct {
	Width            int
	Height           int
	Components       int // 1 for gray, 3 for RGB, 4 for CMYK
	BitsPerComponent int
	Format           string // "jpeg", "png", ...
}

// An Introspector determines the [Info] for encoded image data.
type Introspector interface {
	Introspect(data []byte) (*Info, error)
}

// DecodeConfigIntrospector reads image headers using [image.DecodeConfig].
// The formats jpeg, png, gif, bmp, tiff and webp are recognised.
type DecodeConfigIntrospector struct {
	// Formats, if non-empty, restricts the accepted formats.
	Formats []string
}

// Introspect implements the [Introspector] interface.
func (d DecodeConfigIntrospector) Introspect(data []byte) (*Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == image.ErrFormat {
		return nil, &UnsupportedFormatError{}
	} else if err != nil {
		return nil, err
	}
	if len(d.Formats) > 0 && !slices.Contains(d.Formats, format) {
		return nil, &UnsupportedFormatError{Format: format}
	}

	info := &Info{
		Width:            cfg.Width,
		Height:           cfg.Height,
		Components:       components(cfg.ColorModel),
		BitsPerComponent: bitsPerComponent(cfg.ColorModel),
		Format:           format,
	}
	return info, nil
}

func components(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.CMYKModel:
		return 4
	default:
		return 3
	}
}

func bitsPerComponent(m color.Model) int {
	switch m {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model, color.Alpha16Model:
		return 16
	default:
		return 8
	}
}

// UnsupportedFormatError is returned for image data in an unknown format.
type UnsupportedFormatError struct {
	Format string // empty if the format could not be determined
}

func (err *UnsupportedFormatError) Error() string {
	if err.Format == "" {
		return "unknown image format"
	}
	return "unsupported image format " + err.Format
}

// Unwrap allows to match the error against [pdfgen.ErrUnsupportedImageFormat].
func (err *UnsupportedFormatError) Unwrap() error {
	return pdfgen.ErrUnsupportedImageFormat
}

// Key identifies image data.  Images with equal keys are registered
// only once.
type Key [32]byte

// KeyOf returns the key for the given image data.
func KeyOf(data []byte) Key {
	return blake2b.Sum256(data)
}
