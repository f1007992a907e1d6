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

package image

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
)

// ToJPEG decodes an image in any of the recognised formats and re-encodes
// it using lossy JPEG compression.  Transparency is discarded.
func ToJPEG(data []byte, quality int) ([]byte, *Info, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err == image.ErrFormat {
		return nil, nil, &UnsupportedFormatError{}
	} else if err != nil {
		return nil, nil, err
	}
	if format == "jpeg" {
		info, err := DecodeConfigIntrospector{}.Introspect(data)
		return data, info, err
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Over)

	buf := &bytes.Buffer{}
	err = jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	if err != nil {
		return nil, nil, err
	}
	info := &Info{
		Width:            b.Dx(),
		Height:           b.Dy(),
		Components:       3,
		BitsPerComponent: 8,
		Format:           "jpeg",
	}
	return buf.Bytes(), info, nil
}
