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
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/pdfgen"
)

func encode(t *testing.T, format string, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, img)
	case "jpeg":
		err = jpeg.Encode(buf, img, nil)
	case "gif":
		err = gif.Encode(buf, img, nil)
	case "bmp":
		err = bmp.Encode(buf, img)
	case "tiff":
		err = tiff.Encode(buf, img, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestIntrospect(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 3))
	rgba := image.NewRGBA(image.Rect(0, 0, 5, 2))
	rgba.Set(1, 1, color.RGBA{R: 255, A: 255})
	gray16 := image.NewGray16(image.Rect(0, 0, 2, 2))

	type testCase struct {
		format string
		img    image.Image
		want   *Info
	}
	cases := []testCase{
		{"png", gray, &Info{Width: 4, Height: 3, Components: 1, BitsPerComponent: 8, Format: "png"}},
		{"png", rgba, &Info{Width: 5, Height: 2, Components: 3, BitsPerComponent: 8, Format: "png"}},
		{"png", gray16, &Info{Width: 2, Height: 2, Components: 1, BitsPerComponent: 16, Format: "png"}},
		{"jpeg", rgba, &Info{Width: 5, Height: 2, Components: 3, BitsPerComponent: 8, Format: "jpeg"}},
		{"jpeg", gray, &Info{Width: 4, Height: 3, Components: 1, BitsPerComponent: 8, Format: "jpeg"}},
		{"gif", rgba, &Info{Width: 5, Height: 2, Components: 3, BitsPerComponent: 8, Format: "gif"}},
		{"bmp", rgba, &Info{Width: 5, Height: 2, Components: 3, BitsPerComponent: 8, Format: "bmp"}},
		{"tiff", gray, &Info{Width: 4, Height: 3, Components: 1, BitsPerComponent: 8, Format: "tiff"}},
	}
	for _, c := range cases {
		data := encode(t, c.format, c.img)
		info, err := DecodeConfigIntrospector{}.Introspect(data)
		if err != nil {
			t.Errorf("%s: %v", c.format, err)
			continue
		}
		if d := cmp.Diff(c.want, info); d != "" {
			t.Errorf("%s (-want +got):\n%s", c.format, d)
		}
	}
}

func TestUnsupported(t *testing.T) {
	_, err := DecodeConfigIntrospector{}.Introspect([]byte("not an image"))
	if !errors.Is(err, pdfgen.ErrUnsupportedImageFormat) {
		t.Errorf("unexpected error %v", err)
	}

	data := encode(t, "gif", image.NewGray(image.Rect(0, 0, 1, 1)))
	_, err = DecodeConfigIntrospector{Formats: []string{"jpeg", "png"}}.Introspect(data)
	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) || formatErr.Format != "gif" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestKey(t *testing.T) {
	a := encode(t, "png", image.NewGray(image.Rect(0, 0, 2, 2)))
	b := encode(t, "png", image.NewGray(image.Rect(0, 0, 3, 2)))
	if KeyOf(a) != KeyOf(bytes.Clone(a)) {
		t.Error("equal data gives different keys")
	}
	if KeyOf(a) == KeyOf(b) {
		t.Error("different data gives equal keys")
	}
}

func TestToJPEG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	data := encode(t, "png", src)
	out, info, err := ToJPEG(data, 80)
	if err != nil {
		t.Fatal(err)
	}
	check, err := DecodeConfigIntrospector{}.Introspect(out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(check, info); d != "" {
		t.Errorf("info (-want +got):\n%s", d)
	}

	jpg := encode(t, "jpeg", src)
	out, _, err = ToJPEG(jpg, 80)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, jpg) {
		t.Error("JPEG data was re-encoded")
	}
}
