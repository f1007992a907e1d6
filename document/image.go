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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/image"
)

// ImageOptions control how an image is embedded.
type ImageOptions struct {
	// JPEGQuality, if non-zero, re-encodes the image using lossy JPEG
	// compression with the given quality (1 to 100).
	JPEGQuality int
}

type imageKey struct {
	digest  image.Key
	quality int
}

type imageEntry struct {
	name pdfgen.Name
	info *image.Info
}

// loadImage returns the resource for the image data.  Images are shared
// between all pages of the document.
func (d *Document) loadImage(data []byte, quality int) (*imageEntry, error) {
	key := imageKey{digest: image.KeyOf(data), quality: quality}
	if e, ok := d.images[key]; ok {
		d.log.Debug("image cache hit", "resource", e.name)
		return e, nil
	}

	var info *image.Info
	var err error
	if quality > 0 {
		data, info, err = image.ToJPEG(data, quality)
	} else {
		info, err = d.introspector.Introspect(data)
	}
	if err != nil {
		return nil, &pdfgen.ResourceError{Kind: "image", Err: err}
	}

	name, err := d.asm.Add(&pdfgen.ImageResource{
		Data:             data,
		Format:           info.Format,
		Width:            info.Width,
		Height:           info.Height,
		Components:       info.Components,
		BitsPerComponent: info.BitsPerComponent,
	})
	if err != nil {
		return nil, err
	}
	e := &imageEntry{name: name, info: info}
	d.images[key] = e
	d.log.Debug("image registered", "resource", name,
		"format", info.Format, "width", info.Width, "height", info.Height)
	return e, nil
}

// Image draws an image with top left corner (x, y).  The width and height
// are given in the current unit.  If one of them is zero, it is computed
// from the other using the aspect ratio of the image.  If both are zero,
// the image is drawn at 72 pixels per inch.
func (p *Page) Image(data []byte, x, y, width, height float64, opt *ImageOptions) error {
	if err := p.check("Image"); err != nil {
		return err
	}
	quality := 0
	if opt != nil {
		quality = opt.JPEGQuality
	}
	e, err := p.doc.loadImage(data, quality)
	if err != nil {
		return err
	}
	if e.info.Width == 0 || e.info.Height == 0 {
		return nil
	}

	wd, ht := p.sys.Length(width), p.sys.Length(height)
	aspect := float64(e.info.Height) / float64(e.info.Width)
	switch {
	case wd == 0 && ht == 0:
		wd, ht = float64(e.info.Width), float64(e.info.Height)
	case wd == 0:
		wd = ht / aspect
	case ht == 0:
		ht = wd * aspect
	}

	ll := p.toPage(x, y)
	ll.Y -= ht
	err = p.w.DrawXObject(e.name, matrix.Matrix{wd, 0, 0, ht, ll.X, ll.Y})
	if err != nil {
		return err
	}
	p.images[e.name] = true
	return nil
}
