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

package pdfgen

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/rect"
)

// Name is the name of a resource, as used inside a content stream.
type Name string

// String returns the PDF representation of the name, for example "/F1".
func (n Name) String() string {
	return "/" + string(n)
}

// Kind identifies the type of a [Resource].
type Kind byte

// These are the resource kinds understood by an [Assembler].
const (
	KindFont Kind = iota + 1
	KindImage
	KindEncoding
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindImage:
		return "image"
	case KindEncoding:
		return "encoding"
	case KindPage:
		return "page"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// prefix gives the first letter of generated resource names.
func (k Kind) prefix() string {
	switch k {
	case KindFont:
		return "F"
	case KindImage:
		return "Im"
	case KindEncoding:
		return "E"
	default:
		return "P"
	}
}

// A Resource is an auxiliary object referenced from a content stream.
// The engine hands resources to an [Assembler], which is responsible for
// writing them to a file.
type Resource interface {
	ResourceKind() Kind
}

// Difference replaces the glyph name of a single code in a base encoding.
type Difference struct {
	Code  byte
	Glyph string
}

// FontDescriptor holds the metrics of a font which are not implied by the
// font name.
//
// See section 9.8 of ISO 32000-2:2020.
type FontDescriptor struct {
	FontName     string
	Flags        uint32
	FontBBox     rect.Rect
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	Leading      float64
	CapHeight    float64
	XHeight      float64
	StemV        float64
	StemH        float64
	AvgWidth     float64
	MaxWidth     float64
	MissingWidth float64
}

// FontResource describes a simple font dictionary.
type FontResource struct {
	BaseFont  string
	SubType   string // "Type1" or "TrueType"
	Encoding  string // name of the base encoding
	FirstChar byte
	Widths    []float64 // widths for FirstChar, FirstChar+1, ...

	// Descriptor is nil for the standard 14 fonts.
	Descriptor *FontDescriptor

	// EncodingRef, if not empty, refers to an [EncodingResource]
	// which replaces Encoding.
	EncodingRef Name
}

// ResourceKind implements the [Resource] interface.
func (*FontResource) ResourceKind() Kind { return KindFont }

// EncodingResource describes an encoding dictionary.
type EncodingResource struct {
	BaseEncoding string
	Differences  []Difference
}

// ResourceKind implements the [Resource] interface.
func (*EncodingResource) ResourceKind() Kind { return KindEncoding }

// ImageResource describes an image XObject.  Data holds the encoded image
// file as supplied by the caller.
type ImageResource struct {
	Data             []byte
	Format           string
	Width            int
	Height           int
	Components       int
	BitsPerComponent int
}

// ResourceKind implements the [Resource] interface.
func (*ImageResource) ResourceKind() Kind { return KindImage }

// PageResource describes a finished page.
type PageResource struct {
	Content  []byte
	MediaBox rect.Rect
	CropBox  rect.Rect
	Fonts    map[Name]Name // name in the content stream -> assembler name
	Images   map[Name]Name
}

// ResourceKind implements the [Resource] interface.
func (*PageResource) ResourceKind() Kind { return KindPage }

// An Assembler accepts the resources generated by the engine and returns a
// name which can be used to refer to them from within content streams.
// Implementations write the actual file structure; the engine never
// constructs cross-reference tables itself.
type Assembler interface {
	Add(res Resource) (Name, error)
}

// MemoryAssembler is an [Assembler] which keeps all resources in memory.
// It is mainly useful for testing.
type MemoryAssembler struct {
	Resources map[Name]Resource

	// Order lists the names in the order the resources were added.
	Order []Name

	counter map[Kind]int
}

// NewMemoryAssembler returns an empty MemoryAssembler.
func NewMemoryAssembler() *MemoryAssembler {
	return &MemoryAssembler{
		Resources: make(map[Name]Resource),
		counter:   make(map[Kind]int),
	}
}

// Add implements the [Assembler] interface.
func (a *MemoryAssembler) Add(res Resource) (Name, error) {
	if res == nil {
		return "", fmt.Errorf("nil resource")
	}
	kind := res.ResourceKind()
	var name Name
	for {
		a.counter[kind]++
		name = Name(kind.prefix() + strconv.Itoa(a.counter[kind]))
		if _, isUsed := a.Resources[name]; !isUsed {
			break
		}
	}
	a.Resources[name] = res
	a.Order = append(a.Order, name)
	return name, nil
}

// Pages returns the page resources, in the order they were added.
func (a *MemoryAssembler) Pages() []*PageResource {
	var res []*PageResource
	for _, name := range a.Order {
		if p, ok := a.Resources[name].(*PageResource); ok {
			res = append(res, p)
		}
	}
	return res
}
