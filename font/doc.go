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

// Package font describes the fonts used on generated pages.
//
// Font data comes from a [Provider], which maps a [Request] (family, weight
// and style) to the [Metrics] of a concrete face.  Metrics hold everything
// needed to measure text and to describe the font to an assembler: the
// encoding, the glyph widths in text space units, and the values for a
// font descriptor.  A [Font] combines metrics with a size and a color.
//
// The following providers are included:
//   - [seehuhn.de/go/pdfgen/font/standard] for the 14 standard PDF fonts
//   - [seehuhn.de/go/pdfgen/font/afmfont] for Type 1 fonts with AFM metrics
//   - [seehuhn.de/go/pdfgen/font/sfntfont] for TrueType and OpenType fonts
//   - [seehuhn.de/go/pdfgen/font/gofont] for the Go font family
//
// Providers can be combined using a [Chain].
package font
