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

// Package graphics writes PDF content streams.
//
// A [Writer] tracks which graphics state parameters are already in effect
// in the content stream, so that operators like "w", "RG" or "Tf" are
// only written when a value changes.  The user-visible settings are
// collected in [Properties]; they are written lazily, just before an
// operator depends on them.
//
// Paths can be drawn in three ways: as auto paths using [Writer.MoveTo]
// and [Writer.LineTo], as closed figures using [Writer.Shape], or as
// manual paths opened by [Writer.BeginPath].  Text is shown inside BT/ET
// brackets, which the writer opens and closes as needed.
package graphics
