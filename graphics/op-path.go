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

package graphics

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
)

// This file implements the "Path construction operators" and "Path-painting
// operators".  The operators implemented here are defined in tables 58, 59
// and 60 of ISO 32000-2:2020.
//
// Paths are built in one of three ways:
//
//   - Lines drawn with MoveTo, LineTo and CurveTo outside of any shape
//     form an auto path.  This path is stroked lazily, when a disjoint
//     MoveTo is issued, before a stroke parameter changes, before text is
//     shown, on Flush and when the content stream is closed.
//   - Shape draws a closed figure and resolves it immediately.
//   - BeginPath opens a manual path, which collects segments until one of
//     FillPath, StrokePath, FillAndStrokePath, ClipPath or EndPath is
//     called.

// Paint selects how a path is resolved.
type Paint struct {
	Stroke  bool
	Fill    bool
	Clip    bool
	EvenOdd bool // use the even-odd rule instead of nonzero winding
}

func (p Paint) operators() (clip, paint string) {
	switch {
	case p.Clip && p.EvenOdd:
		clip = "W*"
	case p.Clip:
		clip = "W"
	}
	switch {
	case p.Stroke && p.Fill && p.EvenOdd:
		paint = "B*"
	case p.Stroke && p.Fill:
		paint = "B"
	case p.Fill && p.EvenOdd:
		paint = "f*"
	case p.Fill:
		paint = "f"
	case p.Stroke:
		paint = "S"
	default:
		paint = "n"
	}
	return clip, paint
}

// Pen returns the current point.
func (w *Writer) Pen() vec.Vec2 {
	return w.current
}

// InPath reports whether a manual path is open.
func (w *Writer) InPath() bool {
	return w.path == pathManual
}

// beginSegment is called before a path construction operator is written.
// It makes sure that the state parameters needed to paint the path are
// set, since these cannot be changed inside a path object.
func (w *Writer) beginSegment(cmd string) bool {
	if !w.isValid(cmd, objPage|objText|objPath) {
		return false
	}
	if w.currentObject == objPath {
		return true
	}
	if w.currentObject == objText {
		w.EndText()
	}

	switch w.path {
	case pathNone:
		w.path = pathLines
		w.ensureStroke()
	case pathLines:
		w.ensureStroke()
	case pathShape:
		if w.paint.Stroke {
			w.ensureStroke()
		}
		if w.paint.Fill {
			w.ensureFill()
		}
	case pathManual:
		w.ensureStroke()
		w.ensureFill()
	}
	if w.Err != nil {
		return false
	}
	w.currentObject = objPath
	return true
}

// emitMove writes a pending auto-path MoveTo.
func (w *Writer) emitMove() {
	if w.moved && w.Err == nil {
		_, w.Err = fmt.Fprintln(w.Content, w.coord(w.start.X), w.coord(w.start.Y), "m")
		w.moved = false
	}
}

// MoveTo starts a new subpath at the given point.
//
// For auto paths the operator is only written once a segment is added.
// If a different subpath is still open, it is stroked first.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(p vec.Vec2) {
	if !w.isValid("MoveTo", objPage|objText|objPath) {
		return
	}

	if w.path == pathNone || w.path == pathLines {
		if w.hasContent {
			if p == w.current {
				return
			}
			w.Flush()
		}
		w.path = pathLines
		w.moved = true
		w.start, w.current = p, p
		return
	}

	if !w.beginSegment("MoveTo") {
		return
	}
	w.start, w.current = p, p
	_, w.Err = fmt.Fprintln(w.Content, w.coord(p.X), w.coord(p.Y), "m")
}

// LineTo appends a straight line segment from the current point.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(p vec.Vec2) {
	if !w.beginLine("LineTo") {
		return
	}
	w.current = p
	_, w.Err = fmt.Fprintln(w.Content, w.coord(p.X), w.coord(p.Y), "l")
}

// CurveTo appends a cubic Bezier curve from the current point.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(p1, p2, p3 vec.Vec2) {
	if !w.beginLine("CurveTo") {
		return
	}
	w.current = p3
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(p1.X), w.coord(p1.Y),
		w.coord(p2.X), w.coord(p2.Y),
		w.coord(p3.X), w.coord(p3.Y), "c")
}

func (w *Writer) beginLine(cmd string) bool {
	if w.path == pathNone {
		// start an auto path at the current point
		w.path = pathLines
		w.moved = true
		w.start = w.current
	}
	if !w.beginSegment(cmd) {
		return false
	}
	w.emitMove()
	w.hasContent = true
	return w.Err == nil
}

// Rectangle appends a rectangle to the current path as a closed subpath.
// This can only be used inside Shape or a manual path.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.path != pathShape && w.path != pathManual {
		if w.Err == nil {
			w.Err = pdfgen.Usage("Rectangle", pdfgen.ErrNotInPath)
		}
		return
	}
	if !w.beginSegment("Rectangle") {
		return
	}
	w.hasContent = true
	w.start = vec.Vec2{X: x, Y: y}
	w.current = w.start
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}
	w.current = w.start
	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Flush strokes the open auto path, if any.
func (w *Writer) Flush() {
	if w.Err != nil || w.path != pathLines {
		return
	}
	if w.hasContent && w.currentObject == objPath {
		_, w.Err = fmt.Fprintln(w.Content, "S")
		w.currentObject = objPage
	}
	w.hasContent = false
	w.moved = false
	w.path = pathNone
}

// Shape draws a closed figure.  The function build adds the segments of
// the figure, using MoveTo, LineTo, CurveTo, Rectangle and ClosePath.
//
// If a manual path is open, the segments are added to this path and paint
// is ignored.  Otherwise the figure is resolved according to paint.
func (w *Writer) Shape(paint Paint, build func()) {
	if !w.isValid("Shape", objPage|objText|objPath) {
		return
	}
	if w.path == pathManual {
		build()
		return
	}
	if w.path == pathShape {
		w.Err = pdfgen.Usage("Shape", errNestedPath)
		return
	}
	w.Flush()

	w.path = pathShape
	w.paint = paint
	w.hasContent = false
	build()
	w.resolve(paint)
}

func (w *Writer) resolve(paint Paint) {
	hadContent := w.hasContent
	w.path = pathNone
	w.hasContent = false
	w.moved = false
	if w.Err != nil || !hadContent || w.currentObject != objPath {
		return
	}
	w.currentObject = objPage

	clip, op := paint.operators()
	if clip != "" {
		_, w.Err = fmt.Fprintln(w.Content, clip)
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintln(w.Content, op)
}

// BeginPath opens a manual path.  If border or fill are non-nil, the line
// and fill colors are changed for the duration of the path; the previous
// colors are restored when the path is resolved.
func (w *Writer) BeginPath(border, fill *color.Value) error {
	if !w.isValid("BeginPath", objPage|objText|objPath) {
		return w.Err
	}
	if w.path == pathManual || w.path == pathShape {
		return pdfgen.Usage("BeginPath", errNestedPath)
	}
	w.Flush()
	if w.Err != nil {
		return w.Err
	}

	w.colorStack = append(w.colorStack, colorPair{line: w.props.LineColor, fill: w.props.FillColor})
	if border != nil {
		w.props.LineColor = *border
	}
	if fill != nil {
		w.props.FillColor = *fill
	}
	w.path = pathManual
	w.hasContent = false
	return nil
}

// FillPath fills the manual path.
func (w *Writer) FillPath() error {
	return w.endPath("FillPath", Paint{Fill: true})
}

// StrokePath strokes the manual path.
func (w *Writer) StrokePath() error {
	return w.endPath("StrokePath", Paint{Stroke: true})
}

// FillAndStrokePath fills and then strokes the manual path.
func (w *Writer) FillAndStrokePath() error {
	return w.endPath("FillAndStrokePath", Paint{Fill: true, Stroke: true})
}

// ClipPath intersects the clipping path with the manual path.
// The path is not painted.
func (w *Writer) ClipPath() error {
	return w.endPath("ClipPath", Paint{Clip: true})
}

// EndPath discards the manual path without painting it.
func (w *Writer) EndPath() error {
	return w.endPath("EndPath", Paint{})
}

// ResolvePath resolves the manual path using the given paint.
func (w *Writer) ResolvePath(paint Paint) error {
	return w.endPath("ResolvePath", paint)
}

func (w *Writer) endPath(cmd string, paint Paint) error {
	if w.Err != nil {
		return w.Err
	}
	if w.path != pathManual {
		return pdfgen.Usage(cmd, pdfgen.ErrNotInPath)
	}
	w.resolve(paint)

	n := len(w.colorStack) - 1
	w.props.LineColor = w.colorStack[n].line
	w.props.FillColor = w.colorStack[n].fill
	w.colorStack = w.colorStack[:n]
	return w.Err
}
