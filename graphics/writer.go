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
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/color"
	"seehuhn.de/go/pdfgen/internal/float"
)

// Writer writes a PDF content stream.
//
// The writer keeps track of which graphics state parameters have been
// written to the stream, so that every state-setting operator is only
// emitted when the value actually changes.  It also takes care of the
// text (BT ... ET) and path brackets: starting a path ends an open text
// object, and showing text first resolves an open path.
//
// Errors from the underlying io.Writer, and operators issued in an invalid
// state, are recorded in Err.  Once Err is set, all further operations are
// ignored.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType
	closed        bool

	props  Properties
	shadow shadow
	stack  []saved

	path       pathMode
	paint      Paint // for pathShape
	hasContent bool  // at least one segment was written
	moved      bool  // a MoveTo is pending
	start      vec.Vec2
	current    vec.Vec2

	colorStack []colorPair
}

type saved struct {
	shadow shadow
}

type colorPair struct {
	line, fill color.Value
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

type pathMode uint8

const (
	pathNone   pathMode = iota
	pathLines           // lines drawn with MoveTo/LineTo, stroked lazily
	pathShape           // a shape which is resolved at the end of Shape
	pathManual          // opened by BeginPath
)

var (
	errClosed      = errors.New("writer is closed")
	errNestedPath  = errors.New("path already open")
	errUnbalanced  = errors.New("restore without save")
	errNoFont      = errors.New("no font selected")
	errTextInPath  = errors.New("text inside an open path")
	errNotInPath   = pdfgen.ErrNotInPath
	errSaveInPath  = errors.New("graphics state change inside an open path")
	errPathPending = errors.New("open path at end of content stream")
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
		props:         DefaultProperties(),
		shadow:        newShadow(),
	}
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}
	if w.closed {
		w.Err = pdfgen.Usage(cmd, errClosed)
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = pdfgen.Usage(cmd, fmt.Errorf("unexpected state %q", w.currentObject))
	return false
}

func (w *Writer) coord(x float64) string {
	return float.Format(x)
}

// Properties returns the current graphics properties.
func (w *Writer) Properties() Properties {
	return w.props.clone()
}

// SetProperties replaces all graphics properties.
func (w *Writer) SetProperties(p Properties) {
	w.SetLineColor(p.LineColor)
	w.SetFillColor(p.FillColor)
	w.SetFontColor(p.FontColor)
	w.SetLineWidth(p.LineWidth)
	w.SetLineDash(p.Dash)
	w.SetLineCap(p.LineCap)
	w.SetLineJoin(p.LineJoin)
	w.SetMiterLimit(p.MiterLimit)
	w.SetVAlign(p.VAlign)
	w.SetCharSpacing(p.CharSpacing)
	w.SetWordSpacing(p.WordSpacing)
	w.SetScale(p.Scale)
	w.SetRenderMode(p.RenderMode)
	w.SetFont(p.Font)
}

// toPage brings the writer back to the page level, by ending an open text
// object or resolving an open auto path.  A manual path cannot be closed
// implicitly; in this case err is returned.
func (w *Writer) toPage() bool {
	switch w.currentObject {
	case objText:
		w.EndText()
	case objPath:
		if w.path == pathManual || w.path == pathShape {
			return false
		}
		w.Flush()
	}
	if w.path == pathLines {
		w.path = pathNone
		w.moved = false
	}
	return w.Err == nil
}

// Save pushes a copy of the current graphics state onto the stack.
//
// This implements the PDF graphics operator "q".
func (w *Writer) Save() error {
	if !w.isValid("Save", objPage|objText|objPath) {
		return w.Err
	}
	if !w.toPage() {
		return pdfgen.Usage("Save", errSaveInPath)
	}
	w.stack = append(w.stack, saved{shadow: w.shadow.clone()})
	_, w.Err = fmt.Fprintln(w.Content, "q")
	return w.Err
}

// Restore pops the graphics state from the stack.
// The graphics properties are not changed; the next operator which depends
// on them re-emits those values which differ from the restored state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) Restore() error {
	if !w.isValid("Restore", objPage|objText|objPath) {
		return w.Err
	}
	if len(w.stack) == 0 {
		return pdfgen.Usage("Restore", errUnbalanced)
	}
	if !w.toPage() {
		return pdfgen.Usage("Restore", errSaveInPath)
	}
	n := len(w.stack) - 1
	w.shadow = w.stack[n].shadow
	w.stack = w.stack[:n]
	_, w.Err = fmt.Fprintln(w.Content, "Q")
	return w.Err
}

// Depth returns the number of saved graphics states.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Transform applies a transformation matrix to the coordinate system.
// This function modifies the current transformation matrix, so that the
// new matrix is applied to user coordinates before the old CTM.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) error {
	if !w.isValid("Transform", objPage|objText|objPath) {
		return w.Err
	}
	if !w.toPage() {
		return pdfgen.Usage("Transform", errSaveInPath)
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(m[0]), w.coord(m[1]), w.coord(m[2]),
		w.coord(m[3]), w.coord(m[4]), w.coord(m[5]), "cm")
	return w.Err
}

// Close finishes the content stream.  Pending lines are stroked, an open
// text object is ended, and all saved graphics states are restored.
func (w *Writer) Close() error {
	if w.closed {
		return w.Err
	}
	if w.Err == nil && w.path == pathManual {
		w.Err = pdfgen.Usage("Close", errPathPending)
	}
	if w.Err == nil {
		w.toPage()
	}
	for w.Err == nil && len(w.stack) > 0 {
		w.Err = w.Restore()
	}
	w.closed = true
	return w.Err
}

// Closed reports whether Close has been called.
func (w *Writer) Closed() bool {
	return w.closed
}
