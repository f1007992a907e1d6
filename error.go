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
	"errors"
	"strconv"
)

// Sentinel errors which can be matched with [errors.Is].
var (
	ErrNotInPath              = errors.New("not in path")
	ErrNoPage                 = errors.New("no open page")
	ErrPageOpen               = errors.New("page already open")
	ErrClosed                 = errors.New("already closed")
	ErrUnknownFont            = errors.New("unknown font")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrUnsupportedEncoding    = errors.New("unsupported encoding")
)

// UsageError indicates that an operation was invoked in the wrong state,
// for example drawing on a closed page or filling without an open path.
type UsageError struct {
	Op  string
	Err error
}

func (err *UsageError) Error() string {
	if err.Op == "" {
		return err.Err.Error()
	}
	return err.Op + ": " + err.Err.Error()
}

func (err *UsageError) Unwrap() error {
	return err.Err
}

// Usage returns a new [UsageError] for the operation op.
func Usage(op string, err error) error {
	return &UsageError{Op: op, Err: err}
}

// ResourceError indicates that a font, image, encoding or color could not be
// found or is not supported.
type ResourceError struct {
	Kind string // "font", "image", "encoding", "color", ...
	ID   string
	Err  error
}

func (err *ResourceError) Error() string {
	msg := err.Kind
	if err.ID != "" {
		msg += " " + strconv.Quote(err.ID)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ResourceError) Unwrap() error {
	return err.Err
}
