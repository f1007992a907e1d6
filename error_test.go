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
	"testing"
)

func TestUsageError(t *testing.T) {
	err := Usage("FillPath", ErrNotInPath)
	if !errors.Is(err, ErrNotInPath) {
		t.Error("errors.Is failed")
	}
	var uErr *UsageError
	if !errors.As(err, &uErr) {
		t.Fatal("errors.As failed")
	}
	if uErr.Op != "FillPath" {
		t.Errorf("wrong op %q", uErr.Op)
	}
	if got := err.Error(); got != "FillPath: not in path" {
		t.Errorf("wrong message %q", got)
	}
}

func TestResourceError(t *testing.T) {
	err := &ResourceError{Kind: "font", ID: "Comic Sans", Err: ErrUnknownFont}
	if !errors.Is(err, ErrUnknownFont) {
		t.Error("errors.Is failed")
	}
	want := `font "Comic Sans": unknown font`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
