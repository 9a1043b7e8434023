// htmlwebsite2pdf - a library for writing PDF files
// Copyright (C) 2026  Benedikt Engel
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

	"seehuhn.de/go/geom/matrix"
)

// This file implements the general and special graphics state operators.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if !w.isValid("PushGraphicsState", objPage) {
		return
	}
	w.nesting = append(w.nesting, pairTypeQ)

	_, w.Err = fmt.Fprintf(w.Content, "q\r\n")
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if !w.isValid("PopGraphicsState", objPage) {
		return
	}
	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeQ {
		w.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	_, w.Err = fmt.Fprintf(w.Content, "Q\r\n")
}

// Transform applies a transformation matrix to the coordinate system.
// The new transformation is applied to user coordinates first, followed
// by the existing transformation.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if !w.isValid("Transform", objPage) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s %s %s %s %s %s cm\r\n",
		format(m[0]), format(m[1]), format(m[2]),
		format(m[3]), format(m[4]), format(m[5]))
}

// SetLineWidth sets the line width for stroking operations.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s w\r\n", w.coord(width))
}
