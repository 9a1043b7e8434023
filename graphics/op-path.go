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

import "fmt"

// This file implements the path construction and path painting operators.

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintf(w.Content, "%s %s m\r\n", w.coord(x), w.coord(y))
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s %s l\r\n", w.coord(x), w.coord(y))
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "h\r\n")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintf(w.Content, "%s %s %s %s re\r\n",
		w.coord(x), w.coord(y), w.coord(width), w.coord(height))
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if !w.isValid("Stroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintf(w.Content, "S\r\n")
}

// Fill fills the current path, using the nonzero winding number rule.
// Open subpaths are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if !w.isValid("Fill", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintf(w.Content, "f\r\n")
}

// FillAndStroke fills and strokes the current path.  Open subpaths are
// implicitly closed before being filled.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if !w.isValid("FillAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintf(w.Content, "B\r\n")
}

// EndPath ends the path without filling or stroking it.  This is most
// useful after [Writer.ClipNonZero] or [Writer.ClipEvenOdd].
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if !w.isValid("EndPath", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintf(w.Content, "n\r\n")
}

// ClipNonZero sets the current clipping path using the nonzero winding
// number rule.  The clip takes effect after the next painting operator.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if !w.isValid("ClipNonZero", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintf(w.Content, "W\r\n")
}

// ClipEvenOdd sets the current clipping path using the even-odd rule.
// The clip takes effect after the next painting operator.
//
// This implements the PDF graphics operator "W*".
func (w *Writer) ClipEvenOdd() {
	if !w.isValid("ClipEvenOdd", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintf(w.Content, "W*\r\n")
}
