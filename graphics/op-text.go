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

	"seehuhn.de/go/sfnt/glyph"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// This file implements the text object and text showing operators.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText
	w.nesting = append(w.nesting, pairTypeBT)

	_, w.Err = fmt.Fprintf(w.Content, "BT\r\n")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]
	w.currentObject = objPage

	_, w.Err = fmt.Fprintf(w.Content, "ET\r\n")
}

// TextSetFont sets the font and font size.  The name must come from the
// writer's resource set.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdf.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}

	if err := name.PDF(w.Content); err != nil {
		w.Err = err
		return
	}
	_, w.Err = fmt.Fprintf(w.Content, " %s Tf\r\n", format(size))
}

// TextFirstLine moves the text position to the given offset from the
// start of the current line.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s %s Td\r\n", w.coord(dx), w.coord(dy))
}

// TextShowGlyphs shows a sequence of glyphs, addressed by glyph id as
// required by fonts using the Identity-H encoding.  Each id is written
// as four hexadecimal digits.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowGlyphs(gg []glyph.ID) {
	if !w.isValid("TextShowGlyphs", objText) {
		return
	}
	if len(gg) == 0 {
		return
	}

	_, w.Err = fmt.Fprint(w.Content, "<")
	if w.Err != nil {
		return
	}
	for _, gid := range gg {
		_, w.Err = fmt.Fprintf(w.Content, "%04x", gid)
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintf(w.Content, "> Tj\r\n")
}
