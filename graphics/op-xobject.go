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
	"fmt"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// DrawXObject paints an external object, typically an image.  The name
// must come from the writer's resource set.  Images are drawn into the
// unit square, so callers will usually combine this with
// [Writer.Transform] to set position and size.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(name pdf.Name) {
	if !w.isValid("DrawXObject", objPage) {
		return
	}

	if err := name.PDF(w.Content); err != nil {
		w.Err = err
		return
	}
	_, w.Err = fmt.Fprintf(w.Content, " Do\r\n")
}
