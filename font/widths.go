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

package font

import (
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// glyphWidth gives the advance width for one glyph in font design units.
type glyphWidth struct {
	GID   glyph.ID
	Width funit.Int16
}

// encodeWidths builds the W entry of a CIDFont dictionary.  The input must
// be sorted by ascending glyph ID and free of duplicates; q converts from
// font design units to PDF glyph space units.  Maximal runs of consecutive
// glyph IDs are grouped into pairs
//
//	start [w0 w1 ...]
//
// with each width rounded to the nearest integer.  A new run starts
// whenever the next glyph ID is not the successor of the previous one.
func encodeWidths(glyphs []glyphWidth, q float64) pdf.Array {
	var W pdf.Array
	var run pdf.Array
	for i, g := range glyphs {
		w := pdf.Integer(math.Round(g.Width.AsFloat(q)))
		if i > 0 && g.GID == glyphs[i-1].GID+1 {
			run = append(run, w)
			continue
		}
		if run != nil {
			W = append(W, run)
		}
		W = append(W, pdf.Integer(g.GID))
		run = pdf.Array{w}
	}
	if run != nil {
		W = append(W, run)
	}
	return W
}
