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
	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Descriptor holds the information for a PDF font descriptor.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName string

	IsSymbolic bool // flag
	IsItalic   bool // flag

	FontBBox     *pdf.Rectangle
	ItalicAngle  float64
	Ascent       float64
	Descent      float64 // negative
	CapHeight    float64 // 0 = unknown, Ascent is used instead
	StemV        float64
	MissingWidth float64
}

// Embed writes the font descriptor to the document and returns its
// reference.  fontFile must refer to the stream holding the font program.
func (desc *Descriptor) Embed(d *pdf.Data, fontFile pdf.Reference) (pdf.Reference, error) {
	var flags pdf.Integer
	if desc.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if desc.IsItalic {
		flags |= flagItalic
	}

	capHeight := desc.CapHeight
	if capHeight == 0 {
		capHeight = desc.Ascent
	}

	dict := pdf.NewStructDict(d, pdf.FontDescriptorSchema)
	for _, entry := range []struct {
		key pdf.Name
		val pdf.Object
	}{
		{"FontName", pdf.Name(desc.FontName)},
		{"Flags", flags},
		{"FontBBox", desc.FontBBox},
		{"ItalicAngle", pdf.Number(desc.ItalicAngle)},
		{"Ascent", pdf.Number(desc.Ascent)},
		{"Descent", pdf.Number(desc.Descent)},
		{"CapHeight", pdf.Number(capHeight)},
		{"StemV", pdf.Number(desc.StemV)},
		{"MissingWidth", pdf.Number(desc.MissingWidth)},
		{"FontFile2", fontFile},
	} {
		if err := dict.Set(entry.key, entry.val); err != nil {
			return 0, err
		}
	}
	return dict.Indirect(), nil
}

// Font descriptor flag bits.
// See section 9.8.2 of PDF 32000-1:2008.
const (
	flagFixedPitch  pdf.Integer = 1 << 0  // all glyphs have the same width
	flagSerif       pdf.Integer = 1 << 1  // glyphs have serifs
	flagSymbolic    pdf.Integer = 1 << 2  // font uses glyphs outside the Adobe standard Latin set
	flagScript      pdf.Integer = 1 << 3  // glyphs resemble cursive handwriting
	flagNonsymbolic pdf.Integer = 1 << 5  // font uses the Adobe standard Latin set or a subset
	flagItalic      pdf.Integer = 1 << 6  // dominant vertical strokes are slanted
	flagAllCap      pdf.Integer = 1 << 16 // font contains no lowercase letters
	flagSmallCap    pdf.Integer = 1 << 17 // lowercase glyphs are small capitals
	flagForceBold   pdf.Integer = 1 << 18 // emphasise thin strokes at small sizes
)
