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
	"bytes"
	"slices"

	"seehuhn.de/go/sfnt/glyph"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/font/tounicode"
)

// Finish resolves the placeholder font dictionary.
//
// If no text was typeset with the font, the dictionary entry is marked as
// free so that it appears as an unused slot in the cross-reference table.
// Otherwise the font is embedded: the descendant CIDFontType2 dictionary,
// the font descriptor, the font program and the ToUnicode CMap are written
// to the document, and the Type0 dictionary is filled in.
//
// Finish must be called exactly once, after the last text-drawing call.
func (f *Font) Finish() error {
	d := f.data
	if len(f.used) == 0 {
		d.MarkFree(f.Dict.Indirect())
		return nil
	}

	baseFont := d.Name(f.info.PostScriptName())
	q := 1000 / float64(f.info.UnitsPerEm)

	glyphs := f.glyphSet()

	ww := make([]glyphWidth, len(glyphs))
	for i, g := range glyphs {
		ww[i] = glyphWidth{
			GID:   g.GID,
			Width: f.info.GlyphWidth(g.GID),
		}
	}

	fontFileRef := d.Alloc()
	d.Put(fontFileRef, &pdf.Stream{
		Dict: pdf.Dict{
			"Subtype": pdf.Name("TrueType"),
			"Length1": pdf.Integer(len(f.fileBytes)),
		},
		Data: f.fileBytes,
	})

	bbox := f.info.BBox()
	desc := &Descriptor{
		FontName: f.info.PostScriptName(),

		IsSymbolic: true,
		IsItalic:   f.info.IsItalic,

		FontBBox: &pdf.Rectangle{
			LLx: bbox.LLx.AsFloat(q),
			LLy: bbox.LLy.AsFloat(q),
			URx: bbox.URx.AsFloat(q),
			URy: bbox.URy.AsFloat(q),
		},
		ItalicAngle:  f.info.ItalicAngle,
		Ascent:       f.info.Ascent.AsFloat(q),
		Descent:      f.info.Descent.AsFloat(q),
		CapHeight:    f.info.CapHeight.AsFloat(q),
		StemV:        0,
		MissingWidth: 250,
	}
	descRef, err := desc.Embed(d, fontFileRef)
	if err != nil {
		return err
	}

	cidFont := pdf.NewStructDict(d, pdf.FontSchema)
	for _, entry := range []struct {
		key pdf.Name
		val pdf.Object
	}{
		{"Subtype", pdf.Name("CIDFontType2")},
		{"BaseFont", baseFont},
		{"CIDToGIDMap", pdf.Name("Identity")},
		{"CIDSystemInfo", pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		}},
		{"W", encodeWidths(ww, q)},
		{"FontDescriptor", descRef},
	} {
		if err := cidFont.Set(entry.key, entry.val); err != nil {
			return err
		}
	}

	toUnicode := &tounicode.CMap{}
	for _, g := range glyphs {
		toUnicode.Entries = append(toUnicode.Entries, tounicode.Entry{
			GID:  g.GID,
			Rune: g.Rune,
		})
	}
	buf := &bytes.Buffer{}
	if err := toUnicode.Write(buf); err != nil {
		return err
	}
	toUnicodeRef := d.Alloc()
	d.Put(toUnicodeRef, &pdf.Stream{Dict: pdf.Dict{}, Data: buf.Bytes()})

	for _, entry := range []struct {
		key pdf.Name
		val pdf.Object
	}{
		{"Subtype", pdf.Name("Type0")},
		{"BaseFont", baseFont},
		{"Encoding", pdf.Name("Identity-H")},
		{"DescendantFonts", pdf.Array{cidFont.Indirect()}},
		{"ToUnicode", toUnicodeRef},
	} {
		if err := f.Dict.Set(entry.key, entry.val); err != nil {
			return err
		}
	}
	return nil
}

// glyphChar is one glyph of the font's character set, together with the
// smallest code point that maps to it.
type glyphChar struct {
	GID  glyph.ID
	Rune rune
}

// glyphSet enumerates the character set of the font: every code point of
// the font's cmap which maps to a glyph, sorted by ascending glyph ID with
// duplicate IDs removed.
func (f *Font) glyphSet() []glyphChar {
	var gg []glyphChar
	low, high := f.cmap.CodeRange()
	for r := low; r <= high; r++ {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		gg = append(gg, glyphChar{GID: gid, Rune: r})
	}
	slices.SortFunc(gg, func(a, b glyphChar) int {
		if a.GID != b.GID {
			return int(a.GID) - int(b.GID)
		}
		return int(a.Rune) - int(b.Rune)
	})
	gg = slices.CompactFunc(gg, func(a, b glyphChar) bool {
		return a.GID == b.GID
	})
	return gg
}
