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

// Package font embeds TrueType fonts into PDF files.
//
// Fonts are always embedded as composite Type0 fonts with a CIDFontType2
// descendant, using the Identity-H encoding.  This construction addresses
// glyphs by glyph ID rather than by single-byte character code and so
// supports arbitrary Unicode text.
//
// A [Font] is created eagerly when the font program is loaded, so that
// pages can refer to the font dictionary before any text is drawn.  The
// actual font dictionaries are only filled in by [Font.Finish], once the
// set of characters used in the document is known.  Fonts which were never
// used are not embedded at all.
package font

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Font is a TrueType font loaded into a PDF document.
//
// The zero value is not usable; use [New] to load a font.
type Font struct {
	// Dict is the top-level Type0 font dictionary.  It is registered with
	// the document immediately, but its entries are only filled in by
	// [Font.Finish].
	Dict *pdf.StructDict

	data      *pdf.Data
	fileBytes []byte
	info      *sfnt.Font
	cmap      sfntcmap.Subtable

	used map[rune]struct{}
}

// New parses a TrueType font program and registers a placeholder font
// dictionary with the document.  The returned Font can be used for drawing
// text immediately; the dictionary contents are written by [Font.Finish].
func New(d *pdf.Data, fileBytes []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, err
	}
	if !info.IsGlyf() {
		return nil, fmt.Errorf("font %q: no TrueType outlines", info.PostScriptName())
	}
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", info.PostScriptName(), err)
	}

	dict := pdf.NewStructDict(d, pdf.FontSchema)
	dict.Indirect()

	f := &Font{
		Dict:      dict,
		data:      d,
		fileBytes: fileBytes,
		info:      info,
		cmap:      cmap,
		used:      make(map[rune]struct{}),
	}
	return f, nil
}

// Ref returns the reference of the font dictionary.
func (f *Font) Ref() pdf.Reference {
	return f.Dict.Indirect()
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	return f.info.PostScriptName()
}

// Typeset maps a string to the corresponding sequence of glyph IDs and
// records every rune of s as used.  Characters which have no glyph in the
// font map to glyph ID 0 (the .notdef glyph).
func (f *Font) Typeset(s string) []glyph.ID {
	var gg []glyph.ID
	for _, r := range s {
		f.used[r] = struct{}{}
		gg = append(gg, f.cmap.Lookup(r))
	}
	return gg
}

// TextWidth returns the width of s, in points, when typeset at the given
// font size.
func (f *Font) TextWidth(s string, size float64) float64 {
	q := size / float64(f.info.UnitsPerEm)
	var w float64
	for _, r := range s {
		gid := f.cmap.Lookup(r)
		w += float64(f.info.GlyphWidth(gid)) * q
	}
	return w
}

// Ascent returns the font ascent, in points, at the given font size.
func (f *Font) Ascent(size float64) float64 {
	return float64(f.info.Ascent) * size / float64(f.info.UnitsPerEm)
}

// Descent returns the font descent, in points, at the given font size.
// The result is negative.
func (f *Font) Descent(size float64) float64 {
	return float64(f.info.Descent) * size / float64(f.info.UnitsPerEm)
}

// IsUsed reports whether any text has been typeset with the font.
func (f *Font) IsUsed() bool {
	return len(f.used) > 0
}
