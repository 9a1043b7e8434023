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

// Package tounicode writes ToUnicode CMap streams.
//
// A ToUnicode CMap maps the two-byte character codes of a composite font
// with Identity-H encoding back to Unicode text, so that text extraction
// and copy-and-paste work on the generated files.
package tounicode

import (
	"fmt"
	"io"
	"text/template"

	"seehuhn.de/go/sfnt/glyph"
)

// Entry maps one character code to a Unicode code point.
type Entry struct {
	GID  glyph.ID // the character code, equal to the glyph ID under Identity-H
	Rune rune
}

// CMap is a ToUnicode CMap with a single bfchar section.  Entries must be
// sorted by ascending glyph ID and free of duplicate IDs.
type CMap struct {
	Entries []Entry
}

// Write writes the CMap in the textual CMap format.  An error is returned
// if an entry's code point cannot be represented in UTF-16.
func (c *CMap) Write(w io.Writer) error {
	return cmapTmpl.Execute(w, c)
}

var cmapTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"bfchar": formatBFChar,
}).Parse("/CIDInit /ProcSet findresource begin\r\n" +
	"12 dict begin\r\n" +
	"begincmap\r\n" +
	"/CIDSystemInfo\r\n" +
	"<< /Registry (Adobe)\r\n" +
	"/Ordering (UCS)\r\n" +
	"/Supplement 0\r\n" +
	">> def\r\n" +
	"/CMapName /Adobe-Identity-UCS def\r\n" +
	"/CMapType 2 def\r\n" +
	"1 begincodespacerange\r\n" +
	"<0000><ffff>\r\n" +
	"endcodespacerange\r\n" +
	"{{len .Entries}} beginbfchar\r\n" +
	"{{range .Entries}}{{bfchar .}}\r\n" +
	"{{end}}endbfchar\r\n" +
	"endcmap\r\n" +
	"CMapName currentdict /CMap defineresource pop\r\n" +
	"end\r\n" +
	"end\r\n"))

func formatBFChar(e Entry) (string, error) {
	hex, err := utf16Hex(e.Rune)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<%04X> <%s>", uint16(e.GID), hex), nil
}

// utf16Hex returns the UTF-16 big-endian encoding of r as uppercase hex
// digits: four digits for code points in the Basic Multilingual Plane,
// eight digits (a surrogate pair) for code points up to U+10FFFF.
// Code points reserved for surrogates cannot be encoded.
func utf16Hex(r rune) (string, error) {
	switch {
	case r >= 0xD800 && r <= 0xDFFF:
		return "", fmt.Errorf("code point %#x cannot be encoded as UTF-16", r)
	case r >= 0 && r <= 0xFFFF:
		return fmt.Sprintf("%04X", r), nil
	case r > 0xFFFF && r <= 0x10FFFF:
		high := (r-0x10000)/0x400 + 0xD800
		low := (r-0x10000)%0x400 + 0xDC00
		return fmt.Sprintf("%04X%04X", high, low), nil
	default:
		return "", fmt.Errorf("code point %#x cannot be encoded as UTF-16", r)
	}
}
