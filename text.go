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

package pdf

import (
	"time"
	"unicode/utf16"
)

// TextString creates a String object using the "text string" encoding:
// PDFDocEncoding where the text allows it, UTF-16BE with a byte order mark
// otherwise.
func TextString(s string) String {
	if buf, ok := pdfDocEncode(s); ok {
		return buf
	}
	return utf16Encode(s)
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding utf-8 encoded string.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		return utf16Decode(x[2:])
	}
	return string(x)
}

// pdfDocEncode encodes s using PDFDocEncoding.  Only the subset of
// PDFDocEncoding which coincides with printable ASCII (plus tab, newline
// and carriage return) is used; for any other text the second return value
// is false and the caller must fall back to UTF-16.
func pdfDocEncode(s string) (String, bool) {
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || r > 0x7e {
			return nil, false
		}
	}
	return String(s), true
}

func utf16Encode(s string) String {
	rr := utf16.Encode([]rune(s))
	res := make(String, 2*len(rr)+2)
	res[0] = 0xFE
	res[1] = 0xFF
	for i, r := range rr {
		res[2*i+2] = byte(r >> 8)
		res[2*i+3] = byte(r)
	}
	return res
}

func utf16Decode(buf []byte) string {
	var words []uint16
	for i := 0; i+1 < len(buf); i += 2 {
		words = append(words, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(words))
}

// Date creates a String object encoding the given date and time in the
// form "D:20060102150405-07'00".
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}
