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

package tounicode

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf16"
)

func TestUTF16Hex(t *testing.T) {
	cases := []struct {
		r        rune
		expected string
	}{
		{0x0041, "0041"},
		{0x00FC, "00FC"},
		{0x0000, "0000"},
		{0xFFFF, "FFFF"},
		{0x10000, "D800DC00"},
		{0x1F600, "D83DDE00"},
		{0x10FFFF, "DBFFDFFF"},
	}
	for _, test := range cases {
		got, err := utf16Hex(test.r)
		if err != nil {
			t.Errorf("%#x: unexpected error: %v", test.r, err)
			continue
		}
		if got != test.expected {
			t.Errorf("%#x: got %q, want %q", test.r, got, test.expected)
		}
	}
}

func TestUTF16HexInvalid(t *testing.T) {
	for _, r := range []rune{-1, 0xD800, 0xDFFF, 0x110000, 0x7FFFFFFF} {
		if _, err := utf16Hex(r); err == nil {
			t.Errorf("%#x: expected an error", r)
		}
	}
}

// TestUTF16HexAgainstStdlib cross-checks the surrogate arithmetic against
// the unicode/utf16 package.
func TestUTF16HexAgainstStdlib(t *testing.T) {
	for _, r := range []rune{0x10000, 0x1D11E, 0x1F600, 0x10FFFF} {
		high, low := utf16.EncodeRune(r)
		expected := hex4(uint16(high)) + hex4(uint16(low))
		got, err := utf16Hex(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != expected {
			t.Errorf("%#x: got %q, want %q", r, got, expected)
		}
	}
}

func hex4(u uint16) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		digits[u>>12&0xF],
		digits[u>>8&0xF],
		digits[u>>4&0xF],
		digits[u&0xF],
	})
}

func TestWrite(t *testing.T) {
	c := &CMap{
		Entries: []Entry{
			{GID: 65, Rune: 'A'},
			{GID: 0x03E8, Rune: 0x1F600},
		},
	}
	buf := &bytes.Buffer{}
	if err := c.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, part := range []string{
		"/CIDInit /ProcSet findresource begin\r\n",
		"/CMapName /Adobe-Identity-UCS def\r\n",
		"/Registry (Adobe)\r\n",
		"/Ordering (UCS)\r\n",
		"1 begincodespacerange\r\n<0000><ffff>\r\nendcodespacerange\r\n",
		"2 beginbfchar\r\n",
		"<0041> <0041>\r\n",
		"<03E8> <D83DDE00>\r\n",
		"endbfchar\r\n",
		"endcmap\r\n",
	} {
		if !strings.Contains(out, part) {
			t.Errorf("output is missing %q", part)
		}
	}

	if !strings.HasPrefix(out, "/CIDInit") {
		t.Errorf("unexpected start of output: %q", out[:20])
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Errorf("output contains bare newlines")
	}
}

func TestWriteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&CMap{}).Write(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "0 beginbfchar\r\nendbfchar\r\n") {
		t.Errorf("wrong bfchar section for an empty cmap:\n%s", buf.String())
	}
}

func TestWriteInvalidRune(t *testing.T) {
	c := &CMap{Entries: []Entry{{GID: 1, Rune: 0x110000}}}
	if err := c.Write(&bytes.Buffer{}); err == nil {
		t.Error("expected an error for a code point beyond U+10FFFF")
	}
}
