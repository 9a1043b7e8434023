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
	"bytes"
	"testing"
	"time"
)

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"Größenwahn",
		"一期一会",
		"smile \U0001F600",
	}
	for _, in := range cases {
		enc := TextString(in)
		out := enc.AsTextString()
		if out != in {
			t.Errorf("round trip broken, %q became %q", in, out)
		}
	}
}

func TestTextStringEncoding(t *testing.T) {
	if enc := TextString("abc"); !bytes.Equal(enc, []byte("abc")) {
		t.Errorf("ASCII needlessly re-encoded: % x", enc)
	}
	enc := TextString("Tür")
	if len(enc) < 2 || enc[0] != 0xFE || enc[1] != 0xFF {
		t.Errorf("missing UTF-16 marker: % x", enc)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", 2*60*60)
	in := time.Date(2026, 8, 25, 14, 30, 5, 0, loc)
	out := Date(in)
	want := "D:20260825143005+02'00"
	if string(out) != want {
		t.Errorf("wrong date string, expected %q but got %q", want, out)
	}
}

func TestDateUTC(t *testing.T) {
	in := time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)
	out := Date(in)
	want := "D:19991231235959+00'00"
	if string(out) != want {
		t.Errorf("wrong date string, expected %q but got %q", want, out)
	}
}

func FuzzTextString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("Grüße")
	f.Add("\U0001F600")
	f.Fuzz(func(t *testing.T, s string) {
		enc := TextString(s)
		out := enc.AsTextString()
		// Unpaired surrogates and invalid UTF-8 cannot survive the
		// round trip, everything else must.
		if bytes.Equal([]byte(s), []byte(string([]rune(s)))) {
			if out != s {
				t.Errorf("round trip broken, %q became %q", s, out)
			}
		}
	})
}
