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
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestFileFraming(t *testing.T) {
	d := NewData(V1_7)
	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	if !bytes.HasPrefix(out, []byte("%PDF-1.7\r\n%\x80\x80\x80\x80\r\n")) {
		t.Errorf("wrong header: %q", out[:min(24, len(out))])
	}
	if !bytes.HasSuffix(out, []byte("%%EOF")) {
		t.Errorf("file does not end with %%%%EOF: %q", out[max(0, len(out)-16):])
	}
}

func TestStartXRef(t *testing.T) {
	d := NewData(V1_6)
	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	xrefPos := startXRefPos(t, out)
	if !bytes.HasPrefix(out[xrefPos:], []byte("xref\r\n")) {
		t.Errorf("startxref does not point at the xref keyword: %q",
			out[xrefPos:xrefPos+min(6, int64(len(out))-xrefPos)])
	}
}

func TestXRefOffsets(t *testing.T) {
	d := NewData(V1_7)
	for _, obj := range []Object{
		Integer(1),
		String("some text"),
		Dict{"Key": Name("Value")},
		&Stream{Dict: Dict{}, Data: []byte("payload\r\nwith breaks")},
	} {
		d.Put(d.Alloc(), obj)
	}
	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	rows := parseXRef(t, out)
	checked := 0
	for num, row := range rows {
		if !row.inUse {
			continue
		}
		head := fmt.Sprintf("%d %d obj\r\n", num, row.gen)
		if !bytes.HasPrefix(out[row.pos:], []byte(head)) {
			t.Errorf("offset %d of object %d does not point at %q",
				row.pos, num, head)
		}
		checked++
	}
	if checked != 6 {
		t.Errorf("expected 6 in-use objects, found %d", checked)
	}
}

func TestXRefFreeEntries(t *testing.T) {
	d := NewData(V1_7)
	keep := d.Alloc()
	d.Put(keep, Integer(1))
	gone := d.Alloc()
	d.Put(gone, Name("unused"))
	d.MarkFree(gone)

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	rows := parseXRef(t, out)
	row, ok := rows[gone.Number()]
	if !ok {
		t.Fatalf("freed object %d missing from xref", gone.Number())
	}
	if row.inUse {
		t.Errorf("freed object %d listed as in use", gone.Number())
	}
	if bytes.Contains(out, []byte(fmt.Sprintf("%d 0 obj", gone.Number()))) {
		t.Errorf("freed object %d still has a body", gone.Number())
	}
	if row0 := rows[0]; row0.inUse || row0.gen != 65535 {
		t.Errorf("bad free list head: %+v", row0)
	}
}

func TestXRefSubsections(t *testing.T) {
	d := NewData(V1_7)
	refs := make([]Reference, 4)
	for i := range refs {
		refs[i] = d.Alloc()
		d.Put(refs[i], Integer(i))
	}
	if err := d.ensureCatalog(); err != nil { // catalog 5, page tree root 6
		t.Fatal(err)
	}
	d.Delete(refs[2]) // object 3, leaves a numbering gap

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	// Remaining numbers are 0 (free list head), 1, 2 and 4, 5, 6.  The gap
	// at 3 forces two subsections.
	xref := out[startXRefPos(t, out):]
	if !bytes.Contains(xref, []byte("0 3\r\n")) {
		t.Errorf("missing first subsection header")
	}
	if !bytes.Contains(xref, []byte("4 3\r\n")) {
		t.Errorf("missing second subsection header")
	}
	rows := parseXRef(t, out)
	if _, ok := rows[3]; ok {
		t.Errorf("deleted object 3 still listed")
	}
}

func TestTrailer(t *testing.T) {
	d := NewData(V1_7)
	d.GetMeta().Info = &Info{
		Title:        "Trailer Test",
		CreationDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	ref := d.Alloc()
	d.Put(ref, Integer(7))

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	i := strings.LastIndex(out, "trailer\r\n")
	if i < 0 {
		t.Fatal("no trailer")
	}
	trailer := out[i:]
	wantSize := fmt.Sprintf("/Size %d", d.maxNumber()+1)
	if !strings.Contains(trailer, wantSize) {
		t.Errorf("missing %q in %q", wantSize, trailer)
	}
	if !strings.Contains(trailer, "/Root ") {
		t.Errorf("missing /Root in %q", trailer)
	}
	if !strings.Contains(trailer, "/Info ") {
		t.Errorf("missing /Info in %q", trailer)
	}
	if !strings.Contains(out, "(Trailer Test)") {
		t.Errorf("info dictionary not written")
	}
}

func TestWriteUnfilled(t *testing.T) {
	d := NewData(V1_7)
	d.Alloc() // reserved but never filled
	err := d.Write(&bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "never filled") {
		t.Errorf("expected error about unfilled object, got %v", err)
	}
}

func TestWriteIncomplete(t *testing.T) {
	d := NewData(V1_7)
	page := NewStructDict(d, PageSchema)
	page.Indirect() // /Parent and /MediaBox never set
	err := d.Write(&bytes.Buffer{})
	if err == nil {
		t.Fatal("incomplete page dictionary accepted")
	}
}

func TestWriteDeterministic(t *testing.T) {
	build := func() []byte {
		d := NewData(V1_7)
		d.Put(d.Alloc(), Dict{"B": Integer(2), "A": Integer(1), "C": Integer(3)})
		buf := &bytes.Buffer{}
		if err := d.Write(buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	first := build()
	for range 4 {
		if !bytes.Equal(first, build()) {
			t.Fatal("output differs between runs")
		}
	}
}

// startXRefPos extracts the byte offset stored in the startxref line.
func startXRefPos(t *testing.T, out []byte) int64 {
	t.Helper()
	i := bytes.LastIndex(out, []byte("startxref\r\n"))
	if i < 0 {
		t.Fatal("no startxref")
	}
	rest := out[i+len("startxref\r\n"):]
	j := bytes.Index(rest, []byte("\r\n"))
	if j < 0 {
		t.Fatal("unterminated startxref value")
	}
	pos, err := strconv.ParseInt(string(rest[:j]), 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

type xrefRow struct {
	pos   int64
	gen   uint16
	inUse bool
}

// parseXRef reads back the cross-reference table of a serialised file.
func parseXRef(t *testing.T, out []byte) map[uint32]xrefRow {
	t.Helper()
	body := out[startXRefPos(t, out):]
	if !bytes.HasPrefix(body, []byte("xref\r\n")) {
		t.Fatalf("xref keyword missing at startxref offset")
	}
	body = body[len("xref\r\n"):]

	rows := make(map[uint32]xrefRow)
	for !bytes.HasPrefix(body, []byte("trailer")) {
		nl := bytes.Index(body, []byte("\r\n"))
		if nl < 0 {
			t.Fatal("truncated xref section")
		}
		var start, count uint32
		_, err := fmt.Sscanf(string(body[:nl]), "%d %d", &start, &count)
		if err != nil {
			t.Fatalf("bad subsection header %q: %v", body[:nl], err)
		}
		body = body[nl+2:]
		for i := uint32(0); i < count; i++ {
			if len(body) < 20 {
				t.Fatal("truncated xref row")
			}
			line := body[:20]
			if line[18] != '\r' || line[19] != '\n' {
				t.Fatalf("xref row not 20 bytes: %q", line)
			}
			pos, err := strconv.ParseInt(string(line[0:10]), 10, 64)
			if err != nil {
				t.Fatal(err)
			}
			gen, err := strconv.ParseUint(string(line[11:16]), 10, 16)
			if err != nil {
				t.Fatal(err)
			}
			var inUse bool
			switch line[17] {
			case 'n':
				inUse = true
			case 'f':
				inUse = false
			default:
				t.Fatalf("bad entry type in %q", line)
			}
			rows[start+i] = xrefRow{pos: pos, gen: uint16(gen), inUse: inUse}
			body = body[20:]
		}
	}
	return rows
}
