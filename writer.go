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
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// posWriter wraps an io.Writer and keeps track of the number of bytes
// written, so that byte offsets of indirect objects can be recorded.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

// Write serialises the document to w.  The file consists of the header
// line with the PDF version and a second comment line of high-bit bytes,
// every in-use indirect object in ascending object number order, the
// cross-reference table, and the trailer.  All line breaks are CR LF.
//
// Output is all-or-nothing: if Write returns an error, the bytes written
// so far do not form a valid PDF file.
func (d *Data) Write(w io.Writer) error {
	if err := d.ensureCatalog(); err != nil {
		return err
	}
	rootRef, err := d.meta.Catalog.Ref()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if d.meta.Info != nil {
		if d.infoRef == 0 {
			d.infoRef = d.Alloc()
		}
		d.Put(d.infoRef, d.meta.Info.AsDict())
	}

	nums := maps.Keys(d.objects)
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	xrefs := make(map[uint32]*xrefEntry, len(d.objects))
	for _, num := range nums {
		entry := d.objects[num]
		if !entry.inUse {
			xrefs[num] = &xrefEntry{pos: 0, gen: entry.gen, inUse: false}
			continue
		}
		if entry.obj == nil {
			return fmt.Errorf("object %d allocated but never filled", num)
		}
		if sd, ok := entry.obj.(*StructDict); ok {
			if err := sd.checkComplete(); err != nil {
				return err
			}
		}
		xrefs[num] = &xrefEntry{pos: -1, gen: entry.gen, inUse: true}
	}

	ver, err := d.meta.Version.ToString()
	if err != nil {
		return err
	}

	out := &posWriter{w: w}
	_, err = fmt.Fprintf(out, "%%PDF-%s\r\n%%\x80\x80\x80\x80\r\n", ver)
	if err != nil {
		return err
	}

	for _, num := range nums {
		entry := d.objects[num]
		if !entry.inUse {
			continue
		}
		xrefs[num].pos = out.pos
		_, err = fmt.Fprintf(out, "%d %d obj\r\n", num, entry.gen)
		if err != nil {
			return err
		}
		err = entry.obj.PDF(out)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, "\r\nendobj\r\n")
		if err != nil {
			return err
		}
	}

	xrefPos := out.pos
	err = writeXRef(out, xrefs)
	if err != nil {
		return err
	}

	trailer := Dict{}
	for key, val := range d.meta.Trailer {
		trailer[key] = val
	}
	trailer["Size"] = Integer(d.maxNumber() + 1)
	trailer["Root"] = rootRef
	if d.infoRef != 0 {
		trailer["Info"] = d.infoRef
	}

	_, err = io.WriteString(out, "trailer\r\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\r\nstartxref\r\n%d\r\n%%%%EOF", xrefPos)
	return err
}
