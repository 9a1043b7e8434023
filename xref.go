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

// xrefEntry describes one entry of the cross-reference table.  For in-use
// entries, pos is the byte offset of the object in the file; a value of -1
// means the offset has not been recorded yet.
type xrefEntry struct {
	pos   int64
	gen   uint16
	inUse bool
}

// writeXRef writes the cross-reference table for the given entries, keyed
// by object number.  Entry 0, the head of the free list, is added by this
// function.  Entries with consecutive object numbers are grouped into
// subsections; each row uses the fixed-width format the PDF specification
// prescribes, since readers locate the fields by byte position.
func writeXRef(w io.Writer, entries map[uint32]*xrefEntry) error {
	entries[0] = &xrefEntry{pos: 0, gen: 65535, inUse: false}
	defer delete(entries, 0)

	nums := maps.Keys(entries)
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	_, err := io.WriteString(w, "xref\r\n")
	if err != nil {
		return err
	}

	for start := 0; start < len(nums); {
		end := start + 1
		for end < len(nums) && nums[end] == nums[end-1]+1 {
			end++
		}

		_, err = fmt.Fprintf(w, "%d %d\r\n", nums[start], end-start)
		if err != nil {
			return err
		}
		for _, num := range nums[start:end] {
			entry := entries[num]
			if entry.inUse {
				if entry.pos < 0 {
					return fmt.Errorf("object %d: %w", num, ErrNoOffset)
				}
				_, err = fmt.Fprintf(w, "%010d %05d n\r\n", entry.pos, entry.gen)
			} else {
				_, err = fmt.Fprintf(w, "%010d %05d f\r\n", entry.pos, entry.gen)
			}
			if err != nil {
				return err
			}
		}
		start = end
	}
	return nil
}
