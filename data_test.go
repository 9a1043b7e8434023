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
	"testing"
)

func TestAlloc(t *testing.T) {
	d := NewData(V1_7)
	for i := uint32(1); i <= 3; i++ {
		ref := d.Alloc()
		if ref.Number() != i {
			t.Errorf("expected object number %d, got %d", i, ref.Number())
		}
		if ref.Generation() != 0 {
			t.Errorf("new object %d has generation %d", i, ref.Generation())
		}
	}
}

func TestAllocReuse(t *testing.T) {
	d := NewData(V1_7)
	refs := make([]Reference, 4)
	for i := range refs {
		refs[i] = d.Alloc()
		d.Put(refs[i], Integer(i))
	}

	// Deleting releases the number for reuse ...
	d.Delete(refs[1])
	if ref := d.Alloc(); ref.Number() != refs[1].Number() {
		t.Errorf("deleted number not reused, got %d", ref.Number())
	}

	// ... marking free does not.
	d.MarkFree(refs[2])
	if ref := d.Alloc(); ref.Number() != 5 {
		t.Errorf("freed number wrongly reused, got %d", ref.Number())
	}
}

func TestPutGet(t *testing.T) {
	d := NewData(V1_7)
	ref := d.Alloc()
	d.Put(ref, Integer(42))
	obj := d.Get(ref)
	if obj != Integer(42) {
		t.Errorf("stored object lost, got %v", obj)
	}

	// A reference with the wrong generation must not resolve.
	wrong := NewReference(ref.Number(), ref.Generation()+1)
	if obj := d.Get(wrong); obj != nil {
		t.Errorf("wrong generation resolved to %v", obj)
	}
}

func TestGetFreed(t *testing.T) {
	d := NewData(V1_7)
	ref := d.Alloc()
	d.Put(ref, Name("gone"))
	d.MarkFree(ref)
	if obj := d.Get(ref); obj != nil {
		t.Errorf("freed object still resolves to %v", obj)
	}
}

func TestNameInterning(t *testing.T) {
	d := NewData(V1_7)
	a := d.Name("Helvetica")
	b := d.Name("Helvetica")
	if a != b {
		t.Errorf("interned names differ: %q %q", a, b)
	}
	if len(d.names) != 1 {
		t.Errorf("expected 1 interned name, have %d", len(d.names))
	}
	d.Name("Courier")
	if len(d.names) != 2 {
		t.Errorf("expected 2 interned names, have %d", len(d.names))
	}
}

func TestInfoDict(t *testing.T) {
	info := &Info{
		Title:  "Test Document",
		Author: "Jane Doe",
		Custom: map[string]string{"Project": "Website"},
	}
	dict := info.AsDict()
	if dict["Title"].(String).AsTextString() != "Test Document" {
		t.Errorf("title missing from info dict: %v", dict)
	}
	if dict["Project"].(String).AsTextString() != "Website" {
		t.Errorf("custom entry missing from info dict: %v", dict)
	}
	if _, present := dict["Subject"]; present {
		t.Errorf("empty field wrongly serialised")
	}
}
