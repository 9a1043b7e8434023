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

package pagetree

import (
	"bytes"
	"errors"
	"testing"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

func TestAppendPage(t *testing.T) {
	d := pdf.NewData(pdf.V1_7)
	w, err := NewWriter(d)
	if err != nil {
		t.Fatal(err)
	}

	box := &pdf.Rectangle{URx: 595, URy: 842}
	var refs []pdf.Reference
	for i := 0; i < 3; i++ {
		page, ref, err := w.AppendPage(box)
		if err != nil {
			t.Fatal(err)
		}
		if page.Get("Parent") != w.RootRef() {
			t.Errorf("page %d has wrong parent", i)
		}
		refs = append(refs, ref)
	}

	if w.NumPages() != 3 {
		t.Errorf("expected 3 pages, got %d", w.NumPages())
	}

	root := d.Catalog().Get("Pages")
	rootDict, ok := d.Get(root.(pdf.Reference)).(*pdf.StructDict)
	if !ok {
		t.Fatal("page tree root not registered")
	}
	if rootDict.Get("Count") != pdf.Integer(3) {
		t.Errorf("wrong page count: %v", rootDict.Get("Count"))
	}
	kids, ok := rootDict.Get("Kids").(pdf.Array)
	if !ok || len(kids) != 3 {
		t.Fatalf("wrong kids array: %v", rootDict.Get("Kids"))
	}
	for i, kid := range kids {
		if kid != refs[i] {
			t.Errorf("kid %d is %v, expected %v", i, kid, refs[i])
		}
	}
}

func TestPageLookup(t *testing.T) {
	d := pdf.NewData(pdf.V1_7)
	w, err := NewWriter(d)
	if err != nil {
		t.Fatal(err)
	}
	_, ref, err := w.AppendPage(&pdf.Rectangle{URx: 100, URy: 100})
	if err != nil {
		t.Fatal(err)
	}

	got, err := w.Page(0)
	if err != nil || got != ref {
		t.Errorf("Page(0) = %v, %v", got, err)
	}
	for _, i := range []int{-1, 1, 99} {
		if _, err := w.Page(i); !errors.Is(err, pdf.ErrOutOfRange) {
			t.Errorf("index %d: expected ErrOutOfRange, got %v", i, err)
		}
	}

	sd, err := w.PageDict(0)
	if err != nil {
		t.Fatal(err)
	}
	if sd.Get("MediaBox") == nil {
		t.Error("page dictionary has no media box")
	}
}

func TestTreeSerialises(t *testing.T) {
	d := pdf.NewData(pdf.V1_7)
	w, err := NewWriter(d)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := w.AppendPage(&pdf.Rectangle{URx: 595, URy: 842}); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"/Type /Pages", "/Type /Page", "/Count 1"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}
