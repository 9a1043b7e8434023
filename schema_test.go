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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaFixedKey(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	err := cat.Set("Type", Name("NotACatalog"))
	var sErr *SchemaError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if cat.Get("Type") != Name("Catalog") {
		t.Errorf("fixed entry was modified: %v", cat.Get("Type"))
	}
}

func TestSchemaUnknownKey(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	err := cat.Set("Banana", Integer(1))
	var sErr *SchemaError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if sErr.Key != "Banana" {
		t.Errorf("wrong key in error: %v", sErr)
	}
}

func TestSchemaKindMismatch(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	err := cat.Set("Pages", Integer(1))
	var sErr *SchemaError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if err := cat.Set("Pages", NewReference(2, 0)); err != nil {
		t.Errorf("valid value rejected: %v", err)
	}
}

func TestSchemaVersionGate(t *testing.T) {
	// /OCProperties needs PDF 1.5 and must be rejected in a 1.4 file.
	d := NewData(V1_4)
	cat := NewStructDict(d, CatalogSchema)
	if cat.IsApplicable("OCProperties") {
		t.Errorf("1.5 entry applicable in 1.4 document")
	}
	err := cat.Set("OCProperties", Dict{})
	var vErr *VersionError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *VersionError, got %v", err)
	}
	if vErr.Earliest != V1_5 {
		t.Errorf("wrong version in error: %v", vErr)
	}

	d = NewData(V1_5)
	cat = NewStructDict(d, CatalogSchema)
	if !cat.IsApplicable("OCProperties") {
		t.Errorf("1.5 entry not applicable in 1.5 document")
	}
	if err := cat.Set("OCProperties", Dict{}); err != nil {
		t.Errorf("1.5 entry rejected in 1.5 document: %v", err)
	}
}

func TestMissingRequired(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	if diff := cmp.Diff([]Name{"Pages"}, cat.MissingRequired()); diff != "" {
		t.Errorf("wrong missing keys (-want +got):\n%s", diff)
	}
	if err := cat.Set("Pages", NewReference(1, 0)); err != nil {
		t.Fatal(err)
	}
	if missing := cat.MissingRequired(); len(missing) != 0 {
		t.Errorf("keys still missing after Set: %v", missing)
	}
}

func TestPageTreeRootParent(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	cat.Indirect()
	d.GetMeta().Catalog = cat

	root := NewStructDict(d, PageTreeSchema)
	rootRef := root.Indirect()
	if err := cat.Set("Pages", rootRef); err != nil {
		t.Fatal(err)
	}

	// The root node must not require (or even accept) a /Parent.
	if cmp.Diff([]Name{"Count", "Kids"}, root.MissingRequired()) != "" {
		t.Errorf("wrong missing keys for root: %v", root.MissingRequired())
	}
	if root.IsApplicable("Parent") {
		t.Errorf("/Parent applicable on page tree root")
	}
	if err := root.Set("Parent", rootRef); err == nil {
		t.Errorf("/Parent accepted on page tree root")
	}

	// Interior nodes do require it.
	inner := NewStructDict(d, PageTreeSchema)
	inner.Indirect()
	if cmp.Diff([]Name{"Count", "Kids", "Parent"}, inner.MissingRequired()) != "" {
		t.Errorf("wrong missing keys for interior node: %v", inner.MissingRequired())
	}
	if err := inner.Set("Parent", rootRef); err != nil {
		t.Errorf("/Parent rejected on interior node: %v", err)
	}
}

func TestMediaBoxInheritance(t *testing.T) {
	d := NewData(V1_7)
	cat := NewStructDict(d, CatalogSchema)
	cat.Indirect()
	d.GetMeta().Catalog = cat
	root := NewStructDict(d, PageTreeSchema)
	rootRef := root.Indirect()
	if err := cat.Set("Pages", rootRef); err != nil {
		t.Fatal(err)
	}

	page := NewStructDict(d, PageSchema)
	if err := page.Set("Parent", rootRef); err != nil {
		t.Fatal(err)
	}
	if len(page.MissingRequired()) != 1 {
		t.Fatalf("expected /MediaBox to be missing, got %v", page.MissingRequired())
	}

	// Once the root carries a /MediaBox, pages may inherit it.
	if err := root.Set("MediaBox", &Rectangle{0, 0, 595, 842}); err != nil {
		t.Fatal(err)
	}
	if missing := page.MissingRequired(); len(missing) != 0 {
		t.Errorf("inherited /MediaBox not recognised: %v", missing)
	}
}

func TestStructDictRef(t *testing.T) {
	d := NewData(V1_7)
	sd := NewStructDict(d, FontSchema)
	if _, err := sd.Ref(); !errors.Is(err, ErrDirectObject) {
		t.Errorf("expected ErrDirectObject, got %v", err)
	}
	ref := sd.Indirect()
	again := sd.Indirect()
	if ref != again {
		t.Errorf("Indirect not idempotent: %v %v", ref, again)
	}
	got, err := sd.Ref()
	if err != nil || got != ref {
		t.Errorf("Ref() = %v, %v", got, err)
	}
	if d.Get(ref) != Object(sd) {
		t.Errorf("indirect object not registered with the document")
	}
}

func TestStructDictPDF(t *testing.T) {
	d := NewData(V1_7)
	enc := NewStructDict(d, FontEncodingSchema)
	if err := enc.Set("BaseEncoding", Name("WinAnsiEncoding")); err != nil {
		t.Fatal(err)
	}
	out := Format(enc)
	want := "<< /BaseEncoding /WinAnsiEncoding /Type /Encoding >>"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}
