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
	"io"
	"sort"
)

// A KeySpec describes one entry of a structural dictionary: the key, the
// object kinds the value may have, the first PDF version the entry may be
// used with, and an optional exception predicate.
type KeySpec struct {
	Key   Name
	Kinds KindSet

	// MinVersion is the first PDF version in which the entry may be used.
	// The zero value means the entry is valid in every version.
	MinVersion Version

	// Unless, if non-nil, disables the entry when it returns true for the
	// dictionary at hand.  For required entries this expresses rules like
	// "required, except in the root node of the page tree".
	Unless func(sd *StructDict) bool
}

// A DictSchema describes a type of structural dictionary: its fixed
// entries, and which keys are required or optional.  Schemas are static
// tables; the concrete schemas in this package are taken from the tables
// of the PDF specification.
type DictSchema struct {
	// Type is the value of the /Type entry.  The entry is fixed: it is set
	// when the dictionary is created and cannot be changed afterwards.
	Type Name

	// Fixed lists further entries which are set at creation time and are
	// immutable afterwards.
	Fixed Dict

	Required []KeySpec
	Optional []KeySpec
}

func (s *DictSchema) find(key Name) (*KeySpec, bool) {
	for i := range s.Required {
		if s.Required[i].Key == key {
			return &s.Required[i], true
		}
	}
	for i := range s.Optional {
		if s.Optional[i].Key == key {
			return &s.Optional[i], false
		}
	}
	return nil, false
}

// StructDict is a dictionary governed by a [DictSchema].  Key assignments
// are checked against the schema and the PDF version of the owning
// document.
type StructDict struct {
	schema *DictSchema
	dict   Dict
	d      *Data
	ref    Reference
}

// NewStructDict creates a new structural dictionary for the given schema.
// The fixed entries of the schema are set immediately.
func NewStructDict(d *Data, schema *DictSchema) *StructDict {
	dict := Dict{}
	if schema.Type != "" {
		dict["Type"] = schema.Type
	}
	for key, val := range schema.Fixed {
		dict[key] = val
	}
	return &StructDict{
		schema: schema,
		dict:   dict,
		d:      d,
	}
}

// Indirect registers the dictionary as an indirect object of the owning
// document and returns its reference.  Calling Indirect more than once
// returns the same reference.
func (sd *StructDict) Indirect() Reference {
	if sd.ref == 0 {
		sd.ref = sd.d.Alloc()
		sd.d.Put(sd.ref, sd)
	}
	return sd.ref
}

// Ref returns the reference of the dictionary.  If the dictionary has not
// been registered as an indirect object, the call fails with
// [ErrDirectObject].
func (sd *StructDict) Ref() (Reference, error) {
	if sd.ref == 0 {
		return 0, ErrDirectObject
	}
	return sd.ref, nil
}

// IsApplicable reports whether key may be set on the dictionary: the key
// must be a required or optional entry of the schema, its minimum version
// must not exceed the document's PDF version, and its exception predicate,
// if any, must not hold.
func (sd *StructDict) IsApplicable(key Name) bool {
	spec, _ := sd.schema.find(key)
	if spec == nil {
		return false
	}
	if spec.MinVersion != 0 && sd.d.meta.Version < spec.MinVersion {
		return false
	}
	if spec.Unless != nil && spec.Unless(sd) {
		return false
	}
	return true
}

// Set assigns a value to key.  The assignment fails if the key is fixed,
// if it is not applicable (unknown, gated behind a newer PDF version, or
// excluded by an exception), or if the value has the wrong kind.
func (sd *StructDict) Set(key Name, value Object) error {
	tp := sd.schema.Type
	if key == "Type" && tp != "" {
		return &SchemaError{Type: tp, Key: key, Reason: "key is fixed"}
	}
	if _, isFixed := sd.schema.Fixed[key]; isFixed {
		return &SchemaError{Type: tp, Key: key, Reason: "key is fixed"}
	}

	spec, _ := sd.schema.find(key)
	if spec == nil {
		return &SchemaError{Type: tp, Key: key, Reason: "key not allowed"}
	}
	if spec.MinVersion != 0 {
		err := CheckVersion(sd.d, "/"+string(tp)+" entry /"+string(key), spec.MinVersion)
		if err != nil {
			return err
		}
	}
	if spec.Unless != nil && spec.Unless(sd) {
		return &SchemaError{Type: tp, Key: key, Reason: "key not applicable here"}
	}
	if k := KindOf(value); !spec.Kinds.Has(k) {
		return &SchemaError{
			Type:   tp,
			Key:    key,
			Reason: "value must be " + spec.Kinds.String() + ", not " + k.String(),
		}
	}

	sd.dict[key] = value
	return nil
}

// Get returns the value stored under key, or nil.
func (sd *StructDict) Get(key Name) Object {
	return sd.dict[key]
}

// Dict returns the underlying dictionary.
func (sd *StructDict) Dict() Dict {
	return sd.dict
}

// MissingRequired returns the required keys which are applicable at the
// document's PDF version but have not been set, in sorted order.
func (sd *StructDict) MissingRequired() []Name {
	var missing []Name
	for i := range sd.schema.Required {
		spec := &sd.schema.Required[i]
		if spec.MinVersion != 0 && sd.d.meta.Version < spec.MinVersion {
			continue
		}
		if spec.Unless != nil && spec.Unless(sd) {
			continue
		}
		if _, ok := sd.dict[spec.Key]; !ok {
			missing = append(missing, spec.Key)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i] < missing[j]
	})
	return missing
}

// checkComplete returns a SchemaError if a required key is missing.
func (sd *StructDict) checkComplete() error {
	missing := sd.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	return &SchemaError{
		Type:   sd.schema.Type,
		Key:    missing[0],
		Reason: "required key is missing",
	}
}

// PDF implements the [Object] interface.
func (sd *StructDict) PDF(w io.Writer) error {
	return sd.dict.PDF(w)
}

// isPageTreeRoot reports whether sd is the root node of the document's
// page tree, i.e. the node the catalog's /Pages entry points at.
func isPageTreeRoot(sd *StructDict) bool {
	cat := sd.d.meta.Catalog
	if cat == nil || sd.ref == 0 {
		return false
	}
	root, ok := cat.Get("Pages").(Reference)
	return ok && root == sd.ref
}

// hasInheritedMediaBox reports whether a page can inherit a /MediaBox from
// the root of the page tree.
func hasInheritedMediaBox(sd *StructDict) bool {
	cat := sd.d.meta.Catalog
	if cat == nil {
		return false
	}
	rootRef, ok := cat.Get("Pages").(Reference)
	if !ok {
		return false
	}
	root, ok := sd.d.Get(rootRef).(*StructDict)
	return ok && root.Get("MediaBox") != nil
}

// CatalogSchema describes the document catalog (the root dictionary).
var CatalogSchema = &DictSchema{
	Type: "Catalog",
	Required: []KeySpec{
		{Key: "Pages", Kinds: Kinds(KindReference)},
	},
	Optional: []KeySpec{
		{Key: "Version", Kinds: Kinds(KindName), MinVersion: V1_4},
		{Key: "Extensions", Kinds: Kinds(KindDict), MinVersion: V1_7},
		{Key: "PageLabels", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_3},
		{Key: "Names", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_2},
		{Key: "Dests", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_1},
		{Key: "ViewerPreferences", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_2},
		{Key: "PageLayout", Kinds: Kinds(KindName)},
		{Key: "PageMode", Kinds: Kinds(KindName)},
		{Key: "Outlines", Kinds: Kinds(KindReference)},
		{Key: "Threads", Kinds: Kinds(KindReference), MinVersion: V1_1},
		{Key: "OpenAction", Kinds: Kinds(KindArray, KindDict), MinVersion: V1_1},
		{Key: "AA", Kinds: Kinds(KindDict), MinVersion: V1_4},
		{Key: "URI", Kinds: Kinds(KindDict), MinVersion: V1_1},
		{Key: "AcroForm", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_2},
		{Key: "Metadata", Kinds: Kinds(KindReference), MinVersion: V1_4},
		{Key: "StructTreeRoot", Kinds: Kinds(KindDict, KindReference), MinVersion: V1_3},
		{Key: "MarkInfo", Kinds: Kinds(KindDict), MinVersion: V1_4},
		{Key: "Lang", Kinds: Kinds(KindString), MinVersion: V1_4},
		{Key: "SpiderInfo", Kinds: Kinds(KindDict), MinVersion: V1_3},
		{Key: "OutputIntents", Kinds: Kinds(KindArray), MinVersion: V1_4},
		{Key: "PieceInfo", Kinds: Kinds(KindDict), MinVersion: V1_4},
		{Key: "OCProperties", Kinds: Kinds(KindDict), MinVersion: V1_5},
		{Key: "Perms", Kinds: Kinds(KindDict), MinVersion: V1_5},
		{Key: "Legal", Kinds: Kinds(KindDict), MinVersion: V1_5},
		{Key: "Requirements", Kinds: Kinds(KindArray), MinVersion: V1_7},
		{Key: "Collection", Kinds: Kinds(KindDict), MinVersion: V1_7},
		{Key: "NeedsRendering", Kinds: Kinds(KindBool), MinVersion: V1_7},
	},
}

// PageTreeSchema describes interior nodes of the page tree, including the
// root node.
var PageTreeSchema = &DictSchema{
	Type: "Pages",
	Required: []KeySpec{
		{Key: "Parent", Kinds: Kinds(KindReference), Unless: isPageTreeRoot},
		{Key: "Kids", Kinds: Kinds(KindArray)},
		{Key: "Count", Kinds: Kinds(KindInteger)},
	},
	Optional: []KeySpec{
		{Key: "Resources", Kinds: Kinds(KindDict, KindReference)},
		{Key: "MediaBox", Kinds: Kinds(KindArray)},
		{Key: "CropBox", Kinds: Kinds(KindArray)},
		{Key: "Rotate", Kinds: Kinds(KindInteger)},
	},
}

// PageSchema describes page objects (the leaves of the page tree).
var PageSchema = &DictSchema{
	Type: "Page",
	Required: []KeySpec{
		{Key: "Parent", Kinds: Kinds(KindReference)},
		{Key: "MediaBox", Kinds: Kinds(KindArray), Unless: hasInheritedMediaBox},
	},
	Optional: []KeySpec{
		{Key: "LastModified", Kinds: Kinds(KindString), MinVersion: V1_3},
		{Key: "Resources", Kinds: Kinds(KindDict, KindReference)},
		{Key: "CropBox", Kinds: Kinds(KindArray)},
		{Key: "BleedBox", Kinds: Kinds(KindArray), MinVersion: V1_3},
		{Key: "TrimBox", Kinds: Kinds(KindArray), MinVersion: V1_3},
		{Key: "ArtBox", Kinds: Kinds(KindArray), MinVersion: V1_3},
		{Key: "BoxColorInfo", Kinds: Kinds(KindDict), MinVersion: V1_4},
		{Key: "Contents", Kinds: Kinds(KindReference, KindArray)},
		{Key: "Rotate", Kinds: Kinds(KindInteger)},
		{Key: "Group", Kinds: Kinds(KindDict), MinVersion: V1_4},
		{Key: "Thumb", Kinds: Kinds(KindReference)},
		{Key: "B", Kinds: Kinds(KindArray), MinVersion: V1_1},
		{Key: "Dur", Kinds: Kinds(KindInteger, KindReal), MinVersion: V1_1},
		{Key: "Trans", Kinds: Kinds(KindDict), MinVersion: V1_1},
		{Key: "Annots", Kinds: Kinds(KindArray)},
		{Key: "AA", Kinds: Kinds(KindDict), MinVersion: V1_2},
		{Key: "Metadata", Kinds: Kinds(KindReference), MinVersion: V1_4},
		{Key: "PieceInfo", Kinds: Kinds(KindDict), MinVersion: V1_3},
		{Key: "StructParents", Kinds: Kinds(KindInteger), MinVersion: V1_3},
		{Key: "ID", Kinds: Kinds(KindString), MinVersion: V1_3},
		{Key: "PZ", Kinds: Kinds(KindInteger, KindReal), MinVersion: V1_3},
		{Key: "SeparationInfo", Kinds: Kinds(KindDict), MinVersion: V1_3},
		{Key: "Tabs", Kinds: Kinds(KindName), MinVersion: V1_5},
		{Key: "TemplateInstantiated", Kinds: Kinds(KindName), MinVersion: V1_5},
		{Key: "PresSteps", Kinds: Kinds(KindDict), MinVersion: V1_5},
		{Key: "UserUnit", Kinds: Kinds(KindInteger, KindReal), MinVersion: V1_6},
		{Key: "VP", Kinds: Kinds(KindDict), MinVersion: V1_6},
	},
}

// FontSchema describes font dictionaries.  The table covers the entries of
// Type0 fonts, their CIDFont descendants, and simple fonts; which entries
// are meaningful depends on the /Subtype.
var FontSchema = &DictSchema{
	Type: "Font",
	Required: []KeySpec{
		{Key: "Subtype", Kinds: Kinds(KindName)},
		{Key: "BaseFont", Kinds: Kinds(KindName)},
	},
	Optional: []KeySpec{
		{Key: "Name", Kinds: Kinds(KindName)},
		{Key: "Encoding", Kinds: Kinds(KindName, KindDict, KindReference)},
		{Key: "DescendantFonts", Kinds: Kinds(KindArray)},
		{Key: "ToUnicode", Kinds: Kinds(KindReference), MinVersion: V1_2},
		{Key: "CIDSystemInfo", Kinds: Kinds(KindDict, KindReference)},
		{Key: "FontDescriptor", Kinds: Kinds(KindReference)},
		{Key: "DW", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "W", Kinds: Kinds(KindArray, KindReference)},
		{Key: "DW2", Kinds: Kinds(KindArray), MinVersion: V1_3},
		{Key: "W2", Kinds: Kinds(KindArray, KindReference), MinVersion: V1_3},
		{Key: "CIDToGIDMap", Kinds: Kinds(KindName, KindReference)},
		{Key: "FirstChar", Kinds: Kinds(KindInteger)},
		{Key: "LastChar", Kinds: Kinds(KindInteger)},
		{Key: "Widths", Kinds: Kinds(KindArray, KindReference)},
	},
}

// FontDescriptorSchema describes font descriptor dictionaries.
var FontDescriptorSchema = &DictSchema{
	Type: "FontDescriptor",
	Required: []KeySpec{
		{Key: "FontName", Kinds: Kinds(KindName)},
		{Key: "Flags", Kinds: Kinds(KindInteger)},
		{Key: "FontBBox", Kinds: Kinds(KindArray)},
		{Key: "ItalicAngle", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "Ascent", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "Descent", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "CapHeight", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "StemV", Kinds: Kinds(KindInteger, KindReal)},
	},
	Optional: []KeySpec{
		{Key: "FontFamily", Kinds: Kinds(KindString), MinVersion: V1_5},
		{Key: "FontStretch", Kinds: Kinds(KindName), MinVersion: V1_5},
		{Key: "FontWeight", Kinds: Kinds(KindInteger), MinVersion: V1_5},
		{Key: "Leading", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "XHeight", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "StemH", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "AvgWidth", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "MaxWidth", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "MissingWidth", Kinds: Kinds(KindInteger, KindReal)},
		{Key: "FontFile", Kinds: Kinds(KindReference)},
		{Key: "FontFile2", Kinds: Kinds(KindReference), MinVersion: V1_1},
		{Key: "FontFile3", Kinds: Kinds(KindReference), MinVersion: V1_2},
		{Key: "CharSet", Kinds: Kinds(KindString), MinVersion: V1_1},
	},
}

// FontEncodingSchema describes encoding dictionaries for simple fonts.
var FontEncodingSchema = &DictSchema{
	Type: "Encoding",
	Optional: []KeySpec{
		{Key: "BaseEncoding", Kinds: Kinds(KindName)},
		{Key: "Differences", Kinds: Kinds(KindArray)},
	},
}
