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
)

// MetaInfo holds the global information for a PDF document.
type MetaInfo struct {
	// Version is the PDF version used in the document.
	Version Version

	// Catalog is the document catalog.  It is created automatically when
	// the document is written, if it has not been set before.
	Catalog *StructDict

	// Info holds the document metadata for the trailer Info dictionary.
	Info *Info

	// Trailer holds additional entries for the document trailer.
	// The Root, Info and Size entries are managed by the library and
	// cannot be overridden here.
	Trailer Dict
}

// Info represents the metadata of the document information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time

	// Trapped is one of "True", "False" or "Unknown" (PDF 1.3).
	Trapped Name

	// Custom holds any non-standard entries.
	Custom map[string]string
}

// AsDict returns the information dictionary for info.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	text := map[Name]string{
		"Title":    info.Title,
		"Author":   info.Author,
		"Subject":  info.Subject,
		"Keywords": info.Keywords,
		"Creator":  info.Creator,
		"Producer": info.Producer,
	}
	for key, val := range text {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		dict["ModDate"] = Date(info.ModDate)
	}
	if info.Trapped != "" {
		dict["Trapped"] = info.Trapped
	}
	for key, val := range info.Custom {
		dict[Name(key)] = TextString(val)
	}
	return dict
}

type objEntry struct {
	gen   uint16
	obj   Object
	inUse bool
}

// Data is the in-memory representation of a PDF document.  It owns every
// indirect object, hands out object numbers, and serialises the complete
// file.
//
// Data is not safe for concurrent use, but independent Data instances
// share no state and can be used concurrently.
type Data struct {
	meta    MetaInfo
	objects map[uint32]*objEntry
	names   map[string]Name
	infoRef Reference
}

// NewData creates a new, empty PDF document using the given PDF version.
func NewData(v Version) *Data {
	return &Data{
		meta: MetaInfo{
			Version: v,
		},
		objects: map[uint32]*objEntry{},
		names:   map[string]Name{},
	}
}

// GetMeta returns the global document information.  The caller may modify
// the returned structure.
func (d *Data) GetMeta() *MetaInfo {
	return &d.meta
}

// Name returns the canonical Name for s within the document.  The table is
// owned by the document, so several documents can be built concurrently
// without sharing state.
func (d *Data) Name(s string) Name {
	if n, ok := d.names[s]; ok {
		return n
	}
	n := Name(s)
	d.names[s] = n
	return n
}

// Alloc reserves an object number for a new indirect object and returns
// the corresponding reference.  The smallest positive number not currently
// in use is chosen, by linear scan from 1.  Numbers of entries freed with
// [Data.MarkFree] stay in use and are never handed out again; only
// [Data.Delete] creates reusable numbers.
func (d *Data) Alloc() Reference {
	num := uint32(1)
	for {
		if _, used := d.objects[num]; !used {
			break
		}
		num++
	}
	d.objects[num] = &objEntry{inUse: true}
	return NewReference(num, 0)
}

// Put stores an indirect object under the given reference.
func (d *Data) Put(ref Reference, obj Object) {
	d.objects[ref.Number()] = &objEntry{
		gen:   ref.Generation(),
		obj:   obj,
		inUse: true,
	}
}

// Get returns the object stored under ref, or nil if there is no such
// object or if it has been freed.
func (d *Data) Get(ref Reference) Object {
	entry, ok := d.objects[ref.Number()]
	if !ok || !entry.inUse || entry.gen != ref.Generation() {
		return nil
	}
	return entry.obj
}

// MarkFree marks the object stored under ref as unused.  The object body
// is discarded and the cross-reference table will list the entry as free,
// but the object number stays allocated for the lifetime of the document.
func (d *Data) MarkFree(ref Reference) {
	entry, ok := d.objects[ref.Number()]
	if !ok {
		return
	}
	entry.obj = nil
	entry.inUse = false
}

// Delete removes the entry for ref completely, so that [Data.Alloc] can
// hand out the object number again.  Any references to the deleted object
// which are still stored elsewhere in the document will silently point at
// the new object; callers who cannot rule this out should use
// [Data.MarkFree] instead.
func (d *Data) Delete(ref Reference) {
	delete(d.objects, ref.Number())
}

// maxNumber returns the highest object number currently allocated.
func (d *Data) maxNumber() uint32 {
	var m uint32
	for num := range d.objects {
		if num > m {
			m = num
		}
	}
	return m
}

// Catalog returns the document catalog, creating it if necessary.
func (d *Data) Catalog() *StructDict {
	if d.meta.Catalog == nil {
		d.meta.Catalog = NewStructDict(d, CatalogSchema)
		d.meta.Catalog.Indirect()
	}
	return d.meta.Catalog
}

// ensureCatalog creates the document catalog and an empty page tree root,
// if the document does not have them yet.
func (d *Data) ensureCatalog() error {
	d.Catalog()
	if d.meta.Catalog.Get("Pages") == nil {
		pages := NewStructDict(d, PageTreeSchema)
		err := pages.Set("Kids", Array{})
		if err != nil {
			return err
		}
		err = pages.Set("Count", Integer(0))
		if err != nil {
			return err
		}
		return d.meta.Catalog.Set("Pages", pages.Indirect())
	}
	return nil
}
