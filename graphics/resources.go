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

package graphics

import (
	"strconv"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Resources collects the resources a content stream refers to by name.
// The zero value is an empty resource set ready for use.
type Resources struct {
	Font    pdf.Dict
	XObject pdf.Dict
}

// FontName returns the name under which the given font dictionary can be
// used in the content stream.  The font is added to the resource set if
// it is not already present.
func (r *Resources) FontName(ref pdf.Reference) pdf.Name {
	if r.Font == nil {
		r.Font = pdf.Dict{}
	}
	return resourceName(r.Font, "F", ref)
}

// XObjectName returns the name under which the given external object can
// be used in the content stream.  The object is added to the resource
// set if it is not already present.
func (r *Resources) XObjectName(ref pdf.Reference) pdf.Name {
	if r.XObject == nil {
		r.XObject = pdf.Dict{}
	}
	return resourceName(r.XObject, "Im", ref)
}

// IsEmpty reports whether no resources have been registered.
func (r *Resources) IsEmpty() bool {
	return len(r.Font) == 0 && len(r.XObject) == 0
}

// AsDict returns the resource dictionary, with one sub-dictionary per
// non-empty category.
func (r *Resources) AsDict() pdf.Dict {
	dict := pdf.Dict{}
	if len(r.Font) > 0 {
		dict["Font"] = r.Font
	}
	if len(r.XObject) > 0 {
		dict["XObject"] = r.XObject
	}
	return dict
}

func resourceName(dict pdf.Dict, prefix pdf.Name, ref pdf.Reference) pdf.Name {
	for name, obj := range dict {
		if obj == ref {
			return name
		}
	}
	for k := len(dict) + 1; ; k++ {
		name := prefix + pdf.Name(strconv.Itoa(k))
		if _, used := dict[name]; !used {
			dict[name] = ref
			return name
		}
	}
}
