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

// Package annotation builds annotation dictionaries.
package annotation

import (
	"errors"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/graphics"
)

// Link is a hypertext link annotation covering a rectangular area of a
// page.  Exactly one of URI and Page must be set.
type Link struct {
	// Rect is the activation area in default user space.
	//
	// This corresponds to the /Rect entry in the annotation dictionary.
	Rect pdf.Rectangle

	// URI makes the annotation an external link which opens the given
	// URI when activated.
	//
	// This corresponds to a /A entry with a URI action.
	URI string

	// Page makes the annotation an internal link which jumps to the
	// given page, with the page fitted to the window.
	//
	// This corresponds to a /Dest entry of the form [page /Fit].
	Page pdf.Reference

	// BorderColor, if non-nil, gives the annotation a visible border of
	// the given color.
	//
	// This corresponds to the /C entry in the annotation dictionary.
	BorderColor *graphics.RGB

	// BorderWidth is the border line width in points.  It is only used
	// when BorderColor is set.
	BorderWidth float64

	// CornerRadius gives the horizontal and vertical corner radius of
	// the border.  It is only used when BorderColor is set.
	CornerRadius float64
}

// AsDict returns the annotation dictionary.
func (l *Link) AsDict() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Type":    pdf.Name("Annot"),
		"Subtype": pdf.Name("Link"),
		"H":       pdf.Name("N"),
	}
	rect := l.Rect
	dict["Rect"] = &rect

	switch {
	case l.URI != "" && l.Page != 0:
		return nil, errors.New("link has both a URI and a page target")
	case l.URI != "":
		dict["A"] = pdf.Dict{
			"S":   pdf.Name("URI"),
			"URI": pdf.String(l.URI),
		}
	case l.Page != 0:
		dict["Dest"] = pdf.Array{l.Page, pdf.Name("Fit")}
	default:
		return nil, errors.New("link has no target")
	}

	if l.BorderColor != nil {
		if err := l.BorderColor.Check(); err != nil {
			return nil, err
		}
		vv := l.BorderColor.Values()
		dict["C"] = pdf.Array{
			pdf.Number(vv[0]), pdf.Number(vv[1]), pdf.Number(vv[2]),
		}
		dict["Border"] = pdf.Array{
			pdf.Number(l.CornerRadius),
			pdf.Number(l.CornerRadius),
			pdf.Number(l.BorderWidth),
		}
	}

	return dict, nil
}

// AddToPage registers the annotation as an indirect object of d and
// appends it to the page's /Annots array.
func (l *Link) AddToPage(d *pdf.Data, page *pdf.StructDict) error {
	dict, err := l.AsDict()
	if err != nil {
		return err
	}

	var annots pdf.Array
	switch cur := page.Get("Annots").(type) {
	case nil:
		// first annotation on this page
	case pdf.Array:
		annots = cur
	default:
		return errors.New("page /Annots entry is not an array")
	}

	ref := d.Alloc()
	d.Put(ref, dict)
	annots = append(annots, ref)
	return page.Set("Annots", annots)
}
