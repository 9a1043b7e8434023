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

// Package outline builds the document outline (bookmark) tree.
//
// Bookmarks are collected in an [Outline] forest first and materialized
// into the document as a doubly linked tree of outline item dictionaries
// in a single pass at output time.
package outline

import (
	"fmt"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Outline represents a document outline.
type Outline struct {
	// Items contains the top-level outline items.
	Items []*Item
}

// Item is an outline item.  Items form a tree via the Children field.
type Item struct {
	// Title is the text displayed for this outline item.
	Title string

	// Page is the page shown when the item is activated.  The page is
	// fitted to the window.
	Page pdf.Reference

	// Children contains the child outline items.
	Children []*Item
}

// Add appends a new top-level item and returns it.
func (o *Outline) Add(title string, page pdf.Reference) *Item {
	item := &Item{Title: title, Page: page}
	o.Items = append(o.Items, item)
	return item
}

// AddChild appends a new child item and returns it.
func (item *Item) AddChild(title string, page pdf.Reference) *Item {
	child := &Item{Title: title, Page: page}
	item.Children = append(item.Children, child)
	return child
}

// Insert adds a new item below the item addressed by path and returns
// it.  The path is a sequence of 1-based sibling positions: an empty
// path appends at the top level, the path [2] appends a child to the
// second top-level item, and so on.  A position outside the addressed
// sibling list fails with [pdf.ErrOutOfRange].
func (o *Outline) Insert(path []int, title string, page pdf.Reference) (*Item, error) {
	items := &o.Items
	for depth, pos := range path {
		if pos < 1 || pos > len(*items) {
			return nil, fmt.Errorf("bookmark position %d at depth %d (have %d items): %w",
				pos, depth+1, len(*items), pdf.ErrOutOfRange)
		}
		items = &(*items)[pos-1].Children
	}
	item := &Item{Title: title, Page: page}
	*items = append(*items, item)
	return item, nil
}

// Write materializes the outline into the document and installs it in
// the catalog.  An empty outline writes nothing.
func (o *Outline) Write(d *pdf.Data) (pdf.Reference, error) {
	if o == nil || len(o.Items) == 0 {
		return 0, nil
	}

	rootRef := d.Alloc()
	first, last, count, err := writeChildren(d, rootRef, o.Items)
	if err != nil {
		return 0, err
	}
	d.Put(rootRef, pdf.Dict{
		"Type":  pdf.Name("Outlines"),
		"First": first,
		"Last":  last,
		"Count": pdf.Integer(count),
	})

	if err := d.Catalog().Set("Outlines", rootRef); err != nil {
		return 0, err
	}
	return rootRef, nil
}

// writeChildren writes one sibling list.  References for the whole list
// are allocated up front so that the Prev and Next links can be filled
// in while the dictionaries are built.
func writeChildren(d *pdf.Data, parent pdf.Reference, items []*Item) (first, last pdf.Reference, total int, err error) {
	refs := make([]pdf.Reference, len(items))
	for i := range refs {
		refs[i] = d.Alloc()
	}

	for i, item := range items {
		if item.Page == 0 {
			return 0, 0, 0, fmt.Errorf("outline item %q has no destination", item.Title)
		}
		dict := pdf.Dict{
			"Title":  pdf.TextString(item.Title),
			"Parent": parent,
			"Dest":   pdf.Array{item.Page, pdf.Name("Fit")},
		}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < len(items)-1 {
			dict["Next"] = refs[i+1]
		}
		if len(item.Children) > 0 {
			f, l, n, err := writeChildren(d, refs[i], item.Children)
			if err != nil {
				return 0, 0, 0, err
			}
			dict["First"] = f
			dict["Last"] = l
			dict["Count"] = pdf.Integer(n)
			total += n
		}
		d.Put(refs[i], dict)
		total++
	}
	return refs[0], refs[len(refs)-1], total, nil
}
