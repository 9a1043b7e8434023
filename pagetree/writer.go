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

// Package pagetree implements the document page tree.
//
// The tree built here is flat: a single root node holds every page as a
// direct child.  The PDF format allows intermediate nodes for balanced
// trees, but for documents produced by this library a flat tree is
// sufficient and keeps page references trivially enumerable.
package pagetree

import (
	"fmt"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Writer adds pages to a document's page tree.
type Writer struct {
	d       *pdf.Data
	root    *pdf.StructDict
	rootRef pdf.Reference
	kids    pdf.Array
	pages   []pdf.Reference
}

// NewWriter creates the page tree root for the given document and
// registers it with the document catalog.
func NewWriter(d *pdf.Data) (*Writer, error) {
	root := pdf.NewStructDict(d, pdf.PageTreeSchema)
	rootRef := root.Indirect()
	if err := d.Catalog().Set("Pages", rootRef); err != nil {
		return nil, err
	}
	if err := root.Set("Kids", pdf.Array{}); err != nil {
		return nil, err
	}
	if err := root.Set("Count", pdf.Integer(0)); err != nil {
		return nil, err
	}
	return &Writer{
		d:       d,
		root:    root,
		rootRef: rootRef,
	}, nil
}

// RootRef returns the reference of the page tree root node.
func (w *Writer) RootRef() pdf.Reference {
	return w.rootRef
}

// AppendPage creates a new page with the given media box, attaches it to
// the tree, and returns the page dictionary together with its reference.
// The root node's page count is updated in the same step, so that count
// and number of children can never disagree.
func (w *Writer) AppendPage(mediaBox *pdf.Rectangle) (*pdf.StructDict, pdf.Reference, error) {
	page := pdf.NewStructDict(w.d, pdf.PageSchema)
	ref := page.Indirect()
	if err := page.Set("Parent", w.rootRef); err != nil {
		return nil, 0, err
	}
	if err := page.Set("MediaBox", mediaBox); err != nil {
		return nil, 0, err
	}

	w.kids = append(w.kids, ref)
	w.pages = append(w.pages, ref)
	if err := w.root.Set("Kids", w.kids); err != nil {
		return nil, 0, err
	}
	if err := w.root.Set("Count", pdf.Integer(len(w.pages))); err != nil {
		return nil, 0, err
	}
	return page, ref, nil
}

// NumPages returns the number of pages added so far.
func (w *Writer) NumPages() int {
	return len(w.pages)
}

// Page returns the reference of the page with the given index, counting
// from 0.
func (w *Writer) Page(i int) (pdf.Reference, error) {
	if i < 0 || i >= len(w.pages) {
		return 0, fmt.Errorf("page %d of %d: %w", i, len(w.pages), pdf.ErrOutOfRange)
	}
	return w.pages[i], nil
}

// PageDict returns the page dictionary stored under the page with the
// given index, counting from 0.
func (w *Writer) PageDict(i int) (*pdf.StructDict, error) {
	ref, err := w.Page(i)
	if err != nil {
		return nil, err
	}
	sd, ok := w.d.Get(ref).(*pdf.StructDict)
	if !ok {
		return nil, fmt.Errorf("page %d: dictionary lost from document", i)
	}
	return sd, nil
}
