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

// Package document provides the high-level interface for building PDF
// files.
//
// A [Document] collects pages, fonts, drawing operations, links and
// bookmarks in memory.  [Document.Write] then resolves the fonts, builds
// the outline tree and serializes the complete file in one pass.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/annotation"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/font"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/graphics"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/image"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/metadata"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/outline"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/pagetree"
)

var errClosed = errors.New("document has already been written")

// Options control document-wide properties.  The zero value is usable.
type Options struct {
	// Info is the document information (title, author, dates and so on)
	// for the trailer Info dictionary.
	Info *pdf.Info

	// Language is the natural language of the document text.  If set, it
	// is recorded as the catalog /Lang entry (PDF 1.4).
	Language language.Tag

	// PageSize is the media box for pages added without an explicit
	// size.  If nil, [A4] is used.
	PageSize *pdf.Rectangle

	// XMPMetadata mirrors the document information as an XMP metadata
	// stream in addition to the Info dictionary (PDF 1.4).  Requires
	// Info to be set.
	XMPMetadata bool
}

// Document builds a PDF file.
type Document struct {
	// Out is the document arena holding every indirect object of the
	// file.
	Out *pdf.Data

	// Outline is the document outline.  Bookmarks can be added here
	// directly, or via [Document.AddBookmark].
	Outline *outline.Outline

	tree     *pagetree.Writer
	pages    []*Page
	fonts    map[string]*font.Font
	lang     language.Tag
	xmp      bool
	pageSize *pdf.Rectangle
	closed   bool
}

// New creates an empty document using the given PDF version.
func New(v pdf.Version, opt *Options) (*Document, error) {
	d := pdf.NewData(v)
	tree, err := pagetree.NewWriter(d)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Out:      d,
		Outline:  &outline.Outline{},
		tree:     tree,
		fonts:    map[string]*font.Font{},
		pageSize: A4,
	}
	if opt == nil {
		return doc, nil
	}

	if opt.Info != nil {
		d.GetMeta().Info = opt.Info
	}
	if opt.Language != language.Und {
		if err := pdf.CheckVersion(d, "the catalog /Lang entry", pdf.V1_4); err != nil {
			return nil, err
		}
		doc.lang = opt.Language
	}
	if opt.XMPMetadata {
		if err := pdf.CheckVersion(d, "XMP metadata stream", pdf.V1_4); err != nil {
			return nil, err
		}
		if opt.Info == nil {
			return nil, errors.New("XMP metadata requires document information")
		}
		doc.xmp = true
	}
	if opt.PageSize != nil {
		doc.pageSize = opt.PageSize
	}
	return doc, nil
}

// AddPage appends a new page to the document and makes it the current
// page.  If size is nil the document's default page size is used.
func (doc *Document) AddPage(size *pdf.Rectangle) (*Page, error) {
	if doc.closed {
		return nil, errClosed
	}
	if size == nil {
		size = doc.pageSize
	}
	mediaBox := *size
	dict, ref, err := doc.tree.AppendPage(&mediaBox)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	page := &Page{
		doc:  doc,
		dict: dict,
		ref:  ref,
		buf:  buf,
		w:    graphics.NewWriter(buf, doc.Out.GetMeta().Version),
	}
	doc.pages = append(doc.pages, page)
	return page, nil
}

// NumPages returns the number of pages added so far.
func (doc *Document) NumPages() int {
	return len(doc.pages)
}

// Page returns the page with the given index, counting from 0.
func (doc *Document) Page(i int) (*Page, error) {
	if i < 0 || i >= len(doc.pages) {
		return nil, fmt.Errorf("page %d of %d: %w", i, len(doc.pages), pdf.ErrOutOfRange)
	}
	return doc.pages[i], nil
}

// CurrentPage returns the page most recently added, or nil if the
// document has no pages.
func (doc *Document) CurrentPage() *Page {
	if len(doc.pages) == 0 {
		return nil
	}
	return doc.pages[len(doc.pages)-1]
}

func (doc *Document) currentPage() (*Page, error) {
	if len(doc.pages) == 0 {
		return nil, errors.New("document has no pages")
	}
	return doc.pages[len(doc.pages)-1], nil
}

// AddFont parses a TrueType font program and registers it under the
// given name for use with DrawText.  The font dictionary is created
// immediately, so that it can be referenced right away; the font program
// itself is embedded at output time, and only if the font was used.
func (doc *Document) AddFont(name string, fileBytes []byte) (*font.Font, error) {
	if doc.closed {
		return nil, errClosed
	}
	if _, ok := doc.fonts[name]; ok {
		return nil, fmt.Errorf("font %q is already registered", name)
	}
	f, err := font.New(doc.Out, fileBytes)
	if err != nil {
		return nil, err
	}
	doc.fonts[name] = f
	return f, nil
}

// Font returns the font registered under the given name.
func (doc *Document) Font(name string) (*font.Font, error) {
	f, ok := doc.fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %q is not registered", name)
	}
	return f, nil
}

// AddBookmark inserts a bookmark for the given page below the bookmark
// addressed by path.  The path is a sequence of 1-based sibling
// positions as described at [outline.Outline.Insert]; an empty path adds
// a bookmark at the top level.  If page is nil the current page is used.
func (doc *Document) AddBookmark(path []int, title string, page *Page) error {
	if doc.closed {
		return errClosed
	}
	if page == nil {
		p, err := doc.currentPage()
		if err != nil {
			return err
		}
		page = p
	}
	_, err := doc.Outline.Insert(path, title, page.ref)
	return err
}

// DrawText draws text on the current page.  See [Page.DrawText].
func (doc *Document) DrawText(x, y float64, fontName string, size float64, text string, col graphics.Color) error {
	p, err := doc.currentPage()
	if err != nil {
		return err
	}
	return p.DrawText(x, y, fontName, size, text, col)
}

// DrawRectangle draws a rectangle on the current page.  See
// [Page.DrawRectangle].
func (doc *Document) DrawRectangle(x, y, width, height float64, fill, stroke graphics.Color) error {
	p, err := doc.currentPage()
	if err != nil {
		return err
	}
	return p.DrawRectangle(x, y, width, height, fill, stroke)
}

// DrawLine strokes a line on the current page.  See [Page.DrawLine].
func (doc *Document) DrawLine(x1, y1, x2, y2, width float64, col graphics.Color) error {
	p, err := doc.currentPage()
	if err != nil {
		return err
	}
	return p.DrawLine(x1, y1, x2, y2, width, col)
}

// DrawImage paints an image on the current page.  See [Page.DrawImage].
func (doc *Document) DrawImage(im *image.Image, x, y, width, height float64) error {
	p, err := doc.currentPage()
	if err != nil {
		return err
	}
	return p.DrawImage(im, x, y, width, height)
}

// AddLink attaches a link annotation to the current page.  See
// [Page.AddLink].
func (doc *Document) AddLink(link *annotation.Link) error {
	p, err := doc.currentPage()
	if err != nil {
		return err
	}
	return p.AddLink(link)
}

// Write resolves fonts and bookmarks and writes the complete PDF file to
// w.  After the first call the document can no longer be modified;
// calling Write again produces the same bytes.
func (doc *Document) Write(w io.Writer) error {
	if err := doc.finish(); err != nil {
		return err
	}
	return doc.Out.Write(w)
}

// WriteFile writes the complete PDF file to the named file.
func (doc *Document) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// finish completes the object graph: page content streams and resource
// dictionaries are attached, the outline is materialized, every font is
// either embedded or pruned, and the catalog entries derived from the
// document options are set.
func (doc *Document) finish() error {
	if doc.closed {
		return nil
	}

	for i, page := range doc.pages {
		if err := page.flush(); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}

	outlineRef, err := doc.Outline.Write(doc.Out)
	if err != nil {
		return err
	}
	catalog := doc.Out.Catalog()
	if outlineRef != 0 {
		if err := catalog.Set("PageMode", pdf.Name("UseOutlines")); err != nil {
			return err
		}
	}

	names := maps.Keys(doc.fonts)
	slices.Sort(names)
	for _, name := range names {
		if err := doc.fonts[name].Finish(); err != nil {
			return fmt.Errorf("font %q: %w", name, err)
		}
	}

	if doc.lang != language.Und {
		if err := catalog.Set("Lang", pdf.TextString(doc.lang.String())); err != nil {
			return err
		}
	}
	if doc.xmp {
		info := doc.Out.GetMeta().Info
		if _, err := metadata.Embed(doc.Out, info, doc.lang); err != nil {
			return err
		}
	}

	doc.closed = true
	return nil
}
