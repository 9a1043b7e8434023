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

package document

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/annotation"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/graphics"
	"github.com/BenediktEngel/htmlWebsite2pdf-sub000/image"
)

// Page is a single page of a document.  Drawing operations append
// operators to the page's content stream; the stream and the accumulated
// resource dictionary are attached to the page dictionary when the
// document is written.
//
// Each drawing operation saves and restores the graphics state, so
// colors and line widths set by one call do not affect the next.
type Page struct {
	doc  *Document
	dict *pdf.StructDict
	ref  pdf.Reference
	buf  *bytes.Buffer
	w    *graphics.Writer
}

// Ref returns the reference of the page dictionary, for use as a link or
// bookmark target.
func (p *Page) Ref() pdf.Reference {
	return p.ref
}

// Dict returns the page dictionary.
func (p *Page) Dict() *pdf.StructDict {
	return p.dict
}

// DrawText draws a line of text starting at (x, y), set in the font
// registered under fontName at the given size.  If col is non-nil the
// text is filled with that color.  Every rune of text is added to the
// font's used-character set, making sure the font is embedded.
func (p *Page) DrawText(x, y float64, fontName string, size float64, text string, col graphics.Color) error {
	if p.doc.closed {
		return errClosed
	}
	f, err := p.doc.Font(fontName)
	if err != nil {
		return err
	}

	glyphs := f.Typeset(text)
	name := p.w.Resources.FontName(f.Ref())

	p.w.PushGraphicsState()
	if col != nil {
		p.w.SetFillColor(col)
	}
	p.w.TextStart()
	p.w.TextSetFont(name, size)
	p.w.TextFirstLine(x, y)
	p.w.TextShowGlyphs(glyphs)
	p.w.TextEnd()
	p.w.PopGraphicsState()
	return p.w.Err
}

// DrawRectangle draws a rectangle with lower left corner (x, y).  If
// fill is non-nil the rectangle is filled with that color, and if stroke
// is non-nil the outline is stroked with that color.  With neither color
// given, the outline is stroked in the default color.
func (p *Page) DrawRectangle(x, y, width, height float64, fill, stroke graphics.Color) error {
	if p.doc.closed {
		return errClosed
	}

	p.w.PushGraphicsState()
	if fill != nil {
		p.w.SetFillColor(fill)
	}
	if stroke != nil {
		p.w.SetStrokeColor(stroke)
	}
	p.w.Rectangle(x, y, width, height)
	switch {
	case fill != nil && stroke != nil:
		p.w.FillAndStroke()
	case fill != nil:
		p.w.Fill()
	default:
		p.w.Stroke()
	}
	p.w.PopGraphicsState()
	return p.w.Err
}

// DrawLine strokes a straight line from (x1, y1) to (x2, y2).  If col is
// non-nil the line is stroked with that color; a positive width sets the
// line width.
func (p *Page) DrawLine(x1, y1, x2, y2, width float64, col graphics.Color) error {
	if p.doc.closed {
		return errClosed
	}

	p.w.PushGraphicsState()
	if col != nil {
		p.w.SetStrokeColor(col)
	}
	if width > 0 {
		p.w.SetLineWidth(width)
	}
	p.w.MoveTo(x1, y1)
	p.w.LineTo(x2, y2)
	p.w.Stroke()
	p.w.PopGraphicsState()
	return p.w.Err
}

// DrawImage paints an embedded image into the rectangle with lower left
// corner (x, y) and the given displayed width and height, both in PDF
// units.
func (p *Page) DrawImage(im *image.Image, x, y, width, height float64) error {
	if p.doc.closed {
		return errClosed
	}

	name := p.w.Resources.XObjectName(im.Ref())
	p.w.PushGraphicsState()
	p.w.Transform(matrix.Matrix{width, 0, 0, height, x, y})
	p.w.DrawXObject(name)
	p.w.PopGraphicsState()
	return p.w.Err
}

// AddLink attaches a link annotation to the page.
func (p *Page) AddLink(link *annotation.Link) error {
	if p.doc.closed {
		return errClosed
	}
	return link.AddToPage(p.doc.Out, p.dict)
}

// flush attaches the accumulated content stream and resource dictionary
// to the page dictionary.
func (p *Page) flush() error {
	if p.w.Err != nil {
		return p.w.Err
	}

	if p.buf.Len() > 0 {
		ref := p.doc.Out.Alloc()
		p.doc.Out.Put(ref, &pdf.Stream{
			Dict: pdf.Dict{},
			Data: p.buf.Bytes(),
		})
		if err := p.dict.Set("Contents", ref); err != nil {
			return err
		}
	}
	if !p.w.Resources.IsEmpty() {
		if err := p.dict.Set("Resources", p.w.Resources.AsDict()); err != nil {
			return err
		}
	}
	return nil
}
