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

// Package graphics writes PDF content streams.
//
// A [Writer] emits drawing operators to an io.Writer and tracks which
// class of graphics object is currently open, so that operators used in
// the wrong place are caught when the content is generated rather than
// by the PDF reader.  All errors are sticky: once a call has failed,
// subsequent calls do nothing and the first error is kept in Writer.Err.
package graphics

import (
	"fmt"
	"io"
	"strconv"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content   io.Writer
	Resources *Resources
	Version   pdf.Version
	Err       error

	currentObject objectType
	nesting       []pairType
}

// NewWriter allocates a new Writer.
func NewWriter(content io.Writer, v pdf.Version) *Writer {
	return &Writer{
		Content:       content,
		Resources:     &Resources{},
		Version:       v,
		currentObject: objPage,
	}
}

// NewStream redirects the writer to a new content stream.  The new
// stream shares the resource dictionary with the previous one.
func (w *Writer) NewStream(content io.Writer) {
	w.Content = content
	w.currentObject = objPage
	w.nesting = w.nesting[:0]
	w.Err = nil
}

// isValid returns true if the current graphics object is one of the
// given types and no previous call has failed.  Otherwise it sets w.Err
// and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}
	if w.currentObject&ss != 0 {
		return true
	}
	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

// format returns a compact decimal representation of x.
func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// The graphics object classes of the content stream model.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", int(s))
	}
}
