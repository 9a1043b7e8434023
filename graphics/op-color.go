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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file implements the color setting operators.

// SetStrokeColor sets the color for stroking operations.
//
// This implements the PDF graphics operators "RG" and "K".
func (w *Writer) SetStrokeColor(c Color) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	if err := c.Check(); err != nil {
		w.Err = err
		return
	}

	for _, v := range c.components() {
		_, w.Err = fmt.Fprintf(w.Content, "%s ", fmtComponent(v))
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintf(w.Content, "%s\r\n", c.operator())
}

// SetFillColor sets the color for non-stroking operations.
//
// This implements the PDF graphics operators "rg" and "k".
func (w *Writer) SetFillColor(c Color) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if err := c.Check(); err != nil {
		w.Err = err
		return
	}

	for _, v := range c.components() {
		_, w.Err = fmt.Fprintf(w.Content, "%s ", fmtComponent(v))
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintf(w.Content, "%s\r\n", strings.ToLower(c.operator()))
}

// fmtComponent formats a color component, keeping at most three digits
// after the decimal point.
func fmtComponent(x float64) string {
	return strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
}
