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

package image

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// EmbedJPEG stores a JPEG file in the document without re-encoding: the
// file bytes become the stream data and the DCTDecode filter is applied
// by the viewer.
func EmbedJPEG(d *pdf.Data, data []byte, opt *Options) (*Image, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	components := 3
	switch cfg.ColorModel {
	case color.GrayModel:
		components = 1
	case color.CMYKModel:
		components = 4
	}
	cs, err := colorSpace(d, opt, components)
	if err != nil {
		return nil, err
	}

	ref := d.Alloc()
	d.Put(ref, &pdf.Stream{
		Dict: pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(cfg.Width),
			"Height":           pdf.Integer(cfg.Height),
			"ColorSpace":       cs,
			"BitsPerComponent": pdf.Integer(8),
			"Filter":           pdf.Name("DCTDecode"),
		},
		Data: data,
	})

	return &Image{Width: cfg.Width, Height: cfg.Height, ref: ref}, nil
}
