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
	"image"
	"image/png"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// EmbedPNG decodes a PNG file and stores it as uncompressed 8-bit
// samples.  Grayscale images are stored with a single component per
// pixel, all others as DeviceRGB.  If the image has an alpha channel, the
// alpha values become a separate DeviceGray image attached as the soft
// mask.
func EmbedPNG(d *pdf.Data, data []byte, opt *Options) (*Image, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()

	var samples []byte
	components := 3
	if gray, ok := src.(*image.Gray); ok {
		components = 1
		samples = make([]byte, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				samples = append(samples, gray.GrayAt(x, y).Y)
			}
		}
	} else {
		samples = make([]byte, 0, 3*width*height)
	}

	var alpha []byte
	hasAlpha := false
	if components == 3 {
		alpha = make([]byte, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := src.At(x, y).RGBA()
				samples = append(samples, byte(r>>8), byte(g>>8), byte(bl>>8))
				alpha = append(alpha, byte(a>>8))
				if a != 0xffff {
					hasAlpha = true
				}
			}
		}
	}

	cs, err := colorSpace(d, opt, components)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ColorSpace":       cs,
		"BitsPerComponent": pdf.Integer(8),
	}

	if hasAlpha {
		maskRef := d.Alloc()
		d.Put(maskRef, &pdf.Stream{
			Dict: pdf.Dict{
				"Type":             pdf.Name("XObject"),
				"Subtype":          pdf.Name("Image"),
				"Width":            pdf.Integer(width),
				"Height":           pdf.Integer(height),
				"ColorSpace":       pdf.Name("DeviceGray"),
				"BitsPerComponent": pdf.Integer(8),
			},
			Data: alpha,
		})
		dict["SMask"] = maskRef
	}

	ref := d.Alloc()
	d.Put(ref, &pdf.Stream{Dict: dict, Data: samples})

	return &Image{Width: width, Height: height, ref: ref}, nil
}
