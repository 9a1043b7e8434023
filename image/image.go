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

// Package image embeds images as image XObjects.
//
// Two file formats are supported.  JPEG files are stored unchanged, with
// the DCTDecode filter doing the decoding in the viewer.  PNG files are
// decoded and stored as raw 8-bit samples, with the alpha channel, if
// any, split off into a soft mask.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/icc"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// ErrUnsupportedFormat is returned when image data is neither JPEG nor
// PNG.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options modify how an image is embedded.
type Options struct {
	// Profile is an ICC profile describing the color space of the image
	// data.  If set, the image uses an ICCBased color space instead of the
	// corresponding device color space.  The number of color components of
	// the profile must match the image.
	Profile []byte
}

// Image is an image XObject embedded in a document.
type Image struct {
	// Width and Height are the dimensions of the image, in pixels.
	Width, Height int

	ref pdf.Reference
}

// Ref returns the reference of the image XObject.
func (im *Image) Ref() pdf.Reference {
	return im.ref
}

// Embed stores an image file in the document.  The format is detected
// from the file header; files which are neither JPEG nor PNG fail with
// [ErrUnsupportedFormat].
func Embed(d *pdf.Data, data []byte, opt *Options) (*Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	switch format {
	case "jpeg":
		return EmbedJPEG(d, data, opt)
	case "png":
		return EmbedPNG(d, data, opt)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// colorSpace returns the color space entry for image data with the given
// number of components per pixel: the matching device color space, or an
// ICCBased color space if a profile is given.
func colorSpace(d *pdf.Data, opt *Options, components int) (pdf.Object, error) {
	if opt == nil || opt.Profile == nil {
		switch components {
		case 1:
			return pdf.Name("DeviceGray"), nil
		case 3:
			return pdf.Name("DeviceRGB"), nil
		case 4:
			return pdf.Name("DeviceCMYK"), nil
		default:
			return nil, fmt.Errorf("invalid number of color components %d", components)
		}
	}

	p, err := icc.Decode(opt.Profile)
	if err != nil {
		return nil, fmt.Errorf("ICC profile: %w", err)
	}
	if n := p.ColorSpace.NumComponents(); n != components {
		return nil, fmt.Errorf("ICC profile has %d components, image has %d",
			n, components)
	}

	ref := d.Alloc()
	d.Put(ref, &pdf.Stream{
		Dict: pdf.Dict{"N": pdf.Integer(components)},
		Data: opt.Profile,
	})
	return pdf.Array{pdf.Name("ICCBased"), ref}, nil
}
