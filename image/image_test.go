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
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"seehuhn.de/go/icc"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

func encodePNG(t *testing.T, src image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, src); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func getStream(t *testing.T, d *pdf.Data, im *Image) *pdf.Stream {
	t.Helper()
	stream, ok := d.Get(im.Ref()).(*pdf.Stream)
	if !ok {
		t.Fatal("image does not resolve to a stream")
	}
	return stream
}

func TestEmbedJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 5))
	for i := range src.Pix {
		src.Pix[i] = byte(37 * i)
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, src, nil); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	d := pdf.NewData(pdf.V1_7)
	im, err := Embed(d, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if im.Width != 7 || im.Height != 5 {
		t.Errorf("wrong dimensions %dx%d", im.Width, im.Height)
	}

	stream := getStream(t, d, im)
	if !bytes.Equal(stream.Data, data) {
		t.Errorf("JPEG data was re-encoded")
	}
	if stream.Dict["Filter"] != pdf.Name("DCTDecode") {
		t.Errorf("wrong Filter: %v", stream.Dict["Filter"])
	}
	if stream.Dict["ColorSpace"] != pdf.Name("DeviceRGB") {
		t.Errorf("wrong ColorSpace: %v", stream.Dict["ColorSpace"])
	}
	if stream.Dict["Width"] != pdf.Integer(7) || stream.Dict["Height"] != pdf.Integer(5) {
		t.Errorf("wrong dimensions in dict: %v %v",
			stream.Dict["Width"], stream.Dict["Height"])
	}
}

func TestEmbedPNGOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	d := pdf.NewData(pdf.V1_7)
	im, err := Embed(d, encodePNG(t, src), nil)
	if err != nil {
		t.Fatal(err)
	}

	stream := getStream(t, d, im)
	if len(stream.Data) != 3*2*2 {
		t.Errorf("wrong sample count %d", len(stream.Data))
	}
	expected := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	if !bytes.Equal(stream.Data, expected) {
		t.Errorf("wrong samples: %v", stream.Data)
	}
	if _, hasMask := stream.Dict["SMask"]; hasMask {
		t.Errorf("opaque image has a soft mask")
	}
	if _, hasFilter := stream.Dict["Filter"]; hasFilter {
		t.Errorf("PNG samples must be stored uncompressed")
	}
}

func TestEmbedPNGAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 128})

	d := pdf.NewData(pdf.V1_7)
	im, err := Embed(d, encodePNG(t, src), nil)
	if err != nil {
		t.Fatal(err)
	}

	stream := getStream(t, d, im)
	maskRef, ok := stream.Dict["SMask"].(pdf.Reference)
	if !ok {
		t.Fatal("missing soft mask")
	}
	mask, ok := d.Get(maskRef).(*pdf.Stream)
	if !ok {
		t.Fatal("soft mask does not resolve to a stream")
	}
	if mask.Dict["ColorSpace"] != pdf.Name("DeviceGray") {
		t.Errorf("wrong mask color space: %v", mask.Dict["ColorSpace"])
	}
	if !bytes.Equal(mask.Data, []byte{255, 128}) {
		t.Errorf("wrong alpha samples: %v", mask.Data)
	}
}

func TestEmbedPNGGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 127})
	src.SetGray(2, 0, color.Gray{Y: 255})

	d := pdf.NewData(pdf.V1_7)
	im, err := Embed(d, encodePNG(t, src), nil)
	if err != nil {
		t.Fatal(err)
	}

	stream := getStream(t, d, im)
	if stream.Dict["ColorSpace"] != pdf.Name("DeviceGray") {
		t.Errorf("wrong ColorSpace: %v", stream.Dict["ColorSpace"])
	}
	if !bytes.Equal(stream.Data, []byte{0, 127, 255}) {
		t.Errorf("wrong samples: %v", stream.Data)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("not an image"),
		[]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"),
	} {
		_, err := Embed(pdf.NewData(pdf.V1_7), data, nil)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%q: expected ErrUnsupportedFormat, got %v", data, err)
		}
	}
}

func TestICCProfile(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	d := pdf.NewData(pdf.V1_7)
	im, err := Embed(d, encodePNG(t, src), &Options{Profile: icc.SRGBv2Profile})
	if err != nil {
		t.Fatal(err)
	}

	stream := getStream(t, d, im)
	cs, ok := stream.Dict["ColorSpace"].(pdf.Array)
	if !ok || len(cs) != 2 || cs[0] != pdf.Name("ICCBased") {
		t.Fatalf("wrong ColorSpace: %v", stream.Dict["ColorSpace"])
	}
	profile, ok := d.Get(cs[1].(pdf.Reference)).(*pdf.Stream)
	if !ok {
		t.Fatal("profile does not resolve to a stream")
	}
	if profile.Dict["N"] != pdf.Integer(3) {
		t.Errorf("wrong component count: %v", profile.Dict["N"])
	}
	if !bytes.Equal(profile.Data, icc.SRGBv2Profile) {
		t.Errorf("profile data was modified")
	}
}

func TestICCProfileMismatch(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 1))

	d := pdf.NewData(pdf.V1_7)
	_, err := Embed(d, encodePNG(t, src), &Options{Profile: icc.SRGBv2Profile})
	if err == nil {
		t.Error("expected an error for a component count mismatch")
	}
}
