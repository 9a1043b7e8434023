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

// Package metadata mirrors the document information dictionary as an XMP
// metadata stream.
package metadata

import (
	"bytes"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	pdf "github.com/BenediktEngel/htmlWebsite2pdf-sub000"
)

// adobePDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type adobePDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
	Trapped  xmp.Text
}

var xDefault = language.MustParse("x-default")

// Packet converts the document information into an XMP packet with the
// Dublin Core, XMP Basic and Adobe PDF properties filled in.  If lang is
// not [language.Und], the title and subject carry a language alternative
// for lang in addition to the default entry.
func Packet(info *pdf.Info, lang language.Tag) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
		if lang != language.Und {
			dc.Title.Set(lang, info.Title)
		}
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
		if lang != language.Und {
			dc.Description.Set(lang, info.Subject)
		}
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfNS := &adobePDF{}
	if info.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(info.Producer)
	}
	if info.Trapped != "" {
		pdfNS.Trapped = xmp.NewText(string(info.Trapped))
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfNS)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Embed stores the XMP mirror of info as a metadata stream and records it
// in the document catalog.  XMP metadata streams require PDF 1.4.
func Embed(d *pdf.Data, info *pdf.Info, lang language.Tag) (pdf.Reference, error) {
	if err := pdf.CheckVersion(d, "XMP metadata stream", pdf.V1_4); err != nil {
		return 0, err
	}

	packet, err := Packet(info, lang)
	if err != nil {
		return 0, err
	}

	buf := &bytes.Buffer{}
	opt := &xmp.PacketOptions{
		Pretty: true,
	}
	err = packet.Write(buf, opt)
	if err != nil {
		return 0, err
	}

	ref := d.Alloc()
	d.Put(ref, &pdf.Stream{
		Dict: pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		},
		Data: buf.Bytes(),
	})

	err = d.Catalog().Set("Metadata", ref)
	if err != nil {
		return 0, err
	}
	return ref, nil
}
