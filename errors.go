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

package pdf

import (
	"errors"
	"fmt"
)

// All errors returned by this package indicate mistakes by the caller.
// Document generation is all-or-nothing: once an error is reported, no
// usable PDF output is produced.

var (
	// ErrNotInteger indicates that a numeric value with a fractional part
	// was used where an integer is required.
	ErrNotInteger = errors.New("number is not an integer")

	// ErrDirectObject indicates that a reference was requested for an
	// object which is not registered as an indirect object.
	ErrDirectObject = errors.New("object is not indirect")

	// ErrOutOfRange indicates an index or position outside the valid range,
	// for example an array index or a bookmark position path.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNoOffset indicates that the byte offset of an indirect object was
	// not recorded before the cross-reference table was built.
	ErrNoOffset = errors.New("missing byte offset for indirect object")
)

// A VersionError is returned when trying to use a feature which is not
// supported by the PDF version of the document.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return err.Operation + " requires PDF version " + err.Earliest.String() + " or newer"
}

// A SchemaError is returned when a key assignment or a completeness check
// on a structural dictionary violates the dictionary's schema.
type SchemaError struct {
	Type   Name // the /Type of the dictionary, e.g. "Catalog"
	Key    Name
	Reason string
}

func (err *SchemaError) Error() string {
	return fmt.Sprintf("/%s dictionary, key /%s: %s", err.Type, err.Key, err.Reason)
}
