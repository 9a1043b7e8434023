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

import "errors"

// Version represents a version of the PDF standard.
type Version int

// Constants for the known PDF versions.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
	tooHighVersion
)

// ParseVersion parses a PDF version string.
func ParseVersion(verString string) (Version, error) {
	switch verString {
	case "1.0":
		return V1_0, nil
	case "1.1":
		return V1_1, nil
	case "1.2":
		return V1_2, nil
	case "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "2.0":
		return V2_0, nil
	}
	return 0, errVersion
}

// ToString returns the string representation of ver, e.g. "1.7".
// If ver does not correspond to a valid PDF version, an error is returned.
func (ver Version) ToString() (string, error) {
	if ver >= V1_0 && ver < tooHighVersion {
		return ver.String(), nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	switch ver {
	case V1_0:
		return "1.0"
	case V1_1:
		return "1.1"
	case V1_2:
		return "1.2"
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	case V1_6:
		return "1.6"
	case V1_7:
		return "1.7"
	case V2_0:
		return "2.0"
	default:
		return "pdf.Version(invalid)"
	}
}

var errVersion = errors.New("unsupported PDF version")

// CheckVersion checks whether the document being written has version
// minVersion or later.  If the version is new enough, nil is returned.
// Otherwise a [VersionError] for the given operation is returned.
func CheckVersion(d *Data, operation string, minVersion Version) error {
	if d.meta.Version >= minVersion {
		return nil
	}
	return &VersionError{
		Operation: operation,
		Earliest:  minVersion,
	}
}
