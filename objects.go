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
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// Object represents an object in a PDF file.  There are ten basic types of
// PDF objects, which implement this interface: [Array], [Bool], [Dict],
// [HexString], [Integer], [Name], [Null], [Real], [Reference], [*Stream] and
// [String].  Custom types can be constructed out of these basic types, by
// implementing the Object interface.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Kind enumerates the basic object types.  Every [Object] value maps to
// exactly one Kind, so that validation and serialisation code can switch
// exhaustively instead of inspecting types ad hoc.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindString
	KindName
	KindArray
	KindDict
	KindStream
	KindReference

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindName:
		return "Name"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	case KindReference:
		return "Reference"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf returns the Kind of obj.  A nil Object is KindNull.
func KindOf(obj Object) Kind {
	switch obj.(type) {
	case nil, Null:
		return KindNull
	case Bool:
		return KindBool
	case Integer:
		return KindInteger
	case Real, Number:
		return KindReal
	case String, HexString:
		return KindString
	case Name:
		return KindName
	case Array, *Rectangle:
		return KindArray
	case Dict, *StructDict:
		return KindDict
	case *Stream:
		return KindStream
	case Reference:
		return KindReference
	default:
		// Custom Object implementations are built from dictionaries.
		return KindDict
	}
}

// KindSet is a set of object kinds.  Dictionary schemas use kind sets to
// constrain which kinds a value may have.
type KindSet uint16

// Kinds builds a KindSet from the given kinds.
func Kinds(kk ...Kind) KindSet {
	var s KindSet
	for _, k := range kk {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is contained in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s KindSet) String() string {
	buf := &bytes.Buffer{}
	for k := Kind(0); k < numKinds; k++ {
		if s.Has(k) {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString(k.String())
		}
	}
	return buf.String()
}

// writeObject writes obj to w, writing the null object for a nil Object.
func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := w.Write([]byte("null"))
		return err
	}
	return obj.PDF(w)
}

// Format formats a PDF object as a string, in the same way as it would be
// written to a PDF file.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		panic(err)
	}
	return buf.String()
}

// Null represents the null object.
type Null struct{}

// PDF implements the [Object] interface.
func (x Null) PDF(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// AsInteger converts x to an Integer.  The conversion fails with
// [ErrNotInteger] if x has a fractional part or does not fit into an int64.
func AsInteger(x float64) (Integer, error) {
	i, frac := math.Modf(x)
	if frac != 0 || math.IsNaN(x) || math.IsInf(x, 0) ||
		i < math.MinInt64 || i >= math.MaxInt64 {
		return 0, fmt.Errorf("%g: %w", x, ErrNotInteger)
	}
	return Integer(i), nil
}

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents a real number in a PDF file.  The serialised form always
// contains a decimal point, to distinguish it from an Integer.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !bytes.ContainsAny([]byte(s), ".") {
		s = s + "."
	}
	_, err := w.Write([]byte(s))
	return err
}

// Number represents a numeric value, written as an Integer when the value
// is integral and as a Real otherwise.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	var obj Object
	if i := Integer(x); Number(i) == x {
		obj = i
	} else {
		obj = Real(x)
	}
	return obj.PDF(w)
}

// String represents a string in a PDF file, written in the literal form
// "(...)".  The character set encoding, if any, is determined by the
// context; see [TextString] for the encoding used in document metadata.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch c {
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			if c < 32 {
				fmt.Fprintf(buf, `\%03o`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// HexString represents a string in a PDF file, written in the hexadecimal
// form "<...>".
type HexString []byte

// PDF implements the [Object] interface.
func (x HexString) PDF(w io.Writer) error {
	buf := make([]byte, 0, 2*len(x)+2)
	buf = append(buf, '<')
	const digits = "0123456789abcdef"
	for _, c := range x {
		buf = append(buf, digits[c>>4], digits[c&15])
	}
	buf = append(buf, '>')
	_, err := w.Write(buf)
	return err
}

// Name represents a name object in a PDF file.
//
// Names used as dictionary keys within a single document should be obtained
// from [Data.Name], which keeps one canonical copy per document.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	var funny []int
	for i, c := range l {
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			funny = append(funny, i)
		}
	}
	n := len(l)

	_, err := w.Write([]byte{'/'})
	if err != nil {
		return err
	}
	pos := 0
	for _, i := range funny {
		if pos < i {
			_, err = w.Write(l[pos:i])
			if err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "#%02x", l[i])
		if err != nil {
			return err
		}
		pos = i + 1
	}
	if pos < n {
		_, err = w.Write(l[pos:n])
		if err != nil {
			return err
		}
	}

	return nil
}

var isSpace = [256]bool{
	0:  true,
	9:  true,
	10: true,
	12: true,
	13: true,
	32: true,
}

var isDelimiter = [256]bool{
	'(': true,
	')': true,
	'<': true,
	'>': true,
	'[': true,
	']': true,
	'{': true,
	'}': true,
	'/': true,
	'%': true,
}

// Array represents an array of objects in a PDF file.  Members which are
// indirect objects are stored as [Reference] values, so that they serialise
// as references instead of being inlined.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// Set replaces the member at index i.  The index must name an existing
// member; otherwise the call fails with [ErrOutOfRange].
func (x Array) Set(i int, obj Object) error {
	if i < 0 || i >= len(x) {
		return fmt.Errorf("array index %d of %d: %w", i, len(x), ErrOutOfRange)
	}
	x[i] = obj
	return nil
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Dict represents a dictionary object in a PDF file.  Values which are
// indirect objects are stored as [Reference] values, so that they serialise
// as references instead of being inlined.
//
// Entries are written on a single line in sorted key order, so that output
// is reproducible.
type Dict map[Name]Object

func (x Dict) String() string {
	if tp, ok := x["Type"].(Name); ok {
		return "<" + string(tp) + " Dict, " + strconv.Itoa(len(x)) + " entries>"
	}
	return "<Dict, " + strconv.Itoa(len(x)) + " entries>"
}

// sortedKeys returns the keys of x with nil values skipped, in sorted order.
func (x Dict) sortedKeys() []Name {
	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for _, name := range x.sortedKeys() {
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = x[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte(" >>"))
	return err
}

// Stream represents a stream object in a PDF file.  Data is the stream
// payload; the Length entry of the dictionary is overwritten with the exact
// payload length every time the stream is serialised.
type Stream struct {
	Dict Dict
	Data []byte
}

func (x *Stream) String() string {
	if tp, ok := x.Dict["Type"].(Name); ok {
		return "<" + string(tp) + " Stream, " + strconv.Itoa(len(x.Data)) + " bytes>"
	}
	return "<Stream, " + strconv.Itoa(len(x.Data)) + " bytes>"
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	if x.Dict == nil {
		x.Dict = Dict{}
	}
	x.Dict["Length"] = Integer(len(x.Data))

	err := x.Dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\r\nstream\r\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\r\nendstream"))
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// The lower 32 bits hold the object number, the next 16 bits the
// generation number.
type Reference uint64

// NewReference combines an object number and a generation number into a
// Reference.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	res := "obj_" + strconv.FormatUint(uint64(x.Number()), 10)
	if gen := x.Generation(); gen > 0 {
		res += "@" + strconv.FormatUint(uint64(gen), 10)
	}
	return res
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x>>48 != 0 {
		return fmt.Errorf("invalid reference: 0x%016x", uint64(x))
	}
	_, err := fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
	return err
}

// Rectangle represents a PDF rectangle, given by the coordinates of two
// diagonally opposite corners.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLx, r.LLy, r.URx, r.URy)
}

// Width returns the width of the rectangle.
func (r *Rectangle) Width() float64 {
	return r.URx - r.LLx
}

// Height returns the height of the rectangle.
func (r *Rectangle) Height() float64 {
	return r.URy - r.LLy
}

// IsZero reports whether the rectangle is the zero rectangle.
func (r Rectangle) IsZero() bool {
	return r.LLx == 0 && r.LLy == 0 && r.URx == 0 && r.URy == 0
}

// PDF implements the [Object] interface.  Coordinates are rounded to
// hundredths of a point.
func (r *Rectangle) PDF(w io.Writer) error {
	res := make(Array, 0, 4)
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return res.PDF(w)
}
