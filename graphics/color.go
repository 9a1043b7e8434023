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
	"errors"
	"fmt"
	"math"
)

// ErrColorRange is returned when a color component is outside its
// allowed range.
var ErrColorRange = errors.New("color component out of range")

// Color is a device color for filling and stroking operations.  The
// concrete types are [RGB], [CMYK] and [HSL].
type Color interface {
	// components returns the operand list for the color setting
	// operators, with every component scaled to the range 0 to 1.
	components() []float64

	// operator returns the stroking form of the color setting operator.
	operator() string

	// Check verifies that all components are within their allowed range.
	Check() error
}

// RGB is a color in the DeviceRGB color space.  Each component is in the
// range from 0 to 255.
type RGB struct {
	R, G, B float64
}

func (c RGB) Check() error {
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 255 || math.IsNaN(v) {
			return fmt.Errorf("RGB component %g outside [0, 255]: %w",
				v, ErrColorRange)
		}
	}
	return nil
}

func (c RGB) components() []float64 {
	return []float64{c.R / 255, c.G / 255, c.B / 255}
}

func (c RGB) operator() string {
	return "RG"
}

// Values returns the components scaled to the range 0 to 1, the form
// used in annotation color arrays.
func (c RGB) Values() []float64 {
	return c.components()
}

// CMYK is a color in the DeviceCMYK color space.  Each component is a
// percentage in the range from 0 to 100.
type CMYK struct {
	C, M, Y, K float64
}

func (c CMYK) Check() error {
	for _, v := range []float64{c.C, c.M, c.Y, c.K} {
		if v < 0 || v > 100 || math.IsNaN(v) {
			return fmt.Errorf("CMYK component %g outside [0, 100]: %w",
				v, ErrColorRange)
		}
	}
	return nil
}

func (c CMYK) components() []float64 {
	return []float64{c.C / 100, c.M / 100, c.Y / 100, c.K / 100}
}

func (c CMYK) operator() string {
	return "K"
}

// HSL is a color given as hue, saturation and lightness.  The hue is an
// angle in degrees in the range from 0 to 360, saturation and lightness
// are percentages in the range from 0 to 100.  For output the color is
// converted to DeviceRGB.
type HSL struct {
	H, S, L float64
}

func (c HSL) Check() error {
	if c.H < 0 || c.H > 360 || math.IsNaN(c.H) {
		return fmt.Errorf("hue %g outside [0, 360]: %w", c.H, ErrColorRange)
	}
	for _, v := range []float64{c.S, c.L} {
		if v < 0 || v > 100 || math.IsNaN(v) {
			return fmt.Errorf("HSL component %g outside [0, 100]: %w",
				v, ErrColorRange)
		}
	}
	return nil
}

// RGB converts the color to the DeviceRGB color space.
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360) / 60
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{(r + m) * 255, (g + m) * 255, (b + m) * 255}
}

func (c HSL) components() []float64 {
	return c.RGB().components()
}

func (c HSL) operator() string {
	return "RG"
}
