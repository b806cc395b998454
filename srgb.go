// seehuhn.de/go/acv - convert Photoshop curves files to colour cubes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package acv

import (
	"fmt"
	"math"
)

// ColorSpace identifies the colour space in which a colour cube is
// expressed.
type ColorSpace int

// Colour spaces of colour cubes.
const (
	// DeviceRGB is the native RGB space of the output device.
	DeviceRGB ColorSpace = iota
)

func (s ColorSpace) String() string {
	switch s {
	case DeviceRGB:
		return "DeviceRGB"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(s))
	}
}

// SRGBToLinear maps a gamma-encoded sRGB component in [0, 1] to the value
// stored in a colour cube.
//
// This is the approximation used by GPU colour cube filters: the
// component is first decoded with the sRGB transfer function and then
// mapped through the sRGB encoding curve of the filter's working space.
// Both steps use approximate coefficients, so the result is close to, but
// not exactly, the input.  SRGBToLinear(0) == 0 and SRGBToLinear(1) is
// within 1e-4 of 1.
func SRGBToLinear(c float32) float32 {
	var rgb float32
	if c <= 0.04045 {
		rgb = c * 0.0774
	} else {
		rgb = pow32(c*0.9479+0.05213, 2.4)
	}

	if rgb <= 0.00313 {
		return rgb * 12.92
	}
	return pow32(rgb, 0.4167)*1.055 - 0.055
}

func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
