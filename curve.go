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

	"golang.org/x/exp/constraints"
)

// knot is a control point in level units, i.e. with coordinates in
// [0, 255].
type knot struct {
	x, y float64
}

// knots converts the control points to level units.
// Coordinates are rounded to the nearest integer, since the file format
// can only represent integer levels.
func (c Curve) knots() []knot {
	res := make([]knot, len(c))
	for i, p := range c {
		res[i] = knot{
			x: math.Round(p.X * 255),
			y: math.Round(p.Y * 255),
		}
	}
	return res
}

// Validate checks that the curve can be interpolated.
//
// A valid curve has at least two control points, strictly increasing input
// levels, and all coordinates in the range [0, 1]. The returned error
// matches [ErrMalformedInput].
func (c Curve) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("%w: curve has %d control points, need at least 2",
			ErrMalformedInput, len(c))
	}
	kk := c.knots()
	for i, k := range kk {
		if !(k.x >= 0 && k.x <= 255 && k.y >= 0 && k.y <= 255) {
			return fmt.Errorf("%w: control point %d is out of range",
				ErrMalformedInput, i)
		}
		if i > 0 && k.x <= kk[i-1].x {
			return fmt.Errorf("%w: control point %d is not to the right of its predecessor",
				ErrMalformedInput, i)
		}
	}
	return nil
}

// IsIdentity returns true if the curve is the straight line from (0, 0)
// to (1, 1).
func (c Curve) IsIdentity() bool {
	if len(c) < 2 {
		return false
	}
	kk := c.knots()
	for _, k := range kk {
		if k.x != k.y {
			return false
		}
	}
	return kk[0].x == 0 && kk[len(kk)-1].x == 255
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
