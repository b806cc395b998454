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
	"errors"
	"fmt"
)

// Point is a control point of a tone curve.
//
// Both coordinates are normalised to [0, 1]: the file stores integers in
// the range 0 to 255, which are divided by 255 when decoding.
type Point struct {
	X float64 // input level
	Y float64 // output level
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X*255, p.Y*255)
}

// Curve is the list of control points for one channel, in order of
// increasing X.
type Curve []Point

// IdentityCurve returns the straight line from (0, 0) to (1, 1).
func IdentityCurve() Curve {
	return Curve{{X: 0, Y: 0}, {X: 1, Y: 1}}
}

var (
	// ErrMissingSource indicates that a curves file could not be found or
	// read.
	ErrMissingSource = errors.New("acv: missing curves file")

	// ErrMalformedInput indicates that a curves file or a curve is invalid.
	// All decoding and interpolation errors match this value under
	// [errors.Is].
	ErrMalformedInput = errors.New("acv: malformed input")
)
