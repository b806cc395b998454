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

// Package acv reads Photoshop curves files and turns them into colour cubes.
//
// A curves file (usually with extension ".acv") stores one tone curve for
// the composite RGB channel and one each for red, green and blue. Every
// curve is a short list of control points. The package interpolates the
// control points with a natural cubic spline and combines the four
// resulting curves into a 3-D lookup table, suitable for GPU colour cube
// filters.
//
// # Reading Curves Files
//
// Use [Decode] to parse the binary data, or [ReadFile] and [Open] to read
// from a file:
//
//	f, err := acv.Decode(data)
//	if err != nil {
//	    // handle error
//	}
//	// inspect f.Version and f.Curves[acv.Red], etc.
//
// # Building a Colour Cube
//
// A [Filter] holds the interpolated curves of one file:
//
//	flt, err := acv.NewFilter(f)
//	if err != nil {
//	    // handle error
//	}
//	cube := flt.Cube()
//	data := cube.Bytes() // 32*32*32 BGRA float32 values
//
// Callers which only want a usable cube can use [CubeOrNeutral], which
// falls back to the pass-through cube if the file is missing or broken.
package acv

import "fmt"

// File represents the contents of a curves file.
type File struct {
	// Version is the format version stored in the file header.
	// The value is informational only and does not affect decoding.
	Version Version

	// Curves holds the control points for each channel.
	Curves [NumChannels]Curve

	// Extra holds any curves stored after the blue curve.
	// These are preserved by Encode but otherwise ignored.
	Extra []Curve
}

// Version is the version field of a curves file.
type Version uint16

// Versions written by Photoshop.
const (
	Version1 Version = 1
	Version4 Version = 4
)

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint16(v))
}

// CubeDimension is the number of grid points per axis in the colour cubes
// built by this package.
const CubeDimension = 32
