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

// Lookup returns the red, green and blue values of the cube at the
// colour (r, g, b), using tetrahedral interpolation between the grid
// points.  The inputs are in [0, 1] and are clamped to this range.
//
// The grid points are treated as evenly spaced, which is how GPU colour
// cube filters read the table.
func (c *ColorCube) Lookup(r, g, b float64) [3]float64 {
	n := c.Dimension
	if n < 2 {
		var out [3]float64
		if len(c.Data) >= 4 {
			out = [3]float64{float64(c.Data[2]), float64(c.Data[1]), float64(c.Data[0])}
		}
		return out
	}

	// scale to grid coordinates
	scale := float64(n - 1)
	rPos := clamp(r, 0, 1) * scale
	gPos := clamp(g, 0, 1) * scale
	bPos := clamp(b, 0, 1) * scale

	// grid indices of the lower corner
	ri := min(int(rPos), n-2)
	gi := min(int(gPos), n-2)
	bi := min(int(bPos), n-2)

	fr := clamp(rPos-float64(ri), 0, 1)
	fg := clamp(gPos-float64(gi), 0, 1)
	fb := clamp(bPos-float64(bi), 0, 1)

	// red varies fastest, blue slowest
	rStride := 4
	gStride := n * rStride
	bStride := n * gStride

	base := bi*bStride + gi*gStride + ri*rStride

	// the 8 corners of the cell, indexed by (r, g, b) offsets
	c000 := base
	c001 := base + bStride
	c010 := base + gStride
	c011 := base + gStride + bStride
	c100 := base + rStride
	c101 := base + rStride + bStride
	c110 := base + rStride + gStride
	c111 := base + rStride + gStride + bStride

	// corner values in RGB order
	at := func(idx int) [3]float64 {
		return [3]float64{float64(c.Data[idx+2]), float64(c.Data[idx+1]), float64(c.Data[idx])}
	}

	// select the tetrahedron based on the order of the fractional parts
	var w [4]float64
	var corners [4]int
	if fr > fg {
		if fg > fb {
			// fr > fg > fb
			w = [4]float64{1 - fr, fr - fg, fg - fb, fb}
			corners = [4]int{c000, c100, c110, c111}
		} else if fr > fb {
			// fr > fb >= fg
			w = [4]float64{1 - fr, fr - fb, fb - fg, fg}
			corners = [4]int{c000, c100, c101, c111}
		} else {
			// fb >= fr > fg
			w = [4]float64{1 - fb, fb - fr, fr - fg, fg}
			corners = [4]int{c000, c001, c101, c111}
		}
	} else {
		if fr > fb {
			// fg >= fr > fb
			w = [4]float64{1 - fg, fg - fr, fr - fb, fb}
			corners = [4]int{c000, c010, c110, c111}
		} else if fg > fb {
			// fg > fb >= fr
			w = [4]float64{1 - fg, fg - fb, fb - fr, fr}
			corners = [4]int{c000, c010, c011, c111}
		} else {
			// fb >= fg >= fr
			w = [4]float64{1 - fb, fb - fg, fg - fr, fr}
			corners = [4]int{c000, c001, c011, c111}
		}
	}

	var out [3]float64
	for k, idx := range corners {
		v := at(idx)
		for i := range out {
			out[i] += w[k] * v[i]
		}
	}
	return out
}
