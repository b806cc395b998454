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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ColorCube is a 3-D colour lookup table.
//
// Data holds Dimension³ cells of four float32 values each, in the order
// blue, green, red, alpha. The blue index varies slowest and the red
// index fastest, so that the cell for grid point (r, g, b) starts at
// index 4*((b*Dimension+g)*Dimension+r). Alpha is always 1.
//
// A ColorCube is not modified after construction and can be shared
// between goroutines.
type ColorCube struct {
	Dimension  int
	ColorSpace ColorSpace
	Data       []float32
}

// cubeLevels are the input levels represented by the grid points along
// each axis of the cube.  Entry i is the integer nearest to i*255/31.
var cubeLevels = [CubeDimension]int{
	0, 8, 16, 25, 33, 41, 49, 58,
	66, 74, 82, 90, 99, 107, 115, 123,
	132, 140, 148, 156, 165, 173, 181, 189,
	197, 206, 214, 222, 230, 239, 247, 255,
}

// BuildCube combines the response curves of a curves file into a colour
// cube.
//
// At every grid point, each colour channel is displaced by the sum of its
// own curve and the composite curve, clamped to [0, 255], normalised to
// [0, 1] and passed through [SRGBToLinear].
func BuildCube(composite, red, green, blue *ResponseCurve) *ColorCube {
	const size = CubeDimension
	data := make([]float32, 0, size*size*size*4)

	channel := func(curve *ResponseCurve, level int) float32 {
		v := float32(level) + curve[level] + composite[level]
		return SRGBToLinear(clamp(v, 0, 255) / 255)
	}

	for b := range size {
		bb := channel(blue, cubeLevels[b])
		for g := range size {
			gg := channel(green, cubeLevels[g])
			for r := range size {
				rr := channel(red, cubeLevels[r])
				data = append(data, bb, gg, rr, 1)
			}
		}
	}

	return &ColorCube{
		Dimension:  size,
		ColorSpace: DeviceRGB,
		Data:       data,
	}
}

// NeutralCube returns the colour cube of a curves file where all curves
// are the identity.  Applying this cube leaves colours (almost) unchanged.
func NeutralCube() *ColorCube {
	var zero ResponseCurve
	return BuildCube(&zero, &zero, &zero, &zero)
}

// Cell returns the blue, green, red and alpha values stored for the grid
// point (r, g, b).
func (c *ColorCube) Cell(r, g, b int) [4]float32 {
	i := 4 * ((b*c.Dimension+g)*c.Dimension + r)
	return [4]float32(c.Data[i : i+4])
}

// Bytes returns the cube data as a sequence of little-endian IEEE 754
// single precision values, as expected by GPU colour cube filters.
func (c *ColorCube) Bytes() []byte {
	buf := make([]byte, 4*len(c.Data))
	for i, v := range c.Data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// WriteTo writes the cube in the ".cube" text format used by many colour
// grading applications.  The alpha channel is omitted.
func (c *ColorCube) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var n int64
	cur, err := fmt.Fprintf(bw, "LUT_3D_SIZE %d\n\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 1 1\n\n", c.Dimension)
	n += int64(cur)
	if err != nil {
		return n, err
	}

	// the red index varies fastest, as required by the file format
	for i := 0; i+3 < len(c.Data); i += 4 {
		cur, err = fmt.Fprintf(bw, "%.6f %.6f %.6f\n", c.Data[i+2], c.Data[i+1], c.Data[i])
		n += int64(cur)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}
