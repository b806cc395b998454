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

import "math"

// Encode converts the curves file to binary form.
//
// Coordinates are multiplied by 255 and rounded to the nearest integer.
func (f *File) Encode() []byte {
	curves := make([]Curve, 0, NumChannels+len(f.Extra))
	curves = append(curves, f.Curves[:]...)
	curves = append(curves, f.Extra...)

	size := 4
	for _, c := range curves {
		size += 2 + 4*len(c)
	}

	buf := make([]byte, size)
	putUint16(buf, 0, uint16(f.Version))
	putUint16(buf, 2, uint16(len(curves)))
	offset := 4
	for _, c := range curves {
		putUint16(buf, offset, uint16(len(c)))
		offset += 2
		for _, p := range c {
			putUint16(buf, offset, toUint16(p.Y))
			putUint16(buf, offset+2, toUint16(p.X))
			offset += 4
		}
	}
	return buf
}

func toUint16(v float64) uint16 {
	return uint16(clamp(math.Round(v*255), 0, 65535))
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}
