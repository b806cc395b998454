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
	"io/fs"
	"os"
)

// Decode decodes a curves file from the given data.
// The data is not retained after Decode returns.
//
// The file must contain at least the four RGB curves. Curves after the
// fourth are decoded and stored in [File.Extra].
func Decode(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, malformed(0, "file is empty")
	}
	if len(data) < 4 {
		return nil, malformed(0, "header is too short")
	}

	version := Version(getUint16(data, 0))
	numCurves := int(getUint16(data, 2))
	Logger().Debug("acv header", "version", version, "curves", numCurves)

	if numCurves < NumChannels {
		return nil, malformed(2, fmt.Sprintf("need %d curves, found %d", NumChannels, numCurves))
	}
	// each curve needs at least its point count
	if (len(data)-4)/2 < numCurves {
		return nil, malformed(2, "too many curves")
	}

	f := &File{Version: version}

	offset := 4
	for i := range numCurves {
		if offset+2 > len(data) {
			return nil, malformed(offset, "missing point count")
		}
		numPoints := int(getUint16(data, offset))
		if len(data)-offset-2 < 4*numPoints {
			return nil, malformed(offset, "curve is truncated")
		}
		offset += 2

		c := make(Curve, numPoints)
		for j := range c {
			// the output value comes first
			y := getUint16(data, offset)
			x := getUint16(data, offset+2)
			c[j] = Point{X: float64(x) / 255, Y: float64(y) / 255}
			offset += 4
		}

		if i < NumChannels {
			f.Curves[Channels[i]] = c
		} else {
			f.Extra = append(f.Extra, c)
		}
	}

	if offset < len(data) {
		Logger().Debug("acv trailing data ignored", "bytes", len(data)-offset)
	}

	return f, nil
}

// ReadFile reads and decodes the named curves file.
// If the file cannot be read, the error matches [ErrMissingSource].
func ReadFile(name string) (*File, error) {
	body, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
	}
	return Decode(body)
}

// Open reads and decodes the named curves file from fsys.
// If the file cannot be read, the error matches [ErrMissingSource].
func Open(fsys fs.FS, name string) (*File, error) {
	body, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
	}
	return Decode(body)
}

func getUint16(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}

// MalformedInputError indicates that a curves file contains invalid binary
// data and cannot be decoded.
type MalformedInputError struct {
	Offset int
	Reason string
}

func malformed(offset int, reason string) error {
	return &MalformedInputError{Offset: offset, Reason: reason}
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("acv: malformed input (byte %d): %s", e.Offset, e.Reason)
}

// Is reports whether target is [ErrMalformedInput].
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
