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
	"io/fs"
	"log/slog"
)

// Filter holds the interpolated curves of a curves file.
//
// A Filter is immutable and can be used from multiple goroutines.
type Filter struct {
	curves [NumChannels]*ResponseCurve
}

// NewFilter interpolates the four curves of f.
//
// If any of the curves is invalid, no filter is constructed and the
// returned error matches [ErrMalformedInput].
func NewFilter(f *File) (*Filter, error) {
	flt := &Filter{}
	for _, ch := range Channels {
		r, err := NewResponseCurve(f.Curves[ch])
		if err != nil {
			return nil, fmt.Errorf("%s curve: %w", ch, err)
		}
		flt.curves[ch] = r
	}
	return flt, nil
}

// LoadFilter reads the named curves file from fsys and interpolates its
// curves.
func LoadFilter(fsys fs.FS, name string) (*Filter, error) {
	f, err := Open(fsys, name)
	if err != nil {
		return nil, err
	}
	return NewFilter(f)
}

// Curve returns the response curve for the given channel.
// The returned curve must not be modified.
func (flt *Filter) Curve(ch Channel) *ResponseCurve {
	return flt.curves[ch]
}

// Cube builds the colour cube for the filter.
// Every call returns a newly allocated cube.
func (flt *Filter) Cube() *ColorCube {
	return BuildCube(flt.curves[Composite], flt.curves[Red],
		flt.curves[Green], flt.curves[Blue])
}

// CubeOrNeutral reads the named curves file from fsys and returns the
// corresponding colour cube.
//
// If the file is missing or malformed, a warning is logged and the neutral
// cube is returned instead, so that the filter degrades to a pass-through
// transform.  A partially built cube is never returned.
func CubeOrNeutral(fsys fs.FS, name string) *ColorCube {
	flt, err := LoadFilter(fsys, name)
	if err != nil {
		kind := "malformed"
		if errors.Is(err, ErrMissingSource) {
			kind = "missing"
		}
		Logger().Warn("using neutral colour cube",
			slog.String("file", name),
			slog.String("reason", kind),
			slog.Any("error", err))
		return NeutralCube()
	}
	return flt.Cube()
}
