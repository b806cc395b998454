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
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

// rawFile assembles a curves file.  Each curve is given as a list of
// (input, output) pairs; the function takes care of writing the output
// value first.
func rawFile(version uint16, curves ...[][2]uint16) []byte {
	var buf []byte
	add := func(v uint16) {
		buf = append(buf, byte(v>>8), byte(v))
	}
	add(version)
	add(uint16(len(curves)))
	for _, c := range curves {
		add(uint16(len(c)))
		for _, p := range c {
			add(p[1])
			add(p[0])
		}
	}
	return buf
}

var identityPoints = [][2]uint16{{0, 0}, {255, 255}}

func TestDecode(t *testing.T) {
	data := rawFile(4,
		[][2]uint16{{0, 10}, {128, 150}, {255, 255}},
		[][2]uint16{{0, 0}, {64, 50}, {192, 210}, {255, 255}},
		identityPoints,
		[][2]uint16{{20, 0}, {255, 230}},
	)

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := &File{
		Version: 4,
		Curves: [NumChannels]Curve{
			Composite: {{0, 10.0 / 255}, {128.0 / 255, 150.0 / 255}, {1, 1}},
			Red:       {{0, 0}, {64.0 / 255, 50.0 / 255}, {192.0 / 255, 210.0 / 255}, {1, 1}},
			Green:     {{0, 0}, {1, 1}},
			Blue:      {{20.0 / 255, 0}, {1, 230.0 / 255}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded file mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeExtraCurves(t *testing.T) {
	data := rawFile(1,
		identityPoints, identityPoints, identityPoints, identityPoints,
		[][2]uint16{{0, 255}, {255, 0}},
	)
	// trailing garbage is ignored
	data = append(data, 0xDE, 0xAD)

	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f.Version != Version1 {
		t.Errorf("version = %v, want %v", f.Version, Version1)
	}
	want := []Curve{{{0, 1}, {1, 0}}}
	if diff := cmp.Diff(want, f.Extra); diff != "" {
		t.Errorf("extra curves mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid := rawFile(4, identityPoints, identityPoints, identityPoints, identityPoints)

	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"empty", nil, 0},
		{"one byte", []byte{0}, 0},
		{"version only", []byte{0, 4}, 0},
		{"no curves", []byte{0, 4, 0, 0}, 2},
		{"three curves", rawFile(4, identityPoints, identityPoints, identityPoints), 2},
		{"missing curves", []byte{0, 4, 0, 4}, 2},
		{"missing point count", valid[:len(valid)-10], 34},
		{"truncated points", valid[:len(valid)-1], 34},
		{"huge point count", []byte{0, 4, 0, 4, 0xFF, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(tt.data)
			if err == nil {
				t.Fatalf("Decode succeeded: %v", f)
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("error %v does not match ErrMalformedInput", err)
			}
			var mErr *MalformedInputError
			if !errors.As(err, &mErr) {
				t.Fatalf("error has type %T, want *MalformedInputError", err)
			}
			if mErr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", mErr.Offset, tt.offset)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := &File{
		Version: Version4,
		Curves: [NumChannels]Curve{
			Composite: {{0, 0}, {100.0 / 255, 140.0 / 255}, {1, 1}},
			Red:       IdentityCurve(),
			Green:     {{5.0 / 255, 0}, {250.0 / 255, 1}},
			Blue:      IdentityCurve(),
		},
		Extra: []Curve{IdentityCurve()},
	}

	data := f.Encode()
	if len(data) != 4+5*2+4*(3+2+2+2+2) {
		t.Errorf("encoded length = %d", len(data))
	}

	g, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(f, g); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.acv":     {Data: rawFile(4, identityPoints, identityPoints, identityPoints, identityPoints)},
		"broken.acv": {Data: []byte{0, 4}},
	}

	f, err := Open(fsys, "ok.acv")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if f.Version != Version4 {
		t.Errorf("version = %v, want %v", f.Version, Version4)
	}

	_, err = Open(fsys, "missing.acv")
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("missing file: got %v, want ErrMissingSource", err)
	}

	_, err = Open(fsys, "broken.acv")
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("broken file: got %v, want ErrMalformedInput", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(t.TempDir() + "/does-not-exist.acv")
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("got %v, want ErrMissingSource", err)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(rawFile(4, identityPoints, identityPoints, identityPoints, identityPoints))
	f.Add(rawFile(1,
		[][2]uint16{{0, 10}, {128, 150}, {255, 255}},
		identityPoints, identityPoints, identityPoints,
		[][2]uint16{{3, 4}}))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, a []byte) {
		p, err := Decode(a)
		if err != nil {
			return
		}
		b := p.Encode()
		q, err := Decode(b)
		if err != nil {
			t.Fatalf("re-decoding failed: %v", err)
		}
		if !reflect.DeepEqual(p, q) {
			t.Fatalf("files differ:\n%s", cmp.Diff(p, q))
		}
	})
}
