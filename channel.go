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

import "fmt"

// Channel identifies one of the curves in a curves file.
// The values give the order in which the curves are stored.
type Channel int

// The channels of an RGB curves file, in file order.
const (
	Composite Channel = iota
	Red
	Green
	Blue

	// NumChannels is the number of curves used to build a colour cube.
	NumChannels = 4
)

func (c Channel) String() string {
	switch c {
	case Composite:
		return "RGB"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Channels lists all channels in file order.
var Channels = [NumChannels]Channel{Composite, Red, Green, Blue}
