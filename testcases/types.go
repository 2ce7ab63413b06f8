// seehuhn.de/go/papercrop - torn paper edges for cropped images
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

// Package testcases lists the crop geometries used by the tests and by the
// reference generators in the sub-directories.
package testcases

import "seehuhn.de/go/papercrop"

// TestCase defines a single crop.
type TestCase struct {
	Name      string // lowercase a-z, 0-9 and _ only
	Width     int    // crop width in pixels
	Height    int    // crop height in pixels
	Roughness float64
	Edges     papercrop.EdgeModes
}

var (
	torn     = papercrop.AllEdges(papercrop.Torn)
	straight = papercrop.AllEdges(papercrop.Straight)
)

// edges builds an EdgeModes value from a string like "tTsS", listing top,
// right, bottom and left.  't' stands for torn, any other letter for
// straight.
func edges(code string) papercrop.EdgeModes {
	mode := func(c byte) papercrop.EdgeMode {
		if c == 't' || c == 'T' {
			return papercrop.Torn
		}
		return papercrop.Straight
	}
	return papercrop.EdgeModes{
		Top:    mode(code[0]),
		Right:  mode(code[1]),
		Bottom: mode(code[2]),
		Left:   mode(code[3]),
	}
}
