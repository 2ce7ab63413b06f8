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

package papercrop

import "testing"

func BenchmarkBuildEdgeBounds(b *testing.B) {
	for b.Loop() {
		BuildEdgeBounds(1600, 1200, 16, AllEdges(Torn))
	}
}

func BenchmarkApplyEdgeMask(b *testing.B) {
	const w, h = 1600, 1200
	bounds := BuildEdgeBounds(w, h, 16, AllEdges(Torn))
	pix := make([]uint8, 4*w*h)
	b.SetBytes(int64(len(pix)))
	for b.Loop() {
		ApplyEdgeMask(pix, 4*w, bounds)
	}
}

func BenchmarkOutline(b *testing.B) {
	bounds := BuildEdgeBounds(1600, 1200, 16, AllEdges(Torn))
	for b.Loop() {
		Outline(bounds)
	}
}
