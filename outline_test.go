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

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polygonArea returns the signed area of the polygon formed by all points
// of p, using the shoelace formula.
func polygonArea(p *path.Data) float64 {
	var area float64
	n := len(p.Coords)
	for i, a := range p.Coords {
		b := p.Coords[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func TestOutlineStraight(t *testing.T) {
	b := BuildEdgeBounds(24, 18, 8, AllEdges(Straight))
	p := Outline(b)

	if len(p.Coords) != 92 {
		t.Errorf("got %d points, want 92", len(p.Coords))
	}
	if p.Cmds[0] != path.CmdMoveTo || p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Error("outline is not a single closed subpath")
	}
	for _, cmd := range p.Cmds[1 : len(p.Cmds)-1] {
		if cmd != path.CmdLineTo {
			t.Fatalf("unexpected command %v", cmd)
		}
	}
	if got := polygonArea(p); got != 432 {
		t.Errorf("area %g, want 432", got)
	}
}

func TestOutlineMatchesMask(t *testing.T) {
	sizes := [][3]int{{96, 72, 16}, {200, 150, 16}, {64, 64, 8}, {400, 300, 24}}
	for _, s := range sizes {
		w, h, rough := s[0], s[1], float64(s[2])
		b := BuildEdgeBounds(w, h, rough, AllEdges(Torn))
		p := Outline(b)

		inside := 0
		for y := range h {
			for x := range w {
				if b.Inside(x, y) {
					inside++
				}
			}
		}
		area := polygonArea(p)
		if math.Abs(area-float64(inside)) > float64(w+h) {
			t.Errorf("%dx%d: outline area %g, mask has %d pixels", w, h, area, inside)
		}
	}
}

func TestOutlineStartsAtCorner(t *testing.T) {
	b := BuildEdgeBounds(96, 72, 16, AllEdges(Torn))
	c := FindCornerIntersections(b)
	p := Outline(b)

	if p.Coords[0] != c.TL {
		t.Errorf("outline starts at %v, want %v", p.Coords[0], c.TL)
	}
	found := map[vec.Vec2]bool{}
	for _, pt := range p.Coords {
		found[pt] = true
	}
	for _, corner := range []vec.Vec2{c.TR, c.BR, c.BL} {
		if !found[corner] {
			t.Errorf("corner %v missing from outline", corner)
		}
	}
}

func TestOutlineStaysInBand(t *testing.T) {
	b := BuildEdgeBounds(120, 90, 40, AllEdges(Torn))
	band := float64(b.Band)
	for _, pt := range Outline(b).Coords {
		if pt.X < -band || pt.X > 120+band || pt.Y < -band || pt.Y > 90+band {
			t.Errorf("point %v outside", pt)
		}
		if pt.X > band && pt.X < 120-band && pt.Y > band && pt.Y < 90-band {
			t.Errorf("point %v in the interior", pt)
		}
	}
}
