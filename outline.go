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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the closed boundary of b as a polygon in crop
// coordinates.
//
// The path starts at the top-left corner point and runs clockwise on screen:
// along Top to the top-right corner, down Right, back along Bottom and up
// Left.  Every curve is sampled at integer positions between the two
// resolved corners, so the outline follows the alpha mask of [ApplyEdgeMask]
// without wedges at the corners.
func Outline(b *Bounds) *path.Data {
	c := FindCornerIntersections(b)
	w, h := b.Width, b.Height

	topStart := max(0, int(math.Ceil(c.TL.X)))
	topEnd := min(w, int(math.Floor(c.TR.X)))
	rightStart := max(0, int(math.Ceil(c.TR.Y)))
	rightEnd := min(h, int(math.Floor(c.BR.Y)))
	bottomStart := min(w, int(math.Floor(c.BR.X)))
	bottomEnd := max(0, int(math.Ceil(c.BL.X)))
	leftStart := min(h, int(math.Floor(c.BL.Y)))
	leftEnd := max(0, int(math.Ceil(c.TL.Y)))

	p := (&path.Data{}).MoveTo(c.TL)
	for x := topStart; x <= topEnd; x++ {
		p = p.LineTo(vec.Vec2{X: float64(x), Y: Sample(b.Top, x)})
	}
	p = p.LineTo(c.TR)
	for y := rightStart; y <= rightEnd; y++ {
		p = p.LineTo(vec.Vec2{X: Sample(b.Right, y), Y: float64(y)})
	}
	p = p.LineTo(c.BR)
	for x := bottomStart; x >= bottomEnd; x-- {
		p = p.LineTo(vec.Vec2{X: float64(x), Y: Sample(b.Bottom, x)})
	}
	p = p.LineTo(c.BL)
	for y := leftStart; y >= leftEnd; y-- {
		p = p.LineTo(vec.Vec2{X: Sample(b.Left, y), Y: float64(y)})
	}
	return p.Close()
}
