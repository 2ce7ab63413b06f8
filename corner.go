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

	"seehuhn.de/go/geom/vec"
)

// Corners holds the points where adjacent boundary curves meet.
type Corners struct {
	TL, TR, BR, BL vec.Vec2
}

// cornerSpan is the number of samples used to estimate the direction of a
// boundary curve near a corner.
const cornerSpan = 4

// parallelThreshold bounds |1 - slopeH*slopeV| below which two corner
// lines are treated as parallel.
const parallelThreshold = 1e-9

// FindCornerIntersections returns the meeting points of the four boundary
// curves.
//
// Near each corner, the horizontal curve (Top or Bottom) and the vertical
// curve (Left or Right) are replaced by straight lines through their end
// samples, and the intersection of these lines is used.  A straight side is
// an exact line, so next to a straight side the corner lies exactly on the
// neighbouring curve's end point.  If the lines are parallel, or if the
// intersection lies more than one tear band away from the rectangle corner,
// the point formed by the two curves' end values is used instead.
func FindCornerIntersections(b *Bounds) Corners {
	w, h := b.Width, b.Height
	return Corners{
		TL: b.corner(b.Top, b.Left, 0, 0, false, false),
		TR: b.corner(b.Top, b.Right, w, 0, true, false),
		BR: b.corner(b.Bottom, b.Right, w, h, true, true),
		BL: b.corner(b.Bottom, b.Left, 0, h, false, true),
	}
}

// corner resolves the corner at (x0, y0).  horiz gives y as a function of
// x, vert gives x as a function of y.  atEndX and atEndY select the end of
// the curves which touches the corner.
func (b *Bounds) corner(horiz, vert []float64, x0, y0 int, atEndX, atEndY bool) vec.Vec2 {
	a, slopeH := endLine(horiz, atEndX)
	c, slopeV := endLine(vert, atEndY)

	fallback := vec.Vec2{X: c, Y: a}

	// With u = x-x0 and v = y-y0, the lines are v = A + slopeH*u and
	// u = C + slopeV*v.
	det := 1 - slopeH*slopeV
	if math.Abs(det) < parallelThreshold {
		return fallback
	}
	A := a - float64(y0)
	C := c - float64(x0)
	u := (C + slopeV*A) / det
	v := A + slopeH*u

	limit := float64(b.Band)
	if math.IsNaN(u) || math.IsNaN(v) || math.Abs(u) > limit || math.Abs(v) > limit {
		return fallback
	}
	return vec.Vec2{X: float64(x0) + u, Y: float64(y0) + v}
}

// endLine returns the end value of curve, and the slope of the secant
// through the last few samples at that end.  The slope is taken in the
// direction of increasing position.
func endLine(curve []float64, atEnd bool) (value, slope float64) {
	n := len(curve) - 1
	k := min(cornerSpan, n)
	if atEnd {
		value = curve[n]
		if k > 0 {
			slope = (curve[n] - curve[n-k]) / float64(k)
		}
	} else {
		value = curve[0]
		if k > 0 {
			slope = (curve[k] - curve[0]) / float64(k)
		}
	}
	return value, slope
}

// Sample returns the value of curve at position pos.  Positions outside
// the curve are clamped to the nearest end.  An empty curve has value 0.
func Sample(curve []float64, pos int) float64 {
	if len(curve) == 0 {
		return 0
	}
	return curve[max(0, min(pos, len(curve)-1))]
}
