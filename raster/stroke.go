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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° CCW from T
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The stroke is assembled from one quadrilateral per segment, plus join and
// cap pieces.  All pieces are given the same orientation and are filled
// together with the nonzero rule, so that overlaps are painted once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenPath(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	d := r.Width / 2

	for i := range r.segsOffsets {
		segs := r.subpathSegments(i)
		closed := r.subpathClosed[i]

		for j := range segs {
			s := &segs[j]
			r.addPolygon(
				s.A.Add(s.N.Mul(d)),
				s.B.Add(s.N.Mul(d)),
				s.B.Sub(s.N.Mul(d)),
				s.A.Sub(s.N.Mul(d)),
			)
			if j > 0 {
				r.addJoin(s.A, segs[j-1].T, s.T, d)
			}
		}

		first, last := &segs[0], &segs[len(segs)-1]
		if closed {
			r.addJoin(first.A, last.T, first.T, d)
		} else {
			r.addCap(first.A, first.T.Mul(-1), d)
			r.addCap(last.B, last.T, d)
		}
	}

	r.startEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// flattenPath splits p into subpaths of non-degenerate line segments.
func (r *Rasteriser) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]

	var current, start vec.Vec2
	first := 0
	finish := func(closed bool) {
		if len(r.segs) > first {
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
		first = len(r.segs)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addStrokeSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addStrokeSegment(current, start)
			current = start
			finish(true)
		}
	}
	finish(false)
}

// addStrokeSegment appends the segment a→b, unless it has zero length.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// subpathSegments returns the segments of subpath i.
func (r *Rasteriser) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// addJoin adds the join piece at P, where the direction changes from T1 to
// T2.  d is half the stroke width.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	cosTheta := T1.Dot(T2)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	// The outer side of the corner is the side the path turns away from.
	side := 1.0
	if sinTheta > 0 {
		side = -1.0
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side * d)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side * d)

	switch r.Join {
	case graphics.LineJoinRound:
		r.addCircle(P, d)
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2), where
		// φ is the angle between the two segments.
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		bisector := N1.Add(N2)
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+1e-10 && bisector.Length() > zeroLengthThreshold {
			tip := P.Add(bisector.Mul(d / (sinHalf * bisector.Length())))
			r.addPolygon(P, P.Add(N1), tip, P.Add(N2))
			return
		}
		r.addPolygon(P, P.Add(N1), P.Add(N2))
	default:
		r.addPolygon(P, P.Add(N1), P.Add(N2))
	}
}

// addCap adds the cap piece at the open end P.  T points away from the
// line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := P.Add(T.Mul(d))
		r.addPolygon(P.Add(N), ext.Add(N), ext.Sub(N), P.Sub(N))
	}
}

// addCircle adds a polygon approximating the circle of the given radius
// around center, within the flatness tolerance.
func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.stroke)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r.stroke = append(r.stroke, vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	r.finishPolygon(start)
}

// addPolygon adds a stroke piece with the given vertices.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	start := len(r.stroke)
	r.stroke = append(r.stroke, pts...)
	r.finishPolygon(start)
}

// finishPolygon records the polygon starting at r.stroke[start] and brings
// it into positive orientation.  Polygons without area are dropped.
func (r *Rasteriser) finishPolygon(start int) {
	poly := r.stroke[start:]
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case area > 0:
	case area < 0:
		slices.Reverse(poly)
	default:
		r.stroke = r.stroke[:start]
		return
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}
