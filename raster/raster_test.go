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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// canvas collects coverage values in a w×h grid.
type canvas struct {
	w, h int
	pix  []float32
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]float32, w*h)}
}

func (c *canvas) emit(y, xMin int, coverage []float32) {
	copy(c.pix[y*c.w+xMin:], coverage)
}

func (c *canvas) at(x, y int) float32 {
	return c.pix[y*c.w+x]
}

func (c *canvas) clip() rect.Rect {
	return rect.Rect{URx: float64(c.w), URy: float64(c.h)}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestFillTriangleCoverage(t *testing.T) {
	c := newCanvas(12, 3)
	r := NewRasteriser(c.clip())
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 1)).Close()
	r.FillNonZero(p, c.emit)

	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := c.at(x, 0); math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("pixel %d: got %g, want %g", x, got, want)
		}
	}
	for x := range 12 {
		if got := c.at(x, 1); got != 0 {
			t.Errorf("pixel (%d,1): got %g", x, got)
		}
	}
}

func TestFillOrientation(t *testing.T) {
	// Both orientations give the same coverage under the nonzero rule.
	cw := (&path.Data{}).MoveTo(pt(2.5, 2)).LineTo(pt(8, 2)).LineTo(pt(8, 7.5)).LineTo(pt(2.5, 7.5)).Close()
	ccw := (&path.Data{}).MoveTo(pt(2.5, 2)).LineTo(pt(2.5, 7.5)).LineTo(pt(8, 7.5)).LineTo(pt(8, 2)).Close()

	a, b := newCanvas(10, 10), newCanvas(10, 10)
	NewRasteriser(a.clip()).FillNonZero(cw, a.emit)
	NewRasteriser(b.clip()).FillNonZero(ccw, b.emit)

	for i := range a.pix {
		if math.Abs(float64(a.pix[i]-b.pix[i])) > 1e-6 {
			t.Fatalf("pixel %d: %g != %g", i, a.pix[i], b.pix[i])
		}
	}
	if got := a.at(2, 4); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("left edge pixel: got %g, want 0.5", got)
	}
	if got := a.at(5, 5); got != 1 {
		t.Errorf("interior pixel: got %g, want 1", got)
	}
	if got := a.at(5, 7); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("bottom edge pixel: got %g, want 0.5", got)
	}
}

func TestFillOpenSubpath(t *testing.T) {
	c := newCanvas(10, 10)
	p := (&path.Data{}).MoveTo(pt(1, 1)).LineTo(pt(9, 1)).LineTo(pt(9, 9)).LineTo(pt(1, 9))
	NewRasteriser(c.clip()).FillNonZero(p, c.emit)
	if got := c.at(4, 4); got != 1 {
		t.Errorf("interior pixel: got %g", got)
	}
}

func TestFillClip(t *testing.T) {
	c := newCanvas(10, 10)
	p := (&path.Data{}).MoveTo(pt(-20, -20)).LineTo(pt(30, -20)).LineTo(pt(30, 30)).LineTo(pt(-20, 30)).Close()
	NewRasteriser(c.clip()).FillNonZero(p, c.emit)
	for i, v := range c.pix {
		if v != 1 {
			t.Fatalf("pixel %d: got %g", i, v)
		}
	}
}

func TestFillCTM(t *testing.T) {
	c := newCanvas(20, 20)
	r := NewRasteriser(c.clip())
	r.CTM[4] = 10
	r.CTM[5] = 5
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(4, 0)).LineTo(pt(4, 4)).LineTo(pt(0, 4)).Close()
	r.FillNonZero(p, c.emit)

	if got := c.at(12, 7); got != 1 {
		t.Errorf("translated interior: got %g", got)
	}
	if got := c.at(2, 2); got != 0 {
		t.Errorf("original position: got %g", got)
	}
}

func TestFillCurve(t *testing.T) {
	// A circle of radius 8 made of four cubic arcs.
	const k = 0.5522847498
	c := newCanvas(20, 20)
	p := (&path.Data{}).MoveTo(pt(18, 10))
	p.Cmds = append(p.Cmds, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose)
	p.Coords = append(p.Coords,
		pt(18, 10+8*k), pt(10+8*k, 18), pt(10, 18),
		pt(10-8*k, 18), pt(2, 10+8*k), pt(2, 10),
		pt(2, 10-8*k), pt(10-8*k, 2), pt(10, 2),
		pt(10+8*k, 2), pt(18, 10-8*k), pt(18, 10),
	)
	r := NewRasteriser(c.clip())
	r.Flatness = 0.01
	r.FillNonZero(p, c.emit)

	var total float64
	for _, v := range c.pix {
		total += float64(v)
	}
	if want := math.Pi * 64; math.Abs(total-want) > 1 {
		t.Errorf("area %g, want %g", total, want)
	}
}

func TestStrokeButtLine(t *testing.T) {
	c := newCanvas(64, 64)
	r := NewRasteriser(c.clip())
	r.Width = 8
	r.Cap = graphics.LineCapButt
	r.Stroke((&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32)), c.emit)

	for y := 28; y <= 35; y++ {
		for x := 10; x <= 53; x++ {
			if got := c.at(x, y); math.Abs(float64(got)-1) > 1e-5 {
				t.Fatalf("pixel (%d,%d): got %g, want 1", x, y, got)
			}
		}
	}
	for _, p := range [][2]int{{32, 27}, {32, 36}, {9, 30}, {54, 30}} {
		if got := c.at(p[0], p[1]); got > 1e-5 {
			t.Errorf("pixel %v: got %g, want 0", p, got)
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32))

	round := newCanvas(64, 64)
	r := NewRasteriser(round.clip())
	r.Width = 8
	r.Cap = graphics.LineCapRound
	r.Stroke(line, round.emit)
	if got := round.at(6, 32); got <= 0 || got >= 1 {
		t.Errorf("round cap edge: got %g", got)
	}
	if got := round.at(5, 32); got != 0 {
		t.Errorf("beyond round cap: got %g", got)
	}

	square := newCanvas(64, 64)
	r.Reset(square.clip())
	r.Width = 8
	r.Cap = graphics.LineCapSquare
	r.Stroke(line, square.emit)
	for _, x := range []int{6, 9, 54, 57} {
		if got := square.at(x, 30); math.Abs(float64(got)-1) > 1e-5 {
			t.Errorf("square cap pixel %d: got %g", x, got)
		}
	}
	if got := square.at(58, 30); got > 1e-5 {
		t.Errorf("beyond square cap: got %g", got)
	}
}

func TestStrokeJoins(t *testing.T) {
	square := (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(50, 10)).LineTo(pt(50, 50)).LineTo(pt(10, 50)).Close()

	cases := []struct {
		join     graphics.LineJoinStyle
		min, max float32
	}{
		{graphics.LineJoinMiter, 1 - 1e-5, 1},
		{graphics.LineJoinRound, 1e-3, 1 - 1e-3},
		{graphics.LineJoinBevel, 0, 1e-5},
	}
	for _, tc := range cases {
		c := newCanvas(64, 64)
		r := NewRasteriser(c.clip())
		r.Width = 4
		r.Join = tc.join
		r.Stroke(square, c.emit)

		// (8, 8) is the outer corner pixel at every corner of the square.
		for _, p := range [][2]int{{8, 8}, {51, 8}, {51, 51}, {8, 51}} {
			got := c.at(p[0], p[1])
			if got < tc.min || got > tc.max {
				t.Errorf("join %v, pixel %v: got %g, want [%g, %g]", tc.join, p, got, tc.min, tc.max)
			}
		}
		// the inside of the square stays empty
		if got := c.at(30, 30); got != 0 {
			t.Errorf("join %v: interior covered %g", tc.join, got)
		}
		// the line itself is fully covered
		if got := c.at(30, 9); math.Abs(float64(got)-1) > 1e-5 {
			t.Errorf("join %v: line pixel %g", tc.join, got)
		}
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// A sharp spike, whose miter exceeds the limit, falls back to bevel.
	spike := (&path.Data{}).MoveTo(pt(10, 40)).LineTo(pt(50, 36)).LineTo(pt(10, 32))
	c := newCanvas(80, 64)
	r := NewRasteriser(c.clip())
	r.Width = 4
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = 2
	r.Stroke(spike, c.emit)

	for x := 56; x < 80; x++ {
		if got := c.at(x, 36); got != 0 {
			t.Errorf("pixel (%d,36) covered %g", x, got)
		}
	}
}

func TestStrokeOverlapPaintedOnce(t *testing.T) {
	// A path which retraces itself still gives coverage at most 1.
	p := (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(40, 10)).LineTo(pt(10, 10))
	c := newCanvas(50, 20)
	r := NewRasteriser(c.clip())
	r.Width = 6
	r.Join = graphics.LineJoinRound
	r.Stroke(p, c.emit)
	for i, v := range c.pix {
		if v < 0 || v > 1 {
			t.Fatalf("pixel %d: coverage %g", i, v)
		}
	}
	if got := c.at(25, 10); got != 1 {
		t.Errorf("line pixel: got %g", got)
	}
}

func TestStrokeEmpty(t *testing.T) {
	c := newCanvas(10, 10)
	r := NewRasteriser(c.clip())
	r.Stroke(&path.Data{}, c.emit)
	r.Stroke((&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(5, 5)), c.emit)
	for i, v := range c.pix {
		if v != 0 {
			t.Fatalf("pixel %d: coverage %g", i, v)
		}
	}
}
