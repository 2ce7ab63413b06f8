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

// Package compose cuts a rectangle out of an image and gives it torn
// edges, an optional drop shadow and an optional outline.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/papercrop"
	"seehuhn.de/go/papercrop/raster"
)

// ErrSelectionTooSmall is returned by [Crop] if the selected rectangle,
// clipped to the source image, is smaller than [MinSelection] pixels in
// either direction.
var ErrSelectionTooSmall = errors.New("selection too small")

// Outline describes the line drawn along the torn boundary.
type Outline struct {
	Color color.NRGBA
	Width float64
}

// DefaultOutline is a thin, slightly transparent black line.
var DefaultOutline = Outline{
	Color: color.NRGBA{A: 179},
	Width: 1.5,
}

// outlineInset is the margin reserved around the crop for the outline.
const outlineInset = 2

// Options control the appearance of a crop.
type Options struct {
	// Roughness scales the displacement of torn edges.
	Roughness float64

	// Edges selects straight or torn for every side.
	Edges papercrop.EdgeModes

	// Shadow, if not nil, adds a drop shadow.
	Shadow *Shadow

	// Outline, if not nil, strokes the boundary.
	Outline *Outline
}

// Insets is the margin around the crop inside the output image.
type Insets struct {
	Left, Right, Top, Bottom int
}

// ComputeInsets returns the margin needed to show the shadow and the
// outline of opt without clipping.
func ComputeInsets(opt *Options) Insets {
	var in Insets
	if opt.Outline != nil {
		in = Insets{outlineInset, outlineInset, outlineInset, outlineInset}
	}
	if s := opt.Shadow; s != nil {
		spread := s.spread()
		in.Left = max(in.Left, spread+max(0, -s.OffsetX))
		in.Right = max(in.Right, spread+max(0, s.OffsetX))
		in.Top = max(in.Top, spread+max(0, -s.OffsetY))
		in.Bottom = max(in.Bottom, spread+max(0, s.OffsetY))
	}
	return in
}

// Result is the outcome of [Crop].
type Result struct {
	// Image is the composed output, including margins.
	Image *image.NRGBA

	// Origin is the position of the crop's top-left corner in Image.
	Origin image.Point

	// Bounds is the torn boundary, in crop coordinates.
	Bounds *papercrop.Bounds
}

// Crop cuts sel out of src and applies the torn edges, shadow and outline
// described by opt.  The selection is clipped to the source image first.
func Crop(src image.Image, sel image.Rectangle, opt *Options) (*Result, error) {
	sel = sel.Canon().Intersect(src.Bounds())
	if !ValidSelection(sel, MinSelection) {
		return nil, fmt.Errorf("%w: %s", ErrSelectionTooSmall, SelectionText(sel))
	}
	if err := opt.Edges.Validate(); err != nil {
		return nil, err
	}
	if !(opt.Roughness >= 0) || math.IsInf(opt.Roughness, 1) {
		return nil, fmt.Errorf("invalid roughness %g", opt.Roughness)
	}
	w, h := sel.Dx(), sel.Dy()

	masked := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(masked, image.Point{}, src, sel, draw.Src, nil)

	bounds := papercrop.BuildEdgeBounds(w, h, opt.Roughness, opt.Edges)
	papercrop.MaskImage(masked, bounds)

	in := ComputeInsets(opt)
	out := image.NewNRGBA(image.Rect(0, 0, w+in.Left+in.Right, h+in.Top+in.Bottom))
	origin := image.Pt(in.Left, in.Top)

	if opt.Shadow != nil {
		drawShadow(out, masked, origin, opt.Shadow)
	}
	draw.Draw(out, masked.Rect.Add(origin), masked, image.Point{}, draw.Over)
	if opt.Outline != nil {
		drawOutline(out, papercrop.Outline(bounds), origin, opt.Outline)
	}

	papercrop.Logger().Debug("crop composed",
		"selection", sel, "output", out.Rect.Size(), "origin", origin)

	return &Result{Image: out, Origin: origin, Bounds: bounds}, nil
}

// drawOutline strokes outline, given in crop coordinates, onto dst.
func drawOutline(dst *image.NRGBA, outline *path.Data, origin image.Point, o *Outline) {
	b := dst.Rect
	r := raster.NewRasteriser(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	r.CTM[4] = float64(origin.X)
	r.CTM[5] = float64(origin.Y)
	r.Width = o.Width
	r.Join = graphics.LineJoinRound
	r.Cap = graphics.LineCapRound

	cov := image.NewAlpha(b)
	r.Stroke(outline, CoverageTo(cov))
	draw.DrawMask(dst, b, image.NewUniform(o.Color), image.Point{}, cov, b.Min, draw.Over)
}

// CoverageTo returns an emit function which stores coverage values in
// dst, scaled to 0-255.
func CoverageTo(dst *image.Alpha) raster.EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(min(255, int(c*255+0.5)))
		}
	}
}
