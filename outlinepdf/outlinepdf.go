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

// Package outlinepdf writes the torn outline of a crop as a vector PDF.
//
// The page has the size of the crop, one PDF unit per pixel, and contains
// a single stroked path.  This is useful for cutting plotters and for
// checking the boundary at high magnification.
package outlinepdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/papercrop"
)

// Style selects how the outline is drawn.
type Style struct {
	// Width is the line width in pixels.
	Width float64

	// Gray is the stroke colour, from 0 (black) to 1 (white).
	Gray float64

	// Background, if set, fills the page with white below the outline.
	Background bool
}

// DefaultStyle matches the outline drawn by the compose package on a white
// background.
var DefaultStyle = Style{
	Width: 1.5,
	Gray:  0.3,
}

// WriteFile writes the outline of b to a one-page PDF file.
func WriteFile(fname string, b *papercrop.Bounds, style *Style) error {
	if style == nil {
		style = &DefaultStyle
	}

	paper := &pdf.Rectangle{
		URx: float64(b.Width),
		URy: float64(b.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if style.Background {
		page.SetFillColor(color.DeviceGray(1))
		page.Rectangle(0, 0, float64(b.Width), float64(b.Height))
		page.Fill()
	}

	// PDF origin is bottom-left, crop coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(b.Height)})

	page.SetStrokeColor(color.DeviceGray(style.Gray))
	page.SetLineWidth(style.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	outline := papercrop.Outline(b)
	k := 0
	for _, cmd := range outline.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := outline.Coords[k]
			page.MoveTo(p.X, p.Y)
			k++
		case path.CmdLineTo:
			p := outline.Coords[k]
			page.LineTo(p.X, p.Y)
			k++
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	papercrop.Logger().Debug("outline written", "file", fname, "points", k)

	return page.Close()
}
