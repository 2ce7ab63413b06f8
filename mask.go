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
	"fmt"
	"image"
)

// ApplyEdgeMask clears the alpha channel of every pixel outside b.
//
// pix holds b.Width×b.Height pixels with four 8-bit channels each, alpha
// last, in row-major order.  Consecutive rows start stride bytes apart.
// Colour channels are not modified.
//
// ApplyEdgeMask panics if pix is too short for the given dimensions.
func ApplyEdgeMask(pix []uint8, stride int, b *Bounds) {
	w, h := b.Width, b.Height
	if w == 0 || h == 0 {
		return
	}
	if stride < 4*w || len(pix) < (h-1)*stride+4*w {
		panic(fmt.Sprintf("papercrop: pixel buffer too small for %dx%d", w, h))
	}

	for y := range h {
		l, r := b.Left[y], b.Right[y]
		fy := float64(y)
		row := pix[y*stride : y*stride+4*w]
		for x := range w {
			fx := float64(x)
			inside := fy >= b.Top[x] && fy <= b.Bottom[x] && fx >= l && fx <= r
			if !inside {
				row[4*x+3] = 0
			}
		}
	}
}

// MaskImage applies [ApplyEdgeMask] to img.  The image must have the same
// size as the bounds.
func MaskImage(img *image.NRGBA, b *Bounds) {
	size := img.Rect.Size()
	if size.X != b.Width || size.Y != b.Height {
		panic(fmt.Sprintf("papercrop: image is %dx%d, bounds are %dx%d",
			size.X, size.Y, b.Width, b.Height))
	}
	ApplyEdgeMask(img.Pix, img.Stride, b)
}
