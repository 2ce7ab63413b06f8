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

package compose

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Shadow describes a drop shadow below the cropped image.
type Shadow struct {
	// Color is the shadow colour.  Its alpha sets the shadow opacity.
	Color color.NRGBA

	// Blur is the blur amount in pixels.  As for HTML canvas shadows, the
	// Gaussian standard deviation is Blur/2.
	Blur float64

	// OffsetX and OffsetY shift the shadow relative to the image.
	OffsetX, OffsetY int
}

// DefaultShadow is a soft black shadow, slightly below the image.
var DefaultShadow = Shadow{
	Color:   color.NRGBA{A: 115},
	Blur:    14,
	OffsetY: 6,
}

// spread returns how far the shadow reaches beyond the shifted image.
func (s *Shadow) spread() int {
	return int(math.Ceil(s.Blur * 2))
}

// drawShadow paints the shadow of img into dst.  The image itself will be
// placed with its top-left corner at origin.
func drawShadow(dst *image.NRGBA, img *image.NRGBA, origin image.Point, s *Shadow) {
	b := dst.Rect
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	alpha := make([]float32, w*h)
	shift := origin.Add(image.Pt(s.OffsetX, s.OffsetY)).Sub(b.Min)
	src := img.Rect
	for y := range src.Dy() {
		ty := y + shift.Y
		if ty < 0 || ty >= h {
			continue
		}
		for x := range src.Dx() {
			tx := x + shift.X
			if tx < 0 || tx >= w {
				continue
			}
			alpha[ty*w+tx] = float32(img.Pix[y*img.Stride+4*x+3]) / 255
		}
	}

	blurAlpha(alpha, w, h, s.Blur/2)

	mask := image.NewAlpha(b)
	for i, a := range alpha {
		mask.Pix[(i/w)*mask.Stride+i%w] = uint8(math.Round(float64(min(max(a, 0), 1)) * 255))
	}
	draw.DrawMask(dst, b, image.NewUniform(s.Color), image.Point{}, mask, b.Min, draw.Over)
}

// gaussianKernel returns a normalised 1D Gaussian kernel, covering three
// standard deviations on each side.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-x * x / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	for i := range kernel {
		kernel[i] = float32(float64(kernel[i]) / sum)
	}
	return kernel
}

// blurAlpha applies a separable Gaussian blur to a w×h buffer, in place.
// Values outside the buffer count as zero.
func blurAlpha(alpha []float32, w, h int, sigma float64) {
	kernel := gaussianKernel(sigma)
	if len(kernel) == 1 {
		return
	}
	half := len(kernel) / 2
	tmp := make([]float32, len(alpha))

	for y := range h {
		row := alpha[y*w : (y+1)*w]
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				if sx := x + k - half; sx >= 0 && sx < w {
					sum += row[sx] * kv
				}
			}
			tmp[y*w+x] = sum
		}
	}
	for y := range h {
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				if sy := y + k - half; sy >= 0 && sy < h {
					sum += tmp[sy*w+x] * kv
				}
			}
			alpha[y*w+x] = sum
		}
	}
}
