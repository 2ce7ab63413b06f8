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
	"math"
)

// Anisotropy describes how a tear behaves in one orientation relative to
// the paper fibre.
type Anisotropy struct {
	// Hurst is the Hurst exponent in (0, 1).  Lower values give rougher,
	// more jagged profiles.
	Hurst float64

	// Amplitude scales the initial displacement.
	Amplitude float64
}

// Tear characteristics of the two fibre orientations.
// Left and right edges run parallel to the fibre, top and bottom edges
// cross it.
var (
	ParallelToFiber      = Anisotropy{Hurst: 0.70, Amplitude: 0.85}
	PerpendicularToFiber = Anisotropy{Hurst: 0.62, Amplitude: 1.10}
)

// Profile returns a self-affine displacement curve with length+1 samples,
// built by random midpoint displacement.  The first and last sample are
// exactly 0.
//
// The initial standard deviation is roughness*a.Amplitude, and it shrinks
// by a factor 2^-a.Hurst with every bisection level.  The result only
// depends on the arguments.
func Profile(length int, roughness float64, a Anisotropy, seed uint32) []float64 {
	if length < 0 {
		panic(fmt.Sprintf("papercrop: negative profile length %d", length))
	}

	rnd := NewSource(seed)

	n := gridSize(length + 1)
	y := make([]float64, n)

	sigma := roughness * a.Amplitude
	decay := math.Pow(0.5, a.Hurst)
	for step := n - 1; step > 1; step /= 2 {
		half := step / 2
		for i := 0; i < n-1; i += step {
			avg := 0.5 * (y[i] + y[i+step])
			y[i+half] = avg + Gaussian(rnd)*sigma
		}
		sigma *= decay
	}

	return resample(y, length)
}

// gridSize returns the smallest value 2^k+1 (k >= 1) which is at least minLen.
func gridSize(minLen int) int {
	n := 2
	for n+1 < minLen {
		n <<= 1
	}
	return n + 1
}

// resample linearly interpolates y onto length+1 evenly spaced samples.
func resample(y []float64, length int) []float64 {
	last := len(y) - 1
	out := make([]float64, length+1)
	for x := range out {
		u := 0.0
		if length > 0 {
			u = float64(x) / float64(length)
		}
		pos := u * float64(last)
		i0 := int(math.Floor(pos))
		i1 := min(i0+1, last)
		frac := pos - float64(i0)
		out[x] = (1-frac)*y[i0] + frac*y[i1]
	}
	return out
}
