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

import "math"

// Uniform is a stream of uniformly distributed values in [0, 1).
// Both *Source and *math/rand/v2.Rand implement this interface.
type Uniform interface {
	Float64() float64
}

// Source is a small deterministic pseudo-random generator.
//
// The output only depends on the seed, and all arithmetic is done in
// unsigned 32-bit integers, so a given seed produces the same sequence
// on every platform.  The generator has no cryptographic strength.
//
// A Source is not safe for concurrent use.
type Source struct {
	state uint32
}

// NewSource returns a Source which is fully determined by seed.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Uint32 advances the generator and returns the next 32-bit output.
func (s *Source) Uint32() uint32 {
	s.state += 0x6D2B79F5

	t := s.state
	r := (t ^ (t >> 15)) * (1 | t)
	r ^= r + (r^(r>>7))*(61|r)
	return r ^ (r >> 14)
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// Gaussian returns an approximately standard normal value, computed from two
// uniform draws using the Box-Muller transform.  Draws equal to zero are
// discarded, so that the logarithm stays finite.
func Gaussian(rnd Uniform) float64 {
	u := 0.0
	for u == 0 {
		u = rnd.Float64()
	}
	v := 0.0
	for v == 0 {
		v = rnd.Float64()
	}
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}
