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

// Package papercrop generates irregular "torn paper" boundaries for
// rectangular image crops.
//
// Each side of a width×height rectangle is either straight or torn.  Torn
// sides follow a fractal displacement profile ([Profile]) generated by
// random midpoint displacement, with a rougher tear across the paper fibre
// (top and bottom) than along it (left and right).  [BuildEdgeBounds]
// combines the four sides into a [Bounds] value, which is then consumed
// twice:
//
//   - [ApplyEdgeMask] and [MaskImage] clear the alpha channel of all pixels
//     outside the boundary.
//   - [FindCornerIntersections] and [Outline] turn the same boundary into a
//     closed polygon, suitable for stroking an outline which matches the
//     mask.
//
// All functions are deterministic: the same arguments always give the same
// boundary.  The package keeps no state between calls, apart from the
// logger set with [SetLogger].
//
// Rendering of shadows and outlines lives in the compose and raster
// sub-packages.
package papercrop
