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

package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference filenames.
var All = map[string][]TestCase{
	"straight":   straightCases,
	"torn":       tornCases,
	"mixed":      mixedCases,
	"degenerate": degenerateCases,
}

var straightCases = []TestCase{
	{Name: "small", Width: 24, Height: 18, Roughness: 8, Edges: straight},
	{Name: "square", Width: 64, Height: 64, Roughness: 30, Edges: straight},
}

var tornCases = []TestCase{
	{Name: "square", Width: 64, Height: 64, Roughness: 8, Edges: torn},
	{Name: "landscape", Width: 96, Height: 72, Roughness: 16, Edges: torn},
	{Name: "portrait", Width: 72, Height: 120, Roughness: 16, Edges: torn},
	{Name: "wide_band", Width: 400, Height: 300, Roughness: 24, Edges: torn},
	{Name: "very_rough", Width: 128, Height: 128, Roughness: 60, Edges: torn},
	{Name: "smooth", Width: 128, Height: 96, Roughness: 0, Edges: torn},
}

var mixedCases = []TestCase{
	{Name: "top_bottom", Width: 80, Height: 50, Roughness: 12, Edges: edges("tsts")},
	{Name: "left_right", Width: 80, Height: 50, Roughness: 12, Edges: edges("stst")},
	{Name: "top_only", Width: 90, Height: 60, Roughness: 16, Edges: edges("tsss")},
	{Name: "top_left", Width: 90, Height: 60, Roughness: 16, Edges: edges("tsst")},
	{Name: "bottom_right", Width: 90, Height: 60, Roughness: 16, Edges: edges("sttS")},
}

var degenerateCases = []TestCase{
	{Name: "empty", Width: 0, Height: 0, Roughness: 8, Edges: torn},
	{Name: "one_pixel", Width: 1, Height: 1, Roughness: 8, Edges: torn},
	{Name: "thin_row", Width: 100, Height: 2, Roughness: 20, Edges: torn},
	{Name: "thin_column", Width: 2, Height: 100, Roughness: 20, Edges: torn},
	{Name: "no_band", Width: 40, Height: 2, Roughness: 20, Edges: edges("tsss")},
}
