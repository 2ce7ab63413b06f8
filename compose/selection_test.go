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
	"testing"
)

func TestValidSelection(t *testing.T) {
	cases := []struct {
		r       image.Rectangle
		minSize int
		want    bool
	}{
		{image.Rectangle{}, 2, false},
		{image.Rect(0, 0, 1, 3), 2, false},
		{image.Rect(0, 0, 2, 2), 2, true},
		{image.Rect(5, 5, 6, 6), 0, false},
		{image.Rect(5, 5, 7, 7), 0, true},
		{image.Rect(0, 0, 9, 9), 10, false},
	}
	for _, c := range cases {
		if got := ValidSelection(c.r, c.minSize); got != c.want {
			t.Errorf("ValidSelection(%v, %d) = %t", c.r, c.minSize, got)
		}
	}
}

func TestSelectionText(t *testing.T) {
	cases := []struct {
		r    image.Rectangle
		want string
	}{
		{image.Rectangle{}, ""},
		{image.Rect(0, 0, 20, 11), "20×11px"},
		{image.Rect(10, 10, 10, 4), "0×6px"},
	}
	for _, c := range cases {
		if got := SelectionText(c.r); got != c.want {
			t.Errorf("SelectionText(%v) = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestSelectionHint(t *testing.T) {
	small := image.Rect(0, 0, 1, 5)
	ok := image.Rect(0, 0, 5, 5)
	cases := []struct {
		hasImage bool
		sel      *image.Rectangle
		want     Hint
	}{
		{false, nil, HintNoImage},
		{true, nil, HintNeedSelection},
		{true, &small, HintSelectionTooSmall},
		{true, &ok, HintReady},
	}
	for _, c := range cases {
		if got := SelectionHint(c.hasImage, c.sel, 2); got != c.want {
			t.Errorf("SelectionHint(%t, %v) = %s, want %s", c.hasImage, c.sel, got, c.want)
		}
	}
}
