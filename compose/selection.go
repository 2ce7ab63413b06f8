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
	"fmt"
	"image"
)

// MinSelection is the smallest crop width and height accepted by [Crop].
const MinSelection = 2

// ValidSelection reports whether r is at least minSize pixels wide and
// high.  A non-positive minSize is replaced by [MinSelection].
func ValidSelection(r image.Rectangle, minSize int) bool {
	if minSize <= 0 {
		minSize = MinSelection
	}
	return r.Dx() >= minSize && r.Dy() >= minSize
}

// SelectionText describes the size of r in the form "W×Hpx".
// The empty string is returned for an empty rectangle.
func SelectionText(r image.Rectangle) string {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	if w == 0 && h == 0 {
		return ""
	}
	return fmt.Sprintf("%d×%dpx", w, h)
}

// Hint says what a user needs to do next before a crop can be made.
type Hint int

// These are the possible hints.
const (
	HintNoImage Hint = iota
	HintNeedSelection
	HintSelectionTooSmall
	HintReady
)

func (h Hint) String() string {
	switch h {
	case HintNoImage:
		return "no image loaded"
	case HintNeedSelection:
		return "select a region"
	case HintSelectionTooSmall:
		return "selection too small"
	case HintReady:
		return "ready"
	default:
		return fmt.Sprintf("Hint(%d)", int(h))
	}
}

// SelectionHint returns the hint for the given state.  A nil sel means
// that nothing has been selected yet.
func SelectionHint(hasImage bool, sel *image.Rectangle, minSize int) Hint {
	switch {
	case !hasImage:
		return HintNoImage
	case sel == nil:
		return HintNeedSelection
	case !ValidSelection(sel.Canon(), minSize):
		return HintSelectionTooSmall
	default:
		return HintReady
	}
}
