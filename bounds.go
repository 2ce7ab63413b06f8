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
	"errors"
	"fmt"
	"math"
)

// EdgeMode selects the shape of one side of the crop rectangle.
type EdgeMode int

// These are the supported edge modes.
const (
	Straight EdgeMode = iota
	Torn
)

// ErrEdgeMode is returned when parsing an unknown edge mode name.
var ErrEdgeMode = errors.New("invalid edge mode")

func (m EdgeMode) String() string {
	switch m {
	case Straight:
		return "straight"
	case Torn:
		return "torn"
	default:
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}
}

// ParseEdgeMode converts "straight" or "torn" into an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "straight":
		return Straight, nil
	case "torn":
		return Torn, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrEdgeMode, s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m EdgeMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w %d", ErrEdgeMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *EdgeMode) UnmarshalText(text []byte) error {
	mode, err := ParseEdgeMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m EdgeMode) valid() bool {
	return m == Straight || m == Torn
}

// Side identifies one side of the crop rectangle.
type Side int

// The four sides, in the order used for seed offsets.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// EdgeModes holds the mode of every side.  The zero value has four
// straight edges.
type EdgeModes struct {
	Top    EdgeMode `toml:"top" json:"top"`
	Right  EdgeMode `toml:"right" json:"right"`
	Bottom EdgeMode `toml:"bottom" json:"bottom"`
	Left   EdgeMode `toml:"left" json:"left"`
}

// AllEdges returns an EdgeModes value with every side set to m.
func AllEdges(m EdgeMode) EdgeModes {
	return EdgeModes{Top: m, Right: m, Bottom: m, Left: m}
}

// Get returns the mode of side s.
func (e EdgeModes) Get(s Side) EdgeMode {
	switch s {
	case Top:
		return e.Top
	case Right:
		return e.Right
	case Bottom:
		return e.Bottom
	case Left:
		return e.Left
	default:
		panic(fmt.Sprintf("papercrop: invalid side %d", int(s)))
	}
}

// Validate checks that every side has a known mode.
func (e EdgeModes) Validate() error {
	for s := Top; s <= Left; s++ {
		if m := e.Get(s); !m.valid() {
			return fmt.Errorf("%s edge: %w %d", s, ErrEdgeMode, int(m))
		}
	}
	return nil
}

// BaseSeed is the seed shared by all crops.  Side s uses BaseSeed+1+s,
// so that no two sides share a noise sequence.
const BaseSeed uint32 = 12345

// MaxTearBand is the largest tear band thickness, in pixels.
const MaxTearBand = 60

// Offsets of the undisplaced boundary into the tear band, as a fraction of
// the band thickness.  Top and left use nearTearBase, bottom and right use
// farTearBase.
const (
	nearTearBase = 0.25
	farTearBase  = 0.80
)

// Bounds describes the visible region of a torn crop.
//
// For every column x in 0..Width, pixels with Top[x] <= y <= Bottom[x] are
// inside in the vertical direction.  For every row y in 0..Height, pixels
// with Left[y] <= x <= Right[y] are inside in the horizontal direction.
// A pixel is visible if both conditions hold.
type Bounds struct {
	Width, Height int

	Top    []float64 // Width+1 entries
	Bottom []float64 // Width+1 entries
	Left   []float64 // Height+1 entries
	Right  []float64 // Height+1 entries

	// Band is the tear band thickness used to construct the bounds.
	Band int
}

// TearBand returns the tear band thickness for a width×height rectangle.
// No boundary moves further than this into the rectangle.
func TearBand(width, height int) int {
	return min(MaxTearBand, min(width, height)/3)
}

// BuildEdgeBounds computes the boundary curves of a width×height crop.
//
// Torn sides follow a [Profile] inside the tear band, straight sides stay on
// the rectangle edge.  The boundaries never cross: Top[x] <= Bottom[x] and
// Left[y] <= Right[y] hold for every roughness, since the tear band is at
// most a third of the shorter side.  The result is a deterministic function
// of the arguments.
//
// BuildEdgeBounds panics if a dimension is negative, if roughness is
// negative or not a number, or if modes contains an invalid mode.
func BuildEdgeBounds(width, height int, roughness float64, modes EdgeModes) *Bounds {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("papercrop: invalid crop size %dx%d", width, height))
	}
	if !(roughness >= 0) || math.IsInf(roughness, 1) {
		panic(fmt.Sprintf("papercrop: invalid roughness %g", roughness))
	}
	if err := modes.Validate(); err != nil {
		panic("papercrop: " + err.Error())
	}

	band := TearBand(width, height)
	t := float64(band)

	profile := func(s Side, length int, a Anisotropy) []float64 {
		if modes.Get(s) != Torn {
			return nil
		}
		return Profile(length, roughness, a, BaseSeed+1+uint32(s))
	}
	topProf := profile(Top, width, PerpendicularToFiber)
	rightProf := profile(Right, height, ParallelToFiber)
	bottomProf := profile(Bottom, width, PerpendicularToFiber)
	leftProf := profile(Left, height, ParallelToFiber)

	b := &Bounds{
		Width:  width,
		Height: height,
		Top:    make([]float64, width+1),
		Bottom: make([]float64, width+1),
		Left:   make([]float64, height+1),
		Right:  make([]float64, height+1),
		Band:   band,
	}

	w, h := float64(width), float64(height)
	for x := range b.Top {
		if topProf != nil {
			b.Top[x] = clamp(nearTearBase*t+topProf[x], 0, t)
		}
		b.Bottom[x] = h
		if bottomProf != nil {
			b.Bottom[x] = h - (t - clamp(farTearBase*t+bottomProf[x], 0, t))
		}
	}
	for y := range b.Left {
		if leftProf != nil {
			b.Left[y] = clamp(nearTearBase*t+leftProf[y], 0, t)
		}
		b.Right[y] = w
		if rightProf != nil {
			b.Right[y] = w - (t - clamp(farTearBase*t+rightProf[y], 0, t))
		}
	}

	Logger().Debug("edge bounds built",
		"width", width, "height", height,
		"roughness", roughness, "band", band,
		"top", modes.Top, "right", modes.Right,
		"bottom", modes.Bottom, "left", modes.Left)

	return b
}

// Inside reports whether pixel (x, y) is visible.  The pixel must lie
// inside the crop rectangle.
func (b *Bounds) Inside(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fy >= b.Top[x] && fy <= b.Bottom[x] &&
		fx >= b.Left[y] && fx <= b.Right[y]
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
