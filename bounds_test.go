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
	"math"
	"slices"
	"testing"
)

func TestBuildEdgeBoundsValues(t *testing.T) {
	b := BuildEdgeBounds(96, 72, 16, AllEdges(Torn))
	if b.Band != 24 {
		t.Errorf("band = %d, want 24", b.Band)
	}

	check := func(name string, got, want []float64) {
		t.Helper()
		for i, w := range want {
			if math.Abs(got[i]-w) > 1e-9 {
				t.Errorf("%s[%d] = %.16g, want %.16g", name, i, got[i], w)
			}
		}
	}
	check("Top", b.Top, []float64{6, 6.811425860878247, 4.426787304527953, 2.7174188157717967, 4.287216858769829})
	check("Left", b.Left, []float64{6, 2.6689159887073157, 2.132228068521738, 4.276155691515271, 7.211038116841422})
	check("Right", b.Right, []float64{91.2, 89.8598384825986, 91.04323862084807})
}

func TestBuildEdgeBoundsStraight(t *testing.T) {
	b := BuildEdgeBounds(24, 18, 8, AllEdges(Straight))
	if len(b.Top) != 25 || len(b.Bottom) != 25 || len(b.Left) != 19 || len(b.Right) != 19 {
		t.Fatal("wrong curve lengths")
	}
	for x := range b.Top {
		if b.Top[x] != 0 || b.Bottom[x] != 18 {
			t.Errorf("column %d: %g..%g", x, b.Top[x], b.Bottom[x])
		}
	}
	for y := range b.Left {
		if b.Left[y] != 0 || b.Right[y] != 24 {
			t.Errorf("row %d: %g..%g", y, b.Left[y], b.Right[y])
		}
	}
}

func TestBuildEdgeBoundsSmoothTear(t *testing.T) {
	// Without roughness, torn sides sit at their base offset in the band.
	b := BuildEdgeBounds(128, 96, 0, AllEdges(Torn))
	if b.Band != 32 {
		t.Fatalf("band = %d, want 32", b.Band)
	}
	if b.Top[10] != 8 || b.Left[10] != 8 {
		t.Errorf("near sides at %g, %g, want 8", b.Top[10], b.Left[10])
	}
	if math.Abs(b.Bottom[10]-89.6) > 1e-9 || math.Abs(b.Right[10]-121.6) > 1e-9 {
		t.Errorf("far sides at %g, %g, want 89.6, 121.6", b.Bottom[10], b.Right[10])
	}
}

func TestBuildEdgeBoundsDeterministic(t *testing.T) {
	modes := EdgeModes{Top: Torn, Right: Straight, Bottom: Torn, Left: Torn}
	a := BuildEdgeBounds(150, 110, 20, modes)
	b := BuildEdgeBounds(150, 110, 20, modes)
	if !slices.Equal(a.Top, b.Top) || !slices.Equal(a.Bottom, b.Bottom) ||
		!slices.Equal(a.Left, b.Left) || !slices.Equal(a.Right, b.Right) {
		t.Error("bounds differ between calls")
	}
}

func TestBuildEdgeBoundsNonCrossing(t *testing.T) {
	sizes := [][2]int{{3, 3}, {10, 10}, {50, 30}, {30, 50}, {200, 100}, {300, 300}, {1000, 40}}
	for _, size := range sizes {
		for _, rough := range []float64{0, 1, 4, 8, 16, 32, 64, 128, 1000} {
			w, h := size[0], size[1]
			b := BuildEdgeBounds(w, h, rough, AllEdges(Torn))
			for x := 0; x <= w; x++ {
				if b.Top[x] > b.Bottom[x] {
					t.Fatalf("%dx%d r=%g: column %d crossed", w, h, rough, x)
				}
				if b.Top[x] < 0 || b.Bottom[x] > float64(h) {
					t.Fatalf("%dx%d r=%g: column %d outside", w, h, rough, x)
				}
			}
			for y := 0; y <= h; y++ {
				if b.Left[y] > b.Right[y] {
					t.Fatalf("%dx%d r=%g: row %d crossed", w, h, rough, y)
				}
				if b.Left[y] < 0 || b.Right[y] > float64(w) {
					t.Fatalf("%dx%d r=%g: row %d outside", w, h, rough, y)
				}
			}
		}
	}
}

func TestBuildEdgeBoundsEmpty(t *testing.T) {
	b := BuildEdgeBounds(0, 0, 8, AllEdges(Torn))
	if len(b.Top) != 1 || len(b.Left) != 1 || b.Band != 0 {
		t.Errorf("unexpected bounds %+v", b)
	}
	if b.Top[0] != 0 || b.Bottom[0] != 0 || b.Left[0] != 0 || b.Right[0] != 0 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestTearBand(t *testing.T) {
	cases := []struct{ w, h, want int }{
		{0, 0, 0}, {2, 100, 0}, {3, 100, 1}, {96, 72, 24}, {180, 500, 60}, {1000, 1000, 60},
	}
	for _, c := range cases {
		if got := TearBand(c.w, c.h); got != c.want {
			t.Errorf("TearBand(%d, %d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestBuildEdgeBoundsPanics(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		rough float64
		modes EdgeModes
	}{
		{"negative width", -1, 10, 1, AllEdges(Torn)},
		{"negative roughness", 10, 10, -1, AllEdges(Torn)},
		{"NaN roughness", 10, 10, math.NaN(), AllEdges(Torn)},
		{"infinite roughness", 10, 10, math.Inf(1), AllEdges(Torn)},
		{"invalid mode", 10, 10, 1, EdgeModes{Left: EdgeMode(7)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			BuildEdgeBounds(c.w, c.h, c.rough, c.modes)
		})
	}
}

func TestEdgeModeText(t *testing.T) {
	for _, m := range []EdgeMode{Straight, Torn} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back EdgeMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%s: got %s, %v", m, back, err)
		}
	}

	var m EdgeMode
	if err := m.UnmarshalText([]byte("ragged")); !errors.Is(err, ErrEdgeMode) {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := EdgeMode(2).MarshalText(); !errors.Is(err, ErrEdgeMode) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEdgeModesValidate(t *testing.T) {
	if err := AllEdges(Torn).Validate(); err != nil {
		t.Error(err)
	}
	err := EdgeModes{Bottom: EdgeMode(-1)}.Validate()
	if !errors.Is(err, ErrEdgeMode) {
		t.Errorf("unexpected error %v", err)
	}
}
