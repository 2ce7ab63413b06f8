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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"seehuhn.de/go/papercrop"
)

// edgeFlags are the flags shared by all commands which build a boundary.
type edgeFlags struct {
	configFile string
	roughness  float64
	edges      string
	sides      [4]string // indexed by papercrop.Side
}

func (f *edgeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configFile, "config", "c", "", "read settings from a TOML file")
	fs.Float64VarP(&f.roughness, "roughness", "r", defaultRoughness, "tear roughness")
	fs.StringVar(&f.edges, "edges", "torn", "mode of all edges: torn or straight")
	for s := papercrop.Top; s <= papercrop.Left; s++ {
		fs.StringVar(&f.sides[s], s.String(), "", "mode of the "+s.String()+" edge, overrides --edges")
	}
}

// resolve merges defaults, the config file and explicitly set flags, in
// this order.
func (f *edgeFlags) resolve(fs *pflag.FlagSet) (*config, error) {
	cfg := defaultConfig()
	if f.configFile != "" {
		var err error
		cfg, err = loadConfig(f.configFile)
		if err != nil {
			return nil, err
		}
	}

	if fs.Changed("roughness") {
		cfg.Roughness = f.roughness
	}
	if fs.Changed("edges") {
		m, err := papercrop.ParseEdgeMode(f.edges)
		if err != nil {
			return nil, err
		}
		cfg.Edges = papercrop.AllEdges(m)
	}
	for s := papercrop.Top; s <= papercrop.Left; s++ {
		if !fs.Changed(s.String()) {
			continue
		}
		m, err := papercrop.ParseEdgeMode(f.sides[s])
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", s, err)
		}
		switch s {
		case papercrop.Top:
			cfg.Edges.Top = m
		case papercrop.Right:
			cfg.Edges.Right = m
		case papercrop.Bottom:
			cfg.Edges.Bottom = m
		case papercrop.Left:
			cfg.Edges.Left = m
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseSize parses a size given as "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	return w, h, nil
}
