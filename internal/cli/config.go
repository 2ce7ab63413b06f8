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
	"image/color"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/papercrop"
	"seehuhn.de/go/papercrop/compose"
)

// defaultRoughness is used when neither a flag nor the config file sets
// the roughness.
const defaultRoughness = 12

// config is the content of a TOML configuration file.
//
//	roughness = 16
//
//	[edges]
//	top = "torn"
//	bottom = "torn"
//
//	[shadow]
//	enabled = true
//	blur = 14
//	offset_y = 6
//	opacity = 0.45
//
//	[outline]
//	enabled = true
//	width = 1.5
//	opacity = 0.7
type config struct {
	Roughness float64             `toml:"roughness"`
	Edges     papercrop.EdgeModes `toml:"edges"`
	Shadow    shadowConfig        `toml:"shadow"`
	Outline   outlineConfig       `toml:"outline"`
}

type shadowConfig struct {
	Enabled bool    `toml:"enabled"`
	Blur    float64 `toml:"blur"`
	OffsetX int     `toml:"offset_x"`
	OffsetY int     `toml:"offset_y"`
	Opacity float64 `toml:"opacity"`
}

type outlineConfig struct {
	Enabled bool    `toml:"enabled"`
	Width   float64 `toml:"width"`
	Opacity float64 `toml:"opacity"`
}

// defaultConfig returns the settings used without a configuration file:
// all edges torn, no shadow and no outline.
func defaultConfig() *config {
	return &config{
		Roughness: defaultRoughness,
		Edges:     papercrop.AllEdges(papercrop.Torn),
		Shadow: shadowConfig{
			Blur:    compose.DefaultShadow.Blur,
			OffsetX: compose.DefaultShadow.OffsetX,
			OffsetY: compose.DefaultShadow.OffsetY,
			Opacity: float64(compose.DefaultShadow.Color.A) / 255,
		},
		Outline: outlineConfig{
			Width:   compose.DefaultOutline.Width,
			Opacity: float64(compose.DefaultOutline.Color.A) / 255,
		},
	}
}

// loadConfig reads a configuration file.  Settings missing from the file
// keep their default values.
func loadConfig(fname string) (*config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	if !(cfg.Roughness >= 0) || math.IsInf(cfg.Roughness, 1) {
		return fmt.Errorf("invalid roughness %g", cfg.Roughness)
	}
	if err := cfg.Edges.Validate(); err != nil {
		return err
	}
	if cfg.Shadow.Blur < 0 {
		return fmt.Errorf("invalid shadow blur %g", cfg.Shadow.Blur)
	}
	if cfg.Outline.Width <= 0 {
		return fmt.Errorf("invalid outline width %g", cfg.Outline.Width)
	}
	for _, o := range []float64{cfg.Shadow.Opacity, cfg.Outline.Opacity} {
		if !(o >= 0 && o <= 1) {
			return fmt.Errorf("opacity %g outside [0, 1]", o)
		}
	}
	return nil
}

// options converts the configuration into crop options.
func (cfg *config) options() *compose.Options {
	opt := &compose.Options{
		Roughness: cfg.Roughness,
		Edges:     cfg.Edges,
	}
	if cfg.Shadow.Enabled {
		opt.Shadow = &compose.Shadow{
			Color:   color.NRGBA{A: opacityByte(cfg.Shadow.Opacity)},
			Blur:    cfg.Shadow.Blur,
			OffsetX: cfg.Shadow.OffsetX,
			OffsetY: cfg.Shadow.OffsetY,
		}
	}
	if cfg.Outline.Enabled {
		opt.Outline = &compose.Outline{
			Color: color.NRGBA{A: opacityByte(cfg.Outline.Opacity)},
			Width: cfg.Outline.Width,
		}
	}
	return opt
}

func opacityByte(o float64) uint8 {
	return uint8(math.Round(o * 255))
}
