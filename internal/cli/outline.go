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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/papercrop"
	"seehuhn.de/go/papercrop/outlinepdf"
)

func (c *CLI) outlineCommand() *cobra.Command {
	var flags edgeFlags
	var size, output string
	var style = outlinepdf.DefaultStyle

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Write the torn outline of a crop as a PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}
			b := papercrop.BuildEdgeBounds(w, h, cfg.Roughness, cfg.Edges)
			if err := outlinepdf.WriteFile(output, b, &style); err != nil {
				return err
			}
			c.Logger.Info("Wrote " + output)
			return nil
		},
	}

	fs := cmd.Flags()
	flags.register(fs)
	fs.StringVar(&size, "size", "", "crop size as WxH")
	fs.StringVarP(&output, "output", "o", "outline.pdf", "output PDF file")
	fs.Float64Var(&style.Width, "width", style.Width, "line width")
	fs.BoolVar(&style.Background, "background", false, "paint a white page background")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// boundsJSON is the JSON form of a boundary, as printed by the bounds
// command.
type boundsJSON struct {
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Roughness float64             `json:"roughness"`
	Edges     papercrop.EdgeModes `json:"edges"`
	Band      int                 `json:"band"`
	Top       []float64           `json:"top"`
	Right     []float64           `json:"right"`
	Bottom    []float64           `json:"bottom"`
	Left      []float64           `json:"left"`
	Corners   [4][2]float64       `json:"corners"` // tl, tr, br, bl
}

func (c *CLI) boundsCommand() *cobra.Command {
	var flags edgeFlags
	var size string

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print the boundary curves of a crop as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}
			return writeBounds(cmd.OutOrStdout(), w, h, cfg)
		},
	}

	fs := cmd.Flags()
	flags.register(fs)
	fs.StringVar(&size, "size", "", "crop size as WxH")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func writeBounds(out io.Writer, w, h int, cfg *config) error {
	b := papercrop.BuildEdgeBounds(w, h, cfg.Roughness, cfg.Edges)
	c := papercrop.FindCornerIntersections(b)

	data := boundsJSON{
		Width:     w,
		Height:    h,
		Roughness: cfg.Roughness,
		Edges:     cfg.Edges,
		Band:      b.Band,
		Top:       b.Top,
		Right:     b.Right,
		Bottom:    b.Bottom,
		Left:      b.Left,
	}
	for i, p := range []vec.Vec2{c.TL, c.TR, c.BR, c.BL} {
		data.Corners[i] = [2]float64{p.X, p.Y}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode bounds: %w", err)
	}
	return nil
}
