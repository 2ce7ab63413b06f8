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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/papercrop/compose"
	"seehuhn.de/go/papercrop/outlinepdf"
)

// cropOpts holds the command-line flags for the crop command.
type cropOpts struct {
	edgeFlags
	output  string // output image
	rect    string // selection as "x,y,w,h"
	shadow  bool   // add a drop shadow
	outline bool   // stroke the torn boundary
	pdf     string // optional vector outline
}

func (c *CLI) cropCommand() *cobra.Command {
	var opts cropOpts

	cmd := &cobra.Command{
		Use:   "crop [image]",
		Short: "Cut a rectangle out of an image, with torn edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("shadow") {
				cfg.Shadow.Enabled = opts.shadow
			}
			if cmd.Flags().Changed("outline") {
				cfg.Outline.Enabled = opts.outline
			}
			return c.runCrop(cmd.Context(), args[0], cfg, &opts)
		},
	}

	fs := cmd.Flags()
	opts.register(fs)
	fs.StringVarP(&opts.output, "output", "o", "paper-crop.png", "output image (png, tiff or bmp)")
	fs.StringVar(&opts.rect, "rect", "", "selection as x,y,w,h (default: whole image)")
	fs.BoolVar(&opts.shadow, "shadow", false, "add a drop shadow")
	fs.BoolVar(&opts.outline, "outline", false, "draw an outline along the edges")
	fs.StringVar(&opts.pdf, "pdf", "", "also write the outline to this PDF file")

	return cmd
}

func (c *CLI) runCrop(ctx context.Context, input string, cfg *config, opts *cropOpts) error {
	if _, err := outputFormat(opts.output); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	src, format, err := readImage(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("image loaded", "file", input, "format", format, "size", src.Bounds().Size())

	sel := src.Bounds()
	if opts.rect != "" {
		r, err := parseRect(opts.rect)
		if err != nil {
			return err
		}
		sel = r.Add(src.Bounds().Min)
	}
	c.Logger.Info("cropping", "selection", compose.SelectionText(sel))

	res, err := compose.Crop(src, sel, cfg.options())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeImage(opts.output, res.Image); err != nil {
		return err
	}
	if opts.pdf != "" {
		if err := outlinepdf.WriteFile(opts.pdf, res.Bounds, nil); err != nil {
			return fmt.Errorf("write outline: %w", err)
		}
	}
	prog.done("Wrote " + opts.output)
	return nil
}
