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

// Package cli implements the papercrop command-line interface.
//
// # Commands
//
//   - crop: cut a rectangle out of an image and give it torn edges
//   - outline: write the torn outline of a crop as a PDF file
//   - bounds: print the boundary curves of a crop as JSON
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the debug messages of the papercrop library.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/papercrop"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance which logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.  At debug level, the library
// messages are routed to the same logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		papercrop.SetLogger(slog.New(c.Logger))
	} else {
		papercrop.SetLogger(nil)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "papercrop",
		Short:        "Papercrop cuts images with torn paper edges",
		Long:         `Papercrop cuts a rectangle out of an image and replaces straight sides by irregular torn paper edges, optionally with a drop shadow and an outline.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.cropCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.boundsCommand())

	return root
}
