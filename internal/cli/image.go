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
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// errFormat is returned for output files with an unsupported extension.
var errFormat = errors.New("unsupported output format")

// readImage decodes an image in any of the registered formats.
func readImage(fname string) (image.Image, string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, "", err
	}
	defer fd.Close()

	img, format, err := image.Decode(bufio.NewReader(fd))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", fname, err)
	}
	return img, format, nil
}

// outputFormat returns the encoder name for fname, based on the file
// extension.  Only formats with an alpha channel are supported.
func outputFormat(fname string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return "png", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".bmp":
		return "bmp", nil
	default:
		return "", fmt.Errorf("%w %q", errFormat, ext)
	}
}

// writeImage encodes img into fname.
func writeImage(fname string, img image.Image) (err error) {
	format, err := outputFormat(fname)
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(fd)

	switch format {
	case "png":
		err = png.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

// parseRect parses a rectangle given as "x,y,w,h".  Negative sizes
// select towards the left or the top, as when dragging a selection.
func parseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid rectangle %q, want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		v[i] = n
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
