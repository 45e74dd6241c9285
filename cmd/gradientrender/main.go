// seehuhn.de/go/gradient - gradient triangle rendering
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

// Command gradientrender renders a scene file of gradient triangles into a
// PNG or BMP image.
//
// Usage:
//
//	gradientrender [-v] [-o out.png] scene.toml
//
// Scene files use TOML or YAML syntax, chosen by the file name extension.
// The output format is chosen by the extension of the -o argument.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/scene"
)

func main() {
	out := flag.String("o", "out.png", "output file (.png or .bmp)")
	verbose := flag.Bool("v", false, "log rasterizer diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [-o out.png] scene.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gradient.SetLogger(logger)

	if err := run(flag.Arg(0), *out, logger); err != nil {
		logger.Error("rendering failed", "err", err)
		os.Exit(1)
	}
}

func run(scenePath, outPath string, logger *slog.Logger) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "path", scenePath,
		"width", s.Width, "height", s.Height, "format", s.Format,
		"vertices", len(s.Vertices), "triangles", len(s.Triangles))

	if !knownOutput(outPath) {
		return fmt.Errorf("%s: %w", outPath, errUnknownOutput)
	}

	img, err := s.Render()
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	err = encode(f, outPath, img)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Info("image written", "path", outPath)
	return nil
}

var errUnknownOutput = errors.New("unknown output format")

func knownOutput(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".bmp":
		return true
	}
	return false
}

func encode(w io.Writer, name string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errUnknownOutput
	}
}
