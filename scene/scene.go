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

// Package scene reads rendering jobs for the gradient rasterizer from TOML
// or YAML files.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/gradient"
)

// Scene describes one rendering job.
//
// Transform, if present, holds the six coefficients of an affine matrix
// which is applied to the vertex positions before rendering.
type Scene struct {
	Width      int       `toml:"width" yaml:"width"`
	Height     int       `toml:"height" yaml:"height"`
	Format     string    `toml:"format" yaml:"format"`
	Alpha      *uint8    `toml:"alpha" yaml:"alpha"`
	Background [3]uint8  `toml:"background" yaml:"background"`
	Erase      *bool     `toml:"erase" yaml:"erase"`
	Origin     []int     `toml:"origin" yaml:"origin"`
	Clip       []int     `toml:"clip" yaml:"clip"`
	Transform  []float64 `toml:"transform" yaml:"transform"`
	Vertices   []Vertex  `toml:"vertices" yaml:"vertices"`
	Triangles  [][3]int  `toml:"triangles" yaml:"triangles"`
}

// Vertex is a scene vertex. Colour channels use the range 0-65535.
type Vertex struct {
	X     int32     `toml:"x" yaml:"x"`
	Y     int32     `toml:"y" yaml:"y"`
	Color [3]uint16 `toml:"color" yaml:"color"`
}

// Kind identifies the syntax of a scene file.
type Kind int

const (
	TOML Kind = iota // TOML syntax, file extension .toml
	YAML             // YAML syntax, file extension .yaml or .yml
)

// Supported values for Scene.Format.
const (
	FormatBGRA32 = "bgra32"
	FormatBGR24  = "bgr24"
)

var (
	errUnknownKind = errors.New("unknown scene file type")
	errInvalid     = errors.New("invalid scene")
)

// KindOf returns the scene syntax implied by the file name extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, errUnknownKind)
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Decode(data, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses and validates a scene.
func Decode(data []byte, kind Kind) (*Scene, error) {
	s := &Scene{}
	switch kind {
	case TOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(s); err != nil {
			return nil, fmt.Errorf("failed to parse TOML scene: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse YAML scene: %w", err)
		}
	default:
		return nil, errUnknownKind
	}

	if s.Format == "" {
		s.Format = FormatBGRA32
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene for consistency.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", errInvalid, s.Width, s.Height)
	}
	if _, err := s.pixelFormat(); err != nil {
		return err
	}
	if s.Origin != nil && len(s.Origin) != 2 {
		return fmt.Errorf("%w: origin needs 2 values, got %d", errInvalid, len(s.Origin))
	}
	if s.Clip != nil && len(s.Clip) != 4 {
		return fmt.Errorf("%w: clip needs 4 values, got %d", errInvalid, len(s.Clip))
	}
	if s.Clip != nil && (s.Clip[0] > s.Clip[2] || s.Clip[1] > s.Clip[3]) {
		return fmt.Errorf("%w: clip %v is inverted", errInvalid, s.Clip)
	}
	if s.Transform != nil && len(s.Transform) != 6 {
		return fmt.Errorf("%w: transform needs 6 values, got %d", errInvalid, len(s.Transform))
	}
	if len(s.Vertices) < 2 {
		return fmt.Errorf("%w: need at least 2 vertices, got %d", errInvalid, len(s.Vertices))
	}
	if len(s.Triangles) == 0 {
		return fmt.Errorf("%w: no triangles", errInvalid)
	}
	for i, tri := range s.Triangles {
		for _, k := range tri {
			if k < 0 || k >= len(s.Vertices) {
				return fmt.Errorf("%w: triangle %d refers to vertex %d", errInvalid, i, k)
			}
		}
	}
	return nil
}

func (s *Scene) pixelFormat() (gradient.PixelFormat, error) {
	switch strings.ToLower(s.Format) {
	case FormatBGRA32, "":
		return gradient.Format32BPP, nil
	case FormatBGR24, "rgb24":
		return gradient.Format24BPP, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q", errInvalid, s.Format)
	}
}

// Render draws the scene into a new buffer and returns the result as an
// image.
func (s *Scene) Render() (*image.NRGBA, error) {
	f, err := s.pixelFormat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, s.Width*s.Height*f.BytesPerPixel())

	r := gradient.NewRasterizer()
	var ok bool
	switch f {
	case gradient.Format24BPP:
		bg := color.RGBA{R: s.Background[0], G: s.Background[1], B: s.Background[2], A: 255}
		ok = r.SetupContext24BPP(s.Width, s.Height, buf, bg)
	default:
		alpha := uint8(255)
		if s.Alpha != nil {
			alpha = *s.Alpha
		}
		ok = r.SetupContext32BPP(s.Width, s.Height, buf, alpha)
	}
	if !ok {
		return nil, fmt.Errorf("cannot bind %dx%d %s buffer", s.Width, s.Height, f)
	}

	if s.Erase == nil || *s.Erase {
		r.EraseBackground()
	}
	if s.Origin != nil {
		r.SetOrigin(image.Point{X: s.Origin[0], Y: s.Origin[1]})
	}
	if s.Clip != nil {
		c := image.Rectangle{
			Min: image.Point{X: s.Clip[0], Y: s.Clip[1]},
			Max: image.Point{X: s.Clip[2], Y: s.Clip[3]},
		}
		if !r.SetClipRect(c) {
			return nil, fmt.Errorf("%w: clip %v rejected", errInvalid, s.Clip)
		}
	}

	vs := make([]gradient.Vertex, len(s.Vertices))
	for i, v := range s.Vertices {
		vs[i] = gradient.Vertex{
			X:     v.X,
			Y:     v.Y,
			Red:   v.Color[0],
			Green: v.Color[1],
			Blue:  v.Color[2],
			Alpha: 0xFFFF,
		}
	}
	if s.Transform != nil {
		var m matrix.Matrix
		copy(m[:], s.Transform)
		vs = gradient.TransformVertices(m, vs)
	}

	tris := make([]gradient.Triangle, len(s.Triangles))
	for i, t := range s.Triangles {
		tris[i] = gradient.Triangle(t)
	}

	if !r.RenderTriangles(vs, tris) {
		return nil, fmt.Errorf("%w: rendering rejected", errInvalid)
	}
	return r.Image(), nil
}
