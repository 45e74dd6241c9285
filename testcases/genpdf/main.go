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

// Command genpdf generates proof sheets for the gradient test cases.
// Every test case becomes a PDF page showing the triangles flat-shaded with
// their mean vertex colour, together with the clip window. The PDFs are then
// rendered to PNG using Ghostscript, for visual comparison with the
// rasterizer output.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/testcases"
)

const proofDir = "testdata/proof"

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")
			pngPath := filepath.Join(proofDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// clipState reproduces the clip window the rasterizer uses for tc.
func clipState(tc testcases.TestCase) gradient.ClipState {
	c := gradient.NewClipState(tc.Width, tc.Height)
	if tc.Origin != nil {
		c = c.WithOrigin(image.Point{X: int(tc.Origin.X), Y: int(tc.Origin.Y)})
	}
	if tc.Clip != nil {
		r := image.Rectangle{
			Min: image.Point{X: int(tc.Clip.LLx), Y: int(tc.Clip.LLy)},
			Max: image.Point{X: int(tc.Clip.URx), Y: int(tc.Clip.URy)},
		}
		c, _ = c.WithRect(r, tc.Width, tc.Height)
	}
	return c
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// The rasterizer addresses pixels relative to the clip window.
	clip := clipState(tc)
	page.Transform(matrix.Matrix{1, 0, 0, 1, -float64(clip.Min.X), -float64(clip.Min.Y)})

	pts := tc.Device()
	cols := tc.TriangleColors()
	for i, tri := range tc.Triangles {
		if !validTriangle(tri, len(pts)) {
			continue
		}
		c := cols[i]
		page.SetFillColor(color.DeviceRGB(c[0], c[1], c[2]))
		a, b, d := pts[tri[0]], pts[tri[1]], pts[tri[2]]
		page.MoveTo(float64(a[0]), float64(a[1]))
		page.LineTo(float64(b[0]), float64(b[1]))
		page.LineTo(float64(d[0]), float64(d[1]))
		page.ClosePath()
		page.Fill()
	}

	// outline the clip window
	r := clip.Rect()
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(0.5)
	page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx+1, r.URy-r.LLy+1)
	page.Stroke()

	return page.Close()
}

func validTriangle(tri [3]int, n int) bool {
	for _, k := range tri {
		if k < 0 || k >= n {
			return false
		}
	}
	return true
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
