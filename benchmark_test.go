package gradient

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkRasterizerHexagon benchmarks gradient filling a hexagon made of
// six triangles around a shared centre vertex.
func BenchmarkRasterizerHexagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			buf := make([]byte, size*size*4)
			r := NewRasterizer()
			r.SetupContext32BPP(size, size, buf, 255)

			vs, tris := hexagonMesh(float64(size)/2, float64(size)*0.45)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.RenderTriangles(vs, tris)
			}
		})
	}
}

// BenchmarkVectorHexagon benchmarks x/image/vector filling the same hexagon
// with a single colour, as a point of comparison.
func BenchmarkVectorHexagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{R: 255, A: 255})

			vs, _ := hexagonMesh(float64(size)/2, float64(size)*0.45)
			rim := vs[1:]

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(rim[0].X), float32(rim[0].Y))
				for _, v := range rim[1:] {
					r.LineTo(float32(v.X), float32(v.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// hexagonMesh returns a hexagon centred at (c, c) with the given radius,
// split into six triangles sharing the centre vertex.
func hexagonMesh(c, radius float64) ([]Vertex, []Triangle) {
	vs := []Vertex{{X: int32(c), Y: int32(c), Red: 65535, Green: 65535, Blue: 65535}}
	palette := [][3]uint16{
		{65535, 0, 0}, {65535, 65535, 0}, {0, 65535, 0},
		{0, 65535, 65535}, {0, 0, 65535}, {65535, 0, 65535},
	}
	for i := range 6 {
		angle := float64(i) * math.Pi / 3
		p := palette[i]
		vs = append(vs, Vertex{
			X:   int32(c + radius*math.Cos(angle)),
			Y:   int32(c + radius*math.Sin(angle)),
			Red: p[0], Green: p[1], Blue: p[2],
		})
	}
	var tris []Triangle
	for i := range 6 {
		tris = append(tris, Triangle{0, 1 + i, 1 + (i+1)%6})
	}
	return vs, tris
}
