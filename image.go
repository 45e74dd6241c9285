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

package gradient

import "image"

// ToImage converts a packed BGR or BGRA buffer of width×height pixels into
// an NRGBA image. Pixels of a 24bpp buffer become fully opaque.
// The buffer must hold at least width*height*f.BytesPerPixel() bytes.
func ToImage(buf []byte, width, height int, f PixelFormat) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	bpp := f.BytesPerPixel()
	for y := range height {
		src := buf[y*width*bpp:]
		dst := img.Pix[y*img.Stride:]
		for x := range width {
			p := src[x*bpp:]
			q := dst[x*4 : x*4+4]
			q[0] = p[2]
			q[1] = p[1]
			q[2] = p[0]
			if bpp == 4 {
				q[3] = p[3]
			} else {
				q[3] = 255
			}
		}
	}
	return img
}

// Image returns a copy of the bound buffer as an NRGBA image,
// or nil if no buffer is bound.
func (r *Rasterizer) Image() *image.NRGBA {
	if !r.ready {
		return nil
	}
	return ToImage(r.buf, r.width, r.height, r.format)
}
