// This file is part of Chromakey.
//
// Chromakey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chromakey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chromakey.  If not, see <https://www.gnu.org/licenses/>.

package keying

import (
	"image"
	"image/color"

	"github.com/jetsetilly/chromakey/colormodel"
)

// KeyImage keys every pixel in the image and returns the result as a
// non-premultiplied image. The bounds of the returned image start at the
// origin.
//
// The alpha channel of the source image, if there is one, is multiplied with
// the keyed alpha.
func (p Params) KeyImage(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c, alpha := p.Pixel(colormodel.FromBytes(n.R, n.G, n.B))
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{
				R: toByte(c.R),
				G: toByte(c.G),
				B: toByte(c.B),
				A: toByte(alpha * float32(n.A) / 255),
			})
		}
	}

	return dst
}

// output is clamped in the same way as a framebuffer clamps the output of a
// fragment shader
func toByte(v float32) uint8 {
	v = min(max(v, 0.0), 1.0)
	return uint8(v*255 + 0.5)
}
