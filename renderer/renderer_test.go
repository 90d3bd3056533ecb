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

package renderer

import (
	"testing"

	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/keying"
	"github.com/jetsetilly/chromakey/test"
)

func TestUniforms(t *testing.T) {
	params := keying.Params{
		Key:        colormodel.RGB{R: 0, G: 0, B: 1},
		Similarity: 0.4,
		Blend:      0.1,
		Despill:    true,
	}
	u := uniformsFor(params)
	test.ExpectEquality(t, u.dominant, int32(colormodel.Blue))
	test.ExpectEquality(t, u.similarity, float32(0.4))
	test.ExpectEquality(t, u.blend, float32(0.1))
	test.ExpectEquality(t, u.despill, int32(1))

	params.Despill = false
	params.Key = colormodel.RGB{R: 1, G: 0, B: 0}
	u = uniformsFor(params)
	test.ExpectEquality(t, u.dominant, int32(colormodel.Red))
	test.ExpectEquality(t, u.despill, int32(0))
}

func TestQuad(t *testing.T) {
	// four vertices of two components
	test.ExpectEquality(t, len(quad), 8)

	// every corner of clip space is present
	corners := map[[2]float32]bool{}
	for i := 0; i < len(quad); i += 2 {
		corners[[2]float32{quad[i], quad[i+1]}] = true
	}
	test.ExpectEquality(t, len(corners), 4)
	for _, c := range [][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		test.ExpectSuccess(t, corners[c], c)
	}
}

func TestFlip(t *testing.T) {
	// two rows of two pixels. the first row read from the framebuffer is the
	// bottom row
	pix := []uint8{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}
	img := flip(pix, 2, 2)
	test.ExpectEquality(t, img.NRGBAAt(0, 0).R, uint8(3))
	test.ExpectEquality(t, img.NRGBAAt(1, 0).R, uint8(4))
	test.ExpectEquality(t, img.NRGBAAt(0, 1).R, uint8(1))
	test.ExpectEquality(t, img.NRGBAAt(1, 1).R, uint8(2))
}
