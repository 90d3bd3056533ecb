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

package colormodel_test

import (
	"testing"

	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/test"
)

func TestParse(t *testing.T) {
	c, err := colormodel.Parse("#00ff00")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, colormodel.RGB{R: 0, G: 1, B: 0})

	// hash prefix is optional and case doesn't matter
	c, err = colormodel.Parse("0000FF")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, colormodel.RGB{R: 0, G: 0, B: 1})

	c, err = colormodel.Parse("#804020")
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, c.R, 128.0/255, 0.0001)
	test.ExpectApproximate(t, c.G, 64.0/255, 0.0001)
	test.ExpectApproximate(t, c.B, 32.0/255, 0.0001)
	test.ExpectEquality(t, c.Hex(), "#804020")
}

func TestInvalidSpec(t *testing.T) {
	for _, spec := range []string{"", "#", "#0f0", "#00ff0", "#00ff000", "#gg0000", "00ff00ff", "#+1ff00"} {
		_, err := colormodel.Parse(spec)
		test.ExpectFailure(t, err, spec)
		test.ExpectSuccess(t, curated.Is(err, colormodel.InvalidColorSpec), spec)
	}
}

func TestChannels(t *testing.T) {
	c := colormodel.RGB{R: 0.1, G: 0.2, B: 0.3}
	test.ExpectEquality(t, c.Channel(colormodel.Red), 0.1)
	test.ExpectEquality(t, c.Channel(colormodel.Green), 0.2)
	test.ExpectEquality(t, c.Channel(colormodel.Blue), 0.3)

	d := c.WithChannel(colormodel.Blue, 0.9)
	test.ExpectEquality(t, d, colormodel.RGB{R: 0.1, G: 0.2, B: 0.9})

	// original is unchanged
	test.ExpectEquality(t, c.B, 0.3)
}

func TestFromBytes(t *testing.T) {
	test.ExpectEquality(t, colormodel.FromBytes(255, 0, 255), colormodel.RGB{R: 1, G: 0, B: 1})
}
