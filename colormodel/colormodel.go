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

package colormodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/chromakey/curated"
)

// InvalidColorSpec is the pattern for errors returned by Parse().
const InvalidColorSpec = "invalid color spec: %q"

// Channel identifies one of the three color channels.
type Channel int

// List of valid Channel values.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// RGB is a color with channels normalised to the range 0.0 to 1.0.
type RGB struct {
	R float32
	G float32
	B float32
}

// Channel returns the value of the specified channel.
func (c RGB) Channel(ch Channel) float32 {
	switch ch {
	case Green:
		return c.G
	case Blue:
		return c.B
	}
	return c.R
}

// WithChannel returns a copy of the color with the specified channel
// replaced by v.
func (c RGB) WithChannel(ch Channel, v float32) RGB {
	switch ch {
	case Green:
		c.G = v
	case Blue:
		c.B = v
	default:
		c.R = v
	}
	return c
}

// Hex returns the color in the same form accepted by Parse(). Channels are
// rounded to the nearest 8-bit value.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

func (c RGB) String() string {
	return c.Hex()
}

func toByte(v float32) uint8 {
	v = min(max(v, 0.0), 1.0)
	return uint8(v*255 + 0.5)
}

// Parse converts a color specification into an RGB value.
func Parse(spec string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(spec), "#")
	if len(h) != 6 {
		return RGB{}, curated.Errorf(InvalidColorSpec, spec)
	}

	var v [3]float32
	for i := range v {
		b, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, curated.Errorf(InvalidColorSpec, spec)
		}
		v[i] = float32(b) / 255
	}

	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// FromBytes creates an RGB value from 8-bit channel values.
func FromBytes(r, g, b uint8) RGB {
	return RGB{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
	}
}
