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
	"fmt"

	"github.com/jetsetilly/chromakey/colormodel"
)

// Thresholds used by the keying algorithm. The shader source uses the same
// values.
const (
	// added to the divisor when calculating dominance
	Epsilon = 0.004

	// keying only happens for pixels with an excess and brightness greater
	// than these values
	MinExcess     = 0.12
	MinBrightness = 0.24

	// spill suppression only happens for pixels with an excess greater than
	// this value
	MinSpill = 0.06

	// pixels with a dominance greater than SpillDominance have their spill
	// reduced by StrongSpill. other pixels are reduced by WeakSpill
	SpillDominance = 0.15
	StrongSpill    = 0.2
	WeakSpill      = 0.6
)

// Params are the values that control the keying algorithm.
type Params struct {
	Key        colormodel.RGB
	Similarity float32
	Blend      float32
	Despill    bool
}

func (p Params) String() string {
	return fmt.Sprintf("key=%s similarity=%.3f blend=%.3f despill=%v", p.Key, p.Similarity, p.Blend, p.Despill)
}

// Dominant returns the channel of the key color with the maximum value.
//
// Green is checked first, then blue. Red is used when neither green nor blue
// is the maximum. This means that a tie between green and any other channel
// favours green and a tie between red and blue favours blue.
func (p Params) Dominant() colormodel.Channel {
	mx := max(p.Key.R, p.Key.G, p.Key.B)
	switch mx {
	case p.Key.G:
		return colormodel.Green
	case p.Key.B:
		return colormodel.Blue
	}
	return colormodel.Red
}

// Analysis is the intermediate result of keying a single pixel.
type Analysis struct {
	Dominant   float32
	Avg        float32
	Excess     float32
	Dominance  float32
	Brightness float32
}

// Analyse returns the intermediate values used to key the pixel.
func (p Params) Analyse(c colormodel.RGB) Analysis {
	var a Analysis

	switch p.Dominant() {
	case colormodel.Green:
		a.Dominant = c.G
		a.Avg = (c.R + c.B) * 0.5
	case colormodel.Blue:
		a.Dominant = c.B
		a.Avg = (c.R + c.G) * 0.5
	default:
		a.Dominant = c.R
		a.Avg = (c.G + c.B) * 0.5
	}

	a.Excess = a.Dominant - a.Avg
	a.Dominance = a.Excess / (a.Dominant + Epsilon)
	a.Brightness = c.R + c.G + c.B

	return a
}

// Alpha returns the alpha value for the analysed pixel.
func (p Params) Alpha(a Analysis) float32 {
	alpha := float32(1.0)
	if a.Excess > MinExcess && a.Brightness > MinBrightness {
		if a.Dominance > p.Similarity {
			alpha = 0.0
		} else if a.Dominance > p.Similarity-p.Blend {
			alpha = 1.0 - smoothstep(p.Similarity-p.Blend, p.Similarity, a.Dominance)
		}
	}
	return alpha
}

// Despilled returns the new value for the dominant channel of the analysed
// pixel. The value is unchanged if spill suppression does not apply.
func (p Params) Despilled(a Analysis, alpha float32) float32 {
	if !p.Despill || alpha <= 0.0 || a.Excess <= MinSpill {
		return a.Dominant
	}

	strength := float32(WeakSpill)
	if a.Dominance > SpillDominance {
		strength = StrongSpill
	}
	return a.Avg + a.Excess*strength
}

// Pixel returns the keyed color and alpha for the pixel. The color is not
// premultiplied by alpha.
func (p Params) Pixel(c colormodel.RGB) (colormodel.RGB, float32) {
	a := p.Analyse(c)
	alpha := p.Alpha(a)
	return c.WithChannel(p.Dominant(), p.Despilled(a, alpha)), alpha
}

// smoothstep is the Hermite interpolation as defined by GLSL.
func smoothstep(edge0, edge1, x float32) float32 {
	t := min(max((x-edge0)/(edge1-edge0), 0.0), 1.0)
	return t * t * (3.0 - 2.0*t)
}
