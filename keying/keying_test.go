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

package keying_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/keying"
	"github.com/jetsetilly/chromakey/test"
)

func defaultParams(key colormodel.RGB) keying.Params {
	return keying.Params{
		Key:        key,
		Similarity: 0.35,
		Blend:      0.15,
		Despill:    true,
	}
}

func TestDominantChannel(t *testing.T) {
	cases := []struct {
		key colormodel.RGB
		ch  colormodel.Channel
	}{
		{colormodel.RGB{R: 0, G: 1, B: 0}, colormodel.Green},
		{colormodel.RGB{R: 0, G: 0, B: 1}, colormodel.Blue},
		{colormodel.RGB{R: 1, G: 0, B: 0}, colormodel.Red},
		{colormodel.RGB{R: 0.9, G: 0.2, B: 0.3}, colormodel.Red},

		// ties
		{colormodel.RGB{R: 1, G: 1, B: 0}, colormodel.Green},
		{colormodel.RGB{R: 0, G: 1, B: 1}, colormodel.Green},
		{colormodel.RGB{R: 1, G: 0, B: 1}, colormodel.Blue},
		{colormodel.RGB{R: 0.5, G: 0.5, B: 0.5}, colormodel.Green},
		{colormodel.RGB{R: 0, G: 0, B: 0}, colormodel.Green},
	}

	for _, c := range cases {
		test.ExpectEquality(t, defaultParams(c.key).Dominant(), c.ch, c.key)
	}
}

func TestKeyColorIsKeyedOut(t *testing.T) {
	// for pure primaries the dominance of the key color tends to 1
	for _, spec := range []string{"#00ff00", "#0000ff", "#ff0000"} {
		key, err := colormodel.Parse(spec)
		test.ExpectSuccess(t, err)
		p := defaultParams(key)

		a := p.Analyse(key)
		test.ExpectApproximate(t, a.Dominance, 1.0, 0.005, spec)

		_, alpha := p.Pixel(key)
		test.ExpectEquality(t, alpha, 0.0, spec)
	}

	// less saturated key colors are still keyed out by the default thresholds
	for _, spec := range []string{"#00b140", "#47bb6c", "#0047bb", "#20e020"} {
		key, err := colormodel.Parse(spec)
		test.ExpectSuccess(t, err)
		_, alpha := defaultParams(key).Pixel(key)
		test.ExpectEquality(t, alpha, 0.0, spec)
	}
}

func TestGuardGate(t *testing.T) {
	keys := []colormodel.RGB{
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 0, B: 0},
	}

	// a similarity of zero and a large blend would key almost everything if
	// the gate did not hold
	params := []keying.Params{
		{Similarity: 0.35, Blend: 0.15},
		{Similarity: 0.0, Blend: 0.5},
		{Similarity: 0.05, Blend: 1.0},
	}

	const steps = 20
	for _, key := range keys {
		for _, p := range params {
			p.Key = key
			for r := 0; r <= steps; r++ {
				for g := 0; g <= steps; g++ {
					for b := 0; b <= steps; b++ {
						c := colormodel.RGB{
							R: float32(r) / steps,
							G: float32(g) / steps,
							B: float32(b) / steps,
						}
						a := p.Analyse(c)
						if a.Excess > keying.MinExcess && a.Brightness > keying.MinBrightness {
							continue
						}
						_, alpha := p.Pixel(c)
						if !test.ExpectEquality(t, alpha, 1.0, c) {
							return
						}
					}
				}
			}
		}
	}
}

func TestMonotonicity(t *testing.T) {
	p := defaultParams(colormodel.RGB{R: 0, G: 1, B: 0})

	// increasing the green channel with fixed red and blue channels increases
	// dominance. alpha should never increase
	for _, other := range []float32{0.0, 0.1, 0.3, 0.5} {
		lastDominance := float32(-1.0)
		lastAlpha := float32(1.0)

		for g := other; g <= 1.0; g += 0.001 {
			c := colormodel.RGB{R: other, G: g, B: other}
			a := p.Analyse(c)
			_, alpha := p.Pixel(c)

			test.ExpectSuccess(t, a.Dominance >= lastDominance, c)
			if !test.ExpectSuccess(t, alpha <= lastAlpha, c) {
				return
			}

			lastDominance = a.Dominance
			lastAlpha = alpha
		}
	}
}

func TestSoftEdge(t *testing.T) {
	p := defaultParams(colormodel.RGB{R: 0, G: 1, B: 0})

	// dominance of this pixel is in the middle of the blend band
	c := colormodel.RGB{R: 0.5789, G: 0.8, B: 0.5789}
	a := p.Analyse(c)
	test.ExpectApproximate(t, a.Dominance, 0.275, 0.01)

	_, alpha := p.Pixel(c)
	test.ExpectApproximate(t, alpha, 0.5, 0.02)

	// a negative lower bound to the band is acceptable
	p.Similarity = 0.2
	p.Blend = 0.3
	_, alpha = p.Pixel(colormodel.RGB{R: 0.5789, G: 0.8, B: 0.5789})
	test.ExpectEquality(t, alpha, 0.0)

	c = colormodel.RGB{R: 0.85, G: 1.0, B: 0.85}
	a = p.Analyse(c)
	test.ExpectSuccess(t, a.Dominance < p.Similarity)
	_, alpha = p.Pixel(c)
	test.ExpectSuccess(t, alpha > 0.0 && alpha < 1.0)
}

func TestIdempotence(t *testing.T) {
	p := defaultParams(colormodel.RGB{R: 0, G: 1, B: 0})

	for _, c := range []colormodel.RGB{
		{R: 0.1, G: 0.9, B: 0.05},
		{R: 0.5789, G: 0.8, B: 0.5789},
		{R: 0.7, G: 0.6, B: 0.5},
		{R: 0.2, G: 0.45, B: 0.2},
	} {
		c1, a1 := p.Pixel(c)
		c2, a2 := p.Pixel(c)
		test.ExpectEquality(t, c1, c2)
		test.ExpectEquality(t, a1, a2)
	}
}

func TestDespillBound(t *testing.T) {
	const steps = 25

	for _, key := range []colormodel.RGB{{R: 0, G: 1, B: 0}, {R: 0, G: 0, B: 1}} {
		p := defaultParams(key)
		ch := p.Dominant()

		for r := 0; r <= steps; r++ {
			for g := 0; g <= steps; g++ {
				for b := 0; b <= steps; b++ {
					c := colormodel.RGB{
						R: float32(r) / steps,
						G: float32(g) / steps,
						B: float32(b) / steps,
					}
					a := p.Analyse(c)
					k, alpha := p.Pixel(c)
					d := k.Channel(ch)

					if alpha <= 0 || a.Excess <= keying.MinSpill {
						test.ExpectEquality(t, d, a.Dominant, c)
						continue
					}

					if !test.ExpectSuccess(t, d >= a.Avg && d <= a.Dominant, c) {
						return
					}
				}
			}
		}
	}
}

func TestDespillStrength(t *testing.T) {
	p := defaultParams(colormodel.RGB{R: 0, G: 1, B: 0})
	p.Similarity = 1.0
	p.Blend = 0.0

	// strongly dominant pixel gets light suppression
	c := colormodel.RGB{R: 0.4, G: 0.8, B: 0.4}
	a := p.Analyse(c)
	test.ExpectSuccess(t, a.Dominance > keying.SpillDominance)
	k, alpha := p.Pixel(c)
	test.ExpectEquality(t, alpha, 1.0)
	test.ExpectApproximate(t, k.G, a.Avg+a.Excess*keying.StrongSpill, 0.0001)

	// weakly dominant pixel gets strong suppression
	c = colormodel.RGB{R: 0.8, G: 0.9, B: 0.8}
	a = p.Analyse(c)
	test.ExpectSuccess(t, a.Dominance <= keying.SpillDominance)
	test.ExpectSuccess(t, a.Excess > keying.MinSpill)
	k, _ = p.Pixel(c)
	test.ExpectApproximate(t, k.G, a.Avg+a.Excess*keying.WeakSpill, 0.0001)

	// only the dominant channel is changed
	test.ExpectEquality(t, k.R, c.R)
	test.ExpectEquality(t, k.B, c.B)

	// despill can be turned off
	p.Despill = false
	k, _ = p.Pixel(c)
	test.ExpectEquality(t, k, c)
}

func TestGreenScreenPixel(t *testing.T) {
	key, err := colormodel.Parse("#00ff00")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, colormodel.RGB{R: 0, G: 1, B: 0})

	p := defaultParams(key)
	c := colormodel.RGB{R: 0.1, G: 0.9, B: 0.05}
	a := p.Analyse(c)

	test.ExpectApproximate(t, a.Dominant, 0.9, 0.0001)
	test.ExpectApproximate(t, a.Avg, 0.075, 0.0001)
	test.ExpectApproximate(t, a.Excess, 0.825, 0.0001)
	test.ExpectApproximate(t, a.Brightness, 1.05, 0.0001)
	test.ExpectApproximate(t, a.Dominance, 0.825/0.904, 0.0001)

	_, alpha := p.Pixel(c)
	test.ExpectEquality(t, alpha, 0.0)
}

func TestNeutralGray(t *testing.T) {
	c := colormodel.RGB{R: 0.5, G: 0.5, B: 0.5}

	for _, spec := range []string{"#00ff00", "#0000ff", "#ff0000", "#808080", "#ff00ff"} {
		key, err := colormodel.Parse(spec)
		test.ExpectSuccess(t, err)

		p := defaultParams(key)
		test.ExpectEquality(t, p.Analyse(c).Excess, 0.0, spec)

		k, alpha := p.Pixel(c)
		test.ExpectEquality(t, alpha, 1.0, spec)
		test.ExpectEquality(t, k, c, spec)
	}
}

func TestKeyImage(t *testing.T) {
	p := defaultParams(colormodel.RGB{R: 0, G: 1, B: 0})

	// image with bounds that do not start at the origin
	img := image.NewRGBA(image.Rect(10, 10, 13, 11))
	img.Set(10, 10, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(11, 10, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	img.Set(12, 10, color.RGBA{R: 0, G: 0, B: 0, A: 0})

	out := p.KeyImage(img)
	test.ExpectEquality(t, out.Bounds(), image.Rect(0, 0, 3, 1))
	test.ExpectEquality(t, out.NRGBAAt(0, 0).A, 0)
	test.ExpectEquality(t, out.NRGBAAt(1, 0), color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	// source alpha carries through
	test.ExpectEquality(t, out.NRGBAAt(2, 0).A, 0)
}
