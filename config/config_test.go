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

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/test"
)

func TestDefault(t *testing.T) {
	cfg := Default("video.mp4")
	test.ExpectEquality(t, cfg.Source, "video.mp4")
	test.ExpectEquality(t, cfg.KeyColor, "#00ff00")
	test.ExpectEquality(t, cfg.Similarity, float32(0.35))
	test.ExpectEquality(t, cfg.Blend, float32(0.15))
	test.ExpectSuccess(t, cfg.Despill)
	test.ExpectSuccess(t, cfg.Loop)
	test.ExpectSuccess(t, cfg.AutoPlay)

	// configurations are compared by value
	test.ExpectEquality(t, cfg, Default("video.mp4"))
	test.ExpectInequality(t, cfg, Default("other.mp4"))
}

func TestParams(t *testing.T) {
	cfg := Default("video.mp4")
	params, err := cfg.Params()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, params.Key, colormodel.RGB{R: 0, G: 1, B: 0})
	test.ExpectEquality(t, params.Similarity, cfg.Similarity)
	test.ExpectEquality(t, params.Blend, cfg.Blend)
	test.ExpectEquality(t, params.Despill, cfg.Despill)

	cfg.KeyColor = "green"
	_, err = cfg.Params()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, colormodel.InvalidColorSpec))

	cfg = Default("video.mp4")
	cfg.Blend = -0.1
	_, err = cfg.Params()
	test.ExpectSuccess(t, curated.Is(err, InvalidParameter))

	cfg = Default("video.mp4")
	cfg.Similarity = 1.5
	_, err = cfg.Params()
	test.ExpectSuccess(t, curated.Is(err, InvalidParameter))

	cfg = Default("video.mp4")
	cfg.Similarity = float32(math.NaN())
	_, err = cfg.Params()
	test.ExpectSuccess(t, curated.Is(err, InvalidParameter))

	cfg = Default("video.mp4")
	cfg.Blend = float32(math.NaN())
	_, err = cfg.Params()
	test.ExpectSuccess(t, curated.Is(err, InvalidParameter))

	cfg = Default("video.mp4")
	cfg.Similarity = 1
	cfg.Blend = 0
	_, err = cfg.Params()
	test.ExpectSuccess(t, err)
}

func TestNudge(t *testing.T) {
	cfg := Default("video.mp4")

	n := cfg.Nudge(0.01, -0.01)
	test.ExpectEquality(t, n.Similarity, float32(0.36))
	test.ExpectEquality(t, n.Blend, float32(0.14))

	// original is unchanged
	test.ExpectEquality(t, cfg.Similarity, float32(0.35))

	// repeated adjustments do not drift
	for i := 0; i < 10; i++ {
		cfg = cfg.Nudge(0.01, 0)
	}
	test.ExpectEquality(t, cfg.Similarity, float32(0.45))

	// limits
	cfg = cfg.Nudge(5, -5)
	test.ExpectEquality(t, cfg.Similarity, float32(1))
	test.ExpectEquality(t, cfg.Blend, float32(0))
}

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	// no file yet. default values are used
	p, err := newPreferences(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Configuration("a.mp4"), Default("a.mp4"))

	cfg := Default("a.mp4")
	cfg.KeyColor = "#0000ff"
	cfg.Similarity = 0.5
	cfg.Blend = 0.05
	cfg.Despill = false
	cfg.AutoPlay = false
	test.ExpectSuccess(t, p.Save(cfg))

	// source is not part of the preferences
	q, err := newPreferences(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q.Configuration("a.mp4"), cfg)
	test.ExpectEquality(t, q.Configuration("b.mp4").Source, "b.mp4")

	// invalid colors are not saved
	cfg.KeyColor = "#00ff0"
	test.ExpectFailure(t, q.Save(cfg))

	data, err := os.ReadFile(pth)
	test.ExpectSuccess(t, err)
	expected := "*** do not edit this file by hand ***\n" +
		"keying.blend :: 0.050\n" +
		"keying.color :: #0000ff\n" +
		"keying.despill :: false\n" +
		"keying.similarity :: 0.500\n" +
		"playback.autoplay :: false\n" +
		"playback.loop :: true\n"
	test.ExpectEquality(t, string(data), expected)
}
