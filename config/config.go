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
	"fmt"
	"math"

	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/keying"
)

// InvalidParameter is the pattern for errors returned when a keying
// parameter is out of range.
const InvalidParameter = "config: %s out of range: %v"

// Default values for a Configuration.
const (
	DefaultKeyColor   = "#00ff00"
	DefaultSimilarity = 0.35
	DefaultBlend      = 0.15
	DefaultDespill    = true
	DefaultLoop       = true
	DefaultAutoPlay   = true
)

// Configuration of a keying session.
type Configuration struct {
	// locator of the media to play
	Source string

	// key color as a hex string
	KeyColor string

	Similarity float32
	Blend      float32
	Despill    bool

	Loop     bool
	AutoPlay bool
}

// Default returns the default configuration for the source.
func Default(source string) Configuration {
	return Configuration{
		Source:     source,
		KeyColor:   DefaultKeyColor,
		Similarity: DefaultSimilarity,
		Blend:      DefaultBlend,
		Despill:    DefaultDespill,
		Loop:       DefaultLoop,
		AutoPlay:   DefaultAutoPlay,
	}
}

func (cfg Configuration) String() string {
	return fmt.Sprintf("%s: key=%s similarity=%.2f blend=%.2f despill=%v loop=%v autoplay=%v",
		cfg.Source, cfg.KeyColor, cfg.Similarity, cfg.Blend, cfg.Despill, cfg.Loop, cfg.AutoPlay)
}

// unit returns true if v is in the range 0 to 1. NaN is never in range
func unit(v float32) bool {
	return v >= 0 && v <= 1
}

// Params resolves the configuration to keying parameters. Errors match the
// colormodel.InvalidColorSpec or InvalidParameter patterns.
func (cfg Configuration) Params() (keying.Params, error) {
	key, err := colormodel.Parse(cfg.KeyColor)
	if err != nil {
		return keying.Params{}, err
	}
	if !unit(cfg.Similarity) {
		return keying.Params{}, curated.Errorf(InvalidParameter, "similarity", cfg.Similarity)
	}
	if !unit(cfg.Blend) {
		return keying.Params{}, curated.Errorf(InvalidParameter, "blend", cfg.Blend)
	}
	return keying.Params{
		Key:        key,
		Similarity: cfg.Similarity,
		Blend:      cfg.Blend,
		Despill:    cfg.Despill,
	}, nil
}

// step of adjustments made with Nudge()
const step = 100

// adjust v by delta, keeping the result in the range 0 to 1 and rounded to
// two decimal places
func adjust(v float32, delta float32) float32 {
	n := math.Round(float64(v+delta) * step)
	return float32(min(max(n, 0), step) / step)
}

// Nudge returns a copy of the configuration with similarity and blend
// adjusted by the delta values. The results are limited to the range 0 to 1.
func (cfg Configuration) Nudge(similarity float32, blend float32) Configuration {
	cfg.Similarity = adjust(cfg.Similarity, similarity)
	cfg.Blend = adjust(cfg.Blend, blend)
	return cfg
}
