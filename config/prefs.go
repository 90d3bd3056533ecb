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
	"github.com/jetsetilly/chromakey/colormodel"
	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/paths"
	"github.com/jetsetilly/chromakey/prefs"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences"

// Preferences are the keying parameters saved to disk.
type Preferences struct {
	dsk *prefs.Disk

	KeyColor   prefs.String
	Similarity prefs.Float
	Blend      prefs.Float
	Despill    prefs.Bool
	Loop       prefs.Bool
	AutoPlay   prefs.Bool
}

// NewPreferences loads the preferences from the preferences file in the
// resource directory. Missing values keep their default.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Similarity.SetRange(0, 1)
	p.Blend.SetRange(0, 1)

	err = p.set(Default(""))
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		"keying.color":      &p.KeyColor,
		"keying.similarity": &p.Similarity,
		"keying.blend":      &p.Blend,
		"keying.despill":    &p.Despill,
		"playback.loop":     &p.Loop,
		"playback.autoplay": &p.AutoPlay,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) set(cfg Configuration) error {
	if err := p.KeyColor.Set(cfg.KeyColor); err != nil {
		return err
	}
	if err := p.Similarity.Set(cfg.Similarity); err != nil {
		return err
	}
	if err := p.Blend.Set(cfg.Blend); err != nil {
		return err
	}
	if err := p.Despill.Set(cfg.Despill); err != nil {
		return err
	}
	if err := p.Loop.Set(cfg.Loop); err != nil {
		return err
	}
	return p.AutoPlay.Set(cfg.AutoPlay)
}

// Configuration returns a configuration for the source using the current
// preference values.
func (p *Preferences) Configuration(source string) Configuration {
	return Configuration{
		Source:     source,
		KeyColor:   p.KeyColor.Value(),
		Similarity: float32(p.Similarity.Value()),
		Blend:      float32(p.Blend.Value()),
		Despill:    p.Despill.Value(),
		Loop:       p.Loop.Value(),
		AutoPlay:   p.AutoPlay.Value(),
	}
}

// Save the keying parameters of the configuration. The source is not saved.
func (p *Preferences) Save(cfg Configuration) error {
	if _, err := colormodel.Parse(cfg.KeyColor); err != nil {
		return err
	}
	if err := p.set(cfg); err != nil {
		return err
	}
	return p.dsk.Save()
}
