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

package lifecycle

import (
	"github.com/google/uuid"
	"github.com/jetsetilly/chromakey/config"
	"github.com/jetsetilly/chromakey/logger"
	"github.com/jetsetilly/chromakey/scheduler"
)

// Manager creates and tears down sessions as configurations are applied. It
// must be used from the goroutine that owns the GL context.
type Manager struct {
	factory Factory

	// the most recently applied configuration. applied is false until the
	// first call to Apply() and after a call to Unmount()
	active  config.Configuration
	applied bool

	// the current session. nil if construction of the session failed
	session *Session
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(factory Factory) *Manager {
	return &Manager{
		factory: factory,
	}
}

// Apply the configuration. If it is the same as the active configuration then
// nothing happens. Otherwise the current session is torn down and a new
// session is created.
//
// An error is returned if the new session could not be created. Configuration
// errors are detected before any resources are created. A failure to start
// playback is logged but is not returned as an error.
//
// A configuration that fails is still the active configuration. Applying the
// same configuration again does not retry.
func (m *Manager) Apply(cfg config.Configuration) error {
	if m.applied && cfg == m.active {
		return nil
	}

	m.teardown()
	m.active = cfg
	m.applied = true

	params, err := cfg.Params()
	if err != nil {
		logger.Log(logger.Allow, "lifecycle", err)
		return err
	}

	s := &Session{
		ID:     uuid.New(),
		Config: cfg,
		Params: params,
	}
	tag := s.String()

	s.rnd, err = m.factory.NewRenderer(params)
	if err != nil {
		logger.Log(logger.Allow, tag, err)
		return err
	}

	s.src, err = m.factory.NewSource(cfg.Source, cfg.Loop)
	if err != nil {
		s.rnd.Destroy()
		logger.Log(logger.Allow, tag, err)
		return err
	}

	s.sch = scheduler.NewScheduler(s.src, s.rnd, m.factory.Surface(), m.factory.Refresh(), tag)

	logger.Logf(logger.Allow, tag, "%s", cfg)

	if cfg.AutoPlay {
		if err := s.src.Play(); err != nil {
			logger.Logf(logger.Allow, tag, "autoplay: %v", err)
		}
	}

	s.sch.Start()
	m.session = s

	return nil
}

// Unmount tears down the current session without creating a new one.
func (m *Manager) Unmount() {
	m.teardown()
	m.applied = false
}

func (m *Manager) teardown() {
	if m.session == nil {
		return
	}
	m.session.teardown()
	m.session = nil
}

// Session returns the current session. Returns nil if there is no session.
func (m *Manager) Session() *Session {
	return m.session
}

// Configuration returns the active configuration. The boolean is false if no
// configuration has been applied.
func (m *Manager) Configuration() (config.Configuration, bool) {
	return m.active, m.applied
}

// Play starts playback of the current session.
func (m *Manager) Play() error {
	if m.session == nil {
		return nil
	}
	return m.session.src.Play()
}

// TogglePause pauses the current session if it is playing and plays it if it
// is paused.
func (m *Manager) TogglePause() error {
	if m.session == nil {
		return nil
	}
	if m.session.src.Paused() {
		return m.session.src.Play()
	}
	return m.session.src.Pause()
}
