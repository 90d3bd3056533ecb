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
	"fmt"

	"github.com/google/uuid"
	"github.com/jetsetilly/chromakey/config"
	"github.com/jetsetilly/chromakey/keying"
	"github.com/jetsetilly/chromakey/logger"
	"github.com/jetsetilly/chromakey/media"
	"github.com/jetsetilly/chromakey/refresh"
	"github.com/jetsetilly/chromakey/scheduler"
)

// Renderer is a scheduler.Renderer that owns GPU resources.
type Renderer interface {
	scheduler.Renderer

	// Destroy releases all GPU resources.
	Destroy()
}

// Factory creates the resources required by a session.
type Factory interface {
	NewRenderer(params keying.Params) (Renderer, error)
	NewSource(locator string, loop bool) (media.Source, error)
	Surface() scheduler.Surface
	Refresh() refresh.Requester
}

// Session is the set of resources created for a configuration.
type Session struct {
	ID     uuid.UUID
	Config config.Configuration
	Params keying.Params

	rnd Renderer
	src media.Source
	sch *scheduler.Scheduler
}

func (s *Session) String() string {
	return fmt.Sprintf("session %s", s.ID.String()[:8])
}

// Renderer returns the renderer of the session.
func (s *Session) Renderer() Renderer {
	return s.rnd
}

// Source returns the media source of the session.
func (s *Session) Source() media.Source {
	return s.src
}

// Scheduler returns the scheduler of the session.
func (s *Session) Scheduler() *scheduler.Scheduler {
	return s.sch
}

// teardown in the required order
func (s *Session) teardown() {
	s.sch.Stop()

	if err := s.src.Pause(); err != nil {
		logger.Log(logger.Allow, s.String(), err)
	}
	if err := s.src.Close(); err != nil {
		logger.Log(logger.Allow, s.String(), err)
	}

	s.rnd.Destroy()

	logger.Logf(logger.Allow, s.String(), "ended after %d frames", s.sch.Frames())
}
