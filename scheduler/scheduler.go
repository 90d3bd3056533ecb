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

package scheduler

import (
	"fmt"
	"image"

	"github.com/jetsetilly/chromakey/logger"
	"github.com/jetsetilly/chromakey/media"
	"github.com/jetsetilly/chromakey/refresh"
)

// State of the scheduler.
type State int

// List of valid State values.
const (
	Polling State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Active:
		return "active"
	}
	return "unknown state"
}

// Renderer is the GPU side of the scheduler.
type Renderer interface {
	// Viewport sets the dimensions of the drawing area.
	Viewport(width int32, height int32)

	// Upload copies the frame to the texture used by Draw().
	Upload(img *image.RGBA)

	// Draw clears the output and draws the most recently uploaded frame.
	Draw()
}

// Surface is the output surface that Renderer draws to.
type Surface interface {
	// SetSize changes the size of the surface to match the frame being drawn.
	SetSize(width int32, height int32)
}

// Scheduler uploads and draws media frames once per refresh.
type Scheduler struct {
	src     media.Source
	rnd     Renderer
	surface Surface
	refresh refresh.Requester
	tag     string

	state   State
	running bool

	// a frame has been decoded at least once
	ready bool

	// the handle of the outstanding tick. zero if there is no outstanding tick
	pending refresh.Handle

	// current dimensions of surface and viewport
	width  int
	height int

	// number of frames drawn
	frames int

	// the most recent tick drew a frame
	drew bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The tag is used for log entries.
func NewScheduler(src media.Source, rnd Renderer, surface Surface, req refresh.Requester, tag string) *Scheduler {
	return &Scheduler{
		src:     src,
		rnd:     rnd,
		surface: surface,
		refresh: req,
		tag:     tag,
	}
}

func (sch *Scheduler) String() string {
	return fmt.Sprintf("%s (%dx%d) %d frames", sch.state, sch.width, sch.height, sch.frames)
}

// Start requests the first tick. Starting a running scheduler does nothing.
func (sch *Scheduler) Start() {
	if sch.running {
		return
	}
	sch.running = true
	sch.pending = sch.refresh.Request(sch.tick)
}

// Stop cancels the outstanding tick. The scheduler can be started again.
func (sch *Scheduler) Stop() {
	sch.running = false
	sch.drew = false
	if sch.pending != 0 {
		sch.refresh.Cancel(sch.pending)
		sch.pending = 0
	}
}

// State returns the current state of the scheduler.
func (sch *Scheduler) State() State {
	return sch.state
}

// Ready returns true if the media source has decoded a frame.
func (sch *Scheduler) Ready() bool {
	return sch.ready
}

// Pending returns true if a tick is outstanding.
func (sch *Scheduler) Pending() bool {
	return sch.pending != 0
}

// Frames returns the number of frames drawn.
func (sch *Scheduler) Frames() int {
	return sch.frames
}

// Drew returns true if the most recent tick drew a frame. If it did not then
// the contents of the surface's back buffer are undefined and should not be
// presented.
func (sch *Scheduler) Drew() bool {
	return sch.drew
}

// drain the event queue of the media source. returns true if a playing event
// was seen
func (sch *Scheduler) drain() bool {
	var playing bool
	for {
		select {
		case ev := <-sch.src.Events():
			switch ev {
			case media.EventLoaded:
				sch.ready = true
			case media.EventPlaying:
				playing = true
			}
			logger.Logf(logger.Allow, sch.tag, "media %s", ev)
		default:
			return playing
		}
	}
}

func (sch *Scheduler) tick() {
	sch.pending = 0
	sch.drew = false
	if !sch.running {
		return
	}

	playing := sch.drain()

	if sch.state == Polling && playing {
		sch.state = Active
		logger.Logf(logger.Allow, sch.tag, "scheduler %s", sch.state)
	}

	if sch.state == Active {
		sch.drew = sch.render()
	}

	sch.pending = sch.refresh.Request(sch.tick)
}

// render the current frame. returns false if nothing was drawn
func (sch *Scheduler) render() bool {
	if !sch.ready {
		return false
	}

	// the source can end or pause as a result of the call to Frame()
	img := sch.src.Frame()
	if img == nil || sch.src.Paused() || sch.src.Ended() {
		return false
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w != sch.width || h != sch.height {
		sch.width = w
		sch.height = h
		sch.surface.SetSize(int32(w), int32(h))
		sch.rnd.Viewport(int32(w), int32(h))
		logger.Logf(logger.Allow, sch.tag, "frame size %dx%d", w, h)
	}

	sch.rnd.Upload(img)
	sch.rnd.Draw()
	sch.frames++

	return true
}
