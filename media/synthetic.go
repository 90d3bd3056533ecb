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

package media

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/logger"
)

const syntheticPrefix = "synthetic:"

// Synthetic generates frames showing a disc moving across a green backdrop.
// It is useful for testing and for checking the keying parameters without a
// media file.
//
// A new frame is generated every time Frame() is called while the source is
// playing. While the source is paused Frame() returns the most recent frame.
//
// Synthetic sources should be used from one goroutine only.
type Synthetic struct {
	width  int
	height int
	loop   bool

	// number of frames before playback ends. zero means there is no end
	length int

	events chan Event
	frame  *image.RGBA
	seq    int

	loaded bool
	paused bool
	ended  bool
	closed bool

	// if Reject is true then Play() will fail
	Reject bool
}

// NewSynthetic creates a new Synthetic source of the specified size.
func NewSynthetic(width int, height int, loop bool) *Synthetic {
	return &Synthetic{
		width:  width,
		height: height,
		loop:   loop,
		events: make(chan Event, eventQueueLen),
		paused: true,
	}
}

// ParseSynthetic creates a new Synthetic source from a locator of the form
// "synthetic:WxH".
func ParseSynthetic(locator string, loop bool) (*Synthetic, error) {
	var w, h int
	_, err := fmt.Sscanf(strings.TrimPrefix(locator, syntheticPrefix), "%dx%d", &w, &h)
	if err != nil {
		return nil, curated.Errorf(SourceFailure, fmt.Errorf("synthetic: %w", err))
	}
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(SourceFailure, fmt.Errorf("synthetic: invalid dimensions %dx%d", w, h))
	}
	return NewSynthetic(w, h, loop), nil
}

// SetLength sets the number of frames generated before playback ends. A
// length of zero means the source never ends.
func (src *Synthetic) SetLength(frames int) {
	src.length = frames
}

// Resize changes the dimensions of subsequent frames. This is the equivalent
// of a change of resolution in a media stream.
func (src *Synthetic) Resize(width int, height int) {
	src.width = width
	src.height = height
}

// Sequence returns the number of frames generated so far.
func (src *Synthetic) Sequence() int {
	return src.seq
}

// Closed returns true if Close() has been called.
func (src *Synthetic) Closed() bool {
	return src.closed
}

func (src *Synthetic) send(ev Event) {
	select {
	case src.events <- ev:
	default:
		logger.Logf(logger.Allow, "synthetic", "dropped %s event", ev)
	}
}

// Events implements the Source interface.
func (src *Synthetic) Events() <-chan Event {
	return src.events
}

// Frame implements the Source interface.
func (src *Synthetic) Frame() *image.RGBA {
	if src.closed {
		return nil
	}

	if !src.paused && !src.ended {
		if src.length > 0 && src.seq >= src.length {
			if src.loop {
				src.seq = 0
			} else {
				src.ended = true
				src.paused = true
				src.send(EventEnded)
				return src.frame
			}
		}
		src.generate()
	}

	return src.frame
}

// Paused implements the Source interface.
func (src *Synthetic) Paused() bool {
	return src.paused
}

// Ended implements the Source interface.
func (src *Synthetic) Ended() bool {
	return src.ended
}

// Play implements the Source interface.
func (src *Synthetic) Play() error {
	if src.closed {
		return curated.Errorf(PlaybackStartFailure, "source is closed")
	}
	if src.Reject {
		return curated.Errorf(PlaybackStartFailure, "playback rejected")
	}

	if src.ended {
		src.ended = false
		src.seq = 0
	}

	if !src.loaded {
		src.generate()
		src.loaded = true
		src.send(EventLoaded)
	}

	if src.paused {
		src.paused = false
		src.send(EventPlaying)
	}

	return nil
}

// Pause implements the Source interface.
func (src *Synthetic) Pause() error {
	if src.closed || src.paused {
		return nil
	}
	src.paused = true
	src.send(EventPaused)
	return nil
}

// Close implements the Source interface.
func (src *Synthetic) Close() error {
	src.closed = true
	src.paused = true
	src.frame = nil
	return nil
}

var (
	backdrop = color.RGBA{R: 0x10, G: 0xe0, B: 0x20, A: 0xff}
	subject  = color.RGBA{R: 0xd0, G: 0x90, B: 0x70, A: 0xff}
	spill    = color.RGBA{R: 0xa0, G: 0xc0, B: 0x70, A: 0xff}
)

// generate the next frame. the subject is a disc with a spill coloured rim
// that moves horizontally with each frame
func (src *Synthetic) generate() {
	img := image.NewRGBA(image.Rect(0, 0, src.width, src.height))

	r := min(src.width, src.height) / 4
	cx := r + (src.seq*4)%max(1, src.width-r*2)
	cy := src.height / 2

	for y := range src.height {
		for x := range src.width {
			dx := x - cx
			dy := y - cy
			d := dx*dx + dy*dy
			switch {
			case d < (r-2)*(r-2):
				img.SetRGBA(x, y, subject)
			case d < r*r:
				img.SetRGBA(x, y, spill)
			default:
				img.SetRGBA(x, y, backdrop)
			}
		}
	}

	src.frame = img
	src.seq++
}
