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
	"image"
	"strings"
)

// PlaybackStartFailure is the pattern for errors returned by Play() when
// playback cannot begin.
const PlaybackStartFailure = "playback start failure: %v"

// SourceFailure is the pattern for errors returned when a source cannot be
// opened.
const SourceFailure = "media: %v"

// Event is a change in the state of a Source.
type Event int

// List of valid Event values.
const (
	// the first frame has been decoded. sent only once per source
	EventLoaded Event = iota

	// playback has begun or has resumed
	EventPlaying

	// playback has been paused
	EventPaused

	// playback has reached the end of the media and is not looping
	EventEnded

	// the source has encountered an error. the error will have been logged
	EventError
)

func (ev Event) String() string {
	switch ev {
	case EventLoaded:
		return "loaded"
	case EventPlaying:
		return "playing"
	case EventPaused:
		return "paused"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	}
	return "unknown event"
}

// Source is a supplier of decoded video frames.
type Source interface {
	// Events returns the channel on which state changes are sent.
	Events() <-chan Event

	// Frame returns the most recently decoded frame. Returns nil if no frame
	// has been decoded. The dimensions of the frame are the native dimensions
	// of the media at that point in the stream. The returned image must not
	// be modified.
	Frame() *image.RGBA

	Paused() bool
	Ended() bool

	// Play starts or resumes playback. Errors match the PlaybackStartFailure
	// pattern.
	Play() error

	// Pause playback. Pausing a source that is already paused does nothing.
	Pause() error

	// Close releases the media bound to the source. The source cannot be used
	// after it has been closed.
	Close() error
}

// the number of events that can be queued before the consumer drains them
const eventQueueLen = 32

// Open creates a Source for the locator.
func Open(locator string, loop bool) (Source, error) {
	if strings.HasPrefix(locator, syntheticPrefix) {
		return ParseSynthetic(locator, loop)
	}
	return NewGStreamer(locator, loop)
}
