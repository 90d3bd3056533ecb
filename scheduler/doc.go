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

// Package scheduler drives the rendering of media frames. A Scheduler runs
// once per display refresh, using a refresh.Requester to ask for the next
// tick, and is in one of two states.
//
// In the Polling state the scheduler waits for the media source to begin
// playback. Nothing is drawn. The tick that sees playback begin changes to the
// Active state and draws in the same tick.
//
// In the Active state the current frame of the media source is uploaded and
// drawn on every tick, unless the source is paused or has ended or has not yet
// decoded a frame. The scheduler never leaves the Active state. Drawing
// resumes as soon as playback resumes. Drew() reports whether the most recent
// tick drew anything.
//
// Events from the media source are drained at the start of every tick, on the
// same goroutine as the tick. The Scheduler type is not safe for concurrent
// use.
package scheduler
