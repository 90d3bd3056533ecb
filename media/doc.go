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

// Package media provides the source of video frames for the keyer. The Source
// interface is implemented by GStreamer, which decodes real media files and
// streams, and by Synthetic, which generates a test pattern.
//
// Sources report changes in their state through the channel returned by
// Events(). The events are sent from whichever goroutine notices the change,
// which for the GStreamer implementation is a goroutine started by the source
// or a thread owned by GStreamer. Consumers should drain the channel
// synchronously from the thread that uses the source.
//
// The Paused() and Ended() functions are safe to call from any goroutine and
// return the state of the source at the time of the call.
//
// The Open() function chooses the implementation according to the locator.
// Locators that begin with "synthetic:" create a Synthetic source, for
// example:
//
//	synthetic:640x480
//
// All other locators are handled by GStreamer. A locator without a URI scheme
// is treated as a filename.
package media
