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

// Package refresh implements one-shot callbacks that are run once per display
// refresh. The host calls Run() once per refresh, after which it presents the
// frame. Callbacks requested while Run() is in progress are deferred until
// the next call to Run(), which is what allows a callback to reschedule
// itself without running forever.
//
// A requested callback can be cancelled with the Handle returned by
// Request(). A cancelled callback is removed from the queue and will never
// run, even if it was cancelled by another callback during the same call to
// Run().
//
// Queue is not safe for concurrent use. It is intended to be used from the
// main thread only.
package refresh
