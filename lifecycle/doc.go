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

// Package lifecycle ties the resources of a keying session to a
// configuration. A session is made up of a renderer, a media source and the
// scheduler that draws the frames of the source with the renderer.
//
// The Manager type creates a new session whenever a configuration is applied
// that differs from the current one. The previous session is always torn down
// completely before the new session is created. The order of teardown is:
//
//	the outstanding refresh callback is cancelled
//	the media source is paused
//	the media source is closed
//	the GPU resources are destroyed
//
// Resources are created with a Factory, which is implemented by the host
// environment.
package lifecycle
