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

// Package sdlwindow is the host environment for the PLAY mode. It opens an
// SDL window with an OpenGL 3.2 core context and implements the
// lifecycle.Factory interface, so that keying sessions render into the
// window.
//
// The window is serviced by calling Service() repeatedly from the main
// thread. Each call handles pending SDL events, runs the refresh callbacks
// requested since the previous call and swaps the window buffers. When the
// swap interval can be set to the vertical retrace, the buffer swap paces the
// calls to Service(). Otherwise a ticker running at the refresh rate of the
// display is used.
//
// The window is resized to the dimensions of the media frames. The window is
// hidden until the first frame is drawn.
package sdlwindow
