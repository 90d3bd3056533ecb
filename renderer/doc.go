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

// Package renderer draws keyed media frames with OpenGL 3.2 core. A Renderer
// owns the GPU resources for one keying session: the shader program, the
// vertex array and buffer for the quad covering the viewport, and the texture
// that frames are uploaded to.
//
// All functions must be called on the goroutine that owns the GL context.
package renderer
