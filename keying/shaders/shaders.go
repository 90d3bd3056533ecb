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

package shaders

import _ "embed"

// Version is the GLSL version required by the shaders in this package. It
// matches the #version directive at the head of each source file.
const Version = "150"

//go:embed "keying.vert"
var KeyingVertexShader []byte

//go:embed "keying.frag"
var KeyingFragShader []byte
