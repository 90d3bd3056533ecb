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

// Package keying defines the color keying algorithm. The algorithm runs on
// the GPU as the fragment shader found in the shaders sub-package. This
// package contains the parameters for that shader and a CPU implementation of
// the same arithmetic.
//
// The CPU implementation is the reference for how the shader behaves and is
// used directly when keying still images. Any change to the shader must be
// reflected here and vice versa.
//
// For a pixel, the keying algorithm looks at the channel that dominates the
// key color. How much that channel exceeds the average of the other two
// channels, relative to its own magnitude, is the "dominance" of the pixel.
// Pixels with a dominance greater than the similarity threshold are keyed out
// completely. Pixels with a dominance in the band immediately below the
// similarity threshold are partially transparent.
//
// Pixels that are too dark or too unsaturated are never keyed, regardless of
// dominance.
//
// Spill suppression reduces the value of the dominant channel in pixels that
// remain visible, removing the tint cast by the backdrop onto the subject.
package keying
