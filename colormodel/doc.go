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

// Package colormodel converts key color specifications into normalised RGB
// values. A specification is six hexadecimal digits, two per channel,
// optionally prefixed with a '#' character:
//
//	key, err := colormodel.Parse("#00ff00")
//
// The resulting RGB value has each channel in the range 0.0 to 1.0.
// Specifications of any other form are rejected with an InvalidColorSpec
// error.
package colormodel
