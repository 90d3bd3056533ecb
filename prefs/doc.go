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

// Package prefs stores preference values and saves them to disk. Preference
// values are of type Bool, Float or String. The zero value of each type is
// ready to use.
//
// Values are associated with a key when they are added to a Disk instance.
// The Save() and Load() functions of the Disk type write and read all values
// added to the instance.
//
// The preferences file is a plain text file with one value per line:
//
//	key :: value
//
// Lines in the file for keys that have not been added to the Disk instance are
// preserved when the file is saved. In this way, more than one Disk instance
// can share the same file.
//
// Values are stored atomically and are safe to read from any goroutine.
package prefs
