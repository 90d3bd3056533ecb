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

// Package paths prepares paths to chromakey resources, such as the
// preferences file.
//
// The ResourcePath() function joins the supplied resource to the base
// resource directory. For example, the following returns the path to the
// preferences file:
//
//	p, err := paths.ResourcePath("", "preferences")
//
// If a directory named ".chromakey" exists in the current directory then that
// is the base resource directory. Otherwise the base is a "chromakey"
// directory in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path in the example above
// would be:
//
//	/home/user/.config/chromakey/preferences
//
// The directory part of the resource is created if it does not exist.
package paths
