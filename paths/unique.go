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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not test for this.
//
// Used to generate filenames for screenshots. Format of returned string is:
//
//	prepend_source_YYYYMMDD_HHMMSS
//
// Where source is the base name of the media locator without its extension.
// If the source is empty the returned string is of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, source string) string {
	return uniqueFilename(prepend, source, time.Now())
}

func uniqueFilename(prepend string, source string, n time.Time) string {
	timestamp := n.Format("20060102_150405")

	s := strings.TrimSpace(source)
	if s != "" {
		s = filepath.Base(s)
		s = strings.TrimSuffix(s, filepath.Ext(s))
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(`/\:*?"<>| `, r) {
				return '_'
			}
			return r
		}, s)
	}

	if s == "" || s == "." {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, s, timestamp)
}
