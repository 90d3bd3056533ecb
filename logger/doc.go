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

// Package logger is the central log for the application. All packages log to
// the same place and the log can be written to any io.Writer on request. New
// entries can also be echoed as they arrive, which is how the -log flag on the
// command line is implemented.
//
// Every entry has a tag and a detail. The tag is normally the name of the
// package making the log entry, with an optional qualifier. For example, log
// entries about a render session are tagged with the session ID:
//
//	logger.Logf(logger.Allow, "lifecycle", "session %s: started", id)
//
// Log entries that repeat the previous entry exactly are not added to the log.
// Instead, the previous entry is marked as having been repeated.
//
// The Permission interface allows a caller to decide at the point of logging
// whether the entry should be made. The Allow value is always permitted.
package logger
