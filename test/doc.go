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

// Package test bundles a number of functions that are useful for testing
// purposes. The functions are intended to be used with the standard go test
// harness.
//
// The Expect*() functions report a failure with t.Errorf() and return whether
// the expectation was met. Testing continues after a failed expectation.
//
// The Writer type can be used to capture output from functions that write to
// an io.Writer. The Compare() function tests the captured output for equality
// with a string.
package test
