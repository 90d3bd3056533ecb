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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which looks like its namesake in the fmt package. The
// difference is that the formatting pattern is retained and can be used to
// identify the error later on.
//
// The patterns used by the chromakey packages are exported as constants by
// the package that raises the error. For example, the colormodel package
// exports InvalidColorSpec:
//
//	_, err := colormodel.Parse("#00ff")
//	if curated.Is(err, colormodel.InvalidColorSpec) {
//		fmt.Println("bad color")
//	}
//
// The Has() function is similar to Is() but looks for the pattern anywhere in
// the error chain. This is useful when an error has been wrapped by another
// curated error:
//
//	err := curated.Errorf("lifecycle: %v", renderErr)
//	if curated.Has(err, renderer.ShaderCompileFailure) {
//		...
//	}
//
// Curated errors also implement Unwrap() so they cooperate with errors.Is()
// and errors.As() from the standard library. The unwrapped error is the first
// placeholder value that is itself an error.
//
// The Error() function de-duplicates adjacent parts of the message. Wrapping
// an error with a pattern that begins with the same prefix as the wrapped
// error ("renderer: %v" around "renderer: shader compile failure") does not
// produce a repeated prefix in the final message.
package curated
