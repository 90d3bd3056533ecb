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

// Package modalflag handles command line arguments for programs with more
// than one mode of operation. Each mode can have its own set of flags. It
// wraps the flag package of the standard library.
//
// Arguments are given to a Modes instance with NewArgs() and are then
// processed with Parse(). Non-flag arguments are retrieved with
// RemainingArgs() or GetArg().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "STILL", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		loop := md.AddBool("loop", true, "loop playback")
//		...
//	}
//
// The first sub-mode added is the default mode. The default mode is selected
// if the next argument is not the name of a sub-mode. Sub-mode names are case
// insensitive.
//
// Calling NewMode() discards the flags and sub-modes of the previous level.
// The arguments that have not yet been consumed are parsed on the next call
// to Parse().
//
// Help is printed to the Output writer when the -help or -h flag is
// encountered. Parse() returns ParseHelp in that case.
package modalflag
