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

// Package gui defines the keyboard controls of the player and the actions
// they trigger. It does not depend on any particular GUI framework. The
// gui/sdlwindow package translates SDL keyboard events to the EventDataKeyboard
// type.
//
// Actions that change the keying parameters produce a new
// config.Configuration with the Configure() function. The new configuration
// is applied by the host, which results in a complete rebuild of the keying
// session.
package gui
