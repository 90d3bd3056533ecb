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

package gui

import (
	"github.com/jetsetilly/chromakey/config"
)

// Action is a request made by the user with the keyboard.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionTogglePause
	ActionSimilarityUp
	ActionSimilarityDown
	ActionBlendUp
	ActionBlendDown
	ActionToggleDespill
	ActionToggleLoop
	ActionSavePrefs
	ActionScreenshot
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionTogglePause:
		return "toggle pause"
	case ActionSimilarityUp:
		return "similarity up"
	case ActionSimilarityDown:
		return "similarity down"
	case ActionBlendUp:
		return "blend up"
	case ActionBlendDown:
		return "blend down"
	case ActionToggleDespill:
		return "toggle despill"
	case ActionToggleLoop:
		return "toggle loop"
	case ActionSavePrefs:
		return "save preferences"
	case ActionScreenshot:
		return "screenshot"
	case ActionQuit:
		return "quit"
	}
	return "unknown action"
}

// the amount similarity and blend change with each key press
const nudge = 0.01

// ActionForKey returns the action for a key event. Key releases and
// unrecognised keys return ActionNone. Modifiers are ignored.
func ActionForKey(ev EventDataKeyboard) Action {
	if !ev.Down {
		return ActionNone
	}

	switch ev.Key {
	case "Space":
		return ActionTogglePause
	case "Up":
		return ActionSimilarityUp
	case "Down":
		return ActionSimilarityDown
	case "Right":
		return ActionBlendUp
	case "Left":
		return ActionBlendDown
	case "D":
		return ActionToggleDespill
	case "L":
		return ActionToggleLoop
	case "S":
		return ActionSavePrefs
	case "F12":
		return ActionScreenshot
	case "Escape", "Q":
		return ActionQuit
	}

	return ActionNone
}

// Configure returns the configuration that results from the action. The
// boolean is false if the action does not change the configuration.
func (a Action) Configure(cfg config.Configuration) (config.Configuration, bool) {
	switch a {
	case ActionSimilarityUp:
		cfg = cfg.Nudge(nudge, 0)
	case ActionSimilarityDown:
		cfg = cfg.Nudge(-nudge, 0)
	case ActionBlendUp:
		cfg = cfg.Nudge(0, nudge)
	case ActionBlendDown:
		cfg = cfg.Nudge(0, -nudge)
	case ActionToggleDespill:
		cfg.Despill = !cfg.Despill
	case ActionToggleLoop:
		cfg.Loop = !cfg.Loop
	default:
		return cfg, false
	}
	return cfg, true
}
