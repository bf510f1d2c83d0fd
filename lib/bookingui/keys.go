// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the booking screen.
type KeyMap struct {
	// Navigation (context-sensitive: seat map cursor or roster cell
	// depending on the active tab).
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Seat map.
	Toggle key.Binding // Select or deselect the seat under the cursor.

	// Roster.
	Edit key.Binding // Start editing the focused passenger cell.

	// Tab switching.
	TabSeats      key.Binding
	TabPassengers key.Binding
	TabToggle     key.Binding

	// Submission.
	Submit key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (h/j/k/l) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "toggle seat"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "i"),
		key.WithHelp("Enter", "edit field"),
	),
	TabSeats: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "seats"),
	),
	TabPassengers: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "passengers"),
	),
	TabToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch tab"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "book"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
