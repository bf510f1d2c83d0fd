// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for Busline's terminal UIs. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Seat map states.
	SeatAvailable lipgloss.Color
	SeatSelected  lipgloss.Color
	SeatBooked    lipgloss.Color

	// Cursor highlight on the seat under the keyboard cursor and the
	// focused form cell.
	CursorBackground lipgloss.Color
	CursorForeground lipgloss.Color

	// Notification kinds.
	SuccessAccent lipgloss.Color
	ErrorAccent   lipgloss.Color
	WarningAccent lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Modal box interior.
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SeatAvailable: lipgloss.Color("114"), // green
	SeatSelected:  lipgloss.Color("220"), // amber
	SeatBooked:    lipgloss.Color("240"), // dim gray

	CursorBackground: lipgloss.Color("236"),
	CursorForeground: lipgloss.Color("255"),

	SuccessAccent: lipgloss.Color("114"),
	ErrorAccent:   lipgloss.Color("196"),
	WarningAccent: lipgloss.Color("208"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("235"),
}
