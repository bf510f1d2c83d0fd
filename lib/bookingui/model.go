// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/busline-travel/busline/lib/booking"
	"github.com/busline-travel/busline/lib/busapi"
	"github.com/busline-travel/busline/lib/tui"
)

// Tab identifies which view of the booking screen is active.
type Tab int

const (
	// TabSeats shows the seat map.
	TabSeats Tab = iota
	// TabPassengers shows the passenger roster form.
	TabPassengers
)

// seatsPerRow is the bus cabin layout: two seats, an aisle, two seats.
const seatsPerRow = 4

// rosterChromeLines is the fixed vertical space around the passenger
// table: two header lines, the tab bar, the separator, the status
// line, and the help line.
const rosterChromeLines = 6

// scheduleLoadedMsg is sent when the initial schedule and seat
// inventory fetch completes.
type scheduleLoadedMsg struct {
	err error
}

// submitResultMsg is sent when an asynchronous create-booking call
// completes. The session resolves it into a notification via
// FinishSubmit.
type submitResultMsg struct {
	created busapi.Booking
	err     error
}

// Model is the top-level bubbletea model for the booking screen.
type Model struct {
	session *booking.Session
	theme   tui.Theme
	keys    KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Load state. Until loaded is true the session has no seat
	// inventory and all input except quit is ignored.
	loaded    bool
	loadError error

	// Active tab and seat map cursor (index into the session's seat
	// slice; seat number is index+1).
	activeTab  Tab
	seatCursor int

	// Roster form state. rosterRow is the passenger index, rosterField
	// the focused column. editBuffer is the rune buffer for inline
	// cell editing; nil when not editing.
	rosterRow   int
	rosterField booking.Field
	editBuffer  []rune
	editCursor  int

	// rosterView scrolls the passenger table when it outgrows the
	// window. Its content is re-rendered after every update that can
	// change the roster.
	rosterView viewport.Model
}

// NewModel creates a Model for the given booking session. The session
// must not have been loaded yet: Init issues the load and the model
// ignores input until it completes.
func NewModel(session *booking.Session) Model {
	return Model{
		session: session,
		theme:   tui.DefaultTheme,
		keys:    DefaultKeyMap,
	}
}

// Init implements tea.Model. Starts the schedule and seat inventory
// fetch. The model does not touch the session until the load result
// arrives, so the fetch goroutine has the session to itself.
func (model Model) Init() tea.Cmd {
	session := model.session
	return func() tea.Msg {
		return scheduleLoadedMsg{err: session.Load(context.Background())}
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// active tab, edit state, and any open notification modal.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.rosterView.Width = message.Width
		model.rosterView.Height = max(message.Height-rosterChromeLines, 1)

	case scheduleLoadedMsg:
		if message.err != nil {
			model.loadError = message.err
			return model, nil
		}
		model.loaded = true
		model.seatCursor = model.firstOpenSeat()

	case submitResultMsg:
		model.session.FinishSubmit(message.created, message.err)

	case tea.KeyMsg:
		updated, command := model.handleKey(message)
		updated.syncRosterView()
		return updated, command
	}
	model.syncRosterView()
	return model, nil
}

// handleKey routes a key press. The notification modal, when open,
// captures all input. Inline cell editing captures all input next.
// Everything else dispatches by tab.
func (model Model) handleKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if model.loadError != nil {
		// Load failed: any key exits.
		return model, tea.Quit
	}

	if model.session != nil && model.session.Notification() != nil {
		return model.handleModalKeys(message)
	}

	if model.editBuffer != nil {
		return model.handleEditKeys(message)
	}

	if !model.loaded {
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.TabSeats):
		model.activeTab = TabSeats

	case key.Matches(message, model.keys.TabPassengers):
		model.activeTab = TabPassengers
		model.clampRosterCursor()

	case key.Matches(message, model.keys.TabToggle):
		if model.activeTab == TabSeats {
			model.activeTab = TabPassengers
			model.clampRosterCursor()
		} else {
			model.activeTab = TabSeats
		}

	case key.Matches(message, model.keys.Submit):
		return model.beginSubmit()

	default:
		if model.activeTab == TabSeats {
			model.handleSeatKeys(message)
		} else {
			return model.handleRosterKeys(message)
		}
	}

	return model, nil
}

// beginSubmit validates through the session and, when a payload comes
// back, runs the create-booking call as a background command. A nil
// payload means the session already raised a validation warning or a
// submission is in flight; either way there is nothing to run.
func (model Model) beginSubmit() (Model, tea.Cmd) {
	payload := model.session.BeginSubmit()
	if payload == nil {
		return model, nil
	}
	provider := model.session.Provider()
	return model, func() tea.Msg {
		created, err := provider.CreateBooking(context.Background(), *payload)
		return submitResultMsg{created: created, err: err}
	}
}

// handleModalKeys processes input while a notification modal is open.
// Enter, Space, Escape, and q all dismiss it. Dismissing the success
// modal ends the session and quits the program.
func (model Model) handleModalKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	switch message.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyEscape:
	case tea.KeyRunes:
		if string(message.Runes) != "q" {
			return model, nil
		}
	default:
		return model, nil
	}
	if model.session.DismissNotification() {
		return model, tea.Quit
	}
	return model, nil
}

// handleSeatKeys moves the seat map cursor and toggles selection. The
// cursor walks a grid of seatsPerRow columns; toggling a booked seat
// is rejected by the session and simply has no effect.
func (model *Model) handleSeatKeys(message tea.KeyMsg) {
	seatCount := len(model.session.Seats())
	if seatCount == 0 {
		return
	}

	switch {
	case key.Matches(message, model.keys.Up):
		if model.seatCursor-seatsPerRow >= 0 {
			model.seatCursor -= seatsPerRow
		}

	case key.Matches(message, model.keys.Down):
		if model.seatCursor+seatsPerRow < seatCount {
			model.seatCursor += seatsPerRow
		}

	case key.Matches(message, model.keys.Left):
		if model.seatCursor%seatsPerRow > 0 {
			model.seatCursor--
		}

	case key.Matches(message, model.keys.Right):
		if model.seatCursor%seatsPerRow < seatsPerRow-1 && model.seatCursor+1 < seatCount {
			model.seatCursor++
		}

	case key.Matches(message, model.keys.Toggle):
		model.session.ToggleSeat(model.seatCursor + 1)
		model.clampRosterCursor()
	}
}

// handleRosterKeys moves the roster cell cursor and starts inline
// editing. Navigation clamps to the current roster size; the roster
// itself only changes through seat toggles.
func (model Model) handleRosterKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	passengers := model.session.Passengers()
	if len(passengers) == 0 {
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Up):
		if model.rosterRow > 0 {
			model.rosterRow--
		}

	case key.Matches(message, model.keys.Down):
		if model.rosterRow < len(passengers)-1 {
			model.rosterRow++
		}

	case key.Matches(message, model.keys.Left):
		if model.rosterField > booking.FieldName {
			model.rosterField--
		}

	case key.Matches(message, model.keys.Right):
		if model.rosterField < booking.FieldGender {
			model.rosterField++
		}

	case key.Matches(message, model.keys.Edit):
		// Seed the buffer from the stored value. The buffer must be
		// non-nil even for an empty cell: nil means "not editing".
		seed := model.focusedCellValue(passengers)
		model.editBuffer = make([]rune, 0, len(seed)+16)
		model.editBuffer = append(model.editBuffer, []rune(seed)...)
		model.editCursor = len(model.editBuffer)
	}

	return model, nil
}

// handleEditKeys processes keyboard input during inline cell editing.
// Regular characters are inserted at the cursor. Backspace deletes
// behind the cursor. Left/right move the cursor. Home/end jump to the
// start/end. Enter commits the value to the session. Escape cancels
// and keeps the stored value.
func (model Model) handleEditKeys(message tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEscape:
		model.editBuffer = nil
		model.editCursor = 0

	case message.Type == tea.KeyEnter:
		value := strings.TrimSpace(string(model.editBuffer))
		model.editBuffer = nil
		model.editCursor = 0
		model.session.UpdateField(model.rosterRow, model.rosterField, value)

	case message.Type == tea.KeyBackspace:
		if model.editCursor > 0 {
			model.editBuffer = append(
				model.editBuffer[:model.editCursor-1],
				model.editBuffer[model.editCursor:]...)
			model.editCursor--
		}

	case message.Type == tea.KeyDelete:
		if model.editCursor < len(model.editBuffer) {
			model.editBuffer = append(
				model.editBuffer[:model.editCursor],
				model.editBuffer[model.editCursor+1:]...)
		}

	case message.Type == tea.KeyLeft:
		if model.editCursor > 0 {
			model.editCursor--
		}

	case message.Type == tea.KeyRight:
		if model.editCursor < len(model.editBuffer) {
			model.editCursor++
		}

	case message.Type == tea.KeyHome || message.Type == tea.KeyCtrlA:
		model.editCursor = 0

	case message.Type == tea.KeyEnd || message.Type == tea.KeyCtrlE:
		model.editCursor = len(model.editBuffer)

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			// Insert at cursor position.
			model.editBuffer = append(model.editBuffer, 0)
			copy(model.editBuffer[model.editCursor+1:], model.editBuffer[model.editCursor:])
			model.editBuffer[model.editCursor] = character
			model.editCursor++
		}
	}

	return model, nil
}

// focusedCellValue returns the stored value of the roster cell under
// the cursor, as the edit buffer seed. A zero age seeds empty rather
// than "0" so the placeholder doesn't need deleting first.
func (model Model) focusedCellValue(passengers []busapi.Passenger) string {
	passenger := passengers[model.rosterRow]
	switch model.rosterField {
	case booking.FieldName:
		return passenger.PassengerName
	case booking.FieldAge:
		if passenger.Age <= 0 {
			return ""
		}
		return strconv.Itoa(passenger.Age)
	default:
		return passenger.Gender
	}
}

// clampRosterCursor keeps the roster row cursor valid after the
// roster shrinks (a seat deselection dropped its entry).
func (model *Model) clampRosterCursor() {
	count := len(model.session.Passengers())
	if count == 0 {
		model.rosterRow = 0
		return
	}
	if model.rosterRow >= count {
		model.rosterRow = count - 1
	}
}

// firstOpenSeat returns the index of the first seat that is not
// already booked, so the cursor starts somewhere actionable. Falls
// back to 0 on a fully booked bus.
func (model Model) firstOpenSeat() int {
	for index, seat := range model.session.Seats() {
		if !seat.IsBooked {
			return index
		}
	}
	return 0
}
