// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/busline-travel/busline/lib/booking"
	"github.com/busline-travel/busline/lib/tui"
)

// modalWidth is the interior width of the notification modal box.
const modalWidth = 44

// lipRenderer pins the ANSI256 color profile: this output is always
// for terminal display, so auto-detection (which produces uncolored
// output in test environments with no TTY) is bypassed.
// SetColorProfile is required because lipgloss.Renderer.ColorProfile()
// ignores the termenv.Output profile and re-detects from the
// environment unless the explicit profile is set.
var lipRenderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer
}

// View implements tea.Model. Renders the full booking screen and, when
// a notification is active, splices its modal over the center.
func (model Model) View() string {
	if model.loadError != nil {
		return fmt.Sprintf("Could not load schedule: %v\n\nPress any key to exit.\n", model.loadError)
	}
	if !model.ready || !model.loaded {
		return "Loading schedule..."
	}

	var sections []string
	sections = append(sections, model.renderHeader())
	sections = append(sections, model.renderTabBar())

	if model.activeTab == TabSeats {
		sections = append(sections, model.renderSeatMap())
	} else {
		sections = append(sections, model.rosterView.View())
	}

	separator := lipRenderer.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", max(model.width, 1)))
	sections = append(sections, separator)
	sections = append(sections, model.renderStatus())
	sections = append(sections, model.renderHelp())

	output := strings.Join(sections, "\n")

	if notification := model.session.Notification(); notification != nil {
		modalLines := model.renderModal(notification)
		output = tui.CenterOverlay(output, modalLines, model.width, model.height)
	}

	return output
}

// renderHeader shows the schedule being booked: bus, route date, and
// departure/arrival times.
func (model Model) renderHeader() string {
	schedule := model.session.Schedule()

	titleStyle := lipRenderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	faintStyle := lipRenderer.NewStyle().Foreground(model.theme.FaintText)

	title := titleStyle.Render(schedule.BusName)
	if schedule.BusVehicleNo != "" {
		title += faintStyle.Render(" · " + schedule.BusVehicleNo)
	}

	detail := faintStyle.Render(fmt.Sprintf("%s   %s → %s   ₦%s per seat",
		schedule.ScheduleDate,
		schedule.DepartureTime,
		schedule.ArrivalTime,
		strconv.FormatFloat(schedule.Price, 'f', -1, 64),
	))

	return title + "\n" + detail
}

// renderTabBar shows the two tabs with the active one highlighted.
func (model Model) renderTabBar() string {
	activeStyle := lipRenderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Underline(true)
	inactiveStyle := lipRenderer.NewStyle().Foreground(model.theme.FaintText)

	seats := "[1] Seats"
	passengers := "[2] Passengers"
	if model.activeTab == TabSeats {
		seats = activeStyle.Render(seats)
		passengers = inactiveStyle.Render(passengers)
	} else {
		seats = inactiveStyle.Render(seats)
		passengers = activeStyle.Render(passengers)
	}
	return seats + "   " + passengers
}

// renderSeatMap draws the cabin grid: rows of two seats, an aisle,
// and two seats, with a legend underneath.
func (model Model) renderSeatMap() string {
	seats := model.session.Seats()

	var rows []string
	for start := 0; start < len(seats); start += seatsPerRow {
		var cells []string
		for offset := 0; offset < seatsPerRow && start+offset < len(seats); offset++ {
			index := start + offset
			cells = append(cells, model.renderSeatCell(seats[index], index))
			// Aisle gap after the second seat.
			if offset == seatsPerRow/2-1 {
				cells = append(cells, "  ")
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	legend := lipRenderer.NewStyle().Foreground(model.theme.HelpText).Render("  ") +
		lipRenderer.NewStyle().Foreground(model.theme.SeatAvailable).Render("available") +
		lipRenderer.NewStyle().Foreground(model.theme.HelpText).Render("  ") +
		lipRenderer.NewStyle().Foreground(model.theme.SeatSelected).Render("selected") +
		lipRenderer.NewStyle().Foreground(model.theme.HelpText).Render("  ") +
		lipRenderer.NewStyle().Foreground(model.theme.SeatBooked).Render("booked")

	return strings.Join(rows, "\n") + "\n\n" + legend
}

// renderSeatCell draws one seat as a bracketed number styled by state.
// The cursor highlight takes priority over the seat state color.
func (model Model) renderSeatCell(seat booking.Seat, index int) string {
	label := fmt.Sprintf("[%2d]", seat.SeatNumber)

	if index == model.seatCursor {
		return lipRenderer.NewStyle().
			Foreground(model.theme.CursorForeground).
			Background(model.theme.CursorBackground).
			Bold(true).
			Render(label)
	}

	var color lipgloss.Color
	switch {
	case seat.IsBooked:
		color = model.theme.SeatBooked
	case seat.IsSelected:
		color = model.theme.SeatSelected
	default:
		color = model.theme.SeatAvailable
	}
	style := lipRenderer.NewStyle().Foreground(color)
	if seat.IsSelected {
		style = style.Bold(true)
	}
	return style.Render(label)
}

// syncRosterView re-renders the passenger table into the scroll
// viewport and keeps the focused row in view. The table is small
// enough to rebuild wholesale on every update.
func (model *Model) syncRosterView() {
	if !model.loaded {
		return
	}
	model.rosterView.SetContent(model.renderRoster())

	// The column header occupies line zero, so the focused row sits
	// one line below its index.
	line := model.rosterRow + 1
	switch {
	case line < model.rosterView.YOffset:
		model.rosterView.SetYOffset(line)
	case line >= model.rosterView.YOffset+model.rosterView.Height:
		model.rosterView.SetYOffset(line - model.rosterView.Height + 1)
	}
}

// renderRoster draws the passenger form as a table with one row per
// selected seat. The focused cell is highlighted; a cell being edited
// shows the edit buffer with a visible cursor.
func (model Model) renderRoster() string {
	passengers := model.session.Passengers()
	if len(passengers) == 0 {
		return lipRenderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No seats selected. Switch to the seat map with 1 and pick your seats.")
	}

	headerStyle := lipRenderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	header := headerStyle.Render(fmt.Sprintf("%-6s %-22s %-5s %-8s", "Seat", "Name", "Age", "Gender"))

	rows := []string{header}
	for rowIndex, passenger := range passengers {
		age := ""
		if passenger.Age > 0 {
			age = strconv.Itoa(passenger.Age)
		}
		cells := []string{
			fmt.Sprintf("%-6d", passenger.SeatNo),
			model.renderRosterCell(passenger.PassengerName, 22, rowIndex, booking.FieldName),
			model.renderRosterCell(age, 5, rowIndex, booking.FieldAge),
			model.renderRosterCell(passenger.Gender, 8, rowIndex, booking.FieldGender),
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return strings.Join(rows, "\n")
}

// renderRosterCell draws one form cell padded to the column width.
// The focused cell gets the cursor highlight; during editing it shows
// the live buffer with a block cursor instead of the stored value.
func (model Model) renderRosterCell(value string, width, rowIndex int, field booking.Field) string {
	focused := rowIndex == model.rosterRow && field == model.rosterField

	if focused && model.editBuffer != nil {
		return model.renderEditBuffer(width)
	}

	padded := fmt.Sprintf("%-*s", width, value)
	if !focused {
		return lipRenderer.NewStyle().Foreground(model.theme.NormalText).Render(padded)
	}
	return lipRenderer.NewStyle().
		Foreground(model.theme.CursorForeground).
		Background(model.theme.CursorBackground).
		Render(padded)
}

// renderEditBuffer draws the in-progress edit with a reverse-video
// cursor, padded to the cell width.
func (model Model) renderEditBuffer(width int) string {
	buffer := model.editBuffer
	cursorStyle := lipRenderer.NewStyle().Reverse(true)
	editStyle := lipRenderer.NewStyle().
		Foreground(model.theme.CursorForeground).
		Background(model.theme.CursorBackground)

	before := string(buffer[:model.editCursor])
	var under, after string
	if model.editCursor < len(buffer) {
		under = string(buffer[model.editCursor])
		after = string(buffer[model.editCursor+1:])
	} else {
		under = " "
	}

	padding := width - len([]rune(before)) - len([]rune(under)) - len([]rune(after))
	if padding < 0 {
		padding = 0
	}
	return editStyle.Render(before) +
		cursorStyle.Render(under) +
		editStyle.Render(after+strings.Repeat(" ", padding))
}

// renderStatus shows the current selection and total, or the
// in-flight indicator while a submission is running.
func (model Model) renderStatus() string {
	if model.session.Submitting() {
		return lipRenderer.NewStyle().
			Foreground(model.theme.WarningAccent).
			Render("Submitting booking...")
	}

	selected := model.session.SelectedSeats()
	if len(selected) == 0 {
		return lipRenderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No seats selected")
	}

	numbers := make([]string, 0, len(selected))
	for _, seat := range selected {
		numbers = append(numbers, strconv.Itoa(seat.SeatNumber))
	}
	return lipRenderer.NewStyle().Foreground(model.theme.NormalText).Render(
		fmt.Sprintf("Seats: %s   Total: ₦%s",
			strings.Join(numbers, ", "),
			strconv.FormatFloat(model.session.Total(), 'f', -1, 64)))
}

// renderHelp shows the key bindings for the active tab.
func (model Model) renderHelp() string {
	helpStyle := lipRenderer.NewStyle().Foreground(model.theme.HelpText)
	if model.activeTab == TabSeats {
		return helpStyle.Render("↑↓←→ move · Space toggle · Tab passengers · s book · q quit")
	}
	return helpStyle.Render("↑↓←→ move · Enter edit · Tab seats · s book · q quit")
}

// renderModal builds the notification modal box as a slice of lines
// for overlay splicing.
func (model Model) renderModal(notification *booking.Notification) []string {
	var accent lipgloss.Color
	switch notification.Kind {
	case booking.NotificationSuccess:
		accent = model.theme.SuccessAccent
	case booking.NotificationError:
		accent = model.theme.ErrorAccent
	default:
		accent = model.theme.WarningAccent
	}

	interior := modalWidth
	if model.width > 0 && interior > model.width-6 {
		interior = model.width - 6
	}
	if interior < 20 {
		interior = 20
	}

	titleStyle := lipRenderer.NewStyle().Foreground(accent).Bold(true).Width(interior)
	bodyStyle := lipRenderer.NewStyle().Foreground(model.theme.ModalForeground).Width(interior)
	faintStyle := lipRenderer.NewStyle().Foreground(model.theme.FaintText).Width(interior)

	var content []string
	content = append(content, titleStyle.Render(notification.Title))
	content = append(content, "")
	content = append(content, strings.Split(bodyStyle.Render(notification.Message), "\n")...)
	if len(notification.Details) > 0 {
		content = append(content, "")
		for _, detail := range notification.Details {
			content = append(content, strings.Split(bodyStyle.Render(detail), "\n")...)
		}
	}
	content = append(content, "")
	content = append(content, faintStyle.Render("Press Enter to continue"))

	box := lipRenderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(strings.Join(content, "\n"))

	return strings.Split(box, "\n")
}
