// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/busline-travel/busline/cmd/busline/cli"
	"github.com/busline-travel/busline/lib/booking"
	"github.com/busline-travel/busline/lib/bookingui"
	"github.com/busline-travel/busline/lib/clock"
)

// bookCommand returns the "book" subcommand that launches the
// interactive seat selection TUI for one schedule.
func bookCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "book",
		Summary: "Open the interactive booking screen",
		Description: `Open the seat map for a schedule and walk through a booking: pick
seats, fill in passenger details, and submit. Schedule IDs come from
"busline search".

The booking is filed under the customer ID from your config file.`,
		Usage: "busline book <schedule-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Book seats on schedule 17",
				Command:     "busline book 17",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("book", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one <schedule-id> argument")
			}
			scheduleID, err := strconv.Atoi(args[0])
			if err != nil || scheduleID <= 0 {
				return fmt.Errorf("invalid schedule ID %q", args[0])
			}

			client, cfg, logger, err := newClient(configPath, "book")
			if err != nil {
				return err
			}

			session := booking.NewSession(client, scheduleID, cfg.CustomerID, clock.Real(), logger)
			model := bookingui.NewModel(session)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
