// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the busline CLI command tree.
package commands

import (
	"fmt"

	"github.com/busline-travel/busline/cmd/busline/cli"
	"github.com/busline-travel/busline/lib/version"
)

// Root builds and returns the complete busline CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "busline",
		Description: `Busline: book bus tickets from the terminal.

Search schedules, pick seats on an interactive seat map, and manage
your bookings against the Busline booking service.`,
		Subcommands: []*cli.Command{
			searchCommand(),
			locationsCommand(),
			bookCommand(),
			bookingsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("busline %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "List boarding locations",
				Command:     "busline locations",
			},
			{
				Description: "Search schedules for a route and date",
				Command:     "busline search 'Port Harcourt' Abuja 2026-09-01",
			},
			{
				Description: "Open the seat map for schedule 17",
				Command:     "busline book 17",
			},
			{
				Description: "Show your bookings",
				Command:     "busline bookings list",
			},
			{
				Description: "Cancel a booking without the confirmation prompt",
				Command:     "busline bookings cancel 981 --yes",
			},
		},
	}
}
