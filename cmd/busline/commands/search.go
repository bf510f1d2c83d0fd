// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/busline-travel/busline/cmd/busline/cli"
	"github.com/busline-travel/busline/lib/busapi"
)

// sortOrders are the accepted values for the search --sort flag.
var sortOrders = []string{"departure", "price-low", "price-high", "seats"}

// searchCommand returns the "search" subcommand: query schedules for a
// route and date, with client-side filtering and ordering.
func searchCommand() *cli.Command {
	var configPath string
	var maxPrice float64
	var minSeats int
	var sortOrder string

	return &cli.Command{
		Name:    "search",
		Summary: "Search bus schedules",
		Description: `Search schedules between two locations on a given date.

Locations are matched by name as the booking service knows them (see
"busline locations"). Results can be narrowed with --max-price and
--min-seats and ordered with --sort; both are applied locally after
the service responds.`,
		Usage: "busline search <from> <to> <date> [flags]",
		Examples: []cli.Example{
			{
				Description: "All buses from Port Harcourt to Abuja on a date",
				Command:     "busline search 'Port Harcourt' Abuja 2026-09-01",
			},
			{
				Description: "Cheapest first, at most ₦5000",
				Command:     "busline search Lagos Enugu 2026-09-01 --max-price 5000 --sort price-low",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("search", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.Float64Var(&maxPrice, "max-price", 0, "only show schedules at or below this price")
			flagSet.IntVar(&minSeats, "min-seats", 0, "only show schedules with at least this many seats free")
			flagSet.StringVar(&sortOrder, "sort", "departure", "result order: departure, price-low, price-high, seats")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected <from> <to> <date>, got %d arguments", len(args))
			}
			if !slices.Contains(sortOrders, sortOrder) {
				return fmt.Errorf("invalid --sort %q (valid: %s)", sortOrder, strings.Join(sortOrders, ", "))
			}

			client, _, _, err := newClient(configPath, "search")
			if err != nil {
				return err
			}

			results, err := client.SearchSchedules(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("search schedules: %w", err)
			}

			results = filterSchedules(results, maxPrice, minSeats)
			sortSchedules(results, sortOrder)

			if len(results) == 0 {
				fmt.Println("No schedules found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tBUS\tVENDOR\tROUTE\tDATE\tDEPART\tARRIVE\tSEATS\tPRICE")
			for _, schedule := range results {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s → %s\t%s\t%s\t%s\t%d\t₦%.0f\n",
					schedule.ScheduleID,
					schedule.BusName,
					schedule.VendorName,
					schedule.FromLocationName, schedule.ToLocationName,
					schedule.ScheduleDate,
					schedule.DepartureTime,
					schedule.ArrivalTime,
					schedule.AvailableSeats,
					schedule.Price,
				)
			}
			return writer.Flush()
		},
	}
}

// filterSchedules applies the --max-price and --min-seats filters.
// Zero values mean "no constraint".
func filterSchedules(results []busapi.ScheduleSummary, maxPrice float64, minSeats int) []busapi.ScheduleSummary {
	filtered := results[:0]
	for _, schedule := range results {
		if maxPrice > 0 && schedule.Price > maxPrice {
			continue
		}
		if minSeats > 0 && schedule.AvailableSeats < minSeats {
			continue
		}
		filtered = append(filtered, schedule)
	}
	return filtered
}

// sortSchedules orders results in place. "seats" puts the most
// available seats first; ties everywhere fall back to departure time
// so the order is stable across runs.
func sortSchedules(results []busapi.ScheduleSummary, order string) {
	byDeparture := func(a, b busapi.ScheduleSummary) int {
		return strings.Compare(a.DepartureTime, b.DepartureTime)
	}
	slices.SortStableFunc(results, func(a, b busapi.ScheduleSummary) int {
		switch order {
		case "price-low":
			if a.Price != b.Price {
				if a.Price < b.Price {
					return -1
				}
				return 1
			}
		case "price-high":
			if a.Price != b.Price {
				if a.Price > b.Price {
					return -1
				}
				return 1
			}
		case "seats":
			if a.AvailableSeats != b.AvailableSeats {
				return b.AvailableSeats - a.AvailableSeats
			}
		}
		return byDeparture(a, b)
	})
}
