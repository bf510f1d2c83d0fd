// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/busline-travel/busline/cmd/busline/cli"
	"github.com/busline-travel/busline/lib/busapi"
)

// bookingFilters are the accepted values for the bookings list
// --filter flag.
var bookingFilters = []string{"all", "upcoming", "completed"}

// bookingsCommand returns the "bookings" subcommand group.
func bookingsCommand() *cli.Command {
	return &cli.Command{
		Name:    "bookings",
		Summary: "List and cancel your bookings",
		Subcommands: []*cli.Command{
			bookingsListCommand(),
			bookingsCancelCommand(),
		},
	}
}

// bookingsListCommand lists the bookings filed under the configured
// customer ID.
func bookingsListCommand() *cli.Command {
	var configPath string
	var filter string

	return &cli.Command{
		Name:    "list",
		Summary: "List your bookings",
		Description: `List bookings filed under the configured customer ID. --filter
splits them by booking date: "upcoming" keeps bookings dated now or
later, "completed" keeps past ones.`,
		Usage: "busline bookings list [flags]",
		Examples: []cli.Example{
			{
				Description: "Only bookings that haven't happened yet",
				Command:     "busline bookings list --filter upcoming",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&filter, "filter", "all", "which bookings to show: all, upcoming, completed")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if !slices.Contains(bookingFilters, filter) {
				return fmt.Errorf("invalid --filter %q (valid: %s)", filter, strings.Join(bookingFilters, ", "))
			}

			client, cfg, _, err := newClient(configPath, "bookings/list")
			if err != nil {
				return err
			}

			bookings, err := client.ListBookings(context.Background(), cfg.CustomerID)
			if err != nil {
				return fmt.Errorf("list bookings: %w", err)
			}

			now := time.Now()
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tDATE\tSCHEDULE\tSEATS\tPASSENGERS")
			shown := 0
			for _, item := range bookings {
				if !matchesBookingFilter(item, filter, now) {
					continue
				}
				seats := make([]string, 0, len(item.Passengers))
				names := make([]string, 0, len(item.Passengers))
				for _, passenger := range item.Passengers {
					seats = append(seats, strconv.Itoa(passenger.SeatNo))
					names = append(names, passenger.PassengerName)
				}
				fmt.Fprintf(writer, "%d\t%s\t%d\t%s\t%s\n",
					item.BookingID,
					item.BookingDate,
					item.ScheduleID,
					strings.Join(seats, ","),
					strings.Join(names, ", "),
				)
				shown++
			}
			if shown == 0 {
				fmt.Println("No bookings found.")
				return nil
			}
			return writer.Flush()
		},
	}
}

// matchesBookingFilter applies the list --filter value to one booking.
// A booking date that doesn't parse counts as "all" only: it can't be
// placed on either side of now.
func matchesBookingFilter(item busapi.Booking, filter string, now time.Time) bool {
	if filter == "all" {
		return true
	}
	bookedAt, err := time.Parse(time.RFC3339, item.BookingDate)
	if err != nil {
		return false
	}
	if filter == "upcoming" {
		return !bookedAt.Before(now)
	}
	return bookedAt.Before(now)
}

// bookingsCancelCommand cancels a booking by ID, with a confirmation
// prompt unless --yes is given.
func bookingsCancelCommand() *cli.Command {
	var configPath string
	var skipConfirm bool

	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a booking",
		Description: `Cancel a booking by its ID (from "busline bookings list"). Asks for
confirmation on stdin unless --yes is given. Cancellation is
immediate and cannot be undone.`,
		Usage: "busline bookings cancel <booking-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Cancel with confirmation",
				Command:     "busline bookings cancel 981",
			},
			{
				Description: "Cancel from a script",
				Command:     "busline bookings cancel 981 --yes",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("cancel", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one <booking-id> argument")
			}
			bookingID, err := strconv.Atoi(args[0])
			if err != nil || bookingID <= 0 {
				return fmt.Errorf("invalid booking ID %q", args[0])
			}

			if !skipConfirm {
				fmt.Printf("Cancel booking #%d? This cannot be undone. [y/N] ", bookingID)
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read confirmation: %w", err)
				}
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Aborted.")
					return &cli.ExitError{Code: 1}
				}
			}

			client, _, logger, err := newClient(configPath, "bookings/cancel")
			if err != nil {
				return err
			}

			if err := client.CancelBooking(context.Background(), bookingID); err != nil {
				if busapi.IsNotFound(err) {
					return fmt.Errorf("booking #%d not found", bookingID)
				}
				return fmt.Errorf("cancel booking: %w", err)
			}

			logger.Info("booking cancelled", "booking", bookingID)
			fmt.Printf("Booking #%d cancelled.\n", bookingID)
			return nil
		},
	}
}
