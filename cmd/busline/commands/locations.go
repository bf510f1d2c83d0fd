// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/busline-travel/busline/cmd/busline/cli"
)

// locationsCommand returns the "locations" subcommand: list the
// boarding locations the booking service serves.
func locationsCommand() *cli.Command {
	var configPath string
	var filter string

	return &cli.Command{
		Name:    "locations",
		Summary: "List boarding locations",
		Description: `List every location the booking service serves. Location names are
the values "busline search" matches against.`,
		Usage: "busline locations [flags]",
		Examples: []cli.Example{
			{
				Description: "All locations containing \"port\"",
				Command:     "busline locations --filter port",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("locations", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&filter, "filter", "", "only show locations whose name contains this substring")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			client, _, _, err := newClient(configPath, "locations")
			if err != nil {
				return err
			}

			locations, err := client.Locations(context.Background())
			if err != nil {
				return fmt.Errorf("list locations: %w", err)
			}

			needle := strings.ToLower(filter)
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME")
			shown := 0
			for _, location := range locations {
				if needle != "" && !strings.Contains(strings.ToLower(location.LocationName), needle) {
					continue
				}
				fmt.Fprintf(writer, "%d\t%s\n", location.LocationID, location.LocationName)
				shown++
			}
			if shown == 0 {
				fmt.Println("No locations found.")
				return nil
			}
			return writer.Flush()
		},
	}
}
