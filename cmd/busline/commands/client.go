// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/busline-travel/busline/cmd/busline/cli"
	"github.com/busline-travel/busline/lib/busapi"
	"github.com/busline-travel/busline/lib/config"
)

// addConfigFlag registers the shared --config flag on a command's
// flag set. An empty value falls through to BUSLINE_CONFIG and then
// the built-in defaults.
func addConfigFlag(flagSet *pflag.FlagSet, path *string) {
	flagSet.StringVar(path, "config", "", "path to the config file (default: $BUSLINE_CONFIG)")
}

// newClient loads configuration and builds the API client plus a
// logger scoped to the named command.
func newClient(configPath, command string) (*busapi.Client, config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger := cli.NewCommandLogger().With("command", command)

	client, err := busapi.NewClient(busapi.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout.Std()},
		Logger:     logger,
	})
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return client, cfg, logger, nil
}
