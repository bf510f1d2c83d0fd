// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the busline binary:
// a hierarchical command tree with pflag flag sets, structured help
// output, typo suggestions for unknown commands and flags, and exit
// code signaling.
package cli
