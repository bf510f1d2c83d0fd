// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds terminal UI primitives shared by Busline's
// interactive screens: the color theme and ANSI-aware modal overlay
// splicing.
package tui
