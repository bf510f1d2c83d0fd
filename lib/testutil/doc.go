// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Busline packages.
//
// [RequireReceive] and [RequireSend] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls. They are the only place in
// the test suite where real wall-clock timeouts appear.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
