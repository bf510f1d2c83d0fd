// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	result := SpliceOverlay(view, []string{"XXXX"}, 3, 1)

	lines := strings.Split(result, "\n")
	if lines[0] != "aaaaaaaaaa" {
		t.Errorf("line 0 changed: %q", lines[0])
	}
	if !strings.Contains(lines[1], "bbb") || !strings.Contains(lines[1], "XXXX") {
		t.Errorf("line 1 = %q, want prefix and overlay", lines[1])
	}
	if !strings.HasSuffix(lines[1], "bbb") {
		t.Errorf("line 1 = %q, want original suffix preserved", lines[1])
	}
}

func TestSpliceOverlayOutOfBoundsLinesSkipped(t *testing.T) {
	view := "only line"
	result := SpliceOverlay(view, []string{"A", "B", "C"}, 0, 0)
	if len(strings.Split(result, "\n")) != 1 {
		t.Errorf("overlay grew the view: %q", result)
	}
}

func TestCenterOverlayClampsToScreen(t *testing.T) {
	view := strings.Join([]string{"12345", "12345"}, "\n")
	// Overlay wider than the view: anchor clamps to zero rather than
	// going negative.
	result := CenterOverlay(view, []string{"WWWWWWWWWW"}, 5, 2)
	if !strings.Contains(result, "WWWWWWWWWW") {
		t.Errorf("overlay missing from result: %q", result)
	}
}
