// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import "strings"

// Reconcile produces the model that results from installing a block named
// target with the given lines. Every existing block with that name is
// excised, the survivors are normalized in file order, and the new block is
// appended at the end. The touched profile always lands at end-of-file,
// whether it replaced an existing section or is new. The returned bool
// reports whether target existed beforehand.
//
// Reconcile is idempotent: reconciling twice with the same arguments yields
// the same serialized output as reconciling once.
func (m Model) Reconcile(target string, lines []string) (Model, bool) {
	out, found := m.Excise(target)
	out.Blocks = append(out.Blocks, Block{Name: target, Lines: normalizeLines(lines)})

	return out, found
}

// Excise removes every block named target and normalizes the survivors in
// the same pass. This is the removal half of reconciliation, also used on
// its own when a profile is retired. Survivor blocks keep their relative
// order and their non-blank content untouched.
func (m Model) Excise(target string) (Model, bool) {
	var out Model

	found := false
	for _, b := range m.Blocks {
		if b.Name == target {
			found = true
			continue
		}
		out.Blocks = append(out.Blocks, Block{Name: b.Name, Lines: normalizeLines(b.Lines)})
	}

	return out, found
}

// normalizeLines collapses each run of consecutive blank lines to a single
// blank and drops trailing blanks. Keeps repeated write cycles from
// accumulating separator bloat.
func normalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		out = append(out, line)
	}

	return trimTrailingBlanks(out)
}

func trimTrailingBlanks(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return nil
	}

	return lines[:end]
}
