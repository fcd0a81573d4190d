// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import "strings"

type parserState int

const (
	outsideBlock parserState = iota
	insideBlock
)

// Parse converts raw store text into a Model. A line whose trimmed form is
// [name] opens a block; every other line is kept verbatim inside the open
// block, malformed or not. Content before the first header has no section
// to belong to and is discarded. Parse never fails: unrecognized content is
// data, not an error, so a parse can never be the cause of credential loss.
func Parse(text string) Model {
	var (
		m       Model
		current Block
		state   = outsideBlock
	)

	flush := func() {
		current.Lines = trimTrailingBlanks(current.Lines)
		m.Blocks = append(m.Blocks, current)
	}

	for _, line := range splitLines(text) {
		if name, ok := headerName(line); ok {
			if state == insideBlock {
				flush()
			}
			current = Block{Name: name}
			state = insideBlock
			continue
		}
		if state == insideBlock {
			current.Lines = append(current.Lines, line)
		}
	}
	if state == insideBlock {
		flush()
	}

	return m
}

// headerName reports whether line is a section header and returns the
// enclosed name. Surrounding whitespace is tolerated, interior whitespace
// is part of the name.
func headerName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return trimmed[1 : len(trimmed)-1], true
	}

	return "", false
}

// splitLines splits text on \n, tolerating CRLF by trimming one trailing \r
// per line. A trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
