// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSerialize_Empty verifies an empty model serializes to nothing.
func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "", Model{}.Serialize())
}

// TestSerialize_SingleBlock verifies a lone block renders with no leading
// or trailing blank lines.
func TestSerialize_SingleBlock(t *testing.T) {
	m := Model{Blocks: []Block{{Name: "main", Lines: []string{"key = 1"}}}}

	assert.Equal(t, "[main]\nkey = 1\n", m.Serialize())
}

// TestSerialize_SeparatorBetweenBlocks verifies exactly one blank line
// between consecutive blocks.
func TestSerialize_SeparatorBetweenBlocks(t *testing.T) {
	m := Model{Blocks: []Block{
		{Name: "a", Lines: []string{"k = 1"}},
		{Name: "b", Lines: []string{"k = 2"}},
		{Name: "c", Lines: []string{"k = 3"}},
	}}

	assert.Equal(t, "[a]\nk = 1\n\n[b]\nk = 2\n\n[c]\nk = 3\n", m.Serialize())
}

// TestSerialize_EmptyBlockSeparation verifies a block with no lines still
// gets a separator before the next header.
func TestSerialize_EmptyBlockSeparation(t *testing.T) {
	m := Model{Blocks: []Block{
		{Name: "a"},
		{Name: "b", Lines: []string{"k = 2"}},
	}}

	assert.Equal(t, "[a]\n\n[b]\nk = 2\n", m.Serialize())
}

// TestSerialize_VerbatimLines verifies block lines are emitted exactly as
// held, including odd spacing and malformed content.
func TestSerialize_VerbatimLines(t *testing.T) {
	m := Model{Blocks: []Block{
		{Name: "main", Lines: []string{"key   =    spaced", "# comment", "not a pair"}},
	}}

	assert.Equal(t, "[main]\nkey   =    spaced\n# comment\nnot a pair\n", m.Serialize())
}

// TestSerialize_RoundTrip verifies parse of serialized output reproduces
// the model, even for messy input with wide separator gaps.
func TestSerialize_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"simple", "[main]\nkey = 1\n"},
		{"two blocks", "[main]\nkey = 1\n\n[dev]\nkey = 2\n"},
		{"wide gaps", "[main]\nkey = 1\n\n\n\n\n[dev]\nkey = 2\n\n\n"},
		{"interior blank", "[main]\nkey = 1\n\nother = 2\n\n[dev]\nkey = 3\n"},
		{"malformed lines", "[main]\nnot a pair\n# comment\n\n[dev]\nkey = 2\n"},
		{"no trailing newline", "[main]\nkey = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Parse(tt.text)
			second := Parse(first.Serialize())
			assert.Equal(t, first, second)
		})
	}
}

// TestSerialize_Deterministic verifies repeated serialization of the same
// model is byte-identical.
func TestSerialize_Deterministic(t *testing.T) {
	m := Parse("[a]\nk = 1\n\n[b]\nk = 2\n")

	assert.Equal(t, m.Serialize(), m.Serialize())
}

// TestSerialize_NoDoubleBlanksAfterReconcile verifies the full
// parse-reconcile-serialize cycle never emits consecutive blank lines, no
// matter how many the input carried.
func TestSerialize_NoDoubleBlanksAfterReconcile(t *testing.T) {
	text := "[a]\nk = 1\n\n\n\nk = 2\n\n\n[b]\nk = 3\n\n\n\n\n[c]\nk = 4\n"

	next, _ := Parse(text).Reconcile("b", []string{"k = 9", "", "", "k = 10"})
	out := next.Serialize()

	assert.NotContains(t, out, "\n\n\n")
	assert.False(t, strings.HasSuffix(out, "\n\n"))
	assert.False(t, strings.HasPrefix(out, "\n"))
}
