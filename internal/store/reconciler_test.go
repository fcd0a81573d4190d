// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var credLines = []string{
	"aws_access_key_id = ASIAEXAMPLE",
	"aws_secret_access_key = secret",
	"aws_session_token = token",
}

// TestReconcile_AppendNew verifies a profile absent from the store is
// appended at the end and reported as new.
func TestReconcile_AppendNew(t *testing.T) {
	m := Parse("[main]\nkey = 1\n")

	next, existed := m.Reconcile("assumed-dev", credLines)

	assert.False(t, existed)
	assert.Equal(t, []string{"main", "assumed-dev"}, next.Names())
	assert.Equal(t, "[main]\nkey = 1\n\n[assumed-dev]\n"+
		"aws_access_key_id = ASIAEXAMPLE\n"+
		"aws_secret_access_key = secret\n"+
		"aws_session_token = token\n", next.Serialize())
}

// TestReconcile_ReplaceMovesToEnd verifies replacing an existing profile
// excises it in place and appends the fresh block at end-of-file, with a
// single blank separating it from the survivors.
func TestReconcile_ReplaceMovesToEnd(t *testing.T) {
	m := Parse("[main]\nkey=1\n\n\n\n[dev]\nkey=2\n")

	next, existed := m.Reconcile("main", []string{"key=9"})

	assert.True(t, existed)
	assert.Equal(t, "[dev]\nkey=2\n\n[main]\nkey=9\n", next.Serialize())
}

// TestReconcile_IntoEmptyStore verifies reconciling into an empty model
// yields just the new block with no leading blank line.
func TestReconcile_IntoEmptyStore(t *testing.T) {
	next, existed := Model{}.Reconcile("assumed-dev", credLines)

	assert.False(t, existed)
	assert.Equal(t, "[assumed-dev]\n"+
		"aws_access_key_id = ASIAEXAMPLE\n"+
		"aws_secret_access_key = secret\n"+
		"aws_session_token = token\n", next.Serialize())
}

// TestReconcile_Idempotent verifies reconciling twice with identical
// arguments produces the same serialized output as reconciling once.
func TestReconcile_Idempotent(t *testing.T) {
	m := Parse("[a]\nk = 1\n\n[b]\nk = 2\n\n[c]\nk = 3\n")

	once, _ := m.Reconcile("b", credLines)
	twice, _ := once.Reconcile("b", credLines)

	assert.Equal(t, once.Serialize(), twice.Serialize())
}

// TestReconcile_PreservesOtherBlocks verifies untouched profiles keep
// their content and relative order through a reconcile.
func TestReconcile_PreservesOtherBlocks(t *testing.T) {
	m := Parse("[a]\n# keep me\nnot a pair\nk = 1\n\n[b]\nk = 2\n\n[c]\nk = 3\n")

	next, existed := m.Reconcile("b", []string{"k = 9"})

	assert.True(t, existed)
	assert.Equal(t, []string{"a", "c", "b"}, next.Names())

	a, _ := next.Lookup("a")
	assert.Equal(t, []string{"# keep me", "not a pair", "k = 1"}, a.Lines)
	c, _ := next.Lookup("c")
	assert.Equal(t, []string{"k = 3"}, c.Lines)
}

// TestReconcile_CollapsesInteriorBlankRuns verifies the normalization pass
// squeezes runs of blank lines inside retained blocks down to one.
func TestReconcile_CollapsesInteriorBlankRuns(t *testing.T) {
	m := Parse("[a]\nk = 1\n\n\n\nk = 2\n\n[b]\nk = 3\n")

	next, _ := m.Reconcile("b", []string{"k = 9"})

	a, ok := next.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"k = 1", "", "k = 2"}, a.Lines)
}

// TestReconcile_NormalizesNewLines verifies blank runs in the incoming
// block collapse too, so no write can introduce consecutive blanks.
func TestReconcile_NormalizesNewLines(t *testing.T) {
	next, _ := Model{}.Reconcile("a", []string{"k = 1", "", "", "k = 2", ""})

	a, ok := next.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"k = 1", "", "k = 2"}, a.Lines)
}

// TestReconcile_DuplicateSections verifies every section carrying the
// target name is removed, leaving a single fresh block.
func TestReconcile_DuplicateSections(t *testing.T) {
	m := Parse("[main]\nold = 1\n\n[dev]\nk = 2\n\n[main]\nolder = 2\n")

	next, existed := m.Reconcile("main", []string{"new = 1"})

	assert.True(t, existed)
	assert.Equal(t, []string{"dev", "main"}, next.Names())

	main, _ := next.Lookup("main")
	assert.Equal(t, []string{"new = 1"}, main.Lines)
}

// TestExcise_Found verifies excising an existing block drops it and keeps
// the rest.
func TestExcise_Found(t *testing.T) {
	m := Parse("[a]\nk = 1\n\n[b]\nk = 2\n\n[c]\nk = 3\n")

	next, found := m.Excise("b")

	assert.True(t, found)
	assert.Equal(t, []string{"a", "c"}, next.Names())
	assert.Equal(t, "[a]\nk = 1\n\n[c]\nk = 3\n", next.Serialize())
}

// TestExcise_NotFound verifies excising an absent name reports false and
// leaves the model equivalent.
func TestExcise_NotFound(t *testing.T) {
	m := Parse("[a]\nk = 1\n\n[b]\nk = 2\n")

	next, found := m.Excise("zzz")

	assert.False(t, found)
	assert.Equal(t, m.Serialize(), next.Serialize())
}

// TestExcise_SoleBlock verifies removing the only block leaves an empty
// model that serializes to nothing.
func TestExcise_SoleBlock(t *testing.T) {
	m := Parse("[only]\nk = 1\n")

	next, found := m.Excise("only")

	assert.True(t, found)
	assert.Empty(t, next.Blocks)
	assert.Equal(t, "", next.Serialize())
}

// TestNormalizeLines verifies the blank-run collapse rules directly.
func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []string
	}{
		{"nil", nil, nil},
		{"no blanks", []string{"a", "b"}, []string{"a", "b"}},
		{"single interior blank kept", []string{"a", "", "b"}, []string{"a", "", "b"}},
		{"run collapsed", []string{"a", "", "", "", "b"}, []string{"a", "", "b"}},
		{"whitespace lines count as blank", []string{"a", "  ", "\t", "b"}, []string{"a", "  ", "b"}},
		{"trailing blanks dropped", []string{"a", "", ""}, []string{"a"}},
		{"all blanks", []string{"", "", ""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLines(tt.in))
		})
	}
}
