// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestUpdate_CreatesFile verifies Update builds the file and its parent
// directory from scratch and reports the profile as created.
func TestUpdate_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aws", "credentials")
	w := NewWriter(path)

	res, err := w.Update("assumed-dev", []string{"aws_access_key_id = A", "aws_secret_access_key = S"})

	require.NoError(t, err)
	assert.Equal(t, Created, res)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[assumed-dev]\naws_access_key_id = A\naws_secret_access_key = S\n", string(content))
}

// TestUpdate_AppendsToExisting verifies a new profile lands at the end of
// an existing store with a single separator.
func TestUpdate_AppendsToExisting(t *testing.T) {
	path := setupStoreFile(t, "[main]\nkey = 1\n")
	w := NewWriter(path)

	res, err := w.Update("assumed-dev", []string{"k = 2"})

	require.NoError(t, err)
	assert.Equal(t, Created, res)

	content, _ := os.ReadFile(path)
	assert.Equal(t, "[main]\nkey = 1\n\n[assumed-dev]\nk = 2\n", string(content))
}

// TestUpdate_ReplacesExisting verifies an existing profile is reported as
// updated and its stale lines are gone from the file.
func TestUpdate_ReplacesExisting(t *testing.T) {
	path := setupStoreFile(t, "[main]\nkey = 1\n\n[assumed-dev]\nstale = old\n\n[prod]\nkey = 3\n")
	w := NewWriter(path)

	res, err := w.Update("assumed-dev", []string{"fresh = new"})

	require.NoError(t, err)
	assert.Equal(t, Updated, res)

	content, _ := os.ReadFile(path)
	assert.Equal(t, "[main]\nkey = 1\n\n[prod]\nkey = 3\n\n[assumed-dev]\nfresh = new\n", string(content))
	assert.NotContains(t, string(content), "stale")
}

// TestUpdate_PreservesUnrelatedProfiles verifies profiles other than the
// target survive a write cycle untouched.
func TestUpdate_PreservesUnrelatedProfiles(t *testing.T) {
	path := setupStoreFile(t, "[main]\n# note\nodd line\nkey = 1\n\n[prod]\nkey = 3\n")
	w := NewWriter(path)

	_, err := w.Update("assumed-dev", []string{"k = 2"})
	require.NoError(t, err)

	m := Parse(readFile(t, path))
	main, ok := m.Lookup("main")
	require.True(t, ok)
	assert.Equal(t, []string{"# note", "odd line", "key = 1"}, main.Lines)
	_, ok = m.Lookup("prod")
	assert.True(t, ok)
}

// TestUpdate_Idempotent verifies running the same update twice leaves the
// file byte-identical to running it once.
func TestUpdate_Idempotent(t *testing.T) {
	path := setupStoreFile(t, "[main]\nkey = 1\n")
	w := NewWriter(path)

	_, err := w.Update("assumed-dev", []string{"k = 2"})
	require.NoError(t, err)
	after1 := readFile(t, path)

	res, err := w.Update("assumed-dev", []string{"k = 2"})
	require.NoError(t, err)

	assert.Equal(t, Updated, res)
	assert.Equal(t, after1, readFile(t, path))
}

// TestUpdate_FilePermissions verifies the rewritten store is user
// read/write only.
func TestUpdate_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	w := NewWriter(path)

	_, err := w.Update("assumed-dev", []string{"k = 1"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestUpdate_ParentIsFile verifies a failed write surfaces as a
// WriteError carrying the store path and operation.
func TestUpdate_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	w := NewWriter(filepath.Join(blocker, "credentials"))
	_, err := w.Update("assumed-dev", []string{"k = 1"})

	require.Error(t, err)
	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, "update", we.Op)
	assert.Contains(t, we.Path, "credentials")
}

// TestRemove_Existing verifies removing a present profile rewrites the
// file without it and reports true.
func TestRemove_Existing(t *testing.T) {
	path := setupStoreFile(t, "[main]\nkey = 1\n\n[assumed-dev]\nk = 2\n")
	w := NewWriter(path)

	removed, err := w.Remove("assumed-dev")

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "[main]\nkey = 1\n", readFile(t, path))
}

// TestRemove_AbsentProfile verifies removing an unknown profile reports
// false and leaves the file bytes alone.
func TestRemove_AbsentProfile(t *testing.T) {
	original := "[main]\nkey = 1\n\n\n[dev]\nk = 2\n"
	path := setupStoreFile(t, original)
	w := NewWriter(path)

	removed, err := w.Remove("zzz")

	require.NoError(t, err)
	assert.False(t, removed)
	// Not even normalization runs when there is nothing to remove.
	assert.Equal(t, original, readFile(t, path))
}

// TestRemove_MissingFile verifies removing from a nonexistent store is a
// quiet no-op.
func TestRemove_MissingFile(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nope", "credentials"))

	removed, err := w.Remove("assumed-dev")

	assert.NoError(t, err)
	assert.False(t, removed)
	assert.NoFileExists(t, w.Path())
}

// TestRemove_SoleProfile verifies removing the last profile leaves an
// empty file rather than deleting it.
func TestRemove_SoleProfile(t *testing.T) {
	path := setupStoreFile(t, "[only]\nk = 1\n")
	w := NewWriter(path)

	removed, err := w.Remove("only")

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "", readFile(t, path))
}

// TestWriter_NoTempDebris verifies no temp files linger beside the store
// after a successful cycle.
func TestWriter_NoTempDebris(t *testing.T) {
	path := setupStoreFile(t, "[main]\nkey = 1\n")
	w := NewWriter(path)

	_, err := w.Update("assumed-dev", []string{"k = 2"})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".acctl-tmp-")
	}
}

// TestResult_String verifies the user-facing wording of write results.
func TestResult_String(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "updated", Updated.String())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}
