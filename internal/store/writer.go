// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/acctl/acctl/internal/log"
)

// lockTimeout bounds how long a write cycle waits on the advisory store
// lock before proceeding without it.
const lockTimeout = 5 * time.Second

// Result reports how an Update landed. Informational only: callers may
// surface it to the user but must not branch on it for correctness.
type Result int

const (
	// Created means the profile did not exist and was appended.
	Created Result = iota
	// Updated means an existing profile was replaced.
	Updated
)

func (r Result) String() string {
	if r == Updated {
		return "updated"
	}

	return "created"
}

// WriteError reports a failed store write cycle. The store on disk is left
// either fully old or fully new, never half-written.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("credential store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer is the handle for one credential store file. All mutation goes
// through a read-reconcile-write cycle over the whole file; there are no
// in-place edits. Missing files read as an empty store.
type Writer struct {
	path string
}

// NewWriter returns a Writer for the store at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the store file location.
func (w *Writer) Path() string { return w.path }

// DefaultPath returns the conventional store location,
// $HOME/.aws/credentials.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}

	return filepath.Join(home, ".aws", "credentials"), nil
}

// Update installs the profile's lines in the store, replacing the profile
// when it exists and appending it when it does not. Every other profile in
// the file survives the cycle.
func (w *Writer) Update(profile string, lines []string) (Result, error) {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o700); err != nil {
		return Created, &WriteError{Path: w.path, Op: "update", Err: err}
	}

	res := Created
	err := w.cycle("update", func(m Model) (Model, bool) {
		next, existed := m.Reconcile(profile, lines)
		if existed {
			res = Updated
		}
		return next, true
	})

	return res, err
}

// Remove retires the named profile. Reports false without touching the
// file when the store or the profile does not exist.
func (w *Writer) Remove(profile string) (bool, error) {
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	removed := false
	err := w.cycle("remove", func(m Model) (Model, bool) {
		next, existed := m.Excise(profile)
		removed = existed
		return next, existed
	})

	return removed, err
}

// cycle runs one locked read-reconcile-write pass. mutate returns the next
// model and whether the store should be rewritten at all.
func (w *Writer) cycle(op string, mutate func(Model) (Model, bool)) error {
	unlock := w.lock()
	defer unlock()

	raw, err := os.ReadFile(w.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &WriteError{Path: w.path, Op: op, Err: err}
	}

	next, write := mutate(Parse(string(raw)))
	if !write {
		return nil
	}

	if err := replaceFile(w.path, []byte(next.Serialize())); err != nil {
		return &WriteError{Path: w.path, Op: op, Err: err}
	}
	log.Debugf("Store %s complete: path=%s, blocks=%d", op, w.path, len(next.Blocks))

	return nil
}

// lock takes the advisory lock beside the store file. Locking serializes
// sibling processes but is best-effort: on timeout or error the cycle
// proceeds unlocked with a warning and relies on the atomic rename in
// replaceFile for file integrity.
func (w *Writer) lock() func() {
	fl := flock.New(w.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil || !locked {
		log.Warnf("Store lock not acquired, proceeding unlocked: path=%s, err=%v", w.path, err)
		return func() {}
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			log.Warnf("Store unlock failed: path=%s, err=%v", w.path, err)
		}
	}
}

// replaceFile writes data to a temp file in path's directory and renames
// it over path. The rename is atomic within a directory, so readers see
// the old content or the new, never a torn file.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".acctl-tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // Already gone on the rename path.
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
