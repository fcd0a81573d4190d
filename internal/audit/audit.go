// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"fmt"
	"os"
	"time"

	"github.com/acctl/acctl/internal/log"
)

// DefaultName is the audit trail written when no path is configured.
const DefaultName = "access_log.txt"

// Record is one role-assumption attempt.
type Record struct {
	Account string
	Session string
	Success bool
	Error   string
}

// Logger appends records to the access log file.
type Logger struct {
	path string
	now  func() time.Time
}

// New returns a Logger for the trail at path, or DefaultName when path is
// empty.
func New(path string) *Logger {
	if path == "" {
		path = DefaultName
	}

	return &Logger{path: path, now: time.Now}
}

// Path returns the audit trail location.
func (l *Logger) Path() string { return l.path }

// Append writes one record to the trail. A failure to write is reported
// as a warning and otherwise swallowed: the audit trail must never block
// or reverse the credential operation it describes.
func (l *Logger) Append(r Record) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.Warnf("Could not write to audit log: path=%s, err=%v", l.path, err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(r.line(l.now()) + "\n"); err != nil {
		log.Warnf("Could not write to audit log: path=%s, err=%v", l.path, err)
	}
}

// line renders the record in the fixed trail format:
//
//	2026-01-02 15:04:05 - SUCCESS - Account: 'dev' - Session: session-x
//
// with an Error suffix for failed attempts.
func (r Record) line(ts time.Time) string {
	status := "FAILED"
	if r.Success {
		status = "SUCCESS"
	}

	entry := fmt.Sprintf("%s - %s - Account: '%s' - Session: %s",
		ts.Format("2006-01-02 15:04:05"), status, r.Account, r.Session)
	if r.Error != "" {
		entry += " - Error: " + r.Error
	}

	return entry
}
