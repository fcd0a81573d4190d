// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// Error is a failed STS exchange with the service's error code preserved
// for callers that branch on it. The original error stays reachable via
// errors.As/Is.
type Error struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// AccessDenied reports whether the service refused the request outright.
func (e *Error) AccessDenied() bool { return e.Code == "AccessDenied" }

// classify maps a raw SDK error to a broker Error with a stable code.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &Error{Op: op, Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage(), Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Op: op, Code: "Timeout", Message: "request timed out", Err: err}
	}

	// The credential chain reports missing local credentials as a plain
	// error, not a service response.
	if strings.Contains(strings.ToLower(err.Error()), "credential") {
		return &Error{Op: op, Code: "NoCredentials", Message: "AWS credentials not configured", Err: err}
	}

	return &Error{Op: op, Code: "Unknown", Message: err.Error(), Err: err}
}

// Guidance returns operator hints for error codes with well-known causes,
// or nil when there is nothing useful to add.
func Guidance(err error) []string {
	var be *Error
	if !errors.As(err, &be) {
		return nil
	}

	switch be.Code {
	case "AccessDenied":
		return []string{
			"Trust relationship not configured correctly",
			"Role doesn't exist in target account",
			"Your user lacks sts:AssumeRole permission",
		}
	case "NoCredentials":
		return []string{
			"Run 'aws configure' to set up your credentials",
		}
	}

	return nil
}

// Friendly appends the usual causes to errors with a known playbook so the
// operator sees one complete message. Errors without guidance pass through
// unchanged, and the original error stays reachable via errors.Is/As.
func Friendly(err error) error {
	if err == nil {
		return nil
	}

	tips := Guidance(err)
	if len(tips) == 0 {
		return err
	}

	var b strings.Builder
	b.WriteString("\n\nThis usually means:")
	for _, tip := range tips {
		b.WriteString("\n  - ")
		b.WriteString(tip)
	}

	return fmt.Errorf("%w%s", err, b.String())
}
