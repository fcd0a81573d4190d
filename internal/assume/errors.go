// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assume

import (
	"fmt"
	"strings"
)

// AccountNotFoundError means the requested name has no registry entry.
// Known carries the configured names so the caller can suggest them.
type AccountNotFoundError struct {
	Name  string
	Known []string
}

func (e *AccountNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("account %q not found, registry is empty", e.Name)
	}

	return fmt.Sprintf("account %q not found, known accounts: %s",
		e.Name, strings.Join(e.Known, ", "))
}

// RoleNotConfiguredError means the account exists but carries no role ARN
// to assume.
type RoleNotConfiguredError struct {
	Name string
}

func (e *RoleNotConfiguredError) Error() string {
	return fmt.Sprintf("no role ARN configured for account %q, add a 'role_arn' field to its registry entry", e.Name)
}
