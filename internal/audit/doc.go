// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package audit appends role-assumption attempts to a line-oriented access
// log. Writing the trail is best-effort and never blocks the credential
// operation it records.
package audit
