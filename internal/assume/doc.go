// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package assume orchestrates one role assumption end to end: registry
// lookup, STS exchange, credential store write, and audit trail entry.
package assume
