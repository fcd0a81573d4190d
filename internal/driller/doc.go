// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves dotted paths against JSON documents on behalf of
// the filtering and output packages.
package driller
