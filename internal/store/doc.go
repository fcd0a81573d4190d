// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store implements the credential profile store: parsing the
// multi-section credentials file, reconciling a named profile block into it,
// serializing it back, and writing the result with safe-replace semantics.
package store
