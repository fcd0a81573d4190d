// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package registry loads and validates the account registry, the JSON file
// mapping friendly account names to AWS account IDs and role ARNs.
package registry
