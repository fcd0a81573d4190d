// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws contains AWS SDK helpers and adapters: config loading with
// optional overrides and STS client construction for the trust broker.
package aws
