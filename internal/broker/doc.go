// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package broker talks to AWS STS: assuming cross-account roles and
// resolving the caller's current identity, with API errors mapped to
// actionable messages.
package broker
