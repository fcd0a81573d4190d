// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides row filtering for the output pipeline.
//
// The package parses filter expressions to select subsets of records based on
// field values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma; override
// with ACCTL_FILTER_DELIM when a value itself contains commas).
//
// Operators include:
//
//   - = : exact match (numeric when both sides are numeric)
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than (numeric or lexical)
//   - > : greater than (numeric or lexical)
//   - @ : contains (substring, list membership, or map key)
//   - / : regex match
//
// Any operator may be negated with a leading '!', e.g. "name!=payer".
//
// Examples:
//
//   - "name=payer" : records whose name equals "payer"
//   - "name^prod" : records whose name starts with "prod"
//   - "role_arn@Admin" : records whose role ARN contains "Admin"
//   - "name!@test" : records whose name does not contain "test"
//   - "name/^prod-[0-9]+$" : records whose name matches the regex
//
// Filter keys are matched against the OutputKey of attributes (see the attrs
// package), so renamed columns filter under their output name. A key that
// resolves to no attribute is reported and skipped rather than rejecting the
// row.
//
// BuildFilters parses a filter specification string into Filter values,
// skipping malformed entries. FilterDataset applies the parsed filters to a
// gjson dataset and projects each surviving record through the attribute
// list. A record matches only when every filter matches.
package filters
