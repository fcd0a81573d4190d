// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed component of a --sort spec. A leading "-" marks the
// key descending and a leading "!" makes the string comparison case
// sensitive.
type sortKey struct {
	name          string
	descending    bool
	caseSensitive bool
}

// parseSortSpec splits a comma separated sort spec into ordered sort keys.
// Empty components are dropped.
func parseSortSpec(spec string) []sortKey {
	var keys []sortKey

	for _, field := range strings.Split(spec, ",") {
		descending := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")

		caseSensitive := strings.HasPrefix(field, "!")
		field = strings.TrimPrefix(field, "!")

		if field == "" {
			continue
		}

		keys = append(keys, sortKey{
			name:          field,
			descending:    descending,
			caseSensitive: caseSensitive,
		})
	}

	return keys
}

// SortDataset orders the result set in place according to the sort spec.
// Values that are numeric on both sides compare as integers, everything else
// falls back to string comparison.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	keys := parseSortSpec(spec)
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(resultSet, func(one, two int) bool {

		for _, key := range keys {
			oneValue := resultSet[one][key.name]
			twoValue := resultSet[two][key.name]

			// Convert to integers if possible
			oneNum, oneOk := oneValue.(float64)
			twoNum, twoOk := twoValue.(float64)

			if oneOk && twoOk {
				if int(oneNum) != int(twoNum) {
					if key.descending {
						return int(oneNum) > int(twoNum)
					}
					return int(oneNum) < int(twoNum)
				}
				continue
			}

			// Fall back to string comparison which can also handle bools.
			oneStr := InterfaceToString(oneValue)
			twoStr := InterfaceToString(twoValue)

			if !key.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if key.descending {
					return oneStr > twoStr
				}
				return oneStr < twoStr
			}

		}
		return false
	})
}
