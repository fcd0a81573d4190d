// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex splits a path segment into its key and optional array index.
// "regions[0]" selects element 0, "regions[*]" and "regions[]" keep the whole
// list, and a bare "regions" unwraps single-element lists.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

// Driller resolves a dotted path against a JSON document. Unlike a plain
// gjson.Get, a segment that lands on a single-element array is unwrapped so
// record-shaped payloads read naturally. An invalid segment or an index out
// of range yields the empty Result.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, segment := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(segment)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		key := matches[1]

		// A bracket pair without a digit ("[]" or "[*]") pins the segment to
		// the whole list. A digit selects one element.
		index := -1
		wildcard := matches[2] != "" && (matches[3] == "" || matches[3] == "*")
		if !wildcard && matches[3] != "" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		value := current.Get(key)
		if value.IsArray() && !wildcard {
			list := value.Array()
			switch {
			case index == -1:
				if len(list) == 1 {
					value = list[0]
				}
				// Larger lists pass through whole.
			case index < len(list):
				value = list[index]
			default:
				return gjson.Result{}
			}
		}

		current = value
	}

	return current
}
