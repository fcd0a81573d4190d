// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import "strings"

// Serialize renders the model back to store text. Rendering is
// deterministic: [name] then the block's lines each terminated by \n,
// exactly one blank line between consecutive blocks, and no trailing blank
// line at end-of-file. Lines pass through byte-for-byte, so secret material
// is never reformatted.
func (m Model) Serialize() string {
	var b strings.Builder
	for i, blk := range m.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[")
		b.WriteString(blk.Name)
		b.WriteString("]\n")
		for _, line := range blk.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
