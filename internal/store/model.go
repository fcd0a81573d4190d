// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

// Block is one named section of the credential store: a [name] header plus
// the raw lines that follow it, stored verbatim without line terminators.
// Blank lines inside a block are content and are preserved; blank lines
// between a block and the next header are separator gap and are not stored.
type Block struct {
	Name  string
	Lines []string
}

// Model is the parsed form of a store file, blocks in file order.
type Model struct {
	Blocks []Block
}

// Lookup returns the first block with the given name.
func (m Model) Lookup(name string) (Block, bool) {
	for _, b := range m.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}

// Names returns the block names in file order.
func (m Model) Names() []string {
	names := make([]string, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		names = append(names, b.Name)
	}
	return names
}
