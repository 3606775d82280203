package metadata

import (
	"sort"

	"github.com/sean-dougherty/seqio/pnaformat"
	"github.com/sean-dougherty/seqio/stringtable"
)

type pair struct {
	keyID   uint32
	valueID uint32
}

// Builder collects key/value pairs during a write pass, interning both
// sides into a shared stringtable.Table, then resolves them to a sorted
// MetadataEntry array once the table is finalized.
type Builder struct {
	strs  *stringtable.Table
	pairs []pair
}

// NewBuilder creates a Builder that interns strings into strs.
func NewBuilder(strs *stringtable.Table) *Builder {
	return &Builder{strs: strs}
}

// Set interns key and value and records the pair.
func (b *Builder) Set(key, value string) {
	b.pairs = append(b.pairs, pair{
		keyID:   b.strs.Intern(key),
		valueID: b.strs.Intern(value),
	})
}

// Len returns the number of pairs recorded.
func (b *Builder) Len() int {
	return len(b.pairs)
}

// Finalize resolves each pair's string ids to their final byte offsets
// via offsetByID (produced by stringtable.Table.Finalize) and returns the
// entries sorted by key offset, ready to write as a MetadataEntry array.
func (b *Builder) Finalize(offsetByID map[uint32]uint32) []pnaformat.MetadataEntry {
	entries := make([]pnaformat.MetadataEntry, len(b.pairs))
	for i, p := range b.pairs {
		entries[i] = pnaformat.MetadataEntry{
			Key:   offsetByID[p.keyID],
			Value: offsetByID[p.valueID],
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}
