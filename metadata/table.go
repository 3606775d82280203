// Package metadata implements the read and write sides of a PNA
// key/value metadata table: a sorted array of (key offset, value
// offset) pairs referencing a shared string storage blob (spec §4.3).
package metadata

import (
	"sort"

	"github.com/sean-dougherty/seqio/pnaformat"
	"github.com/sean-dougherty/seqio/stringtable"
)

// Table is the read side: a slice of entries sorted by key offset,
// backed by a shared string storage blob. Because the blob is written
// lexicographically (stringtable.Table.Finalize), sorting by key offset
// is equivalent to sorting alphabetically by the key string, which is
// what makes Lookup's binary search correct.
type Table struct {
	entries []pnaformat.MetadataEntry
	blob    []byte
}

// New wraps a pre-sorted entries slice and its string storage blob.
func New(entries []pnaformat.MetadataEntry, blob []byte) Table {
	return Table{entries: entries, blob: blob}
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// At returns the key and value strings at index i.
func (t Table) At(i int) (key, value string) {
	e := t.entries[i]

	return stringtable.StringAt(t.blob, e.Key), stringtable.StringAt(t.blob, e.Value)
}

// Lookup finds key's value via binary search over the key-offset-sorted
// entries, comparing key strings by dereferencing each entry's key
// offset into the blob.
func (t Table) Lookup(key string) (value string, ok bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return stringtable.StringAt(t.blob, t.entries[i].Key) >= key
	})

	if i >= len(t.entries) {
		return "", false
	}

	k, v := t.At(i)
	if k != key {
		return "", false
	}

	return v, true
}
