// Package stringtable deduplicates arbitrary strings into a single
// NUL-terminated, lexicographically sorted blob, assigning each a stable
// id that writers later resolve to a byte offset (spec §4.2).
//
// The lexicographic write order is what makes per-metadata binary search
// by key string equivalent to binary search by key offset on the read
// side (metadata.Table).
package stringtable

import "sort"

// Table interns strings during a write pass and finalizes them into a
// contiguous blob.
type Table struct {
	ids    map[string]uint32
	strs   []string
	nextID uint32
}

// New creates an empty string table. Ids are assigned starting at 1, so 0
// is free to mean "no value" where a metadata entry has none.
func New() *Table {
	return &Table{
		ids:    make(map[string]uint32),
		nextID: 1,
	}
}

// Intern returns s's id, assigning a new monotone id if s hasn't been
// interned yet. Repeated calls with an equal string return the same id.
func (t *Table) Intern(s string) uint32 {
	if id, ok := t.ids[s]; ok {
		return id
	}

	id := t.nextID
	t.nextID++
	t.ids[s] = id
	t.strs = append(t.strs, s)

	return id
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	return len(t.strs)
}

// Finalize sorts the interned strings lexicographically, concatenates
// them into a single NUL-terminated blob, and returns the blob alongside
// the id→offset map writers need to resolve metadata entries.
func (t *Table) Finalize() (blob []byte, offsetByID map[uint32]uint32) {
	sorted := make([]string, len(t.strs))
	copy(sorted, t.strs)
	sort.Strings(sorted)

	offsetByID = make(map[uint32]uint32, len(sorted))

	var size int
	for _, s := range sorted {
		size += len(s) + 1
	}

	blob = make([]byte, 0, size)
	for _, s := range sorted {
		offset := uint32(len(blob)) //nolint: gosec
		offsetByID[t.ids[s]] = offset
		blob = append(blob, s...)
		blob = append(blob, 0)
	}

	return blob, offsetByID
}
