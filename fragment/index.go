// Package fragment implements the ordered seqfragment index used to
// locate ACGT runs within a sequence and to identify the implicit N gaps
// between them (spec §4.5).
package fragment

import (
	"sort"

	"github.com/sean-dougherty/seqio/pnaformat"
)

// Index is the ordered, non-overlapping list of a sequence's fragments,
// sorted by SequenceOffset (spec §3.2).
type Index []pnaformat.Seqfragment

// FindNext returns the first fragment whose end extends past offset: a
// lower bound over fragment ends, letting the caller decide whether
// offset lies inside that fragment or in the N gap preceding it.
func (idx Index) FindNext(offset uint64) (*pnaformat.Seqfragment, bool) {
	i, ok := idx.FindNextIndex(offset)
	if !ok {
		return nil, false
	}

	return &idx[i], true
}

// FindNextIndex is FindNext, returning the fragment's index instead of a
// pointer to it, for callers that need to advance through the index
// incrementally (e.g. SequenceReader.Read crossing fragment boundaries).
func (idx Index) FindNextIndex(offset uint64) (int, bool) {
	i := sort.Search(len(idx), func(i int) bool {
		return idx[i].End() > offset
	})

	if i >= len(idx) {
		return 0, false
	}

	return i, true
}
