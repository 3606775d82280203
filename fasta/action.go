package fasta

import "github.com/sean-dougherty/seqio/pnaformat"

// action classifies a single input byte for the FASTA line-column state
// machine (spec §4.10), separately for first-column and other-column
// position since only a leading '>' starts a header.
type action uint8

const (
	actionIgnore action = iota
	actionNewline
	actionAppend
	actionHeader
)

type charEntry struct {
	firstCol action
	otherCol action
	base     byte
}

// actionTables holds the precomputed per-transform char-action table,
// indexed by pnaformat.BaseTransform.
var actionTables = [2][256]charEntry{
	buildActionTable(pnaformat.NoTransform),
	buildActionTable(pnaformat.CapsGATCN),
}

func buildActionTable(transform pnaformat.BaseTransform) [256]charEntry {
	var table [256]charEntry

	for c := 0; c < 256; c++ {
		entry := charEntry{base: transform.Apply(byte(c))}

		switch {
		case c == '\n' || c == '\r':
			entry.firstCol, entry.otherCol = actionNewline, actionNewline
		case !isGraphic(byte(c)):
			entry.firstCol, entry.otherCol = actionIgnore, actionIgnore
		case c == '>':
			entry.firstCol, entry.otherCol = actionHeader, actionAppend
		default:
			entry.firstCol, entry.otherCol = actionAppend, actionAppend
		}

		table[c] = entry
	}

	return table
}

// isGraphic reports whether b is a printable, non-space ASCII byte
// (equivalent to C's isgraph).
func isGraphic(b byte) bool {
	return b > 0x20 && b < 0x7f
}
