// Package pnaformat defines the low-level binary structures and constants
// for the PNA on-disk layout.
//
// This package provides the foundational types that define PNA's physical
// layout and handles their binary (de)serialization, always little-endian
// and tightly packed (no inter-field padding), so that file offsets
// computed from one field agree with the bytes actually on disk.
//
// # File layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (fixed size, offset 0)                             │
//	├──────────────────────────────────────────────────────────┤
//	│ packed bases + seqfragments, per sequence, in stream order │
//	├──────────────────────────────────────────────────────────┤
//	│ string storage (sorted, NUL-terminated strings)            │
//	├──────────────────────────────────────────────────────────┤
//	│ per-sequence metadata entry arrays                         │
//	├──────────────────────────────────────────────────────────┤
//	│ file metadata entry array                                  │
//	├──────────────────────────────────────────────────────────┤
//	│ SequenceDescriptor[sequences_count] (at sequences_filepos) │
//	└──────────────────────────────────────────────────────────┘
//
// The header is written twice: once as a placeholder carrying only the
// signature and version when the writer opens the file (so the first
// section starts at HeaderSize), and once more, fully populated, at close
// after every other section's final offsets, sequences_filepos included,
// are known.
package pnaformat
