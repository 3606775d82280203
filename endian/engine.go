// Package endian provides the byte-order engine used to (de)serialize PNA's
// on-disk structures.
//
// It extends the standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface, which is satisfied
// directly by binary.LittleEndian.
//
// PNA's on-disk layout is little-endian only (spec invariant): every struct
// writer and parser in pnaformat, pna, and the root seqio package takes an EndianEngine and
// every caller passes endian.LittleEndian(). The indirection exists so the
// struct codecs aren't hardcoded to encoding/binary calls scattered
// throughout the codebase, and so a reader for a future big-endian PNA
// variant would only need a second Engine value, not a rewrite of the codecs.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte-order operations, including
// the allocation-free Append* methods.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the engine used for all PNA on-disk structures.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}
