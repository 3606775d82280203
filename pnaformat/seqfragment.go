package pnaformat

import "github.com/sean-dougherty/seqio/endian"

// Seqfragment describes one contiguous run of ACGT bases within a sequence.
// The logical gaps between fragments (and before the first, and after the
// last) are implicit N runs.
type Seqfragment struct {
	// SequenceOffset is the logical base offset where the run starts.
	SequenceOffset uint64
	// PackedBasesOffset is the byte offset within the sequence's packed blob
	// where the run's first byte lives.
	PackedBasesOffset uint64
	BasesCount        uint32
	// Shift is the bit position (0, 2, 4 or 6) of the run's first base
	// inside the byte at PackedBasesOffset.
	Shift uint8
}

// End returns the logical offset just past the fragment's last base.
func (f Seqfragment) End() uint64 {
	return f.SequenceOffset + uint64(f.BasesCount)
}

// Bytes serializes the fragment using the given endian engine.
func (f Seqfragment) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, SeqfragmentSize)
	engine.PutUint64(b[0:8], f.SequenceOffset)
	engine.PutUint64(b[8:16], f.PackedBasesOffset)
	engine.PutUint32(b[16:20], f.BasesCount)
	b[20] = f.Shift

	return b
}

// WriteToSlice writes the fragment into data at offset and returns the next offset.
func (f Seqfragment) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], f.SequenceOffset)
	engine.PutUint64(data[offset+8:offset+16], f.PackedBasesOffset)
	engine.PutUint32(data[offset+16:offset+20], f.BasesCount)
	data[offset+20] = f.Shift

	return offset + SeqfragmentSize
}

// ParseSeqfragment parses a Seqfragment from data.
func ParseSeqfragment(data []byte, engine endian.EndianEngine) Seqfragment {
	return Seqfragment{
		SequenceOffset:    engine.Uint64(data[0:8]),
		PackedBasesOffset: engine.Uint64(data[8:16]),
		BasesCount:        engine.Uint32(data[16:20]),
		Shift:             data[20],
	}
}

// ParseSeqfragments parses count contiguous fragments from data.
func ParseSeqfragments(data []byte, count int, engine endian.EndianEngine) []Seqfragment {
	fragments := make([]Seqfragment, count)
	for i := range fragments {
		fragments[i] = ParseSeqfragment(data[i*SeqfragmentSize:], engine)
	}

	return fragments
}
