package pnaformat

import "github.com/sean-dougherty/seqio/endian"

// SequenceDescriptor is the fixed-size record describing one sequence; the
// descriptor array sits at the end of the file, at Header.SequencesFilepos.
type SequenceDescriptor struct {
	// BasesCount is the logical length of the sequence, including implicit Ns.
	BasesCount uint64

	PackedBasesFilepos uint64
	PackedBasesLength  uint64

	SeqfragmentsFilepos uint64
	SeqfragmentsCount   uint64

	Metadata MetadataRef
}

// Bytes serializes the descriptor using the given endian engine.
func (d SequenceDescriptor) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, SequenceDescriptorSize)
	offset := 0
	engine.PutUint64(b[offset:offset+8], d.BasesCount)
	offset += 8
	engine.PutUint64(b[offset:offset+8], d.PackedBasesFilepos)
	offset += 8
	engine.PutUint64(b[offset:offset+8], d.PackedBasesLength)
	offset += 8
	engine.PutUint64(b[offset:offset+8], d.SeqfragmentsFilepos)
	offset += 8
	engine.PutUint64(b[offset:offset+8], d.SeqfragmentsCount)
	offset += 8
	d.Metadata.WriteToSlice(b, offset, engine)

	return b
}

// ParseSequenceDescriptor parses a SequenceDescriptor from data.
func ParseSequenceDescriptor(data []byte, engine endian.EndianEngine) SequenceDescriptor {
	offset := 0
	d := SequenceDescriptor{}
	d.BasesCount = engine.Uint64(data[offset : offset+8])
	offset += 8
	d.PackedBasesFilepos = engine.Uint64(data[offset : offset+8])
	offset += 8
	d.PackedBasesLength = engine.Uint64(data[offset : offset+8])
	offset += 8
	d.SeqfragmentsFilepos = engine.Uint64(data[offset : offset+8])
	offset += 8
	d.SeqfragmentsCount = engine.Uint64(data[offset : offset+8])
	offset += 8
	d.Metadata = ParseMetadataRef(data[offset:], engine)

	return d
}

// ParseSequenceDescriptors parses count contiguous descriptors from data.
func ParseSequenceDescriptors(data []byte, count int, engine endian.EndianEngine) []SequenceDescriptor {
	descriptors := make([]SequenceDescriptor, count)
	for i := range descriptors {
		descriptors[i] = ParseSequenceDescriptor(data[i*SequenceDescriptorSize:], engine)
	}

	return descriptors
}
