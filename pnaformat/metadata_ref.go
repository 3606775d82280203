package pnaformat

import "github.com/sean-dougherty/seqio/endian"

// MetadataRef points at a MetadataEntry array stored elsewhere in the file:
// either a sequence's per-sequence metadata, or the file-level metadata.
type MetadataRef struct {
	EntriesFilepos uint64
	EntriesCount   uint32
}

// Bytes serializes the ref using the given endian engine.
func (r MetadataRef) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, MetadataRefSize)
	engine.PutUint64(b[0:8], r.EntriesFilepos)
	engine.PutUint32(b[8:12], r.EntriesCount)

	return b
}

// WriteToSlice writes the ref into data at offset and returns the next offset.
func (r MetadataRef) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], r.EntriesFilepos)
	engine.PutUint32(data[offset+8:offset+12], r.EntriesCount)

	return offset + MetadataRefSize
}

// ParseMetadataRef parses a MetadataRef from data.
func ParseMetadataRef(data []byte, engine endian.EndianEngine) MetadataRef {
	return MetadataRef{
		EntriesFilepos: engine.Uint64(data[0:8]),
		EntriesCount:   engine.Uint32(data[8:12]),
	}
}

// StringStorageRef locates the string storage blob.
type StringStorageRef struct {
	Filepos uint64
	Length  uint32
}

// Bytes serializes the ref using the given endian engine.
func (r StringStorageRef) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, stringStorageRecordSize)
	engine.PutUint64(b[0:8], r.Filepos)
	engine.PutUint32(b[8:12], r.Length)

	return b
}

// ParseStringStorageRef parses a StringStorageRef from data.
func ParseStringStorageRef(data []byte, engine endian.EndianEngine) StringStorageRef {
	return StringStorageRef{
		Filepos: engine.Uint64(data[0:8]),
		Length:  engine.Uint32(data[8:12]),
	}
}
