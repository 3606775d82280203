package pnaformat

import "github.com/sean-dougherty/seqio/endian"

// MetadataEntry is one key/value pair in a metadata table, both sides byte
// offsets into the string storage region. Arrays of entries are sorted by
// Key, which (because string storage is lexicographically ordered) is
// equivalent to sorting alphabetically by the key string.
type MetadataEntry struct {
	Key   uint32
	Value uint32
}

// Bytes serializes the entry using the given endian engine.
func (e MetadataEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, MetadataEntrySize)
	engine.PutUint32(b[0:4], e.Key)
	engine.PutUint32(b[4:8], e.Value)

	return b
}

// WriteToSlice writes the entry into data at offset and returns the next offset.
func (e MetadataEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], e.Key)
	engine.PutUint32(data[offset+4:offset+8], e.Value)

	return offset + MetadataEntrySize
}

// ParseMetadataEntry parses a MetadataEntry from data.
func ParseMetadataEntry(data []byte, engine endian.EndianEngine) MetadataEntry {
	return MetadataEntry{
		Key:   engine.Uint32(data[0:4]),
		Value: engine.Uint32(data[4:8]),
	}
}

// ParseMetadataEntries parses count contiguous entries from data.
func ParseMetadataEntries(data []byte, count int, engine endian.EndianEngine) []MetadataEntry {
	entries := make([]MetadataEntry, count)
	for i := range entries {
		entries[i] = ParseMetadataEntry(data[i*MetadataEntrySize:], engine)
	}

	return entries
}
