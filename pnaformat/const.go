package pnaformat

// Signature is the magic constant identifying a PNA file: the ASCII bytes
// "PNAFMT01" read as a little-endian uint64.
const Signature uint64 = 0x3130544d46414e50

// Version is the PNA format version this package reads and writes.
const Version uint64 = 1

// Fixed, tightly packed sizes (bytes) of each on-disk struct.
const (
	HeaderSize              = 8 + 8 + 8 + 8 + 8 + 8 + MetadataRefSize + 12
	MetadataRefSize         = 8 + 4
	MetadataEntrySize       = 4 + 4
	SeqfragmentSize         = 8 + 8 + 4 + 1
	SequenceDescriptorSize  = 8 + 8 + 8 + 8 + 8 + MetadataRefSize
	stringStorageRecordSize = 8 + 4
)
