package pnaformat

import (
	"io"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/sean-dougherty/seqio/errs"
)

// Header is the fixed-size record at file offset 0. Writers reserve it
// zeroed when the file is created and rewrite it fully populated at close,
// once every other section's final offsets are known.
type Header struct {
	Signature uint64
	Version   uint64

	SequencesFilepos uint64
	SequencesCount   uint64

	// MaxSeqfragmentsCount and MaxPackedBasesLength are buffer-sizing hints:
	// the largest per-sequence fragment count and packed-byte length across
	// the file, letting readers size a fixed buffer up front.
	MaxSeqfragmentsCount uint64
	MaxPackedBasesLength uint64

	FileMetadata  MetadataRef
	StringStorage StringStorageRef
}

// NewHeader creates a zeroed header carrying the current signature and
// version, suitable as the placeholder written when a file is opened for
// writing.
func NewHeader() Header {
	return Header{
		Signature: Signature,
		Version:   Version,
	}
}

// Bytes serializes the header using the given endian engine.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	offset := 0
	engine.PutUint64(b[offset:offset+8], h.Signature)
	offset += 8
	engine.PutUint64(b[offset:offset+8], h.Version)
	offset += 8
	engine.PutUint64(b[offset:offset+8], h.SequencesFilepos)
	offset += 8
	engine.PutUint64(b[offset:offset+8], h.SequencesCount)
	offset += 8
	engine.PutUint64(b[offset:offset+8], h.MaxSeqfragmentsCount)
	offset += 8
	engine.PutUint64(b[offset:offset+8], h.MaxPackedBasesLength)
	offset += 8
	offset = h.FileMetadata.WriteToSlice(b, offset, engine)
	copy(b[offset:], h.StringStorage.Bytes(engine))

	return b
}

// WriteTo writes the header's bytes to w.
func (h Header) WriteTo(w io.Writer, engine endian.EndianEngine) error {
	_, err := w.Write(h.Bytes(engine))

	return err
}

// ParseHeader parses a Header from data and validates its signature and version.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrIO
	}

	h := Header{}
	offset := 0
	h.Signature = engine.Uint64(data[offset : offset+8])
	offset += 8
	h.Version = engine.Uint64(data[offset : offset+8])
	offset += 8

	if h.Signature != Signature {
		return Header{}, errs.ErrUnsupportedSignature
	}
	if h.Version != Version {
		return Header{}, errs.ErrUnsupportedVersion
	}

	h.SequencesFilepos = engine.Uint64(data[offset : offset+8])
	offset += 8
	h.SequencesCount = engine.Uint64(data[offset : offset+8])
	offset += 8
	h.MaxSeqfragmentsCount = engine.Uint64(data[offset : offset+8])
	offset += 8
	h.MaxPackedBasesLength = engine.Uint64(data[offset : offset+8])
	offset += 8
	h.FileMetadata = ParseMetadataRef(data[offset:], engine)
	offset += MetadataRefSize
	h.StringStorage = ParseStringStorageRef(data[offset:], engine)

	return h, nil
}
