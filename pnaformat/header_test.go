package pnaformat

import (
	"testing"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/stretchr/testify/require"
)

func TestHeader_BytesParseRoundTrip(t *testing.T) {
	engine := endian.LittleEndian()

	h := Header{
		Signature:            Signature,
		Version:              Version,
		SequencesFilepos:     12345,
		SequencesCount:       7,
		MaxSeqfragmentsCount: 42,
		MaxPackedBasesLength: 999999,
		FileMetadata:         MetadataRef{EntriesFilepos: 256, EntriesCount: 3},
		StringStorage:        StringStorageRef{Filepos: 1024, Length: 4096},
	}

	data := h.Bytes(engine)
	require.Len(t, data, HeaderSize)

	got, err := ParseHeader(data, engine)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeader_NewHeaderCarriesSignatureAndVersion(t *testing.T) {
	h := NewHeader()
	require.Equal(t, uint64(Signature), h.Signature)
	require.Equal(t, uint64(Version), h.Version)
}

func TestParseHeader_RejectsBadSignature(t *testing.T) {
	engine := endian.LittleEndian()
	h := NewHeader()
	h.Signature = 0xdeadbeef
	data := h.Bytes(engine)

	_, err := ParseHeader(data, engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedSignature)
}

func TestParseHeader_RejectsBadVersion(t *testing.T) {
	engine := endian.LittleEndian()
	h := NewHeader()
	h.Version = Version + 1
	data := h.Bytes(engine)

	_, err := ParseHeader(data, engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParseHeader_RejectsShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1), endian.LittleEndian())
	require.ErrorIs(t, err, errs.ErrIO)
}
