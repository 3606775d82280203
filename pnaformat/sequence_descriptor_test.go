package pnaformat

import (
	"testing"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/stretchr/testify/require"
)

func TestSequenceDescriptor_BytesParseRoundTrip(t *testing.T) {
	engine := endian.LittleEndian()
	d := SequenceDescriptor{
		BasesCount:          15,
		PackedBasesFilepos:  72,
		PackedBasesLength:   4,
		SeqfragmentsFilepos: 200,
		SeqfragmentsCount:   3,
		Metadata:            MetadataRef{EntriesFilepos: 500, EntriesCount: 2},
	}

	data := d.Bytes(engine)
	require.Len(t, data, SequenceDescriptorSize)
	require.Equal(t, d, ParseSequenceDescriptor(data, engine))
}

func TestParseSequenceDescriptors(t *testing.T) {
	engine := endian.LittleEndian()
	want := []SequenceDescriptor{
		{BasesCount: 1, PackedBasesFilepos: 0, PackedBasesLength: 1},
		{BasesCount: 2, PackedBasesFilepos: 1, PackedBasesLength: 1},
	}

	buf := make([]byte, 0, SequenceDescriptorSize*len(want))
	for _, d := range want {
		buf = append(buf, d.Bytes(engine)...)
	}

	require.Equal(t, want, ParseSequenceDescriptors(buf, len(want), engine))
}
