package packer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_KnownBases(t *testing.T) {
	cases := []struct {
		b    byte
		code uint8
	}{
		{'A', 0}, {'C', 1}, {'G', 2}, {'T', 3},
	}

	for _, c := range cases {
		code, ok := Encode(c.b)
		require.True(t, ok)
		require.Equal(t, c.code, code)
	}
}

func TestEncode_LowercaseBases(t *testing.T) {
	cases := []struct {
		b    byte
		code uint8
	}{
		{'a', 0}, {'c', 1}, {'g', 2}, {'t', 3},
	}

	for _, c := range cases {
		code, ok := Encode(c.b)
		require.True(t, ok)
		require.Equal(t, c.code, code)
	}
}

func TestEncode_NonACGT(t *testing.T) {
	for _, b := range []byte{'N', 'n', 'x', 0} {
		_, ok := Encode(b)
		require.False(t, ok)
	}
}

func TestUnpack_RoundTripsEncode(t *testing.T) {
	var packed byte
	bases := []byte{'A', 'C', 'G', 'T'}
	for i, b := range bases {
		code, ok := Encode(b)
		require.True(t, ok)
		packed |= code << (i * 2)
	}

	require.Equal(t, [4]byte{'A', 'C', 'G', 'T'}, Unpack(packed))
}

func TestUnpack_AllZero(t *testing.T) {
	require.Equal(t, [4]byte{'A', 'A', 'A', 'A'}, Unpack(0))
}

func TestUnpack_AllOnes(t *testing.T) {
	require.Equal(t, [4]byte{'T', 'T', 'T', 'T'}, Unpack(0xFF))
}
