package pnaformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseTransform_Apply(t *testing.T) {
	require.Equal(t, byte('a'), NoTransform.Apply('a'))

	require.Equal(t, byte('A'), CapsGATCN.Apply('a'))
	require.Equal(t, byte('A'), CapsGATCN.Apply('A'))
	require.Equal(t, byte('N'), CapsGATCN.Apply('n'))
	require.Equal(t, byte('N'), CapsGATCN.Apply('x'))
	require.Equal(t, byte('T'), CapsGATCN.Apply('t'))
}

func TestBaseTransform_String(t *testing.T) {
	require.Equal(t, "None", NoTransform.String())
	require.Equal(t, "CapsGATCN", CapsGATCN.String())
}
