package stringtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_InternDeduplicates(t *testing.T) {
	tab := New()

	id1 := tab.Intern("gene_name")
	id2 := tab.Intern("organism")
	id3 := tab.Intern("gene_name")

	require.Equal(t, id1, id3)
	require.NotEqual(t, id1, id2)
	require.Equal(t, 2, tab.Len())
}

func TestTable_InternIDsStartAtOne(t *testing.T) {
	tab := New()
	require.Equal(t, uint32(1), tab.Intern("a"))
	require.Equal(t, uint32(2), tab.Intern("b"))
}

func TestTable_FinalizeSortsLexicographically(t *testing.T) {
	tab := New()
	idZebra := tab.Intern("zebra")
	idApple := tab.Intern("apple")
	idMango := tab.Intern("mango")

	blob, offsetByID := tab.Finalize()

	require.Equal(t, "apple\x00mango\x00zebra\x00", string(blob))
	require.Equal(t, uint32(0), offsetByID[idApple])
	require.Equal(t, uint32(6), offsetByID[idMango])
	require.Equal(t, uint32(12), offsetByID[idZebra])
}

func TestTable_FinalizeEmpty(t *testing.T) {
	tab := New()
	blob, offsetByID := tab.Finalize()
	require.Empty(t, blob)
	require.Empty(t, offsetByID)
}

func TestStringAt(t *testing.T) {
	tab := New()
	tab.Intern("one")
	tab.Intern("two")
	blob, _ := tab.Finalize()

	require.Equal(t, "one", StringAt(blob, 0))
	require.Equal(t, "two", StringAt(blob, 4))
}
