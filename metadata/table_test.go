package metadata

import (
	"testing"

	"github.com/sean-dougherty/seqio/stringtable"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, pairs map[string]string) Table {
	t.Helper()

	strs := stringtable.New()
	b := NewBuilder(strs)
	for k, v := range pairs {
		b.Set(k, v)
	}

	blob, offsetByID := strs.Finalize()
	entries := b.Finalize(offsetByID)

	return New(entries, blob)
}

func TestMetadataTable_LookupFindsExistingKey(t *testing.T) {
	tab := buildTable(t, map[string]string{
		"organism":  "Homo sapiens",
		"assembly":  "GRCh38",
		"chromosome": "1",
	})

	v, ok := tab.Lookup("organism")
	require.True(t, ok)
	require.Equal(t, "Homo sapiens", v)

	v, ok = tab.Lookup("assembly")
	require.True(t, ok)
	require.Equal(t, "GRCh38", v)
}

func TestMetadataTable_LookupMissingKey(t *testing.T) {
	tab := buildTable(t, map[string]string{"a": "1"})

	_, ok := tab.Lookup("nonexistent")
	require.False(t, ok)
}

func TestMetadataTable_LookupEmptyTable(t *testing.T) {
	tab := buildTable(t, nil)

	_, ok := tab.Lookup("anything")
	require.False(t, ok)
}

func TestMetadataTable_EnumerateAll(t *testing.T) {
	tab := buildTable(t, map[string]string{"b": "2", "a": "1", "c": "3"})

	require.Equal(t, 3, tab.Len())

	seen := make(map[string]string)
	for i := 0; i < tab.Len(); i++ {
		k, v := tab.At(i)
		seen[k] = v
	}

	require.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, seen)
}

func TestMetadataTable_EntriesSortedByKeyOffset(t *testing.T) {
	tab := buildTable(t, map[string]string{"zebra": "z", "apple": "a"})

	k0, _ := tab.At(0)
	k1, _ := tab.At(1)
	require.Equal(t, "apple", k0)
	require.Equal(t, "zebra", k1)
}
