package resolution

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `code,name,category,product_type,subcategory,turkish,gtip,series
999001,Test Bike,Bisiklet,Dağ Bisikleti,MTB,Test dağ bisikleti,Bisiklet,Marlin
`

func TestLoadCatalogEntries(t *testing.T) {
	entries, err := LoadCatalogEntries(strings.NewReader(catalogCSV))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "999001", entries[0].Code)
	assert.Equal(t, "Test dağ bisikleti", entries[0].Turkish)
	assert.Equal(t, "Marlin", entries[0].Series)
}

func TestLoadCatalogEntries_MissingCode(t *testing.T) {
	_, err := LoadCatalogEntries(strings.NewReader("code,turkish\n,açıklama\n"))
	assert.Error(t, err)
}

func TestLoadCatalogEntries_MissingTurkish(t *testing.T) {
	_, err := LoadCatalogEntries(strings.NewReader("code,turkish\nABC123,\n"))
	assert.Error(t, err)
}

func TestExtendedCatalog(t *testing.T) {
	c, err := ExtendedCatalog(strings.NewReader(catalogCSV))
	require.NoError(t, err)

	record, ok := c.Lookup("999001")
	require.True(t, ok)
	assert.Equal(t, "Test Bike", record.Name)
	assert.Equal(t, ProvenanceDatabase, record.Provenance)

	// Built-in entries stay intact.
	_, ok = c.Lookup("581633")
	assert.True(t, ok)
}

func TestExtendedCatalog_BuiltinWinsOnCollision(t *testing.T) {
	dup := "code,name,turkish\n581633,Overridden,başka\n"

	c, err := ExtendedCatalog(strings.NewReader(dup))
	require.NoError(t, err)

	record, ok := c.Lookup("581633")
	require.True(t, ok)
	assert.Equal(t, "Bontrager Aeolus Comp Sele 145mm Siyah", record.Name)
}
