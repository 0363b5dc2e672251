package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	record, ok := c.Lookup("581633")
	require.True(t, ok)
	assert.Equal(t, "Bontrager Aeolus Comp Sele 145mm Siyah", record.Name)
	assert.Equal(t, ProvenanceDatabase, record.Provenance)
	assert.True(t, record.Resolved())
}

func TestCatalog_LookupNormalizes(t *testing.T) {
	c := DefaultCatalog()

	record, ok := c.Lookup("  w322175 ")
	require.True(t, ok)
	assert.Equal(t, "Vites Kulağı", record.ProductType)
}

func TestCatalog_Miss(t *testing.T) {
	c := DefaultCatalog()

	_, ok := c.Lookup("NOPE123")
	assert.False(t, ok)
	assert.False(t, c.Contains("NOPE123"))
}

func TestCatalog_EntriesHaveDescriptions(t *testing.T) {
	c := DefaultCatalog()
	require.NotZero(t, c.Len())

	for _, entry := range c.Entries() {
		record := ProductRecord{Turkish: entry.Turkish, GTIP: entry.GTIP}
		assert.NotEmpty(t, entry.Name, entry.Code)
		assert.NotEmpty(t, entry.Turkish, entry.Code)
		assert.NotEmpty(t, record.GTIPOrTurkish(), entry.Code)
	}
}
