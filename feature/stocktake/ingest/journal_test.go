package ingest_test

import (
	"testing"

	"stocktake-manager/feature/stocktake/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJournal_Basic(t *testing.T) {
	entries := ingest.ParseJournal("Item Code,On Hand,Cost Price\n123456,95,10.50")

	require.Len(t, entries, 1)
	assert.Equal(t, "123456", entries[0].ItemCode)
	assert.Equal(t, 95.0, entries[0].Book)
	assert.Equal(t, 10.5, entries[0].CostPrice)
}

func TestParseJournal_Empty(t *testing.T) {
	assert.Empty(t, ingest.ParseJournal(""))
	assert.Empty(t, ingest.ParseJournal("  \n "))
}

func TestParseJournal_SynonymHeaders(t *testing.T) {
	entries := ingest.ParseJournal("SKU;AX Quantity;Unit Cost;Description\nA1;12;3.25;Hex bolt")

	require.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].ItemCode)
	assert.Equal(t, 12.0, entries[0].Book)
	assert.Equal(t, 3.25, entries[0].CostPrice)
	assert.Equal(t, "Hex bolt", entries[0].ItemName)
}

func TestParseJournal_FullyQuotedExport(t *testing.T) {
	text := "\"Item Code\",\"On Hand\",\"Cost Price\"\n\"A9\",\"4\",\"1.10\""

	entries := ingest.ParseJournal(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "A9", entries[0].ItemCode)
	assert.Equal(t, 4.0, entries[0].Book)
	assert.Equal(t, 1.1, entries[0].CostPrice)
}

func TestParseJournal_KeepBoundary(t *testing.T) {
	// A row survives iff it has a barcode or a non-zero book quantity.
	text := "Item Code,On Hand\n" +
		",5\n" + // no code, non-zero book: kept (book is truthy)
		",0\n" + // no code, zero book: dropped
		"C1,0\n" + // code with explicit zero book: kept
		",\n" // nothing: dropped

	entries := ingest.ParseJournal(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "", entries[0].ItemCode)
	assert.Equal(t, 5.0, entries[0].Book)
	assert.Equal(t, "C1", entries[1].ItemCode)
	assert.Equal(t, 0.0, entries[1].Book)
}

func TestParseJournal_UnparsableNumbersBecomeZero(t *testing.T) {
	entries := ingest.ParseJournal("Item Code,On Hand,Cost Price\nZ1,n/a,free")

	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Book)
	assert.Equal(t, 0.0, entries[0].CostPrice)
}

func TestParseJournal_HeaderlessFallback(t *testing.T) {
	t.Run("ThreeColumns", func(t *testing.T) {
		entries := ingest.ParseJournal("1001;50;2.75")

		require.Len(t, entries, 1)
		assert.Equal(t, "1001", entries[0].ItemCode)
		assert.Equal(t, 50.0, entries[0].Book)
		assert.Equal(t, 2.75, entries[0].CostPrice)
	})

	t.Run("FourColumns", func(t *testing.T) {
		entries := ingest.ParseJournal(";;1002;30;COPPER PIPE;4.20")

		require.Len(t, entries, 1)
		assert.Equal(t, "1002", entries[0].ItemCode)
		assert.Equal(t, 30.0, entries[0].Book)
		assert.Equal(t, 4.2, entries[0].CostPrice)
		assert.Equal(t, "COPPER PIPE", entries[0].ItemName)
	})
}
