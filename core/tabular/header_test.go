package tabular_test

import (
	"testing"

	"stocktake-manager/core/tabular"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bin Location", "binlocation"},
		{"BINLOCATION", "binlocation"},
		{"bin_location", "binlocation"},
		{"  Stock  Take   Code ", "stocktakecode"},
		{"Count 2", "count2"},
		{"Qty-On-Hand", "qtyonhand"},
		{"", ""},
		{"***", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tabular.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNewHeaderIndex_LastOccurrenceWins(t *testing.T) {
	ix := tabular.NewHeaderIndex([]string{"Barcode", "Qty", "BAR CODE"})

	col, ok := ix.Col("barcode")
	assert.True(t, ok)
	assert.Equal(t, 2, col)
}

func TestHeaderIndex_Pick(t *testing.T) {
	ix := tabular.NewHeaderIndex([]string{"Item Code", "Description", "Quantity"})
	row := []string{"ABC123", "Widget", "42"}

	t.Run("FirstCandidateWins", func(t *testing.T) {
		assert.Equal(t, "ABC123", ix.Pick(row, "barcode", "item code", "sku"))
	})

	t.Run("SkipsEmptyCell", func(t *testing.T) {
		assert.Equal(t, "42", ix.Pick([]string{"", "  ", "42"}, "item code", "quantity"))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Equal(t, "", ix.Pick(row, "warehouse"))
	})

	t.Run("ShortRow", func(t *testing.T) {
		assert.Equal(t, "", ix.Pick([]string{"x"}, "quantity"))
	})
}
