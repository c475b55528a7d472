package ingest

import (
	"testing"

	"stocktake-manager/core/tabular"

	"github.com/stretchr/testify/assert"
)

func TestIsValidQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Plain", "5", true},
		{"ExplicitZero", "0", true},
		{"Decimal", "12.5", true},
		{"Negative", "-3", true},
		{"Empty", "", false},
		{"Whitespace", "   ", false},
		{"Dash", "-", false},
		{"NA", "n/a", false},
		{"NAUpper", "N/A", false},
		{"ScanTimestamp", "1678886400123", false},
		{"TenDigitID", "1010100090", false},
		{"EightDigitOverTenThousand", "99999999", false},
		{"NineDigitOverTenThousand", "123456789", false},
		{"EightDigitZeroPadded", "00000042", true},
		{"OverMillion", "1000001", false},
		{"ExactMillion", "1000000", true},
		{"NonNumeric", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidQuantity(tt.in))
		})
	}
}

func TestToNum(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"10.50", 10.5},
		{"-7", -7},
		{"$1,234.50", 1234.5},
		{"R 99.90", 99.9},
		{"", 0},
		{"garbage", 0},
		{"12 pcs", 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToNum(tt.in), "ToNum(%q)", tt.in)
	}
}

func TestResolveQuantity_Precedence(t *testing.T) {
	ix := tabular.NewHeaderIndex([]string{"Barcode", "Count 2", "Count 5", "Quantity"})

	t.Run("LowerColumnWhenHigherEmpty", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "5", "", "9"})
		assert.True(t, usable)
		assert.Equal(t, 5.0, qty)
	})

	t.Run("ExplicitZeroAtHigherPriorityWins", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "9", "0", "3"})
		assert.True(t, usable)
		assert.Equal(t, 0.0, qty)
	})

	t.Run("QuantityIsWeakest", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "", "", "7"})
		assert.True(t, usable)
		assert.Equal(t, 7.0, qty)
	})

	t.Run("IDLikeValueRejected", func(t *testing.T) {
		// Count5 holds a scan timestamp; Count2 must win.
		qty, usable := resolveQuantity(ix, []string{"X", "4", "1678886400123", ""})
		assert.True(t, usable)
		assert.Equal(t, 4.0, qty)
	})

	t.Run("NothingUsable", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "", "", ""})
		assert.False(t, usable)
		assert.Equal(t, 0.0, qty)
	})
}

func TestResolveQuantity_MiddleRungs(t *testing.T) {
	// Count Quantity and Counted sit between the recount columns and the
	// plain Quantity column in the precedence ladder.
	ix := tabular.NewHeaderIndex([]string{"Barcode", "Count Quantity", "Counted", "Quantity"})

	t.Run("CountQuantityBeatsCounted", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "3", "5", "7"})
		assert.True(t, usable)
		assert.Equal(t, 3.0, qty)
	})

	t.Run("CountedBeatsQuantity", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "", "5", "7"})
		assert.True(t, usable)
		assert.Equal(t, 5.0, qty)
	})

	t.Run("QuantityLast", func(t *testing.T) {
		qty, usable := resolveQuantity(ix, []string{"X", "", "", "7"})
		assert.True(t, usable)
		assert.Equal(t, 7.0, qty)
	})
}

func TestResolveQuantity_SumFallback(t *testing.T) {
	// Columns named Count/Count1 are not precedence candidates but do match
	// the fallback pattern; their values sum.
	ix := tabular.NewHeaderIndex([]string{"Barcode", "Count", "Count1"})

	qty, usable := resolveQuantity(ix, []string{"X", "3", "4"})
	assert.True(t, usable)
	assert.Equal(t, 7.0, qty)
}
