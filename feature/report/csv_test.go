package report

import (
	"strings"
	"testing"

	"stocktake-manager/feature/stocktake/variance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []variance.Row{
	{
		ItemCode:      "ABC123",
		ItemName:      "Widget",
		Book:          10,
		Counted:       8,
		Variance:      -2,
		UnitPrice:     5,
		VarianceValue: -10,
		BinLocations:  []string{"A-01", "B-02"},
	},
	{
		ItemCode: "ZZZ999",
		ItemName: "Mystery Item",
		Counted:  4,
		Variance: 4,
		Missing:  true,
	},
}

func TestRenderVarianceCSV(t *testing.T) {
	out := string(RenderVarianceCSV(sampleRows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Item Code,Item Name,Book,Counted,Variance,Unit Price,Variance Value,Bin Locations,Missing", lines[0])
	assert.Equal(t, "ABC123,Widget,10,8,-2,5,-10,A-01; B-02,", lines[1])
	assert.Equal(t, "ZZZ999,Mystery Item,0,4,4,0,0,,yes", lines[2])
}

func TestRenderVarianceCSV_QuotesCommas(t *testing.T) {
	rows := []variance.Row{{ItemCode: "A1", ItemName: `Bolt, M8 "short"`, Counted: 1, Variance: 1}}
	out := string(RenderVarianceCSV(rows))
	assert.Contains(t, out, `"Bolt, M8 ""short"""`)
}

func TestRenderBinCSV(t *testing.T) {
	out := string(RenderBinCSV(sampleRows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Bin Location,Item Code,Item Name,Counted,Variance", lines[0])
	assert.Equal(t, "A-01,ABC123,Widget,8,-2", lines[1])
	assert.Equal(t, "B-02,ABC123,Widget,8,-2", lines[2])
	// Unbinned rows come last with an empty bin column.
	assert.Equal(t, ",ZZZ999,Mystery Item,4,4", lines[3])
}

func TestRenderVarianceCSV_Empty(t *testing.T) {
	out := string(RenderVarianceCSV(nil))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
}
