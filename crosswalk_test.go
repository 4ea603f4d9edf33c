package crosswalk_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswalklabs/crosswalk"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

func TestConsolidateCSVEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"issuer_name,cusip,isin,figi",
		"MICROSOFT CORPORATION,594918104,US5949181045,MSFT",
		"MICROSOFT CORP,594918104,,MSFT",
		"MICROSOFT CORPORATION,,US5949181045,",
		"APPLE INC,037833100,US0378331005,AAPL",
	}, "\n")

	table, err := tables.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	result, err := crosswalk.Consolidate(context.Background(), table)
	require.NoError(t, err)

	require.Equal(t, 2, result.Table.Len())
	assert.Equal(t, tables.Row{
		"issuer_name": "MICROSOFT CORPORATION",
		"cusip":       "594918104",
		"isin":        "US5949181045",
		"figi":        "MSFT",
	}, result.Table.Rows[0])
	assert.Equal(t, tables.Row{
		"issuer_name": "APPLE INC",
		"cusip":       "037833100",
		"isin":        "US0378331005",
		"figi":        "AAPL",
	}, result.Table.Rows[1])

	var out strings.Builder
	require.NoError(t, tables.WriteCSV(&out, result.Table))
	assert.True(t, strings.HasPrefix(out.String(), "issuer_name,cusip,isin,figi\n"))
}

func TestConsolidateRowPreserving(t *testing.T) {
	table := tables.New("issuer", "isin")
	table.Append(tables.Row{"issuer": "MSFT CORP", "isin": "US1"})
	table.Append(tables.Row{"issuer": "MSFT CORPORATION", "isin": "US1"})

	result, err := crosswalk.Consolidate(context.Background(), table,
		crosswalk.WithRowPreserving(true))
	require.NoError(t, err)

	require.Equal(t, 2, result.Table.Len())
	assert.Equal(t, result.Table.Rows[0], result.Table.Rows[1],
		"both rows resolve to the same entity record")
}

func TestConsolidateExplicitStrategy(t *testing.T) {
	table := tables.New("issuer")
	table.Append(tables.Row{"issuer": "APPLE INC"})

	result, err := crosswalk.Consolidate(context.Background(), table,
		crosswalk.WithStrategy(crosswalk.MaxCount()),
		crosswalk.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Table.Len())
}
