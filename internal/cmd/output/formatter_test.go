package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswalklabs/crosswalk/internal/cmd/output"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

func sample() *tables.Table {
	t := tables.New("issuer_name", "cusip")
	t.Append(tables.Row{"issuer_name": "APPLE INC", "cusip": "037833100"})
	t.Append(tables.Row{"issuer_name": "MICROSOFT CORPORATION"})
	return t
}

func TestCSVFormatter(t *testing.T) {
	var out strings.Builder
	require.NoError(t, output.NewFormatter(output.FormatCSV).Format(&out, sample()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "issuer_name,cusip", lines[0])
	assert.Equal(t, "MICROSOFT CORPORATION,", lines[2])
}

func TestJSONFormatter(t *testing.T) {
	var out strings.Builder
	require.NoError(t, output.NewFormatter(output.FormatJSON).Format(&out, sample()))
	assert.Contains(t, out.String(), `"columns"`)
	assert.Contains(t, out.String(), "APPLE INC")
}

func TestYAMLFormatter(t *testing.T) {
	var out strings.Builder
	require.NoError(t, output.NewFormatter(output.FormatYAML).Format(&out, sample()))
	assert.Contains(t, out.String(), "columns:")
}

func TestTableFormatter(t *testing.T) {
	var out strings.Builder
	require.NoError(t, output.NewFormatter(output.FormatTable).Format(&out, sample()))
	assert.Contains(t, out.String(), "Issuer Name")
	assert.Contains(t, out.String(), "-", "null cells render as a dash")
}

func TestParseFormat(t *testing.T) {
	format, err := output.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, format)

	_, err = output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, output.FormatJSON, output.DetectFormat("json"))
}
