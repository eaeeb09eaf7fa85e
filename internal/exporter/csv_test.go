package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sooscli/internal/dataprocessing"
)

func TestWriteRevenueBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingresos.csv")
	entries := []dataprocessing.RevenueEntry{
		{ProductID: "P2", Name: "Aceite", Revenue: 75},
		{ProductID: "P1", Name: "Arroz", Revenue: 30.5},
	}

	require.NoError(t, NewCSVWriter(nil).WriteRevenueBreakdown(path, ';', entries))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM for Excel, then semicolon-separated rows in entry order.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
	assert.Equal(t,
		"ProductID;Name;Revenue\n"+
			"P2;Aceite;75.00\n"+
			"P1;Arroz;30.50\n",
		string(content[3:]))
}

func TestWriteCSVDefaultSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))
}

func TestWriteCSVCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.csv")
	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{Headers: []string{"a"}})
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestWriteCSVFailure(t *testing.T) {
	// Target path is an existing directory.
	err := NewCSVWriter(nil).WriteCSV(t.TempDir(), WriteOptions{Headers: []string{"a"}})
	assert.Error(t, err)
}
