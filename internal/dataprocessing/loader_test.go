package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "sooscli/internal/errors"
)

// writeFile writes a fixture file into a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProducts(t *testing.T) {
	path := writeFile(t, "productos.csv",
		"id;nombre;precio;cantidad\n"+
			"P1;Arroz;10;2\n"+
			"P2;Aceite;25;1\n")

	inv, warnings, err := NewLoader(nil, ';').LoadProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 2, inv.Len())

	p, ok := inv.Get("P1")
	require.True(t, ok)
	assert.Equal(t, "Arroz", p.Name)
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, 2, p.Quantity)

	// Encounter order is preserved for stable tie-breaking downstream.
	products := inv.Products()
	assert.Equal(t, "P1", products[0].ID)
	assert.Equal(t, "P2", products[1].ID)
}

func TestLoadProductsSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, "productos.csv",
		"id;nombre;precio;cantidad\n"+
			"P1;Arroz;10;2\n"+
			"P2;Aceite\n"+ // short row
			"P3;Sal;barato;5\n"+ // non-numeric price
			"P4;Azúcar;8;mucho\n"+ // non-numeric quantity
			"P5;Café;30;4\n")

	inv, warnings, err := NewLoader(nil, ';').LoadProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, warnings, 3)
	assert.Equal(t, 2, inv.Len())

	_, ok := inv.Get("P3")
	assert.False(t, ok)
	_, ok = inv.Get("P5")
	assert.True(t, ok)
}

func TestLoadProductsMissingFile(t *testing.T) {
	inv, _, err := NewLoader(nil, ';').LoadProducts(context.Background(),
		filepath.Join(t.TempDir(), "no-such.csv"))

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	// Empty inventory, not nil: downstream aggregations still run.
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Len())
}

func TestLoadProductsCustomSeparator(t *testing.T) {
	path := writeFile(t, "productos.csv",
		"id,nombre,precio,cantidad\n"+
			"P1,Arroz,10,2\n")

	inv, _, err := NewLoader(nil, ',').LoadProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Len())
}

func TestLoadProductsFromWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "productos.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"id", "nombre", "precio", "cantidad"},
		{"P1", "Arroz", 10, 2},
		{"P2", "Aceite", 25, 1},
		{"P3", "Sal", "barato", 5}, // invalid price, skipped
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	inv, warnings, err := NewLoader(nil, ';').LoadProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	require.Equal(t, 2, inv.Len())

	p, ok := inv.Get("P2")
	require.True(t, ok)
	assert.Equal(t, 25.0, p.Price)
}

func TestInventoryAddKeepsFirstPosition(t *testing.T) {
	inv := NewInventory()
	inv.Add(Product{ID: "A", Price: 1})
	inv.Add(Product{ID: "B", Price: 2})
	inv.Add(Product{ID: "A", Price: 3}) // replacement keeps position

	products := inv.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].ID)
	assert.Equal(t, 3.0, products[0].Price)
	assert.Equal(t, "B", products[1].ID)
}
