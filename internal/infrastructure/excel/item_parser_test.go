package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/almacen-api/internal/infrastructure/excel"
)

// buildSheet arma un xlsx en memoria con la cabecera y filas dadas.
func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseItemRows_PlanillaEnEspanol(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"Nombre", "Precio", "Unidades por caja", "Alerta", "Stock", "Proveedor"},
		{"Guantes de nitrilo", "1.50", 10, 5, 30, "Distrimed"},
		{"Alcohol 70%", "3,25", 6, 2, 0, "Insumos SA"},
	})

	rows, err := excel.Parser{}.ParseItemRows(reader)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Guantes de nitrilo", rows[0].Name)
	assert.True(t, rows[0].UnitPrice.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, int64(10), rows[0].BoxQuantity)
	assert.Equal(t, int64(5), rows[0].AlertMin)
	assert.Equal(t, int64(30), rows[0].TotalQuantity)
	assert.Equal(t, "Distrimed", rows[0].Supplier)

	// Coma decimal aceptada
	assert.True(t, rows[1].UnitPrice.Equal(decimal.RequireFromString("3.25")))
}

func TestParseItemRows_CabecerasEnIngles(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"name", "unit_price", "box_quantity", "alert_min", "total_quantity", "supplier"},
		{"Gasas", "0.80", 20, 10, 100, "Insumos SA"},
	})

	rows, err := excel.Parser{}.ParseItemRows(reader)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gasas", rows[0].Name)
	assert.Equal(t, int64(20), rows[0].BoxQuantity)
}

func TestParseItemRows_IgnoraFilasVacias(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"Nombre", "Unidades por caja", "Proveedor"},
		{"Guantes", 10, "Distrimed"},
		{"", "", ""},
		{"Gasas", 20, "Insumos SA"},
	})

	rows, err := excel.Parser{}.ParseItemRows(reader)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParseItemRows_ColumnaRequeridaFaltante(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"Nombre", "Precio"},
		{"Guantes", "1.50"},
	})

	_, err := excel.Parser{}.ParseItemRows(reader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box_quantity")
}

func TestParseItemRows_CajaInvalida(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"Nombre", "Unidades por caja", "Proveedor"},
		{"Guantes", 0, "Distrimed"},
	})

	_, err := excel.Parser{}.ParseItemRows(reader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unidades por caja")
}

func TestParseItemRows_SinDatos(t *testing.T) {
	reader := buildSheet(t, [][]interface{}{
		{"Nombre", "Unidades por caja", "Proveedor"},
	})

	_, err := excel.Parser{}.ParseItemRows(reader)
	assert.Error(t, err)
}

func TestParseItemRows_NoEsUnXlsx(t *testing.T) {
	_, err := excel.Parser{}.ParseItemRows(bytes.NewReader([]byte("esto no es una planilla")))
	assert.Error(t, err)
}
