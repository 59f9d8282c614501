// Package excel parsea planillas de alta masiva de artículos.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

var _ usecase.ItemSheetParser = Parser{}

// Parser implementa el puerto ItemSheetParser sobre excelize.
type Parser struct{}

// NewParser construye el parser.
func NewParser() Parser {
	return Parser{}
}

// Alias de cabecera aceptados (planillas en español o inglés).
var headerAliases = map[string]string{
	"name":              "name",
	"nombre":            "name",
	"articulo":          "name",
	"artículo":          "name",
	"unit_price":        "unit_price",
	"precio":            "unit_price",
	"precio unitario":   "unit_price",
	"box_quantity":      "box_quantity",
	"unidades por caja": "box_quantity",
	"caja":              "box_quantity",
	"alert_min":         "alert_min",
	"alerta":            "alert_min",
	"minimo":            "alert_min",
	"mínimo":            "alert_min",
	"total_quantity":    "total_quantity",
	"stock":             "total_quantity",
	"cantidad":          "total_quantity",
	"supplier":          "supplier",
	"proveedor":         "supplier",
}

// ParseItemRows lee la primera hoja de una planilla xlsx y devuelve las
// filas de artículos. Requiere las columnas name, box_quantity y
// supplier; el resto es opcional y por defecto cero.
func (Parser) ParseItemRows(reader io.Reader) ([]usecase.ItemSheetRow, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("la planilla no tiene hojas")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("la planilla no tiene filas de datos")
	}

	colMap := mapColumns(rows[0])
	for _, required := range []string{"name", "box_quantity", "supplier"} {
		if _, ok := colMap[required]; !ok {
			return nil, fmt.Errorf("falta la columna requerida: %s", required)
		}
	}

	result := make([]usecase.ItemSheetRow, 0, len(rows)-1)
	for index := 1; index < len(rows); index++ {
		cells := rows[index]
		name := strings.TrimSpace(readCell(cells, colMap, "name"))
		if name == "" {
			continue // fila vacía
		}
		boxQuantity, err := readInt(cells, colMap, "box_quantity")
		if err != nil || boxQuantity <= 0 {
			return nil, fmt.Errorf("fila %d: unidades por caja inválidas", index+1)
		}
		alertMin, err := readInt(cells, colMap, "alert_min")
		if err != nil || alertMin < 0 {
			return nil, fmt.Errorf("fila %d: umbral de alerta inválido", index+1)
		}
		totalQuantity, err := readInt(cells, colMap, "total_quantity")
		if err != nil || totalQuantity < 0 {
			return nil, fmt.Errorf("fila %d: stock inicial inválido", index+1)
		}
		unitPrice, err := readDecimal(cells, colMap, "unit_price")
		if err != nil || unitPrice.IsNegative() {
			return nil, fmt.Errorf("fila %d: precio unitario inválido", index+1)
		}
		supplier := strings.TrimSpace(readCell(cells, colMap, "supplier"))
		if supplier == "" {
			return nil, fmt.Errorf("fila %d: proveedor vacío", index+1)
		}

		result = append(result, usecase.ItemSheetRow{
			Name:          name,
			UnitPrice:     unitPrice,
			BoxQuantity:   boxQuantity,
			AlertMin:      alertMin,
			TotalQuantity: totalQuantity,
			Supplier:      supplier,
		})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("la planilla no tiene filas válidas")
	}
	return result, nil
}

func mapColumns(header []string) map[string]int {
	colMap := make(map[string]int)
	for idx, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if canonical, ok := headerAliases[key]; ok {
			colMap[canonical] = idx
		}
	}
	return colMap
}

func readCell(cells []string, colMap map[string]int, column string) string {
	idx, ok := colMap[column]
	if !ok || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func readInt(cells []string, colMap map[string]int, column string) (int64, error) {
	raw := strings.TrimSpace(readCell(cells, colMap, column))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func readDecimal(cells []string, colMap map[string]int, column string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(readCell(cells, colMap, column))
	if raw == "" {
		return decimal.Zero, nil
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	return decimal.NewFromString(raw)
}
