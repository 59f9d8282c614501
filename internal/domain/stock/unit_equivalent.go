// Package stock contiene la aritmética de dominio del ledger. La
// conversión a unidades vive solo aquí: el ledger y los reportes deben
// usar la misma regla exacta o el total cacheado deriva del histórico.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// UnitEquivalent convierte la cantidad de un movimiento a unidades base:
// cajas * unidades-por-caja cuando isBoxes, la cantidad tal cual si no.
// Aritmética entera exacta, sin redondeo acumulado.
func UnitEquivalent(quantity int64, isBoxes bool, boxQuantity int64) int64 {
	if isBoxes {
		return quantity * boxQuantity
	}
	return quantity
}

// MovementUnits devuelve las unidades base de un movimiento según el
// artículo al que referencia.
func MovementUnits(m *entity.Movement, item *entity.ItemType) int64 {
	return UnitEquivalent(m.Quantity, m.IsBoxes, item.BoxQuantity)
}

// MovementValue devuelve el valor monetario de un movimiento:
// unidades base * precio unitario del artículo.
func MovementValue(m *entity.Movement, item *entity.ItemType) decimal.Decimal {
	units := MovementUnits(m, item)
	return item.UnitPrice.Mul(decimal.NewFromInt(units))
}

// Sign devuelve el signo con el que un tipo de movimiento afecta el
// total: +1 entrada, -1 salida.
func Sign(kind entity.MovementKind) int64 {
	if kind == entity.KindAddition {
		return 1
	}
	return -1
}
