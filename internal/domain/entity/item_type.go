package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType representa un artículo del catálogo de almacén.
// TotalQuantity es un agregado derivado del historial de movimientos:
// solo el ledger lo modifica (nunca las operaciones de catálogo).
type ItemType struct {
	ID            int64
	Name          string          // único
	UnitPrice     decimal.Decimal // precio por unidad
	BoxQuantity   int64           // unidades por caja (> 0)
	AlertMin      int64           // umbral de alerta de stock bajo
	TotalQuantity int64           // stock actual en unidades (>= 0)
	SupplierID    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowAlert indica si el stock actual está por debajo del umbral de alerta.
func (i *ItemType) BelowAlert() bool {
	return i.TotalQuantity < i.AlertMin
}
