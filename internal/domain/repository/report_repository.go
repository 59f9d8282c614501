package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// PurchaseRow resultado crudo de la consulta de últimas compras.
// Lo produce la BD; el use case lo convierte en DTO.
type PurchaseRow struct {
	MovementID int64
	ItemName   string
	Value      decimal.Decimal // unidades base * precio unitario
	Supplier   string
	CreatedAt  time.Time
}

// MonthlyFlowRow fila del flujo mensual de dinero. Month es 1..12;
// los meses sin movimientos vienen con valores en cero, nunca omitidos.
type MonthlyFlowRow struct {
	Month     int
	Purchases decimal.Decimal // valor de entradas
	Removals  decimal.Decimal // valor de salidas
}

// ItemDrift desfase detectado entre el total cacheado de un artículo y
// la suma firmada de su historial de movimientos.
type ItemDrift struct {
	ItemTypeID int64
	Cached     int64
	Computed   int64
}

// ReportRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only y comparten con el ledger la misma
// regla de conversión a unidades base.
type ReportRepository interface {
	// MovementsValue suma el valor monetario de los movimientos del tipo
	// dado cuyo timestamp cae en [begin, end].
	MovementsValue(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (decimal.Decimal, error)

	// MovementsUnits suma las unidades base de los movimientos del tipo
	// dado en [begin, end].
	MovementsUnits(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (int64, error)

	// CountMovements cuenta los movimientos del tipo dado en [begin, end].
	CountMovements(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (int, error)

	// LastPurchases devuelve las `limit` entradas más recientes con su
	// valor calculado y el nombre del proveedor.
	LastPurchases(ctx context.Context, limit int) ([]PurchaseRow, error)

	// MonthlyFlow devuelve exactamente 12 filas (enero..diciembre) con el
	// valor de entradas y salidas por mes calendario, rellenando con cero
	// los meses sin movimientos.
	MonthlyFlow(ctx context.Context) ([]MonthlyFlowRow, error)

	// FindDrift devuelve los artículos cuyo total cacheado no coincide
	// con la suma firmada de su historial.
	FindDrift(ctx context.Context) ([]ItemDrift, error)
}
