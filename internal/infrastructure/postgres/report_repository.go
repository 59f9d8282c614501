package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// Fragmentos SQL compartidos por todas las consultas de reporte. Son la
// misma regla de conversión que stock.UnitEquivalent: si cambia una,
// cambia la otra, o los totales del dashboard derivan del stock real.
const (
	// unitsExpr unidades base de un movimiento m joineado con item_types it.
	unitsExpr = `(CASE WHEN m.is_boxes THEN m.quantity * it.box_quantity ELSE m.quantity END)`
	// valueExpr valor monetario: unidades base * precio unitario.
	valueExpr = unitsExpr + ` * it.unit_price`
)

// ReportRepo consultas de solo lectura del dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MovementsValue suma el valor monetario de los movimientos del tipo
// dado en [begin, end]. COALESCE devuelve cero en períodos vacíos.
func (r *ReportRepo) MovementsValue(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + valueExpr + `), 0)
		FROM movements m
		JOIN item_types it ON it.id = m.item_type_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE mt.kind = $1
		  AND m.created_at >= $2 AND m.created_at <= $3`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, int16(kind), begin, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.MovementsValue: %w", err)
	}
	return total, nil
}

// MovementsUnits suma las unidades base de los movimientos del tipo dado
// en [begin, end].
func (r *ReportRepo) MovementsUnits(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(` + unitsExpr + `), 0)
		FROM movements m
		JOIN item_types it ON it.id = m.item_type_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE mt.kind = $1
		  AND m.created_at >= $2 AND m.created_at <= $3`
	var total int64
	if err := r.pool.QueryRow(ctx, query, int16(kind), begin, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("report.MovementsUnits: %w", err)
	}
	return total, nil
}

// CountMovements cuenta los movimientos del tipo dado en [begin, end].
func (r *ReportRepo) CountMovements(ctx context.Context, kind entity.MovementKind, begin, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM movements m
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE mt.kind = $1
		  AND m.created_at >= $2 AND m.created_at <= $3`
	var count int
	if err := r.pool.QueryRow(ctx, query, int16(kind), begin, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("report.CountMovements: %w", err)
	}
	return count, nil
}

// LastPurchases devuelve las `limit` entradas más recientes con su valor
// calculado y el nombre del proveedor.
func (r *ReportRepo) LastPurchases(ctx context.Context, limit int) ([]repository.PurchaseRow, error) {
	query := `
		SELECT m.id, it.name, ` + valueExpr + ` AS value, s.name, m.created_at
		FROM movements m
		JOIN item_types it ON it.id = m.item_type_id
		JOIN suppliers s ON s.id = it.supplier_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE mt.kind = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, int16(entity.KindAddition), limit)
	if err != nil {
		return nil, fmt.Errorf("report.LastPurchases: %w", err)
	}
	defer rows.Close()

	var results []repository.PurchaseRow
	for rows.Next() {
		var row repository.PurchaseRow
		if err := rows.Scan(&row.MovementID, &row.ItemName, &row.Value, &row.Supplier, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("report.LastPurchases scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MonthlyFlow devuelve exactamente 12 filas con el valor de entradas y
// salidas por mes calendario. generate_series rellena con cero los meses
// sin movimientos en lugar de omitirlos.
func (r *ReportRepo) MonthlyFlow(ctx context.Context) ([]repository.MonthlyFlowRow, error) {
	query := `
		WITH monthly AS (
			SELECT EXTRACT(MONTH FROM m.created_at)::INT AS month,
			       SUM(CASE WHEN mt.kind = $1 THEN ` + valueExpr + ` ELSE 0 END) AS purchases,
			       SUM(CASE WHEN mt.kind = $2 THEN ` + valueExpr + ` ELSE 0 END) AS removals
			FROM movements m
			JOIN item_types it ON it.id = m.item_type_id
			JOIN movement_types mt ON mt.id = m.movement_type_id
			GROUP BY EXTRACT(MONTH FROM m.created_at)
		)
		SELECT s.month, COALESCE(monthly.purchases, 0), COALESCE(monthly.removals, 0)
		FROM generate_series(1, 12) AS s(month)
		LEFT JOIN monthly ON monthly.month = s.month
		ORDER BY s.month`
	rows, err := r.pool.Query(ctx, query, int16(entity.KindAddition), int16(entity.KindRemoval))
	if err != nil {
		return nil, fmt.Errorf("report.MonthlyFlow: %w", err)
	}
	defer rows.Close()

	results := make([]repository.MonthlyFlowRow, 0, 12)
	for rows.Next() {
		var row repository.MonthlyFlowRow
		if err := rows.Scan(&row.Month, &row.Purchases, &row.Removals); err != nil {
			return nil, fmt.Errorf("report.MonthlyFlow scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// FindDrift devuelve los artículos cuyo total cacheado no coincide con
// la suma firmada de su historial (debería estar siempre vacío; existe
// para detectar bugs del ledger y alimentar la reconciliación).
func (r *ReportRepo) FindDrift(ctx context.Context) ([]repository.ItemDrift, error) {
	query := `
		SELECT it.id, it.total_quantity,
		       COALESCE(SUM((CASE WHEN mt.kind = $1 THEN 1 ELSE -1 END) * ` + unitsExpr + `), 0) AS computed
		FROM item_types it
		LEFT JOIN movements m ON m.item_type_id = it.id
		LEFT JOIN movement_types mt ON mt.id = m.movement_type_id
		GROUP BY it.id, it.total_quantity
		HAVING it.total_quantity <> COALESCE(SUM((CASE WHEN mt.kind = $1 THEN 1 ELSE -1 END) * ` + unitsExpr + `), 0)`
	rows, err := r.pool.Query(ctx, query, int16(entity.KindAddition))
	if err != nil {
		return nil, fmt.Errorf("report.FindDrift: %w", err)
	}
	defer rows.Close()

	var results []repository.ItemDrift
	for rows.Next() {
		var row repository.ItemDrift
		if err := rows.Scan(&row.ItemTypeID, &row.Cached, &row.Computed); err != nil {
			return nil, fmt.Errorf("report.FindDrift scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
