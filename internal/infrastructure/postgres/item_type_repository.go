package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

const itemTypeColumns = `id, name, unit_price, box_quantity, alert_min, total_quantity, supplier_id, created_at, updated_at`

// ItemTypeRepo implementación del puerto ItemTypeRepository sobre
// PostgreSQL (usable con pool o tx).
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// Create persiste un artículo nuevo y asigna su id.
func (r *ItemTypeRepo) Create(ctx context.Context, item *entity.ItemType) error {
	query := `
		INSERT INTO item_types (name, unit_price, box_quantity, alert_min, total_quantity, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.UnitPrice, item.BoxQuantity, item.AlertMin,
		item.TotalQuantity, item.SupplierID, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("insert item type: %w", err)
	}
	return nil
}

// CreateMany persiste un lote de artículos. Devuelve cuántos insertó.
func (r *ItemTypeRepo) CreateMany(ctx context.Context, items []*entity.ItemType) (int, error) {
	created := 0
	for _, item := range items {
		if err := r.Create(ctx, item); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// GetByID obtiene un artículo. Devuelve nil si no existe.
func (r *ItemTypeRepo) GetByID(ctx context.Context, id int64) (*entity.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get item type")
}

// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR
// UPDATE) para que el chequeo de stock de una salida no pueda correrse
// con otra salida concurrente.
func (r *ItemTypeRepo) GetForUpdate(ctx context.Context, id int64) (*entity.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get item type for update")
}

// List lista el catálogo ordenado por nombre.
func (r *ItemTypeRepo) List(ctx context.Context) ([]*entity.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types ORDER BY name`
	return r.scanMany(ctx, query)
}

// ListBySupplier lista los artículos de un proveedor.
func (r *ItemTypeRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE supplier_id = $1 ORDER BY name`
	return r.scanMany(ctx, query, supplierID)
}

// ListBelowAlert lista los artículos con stock bajo su umbral de alerta.
func (r *ItemTypeRepo) ListBelowAlert(ctx context.Context) ([]*entity.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE total_quantity < alert_min ORDER BY name`
	return r.scanMany(ctx, query)
}

// Update actualiza los datos de catálogo. No toca total_quantity: el
// total cacheado solo lo mueven el ledger y la reconciliación.
func (r *ItemTypeRepo) Update(ctx context.Context, item *entity.ItemType) error {
	query := `
		UPDATE item_types
		SET name = $2, unit_price = $3, box_quantity = $4, alert_min = $5, supplier_id = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.UnitPrice, item.BoxQuantity, item.AlertMin, item.SupplierID, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("update item type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemTypeNotFound
	}
	return nil
}

// UpdateTotalQuantity fija el total cacheado de un artículo. Solo lo
// llama el ledger dentro de la transacción que insertó o borró el
// movimiento.
func (r *ItemTypeRepo) UpdateTotalQuantity(ctx context.Context, id, totalQuantity int64) error {
	query := `UPDATE item_types SET total_quantity = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, totalQuantity)
	if err != nil {
		return fmt.Errorf("update total quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemTypeNotFound
	}
	return nil
}

// RecomputeTotals reconstruye todos los totales desde el historial de
// movimientos en una sola sentencia (entradas suman, salidas restan,
// cajas convertidas con box_quantity). Devuelve cuántas filas cambiaron.
func (r *ItemTypeRepo) RecomputeTotals(ctx context.Context) (int64, error) {
	query := `
		UPDATE item_types it
		SET total_quantity = COALESCE(ledger.total, 0), updated_at = now()
		FROM (
			SELECT item_types.id AS item_id,
			       SUM(
			           (CASE WHEN mt.kind = 2 THEN 1 ELSE -1 END) *
			           (CASE WHEN m.is_boxes THEN m.quantity * item_types.box_quantity ELSE m.quantity END)
			       ) AS total
			FROM item_types
			LEFT JOIN movements m ON m.item_type_id = item_types.id
			LEFT JOIN movement_types mt ON mt.id = m.movement_type_id
			GROUP BY item_types.id
		) AS ledger
		WHERE ledger.item_id = it.id
		  AND it.total_quantity IS DISTINCT FROM COALESCE(ledger.total, 0)`
	cmd, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("recompute totals: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete borra un artículo del catálogo.
func (r *ItemTypeRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM item_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemTypeNotFound
	}
	return nil
}

func (r *ItemTypeRepo) scanOne(row pgx.Row, op string) (*entity.ItemType, error) {
	var i entity.ItemType
	err := row.Scan(
		&i.ID, &i.Name, &i.UnitPrice, &i.BoxQuantity, &i.AlertMin,
		&i.TotalQuantity, &i.SupplierID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}

func (r *ItemTypeRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.ItemType, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()

	var items []*entity.ItemType
	for rows.Next() {
		var i entity.ItemType
		if err := rows.Scan(
			&i.ID, &i.Name, &i.UnitPrice, &i.BoxQuantity, &i.AlertMin,
			&i.TotalQuantity, &i.SupplierID, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}
