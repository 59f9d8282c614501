package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ItemTypeRepository define el puerto de persistencia del catálogo de
// artículos. TotalQuantity solo se toca vía UpdateTotalQuantity (ledger)
// o la reconciliación; Update nunca lo modifica.
type ItemTypeRepository interface {
	Create(ctx context.Context, item *entity.ItemType) error
	CreateMany(ctx context.Context, items []*entity.ItemType) (int, error)
	GetByID(ctx context.Context, id int64) (*entity.ItemType, error)
	// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE)
	// dentro de la transacción en curso.
	GetForUpdate(ctx context.Context, id int64) (*entity.ItemType, error)
	List(ctx context.Context) ([]*entity.ItemType, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.ItemType, error)
	ListBelowAlert(ctx context.Context) ([]*entity.ItemType, error)
	Update(ctx context.Context, item *entity.ItemType) error
	UpdateTotalQuantity(ctx context.Context, id, totalQuantity int64) error
	// RecomputeTotals reconstruye todos los totales cacheados desde el
	// historial de movimientos en una sola sentencia y devuelve cuántos
	// artículos habían derivado.
	RecomputeTotals(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
