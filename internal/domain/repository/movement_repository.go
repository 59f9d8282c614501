package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del ledger de
// movimientos. Los movimientos son append-mostly: se crean una vez y
// solo se borran (compensando) desde el ledger.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	List(ctx context.Context) ([]*entity.Movement, error)
	ListByItemType(ctx context.Context, itemTypeID int64) ([]*entity.Movement, error)
	Delete(ctx context.Context, id int64) error
}

// MovementTypeRepository resuelve el vocabulario fijo de tipos de
// movimiento. La fila de BD se mapea a entity.MovementKind aquí, en la
// frontera de persistencia.
type MovementTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.MovementType, error)
	GetByKind(ctx context.Context, kind entity.MovementKind) (*entity.MovementType, error)
	List(ctx context.Context) ([]*entity.MovementType, error)
}
