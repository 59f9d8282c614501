package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo lectura del vocabulario fijo de tipos de movimiento.
// La columna kind mapea cada fila al enum entity.MovementKind: el mapeo
// BD -> enum vive solo acá.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador.
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// GetByID resuelve una fila del vocabulario. Devuelve nil si no existe.
func (r *MovementTypeRepo) GetByID(ctx context.Context, id int64) (*entity.MovementType, error) {
	query := `SELECT id, name, kind FROM movement_types WHERE id = $1`
	var mt entity.MovementType
	var kind int16
	err := r.q.QueryRow(ctx, query, id).Scan(&mt.ID, &mt.Name, &kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	mt.Kind = entity.MovementKind(kind)
	return &mt, nil
}

// GetByKind resuelve la fila del vocabulario para un kind (la columna
// kind es única). Devuelve nil si no existe.
func (r *MovementTypeRepo) GetByKind(ctx context.Context, kind entity.MovementKind) (*entity.MovementType, error) {
	query := `SELECT id, name, kind FROM movement_types WHERE kind = $1`
	var mt entity.MovementType
	var dbKind int16
	err := r.q.QueryRow(ctx, query, int16(kind)).Scan(&mt.ID, &mt.Name, &dbKind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type by kind: %w", err)
	}
	mt.Kind = entity.MovementKind(dbKind)
	return &mt, nil
}

// List devuelve el vocabulario completo.
func (r *MovementTypeRepo) List(ctx context.Context) ([]*entity.MovementType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, kind FROM movement_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()

	var types []*entity.MovementType
	for rows.Next() {
		var mt entity.MovementType
		var kind int16
		if err := rows.Scan(&mt.ID, &mt.Name, &kind); err != nil {
			return nil, fmt.Errorf("scan movement type: %w", err)
		}
		mt.Kind = entity.MovementKind(kind)
		types = append(types, &mt)
	}
	return types, rows.Err()
}
