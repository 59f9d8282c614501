package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del historial de movimientos (las
// escrituras pasan por el ledger).
type MovementQueryUseCase struct {
	movRepo          repository.MovementRepository
	movementTypeRepo repository.MovementTypeRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(
	movRepo repository.MovementRepository,
	movementTypeRepo repository.MovementTypeRepository,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, movementTypeRepo: movementTypeRepo}
}

// List devuelve el historial completo, anotado con el nombre del tipo.
func (uc *MovementQueryUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	rows, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, rows)
}

// ListByItemType devuelve el historial de un artículo.
func (uc *MovementQueryUseCase) ListByItemType(ctx context.Context, itemTypeID int64) ([]dto.MovementResponse, error) {
	rows, err := uc.movRepo.ListByItemType(ctx, itemTypeID)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, rows)
}

func (uc *MovementQueryUseCase) annotate(ctx context.Context, rows []*entity.Movement) ([]dto.MovementResponse, error) {
	names := make(map[int64]string)
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		name, ok := names[m.MovementTypeID]
		if !ok {
			mt, err := uc.movementTypeRepo.GetByID(ctx, m.MovementTypeID)
			if err != nil {
				return nil, err
			}
			if mt != nil {
				name = mt.Name
			}
			names[m.MovementTypeID] = name
		}
		out = append(out, ToMovementResponse(m, name))
	}
	return out, nil
}

// ToMovementResponse convierte la entidad a su representación HTTP.
func ToMovementResponse(m *entity.Movement, typeName string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		TransactionID:  m.TransactionID,
		Quantity:       m.Quantity,
		IsBoxes:        m.IsBoxes,
		ExpireDate:     m.ExpireDate,
		MovementTypeID: m.MovementTypeID,
		MovementType:   typeName,
		ItemTypeID:     m.ItemTypeID,
		DepartmentID:   m.DepartmentID,
		CreatedAt:      m.CreatedAt,
	}
}
