package ledger

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RecordFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). Usar desde handlers HTTP.
func (uc *UseCase) RecordFromRequest(ctx context.Context, in dto.RecordMovementRequest) (*entity.Movement, error) {
	return uc.RecordMovement(ctx, MovementInput{
		Quantity:       in.Quantity,
		IsBoxes:        in.IsBoxes,
		ExpireDate:     in.ExpireDate,
		MovementTypeID: in.MovementTypeID,
		ItemTypeID:     in.ItemTypeID,
		DepartmentID:   in.DepartmentID,
	})
}
