package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RegisterItem da de alta un artículo en el catálogo. Si trae stock
// inicial, la misma transacción inserta la entrada que lo respalda
// (en unidades, hacia el departamento Stock): el total cacheado queda
// cubierto por el historial desde el alta, y la reconciliación no lo
// lee como desfase a reparar.
func (uc *UseCase) RegisterItem(ctx context.Context, item *entity.ItemType) error {
	_, err := uc.RegisterItems(ctx, []*entity.ItemType{item})
	return err
}

// RegisterItems alta masiva (bulk JSON o import de planilla) con la
// misma garantía que RegisterItem: los artículos y sus entradas
// iniciales se confirman todos juntos o ninguno es visible.
func (uc *UseCase) RegisterItems(ctx context.Context, items []*entity.ItemType) (int, error) {
	additionType, err := uc.movementTypeRepo.GetByKind(ctx, entity.KindAddition)
	if err != nil {
		return 0, err
	}
	if additionType == nil {
		return 0, fmt.Errorf("tipo de movimiento %q ausente del vocabulario", entity.KindAddition)
	}

	created := 0
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemTypeRepository,
	) error {
		n, err := itemRepo.CreateMany(ctx, items)
		if err != nil {
			return err
		}
		created = n
		for _, item := range items {
			if item.TotalQuantity == 0 {
				continue
			}
			mov := &entity.Movement{
				TransactionID:  uuid.New().String(),
				Quantity:       item.TotalQuantity,
				IsBoxes:        false,
				MovementTypeID: additionType.ID,
				ItemTypeID:     item.ID,
				DepartmentID:   entity.StockDepartmentID,
				CreatedAt:      item.CreatedAt,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
