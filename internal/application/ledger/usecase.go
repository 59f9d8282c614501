package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/stock"
)

// UseCase es el ledger de stock: registra y borra movimientos de forma
// transaccional, manteniendo el total cacheado de cada artículo
// consistente con su historial. Toda escritura pasa por el TxRunner con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type UseCase struct {
	txRunner         TxRunner
	movementTypeRepo repository.MovementTypeRepository
	itemRepo         repository.ItemTypeRepository
	reportRepo       repository.ReportRepository
}

// NewUseCase construye el ledger.
func NewUseCase(
	txRunner TxRunner,
	movementTypeRepo repository.MovementTypeRepository,
	itemRepo repository.ItemTypeRepository,
	reportRepo repository.ReportRepository,
) *UseCase {
	return &UseCase{
		txRunner:         txRunner,
		movementTypeRepo: movementTypeRepo,
		itemRepo:         itemRepo,
		reportRepo:       reportRepo,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity va en cajas cuando IsBoxes; ExpireDate solo aplica a entradas
// (se persiste sin validar, lo consume la alerta de vencimientos).
type MovementInput struct {
	Quantity       int64
	IsBoxes        bool
	ExpireDate     *time.Time
	MovementTypeID int64
	ItemTypeID     int64
	DepartmentID   int64
}

// RecordMovement valida la entrada, resuelve el tipo de movimiento y,
// dentro de una transacción, convierte la cantidad a unidades base y
// ajusta el total del artículo:
//
//   - entrada: inserta el movimiento y suma las unidades al total.
//   - salida: si las unidades superan el total falla con
//     ErrInsufficientStock sin escribir nada; si no, inserta y resta.
//
// Ambas escrituras se confirman juntas o ninguna es visible.
func (uc *UseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	mt, err := uc.movementTypeRepo.GetByID(ctx, input.MovementTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrMovementTypeNotFound
	}
	if !mt.Kind.Valid() {
		// El vocabulario es cerrado: una fila fuera de él es un error de
		// configuración de la BD, no un rechazo de negocio.
		return nil, fmt.Errorf("tipo de movimiento %q (id %d) fuera del vocabulario cerrado", mt.Name, mt.ID)
	}

	now := time.Now()
	mov := &entity.Movement{
		TransactionID:  uuid.New().String(),
		Quantity:       input.Quantity,
		IsBoxes:        input.IsBoxes,
		ExpireDate:     input.ExpireDate,
		MovementTypeID: mt.ID,
		ItemTypeID:     input.ItemTypeID,
		DepartmentID:   input.DepartmentID,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemTypeRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, input.ItemTypeID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemTypeNotFound
		}

		units := stock.UnitEquivalent(input.Quantity, input.IsBoxes, item.BoxQuantity)
		newTotal := item.TotalQuantity + stock.Sign(mt.Kind)*units
		if mt.Kind == entity.KindRemoval && newTotal < 0 {
			return domain.ErrInsufficientStock
		}

		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return itemRepo.UpdateTotalQuantity(ctx, item.ID, newTotal)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// DeleteMovement borra un movimiento compensando su efecto sobre el
// total del artículo: borrar una entrada resta las unidades, borrar una
// salida las devuelve. Misma transacción y mismo bloqueo de fila que
// RecordMovement. Borrar una entrada cuya reversa dejaría el total en
// negativo falla con ErrInsufficientStock y no borra nada.
func (uc *UseCase) DeleteMovement(ctx context.Context, id int64) (*entity.Movement, error) {
	var deleted *entity.Movement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemTypeRepository,
	) error {
		mov, err := movRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}

		mt, err := uc.movementTypeRepo.GetByID(ctx, mov.MovementTypeID)
		if err != nil {
			return err
		}
		if mt == nil || !mt.Kind.Valid() {
			return fmt.Errorf("movimiento %d referencia un tipo inválido (id %d)", mov.ID, mov.MovementTypeID)
		}

		item, err := itemRepo.GetForUpdate(ctx, mov.ItemTypeID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemTypeNotFound
		}

		units := stock.MovementUnits(mov, item)
		newTotal := item.TotalQuantity - stock.Sign(mt.Kind)*units
		if newTotal < 0 {
			return domain.ErrInsufficientStock
		}

		if err := movRepo.Delete(ctx, mov.ID); err != nil {
			return err
		}
		if err := itemRepo.UpdateTotalQuantity(ctx, item.ID, newTotal); err != nil {
			return err
		}
		deleted = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// ReconcileTotals detecta artículos cuyo total cacheado derivó del
// historial y los reconstruye desde el log de movimientos en una sola
// sentencia. Devuelve el desfase detectado (informativo, leído antes de
// reparar) y cuántos artículos se corrigieron.
func (uc *UseCase) ReconcileTotals(ctx context.Context) ([]repository.ItemDrift, int64, error) {
	drift, err := uc.reportRepo.FindDrift(ctx)
	if err != nil {
		return nil, 0, err
	}
	repaired, err := uc.itemRepo.RecomputeTotals(ctx)
	if err != nil {
		return drift, 0, err
	}
	return drift, repaired, nil
}
