package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *usecase.MovementQueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledgerUC *ledger.UseCase, queryUC *usecase.MovementQueryUseCase) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Record godoc
// @Summary      Registrar un movimiento de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "quantity, is_boxes, movement_type_id, item_type_id, department_id, expire_date (entradas)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if errResp := bindAndValidate(c, &in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	mov, err := h.ledgerUC.RecordFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToMovementResponse(mov, ""))
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Produce      json
// @Param        item_type_id  query  int  false  "Filtrar por artículo"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	if itemTypeID := c.QueryInt("item_type_id"); itemTypeID > 0 {
		rows, err := h.queryUC.ListByItemType(c.Context(), int64(itemTypeID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rows)
	}
	rows, err := h.queryUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Delete godoc
// @Summary      Borrar un movimiento (compensando el total del artículo)
// @Tags         movements
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, errResp := pathID(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	mov, err := h.ledgerUC.DeleteMovement(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usecase.ToMovementResponse(mov, ""))
}

// Reconcile godoc
// @Summary      Reconstruir los totales cacheados desde el historial
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/movements/reconcile [post]
func (h *MovementHandler) Reconcile(c *fiber.Ctx) error {
	drift, repaired, err := h.ledgerUC.ReconcileTotals(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReconcileResponse{
		DriftDetected: len(drift),
		ItemsRepaired: repaired,
	})
}
