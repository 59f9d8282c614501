package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// ReferenceHandler expone la data de referencia de solo lectura.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Departments lista los departamentos. GET /api/departments
func (h *ReferenceHandler) Departments(c *fiber.Ctx) error {
	rows, err := h.uc.Departments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// MovementTypes lista los tipos de movimiento. GET /api/movement-types
func (h *ReferenceHandler) MovementTypes(c *fiber.Ctx) error {
	rows, err := h.uc.MovementTypes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
