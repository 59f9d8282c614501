package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

var validate = validator.New()

// bindAndValidate parsea el body JSON y aplica las reglas `validate` del
// DTO. Devuelve una ErrorResponse lista para responder con 400, o nil.
func bindAndValidate(c *fiber.Ctx, obj any) *dto.ErrorResponse {
	if err := c.BodyParser(obj); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if err := validate.Struct(obj); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return &dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: fmt.Sprintf("campo %s inválido (%s)", fe.Field(), fe.Tag()),
			}
		}
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	}
	return nil
}

// pathID lee el parámetro :id como entero positivo.
func pathID(c *fiber.Ctx) (int64, *dto.ErrorResponse) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"}
	}
	return int64(id), nil
}
