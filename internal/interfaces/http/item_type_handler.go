package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// ItemTypeHandler maneja el catálogo de artículos.
type ItemTypeHandler struct {
	uc       *usecase.ItemTypeUseCase
	importUC *usecase.ImportUseCase
}

// NewItemTypeHandler construye el handler.
func NewItemTypeHandler(uc *usecase.ItemTypeUseCase, importUC *usecase.ImportUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{uc: uc, importUC: importUC}
}

// Create godoc
// @Summary      Crear un artículo
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ItemTypeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/item-types [post]
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemTypeRequest
	if errResp := bindAndValidate(c, &in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// CreateMany godoc
// @Summary      Alta masiva de artículos (JSON)
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.BulkCreateResponse
// @Router       /api/item-types/bulk [post]
func (h *ItemTypeHandler) CreateMany(c *fiber.Ctx) error {
	var in []dto.CreateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.CreateMany(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BulkCreateResponse{Created: created})
}

// Import godoc
// @Summary      Alta masiva de artículos desde planilla xlsx
// @Tags         item-types
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilla con columnas name, box_quantity, supplier, ..."
// @Success      201  {object}  dto.BulkCreateResponse
// @Router       /api/item-types/import [post]
func (h *ItemTypeHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	created, err := h.importUC.ImportItems(c.Context(), file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BulkCreateResponse{Created: created})
}

// List godoc
// @Summary      Listar el catálogo (opcionalmente por proveedor)
// @Tags         item-types
// @Produce      json
// @Param        supplier_id  query  int  false  "Filtrar por proveedor"
// @Success      200  {array}  dto.ItemTypeResponse
// @Router       /api/item-types [get]
func (h *ItemTypeHandler) List(c *fiber.Ctx) error {
	if supplierID := c.QueryInt("supplier_id"); supplierID > 0 {
		items, err := h.uc.ListBySupplier(c.Context(), int64(supplierID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(items)
	}
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// LowStock godoc
// @Summary      Artículos con stock bajo el umbral de alerta
// @Tags         item-types
// @Produce      json
// @Success      200  {array}  dto.ItemTypeResponse
// @Router       /api/item-types/low-stock [get]
func (h *ItemTypeHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.ListBelowAlert(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener un artículo
// @Tags         item-types
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ItemTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [get]
func (h *ItemTypeHandler) GetByID(c *fiber.Ctx) error {
	id, errResp := pathID(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	item, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Actualizar un artículo (sin tocar el total cacheado)
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ItemTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [put]
func (h *ItemTypeHandler) Update(c *fiber.Ctx) error {
	id, errResp := pathID(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	var in dto.UpdateItemTypeRequest
	if errResp := bindAndValidate(c, &in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	item, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Borrar un artículo
// @Tags         item-types
// @Param        id  path  int  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [delete]
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error {
	id, errResp := pathID(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
