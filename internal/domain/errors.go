package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son rechazos de
// negocio que se reportan tal cual al caller: reintentar no cambiaría el
// resultado sin datos nuevos.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrItemTypeNotFound     = errors.New("artículo no encontrado")
	ErrMovementTypeNotFound = errors.New("tipo de movimiento no encontrado")
	ErrMovementNotFound     = errors.New("movimiento no encontrado")
	ErrSupplierNotFound     = errors.New("proveedor no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidQuantity      = errors.New("cantidad inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
)
