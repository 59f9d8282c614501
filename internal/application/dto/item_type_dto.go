package dto

import "github.com/shopspring/decimal"

// CreateItemTypeRequest body para POST /api/item-types.
// TotalQuantity solo se acepta en alta/import (stock inicial); después
// pertenece al ledger.
type CreateItemTypeRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BoxQuantity   int64           `json:"box_quantity" validate:"required,gt=0"`
	AlertMin      int64           `json:"alert_min" validate:"gte=0"`
	TotalQuantity int64           `json:"total_quantity" validate:"gte=0"`
	SupplierID    int64           `json:"supplier_id" validate:"required,gt=0"`
}

// UpdateItemTypeRequest body para PUT /api/item-types/:id.
// Sin TotalQuantity: el total cacheado solo lo mueve el ledger.
type UpdateItemTypeRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BoxQuantity int64           `json:"box_quantity" validate:"required,gt=0"`
	AlertMin    int64           `json:"alert_min" validate:"gte=0"`
	SupplierID  int64           `json:"supplier_id" validate:"required,gt=0"`
}

// ItemTypeResponse representación HTTP de un artículo del catálogo.
type ItemTypeResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BoxQuantity   int64           `json:"box_quantity"`
	AlertMin      int64           `json:"alert_min"`
	TotalQuantity int64           `json:"total_quantity"`
	SupplierID    int64           `json:"supplier_id"`
	Supplier      string          `json:"supplier,omitempty"`
}

// BulkCreateResponse resultado de un alta masiva de artículos.
type BulkCreateResponse struct {
	Created int `json:"created"`
}
