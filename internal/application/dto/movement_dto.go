package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// Quantity se interpreta en cajas cuando IsBoxes es true.
type RecordMovementRequest struct {
	Quantity       int64      `json:"quantity" validate:"required,gt=0"`
	IsBoxes        bool       `json:"is_boxes"`
	ExpireDate     *time.Time `json:"expire_date,omitempty"`
	MovementTypeID int64      `json:"movement_type_id" validate:"required,gt=0"`
	ItemTypeID     int64      `json:"item_type_id" validate:"required,gt=0"`
	DepartmentID   int64      `json:"department_id" validate:"required,gt=0"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID             int64      `json:"id"`
	TransactionID  string     `json:"transaction_id"`
	Quantity       int64      `json:"quantity"`
	IsBoxes        bool       `json:"is_boxes"`
	ExpireDate     *time.Time `json:"expire_date,omitempty"`
	MovementTypeID int64      `json:"movement_type_id"`
	MovementType   string     `json:"movement_type,omitempty"`
	ItemTypeID     int64      `json:"item_type_id"`
	DepartmentID   int64      `json:"department_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MovementTypeResponse fila del vocabulario de tipos de movimiento.
type MovementTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReconcileResponse resultado de la reconciliación de totales.
type ReconcileResponse struct {
	DriftDetected int   `json:"drift_detected"`
	ItemsRepaired int64 `json:"items_repaired"`
}
