package entity

import "time"

// Supplier proveedor de artículos. Entidad de referencia sin invariantes
// de ledger.
type Supplier struct {
	ID          int64
	Name        string
	Email       string
	Location    string
	PhoneNumber string
	Site        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
