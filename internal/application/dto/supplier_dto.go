package dto

// SupplierRequest body para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
	Site        string `json:"site"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Site        string `json:"site,omitempty"`
}

// DepartmentResponse fila de departamento (referencia).
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
