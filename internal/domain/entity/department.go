package entity

// StockDepartmentID departamento reservado "Stock": destino convencional
// de las entradas (para las salidas el departamento es el receptor real).
const StockDepartmentID int64 = 1

// Department departamento receptor de salidas de stock. Data de referencia.
type Department struct {
	ID   int64
	Name string
}
