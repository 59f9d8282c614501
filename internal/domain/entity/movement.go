package entity

import "time"

// MovementKind es el tipo cerrado de movimiento de stock.
// El registro en BD (tabla movement_types) es data de referencia que se
// mapea a este enum en la frontera de persistencia; la lógica de negocio
// nunca compara nombres leídos de la BD.
type MovementKind int

const (
	// KindRemoval descuenta stock (salida hacia un departamento).
	KindRemoval MovementKind = iota + 1
	// KindAddition suma stock (compra / entrada de proveedor).
	KindAddition
)

// String devuelve el nombre persistido del tipo de movimiento.
func (k MovementKind) String() string {
	switch k {
	case KindAddition:
		return "Adicionar"
	case KindRemoval:
		return "Remover"
	}
	return "desconocido"
}

// Valid indica si el valor pertenece al vocabulario cerrado.
func (k MovementKind) Valid() bool {
	return k == KindAddition || k == KindRemoval
}

// MovementType fila de referencia de la tabla movement_types.
type MovementType struct {
	ID   int64
	Name string
	Kind MovementKind
}

// Movement es un asiento inmutable del ledger de stock: una entrada o
// salida con cantidad en unidades o en cajas (IsBoxes).
// Se crea exactamente una vez; su borrado compensa el total del artículo.
type Movement struct {
	ID             int64
	TransactionID  string // uuid de la operación de ledger que lo creó
	Quantity       int64  // siempre > 0; el signo lo aporta el tipo
	IsBoxes        bool
	ExpireDate     *time.Time // solo tiene sentido en entradas
	MovementTypeID int64
	ItemTypeID     int64
	DepartmentID   int64
	CreatedAt      time.Time
}
