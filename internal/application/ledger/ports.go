package ledger

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del par
// "insertar movimiento + ajustar total" y serializa, vía bloqueo de
// fila, las salidas concurrentes contra el mismo artículo.
//
// Las implementaciones reintentan fn exactamente una vez ante un
// conflicto transitorio de transacción (serialization failure /
// deadlock); fn relee el estado dentro de la tx, así que la decisión de
// stock se reevalúa contra datos frescos, nunca se repite en seco.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemTypeRepository,
	) error) error
}
