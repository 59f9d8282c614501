package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ItemSheetRow fila cruda de la planilla de import. Supplier es el
// nombre del proveedor; el caso de uso lo resuelve (o lo crea) contra
// el catálogo.
type ItemSheetRow struct {
	Name          string
	UnitPrice     decimal.Decimal
	BoxQuantity   int64
	AlertMin      int64
	TotalQuantity int64
	Supplier      string
}

// ItemSheetParser parsea una planilla de alta masiva a filas de
// artículos. Lo implementa el adaptador de excel.
type ItemSheetParser interface {
	ParseItemRows(reader io.Reader) ([]ItemSheetRow, error)
}

// ImportUseCase alta masiva de artículos desde una planilla xlsx.
// Resuelve cada proveedor por nombre, creándolo si no existe; el stock
// inicial de cada fila queda respaldado por una entrada del ledger.
type ImportUseCase struct {
	parser       ItemSheetParser
	registrar    ItemRegistrar
	supplierRepo repository.SupplierRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(parser ItemSheetParser, registrar ItemRegistrar, supplierRepo repository.SupplierRepository) *ImportUseCase {
	return &ImportUseCase{parser: parser, registrar: registrar, supplierRepo: supplierRepo}
}

// ImportItems parsea la planilla y crea los artículos. Devuelve cuántos
// se crearon.
func (uc *ImportUseCase) ImportItems(ctx context.Context, reader io.Reader) (int, error) {
	rows, err := uc.parser.ParseItemRows(reader)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	supplierIDs := make(map[string]int64)
	items := make([]*entity.ItemType, 0, len(rows))
	for _, row := range rows {
		supplierID, ok := supplierIDs[row.Supplier]
		if !ok {
			supplierID, err = uc.resolveSupplier(ctx, row.Supplier, now)
			if err != nil {
				return 0, err
			}
			supplierIDs[row.Supplier] = supplierID
		}
		items = append(items, &entity.ItemType{
			Name:          row.Name,
			UnitPrice:     row.UnitPrice,
			BoxQuantity:   row.BoxQuantity,
			AlertMin:      row.AlertMin,
			TotalQuantity: row.TotalQuantity,
			SupplierID:    supplierID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return uc.registrar.RegisterItems(ctx, items)
}

func (uc *ImportUseCase) resolveSupplier(ctx context.Context, name string, now time.Time) (int64, error) {
	supplier, err := uc.supplierRepo.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if supplier != nil {
		return supplier.ID, nil
	}
	supplier = &entity.Supplier{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return 0, err
	}
	return supplier.ID, nil
}
