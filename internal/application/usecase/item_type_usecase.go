package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ItemRegistrar da de alta artículos dejando el stock inicial
// respaldado por una entrada del ledger en la misma transacción.
// Lo implementa el ledger.
type ItemRegistrar interface {
	RegisterItem(ctx context.Context, item *entity.ItemType) error
	RegisterItems(ctx context.Context, items []*entity.ItemType) (int, error)
}

// ItemTypeUseCase casos de uso CRUD del catálogo de artículos.
// TotalQuantity solo se acepta en el alta (stock inicial, que el
// registrar respalda con una entrada); después lo maneja
// exclusivamente el ledger.
type ItemTypeUseCase struct {
	repo         repository.ItemTypeRepository
	supplierRepo repository.SupplierRepository
	registrar    ItemRegistrar
}

// NewItemTypeUseCase construye el caso de uso.
func NewItemTypeUseCase(repo repository.ItemTypeRepository, supplierRepo repository.SupplierRepository, registrar ItemRegistrar) *ItemTypeUseCase {
	return &ItemTypeUseCase{repo: repo, supplierRepo: supplierRepo, registrar: registrar}
}

// Create da de alta un artículo. El proveedor debe existir.
func (uc *ItemTypeUseCase) Create(ctx context.Context, in dto.CreateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if in.BoxQuantity <= 0 || in.AlertMin < 0 || in.TotalQuantity < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	now := time.Now()
	item := &entity.ItemType{
		Name:          in.Name,
		UnitPrice:     in.UnitPrice,
		BoxQuantity:   in.BoxQuantity,
		AlertMin:      in.AlertMin,
		TotalQuantity: in.TotalQuantity,
		SupplierID:    in.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.registrar.RegisterItem(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemTypeResponse(item)
	resp.Supplier = supplier.Name
	return resp, nil
}

// CreateMany alta masiva (bulk JSON o import de Excel ya parseado).
// Valida cada fila antes de insertar; inserta todas en una pasada.
func (uc *ItemTypeUseCase) CreateMany(ctx context.Context, in []dto.CreateItemTypeRequest) (int, error) {
	if len(in) == 0 {
		return 0, domain.ErrInvalidInput
	}
	now := time.Now()
	items := make([]*entity.ItemType, 0, len(in))
	for _, row := range in {
		if row.Name == "" || row.BoxQuantity <= 0 || row.AlertMin < 0 || row.TotalQuantity < 0 || row.UnitPrice.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		items = append(items, &entity.ItemType{
			Name:          row.Name,
			UnitPrice:     row.UnitPrice,
			BoxQuantity:   row.BoxQuantity,
			AlertMin:      row.AlertMin,
			TotalQuantity: row.TotalQuantity,
			SupplierID:    row.SupplierID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return uc.registrar.RegisterItems(ctx, items)
}

// GetByID obtiene un artículo con su proveedor.
func (uc *ItemTypeUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemTypeResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemTypeNotFound
	}
	resp := toItemTypeResponse(item)
	if supplier, err := uc.supplierRepo.GetByID(ctx, item.SupplierID); err == nil && supplier != nil {
		resp.Supplier = supplier.Name
	}
	return resp, nil
}

// List lista el catálogo completo.
func (uc *ItemTypeUseCase) List(ctx context.Context) ([]dto.ItemTypeResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.withSuppliers(ctx, items)
}

// ListBySupplier lista los artículos de un proveedor.
func (uc *ItemTypeUseCase) ListBySupplier(ctx context.Context, supplierID int64) ([]dto.ItemTypeResponse, error) {
	items, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return uc.withSuppliers(ctx, items)
}

// ListBelowAlert lista los artículos con stock bajo el umbral de alerta.
func (uc *ItemTypeUseCase) ListBelowAlert(ctx context.Context) ([]dto.ItemTypeResponse, error) {
	items, err := uc.repo.ListBelowAlert(ctx)
	if err != nil {
		return nil, err
	}
	return uc.withSuppliers(ctx, items)
}

// Update actualiza los datos de catálogo de un artículo. Nunca toca
// TotalQuantity: el total cacheado pertenece al ledger.
func (uc *ItemTypeUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if in.BoxQuantity <= 0 || in.AlertMin < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemTypeNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	item.Name = in.Name
	item.UnitPrice = in.UnitPrice
	item.BoxQuantity = in.BoxQuantity
	item.AlertMin = in.AlertMin
	item.SupplierID = in.SupplierID
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemTypeResponse(item)
	resp.Supplier = supplier.Name
	return resp, nil
}

// Delete borra un artículo del catálogo.
func (uc *ItemTypeUseCase) Delete(ctx context.Context, id int64) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemTypeNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// withSuppliers anota cada fila con el nombre de su proveedor. Los
// catálogos son chicos; una pasada con cache por id alcanza.
func (uc *ItemTypeUseCase) withSuppliers(ctx context.Context, items []*entity.ItemType) ([]dto.ItemTypeResponse, error) {
	names := make(map[int64]string)
	out := make([]dto.ItemTypeResponse, 0, len(items))
	for _, item := range items {
		resp := toItemTypeResponse(item)
		name, ok := names[item.SupplierID]
		if !ok {
			supplier, err := uc.supplierRepo.GetByID(ctx, item.SupplierID)
			if err != nil {
				return nil, err
			}
			if supplier != nil {
				name = supplier.Name
			}
			names[item.SupplierID] = name
		}
		resp.Supplier = name
		out = append(out, *resp)
	}
	return out, nil
}

func toItemTypeResponse(item *entity.ItemType) *dto.ItemTypeResponse {
	return &dto.ItemTypeResponse{
		ID:            item.ID,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice,
		BoxQuantity:   item.BoxQuantity,
		AlertMin:      item.AlertMin,
		TotalQuantity: item.TotalQuantity,
		SupplierID:    item.SupplierID,
	}
}
