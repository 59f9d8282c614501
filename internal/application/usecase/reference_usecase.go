package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ReferenceUseCase lecturas de data de referencia: departamentos y el
// vocabulario fijo de tipos de movimiento.
type ReferenceUseCase struct {
	departmentRepo   repository.DepartmentRepository
	movementTypeRepo repository.MovementTypeRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(
	departmentRepo repository.DepartmentRepository,
	movementTypeRepo repository.MovementTypeRepository,
) *ReferenceUseCase {
	return &ReferenceUseCase{departmentRepo: departmentRepo, movementTypeRepo: movementTypeRepo}
}

// Departments lista los departamentos.
func (uc *ReferenceUseCase) Departments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	rows, err := uc.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// MovementTypes lista el vocabulario de tipos de movimiento.
func (uc *ReferenceUseCase) MovementTypes(ctx context.Context) ([]dto.MovementTypeResponse, error) {
	rows, err := uc.movementTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementTypeResponse, 0, len(rows))
	for _, mt := range rows {
		out = append(out, dto.MovementTypeResponse{ID: mt.ID, Name: mt.Name})
	}
	return out, nil
}
