// Package report contiene los casos de uso de lectura del dashboard:
// proyecciones agregadas sobre el historial de movimientos, sin
// invariantes propios más allá de agregar correctamente.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const dashboardLastPurchases = 5 // compras recientes en el widget del dashboard

// DashboardUseCase arma el resumen del dashboard a partir del
// ReportRepository (consultas read-only).
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// PurchasedValue suma el valor de las entradas en [begin, end].
func (uc *DashboardUseCase) PurchasedValue(ctx context.Context, begin, end time.Time) (decimal.Decimal, error) {
	return uc.reportRepo.MovementsValue(ctx, entity.KindAddition, begin, end)
}

// ConsumedValue suma el valor de las salidas en [begin, end].
func (uc *DashboardUseCase) ConsumedValue(ctx context.Context, begin, end time.Time) (decimal.Decimal, error) {
	return uc.reportRepo.MovementsValue(ctx, entity.KindRemoval, begin, end)
}

// PurchasedUnits suma las unidades base de las entradas en [begin, end].
func (uc *DashboardUseCase) PurchasedUnits(ctx context.Context, begin, end time.Time) (int64, error) {
	return uc.reportRepo.MovementsUnits(ctx, entity.KindAddition, begin, end)
}

// ConsumedUnits suma las unidades base de las salidas en [begin, end].
func (uc *DashboardUseCase) ConsumedUnits(ctx context.Context, begin, end time.Time) (int64, error) {
	return uc.reportRepo.MovementsUnits(ctx, entity.KindRemoval, begin, end)
}

// PurchasesThisMonth cuenta las entradas del mes calendario en curso.
// El rango lo calcula el caso de uso, no el caller.
func (uc *DashboardUseCase) PurchasesThisMonth(ctx context.Context) (int, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	return uc.reportRepo.CountMovements(ctx, entity.KindAddition, monthStart, nextMonth.Add(-time.Nanosecond))
}

// LastPurchases devuelve las últimas compras con valor y proveedor.
func (uc *DashboardUseCase) LastPurchases(ctx context.Context) ([]dto.PurchaseDTO, error) {
	rows, err := uc.reportRepo.LastPurchases(ctx, dashboardLastPurchases)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PurchaseDTO{
			ID:       r.MovementID,
			Name:     r.ItemName,
			Value:    r.Value,
			Supplier: r.Supplier,
		})
	}
	return out, nil
}

// MonthlyFlow devuelve las 12 filas del gráfico mensual con la etiqueta
// del mes. Los meses sin movimientos vienen en cero, nunca se omiten.
func (uc *DashboardUseCase) MonthlyFlow(ctx context.Context) ([]dto.MonthlyFlowDTO, error) {
	rows, err := uc.reportRepo.MonthlyFlow(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyFlowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyFlowDTO{
			Month:     monthLabel(r.Month),
			Purchases: r.Purchases,
			Removals:  r.Removals,
		})
	}
	return out, nil
}

// GetSummary arma el DashboardSummaryDTO para el rango dado.
// Las cinco consultas son independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, begin, end time.Time) (*dto.DashboardSummaryDTO, error) {
	type valueResult struct {
		purchased, consumed decimal.Decimal
		err                 error
	}
	type unitsResult struct {
		purchased, consumed int64
		err                 error
	}
	type countResult struct {
		n   int
		err error
	}
	type purchasesResult struct {
		rows []dto.PurchaseDTO
		err  error
	}
	type flowResult struct {
		rows []dto.MonthlyFlowDTO
		err  error
	}

	valueCh := make(chan valueResult, 1)
	unitsCh := make(chan unitsResult, 1)
	countCh := make(chan countResult, 1)
	lastCh := make(chan purchasesResult, 1)
	flowCh := make(chan flowResult, 1)

	go func() {
		purchased, err := uc.PurchasedValue(ctx, begin, end)
		if err != nil {
			valueCh <- valueResult{err: err}
			return
		}
		consumed, err := uc.ConsumedValue(ctx, begin, end)
		valueCh <- valueResult{purchased: purchased, consumed: consumed, err: err}
	}()
	go func() {
		purchased, err := uc.PurchasedUnits(ctx, begin, end)
		if err != nil {
			unitsCh <- unitsResult{err: err}
			return
		}
		consumed, err := uc.ConsumedUnits(ctx, begin, end)
		unitsCh <- unitsResult{purchased: purchased, consumed: consumed, err: err}
	}()
	go func() {
		n, err := uc.PurchasesThisMonth(ctx)
		countCh <- countResult{n: n, err: err}
	}()
	go func() {
		rows, err := uc.LastPurchases(ctx)
		lastCh <- purchasesResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.MonthlyFlow(ctx)
		flowCh <- flowResult{rows: rows, err: err}
	}()

	values := <-valueCh
	units := <-unitsCh
	count := <-countCh
	last := <-lastCh
	flow := <-flowCh

	for _, err := range []error{values.err, units.err, count.err, last.err, flow.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardSummaryDTO{
		PurchasedValue:     values.purchased,
		ConsumedValue:      values.consumed,
		PurchasedUnits:     units.purchased,
		ConsumedUnits:      units.consumed,
		PurchasesThisMonth: count.n,
		LastPurchases:      last.rows,
		MonthlyFlow:        flow.rows,
	}, nil
}
