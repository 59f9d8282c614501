package dto

import "github.com/shopspring/decimal"

// PurchaseDTO una de las últimas compras mostradas en el dashboard.
type PurchaseDTO struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Supplier string          `json:"supplier"`
}

// MonthlyFlowDTO fila del gráfico mensual: valor de compras (entradas)
// y de consumo (salidas) del mes. Siempre se devuelven 12 filas.
type MonthlyFlowDTO struct {
	Month     string          `json:"month"`
	Purchases decimal.Decimal `json:"purchases"`
	Removals  decimal.Decimal `json:"removals"`
}

// DashboardSummaryDTO resumen del dashboard.
type DashboardSummaryDTO struct {
	PurchasedValue     decimal.Decimal  `json:"purchased_value"`
	ConsumedValue      decimal.Decimal  `json:"consumed_value"`
	PurchasedUnits     int64            `json:"purchased_units"`
	ConsumedUnits      int64            `json:"consumed_units"`
	PurchasesThisMonth int              `json:"purchases_this_month"`
	LastPurchases      []PurchaseDTO    `json:"last_purchases"`
	MonthlyFlow        []MonthlyFlowDTO `json:"monthly_flow"`
}
