package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Month es nil para la visión general del año.
type DashboardSummaryDTO struct {
	Month *int   `json:"month"`
	Label string `json:"label"` // "Março" o "Visão Geral"

	// Flujo del período
	InboundValue  decimal.Decimal `json:"inbound_value"`  // inversión (compras) valorada al costo
	OutboundValue decimal.Decimal `json:"outbound_value"` // ingresos (ventas) valorados al precio

	// Ingresos por categoría (solo salidas), de mayor a menor
	RevenueByCategory []CategoryRevenueDTO `json:"revenue_by_category"`

	// KPIs sobre el stock al cierre del período
	TotalUnits       int             `json:"total_units"`
	InventoryValue   decimal.Decimal `json:"inventory_value"` // Σ stock × costo
	CriticalProducts int             `json:"critical_products"`

	Products []ProductSnapshotDTO `json:"products"`
}

// CategoryRevenueDTO ingreso de salidas por categoría.
type CategoryRevenueDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ProductSnapshotDTO stock reconstruido de un producto al cierre del período.
type ProductSnapshotDTO struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	StockStatus string `json:"stock_status"`
	Critical    bool   `json:"critical"`
}

// CategoryDetailDTO respuesta de GET /api/dashboard/categories/:category.
type CategoryDetailDTO struct {
	Category      string            `json:"category"`
	TotalQuantity int               `json:"total_quantity"`
	TotalRevenue  decimal.Decimal   `json:"total_revenue"`
	Products      []ProductSalesDTO `json:"products"`
}

// ProductSalesDTO ventas acumuladas de un producto dentro de una categoría.
type ProductSalesDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}
