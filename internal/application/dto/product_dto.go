package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Los numéricos aceptan coma decimal.
type CreateProductRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
	Cost         Numeric `json:"cost"`
	Price        Numeric `json:"price"`
	MinStock     Numeric `json:"min_stock"`
	InitialStock Numeric `json:"initial_stock"`
}

// ProductResponse salida de un producto (registro plano).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"min_stock"`
	CurrentStock int             `json:"current_stock"`
	StockStatus  string          `json:"stock_status"`
}
