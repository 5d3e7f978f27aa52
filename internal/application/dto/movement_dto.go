package dto

import "github.com/shopspring/decimal"

// MovementDateLayout formato de fecha que espera el front-end (dd/mm/aaaa).
const MovementDateLayout = "02/01/2006"

// CreateMovementRequest body para POST /api/movements.
// Kind acepta "entrada"/"saida" o "inbound"/"outbound".
type CreateMovementRequest struct {
	ProductID Numeric `json:"product_id"`
	Kind      string  `json:"kind"`
	Quantity  Numeric `json:"quantity"`
	Reason    string  `json:"reason"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Quantity    int             `json:"quantity"`
	Date        string          `json:"date"`
	MonthIndex  int             `json:"month_index"`
	Reason      string          `json:"reason"`
	TotalValue  decimal.Decimal `json:"total_value"`
}
