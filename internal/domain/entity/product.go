package entity

import "github.com/shopspring/decimal"

// Valores por defecto del catálogo (mismos que usa el front-end de la tienda).
const (
	DefaultCategory = "Geral"
	DefaultSupplier = "Div"
	DefaultMinStock = 5
)

// Product representa un ítem del catálogo con su precio, costo y stock actual.
// CurrentStock solo lo modifica el motor de movimientos (RegisterMovementUseCase).
type Product struct {
	ID           int64
	Name         string
	Category     string
	Supplier     string
	Cost         decimal.Decimal // precio unitario de compra
	Price        decimal.Decimal // precio unitario de venta
	MinStock     int             // punto de reorden, solo informativo
	CurrentStock int
}
