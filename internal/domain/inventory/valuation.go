package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// UnitValue selecciona el valor unitario del movimiento (servicio de dominio).
// Entrada: costo de compra. Salida: precio de venta.
func UnitValue(kind entity.MovementKind, product *entity.Product) decimal.Decimal {
	if kind == entity.MovementInbound {
		return product.Cost
	}
	return product.Price
}

// Valuate calcula ValorTotal = Cantidad * ValorUnitario.
// Nunca se usa un valor enviado por el cliente.
func Valuate(kind entity.MovementKind, product *entity.Product, quantity int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(UnitValue(kind, product))
}

// ApplyDelta calcula el nuevo stock. Devuelve InsufficientStockError si una salida
// dejaría el stock en negativo.
func ApplyDelta(kind entity.MovementKind, product *entity.Product, quantity int) (int, error) {
	if kind == entity.MovementInbound {
		return product.CurrentStock + quantity, nil
	}
	if product.CurrentStock < quantity {
		return product.CurrentStock, &domain.InsufficientStockError{
			ProductID: product.ID,
			Available: product.CurrentStock,
			Requested: quantity,
		}
	}
	return product.CurrentStock - quantity, nil
}

// Reverse deshace el efecto de un movimiento sobre una cantidad en stock
// (usado para reconstruir el stock al cierre de un mes pasado).
func Reverse(kind entity.MovementKind, stock, quantity int) int {
	if kind == entity.MovementInbound {
		return stock - quantity
	}
	return stock + quantity
}
