package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockRepository define el puerto para leer/actualizar el stock de un producto.
// Solo se usa dentro de transacciones del motor de movimientos.
type StockRepository interface {
	// GetForUpdate obtiene el producto y bloquea su fila hasta el fin de la transacción.
	// Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, productID int64) (*entity.Product, error)
	SetStock(ctx context.Context, productID int64, newStock int) error
}
