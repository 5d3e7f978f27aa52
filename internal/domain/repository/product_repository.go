package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo (DIP).
// No expone escritura de stock: eso solo ocurre vía StockRepository dentro de TxRunner.
type ProductRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// Delete devuelve true si se eliminó una fila; los movimientos se eliminan en cascada.
	Delete(ctx context.Context, id int64) (bool, error)
}
