package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lectura con bloqueo y escritura de current_stock. Solo tiene sentido dentro de una tx.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador sobre la tx (o pool en tests de integración).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate lee el producto con SELECT ... FOR UPDATE; (nil, nil) si no existe.
// Una segunda salida concurrente sobre el mismo producto espera aquí hasta el commit de la primera.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, productID)
	p, err := scanProduct(row)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("lock product %d: %w", productID, err)
	}
	return p, nil
}

// SetStock persiste el nuevo saldo. El CHECK current_stock >= 0 es la última barrera.
func (r *StockRepo) SetStock(ctx context.Context, productID int64, newStock int) error {
	tag, err := r.q.Exec(ctx, `UPDATE products SET current_stock = $2 WHERE id = $1`, productID, newStock)
	if err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
