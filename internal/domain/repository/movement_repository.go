package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// MovementFilter filtros opcionales del listado de movimientos (valor cero = sin filtro).
type MovementFilter struct {
	Category   string
	Kind       entity.MovementKind
	ProductID  int64
	MonthIndex *int
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
type MovementRepository interface {
	// List devuelve los movimientos del más reciente al más antiguo (id descendente).
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
	// Append inserta el movimiento sin validar reglas de negocio y asigna movement.ID.
	Append(ctx context.Context, movement *entity.Movement) (int64, error)
}
