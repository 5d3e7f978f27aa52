package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: si fn devuelve error se hace Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// Metrics recibe contadores del motor (implementación Prometheus en infrastructure/metrics).
type Metrics interface {
	MovementRecorded(kind entity.MovementKind, quantity int, totalValue decimal.Decimal)
	MovementRejected(reason string)
}

// ChangeNotifier se invoca después de cada escritura confirmada (p. ej. invalidar caché del tablero).
type ChangeNotifier interface {
	InventoryChanged(ctx context.Context)
}

type nopMetrics struct{}

func (nopMetrics) MovementRecorded(entity.MovementKind, int, decimal.Decimal) {}
func (nopMetrics) MovementRejected(string)                                    {}

type nopNotifier struct{}

func (nopNotifier) InventoryChanged(context.Context) {}

// NopMetrics y NopNotifier para tests o cuando no se configura observabilidad.
var (
	NopMetrics  Metrics        = nopMetrics{}
	NopNotifier ChangeNotifier = nopNotifier{}
)

// Notifiers combina varios ChangeNotifier en uno.
type Notifiers []ChangeNotifier

// InventoryChanged notifica a todos en orden.
func (n Notifiers) InventoryChanged(ctx context.Context) {
	for _, x := range n {
		if x != nil {
			x.InventoryChanged(ctx)
		}
	}
}
