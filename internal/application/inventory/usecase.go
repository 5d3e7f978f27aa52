package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase es el único escritor del stock: registra entradas y salidas de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// No guarda estado entre llamadas; cada Record vuelve a leer el stock actual.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	metrics  Metrics
	notifier ChangeNotifier
	now      func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*RegisterMovementUseCase)

// WithMetrics registra contadores de movimientos.
func WithMetrics(m Metrics) Option {
	return func(uc *RegisterMovementUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithNotifier recibe aviso tras cada movimiento confirmado.
func WithNotifier(n ChangeNotifier) Option {
	return func(uc *RegisterMovementUseCase) {
		if n != nil {
			uc.notifier = n
		}
	}
}

// WithClock reemplaza time.Now (fecha y mes del movimiento).
func WithClock(now func() time.Time) Option {
	return func(uc *RegisterMovementUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, opts ...Option) *RegisterMovementUseCase {
	uc := &RegisterMovementUseCase{
		txRunner: txRunner,
		metrics:  NopMetrics,
		notifier: NopNotifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RecordMovementInput entrada del motor. Quantity ya viene normalizada a entero por la frontera HTTP.
type RecordMovementInput struct {
	ProductID int64
	Kind      entity.MovementKind
	Quantity  int
	Reason    string
}

// Record valida el movimiento, bloquea la fila del producto, verifica stock, calcula el valor
// y dentro de la misma transacción actualiza el stock y agrega el registro al libro.
// Cualquier error deshace la transacción completa.
func (uc *RegisterMovementUseCase) Record(ctx context.Context, input RecordMovementInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		uc.metrics.MovementRejected("validation")
		return nil, domain.NewValidationError("quantity", "deve ser maior que zero")
	}
	if !input.Kind.Valid() {
		uc.metrics.MovementRejected("validation")
		return nil, domain.NewValidationError("kind", "deve ser inbound ou outbound")
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = entity.DefaultReason
	}

	now := uc.now()
	var created *entity.Movement

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto para que dos salidas concurrentes no validen el mismo stock
		product, err := stockRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return domain.AsStorage("leer producto", err)
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock, err := inventory.ApplyDelta(input.Kind, product, input.Quantity)
		if err != nil {
			return err
		}
		if err := stockRepo.SetStock(ctx, product.ID, newStock); err != nil {
			return domain.AsStorage("actualizar stock", err)
		}

		mov := &entity.Movement{
			ProductID:   product.ID,
			ProductName: product.Name,
			Category:    product.Category,
			Kind:        input.Kind,
			Quantity:    input.Quantity,
			Date:        entity.DateOnly(now),
			MonthIndex:  entity.MonthIndexOf(now),
			Reason:      reason,
			TotalValue:  inventory.Valuate(input.Kind, product, input.Quantity),
		}
		if _, err := movRepo.Append(ctx, mov); err != nil {
			return domain.AsStorage("registrar movimiento", err)
		}
		created = mov
		return nil
	})
	if err != nil {
		uc.metrics.MovementRejected(rejectReason(err))
		return nil, domain.AsStorage("transacción de movimiento", err)
	}

	uc.metrics.MovementRecorded(created.Kind, created.Quantity, created.TotalValue)
	uc.notifier.InventoryChanged(ctx)
	return created, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	default:
		return "storage"
	}
}
