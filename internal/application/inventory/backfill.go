package inventory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// Motivos usados por el histórico sintético.
var (
	OutboundReasons = []string{"Venda Online", "Venda Balcão", "Venda Corporativa", "Marketplace"}
	InboundReasons  = []string{"Compra Regular", "Reposição Estoque", "Importação", "Devolução Fornecedor"}
)

// BackfillOptions período a generar. UpToMonth es 0-based e inclusivo.
type BackfillOptions struct {
	Year      int
	UpToMonth int
}

// BackfillUseCase genera movimientos históricos de demostración.
// Inserta directamente en el libro sin tocar CurrentStock: el histórico es retroactivo
// y consistente por sí mismo, no representa cambios vivos del inventario.
type BackfillUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	rnd         *rand.Rand
	notifier    ChangeNotifier
}

// NewBackfillUseCase construye el generador. rnd nil usa una fuente aleatoria nueva.
func NewBackfillUseCase(txRunner TxRunner, productRepo repository.ProductRepository, rnd *rand.Rand, notifier ChangeNotifier) *BackfillUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if notifier == nil {
		notifier = NopNotifier
	}
	return &BackfillUseCase{txRunner: txRunner, productRepo: productRepo, rnd: rnd, notifier: notifier}
}

// Generate crea entre 10 y 30 movimientos por mes hasta opts.UpToMonth en una sola transacción.
// 70% salidas (1–5 unidades, al precio) y 30% entradas (5–20 unidades, al costo).
func (uc *BackfillUseCase) Generate(ctx context.Context, opts BackfillOptions) (int, error) {
	if opts.UpToMonth < 0 || opts.UpToMonth > 11 {
		return 0, domain.NewValidationError("up_to_month", "deve estar entre 0 e 11")
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("backfill: listar productos: %w", err)
	}
	if len(products) == 0 {
		return 0, nil
	}

	movements := make([]*entity.Movement, 0, (opts.UpToMonth+1)*30)
	for month := 0; month <= opts.UpToMonth; month++ {
		n := 10 + uc.rnd.IntN(21)
		for i := 0; i < n; i++ {
			movements = append(movements, uc.randomMovement(products, opts.Year, month))
		}
	}

	err = uc.txRunner.Run(ctx, func(_ repository.StockRepository, movRepo repository.MovementRepository) error {
		for _, m := range movements {
			if _, err := movRepo.Append(ctx, m); err != nil {
				return domain.AsStorage("backfill: registrar movimiento", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.notifier.InventoryChanged(ctx)
	return len(movements), nil
}

func (uc *BackfillUseCase) randomMovement(products []*entity.Product, year, month int) *entity.Movement {
	p := products[uc.rnd.IntN(len(products))]

	kind := entity.MovementInbound
	reason := InboundReasons[uc.rnd.IntN(len(InboundReasons))]
	qty := 5 + uc.rnd.IntN(16)
	if uc.rnd.Float64() < 0.7 {
		kind = entity.MovementOutbound
		reason = OutboundReasons[uc.rnd.IntN(len(OutboundReasons))]
		qty = 1 + uc.rnd.IntN(5)
	}

	day := 1 + uc.rnd.IntN(28)
	date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local)
	return &entity.Movement{
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Kind:        kind,
		Quantity:    qty,
		Date:        date,
		MonthIndex:  month,
		Reason:      reason,
		TotalValue:  inventory.Valuate(kind, p, qty),
	}
}
