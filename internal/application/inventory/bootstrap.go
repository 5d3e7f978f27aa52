package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// BootstrapResult resumen de la población automática.
type BootstrapResult struct {
	Seeded           bool
	ProductsInserted int
	MovementsCreated int
}

// Bootstrap puebla una base vacía (catálogo demo + histórico del año en curso).
// Es un paso externo al motor: se llama al arrancar el proceso, nunca desde Record.
type Bootstrap struct {
	productRepo repository.ProductRepository
	seed        *SeedUseCase
	backfill    *BackfillUseCase
	now         func() time.Time
}

// NewBootstrap construye el paso de arranque.
func NewBootstrap(productRepo repository.ProductRepository, seed *SeedUseCase, backfill *BackfillUseCase) *Bootstrap {
	return &Bootstrap{productRepo: productRepo, seed: seed, backfill: backfill, now: time.Now}
}

// EnsureSeeded si Count() == 0 inserta el catálogo y genera el histórico hasta el mes actual.
func (b *Bootstrap) EnsureSeeded(ctx context.Context) (BootstrapResult, error) {
	count, err := b.productRepo.Count(ctx)
	if err != nil {
		return BootstrapResult{}, fmt.Errorf("bootstrap: contar productos: %w", err)
	}
	if count > 0 {
		return BootstrapResult{}, nil
	}

	inserted, err := b.seed.SeedCatalog(ctx)
	if err != nil {
		return BootstrapResult{}, err
	}
	now := b.now()
	created, err := b.backfill.Generate(ctx, BackfillOptions{Year: now.Year(), UpToMonth: entity.MonthIndexOf(now)})
	if err != nil {
		return BootstrapResult{Seeded: true, ProductsInserted: inserted}, err
	}
	return BootstrapResult{Seeded: true, ProductsInserted: inserted, MovementsCreated: created}, nil
}
