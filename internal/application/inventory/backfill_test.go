package inventory_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

func TestSeedCatalog_SkipsExistingNames(t *testing.T) {
	store := newMemStore()
	products := memProducts{s: store}
	store.addProduct(entity.Product{Name: inventory.DemoCatalog[0].Name, Category: "X", CurrentStock: 1})

	notifier := &countingNotifier{}
	n, err := inventory.NewSeedUseCase(products, notifier).SeedCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(inventory.DemoCatalog)-1, n)
	assert.Equal(t, 1, notifier.calls)

	// Segunda corrida no inserta nada
	n, err = inventory.NewSeedUseCase(products, nil).SeedCatalog(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBackfill_GeneratesHistoryWithoutTouchingStock(t *testing.T) {
	store := newMemStore()
	products := memProducts{s: store}
	_, err := inventory.NewSeedUseCase(products, nil).SeedCatalog(context.Background())
	require.NoError(t, err)

	before, err := products.List(context.Background())
	require.NoError(t, err)

	rnd := rand.New(rand.NewPCG(1, 2))
	uc := inventory.NewBackfillUseCase(store, products, rnd, nil)
	n, err := uc.Generate(context.Background(), inventory.BackfillOptions{Year: 2024, UpToMonth: 5})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 6*10)
	assert.LessOrEqual(t, n, 6*30)
	assert.Equal(t, n, store.movementCount())

	after, err := products.List(context.Background())
	require.NoError(t, err)
	for i := range before {
		assert.Equal(t, before[i].CurrentStock, after[i].CurrentStock, before[i].Name)
	}

	byID := map[int64]*entity.Product{}
	for _, p := range after {
		byID[p.ID] = p
	}
	perMonth := map[int]int{}
	err = store.Run(context.Background(), func(_ repository.StockRepository, movRepo repository.MovementRepository) error {
		movs, err := movRepo.List(context.Background(), repository.MovementFilter{})
		require.NoError(t, err)
		for _, m := range movs {
			p := byID[m.ProductID]
			require.NotNil(t, p)
			perMonth[m.MonthIndex]++
			assert.Equal(t, 2024, m.Date.Year())
			assert.Equal(t, m.MonthIndex, entity.MonthIndexOf(m.Date))
			assert.LessOrEqual(t, m.Date.Day(), 28)
			switch m.Kind {
			case entity.MovementOutbound:
				assert.True(t, m.Quantity >= 1 && m.Quantity <= 5)
				assert.Contains(t, inventory.OutboundReasons, m.Reason)
				assert.True(t, p.Price.Mul(decimal.NewFromInt(int64(m.Quantity))).Equal(m.TotalValue))
			case entity.MovementInbound:
				assert.True(t, m.Quantity >= 5 && m.Quantity <= 20)
				assert.Contains(t, inventory.InboundReasons, m.Reason)
				assert.True(t, p.Cost.Mul(decimal.NewFromInt(int64(m.Quantity))).Equal(m.TotalValue))
			default:
				t.Fatalf("tipo inesperado %q", m.Kind)
			}
		}
		return nil
	})
	require.NoError(t, err)
	for month := 0; month <= 5; month++ {
		assert.GreaterOrEqual(t, perMonth[month], 10, "mes %d", month)
		assert.LessOrEqual(t, perMonth[month], 30, "mes %d", month)
	}
	assert.Zero(t, perMonth[6])
}

func TestBackfill_RejectsInvalidMonth(t *testing.T) {
	store := newMemStore()
	uc := inventory.NewBackfillUseCase(store, memProducts{s: store}, rand.New(rand.NewPCG(1, 1)), nil)
	_, err := uc.Generate(context.Background(), inventory.BackfillOptions{Year: 2024, UpToMonth: 12})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrap_OnlySeedsEmptyStore(t *testing.T) {
	store := newMemStore()
	products := memProducts{s: store}
	boot := inventory.NewBootstrap(products,
		inventory.NewSeedUseCase(products, nil),
		inventory.NewBackfillUseCase(store, products, rand.New(rand.NewPCG(3, 4)), nil),
	)

	res, err := boot.EnsureSeeded(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Seeded)
	assert.Equal(t, len(inventory.DemoCatalog), res.ProductsInserted)
	assert.Positive(t, res.MovementsCreated)

	res, err = boot.EnsureSeeded(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Seeded)
	assert.Zero(t, res.MovementsCreated)
}
