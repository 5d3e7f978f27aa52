package cache_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/cache"
)

// memRedis imita GET/SET/INCR en memoria.
type memRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	down bool
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return redis.NewIntResult(0, errors.New("connection refused"))
	}
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestDashboardCache_RoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	rdb := newMemRedis()
	c := cache.NewDashboardCache(rdb, "estoque", time.Minute, nil)

	month := 2
	_, token, ok := c.GetSummary(ctx, &month)
	assert.False(t, ok)
	assert.Equal(t, analytics.CacheToken("0"), token)

	c.SetSummary(ctx, token, &month, &dto.DashboardSummaryDTO{Month: &month, Label: "Março", OutboundValue: decimal.NewFromInt(200)})
	got, _, ok := c.GetSummary(ctx, &month)
	require.True(t, ok)
	assert.Equal(t, "Março", got.Label)
	assert.True(t, decimal.NewFromInt(200).Equal(got.OutboundValue))
	require.NotNil(t, got.Month)
	assert.Equal(t, 2, *got.Month)
	assert.Equal(t, time.Minute, rdb.ttls["estoque:dashboard:0:2"])

	_, _, ok = c.GetSummary(ctx, nil)
	assert.False(t, ok, "el año completo usa otra clave")

	c.Invalidate(ctx)
	_, token, ok = c.GetSummary(ctx, &month)
	assert.False(t, ok)
	assert.Equal(t, analytics.CacheToken("1"), token)
}

func TestDashboardCache_SetWithOldTokenIsNeverRead(t *testing.T) {
	ctx := context.Background()
	c := cache.NewDashboardCache(newMemRedis(), "estoque", time.Minute, nil)

	_, old, _ := c.GetSummary(ctx, nil)
	c.Invalidate(ctx)
	c.SetSummary(ctx, old, nil, &dto.DashboardSummaryDTO{TotalUnits: 10})

	_, _, ok := c.GetSummary(ctx, nil)
	assert.False(t, ok)
}

func TestDashboardCache_RedisDownIsAMiss(t *testing.T) {
	ctx := context.Background()
	rdb := newMemRedis()
	rdb.down = true
	c := cache.NewDashboardCache(rdb, "estoque", 0, nil)

	_, token, ok := c.GetSummary(ctx, nil)
	assert.False(t, ok)
	assert.Empty(t, token)

	c.SetSummary(ctx, token, nil, &dto.DashboardSummaryDTO{})
	c.Invalidate(ctx)

	rdb.down = false
	_, _, ok = c.GetSummary(ctx, nil)
	assert.False(t, ok)
	assert.Empty(t, rdb.ttls, "sin token no se guarda nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escritura confirmada mientras el tablero carga
// ──────────────────────────────────────────────────────────────────────────────

// racingProducts devuelve el stock vigente y avisa cuando terminó la primera lectura.
type racingProducts struct {
	mu    sync.Mutex
	stock int
	read  chan struct{}
	once  sync.Once
}

func (p *racingProducts) setStock(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stock = n
}

func (p *racingProducts) List(context.Context) ([]*entity.Product, error) {
	p.mu.Lock()
	item := &entity.Product{ID: 1, Name: "Fone", Category: "Áudio", Cost: decimal.NewFromInt(30), Price: decimal.NewFromInt(50), MinStock: 2, CurrentStock: p.stock}
	p.mu.Unlock()
	p.once.Do(func() { close(p.read) })
	return []*entity.Product{item}, nil
}

func (p *racingProducts) Count(context.Context) (int, error) { return 1, nil }
func (p *racingProducts) GetByID(context.Context, int64) (*entity.Product, error) { return nil, nil }
func (p *racingProducts) Create(context.Context, *entity.Product) (int64, error) { return 0, nil }
func (p *racingProducts) Delete(context.Context, int64) (bool, error) { return false, nil }

// racingMovements en la primera carga espera la lectura de productos y simula
// una salida confirmada (stock 10 -> 4) seguida de su invalidación.
type racingMovements struct {
	products *racingProducts
	onWrite  func()
	once     sync.Once
}

func (m *racingMovements) List(context.Context, repository.MovementFilter) ([]*entity.Movement, error) {
	m.once.Do(func() {
		<-m.products.read
		m.products.setStock(4)
		m.onWrite()
	})
	return nil, nil
}

func (m *racingMovements) Append(context.Context, *entity.Movement) (int64, error) { return 0, nil }

func TestDashboardCache_WriteDuringLoadDoesNotPinStaleSummary(t *testing.T) {
	ctx := context.Background()
	products := &racingProducts{stock: 10, read: make(chan struct{})}
	movements := &racingMovements{products: products}
	c := cache.NewDashboardCache(newMemRedis(), "estoque", time.Minute, nil)
	uc := analytics.NewDashboardUseCase(products, movements, c)
	movements.onWrite = func() { uc.InventoryChanged(ctx) }

	first, err := uc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalUnits, "calculado con los datos previos a la escritura")

	second, err := uc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, second.TotalUnits)

	third, err := uc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, third.TotalUnits)
}
