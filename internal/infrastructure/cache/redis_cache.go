// Package cache guarda los resúmenes del tablero en Redis.
//
// Invalidación por generación: cada escritura confirmada hace INCR de la clave de
// generación; las claves de resumen incluyen la generación vigente, así las viejas
// quedan huérfanas y expiran por TTL sin tener que borrarlas una por una.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

var _ analytics.SummaryCache = (*DashboardCache)(nil)

// Client subconjunto de *redis.Client que usa la caché.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// DashboardCache implementa analytics.SummaryCache. Los errores de Redis se registran
// y se tratan como miss: la caché nunca hace fallar una consulta.
type DashboardCache struct {
	rdb    Client
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewDashboardCache construye la caché. prefix separa instancias que comparten Redis.
func NewDashboardCache(rdb Client, prefix string, ttl time.Duration, log *logger.Logger) *DashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DashboardCache{rdb: rdb, prefix: prefix, ttl: ttl, log: log}
}

// GetSummary devuelve el resumen de la generación vigente, si existe, y el token
// de esa generación para el SetSummary posterior.
func (c *DashboardCache) GetSummary(ctx context.Context, month *int) (*dto.DashboardSummaryDTO, analytics.CacheToken, bool) {
	gen, ok := c.generation(ctx)
	if !ok {
		return nil, "", false
	}
	token := analytics.CacheToken(gen)
	raw, err := c.rdb.Get(ctx, c.summaryKey(gen, month)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(err, "leer resumen")
		}
		return nil, token, false
	}
	var s dto.DashboardSummaryDTO
	if err := json.Unmarshal(raw, &s); err != nil {
		c.warn(err, "decodificar resumen")
		return nil, token, false
	}
	return &s, token, true
}

// SetSummary guarda el resumen bajo la generación del token (no la vigente).
func (c *DashboardCache) SetSummary(ctx context.Context, token analytics.CacheToken, month *int, summary *dto.DashboardSummaryDTO) {
	if token == "" {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		c.warn(err, "codificar resumen")
		return
	}
	if err := c.rdb.Set(ctx, c.summaryKey(string(token), month), raw, c.ttl).Err(); err != nil {
		c.warn(err, "guardar resumen")
	}
}

// Invalidate avanza la generación.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, c.generationKey()).Err(); err != nil {
		c.warn(err, "invalidar")
	}
}

func (c *DashboardCache) generationKey() string {
	return c.prefix + ":dashboard:gen"
}

// generation lee la generación vigente; sin clave todavía = "0".
func (c *DashboardCache) generation(ctx context.Context) (string, bool) {
	gen, err := c.rdb.Get(ctx, c.generationKey()).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "0", true
	case err != nil:
		c.warn(err, "leer generación")
		return "", false
	}
	return gen, true
}

func (c *DashboardCache) summaryKey(gen string, month *int) string {
	period := "all"
	if month != nil {
		period = strconv.Itoa(*month)
	}
	return fmt.Sprintf("%s:dashboard:%s:%s", c.prefix, gen, period)
}

func (c *DashboardCache) warn(err error, op string) {
	if c.log != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("cache redis")
	}
}
