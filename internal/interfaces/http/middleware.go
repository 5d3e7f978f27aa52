package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

const (
	localRequestID = "request_id"
	localLogger    = "logger"
	headerReqID    = "X-Request-ID"
)

// RequestLogger asigna un X-Request-ID (uuid) y registra cada request con zerolog.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(headerReqID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerReqID, reqID)
		c.Locals(localRequestID, reqID)

		zl := log.With().Str("request_id", reqID).Logger()
		c.Locals(localLogger, &zl)

		err := c.Next()
		if err != nil {
			// el ErrorHandler fija el status real antes de loguear
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := zl.Info()
		if status >= fiber.StatusInternalServerError {
			ev = zl.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = zl.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}

// logFrom devuelve el logger del request (o uno nulo fuera de RequestLogger).
func logFrom(c *fiber.Ctx) *zerolog.Logger {
	if zl, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return zl
	}
	nop := zerolog.Nop()
	return &nop
}

// RateLimit limita requests por IP con ulule/limiter (store en memoria).
// format usa el formato de limiter, ej. "100-M"; vacío desactiva el límite.
func RateLimit(format string) (fiber.Handler, error) {
	if format == "" {
		return func(c *fiber.Ctx) error { return c.Next() }, nil
	}
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), rate)

	return func(c *fiber.Ctx) error {
		lc, err := instance.Get(c.UserContext(), c.IP())
		if err != nil {
			logFrom(c).Warn().Err(err).Msg("rate limiter")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))
		if lc.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "muitas requisições, tente novamente em instantes",
			})
		}
		return c.Next()
	}, nil
}

// HTTPObserver recibe la duración de cada request (implementación Prometheus).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics reporta método, ruta registrada y status al observer.
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		obs.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
