// Package logger envuelve zerolog: consola legible en desarrollo, JSON en el resto.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultService = "estoque-api"

// Config opciones para el logger.
type Config struct {
	Env     string    // development/dev/local -> consola; otro -> JSON
	Level   string    // trace, debug, info, warn, error (sin distinguir mayúsculas)
	Out     io.Writer // nil = os.Stdout
	Service string    // campo "service" en cada entrada
}

// Logger es el logger inyectado en casos de uso, adaptadores y middlewares.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if isConsoleEnv(cfg.Env) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	service := cfg.Service
	if service == "" {
		service = defaultService
	}

	zl := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Str("service", service).
		Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop descarta todo (tests, herramientas).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Component sublogger con el campo "component" fijo (cache, seed, http...).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// parseLevel nivel desconocido o vacío -> info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func isConsoleEnv(env string) bool {
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		return true
	}
	return false
}
