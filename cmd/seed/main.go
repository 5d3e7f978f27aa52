// seed puebla la base configurada (DB_DRIVER) con el catálogo de demostración
// y genera movimientos históricos aleatorios para un año.
//
// Uso: go run ./cmd/seed [-year 2024] [-month 11] [-catalog-only] [-seed 42]
// Por defecto usa el año y mes actuales. Los productos ya existentes (por nombre) no se duplican.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/storage"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

func main() {
	now := time.Now()
	year := flag.Int("year", now.Year(), "año del histórico")
	month := flag.Int("month", entity.MonthIndexOf(now), "último mes a generar (0-11)")
	catalogOnly := flag.Bool("catalog-only", false, "solo insertar el catálogo, sin histórico")
	seed := flag.Uint64("seed", uint64(now.UnixNano()), "semilla del generador aleatorio")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "estoque-seed"})

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	inserted, err := inventory.NewSeedUseCase(backend.Products, nil).SeedCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("insertar catálogo")
	}
	log.Info().Int("products", inserted).Str("driver", backend.Driver).Msg("catálogo")
	if *catalogOnly {
		return
	}

	rnd := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	backfill := inventory.NewBackfillUseCase(backend.Tx, backend.Products, rnd, nil)
	created, err := backfill.Generate(ctx, inventory.BackfillOptions{Year: *year, UpToMonth: *month})
	if err != nil {
		log.Fatal().Err(err).Int("year", *year).Int("month", *month).Msg("generar histórico")
	}
	log.Info().Int("movements", created).Int("year", *year).Int("up_to_month", *month).Msg("histórico generado")
}
