package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/cache"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/storage"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	// Caché del tablero: opcional, si Redis no responde se sigue sin caché.
	var summaryCache appanalytics.SummaryCache
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, tablero sin caché")
		} else {
			defer rdb.Close()
			summaryCache = cache.NewDashboardCache(rdb, cfg.App.Name, cfg.Redis.TTL, log.Component("cache"))
		}
	}

	var recorder *metrics.Recorder
	engineOpts := []inventory.Option{}
	if cfg.Metrics.Enabled {
		recorder = metrics.New("estoque")
		engineOpts = append(engineOpts, inventory.WithMetrics(recorder))
	}

	dashboardUC := appanalytics.NewDashboardUseCase(backend.Products, backend.Movements, summaryCache)
	engineOpts = append(engineOpts, inventory.WithNotifier(dashboardUC))

	registerMovementUC := inventory.NewRegisterMovementUseCase(backend.Tx, engineOpts...)
	productUC := usecase.NewProductUseCase(backend.Products, dashboardUC)
	movementUC := usecase.NewMovementUseCase(backend.Movements)
	reportUC := report.NewUseCase(backend.Products, backend.Movements, xlsx.NewGenerator(), infrapdf.NewMarotoPDFGenerator())

	if cfg.App.AutoSeed {
		now := time.Now()
		rnd := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid())))
		bootstrap := inventory.NewBootstrap(
			backend.Products,
			inventory.NewSeedUseCase(backend.Products, dashboardUC),
			inventory.NewBackfillUseCase(backend.Tx, backend.Products, rnd, dashboardUC),
		)
		res, err := bootstrap.EnsureSeeded(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("poblar base vacía")
		}
		if res.Seeded {
			log.Info().
				Int("products", res.ProductsInserted).
				Int("movements", res.MovementsCreated).
				Msg("catálogo demo e histórico generados")
		}
	}

	app := httpRouter.NewApp(cfg.App.Name)

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.HTTP.DocsFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsFile,
			Path:     "docs",
			Title:    "Estoque API",
		}))
	}

	deps := httpRouter.RouterDeps{
		ProductUC:        productUC,
		MovementUC:       movementUC,
		RegisterMovement: registerMovementUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		Logger:           log,
		RateLimit:        cfg.HTTP.RateLimit,
		ServiceName:      cfg.App.Name,
		Ping:             backend.Ping,
	}
	if recorder != nil {
		deps.Metrics = recorder
	}
	if err := httpRouter.Router(app, deps); err != nil {
		log.Fatal().Err(err).Msg("configurar rutas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
