package http

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// MetricsExporter observador HTTP que además sirve /metrics.
type MetricsExporter interface {
	HTTPObserver
	Handler() http.Handler
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	MovementUC       *usecase.MovementUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	ReportUC         *report.UseCase
	Logger           *logger.Logger
	Metrics          MetricsExporter // nil = sin /metrics
	RateLimit        string          // formato limiter, ej. "100-M"
	ServiceName      string
	Ping             func(ctx context.Context) error
}

// NewApp construye la app fiber con el ErrorHandler JSON.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
	})
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) error {
	app.Use(recover.New())
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "banco de dados indisponível"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	// limit solo en rutas de escritura
	limit, err := RateLimit(deps.RateLimit)
	if err != nil {
		return err
	}
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", limit, productHandler.Create)
	products.Delete("/:id", limit, productHandler.Delete)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", limit, movementHandler.Create)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/categories/:category", dashboardHandler.GetCategory)

	// Reports
	if deps.ReportUC != nil {
		reports := api.Group("/reports")
		reportHandler := NewReportHandler(deps.ReportUC)
		reports.Get("/movements.xlsx", reportHandler.MovementsXLSX)
		reports.Get("/stock.pdf", reportHandler.StockPDF)
	}
	return nil
}
