package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/antorcha-inventario/internal/application/analytics"
	"github.com/jhoicas/antorcha-inventario/internal/application/summary"
	"github.com/jhoicas/antorcha-inventario/internal/application/transfer"
	"github.com/jhoicas/antorcha-inventario/internal/application/usecase"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Store       *store.Store
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	CashUC      *usecase.CashUseCase
	DashboardUC *appanalytics.DashboardUseCase
	SummaryUC   *summary.UseCase
	TransferUC  *transfer.UseCase
	// DocsFile ruta del swagger.json; vacío o inexistente desactiva /docs.
	DocsFile string
}

// NewApp crea la aplicación Fiber con recover y el manejador de errores JSON.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.DocsFile != "" {
		if _, err := os.Stat(deps.DocsFile); err == nil {
			// Swagger UI: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.DocsFile,
				Path:     "docs",
				Title:    "Antorcha Inventario API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/status", NewStatusHandler(deps.Store).Get)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.SaleUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/", productHandler.DeleteAll)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/production", productHandler.Production)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Record)

	cash := api.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Get("/", cashHandler.List)
	cash.Post("/", cashHandler.Create)
	cash.Get("/balance", cashHandler.Balance)
	cash.Get("/:id", cashHandler.GetByID)

	api.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)

	summaries := api.Group("/summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	summaries.Get("/", summaryHandler.Get)
	summaries.Post("/send", summaryHandler.Send)

	data := api.Group("/data")
	dataHandler := NewDataHandler(deps.TransferUC)
	data.Post("/import", dataHandler.Import)
	data.Get("/export", dataHandler.Export)
}
