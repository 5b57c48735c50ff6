package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/bootstrap"
	httpRouter "github.com/jhoicas/antorcha-inventario/internal/interfaces/http"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
	"github.com/jhoicas/antorcha-inventario/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	svc, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicios")
	}
	defer svc.Close()

	app := httpRouter.NewApp(cfg.App.Name)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Store:       svc.Store,
		ProductUC:   svc.Products,
		SaleUC:      svc.Sales,
		CashUC:      svc.Cash,
		DashboardUC: svc.Dashboard,
		SummaryUC:   svc.Summary,
		TransferUC:  svc.Transfer,
		DocsFile:    "./docs/swagger.json",
	})

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
