package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	infrapdf "github.com/hulumoya/agency-dashboard/internal/infrastructure/pdf"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/internal/interfaces/web"
	"github.com/hulumoya/agency-dashboard/pkg/config"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	// Cliente del API remoto y gateways (toda operación de datos pasa por él)
	client := restapi.NewClient(cfg.API, log)
	authGW := restapi.NewAuthGateway(client)
	agencyGW := restapi.NewAgencyGateway(client)
	tenderGW := restapi.NewTenderGateway(client)
	adminGW := restapi.NewAdminGateway(client)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := usecase.NewAuthUseCase(authGW, agencyGW, log)
	agencyUC := usecase.NewAgencyUseCase(agencyGW)
	tenderUC := usecase.NewTenderUseCase(tenderGW, pdfGenerator, log)
	catalogUC := usecase.NewCatalogUseCase(adminGW, cfg.API.TenderCategoryID)

	sessions := session.New(cfg.Session)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.NewEngine("./web/templates"),
		ViewsLayout:  "layouts/main",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		AuthUC:    authUC,
		AgencyUC:  agencyUC,
		TenderUC:  tenderUC,
		CatalogUC: catalogUC,
		Sessions:  sessions,
		Log:       log,
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
