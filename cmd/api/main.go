package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/ports"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Rentabilidad-api/internal/interfaces/http"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ledgerStore := memory.NewLedgerStore()
	planStore := memory.NewTestingPlanStore()

	clock := ports.SystemClock()
	ids := ports.UUIDGenerator()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	productUC := usecase.NewProductUseCase(ledgerStore, ids, clock, cfg.Seed.HistoryDays, rng)
	metricsUC := usecase.NewMetricsUseCase(ledgerStore, clock)
	planUC := usecase.NewTestingPlanUseCase(planStore, ids, clock)

	if cfg.Seed.DemoData {
		if err := seedDemoData(productUC, planUC); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
		log.Info().Msg("datos de demostración sembrados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		MetricsUC:     metricsUC,
		TestingPlanUC: planUC,
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

// seedDemoData carga los tres productos de demostración y un plan de prueba
// inicial a través de los casos de uso públicos, de modo que el histórico
// diario queda sembrado igual que para cualquier producto nuevo.
func seedDemoData(productUC *usecase.ProductUseCase, planUC *usecase.TestingPlanUseCase) error {
	demo := []dto.CreateProductRequest{
		{
			Name:        "E-Book: Growth Hacking",
			Description: "Strategies for rapid startup growth",
			Price:       decimal.NewFromFloat(499.00),
			AdSpend:     decimal.NewFromInt(3500),
			Clicks:      450,
			Conversions: 18,
		},
		{
			Name:        "Notion Template Pack",
			Description: "Premium templates for productivity",
			Price:       decimal.NewFromFloat(1999.00),
			AdSpend:     decimal.NewFromInt(15000),
			Clicks:      1200,
			Conversions: 15,
		},
		{
			Name:        "Course: Angular Mastery",
			Description: "Complete zero to hero Angular guide",
			Price:       decimal.NewFromFloat(4999.00),
			AdSpend:     decimal.NewFromInt(8000),
			Clicks:      600,
			Conversions: 4,
		},
	}
	for _, p := range demo {
		if _, err := productUC.Create(p); err != nil {
			return err
		}
	}

	_, err := planUC.Create(dto.CreateTestingPlanRequest{
		ProductName: "E-Book: Growth Hacking",
		AdSetIdea:   "Target lookalike audience from website visitors with video ads.",
		Notes:       "Initial CPC is a bit high, but CTR is good. Will monitor for 3 more days before deciding.",
	})
	return err
}
