package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/partsflow/internal/application/usecase"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
	"github.com/tu-usuario/partsflow/internal/infrastructure/memory"
	"github.com/tu-usuario/partsflow/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/partsflow/internal/interfaces/http"
	"github.com/tu-usuario/partsflow/pkg/config"
	"github.com/tu-usuario/partsflow/pkg/logger"
)

// repositories agrupa los puertos del dominio ya conectados a un backend.
type repositories struct {
	suppliers  repository.SupplierRepository
	categories repository.CategoryRepository
	parts      repository.PartRepository
	movements  repository.MovementRepository
	reports    repository.ReportRepository
	stats      repository.StatsRepository
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	var repos repositories
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = repositories{
			suppliers:  postgres.NewSupplierRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			parts:      postgres.NewPartRepository(pool),
			movements:  postgres.NewMovementRepository(pool),
			reports:    postgres.NewReportRepository(pool),
			stats:      postgres.NewStatsRepository(pool),
		}
	default: // memory
		store := memory.NewStore()
		if cfg.Storage.SeedDemo {
			memory.SeedDemo(store)
			log.Info().Msg("datos de demostración precargados")
		}
		repos = repositories{
			suppliers:  memory.NewSupplierRepository(store),
			categories: memory.NewCategoryRepository(store),
			parts:      memory.NewPartRepository(store),
			movements:  memory.NewMovementRepository(store),
			reports:    memory.NewReportRepository(store),
			stats:      memory.NewStatsRepository(store),
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC: usecase.NewSupplierUseCase(repos.suppliers),
		CategoryUC: usecase.NewCategoryUseCase(repos.categories),
		PartUC:     usecase.NewPartUseCase(repos.parts),
		MovementUC: usecase.NewMovementUseCase(repos.movements),
		ReportUC:   usecase.NewReportUseCase(repos.reports),
		StatsUC:    usecase.NewStatsUseCase(repos.stats),
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
