package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/rrhh-api/internal/application/auth"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/authz"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/csvexport"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/rrhh-api/internal/infrastructure/pdf"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/rrhh-api/internal/infrastructure/redis"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/rrhh-api/internal/interfaces/http"
	"github.com/jhoicas/rrhh-api/pkg/config"
	"github.com/jhoicas/rrhh-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	leaveRepo := postgres.NewLeaveRequestRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Tokens revocados: Redis si está configurado, si no la tabla revoked_tokens.
	var revoked repository.TokenRevocationStore = postgres.NewRevokedTokenRepository(pool)
	if cfg.Redis.Enabled() {
		rdb := infraredis.NewClient(cfg.Redis)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		revoked = infraredis.NewRevocationStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens en Redis")
	}

	enforcer, err := authz.NewEnforcer(entity.RoleCapabilities)
	if err != nil {
		log.Fatal().Err(err).Msg("política de autorización")
	}
	prom := metrics.New()

	balanceUC := usecase.NewBalanceUseCase(userRepo, leaveRepo, cfg.Leave.AnnualDays, usecase.SystemClock)
	authUC := auth.NewAuthUseCase(userRepo, revoked, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	exportUC := export.NewUseCase(export.Repos{
		Users:       userRepo,
		Profiles:    profileRepo,
		Departments: departmentRepo,
		Leaves:      leaveRepo,
		Attendance:  attendanceRepo,
	}, balanceUC, map[export.Format]export.Renderer{
		export.FormatCSV:  csvexport.NewWriter(),
		export.FormatPDF:  infrapdf.NewMarotoPDFGenerator(),
		export.FormatXLSX: xlsx.NewGenerator(),
	}, prom)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(prom.Middleware())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "RRHH API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("documento OpenAPI no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": cfg.App.Name, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", prom.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   usecase.NewEmployeeUseCase(userRepo, profileRepo, departmentRepo, txRunner, balanceUC, usecase.SystemClock),
		DepartmentUC: usecase.NewDepartmentUseCase(departmentRepo, usecase.SystemClock),
		LeaveUC:      usecase.NewLeaveUseCase(leaveRepo, balanceUC, prom, usecase.SystemClock),
		AttendanceUC: usecase.NewAttendanceUseCase(userRepo, attendanceRepo, usecase.SystemClock),
		BalanceUC:    balanceUC,
		ProfileUC:    usecase.NewProfileUseCase(userRepo, profileRepo, departmentRepo, balanceUC),
		ExportUC:     exportUC,
		Authorizer:   enforcer,
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
