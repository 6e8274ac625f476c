// @title Homework Grader API
// @version 1.0
// @description Quality post-processing for generated practice exercises: duplicate removal, difficulty estimation and quality reports.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "homework-grader/cmd/api/docs"
	"homework-grader/internal/adapter"
	"homework-grader/internal/adapter/exercisegen"
	"homework-grader/internal/cache"
	"homework-grader/internal/config"
	"homework-grader/internal/database"
	"homework-grader/internal/domain"
	"homework-grader/internal/handler"
	"homework-grader/internal/logger"
	"homework-grader/internal/middleware"
	"homework-grader/internal/quality"
	"homework-grader/internal/repository"
	"homework-grader/internal/service"
	"homework-grader/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	engine := quality.NewEngine(
		quality.WithDuplicateThreshold(cfg.Quality.DuplicateThreshold),
		quality.WithWorkers(cfg.Quality.Workers),
		quality.WithKeywordTables(quality.KeywordTables{
			StepKeywords:    cfg.Keywords.Step,
			ConceptKeywords: cfg.Keywords.Concept,
			FunctionTokens:  cfg.Keywords.Functions,
		}),
	)
	validator := validation.NewValidator(cfg.Quality.MaxBatchSize, cfg.Practice.MaxCount)

	// Redis and Oracle are optional: without them reports are neither cached nor stored.
	var (
		cacheAdapter domain.Cache
		reportRepo   domain.QualityReportRepository
		dbPinger     handler.Pinger
	)

	redisClient, err := cache.NewRedisClient(startCtx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, report cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	if cfg.DB.User != "" {
		db, err := database.NewSQLXOracleDB(startCtx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := database.RunMigrations(startCtx, db); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		reportRepo = repository.NewQualityReportDatabaseAdapter(db)
		dbPinger = handler.PingFunc(db.PingContext)
	} else {
		appLogger.Warn("db.user not set, quality reports will not be persisted")
	}

	reportCache := service.NewReportCacheService(cacheAdapter,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.QualityReport, 30*time.Minute))
	qualityService := service.NewQualityService(engine, reportRepo, reportCache, validator)

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.LLM.ServerURL),
		ollama.WithModel(cfg.LLM.Model),
		ollama.WithHTTPClient(&http.Client{Timeout: cfg.LLM.Timeout}),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := exercisegen.NewLLMExerciseGenerator(llm, cfg.LLM.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create exercise generator", zap.Error(err))
	}
	practiceService := service.NewPracticeService(generator, engine, validator)

	tokens, err := service.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		appLogger.Fatal("Failed to create JWT service", zap.Error(err))
	}

	checks := map[string]handler.Pinger{"oracle": dbPinger}
	if cacheAdapter != nil {
		checks["redis"] = cacheAdapter
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Quality:    handler.NewQualityHandler(qualityService),
		Practice:   handler.NewPracticeHandler(practiceService),
		Health:     handler.NewHealthHandler(checks),
		Verifier:   tokens,
		Validation: middleware.NewValidationMiddleware(validator),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
