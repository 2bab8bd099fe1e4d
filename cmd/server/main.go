package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/muscleflow/muscleflow/internal/config"
	"github.com/muscleflow/muscleflow/internal/database"
	"github.com/muscleflow/muscleflow/internal/handlers"
	"github.com/muscleflow/muscleflow/internal/logging"
	"github.com/muscleflow/muscleflow/internal/middleware"
	"go.uber.org/zap"

	_ "github.com/muscleflow/muscleflow/docs/api" // Swagger docs
)

// @title MuscleFlow API
// @version 1.0.0
// @description Fitness tracking REST service: users, exercises, physical records, training sheets and executed trainings

// @contact.name API Support
// @contact.url https://github.com/muscleflow/muscleflow

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.RequestIDMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("muscleflow")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	userHandler := &handlers.UserHandler{DB: db, Log: zlog}
	exerciseHandler := &handlers.ExerciseHandler{DB: db, Log: zlog}
	recordHandler := &handlers.PhysicalRecordHandler{DB: db, Log: zlog}
	sheetHandler := &handlers.TrainingSheetHandler{DB: db, Log: zlog}
	trainingHandler := &handlers.DailyTrainingHandler{DB: db, Log: zlog}
	statsHandler := &handlers.StatsHandler{DB: db, Log: zlog}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db, Log: zlog}

	// Health
	api.Get("/health", healthHandler.Health)

	// User routes
	api.Get("/users/search", userHandler.SearchUsers)
	api.Get("/users/count", userHandler.CountUsers)
	api.Get("/users/:id/training_sheets", userHandler.ListUserTrainingSheets)
	api.Get("/users/:id", userHandler.GetUser)
	api.Get("/users", userHandler.ListUsers)
	api.Post("/users", userHandler.CreateUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	// Exercise routes
	api.Get("/exercises/search", exerciseHandler.SearchExercises)
	api.Get("/exercises/count", exerciseHandler.CountExercises)
	api.Get("/exercises/:id", exerciseHandler.GetExercise)
	api.Get("/exercises", exerciseHandler.ListExercises)
	api.Post("/exercises", exerciseHandler.CreateExercise)
	api.Put("/exercises/:id", exerciseHandler.UpdateExercise)
	api.Delete("/exercises/:id", exerciseHandler.DeleteExercise)

	// Physical record routes
	api.Get("/physical_records/count", recordHandler.CountPhysicalRecords)
	api.Get("/physical_records/user/:userID", recordHandler.ListUserPhysicalRecords)
	api.Get("/physical_records/:id", recordHandler.GetPhysicalRecord)
	api.Get("/physical_records", recordHandler.ListPhysicalRecords)
	api.Post("/physical_records", recordHandler.CreatePhysicalRecord)
	api.Put("/physical_records/:id", recordHandler.UpdatePhysicalRecord)
	api.Delete("/physical_records/:id", recordHandler.DeletePhysicalRecord)

	// Training sheet routes
	api.Get("/training_sheets/search", sheetHandler.SearchTrainingSheets)
	api.Get("/training_sheets/count", sheetHandler.CountTrainingSheets)
	api.Get("/training_sheets/:id", sheetHandler.GetTrainingSheet)
	api.Get("/training_sheets", sheetHandler.ListTrainingSheets)
	api.Post("/training_sheets", sheetHandler.CreateTrainingSheet)
	api.Put("/training_sheets/:id", sheetHandler.ReplaceTrainingSheet)
	api.Delete("/training_sheets/:id", sheetHandler.DeleteTrainingSheet)
	api.Post("/training_sheets/:id/users/:userID", sheetHandler.AssignUser)
	api.Delete("/training_sheets/:id/users/:userID", sheetHandler.UnassignUser)

	// Daily training routes
	api.Get("/daily_trainings/search", trainingHandler.SearchDailyTrainings)
	api.Get("/daily_trainings/count", trainingHandler.CountDailyTrainings)
	api.Get("/daily_trainings/:id", trainingHandler.GetDailyTraining)
	api.Get("/daily_trainings", trainingHandler.ListDailyTrainings)
	api.Post("/daily_trainings", trainingHandler.CreateDailyTraining)
	api.Put("/daily_trainings/:id", trainingHandler.ReplaceDailyTraining)
	api.Delete("/daily_trainings/:id", trainingHandler.DeleteDailyTraining)

	// Stats routes
	api.Get("/stats/training_sheets/most_used", statsHandler.MostUsedTrainingSheets)
	api.Get("/stats/exercises/top_executed", statsHandler.TopExecutedExercises)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zlog.Info("gracefully shutting down")
		_ = app.Shutdown()
	}()

	// Start server
	zlog.Info("starting server", zap.String("port", cfg.Port), zap.String("db_type", cfg.DBType))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}

	zlog.Info("server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "unknown",
	})
}
