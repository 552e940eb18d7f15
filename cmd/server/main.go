package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"tasktrack/configs"
	"tasktrack/internal/middleware"
	"tasktrack/internal/report"
	"tasktrack/internal/repository"
	"tasktrack/internal/session"
	"tasktrack/internal/web"
	"tasktrack/internal/web/handlers"
	"tasktrack/pkg/database"
	"tasktrack/pkg/logger"
)

func main() {
	cfg := configs.LoadConfig()

	logger.InitLoggers(cfg.LogDir)
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.SystemLogger.Info("Database connected", zap.String("path", cfg.DBPath))

	repository.CreateTableIfNotExists(db)

	accounts := repository.NewAccountRepository(db)
	tasks := repository.NewTaskRepository(db)
	sessions := session.NewStore(
		[]byte(cfg.SessionSecret),
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)
	defer sessions.Close()
	reports := report.NewGenerator(tasks, cfg.StaticDir)

	engine := html.New(cfg.TemplateDir, ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layout",
	})

	app.Use(middleware.ErrorHandler())
	app.Static("/static", cfg.StaticDir)

	h := handlers.New(accounts, tasks, sessions, reports)
	web.RegisterRoutes(app, h, sessions)

	logger.SystemLogger.Info("Application ready", zap.String("port", cfg.ServerPort))
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
