package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skillcheckpoint/database"
	"skillcheckpoint/internal/config"
	"skillcheckpoint/internal/http-api/handler"
	"skillcheckpoint/internal/http-api/middleware"
	"skillcheckpoint/internal/http-api/models"
	"skillcheckpoint/internal/http-api/repository"
	"skillcheckpoint/internal/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()

	// pgx pool for health checks
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	// GORM handle used by the repositories
	gdb, err := database.OpenGorm(cfg)
	if err != nil {
		log.Fatalf("failed to open gorm DB: %v", err)
	}

	// Auto-migrate models
	if err := gdb.AutoMigrate(
		&models.Question{},
		&models.Answer{},
		&models.QuestionVote{},
		&models.AnswerVote{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Server API is working 🚀")
	})
	r.GET("/check-conn", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database unreachable."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected ✅"})
	})

	// Create repositories
	questionRepo := repository.NewQuestionRepository(gdb)
	answerRepo := repository.NewAnswerRepository(gdb)
	voteRepo := repository.NewVoteRepository(gdb)

	// Create services
	questionService := service.NewQuestionService(questionRepo)
	answerService := service.NewAnswerService(answerRepo)
	voteService := service.NewVoteService(voteRepo)

	// Register routes
	root := r.Group("")
	handler.NewQuestionHandler(questionService).RegisterRoutes(root)
	handler.NewAnswerHandler(answerService).RegisterRoutes(root)
	handler.NewVoteHandler(voteService).RegisterRoutes(root)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
