package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appbook "github.com/luismlg/casfid-technical-test/internal/application/book"
	"github.com/luismlg/casfid-technical-test/internal/domain/book"
	"github.com/luismlg/casfid-technical-test/internal/infrastructure/config"
	"github.com/luismlg/casfid-technical-test/internal/infrastructure/openlibrary"
	"github.com/luismlg/casfid-technical-test/internal/infrastructure/persistence/mysql"
	"github.com/luismlg/casfid-technical-test/internal/infrastructure/persistence/redis"
	"github.com/luismlg/casfid-technical-test/internal/interface/http/handler"
	"github.com/luismlg/casfid-technical-test/internal/interface/http/middleware"
	"github.com/luismlg/casfid-technical-test/pkg/jwt"
	"github.com/luismlg/casfid-technical-test/pkg/response"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.Error("init database", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency wiring, bottom up: repository and provider, use cases,
	// handler. All of it is manual; the graph is small enough.
	bookRepo := mysql.NewBookRepository(db)

	var provider book.DescriptionProvider = openlibrary.NewProvider(
		cfg.OpenLibrary.BaseURL,
		cfg.OpenLibrary.Timeout,
		logger,
	)

	// The Redis cache in front of the provider is optional; without it
	// every create hits Open Library directly.
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			logger.Error("init redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()
		provider = redis.NewDescriptionCache(redisClient, provider, cfg.Redis.DescriptionTTL, logger)
	}

	logListener := appbook.NewLogListener(logger)

	bookHandler := handler.NewBookHandler(
		appbook.NewCreateBookUseCase(bookRepo, provider, logListener),
		appbook.NewUpdateBookUseCase(bookRepo, logListener),
		appbook.NewDeleteBookUseCase(bookRepo, logListener),
		appbook.NewGetBookUseCase(bookRepo),
		appbook.NewGetBooksUseCase(bookRepo),
	)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	registerRoutes(r, cfg, bookHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr), slog.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", slog.Any("error", err))
	}
}

func registerRoutes(r *gin.Engine, cfg *config.Config, bookHandler *handler.BookHandler) {
	r.GET("/ping", func(c *gin.Context) {
		response.Data(c, http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// The bearer-token gate covers the whole catalog when enabled.
	if cfg.JWT.Enabled {
		jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer)
		api.Use(middleware.NewAuthMiddleware(jwtManager).RequireAuth())
	}

	books := api.Group("/books")
	{
		books.GET("", bookHandler.GetBooks)
		books.GET("/:isbn", bookHandler.GetBook)
		books.POST("", bookHandler.CreateBook)
		books.PUT("/:isbn", bookHandler.UpdateBook)
		books.DELETE("/:isbn", bookHandler.DeleteBook)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(h)
}
