package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsroom/internal/cache"
	"newsroom/internal/config"
	"newsroom/internal/handler"
	"newsroom/internal/logger"
	"newsroom/internal/middleware"
	"newsroom/internal/remote"
	"newsroom/internal/scheduler"
	"newsroom/internal/service"
	"newsroom/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(cfg.LogLevel)

	// Upstream service clients
	posts := remote.NewPostsClient(remote.Config{BaseURL: cfg.PostsBaseURL, Timeout: cfg.RemoteTimeout})
	reviews := remote.NewReviewsClient(remote.Config{BaseURL: cfg.ReviewsBaseURL, Timeout: cfg.RemoteTimeout})
	comments := remote.NewCommentsClient(remote.Config{BaseURL: cfg.CommentsBaseURL, Timeout: cfg.RemoteTimeout})

	// Cached collections
	articleCache := cache.New("articles", posts.List)
	reviewCache := cache.New("reviews", reviews.List)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	protocol := service.NewReviewProtocol(posts, reviews, articleCache, reviewCache, v, logger.Default())
	workflow := service.NewArticleWorkflow(posts, reviews, protocol, articleCache, reviewCache, v, logger.Default())
	commentService := service.NewCommentService(comments, v, logger.Default())

	// Warm the caches; the gateway still starts if the upstreams are
	// down and reports not-ready until the first refresh lands.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), cfg.RemoteTimeout)
	if err := workflow.Refresh(warmCtx); err != nil {
		logger.Warn("Initial cache refresh failed, starting degraded",
			slog.String("error", err.Error()))
	}
	cancelWarm()

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(workflow)
	reviewHandler := handler.NewReviewHandler(protocol)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(articleCache, reviewCache)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Identity())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/all", articleHandler.ListAll)
			articles.GET("/drafts", articleHandler.Drafts)
			articles.GET("/pending", articleHandler.Pending)
			articles.GET("/rejected", articleHandler.Rejected)
			articles.GET("/authors", articleHandler.Authors)
			articles.GET("/:id", articleHandler.Get)
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/submit", articleHandler.Submit)
			articles.POST("/:id/decision", reviewHandler.Decide)
			articles.GET("/:id/reviews", reviewHandler.ByArticle)
			articles.GET("/:id/comments", commentHandler.ListByArticle)
			articles.POST("/:id/comments", commentHandler.Create)
		}

		reviewRoutes := v1.Group("/reviews")
		{
			reviewRoutes.GET("", reviewHandler.List)
			reviewRoutes.GET("/pending", reviewHandler.Pending)
		}

		commentRoutes := v1.Group("/comments")
		{
			commentRoutes.PUT("/:id", commentHandler.Update)
			commentRoutes.DELETE("/:id", commentHandler.Delete)
		}
	}

	// Background re-sync of the cached collections
	refresher := scheduler.New(workflow, cfg.RefreshSchedule, cfg.RemoteTimeout)
	if err := refresher.Start(); err != nil {
		logger.Fatal("Failed to start refresh scheduler",
			slog.String("error", err.Error()))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	refresher.Stop()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
