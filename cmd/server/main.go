package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/phixelforge/docs"
	"github.com/sbilibin2017/phixelforge/internal/auth"
	"github.com/sbilibin2017/phixelforge/internal/config"
	"github.com/sbilibin2017/phixelforge/internal/database"
	"github.com/sbilibin2017/phixelforge/internal/events"
	"github.com/sbilibin2017/phixelforge/internal/genai"
	"github.com/sbilibin2017/phixelforge/internal/handlers"
	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/middlewares"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
	"github.com/sbilibin2017/phixelforge/internal/services"
	"github.com/sbilibin2017/phixelforge/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title PhixelForge API
// @version 1.0.0
// @description Image gallery backend: images, likes, albums, collections, comments, uploads and generation
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// dependencies are the outbound adapters the router needs besides the pool.
type dependencies struct {
	verifier  middlewares.Verifier
	publisher services.EventPublisher
	generator services.Generator
	objects   services.ObjectStore // nil disables uploads
}

// run opens the pool, wires the adapters and serves HTTP until a shutdown signal.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	db, err := database.Open(ctx, cfg.Postgres.DSN(), database.PoolOptions{
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	verifier, err := newVerifier(ctx, cfg.Auth)
	if err != nil {
		return err
	}

	var writer events.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		writer = events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer writer.Close()
		logger.Log.Infow("publishing activity events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, activity events are disabled")
	}

	deps := dependencies{
		verifier:  verifier,
		publisher: events.NewPublisher(writer),
		generator: genai.New(genai.Options{
			BaseURL: cfg.GenAI.BaseURL,
			APIKey:  cfg.GenAI.APIKey,
			Model:   cfg.GenAI.Model,
			Timeout: cfg.GenAI.Timeout,
		}),
	}

	if cfg.S3.Endpoint != "" {
		objects, err := storage.New(storage.Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			UseSSL:    cfg.S3.UseSSL,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return err
		}
		if err := objects.EnsureBucket(ctx); err != nil {
			return err
		}
		deps.objects = objects
	} else {
		logger.Log.Warn("S3_ENDPOINT is empty, uploads are disabled")
	}

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           newRouter(cfg, db, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newVerifier(ctx context.Context, cfg config.AuthConfig) (middlewares.Verifier, error) {
	if cfg.Mode == config.AuthModeOIDC {
		issuer := cfg.Issuer
		if issuer == "" {
			issuer = auth.FirebaseIssuer(cfg.ProjectID)
		}
		return auth.NewOIDCVerifier(ctx, issuer, cfg.ProjectID)
	}

	logger.Log.Warn("AUTH_MODE=hmac, accepting locally signed tokens")
	return auth.New(auth.WithSecretKey(cfg.HMACSecret), auth.WithExpiration(cfg.TokenTTL)), nil
}

// newRouter builds the route table. Authentication runs before the request
// transaction is opened so user creation never shares the handler's transaction.
func newRouter(cfg *config.Config, db *sqlx.DB, deps dependencies) http.Handler {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, nil)
	imageRepo := repositories.NewImageRepository(db, middlewares.GetTxFromContext)
	likeRepo := repositories.NewLikeRepository(db, middlewares.GetTxFromContext)
	albumRepo := repositories.NewAlbumRepository(db, middlewares.GetTxFromContext)
	commentRepo := repositories.NewCommentRepository(db, middlewares.GetTxFromContext)
	collectionRepo := repositories.NewCollectionRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, userRepo)
	imageService := services.NewImageService(imageRepo, deps.publisher)
	likeService := services.NewLikeService(likeRepo, imageRepo, deps.publisher)
	albumService := services.NewAlbumService(albumRepo, imageRepo, deps.publisher)
	commentService := services.NewCommentService(commentRepo, imageRepo, deps.publisher)
	collectionService := services.NewCollectionService(collectionRepo)
	generationService := services.NewGenerationService(deps.generator, imageService)
	similarityService := services.NewSimilarityService()

	authMiddleware := middlewares.AuthMiddleware(deps.verifier, userService)
	optionalAuth := middlewares.OptionalAuthMiddleware(deps.verifier, userService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.App.BaseURL+"/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/images", handlers.NewListPublicImagesHandler(imageService))
		r.With(optionalAuth).Get("/images/{imageID}/comments", handlers.NewListCommentsHandler(commentService))
		r.Get("/collections", handlers.NewListCollectionsHandler(collectionService))
		r.Get("/collections/{collectionID}/images", handlers.NewListCollectionImagesHandler(collectionService))
		r.With(optionalAuth).Get("/likes", handlers.NewLikeStatusHandler(likeService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/generate", handlers.NewGenerateHandler(generationService))
			r.Post("/search/similar", handlers.NewSimilarSearchHandler(similarityService))
			if deps.objects != nil {
				uploadService := services.NewUploadService(deps.objects, cfg.Upload.MaxBytes)
				r.Post("/uploads", handlers.NewUploadHandler(uploadService, cfg.Upload.MaxBytes))
			}

			// Writes run in a request transaction
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Get("/images/user", handlers.NewListUserImagesHandler(imageService))
				r.Post("/images", handlers.NewCreateImageHandler(imageService))
				r.Post("/images/{imageID}/comments", handlers.NewCreateCommentHandler(commentService))
				r.Post("/likes", handlers.NewToggleLikeHandler(likeService))
				r.Get("/albums", handlers.NewListAlbumsHandler(albumService))
				r.Post("/albums", handlers.NewCreateAlbumHandler(albumService))
				r.Get("/albums/{albumID}/images", handlers.NewListAlbumImagesHandler(albumService))
				r.Post("/albums/{albumID}/images", handlers.NewAddAlbumImageHandler(albumService))
			})
		})
	})

	return r
}
