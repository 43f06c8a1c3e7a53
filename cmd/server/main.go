package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-api/internal/auth"
	"blog-api/internal/config"
	"blog-api/internal/database"
	apphttp "blog-api/internal/http"
	"blog-api/internal/service"
	"blog-api/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("unknown log level %q, keeping %s", cfg.Log.Level, logger.GetLevel())
	}

	// Validate has already checked every duration.
	accessTTL, _ := cfg.AccessTTL()
	refreshTTL, _ := cfg.RefreshTTL()
	presignTTL, _ := cfg.PresignTTL()
	sameSite, _ := config.ParseSameSite(cfg.Cookie.SameSite)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer store.Close()
	logger.Infof("using %s database", cfg.Database.Driver)

	tokens := auth.NewTokenService(auth.TokenConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	})
	authService := service.NewAuthService(store.Users, auth.NewBcryptHasher(cfg.Security.BcryptCost), tokens)
	postService := service.NewPostService(store.Posts)
	uploadService := service.NewUploadService(buildStorage(ctx, cfg, logger), cfg.Storage.Bucket, presignTTL, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		authService,
		postService,
		uploadService,
		apphttp.CookieOptions{
			Name:     cfg.Cookie.Name,
			Secret:   cfg.JWT.AccessSecret,
			HTTPOnly: cfg.Cookie.HTTPOnly,
			SameSite: sameSite,
			Secure:   cfg.Cookie.Secure,
			Signed:   cfg.Cookie.Signed,
		},
		apphttp.CORSOptions{
			Enabled:     cfg.CORS.Enabled,
			Credentials: cfg.CORS.Credentials,
			Origins:     cfg.AllowedOrigins(),
		},
		logger,
	)
	handler.RegisterRoutes(router)

	if cfg.Swagger.Enabled {
		docsPath := apphttp.RegisterDocs(router, apphttp.DocsOptions{
			Title:       cfg.Swagger.Title,
			Description: cfg.Swagger.Description,
			Version:     cfg.Swagger.Version,
			Path:        cfg.Swagger.Path,
		})
		logger.Infof("swagger ui at %s/index.html", docsPath)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStorage returns nil when no bucket is configured; presign requests then fail with 500.
func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) storage.Service {
	if cfg.Storage.Bucket == "" {
		logger.Warn("storage bucket is not configured, presigned uploads are disabled")
		return nil
	}

	client, err := storage.NewS3Client(ctx, storage.S3Config{
		Region:   cfg.Storage.Region,
		Profile:  cfg.AWS.Profile,
		Endpoint: cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client)
}
