package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/markoub/careers/config"
	"github.com/markoub/careers/internal/api/handlers"
	"github.com/markoub/careers/internal/api/middleware"
	"github.com/markoub/careers/internal/api/routes"
	"github.com/markoub/careers/internal/cache"
	"github.com/markoub/careers/internal/logger"
	"github.com/markoub/careers/internal/notify"
	"github.com/markoub/careers/internal/repositories/sqlrepo"
	"github.com/markoub/careers/internal/services"
	"github.com/markoub/careers/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("database init error: %v", err)
	}
	l.Info("database connected")

	// Optional Redis cache for the position catalog
	var store cache.Cache = cache.Noop{}
	if config.RedisConfigured() {
		if err := config.InitRedis(); err != nil {
			log.Fatalf("redis init error: %v", err)
		}
		store = cache.NewRedisCache(config.RedisClient)
		l.Info("redis connected")
	}

	// Document store backend, selected once at startup
	ctx := context.Background()
	var docs storage.Store
	var uploadDir string
	switch os.Getenv("STORAGE_BACKEND") {
	case "s3":
		s3store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    os.Getenv("S3_REGION"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
		})
		if err != nil {
			log.Fatalf("s3 init error: %v", err)
		}
		docs = s3store
	default:
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "uploads"
		}
		local, err := storage.NewLocalStore(dir)
		if err != nil {
			log.Fatalf("upload dir init error: %v", err)
		}
		docs = local
		uploadDir = local.Dir()
	}

	// Optional event publishing for new applications
	var events notify.Notifier = notify.Noop{}
	if url := os.Getenv("AMQP_URL"); url != "" {
		pub, err := notify.NewAMQPNotifier(url, l)
		if err != nil {
			log.Fatalf("amqp init error: %v", err)
		}
		defer pub.Close()
		events = pub
		l.Info("amqp connected")
	}

	positionRepo := sqlrepo.NewPositionRepo(config.DB)
	applicationRepo := sqlrepo.NewApplicationRepo(config.DB)
	adminRepo := sqlrepo.NewAdminUserRepo(config.DB)

	positionSvc := services.NewPositionService(positionRepo, store)
	applicationSvc := services.NewApplicationService(applicationRepo, positionRepo, docs, events)
	authSvc := services.NewAuthService(adminRepo, []byte(os.Getenv("JWT_SECRET")), 24*time.Hour)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Positions:    handlers.NewPositionHandler(positionSvc),
		Applications: handlers.NewApplicationHandler(applicationSvc),
		Auth:         handlers.NewAuthHandler(authSvc),
		UploadDir:    uploadDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
