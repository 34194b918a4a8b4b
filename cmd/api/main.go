package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"desaadmin/internal/config"
	"desaadmin/internal/database"
	"desaadmin/internal/domain"
	"desaadmin/internal/middleware"
	"desaadmin/internal/modules/auth"
	"desaadmin/internal/modules/guides"
	"desaadmin/internal/modules/news"
	"desaadmin/internal/modules/products"
	"desaadmin/internal/modules/records"
	"desaadmin/internal/modules/residents"
	"desaadmin/internal/modules/tourism"
	jwtsvc "desaadmin/internal/pkg/jwt"
	"desaadmin/internal/repository"
	"desaadmin/internal/storage"
)

func main() {
	// Load .env in development only, never overwriting already-set vars.
	if strings.ToLower(os.Getenv("ENV")) == "development" {
		if envMap, err := godotenv.Read(); err == nil {
			for k, v := range envMap {
				if os.Getenv(k) == "" {
					os.Setenv(k, v)
				}
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Object store for record images. Without a bucket the API still runs;
	// submits that include a file are rejected.
	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			log.Fatal(err)
		}
		store = s3Store
	} else {
		log.Println("S3_BUCKET is empty, image uploads disabled")
	}

	adminRepo := repository.NewAdminUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	residentRepo := repository.NewRecords[domain.Resident](db, "nama_lengkap ASC")
	newsRepo := repository.NewRecords[domain.News](db, "created_at DESC")
	productRepo := repository.NewRecords[domain.Product](db, "created_at DESC")
	tourismRepo := repository.NewRecords[domain.TourismSite](db, "created_at DESC")
	guideRepo := repository.NewRecords[domain.Guide](db, "created_at DESC")

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	hub := auth.NewHub()
	authService := auth.NewService(adminRepo, sessionRepo, j, hub, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService, hub)

	residentHandler := residents.NewHandler(records.NewService(residentRepo, nil))
	newsHandler := news.NewHandler(records.NewService(newsRepo, uploader(store, "news")))
	productHandler := products.NewHandler(records.NewService(productRepo, uploader(store, "products")))
	tourismHandler := tourism.NewHandler(records.NewService(tourismRepo, uploader(store, "tourism")))
	guideHandler := guides.NewHandler(records.NewService(guideRepo, uploader(store, "guides")))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			residentHandler.RegisterRoutes(protected)
			newsHandler.RegisterRoutes(protected)
			productHandler.RegisterRoutes(protected)
			tourismHandler.RegisterRoutes(protected)
			guideHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// uploader returns a nil interface when no store is configured, so the
// records service can tell "uploads disabled" apart from a live uploader.
func uploader(store storage.ObjectStore, prefix string) records.ImageUploader {
	if store == nil {
		return nil
	}
	return storage.NewUploader(store, prefix)
}
