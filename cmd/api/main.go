package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Dalopezos28/salon-bienestar/internal/config"
	dbpkg "github.com/Dalopezos28/salon-bienestar/internal/db"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/handlers"
	infraRepo "github.com/Dalopezos28/salon-bienestar/internal/infra/repository"
	"github.com/Dalopezos28/salon-bienestar/internal/middleware"
	"github.com/Dalopezos28/salon-bienestar/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	var (
		db   *gorm.DB
		repo domain.Repository
	)

	switch cfg.StorageDriver {
	case "sheets":
		if cfg.SheetAPIURL == "" {
			log.Fatal("STORAGE_DRIVER=sheets requires SHEET_API_URL")
		}
		repo = infraRepo.NewReservationSheetRepository(cfg.SheetAPIURL)
	default:
		db = dbpkg.NewDB(cfg)
		repo = infraRepo.NewReservationGormRepository(db)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.NewRateLimiter().Limit())

	r.GET("/health", handlers.Health)

	routes.RegisterRoutes(r, repo, db, rdb, cfg)

	log.Printf("Server running on %s (storage: %s)", cfg.Addr(), cfg.StorageDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
