package db

import (
	"log"
	"time"

	"github.com/Dalopezos28/salon-bienestar/internal/config"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Schedule{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed default data: %v", err)
	}

	return db
}

// Seed inserts the default service catalog and weekly schedule when the
// tables are empty. Safe to call repeatedly.
func Seed(db *gorm.DB) error {
	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}

	if serviceCount == 0 {
		defaults := []models.Service{
			{ID: "1", Name: "Meditación Mindfulness", Description: "Sesión de meditación guiada para encontrar la paz interior", Duration: "60 min", Price: "$50", Active: true},
			{ID: "2", Name: "Yoga Restaurativo", Description: "Práctica suave de yoga para relajación profunda", Duration: "90 min", Price: "$70", Active: true},
			{ID: "3", Name: "Terapia de Sonido", Description: "Sanación a través de cuencos tibetanos y frecuencias", Duration: "75 min", Price: "$80", Active: true},
			{ID: "4", Name: "Aromaterapia", Description: "Relajación con aceites esenciales y masaje suave", Duration: "60 min", Price: "$65", Active: true},
			{ID: "5", Name: "Círculo de Sanación", Description: "Sesión grupal de sanación energética", Duration: "120 min", Price: "$40", Active: true},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	var scheduleCount int64
	if err := db.Model(&models.Schedule{}).Count(&scheduleCount).Error; err != nil {
		return err
	}

	if scheduleCount == 0 {
		defaults := []models.Schedule{
			{ID: "1", Weekday: 1, OpenTime: "09:00", CloseTime: "18:00", Available: true},
			{ID: "2", Weekday: 2, OpenTime: "09:00", CloseTime: "18:00", Available: true},
			{ID: "3", Weekday: 3, OpenTime: "09:00", CloseTime: "18:00", Available: true},
			{ID: "4", Weekday: 4, OpenTime: "09:00", CloseTime: "18:00", Available: true},
			{ID: "5", Weekday: 5, OpenTime: "09:00", CloseTime: "18:00", Available: true},
			{ID: "6", Weekday: 6, OpenTime: "10:00", CloseTime: "16:00", Available: true},
			{ID: "7", Weekday: 0, OpenTime: "10:00", CloseTime: "16:00", Available: false},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	return nil
}
