package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Dalopezos28/salon-bienestar/internal/audit"
	"github.com/Dalopezos28/salon-bienestar/internal/cache"
	"github.com/Dalopezos28/salon-bienestar/internal/config"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/handlers"
	"github.com/Dalopezos28/salon-bienestar/internal/middleware"
	"github.com/Dalopezos28/salon-bienestar/internal/sections"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
)

// RegisterRoutes wires the whole API. db and rdb may be nil (sheets driver,
// cache disabled); repo is the chosen reservation store.
func RegisterRoutes(
	r *gin.Engine,
	repo domain.Repository,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	servicesCache := cache.NewServicesCache(rdb)

	calendar := domain.NewCalendar(repo, nil)

	navigator := sections.NewNavigator(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		calendar.Refresh(ctx)
	})

	// ======================================================
	// USE CASES
	// ======================================================
	submitUC := ucBooking.NewSubmitReservation(repo, auditDispatcher)
	listReservationsUC := ucBooking.NewListReservations(repo)
	daySlotsUC := ucBooking.NewGetDaySlots(repo)
	listServicesUC := ucBooking.NewListServices(repo, servicesCache)
	updateStatusUC := ucBooking.NewUpdateReservationStatus(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(submitUC, listReservationsUC)
	serviceHandler := handlers.NewServiceHandler(listServicesUC, db, servicesCache)
	scheduleHandler := handlers.NewScheduleHandler(repo)
	calendarHandler := handlers.NewCalendarHandler(calendar, daySlotsUC)
	sectionHandler := handlers.NewSectionHandler(navigator)
	adminHandler := handlers.NewAdminHandler(updateStatusUC, db)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/init", serviceHandler.Init)

		api.GET("/services", serviceHandler.List)
		api.GET("/schedules", scheduleHandler.List)

		api.GET("/reservations", reservationHandler.List)
		api.POST("/reservations", reservationHandler.Create)

		api.GET("/slots", calendarHandler.Slots)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar", calendarHandler.View)
		api.POST("/calendar/refresh", calendarHandler.Refresh)
		api.POST("/calendar/navigate", calendarHandler.Navigate)
		api.GET("/calendar/day/:date", calendarHandler.Day)

		// ------------------------------
		// UI SECTIONS
		// ------------------------------
		api.GET("/ui/section", sectionHandler.Get)
		api.POST("/ui/section", sectionHandler.Activate)

		// ------------------------------
		// ADMIN (manual review)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg))
		{
			admin.PATCH("/reservations/:id/confirm", adminHandler.Confirm)
			admin.PATCH("/reservations/:id/cancel", adminHandler.Cancel)
			admin.GET("/audit-logs", adminHandler.AuditLogs)
		}
	}
}
