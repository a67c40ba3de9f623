package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
	"github.com/Dalopezos28/salon-bienestar/internal/timezone"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, domain.ErrStore(err.Error())
	}

	return reservations, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	res.ID = uuid.NewString()
	res.Status = string(domain.InitialStatus())
	res.CreatedAt = timezone.Now()

	// No uniqueness check on (date, time): two bookings may coexist on the
	// same slot, a reviewer reconciles pending ones by hand.
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return domain.ErrStore(err.Error())
	}

	return nil
}

func (r *ReservationGormRepository) UpdateReservationStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, domain.ErrStore(err.Error())
	}

	res.Status = string(status)
	if err := r.db.WithContext(ctx).Save(&res).Error; err != nil {
		return nil, domain.ErrStore(err.Error())
	}

	return &res, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ReservationGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, domain.ErrStore(err.Error())
	}

	return services, nil
}

func (r *ReservationGormRepository) ListSchedules(
	ctx context.Context,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("available = true").
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, domain.ErrStore(err.Error())
	}

	return schedules, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
