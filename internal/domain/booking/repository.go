package booking

import (
	"context"

	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

// Repository is the reservation store consumed by the booking core. The
// backing implementation (Postgres, spreadsheet REST) assigns IDs and
// creation timestamps; callers never do.
type Repository interface {
	// -------- Reservations --------

	// ListReservations returns every reservation in insertion order.
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	// CreateReservation persists res, filling ID, Status and CreatedAt.
	CreateReservation(ctx context.Context, res *models.Reservation) error

	UpdateReservationStatus(
		ctx context.Context,
		id string,
		status Status,
	) (*models.Reservation, error)

	// -------- Catalog --------

	// ListServices returns active services only.
	ListServices(ctx context.Context) ([]models.Service, error)

	// ListSchedules returns available opening-hours rows only.
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
}
