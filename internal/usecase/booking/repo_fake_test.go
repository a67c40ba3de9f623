package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dalopezos28/salon-bienestar/internal/audit"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

// fakeRepo is an in-memory store mimicking the real repositories: it assigns
// ID, Status and CreatedAt on create.
type fakeRepo struct {
	reservations []models.Reservation
	services     []models.Service
	schedules    []models.Schedule

	listErr   error
	createErr error

	createCalls int
	listCalls   int
}

func (f *fakeRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reservations, nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}

	res.ID = uuid.NewString()
	res.Status = string(domain.InitialStatus())
	res.CreatedAt = time.Now()

	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeRepo) UpdateReservationStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Reservation, error) {

	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = string(status)
			return &f.reservations[i], nil
		}
	}
	return nil, domain.ErrStore("reservation " + id + " not found")
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return f.schedules, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
