package booking

import (
	"context"

	"github.com/Dalopezos28/salon-bienestar/internal/audit"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

// UpdateReservationStatus is the administrative review step: a human moves a
// pending reservation to Confirmed or Cancelled, resolving slot collisions
// the soft-hold booking flow allows.
type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	id string,
	target domain.Status,
) (*models.Reservation, error) {

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	var current *models.Reservation
	for i := range reservations {
		if reservations[i].ID == id {
			current = &reservations[i]
			break
		}
	}
	if current == nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	switch target {
	case domain.StatusConfirmed:
		if err := domain.CanConfirm(domain.Status(current.Status)); err != nil {
			return nil, err
		}
	case domain.StatusCancelled:
		if err := domain.CanCancel(domain.Status(current.Status)); err != nil {
			return nil, err
		}
	default:
		return nil, httperr.ErrBusiness("invalid_state")
	}

	updated, err := uc.repo.UpdateReservationStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_" + string(target),
		Entity:   "reservation",
		EntityID: id,
	})

	return updated, nil
}
