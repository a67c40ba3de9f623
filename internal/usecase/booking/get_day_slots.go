package booking

import (
	"context"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
)

type GetDaySlots struct {
	repo domain.Repository
}

func NewGetDaySlots(repo domain.Repository) *GetDaySlots {
	return &GetDaySlots{repo: repo}
}

// Execute computes the slot list for date from a fresh store read.
func (uc *GetDaySlots) Execute(
	ctx context.Context,
	date string,
) ([]domain.SlotAvailability, error) {

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(date, reservations), nil
}
