package booking

import (
	"context"

	"github.com/Dalopezos28/salon-bienestar/internal/audit"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReservationInput struct {
	Date string
	Time string

	ClientName string
	Email      string
	Phone      string

	ServiceName string
	Comments    string
}

// requiredFields is the canonical validation order; the first empty field
// names the ValidationError.
var requiredFields = []struct {
	name  string
	value func(SubmitReservationInput) string
}{
	{"date", func(in SubmitReservationInput) string { return in.Date }},
	{"time", func(in SubmitReservationInput) string { return in.Time }},
	{"name", func(in SubmitReservationInput) string { return in.ClientName }},
	{"email", func(in SubmitReservationInput) string { return in.Email }},
	{"phone", func(in SubmitReservationInput) string { return in.Phone }},
	{"service", func(in SubmitReservationInput) string { return in.ServiceName }},
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitReservation {
	return &SubmitReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates presence of the required fields and forwards the booking
// to the store. Slot occupancy is NOT re-checked here: the occupied flags the
// client rendered are trusted, and the store enforces no uniqueness on
// (date, time). After success the caller must refresh the calendar itself.
func (uc *SubmitReservation) Execute(
	ctx context.Context,
	in SubmitReservationInput,
) (*models.Reservation, error) {

	for _, field := range requiredFields {
		if field.value(in) == "" {
			return nil, domain.ValidationError{Field: field.name}
		}
	}

	res := &models.Reservation{
		Date:        in.Date,
		Time:        in.Time,
		ClientName:  in.ClientName,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceName: in.ServiceName,
		Comments:    in.Comments,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: res.ID,
		Metadata: map[string]string{
			"date": res.Date,
			"time": res.Time,
		},
	})

	return res, nil
}
