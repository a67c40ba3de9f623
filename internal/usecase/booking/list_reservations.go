package booking

import (
	"context"
	"sort"
	"strings"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute returns reservations newest-first, optionally filtered by email
// (case-insensitive). The empty filter returns everything.
func (uc *ListReservations) Execute(
	ctx context.Context,
	email string,
) ([]models.Reservation, error) {

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	if email != "" {
		filtered := make([]models.Reservation, 0, len(reservations))
		for _, res := range reservations {
			if strings.EqualFold(res.Email, email) {
				filtered = append(filtered, res)
			}
		}
		reservations = filtered
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})

	return reservations, nil
}
