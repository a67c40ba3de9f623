package booking

import (
	"context"
	"testing"

	"github.com/Dalopezos28/salon-bienestar/internal/cache"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

func TestListServicesWithoutCache(t *testing.T) {
	repo := &fakeRepo{
		services: []models.Service{
			{ID: "1", Name: "Masaje Relajante"},
			{ID: "2", Name: "Aromaterapia"},
		},
	}
	uc := NewListServices(repo, cache.NewServicesCache(nil))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d services, want 2", len(got))
	}
	if got[0].Name != "Masaje Relajante" {
		t.Errorf("first service = %s, want Masaje Relajante", got[0].Name)
	}
}
