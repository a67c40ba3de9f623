package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

func TestCreateReservationMissingField(t *testing.T) {
	repo := &fakeRepo{}
	r := newReservationRouter(repo)

	// date present, time missing, phone also missing: the first gap in the
	// canonical order names the error
	body := `{"date":"2024-03-08","name":"Ana","email":"ana@example.com","service":"Masaje"}`
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	wantStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Code    string `json:"error_code"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)

	if resp.Code != "missing_field" {
		t.Errorf("error_code = %s, want missing_field", resp.Code)
	}
	if !strings.Contains(resp.Message, "falta time") {
		t.Errorf("message = %q, want it to name the time field", resp.Message)
	}
	if len(repo.reservations) != 0 {
		t.Error("nothing should reach the store on validation failure")
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	repo := &fakeRepo{}
	r := newReservationRouter(repo)

	body := `{
		"date": "2024-03-08",
		"time": "11:00",
		"name": "Ana López",
		"email": "ana@example.com",
		"phone": "3001234567",
		"service": "Aromaterapia",
		"comments": "primera visita"
	}`
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	wantStatus(t, w, http.StatusCreated)

	var resp struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Data    models.Reservation `json:"data"`
	}
	decodeBody(t, w, &resp)

	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Data.ID == "" {
		t.Error("created reservation has no id")
	}
	if resp.Data.Status != "Pending" {
		t.Errorf("status = %s, want Pending", resp.Data.Status)
	}
	if len(repo.reservations) != 1 {
		t.Fatalf("store holds %d reservations, want 1", len(repo.reservations))
	}
}

func TestCreateReservationStoreFailure(t *testing.T) {
	repo := &fakeRepo{createErr: domain.ErrStore("append failed: quota exceeded")}
	r := newReservationRouter(repo)

	body := `{"date":"2024-03-08","time":"11:00","name":"Ana","email":"a@b.co","phone":"300","service":"Masaje"}`
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	wantStatus(t, w, http.StatusInternalServerError)

	var resp struct {
		Code    string `json:"error_code"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)

	if resp.Code != "store_error" {
		t.Errorf("error_code = %s, want store_error", resp.Code)
	}
	if resp.Message != "append failed: quota exceeded" {
		t.Errorf("message = %q, want the store's message passed through", resp.Message)
	}
}

func TestListReservationsEnvelope(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		reservations: []models.Reservation{
			{ID: "old", Email: "ana@example.com", CreatedAt: base},
			{ID: "new", Email: "ana@example.com", CreatedAt: base.Add(time.Hour)},
			{ID: "other", Email: "luis@example.com", CreatedAt: base.Add(2 * time.Hour)},
		},
	}
	r := newReservationRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/reservations?email=ana@example.com", "")
	wantStatus(t, w, http.StatusOK)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []models.Reservation `json:"data"`
		Count   int                  `json:"count"`
	}
	decodeBody(t, w, &resp)

	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Fatalf("count = %d, len = %d, want 2 filtered reservations", resp.Count, len(resp.Data))
	}
	if resp.Data[0].ID != "new" {
		t.Errorf("first reservation = %s, want newest first", resp.Data[0].ID)
	}
}
