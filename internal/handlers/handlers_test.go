package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Dalopezos28/salon-bienestar/internal/audit"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepo backs the handler tests without a database.
type fakeRepo struct {
	reservations []models.Reservation
	listErr      error
	createErr    error
}

func (f *fakeRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reservations, nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	res.ID = uuid.NewString()
	res.Status = string(domain.InitialStatus())
	res.CreatedAt = time.Now()
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeRepo) UpdateReservationStatus(ctx context.Context, id string, status domain.Status) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = string(status)
			return &f.reservations[i], nil
		}
	}
	return nil, domain.ErrStore("reservation " + id + " not found")
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeRepo) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return nil, nil
}

func newReservationRouter(repo domain.Repository) *gin.Engine {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	h := NewReservationHandler(
		ucBooking.NewSubmitReservation(repo, dispatcher),
		ucBooking.NewListReservations(repo),
	)

	r := gin.New()
	r.GET("/api/reservations", h.List)
	r.POST("/api/reservations", h.Create)
	return r
}

func newCalendarRouter(repo domain.Repository, now func() time.Time) (*gin.Engine, *domain.Calendar) {
	calendar := domain.NewCalendar(repo, now)
	h := NewCalendarHandler(calendar, ucBooking.NewGetDaySlots(repo))

	r := gin.New()
	r.GET("/api/calendar", h.View)
	r.POST("/api/calendar/refresh", h.Refresh)
	r.POST("/api/calendar/navigate", h.Navigate)
	r.GET("/api/calendar/day/:date", h.Day)
	r.GET("/api/slots", h.Slots)
	return r, calendar
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
