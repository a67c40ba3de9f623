package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

func sheetServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetListReservations(t *testing.T) {
	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Reservas" {
			t.Errorf("path = %s, want /Reservas", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{
				"ID": "abc", "Fecha": "2024-03-07", "Hora": "10:00",
				"Nombre": "Ana", "Email": "ana@example.com",
				"Telefono": "300", "Servicio": "Masaje",
				"Estado":         "Confirmada",
				"Fecha_Creacion": "2024-03-01T09:00:00-05:00",
			},
			{
				"ID": "def", "Fecha": "2024-03-08", "Hora": "11:00",
				"Nombre": "Luis", "Email": "luis@example.com",
				"Telefono": "301", "Servicio": "Yoga",
				"Estado": "", // legacy row without a status column
			},
		})
	})

	repo := NewReservationSheetRepository(srv.URL)
	got, err := repo.ListReservations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d reservations, want 2", len(got))
	}
	if got[0].Status != "Confirmed" {
		t.Errorf("status = %s, want Confirmed (mapped from Confirmada)", got[0].Status)
	}
	if got[1].Status != "Pending" {
		t.Errorf("blank sheet status should default to Pending, got %s", got[1].Status)
	}
	if got[0].Date != "2024-03-07" || got[0].ClientName != "Ana" {
		t.Errorf("row fields lost in mapping: %+v", got[0])
	}
}

func TestSheetCreateReservation(t *testing.T) {
	var received struct {
		Data []map[string]string `json:"data"`
	}

	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Reservas" {
			t.Errorf("%s %s, want POST /Reservas", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
	})

	repo := NewReservationSheetRepository(srv.URL)
	res := &models.Reservation{
		Date: "2024-03-08", Time: "11:00",
		ClientName: "Ana", Email: "ana@example.com",
		Phone: "300", ServiceName: "Masaje",
	}

	if err := repo.CreateReservation(context.Background(), res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ID == "" {
		t.Error("create should assign an id")
	}
	if res.Status != "Pending" {
		t.Errorf("status = %s, want Pending", res.Status)
	}
	if len(received.Data) != 1 {
		t.Fatalf("sheet received %d rows, want 1", len(received.Data))
	}

	row := received.Data[0]
	if row["Estado"] != "Pendiente" {
		t.Errorf("sheet Estado = %s, want Pendiente", row["Estado"])
	}
	if row["Fecha"] != "2024-03-08" || row["Nombre"] != "Ana" {
		t.Errorf("row mapped wrong: %v", row)
	}
}

func TestSheetUpdateReservationStatus(t *testing.T) {
	var patched map[string]map[string]string

	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPatch && r.URL.Path == "/Reservas/ID/abc":
			json.NewDecoder(r.Body).Decode(&patched)
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/Reservas":
			json.NewEncoder(w).Encode([]map[string]string{
				{"ID": "abc", "Fecha": "2024-03-07", "Hora": "10:00", "Estado": "Cancelada"},
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	repo := NewReservationSheetRepository(srv.URL)
	updated, err := repo.UpdateReservationStatus(context.Background(), "abc", domain.StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if patched["data"]["Estado"] != "Cancelada" {
		t.Errorf("patched Estado = %s, want Cancelada", patched["data"]["Estado"])
	}
	if updated.Status != "Cancelled" {
		t.Errorf("status = %s, want Cancelled re-read from the sheet", updated.Status)
	}
}

func TestSheetListServicesFiltersInactive(t *testing.T) {
	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{
			{"ID": "1", "Nombre": "Masaje Relajante", "Activo": "TRUE"},
			{"ID": "2", "Nombre": "Retirado", "Activo": "FALSE"},
		})
	})

	repo := NewReservationSheetRepository(srv.URL)
	services, err := repo.ListServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(services) != 1 || services[0].Name != "Masaje Relajante" {
		t.Errorf("inactive rows must be dropped, got %+v", services)
	}
}

func TestSheetListSchedulesWeekdayMapping(t *testing.T) {
	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{
			{"ID": "1", "Dia_Semana": "Domingo", "Hora_Inicio": "10:00", "Hora_Fin": "16:00", "Disponible": "TRUE"},
			{"ID": "2", "Dia_Semana": "Sábado", "Hora_Inicio": "10:00", "Hora_Fin": "16:00", "Disponible": "TRUE"},
			{"ID": "3", "Dia_Semana": "Lunes", "Hora_Inicio": "09:00", "Hora_Fin": "18:00", "Disponible": "FALSE"},
		})
	})

	repo := NewReservationSheetRepository(srv.URL)
	schedules, err := repo.ListSchedules(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedules) != 2 {
		t.Fatalf("got %d schedules, want 2 available", len(schedules))
	}
	if schedules[0].Weekday != 0 {
		t.Errorf("Domingo weekday = %d, want 0", schedules[0].Weekday)
	}
	if schedules[1].Weekday != 6 {
		t.Errorf("Sábado weekday = %d, want 6", schedules[1].Weekday)
	}
}

func TestSheetStoreErrorOnBadStatus(t *testing.T) {
	srv := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	repo := NewReservationSheetRepository(srv.URL)
	_, err := repo.ListReservations(context.Background())

	if _, ok := domain.AsStore(err); !ok {
		t.Fatalf("want StoreError, got %v", err)
	}
}
