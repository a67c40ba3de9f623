package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
	"github.com/Dalopezos28/salon-bienestar/internal/timezone"
)

// ReservationSheetRepository talks to a SheetDB-style REST bridge in front of
// the salon's spreadsheet. Tabs and column headers keep the sheet's original
// Spanish names so the reviewer's workbook keeps working unchanged.
type ReservationSheetRepository struct {
	baseURL string
	client  *http.Client
}

func NewReservationSheetRepository(baseURL string) *ReservationSheetRepository {
	return &ReservationSheetRepository{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// --------------------------------------------------
// Sheet rows
// --------------------------------------------------

type reservationRow struct {
	ID            string `json:"ID"`
	Fecha         string `json:"Fecha"`
	Hora          string `json:"Hora"`
	Nombre        string `json:"Nombre"`
	Email         string `json:"Email"`
	Telefono      string `json:"Telefono"`
	Servicio      string `json:"Servicio"`
	Comentarios   string `json:"Comentarios"`
	Estado        string `json:"Estado"`
	FechaCreacion string `json:"Fecha_Creacion"`
}

type serviceRow struct {
	ID          string `json:"ID"`
	Nombre      string `json:"Nombre"`
	Descripcion string `json:"Descripcion"`
	Duracion    string `json:"Duracion"`
	Precio      string `json:"Precio"`
	Activo      string `json:"Activo"`
}

type scheduleRow struct {
	ID         string `json:"ID"`
	DiaSemana  string `json:"Dia_Semana"`
	HoraInicio string `json:"Hora_Inicio"`
	HoraFin    string `json:"Hora_Fin"`
	Disponible string `json:"Disponible"`
}

var statusToSheet = map[domain.Status]string{
	domain.StatusPending:   "Pendiente",
	domain.StatusConfirmed: "Confirmada",
	domain.StatusCancelled: "Cancelada",
}

var sheetToStatus = map[string]domain.Status{
	"Pendiente":  domain.StatusPending,
	"Confirmada": domain.StatusConfirmed,
	"Cancelada":  domain.StatusCancelled,
}

var sheetWeekdays = map[string]int{
	"Domingo":   0,
	"Lunes":     1,
	"Martes":    2,
	"Miércoles": 3,
	"Jueves":    4,
	"Viernes":   5,
	"Sábado":    6,
}

// --------------------------------------------------
// HTTP plumbing
// --------------------------------------------------

func (r *ReservationSheetRepository) get(ctx context.Context, sheet string, out any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, r.baseURL+"/"+sheet, nil,
	)
	if err != nil {
		return domain.ErrStore(err.Error())
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.ErrStore(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ErrStore(fmt.Sprintf("sheet %s: %s: %s", sheet, resp.Status, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.ErrStore(err.Error())
	}
	return nil
}

func (r *ReservationSheetRepository) send(
	ctx context.Context,
	method string,
	path string,
	payload any,
) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.ErrStore(err.Error())
	}

	req, err := http.NewRequestWithContext(
		ctx, method, r.baseURL+path, bytes.NewReader(body),
	)
	if err != nil {
		return domain.ErrStore(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.ErrStore(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ErrStore(fmt.Sprintf("%s %s: %s: %s", method, path, resp.Status, respBody))
	}
	return nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationSheetRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var rows []reservationRow
	if err := r.get(ctx, "Reservas", &rows); err != nil {
		return nil, err
	}

	reservations := make([]models.Reservation, 0, len(rows))
	for _, row := range rows {
		status := sheetToStatus[row.Estado]
		if status == "" {
			status = domain.StatusPending
		}

		createdAt, _ := time.Parse(time.RFC3339, row.FechaCreacion)

		reservations = append(reservations, models.Reservation{
			ID:          row.ID,
			Date:        row.Fecha,
			Time:        row.Hora,
			ClientName:  row.Nombre,
			Email:       row.Email,
			Phone:       row.Telefono,
			ServiceName: row.Servicio,
			Comments:    row.Comentarios,
			Status:      string(status),
			CreatedAt:   createdAt,
		})
	}

	return reservations, nil
}

func (r *ReservationSheetRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	res.ID = uuid.NewString()
	res.Status = string(domain.InitialStatus())
	res.CreatedAt = timezone.Now()

	row := reservationRow{
		ID:            res.ID,
		Fecha:         res.Date,
		Hora:          res.Time,
		Nombre:        res.ClientName,
		Email:         res.Email,
		Telefono:      res.Phone,
		Servicio:      res.ServiceName,
		Comentarios:   res.Comments,
		Estado:        statusToSheet[domain.InitialStatus()],
		FechaCreacion: res.CreatedAt.Format(time.RFC3339),
	}

	payload := map[string][]reservationRow{"data": {row}}
	return r.send(ctx, http.MethodPost, "/Reservas", payload)
}

func (r *ReservationSheetRepository) UpdateReservationStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Reservation, error) {

	payload := map[string]map[string]string{
		"data": {"Estado": statusToSheet[status]},
	}
	if err := r.send(ctx, http.MethodPatch, "/Reservas/ID/"+id, payload); err != nil {
		return nil, err
	}

	// Re-read so the caller gets the row as the sheet now holds it.
	reservations, err := r.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].ID == id {
			return &reservations[i], nil
		}
	}

	return nil, domain.ErrStore("reservation " + id + " not found after update")
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ReservationSheetRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var rows []serviceRow
	if err := r.get(ctx, "Servicios", &rows); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(rows))
	for _, row := range rows {
		if row.Activo != "TRUE" {
			continue
		}
		services = append(services, models.Service{
			ID:          row.ID,
			Name:        row.Nombre,
			Description: row.Descripcion,
			Duration:    row.Duracion,
			Price:       row.Precio,
			Active:      true,
		})
	}

	return services, nil
}

func (r *ReservationSheetRepository) ListSchedules(
	ctx context.Context,
) ([]models.Schedule, error) {

	var rows []scheduleRow
	if err := r.get(ctx, "Horarios", &rows); err != nil {
		return nil, err
	}

	schedules := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		if row.Disponible != "TRUE" {
			continue
		}
		schedules = append(schedules, models.Schedule{
			ID:        row.ID,
			Weekday:   sheetWeekdays[row.DiaSemana],
			OpenTime:  row.HoraInicio,
			CloseTime: row.HoraFin,
			Available: true,
		})
	}

	return schedules, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationSheetRepository)(nil)
