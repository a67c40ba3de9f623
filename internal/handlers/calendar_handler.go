package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// CalendarHandler serves the shared month view. The site is a single page
// with one calendar, so one Calendar instance backs all of these routes.
type CalendarHandler struct {
	calendar *domain.Calendar
	daySlots *ucBooking.GetDaySlots
}

func NewCalendarHandler(
	calendar *domain.Calendar,
	daySlots *ucBooking.GetDaySlots,
) *CalendarHandler {
	return &CalendarHandler{
		calendar: calendar,
		daySlots: daySlots,
	}
}

// ======================================================
// VIEW / REFRESH / NAVIGATE
// ======================================================

func (h *CalendarHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.calendar.View())
}

// Refresh re-pulls the reservation snapshot and renders. A store failure
// keeps the previous snapshot, so this always answers 200 with a grid.
func (h *CalendarHandler) Refresh(c *gin.Context) {
	h.calendar.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, h.calendar.View())
}

type NavigateRequest struct {
	Delta int `json:"delta"`
}

// Navigate moves the displayed month by ±1 and renders from the existing
// snapshot; navigation never re-fetches.
func (h *CalendarHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Delta != 1 && req.Delta != -1 {
		httperr.BadRequest(c, "invalid_delta", "El desplazamiento debe ser +1 o -1.")
		return
	}

	h.calendar.ChangeMonth(req.Delta)
	c.JSON(http.StatusOK, h.calendar.View())
}

// ======================================================
// DAY SELECTION / SLOTS
// ======================================================

func (h *CalendarHandler) Day(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	c.JSON(http.StatusOK, h.calendar.SelectDay(date))
}

// Slots answers the booking form with a fresh availability list for a date.
func (h *CalendarHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.daySlots.Execute(c.Request.Context(), date)
	if err != nil {
		if se, ok := domain.AsStore(err); ok && se.Message != "" {
			httperr.Internal(c, "store_error", se.Message)
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Error calculando horarios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"slots":   slots,
	})
}
