package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/httpresp"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	submit *ucBooking.SubmitReservation
	list   *ucBooking.ListReservations
}

func NewReservationHandler(
	submit *ucBooking.SubmitReservation,
	list *ucBooking.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		submit: submit,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// No binding:"required" tags here: the use case reports the first missing
// field in the canonical order, which gin's binder would short-circuit.
type CreateReservationRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Comments string `json:"comments"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.LooksLikeEmail(req.Email) {
		log.Printf("reservation submitted with suspicious email: %q", req.Email)
	}

	res, err := h.submit.Execute(c.Request.Context(), ucBooking.SubmitReservationInput{
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceName: req.Service,
		Comments:    req.Comments,
	})

	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			httperr.BadRequest(c, "missing_field", "Todos los campos son requeridos: falta "+ve.Field+".")
			return
		}
		if se, ok := domain.AsStore(err); ok {
			message := se.Message
			if message == "" {
				message = "Error creando reserva."
			}
			httperr.Internal(c, "store_error", message)
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Error creando reserva.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reserva creada exitosamente",
		"data":    res,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	email := c.Query("email")

	reservations, err := h.list.Execute(c.Request.Context(), email)
	if err != nil {
		if se, ok := domain.AsStore(err); ok && se.Message != "" {
			httperr.Internal(c, "store_error", se.Message)
			return
		}
		httperr.Internal(c, "failed_to_list_reservations", "Error obteniendo reservas.")
		return
	}

	httpresp.List(c, reservations)
}
