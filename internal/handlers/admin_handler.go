package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AdminHandler is the manual review side: confirming or cancelling the
// pending soft holds the public booking flow creates.
type AdminHandler struct {
	updateStatus *ucBooking.UpdateReservationStatus
	gormDB       *gorm.DB // nil with the sheets driver
}

func NewAdminHandler(
	updateStatus *ucBooking.UpdateReservationStatus,
	gormDB *gorm.DB,
) *AdminHandler {
	return &AdminHandler{
		updateStatus: updateStatus,
		gormDB:       gormDB,
	}
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *AdminHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, domain.StatusConfirmed)
}

func (h *AdminHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, domain.StatusCancelled)
}

func (h *AdminHandler) changeStatus(c *gin.Context, target domain.Status) {
	id := c.Param("id")

	res, err := h.updateStatus.Execute(c.Request.Context(), id, target)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La reserva ya fue revisada.")
			return
		}
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
			return
		}
		if se, ok := domain.AsStore(err); ok && se.Message != "" {
			httperr.Internal(c, "store_error", se.Message)
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Error actualizando la reserva.")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	if h.gormDB == nil {
		c.JSON(http.StatusOK, gin.H{"page": 1, "limit": 0, "total": 0, "logs": []models.AuditLog{}})
		return
	}

	action := c.Query("action")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.gormDB.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if fromStr != "" {
		if from, err := time.Parse(domain.DateLayout, fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse(domain.DateLayout, toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Error contando registros.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Error listando registros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
