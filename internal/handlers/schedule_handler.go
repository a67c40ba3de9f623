package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/httpresp"
)

type ScheduleHandler struct {
	repo domain.Repository
}

func NewScheduleHandler(repo domain.Repository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

// List returns the weekly opening hours, available days only.
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.repo.ListSchedules(c.Request.Context())
	if err != nil {
		if se, ok := domain.AsStore(err); ok && se.Message != "" {
			httperr.Internal(c, "store_error", se.Message)
			return
		}
		httperr.Internal(c, "failed_to_list_schedules", "Error obteniendo horarios.")
		return
	}

	httpresp.List(c, schedules)
}
