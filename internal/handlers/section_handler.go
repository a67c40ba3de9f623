package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/sections"
)

type SectionHandler struct {
	navigator *sections.Navigator
}

func NewSectionHandler(navigator *sections.Navigator) *SectionHandler {
	return &SectionHandler{navigator: navigator}
}

func (h *SectionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"active":   h.navigator.Active(),
		"sections": sections.Names,
	})
}

type ActivateSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

func (h *SectionHandler) Activate(c *gin.Context) {
	var req ActivateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.navigator.Activate(req.Section); err != nil {
		httperr.BadRequest(c, "unknown_section", "Sección desconocida.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": h.navigator.Active()})
}
