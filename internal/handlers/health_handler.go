package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dalopezos28/salon-bienestar/internal/timezone"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Servidor funcionando correctamente",
		"timestamp": timezone.Now().Format(time.RFC3339),
	})
}
