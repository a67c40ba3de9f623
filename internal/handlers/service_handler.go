package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dalopezos28/salon-bienestar/internal/cache"
	"github.com/Dalopezos28/salon-bienestar/internal/db"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
	"github.com/Dalopezos28/salon-bienestar/internal/httpresp"
	ucBooking "github.com/Dalopezos28/salon-bienestar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	services *ucBooking.ListServices
	gormDB   *gorm.DB // nil with the sheets driver
	cache    *cache.ServicesCache
}

func NewServiceHandler(
	services *ucBooking.ListServices,
	gormDB *gorm.DB,
	servicesCache *cache.ServicesCache,
) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		gormDB:   gormDB,
		cache:    servicesCache,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.Execute(c.Request.Context())
	if err != nil {
		if se, ok := domain.AsStore(err); ok && se.Message != "" {
			httperr.Internal(c, "store_error", se.Message)
			return
		}
		httperr.Internal(c, "failed_to_list_services", "Error obteniendo servicios.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// INIT
// ======================================================

// Init re-seeds the default catalog and weekly schedule when the tables are
// empty. With the sheets driver the workbook owns its tabs, so there is
// nothing to do here.
func (h *ServiceHandler) Init(c *gin.Context) {
	if h.gormDB == nil {
		httperr.BadRequest(c, "init_not_supported", "El almacén de hojas gestiona sus propias pestañas.")
		return
	}

	if err := db.Seed(h.gormDB); err != nil {
		httperr.Internal(c, "init_failed", "Error inicializando datos.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Datos iniciales verificados correctamente",
	})
}
