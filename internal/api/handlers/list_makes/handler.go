package list_makes

import (
	"fmt"
	"net/http"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/vehicles/makes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListMakes(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles/makes - Failed to list makes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(h.catalog.CacheTTL().Seconds())))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
