package list_models

import (
	"fmt"
	"net/http"
	"strconv"

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

// Handle GET /api/vehicles/models?makeId=N
// Отсутствующий или нечисловой makeId дает пустой список, не ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawMakeID := r.URL.Query().Get("makeId")

	makeID, err := strconv.ParseInt(rawMakeID, 10, 64)
	if err != nil || makeID <= 0 {
		handlers.RespondJSON(w, http.StatusOK, &ModelsListResponse{Models: []ModelResponse{}})
		return
	}

	result, err := h.catalog.ListModels(r.Context(), makeID)
	if err != nil {
		h.logger.Error("GET /vehicles/models - Failed to list models: make_id=%d, error=%v", makeID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(h.catalog.CacheTTL().Seconds())))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
