package export_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidPeriod = "período inválido, esperado YYYY-MM-DD"
	msgInvalidStatus = "estado inválido"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/export.csv?from=&to=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequest{}

	if rawFrom := query.Get("from"); rawFrom != "" {
		from, err := time.Parse(domain.DateFormat, rawFrom)
		if err != nil {
			h.logger.Warn("GET /bookings/export.csv - Invalid from date: %q", rawFrom)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.StartDate = &from
	}

	if rawTo := query.Get("to"); rawTo != "" {
		to, err := time.Parse(domain.DateFormat, rawTo)
		if err != nil {
			h.logger.Warn("GET /bookings/export.csv - Invalid to date: %q", rawTo)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.EndDate = &to
	}

	if rawStatus := query.Get("status"); rawStatus != "" {
		req.Status = &rawStatus
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/export.csv - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings/export.csv - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)

	if err := writeCSV(w, result.Bookings); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		h.logger.Error("GET /bookings/export.csv - Failed to write CSV: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export.csv - Exported %d bookings", len(result.Bookings))
}
