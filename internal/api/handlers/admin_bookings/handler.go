package admin_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidPeriod   = "período inválido, esperado YYYY-MM-DD"
	msgInvalidStatus   = "estado inválido"
	msgBookingNotFound = "marcação não encontrada"
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

// HandleList GET /api/admin/bookings?from=&to=&status=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequest{}

	if rawFrom := query.Get("from"); rawFrom != "" {
		from, err := time.Parse(domain.DateFormat, rawFrom)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid from date: %q", rawFrom)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.StartDate = &from
	}

	if rawTo := query.Get("to"); rawTo != "" {
		to, err := time.Parse(domain.DateFormat, rawTo)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid to date: %q", rawTo)
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
			h.logger.Warn("GET /admin/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleGet GET /api/admin/bookings/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceRecord(record))
}
