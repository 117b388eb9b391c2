package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/RIZZA-BookingService/internal/usecase/create_booking"
)

const (
	codeValidation     = "VALIDATION_ERROR"
	codeInvalidDate    = "INVALID_DATE"
	codePastDate       = "PAST_DATE"
	codeInvalidVehicle = "INVALID_VEHICLE"
	codeSlotTaken      = "SLOT_TAKEN"
	codeConfig         = "CONFIG_ERROR"

	msgInvalidRequestBody = "dados inválidos"
	msgInvalidDate        = "data inválida"
	msgPastDate           = "não é possível agendar para uma data no passado"
	msgInvalidVehicle     = "veículo inválido"
	msgSlotTaken          = "este horário já não está disponível, por favor escolha outro"
	msgMailNotConfigured  = "serviço de email não configurado"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondErrorCode(w, http.StatusBadRequest, codeValidation, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeValidation, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Impossible calendar date: date=%s", req.Date)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidDate, msgInvalidDate)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: date=%s", req.Date)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codePastDate, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidVehicle):
			h.logger.Warn("POST /bookings - Invalid vehicle: make_id=%d, model_id=%d", req.MakeID, req.ModelID)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidVehicle, msgInvalidVehicle)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondErrorCode(w, http.StatusConflict, codeSlotTaken, msgSlotTaken)

		case errors.Is(err, createBooking.ErrMailerNotConfigured):
			h.logger.Error("POST /bookings - Mail channel not configured: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondErrorCode(w, http.StatusInternalServerError, codeConfig, msgMailNotConfigured)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, date=%s, time=%s",
		result.BookingID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
