package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/RIZZA-BookingService/internal/usecase/confirm_booking"
)

const (
	reasonInvalidToken = "INVALID_TOKEN"
	reasonTokenExpired = "TOKEN_EXPIRED"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest,
			ConfirmBookingFailure{Ok: false, Reason: reasonInvalidToken})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: req.Token})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrTokenExpired):
			h.logger.Warn("POST /bookings/confirm - Token expired")
			handlers.RespondJSON(w, http.StatusBadRequest,
				ConfirmBookingFailure{Ok: false, Reason: reasonTokenExpired})

		case errors.Is(err, confirmBooking.ErrInvalidToken),
			errors.Is(err, confirmBooking.ErrValidation):
			h.logger.Warn("POST /bookings/confirm - Invalid token")
			handlers.RespondJSON(w, http.StatusBadRequest,
				ConfirmBookingFailure{Ok: false, Reason: reasonInvalidToken})

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Booking confirmed")
	handlers.RespondJSON(w, http.StatusOK,
		ConfirmBookingResponse{Ok: true, Status: result.Status})
}
