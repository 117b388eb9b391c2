package get_availability

import (
	"net/http"
	"regexp"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	getAvailability "github.com/m04kA/RIZZA-BookingService/internal/usecase/get_availability"
)

const msgInvalidDate = "data inválida"

var dateShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	// Без даты отвечаем пустым списком, не подставляя сегодняшний день
	if rawDate == "" {
		handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
			Date:  "",
			Slots: []SlotResponse{},
		})
		return
	}

	if !dateShapePattern.MatchString(rawDate) {
		h.logger.Warn("GET /availability - Malformed date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid calendar date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
