package get_availability

import (
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// Request модель запроса доступности слотов на дату
type Request struct {
	Date time.Time // Дата (полночь UTC)
}

// Response список слотов дня с признаком доступности
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}

// SlotLadder параметры дневной лестницы слотов
type SlotLadder struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	StepMinutes int
}
