package create_booking

import (
	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата передается сырой строкой: сначала проходят структурные проверки
// (первая ошибка выигрывает), и только затем календарный разбор даты
type Request struct {
	ServiceType   domain.ServiceType
	MakeID        int64
	ModelID       int64
	VehicleYear   *int             // Опционально, [1950, текущий год + 1]
	Date          string           // Дата бронирования "YYYY-MM-DD"
	StartTime     types.TimeString // Слот из дневной лестницы, например "14:30"
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Plate         *string
	Notes         *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID string // UUID созданного бронирования
	Status    string // Всегда PENDING
}

// SlotLadder параметры дневной лестницы слотов
// Время начала обязано лежать на лестнице: от открытия до закрытия с фиксированным шагом
type SlotLadder struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	StepMinutes int
}
