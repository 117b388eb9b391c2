package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// UseCase use case расчета доступности слотов на дату
type UseCase struct {
	bookingRepo   BookingRepository
	confirmWindow time.Duration
	ladder        SlotLadder
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	confirmWindow time.Duration,
	ladder SlotLadder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		confirmWindow: confirmWindow,
		ladder:        ladder,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает дневную лестницу слотов с признаком доступности.
// Слот недоступен, если его занимает подтвержденное или непросроченное
// PENDING-бронирование - то же определение занятости, что и при создании.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Генерируем лестницу слотов
	slots, err := buildLadder(uc.ladder)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slot ladder: %v", err)
		return nil, err
	}

	// 2. Берем занимающие слоты бронирования дня
	pendingSince := now.Add(-uc.confirmWindow)
	occupying, err := uc.bookingRepo.GetOccupyingByDate(ctx, req.Date, pendingSince)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Отмечаем занятые времена единым предикатом занятости
	occupied := make(map[types.TimeString]struct{}, len(occupying))
	for _, b := range occupying {
		if b.Occupies(now, uc.confirmWindow) {
			occupied[b.StartTime] = struct{}{}
		}
	}

	result := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		_, taken := occupied[slot]
		result[i] = domain.Slot{Time: slot, Available: !taken}
	}

	uc.logger.Info("GetAvailability: date=%s, %d slots, %d occupied",
		req.Date.Format(domain.DateFormat), len(result), len(occupied))

	return &Response{Date: req.Date, Slots: result}, nil
}
