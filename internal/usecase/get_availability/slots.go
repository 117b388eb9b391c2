package get_availability

import (
	"fmt"

	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// buildLadder генерирует фиксированную дневную лестницу слотов:
// от времени открытия с постоянным шагом, пока слот целиком помещается
// до закрытия. Лестница детерминирована и не зависит от даты.
// Для 08:00-18:00 с шагом 30 минут получается 20 слотов: 08:00 .. 17:30
func buildLadder(ladder SlotLadder) ([]types.TimeString, error) {
	if ladder.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot step must be positive", ErrInternal)
	}

	if err := ladder.OpenTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}
	if err := ladder.CloseTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	slots := make([]types.TimeString, 0)
	current := ladder.OpenTime

	for current.IsBefore(ladder.CloseTime) {
		slotEnd, err := current.AddMinutes(ladder.StepMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to advance slot: %v", ErrInternal, err)
		}
		if slotEnd.IsAfter(ladder.CloseTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}
