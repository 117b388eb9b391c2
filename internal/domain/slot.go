package domain

import "github.com/m04kA/RIZZA-BookingService/pkg/types"

// Slot элемент дневной лестницы слотов с признаком доступности
type Slot struct {
	Time      types.TimeString
	Available bool
}
