package create_booking

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// dateShapePattern структурная форма даты YYYY-MM-DD.
// Календарная корректность ("2026-02-30") проверяется отдельно, после
// всех структурных проверок
var dateShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateRequest валидирует структуру запроса: перечисления, диапазоны, длины.
// Порядок проверок фиксирован, первая ошибка выигрывает.
func validateRequest(req *Request, now time.Time, ladder SlotLadder) error {
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrValidation, req.ServiceType)
	}

	if req.MakeID <= 0 {
		return fmt.Errorf("%w: makeId must be positive", ErrValidation)
	}

	if req.ModelID <= 0 {
		return fmt.Errorf("%w: modelId must be positive", ErrValidation)
	}

	if req.VehicleYear != nil {
		maxYear := now.Year() + 1
		if *req.VehicleYear < domain.MinVehicleYear || *req.VehicleYear > maxYear {
			return fmt.Errorf("%w: vehicleYear must be in [%d, %d]", ErrValidation, domain.MinVehicleYear, maxYear)
		}
	}

	if !dateShapePattern.MatchString(req.Date) {
		return fmt.Errorf("%w: date must match YYYY-MM-DD", ErrValidation)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrValidation)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrValidation, err)
	}
	if err := validateOnLadder(req.StartTime, ladder); err != nil {
		return err
	}

	if utf8.RuneCountInString(req.CustomerName) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at least %d characters", ErrValidation, domain.MinCustomerNameLength)
	}

	if utf8.RuneCountInString(req.CustomerPhone) < domain.MinCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone must be at least %d characters", ErrValidation, domain.MinCustomerPhoneLength)
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customerEmail", ErrValidation)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrValidation, domain.MaxNotesLength)
	}

	return nil
}

// validateOnLadder проверяет, что время начала принадлежит дневной лестнице слотов
func validateOnLadder(startTime types.TimeString, ladder SlotLadder) error {
	start, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrValidation, err)
	}

	open, err := ladder.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid ladder open time: %v", ErrInternal, err)
	}

	closeAt, err := ladder.CloseTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid ladder close time: %v", ErrInternal, err)
	}

	// Последний слот должен целиком помещаться до закрытия
	if start < open || start+ladder.StepMinutes > closeAt {
		return fmt.Errorf("%w: time %s is outside working hours", ErrValidation, startTime)
	}

	if (start-open)%ladder.StepMinutes != 0 {
		return fmt.Errorf("%w: time %s is not on the slot grid", ErrValidation, startTime)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (сравнение без времени)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// findSlotConflict ищет бронирование, занимающее слот (date, startTime) в момент now.
// Используется единое определение занятости domain.(*Booking).Occupies
func findSlotConflict(bookings []*domain.Booking, startTime types.TimeString, now time.Time, window time.Duration) *domain.Booking {
	for _, b := range bookings {
		if b.StartTime == startTime && b.Occupies(now, window) {
			return b
		}
	}
	return nil
}
