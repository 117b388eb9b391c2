package domain

import (
	"strconv"
	"time"

	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	// StatusCancelled зарезервирован: ни один роут его пока не выставляет
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a customer booking for a workshop service
type Booking struct {
	ID          string // UUID, генерируется приложением
	ServiceType ServiceType
	MakeID      int64
	ModelID     int64
	VehicleYear *int
	Date        time.Time // дата бронирования (полночь UTC)
	StartTime   types.TimeString

	// Контактные данные клиента
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Plate         *string
	Notes         *string

	Status BookingStatus

	// Denormalized vehicle data for history and export
	MakeName  string
	ModelName string

	// Подтверждение по ссылке из письма
	ConfirmToken string
	TokenExpires *time.Time
	ConfirmedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking has been confirmed by the customer
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsPending returns true if the booking still awaits confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// Occupies сообщает, блокирует ли бронирование свой слот в момент now.
// Слот занят, если бронирование подтверждено, либо находится в статусе PENDING
// и создано не раньше, чем (now - window). Просроченные PENDING слот не блокируют.
// Это единственное определение занятости: им пользуются и проверка конфликта
// при создании, и расчет доступности.
func (b *Booking) Occupies(now time.Time, window time.Duration) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return !b.CreatedAt.Before(now.Add(-window))
	default:
		return false
	}
}

// VehicleLabel возвращает человекочитаемую подпись автомобиля для писем и экспорта
func (b *Booking) VehicleLabel() string {
	label := b.MakeName + " " + b.ModelName
	if b.VehicleYear != nil {
		label += " " + strconv.Itoa(*b.VehicleYear)
	}
	return label
}

// BookingsFilter фильтр для административной выборки бронирований
type BookingsFilter struct {
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
}
