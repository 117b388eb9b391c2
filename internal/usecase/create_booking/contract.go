package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupyingByDate(ctx context.Context, date time.Time, pendingSince time.Time) ([]*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория справочника автомобилей
type VehicleRepository interface {
	GetModelWithMake(ctx context.Context, makeID, modelID int64) (*domain.VehicleModelWithMake, error)
}

// Mailer интерфейс почтового канала подтверждения
type Mailer interface {
	Configured() bool
	SendConfirmation(ctx context.Context, email mailer.ConfirmationEmail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
