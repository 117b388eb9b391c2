package catalog

import (
	"context"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
)

// VehicleRepository интерфейс репозитория справочника автомобилей
type VehicleRepository interface {
	ListMakes(ctx context.Context) ([]*domain.VehicleMake, error)
	ListModels(ctx context.Context, makeID int64) ([]*domain.VehicleModel, error)
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
