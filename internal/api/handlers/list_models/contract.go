package list_models

import (
	"context"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListModels(ctx context.Context, makeID int64) (*models.ModelsResponse, error)
	CacheTTL() time.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
