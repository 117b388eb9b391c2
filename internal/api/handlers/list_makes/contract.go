package list_makes

import (
	"context"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListMakes(ctx context.Context) (*models.MakesResponse, error)
	CacheTTL() time.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
