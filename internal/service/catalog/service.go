package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/service/catalog/models"
)

// Service сервис справочника марок и моделей с in-process TTL-кэшем.
// Кэш конструируется один раз на процесс и передается по ссылке:
// никакого глобального изменяемого состояния.
type Service struct {
	repo         VehicleRepository
	cache        *ttlCache
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo VehicleRepository, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		repo:         repo,
		cache:        newTTLCache(cacheTTL),
		ttl:          cacheTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CacheTTL возвращает TTL кэша (для заголовков Cache-Control)
func (s *Service) CacheTTL() time.Duration {
	return s.ttl
}

// ListMakes возвращает все марки, отсортированные по имени
// Попадание в кэш неотличимо для вызывающего от свежего чтения
func (s *Service) ListMakes(ctx context.Context) (*models.MakesResponse, error) {
	now := s.timeProvider.Now()

	if makes, ok := s.cache.getMakes(now); ok {
		return models.FromDomainMakes(makes), nil
	}

	makes, err := s.repo.ListMakes(ctx)
	if err != nil {
		s.logger.Error("ListMakes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMakes - repository error: %v", ErrInternal, err)
	}

	s.cache.setMakes(makes, now)
	s.logger.Info("ListMakes: cache refreshed, %d makes", len(makes))

	return models.FromDomainMakes(makes), nil
}

// ListModels возвращает модели марки, отсортированные по имени
// Для несуществующей марки возвращает пустой список
func (s *Service) ListModels(ctx context.Context, makeID int64) (*models.ModelsResponse, error) {
	now := s.timeProvider.Now()

	if cached, ok := s.cache.getModels(makeID, now); ok {
		return models.FromDomainModels(cached), nil
	}

	modelList, err := s.repo.ListModels(ctx, makeID)
	if err != nil {
		s.logger.Error("ListModels: repository error for make=%d: %v", makeID, err)
		return nil, fmt.Errorf("%w: ListModels - repository error: %v", ErrInternal, err)
	}

	s.cache.setModels(makeID, modelList, now)
	s.logger.Info("ListModels: cache refreshed for make=%d, %d models", makeID, len(modelList))

	return models.FromDomainModels(modelList), nil
}

// Invalidate сбрасывает кэш справочника целиком
// Используется после изменения справочника и в тестах
func (s *Service) Invalidate() {
	s.cache.invalidate()
	s.logger.Info("Invalidate: catalog cache dropped")
}
