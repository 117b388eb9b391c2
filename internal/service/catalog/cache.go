package catalog

import (
	"sync"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
)

// makesEntry кэшированный список марок с моментом загрузки
type makesEntry struct {
	makes    []*domain.VehicleMake
	loadedAt time.Time
}

// modelsEntry кэшированный список моделей одной марки
type modelsEntry struct {
	models   []*domain.VehicleModel
	loadedAt time.Time
}

// ttlCache ленивый in-process кэш справочника с фиксированным TTL.
// Записи заменяются целиком под RWMutex; часы инжектируются сервисом,
// чтобы протухание было проверяемо в тестах.
type ttlCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	makes  *makesEntry
	models map[int64]*modelsEntry
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{
		ttl:    ttl,
		models: make(map[int64]*modelsEntry),
	}
}

// getMakes возвращает закэшированные марки, если запись еще свежая
func (c *ttlCache) getMakes(now time.Time) ([]*domain.VehicleMake, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.makes == nil || now.Sub(c.makes.loadedAt) >= c.ttl {
		return nil, false
	}
	return c.makes.makes, true
}

// setMakes заменяет запись марок целиком
func (c *ttlCache) setMakes(makes []*domain.VehicleMake, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.makes = &makesEntry{makes: makes, loadedAt: now}
}

// getModels возвращает закэшированные модели марки, если запись еще свежая
func (c *ttlCache) getModels(makeID int64, now time.Time) ([]*domain.VehicleModel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.models[makeID]
	if !ok || now.Sub(entry.loadedAt) >= c.ttl {
		return nil, false
	}
	return entry.models, true
}

// setModels заменяет запись моделей марки целиком
func (c *ttlCache) setModels(makeID int64, models []*domain.VehicleModel, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[makeID] = &modelsEntry{models: models, loadedAt: now}
}

// invalidate сбрасывает весь кэш
func (c *ttlCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.makes = nil
	c.models = make(map[int64]*modelsEntry)
}
