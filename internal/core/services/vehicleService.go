package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/pricing"
)

const registryCacheName = "vehicle_registry"

type VehicleService struct {
	registry ports.VehicleRegistry
	cache    ports.CachePort
	metrics  ports.MetricsPort
	logger   ports.LoggerPort
	cacheTTL time.Duration
	now      func() time.Time
}

func NewVehicleService(
	registry ports.VehicleRegistry,
	cache ports.CachePort,
	metrics ports.MetricsPort,
	logger ports.LoggerPort,
	cacheTTL time.Duration,
) *VehicleService {
	return &VehicleService{
		registry: registry,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// NormalizeRegistration upper-cases and strips whitespace.
func NormalizeRegistration(registration string) string {
	return strings.ToUpper(strings.Join(strings.Fields(registration), ""))
}

func vehicleCacheKey(registration string) string {
	return fmt.Sprintf("vehicle:%s", registration)
}

func (s *VehicleService) Lookup(ctx context.Context, registration string) (*domain.VehicleRecord, error) {
	const op = "VehicleService.Lookup"

	reg := NormalizeRegistration(registration)
	if len(reg) < 2 || len(reg) > 16 {
		s.logger.Error("Invalid registration", map[string]interface{}{
			"registration": registration,
		})
		return nil, domain.NewValidationError(op, fmt.Errorf("invalid registration %q", registration))
	}

	cacheKey := vehicleCacheKey(reg)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cached domain.VehicleRecord
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.metrics.RecordCacheLookup(registryCacheName, true)
			s.logger.Debug("Vehicle found in cache", map[string]interface{}{
				"registration": reg,
			})
			return &cached, nil
		}
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn("Failed to read vehicle cache", map[string]interface{}{
			"error":        err.Error(),
			"registration": reg,
		})
	}
	s.metrics.RecordCacheLookup(registryCacheName, false)

	record, err := s.registry.Lookup(ctx, reg)
	if err != nil {
		if errors.Is(err, domain.ErrLookupNotFound) {
			s.logger.Info("Vehicle not found in registry", map[string]interface{}{
				"registration": reg,
			})
			return nil, domain.NewNotFoundError(op, err)
		}
		s.logger.Error("Registry lookup failed", map[string]interface{}{
			"error":        err.Error(),
			"registration": reg,
		})
		if domain.IsKind(err, domain.KindNetwork) {
			return nil, err
		}
		return nil, domain.NewNetworkError(op, err)
	}

	record.Registration = reg
	record.EstimatedValue = pricing.EstimateCarValue(record.Year, s.now().Year())
	record.FetchedAt = s.now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("Failed to marshal vehicle for cache", map[string]interface{}{
			"error":        err.Error(),
			"registration": reg,
		})
	} else if err := s.cache.Set(cacheKey, data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache vehicle", map[string]interface{}{
			"error":        err.Error(),
			"registration": reg,
		})
	}

	s.logger.Info("Vehicle looked up", map[string]interface{}{
		"registration": reg,
		"year":         record.Year,
	})

	return record, nil
}

// InvalidateCache drops a memoised lookup so the next call hits the registry.
func (s *VehicleService) InvalidateCache(ctx context.Context, registration string) error {
	reg := NormalizeRegistration(registration)
	if err := s.cache.Delete(vehicleCacheKey(reg)); err != nil {
		s.logger.Error("Failed to invalidate vehicle cache", map[string]interface{}{
			"error":        err.Error(),
			"registration": reg,
		})
		return err
	}

	s.logger.Info("Vehicle cache invalidated", map[string]interface{}{
		"registration": reg,
	})
	return nil
}

func (s *VehicleService) EstimateValue(manufactureYear int) decimal.Decimal {
	return pricing.EstimateCarValue(manufactureYear, s.now().Year())
}
