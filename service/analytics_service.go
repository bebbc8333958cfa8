package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
	"healthcare-optimizer/metrics"
	"healthcare-optimizer/repository"
)

// cacheKeyPrefix is bumped whenever a cached result's shape changes, so
// entries written by other versions are never read.
const cacheKeyPrefix = "hco:v1:"

const (
	calculatorOperations = "operations"
	calculatorROI        = "roi"
	calculatorSixSigma   = "six_sigma"
)

// AnalyticsService runs the calculators, memoizing results in a cache and
// recording metrics. Results are identical with or without the cache.
type AnalyticsService struct {
	cache repository.CacheRepository
	log   *zap.Logger
}

// NewAnalyticsService creates an AnalyticsService. cache may be nil.
func NewAnalyticsService(cache repository.CacheRepository, log *zap.Logger) *AnalyticsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyticsService{cache: cache, log: log}
}

func (s *AnalyticsService) Operations(ctx context.Context, input domain.OperationsInput) (domain.OperationsOutput, error) {
	key := fmt.Sprintf("%s%s:%d:%d:%d:%d:%d", cacheKeyPrefix, calculatorOperations,
		input.NumDoctors, input.PatientsPerHour, input.ConsultMinutes, input.NumBeds, input.Shifts)
	return evaluate(ctx, s, calculatorOperations, key, func() (domain.OperationsOutput, error) {
		return ComputeOperationsMetrics(input)
	}, func(out domain.OperationsOutput) bool {
		return out.DoctorAdvisory.Message != "" && out.BedAdvisory.Message != ""
	})
}

func (s *AnalyticsService) ROI(ctx context.Context, input domain.ROIInput) (domain.ROIResult, error) {
	key := fmt.Sprintf("%s%s:%g:%g:%d", cacheKeyPrefix, calculatorROI, input.Investment, input.AnnualSavings, input.Years)
	return evaluate(ctx, s, calculatorROI, key, func() (domain.ROIResult, error) {
		return ComputeROI(input)
	}, func(out domain.ROIResult) bool {
		return out.Classification != "" && out.Message != ""
	})
}

func (s *AnalyticsService) SixSigma(ctx context.Context, input domain.SixSigmaInput) (domain.SixSigmaResult, error) {
	key := fmt.Sprintf("%s%s:%d", cacheKeyPrefix, calculatorSixSigma, input.DefectsPer1000)
	return evaluate(ctx, s, calculatorSixSigma, key, func() (domain.SixSigmaResult, error) {
		return ComputeSixSigma(input)
	}, func(out domain.SixSigmaResult) bool {
		return out.Classification != "" && out.Message != "" && out.Opportunities > 0
	})
}

func evaluate[T any](
	ctx context.Context,
	s *AnalyticsService,
	calculator, key string,
	compute func() (T, error),
	complete func(T) bool,
) (T, error) {
	start := time.Now()
	defer func() {
		metrics.CalculationDuration.WithLabelValues(calculator).Observe(time.Since(start).Seconds())
	}()

	if cached, ok := s.lookup(ctx, calculator, key); ok {
		var out T
		if err := json.Unmarshal([]byte(cached), &out); err == nil && complete(out) {
			metrics.CalculationsCompleted.WithLabelValues(calculator).Inc()
			return out, nil
		}
		s.log.Warn("discarding unusable cache entry", zap.String("key", key))
	}

	out, err := compute()
	if err != nil {
		code := string(apperrors.ErrCodeInternal)
		if se, ok := apperrors.As(err); ok {
			code = string(se.Code)
		}
		metrics.CalculationsRejected.WithLabelValues(calculator, code).Inc()
		s.log.Debug("calculation rejected",
			zap.String("calculator", calculator),
			zap.String("error_code", code),
			zap.Error(err),
		)
		var zero T
		return zero, err
	}

	metrics.CalculationsCompleted.WithLabelValues(calculator).Inc()
	s.store(ctx, key, out)
	return out, nil
}

func (s *AnalyticsService) lookup(ctx context.Context, calculator, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, ok := s.cache.Get(ctx, key)
	result := "miss"
	if ok {
		result = "hit"
	}
	metrics.CacheLookups.WithLabelValues(calculator, result).Inc()
	return val, ok
}

// store is best effort; a failed write never fails the evaluation.
func (s *AnalyticsService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("failed to encode result for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.log.Warn("failed to cache result", zap.String("key", key), zap.Error(err))
	}
}
