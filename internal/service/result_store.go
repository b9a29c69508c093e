package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fytai-health-api/internal/cache"
	"fytai-health-api/internal/domain"
	"fytai-health-api/internal/logger"

	"go.uber.org/zap"
)

// ErrResultNotFound is returned when no stored result exists for a session.
var ErrResultNotFound = errors.New("questionnaire result not found in store")

// ResultStoreService is the result persistence gateway: it keeps the
// latest computed result per session as an opaque JSON blob in the
// key-value store. Store failures are reported but callers treat them as
// non-fatal; the in-memory result stays valid either way.
type ResultStoreService interface {
	Save(ctx context.Context, sessionID string, result *domain.Result) error
	Get(ctx context.Context, sessionID string) (*domain.Result, error)
	Clear(ctx context.Context, sessionID string) error
	// HasRecent reports whether a stored result is younger than maxAge.
	HasRecent(ctx context.Context, sessionID string, maxAge time.Duration) (bool, error)
}

type resultStoreServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewResultStoreService creates a result store over the given cache. A
// nil cache yields a no-op store so the questionnaire keeps working when
// persistence is unavailable.
func NewResultStoreService(c domain.Cache, ttl time.Duration) ResultStoreService {
	if c == nil {
		logger.Get().Warn("ResultStoreService initialized with nil cache. Service will be no-op.")
		return &noopResultStoreService{}
	}
	return &resultStoreServiceImpl{
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *resultStoreServiceImpl) generateKey(sessionID string) string {
	return cache.GenerateCacheKey("health", "result", sessionID)
}

// Save stores the result under the session key with the configured TTL.
// time.Time marshals as RFC 3339, so CompletedAt round-trips as an
// ISO-8601 timestamp for the SPA.
func (s *resultStoreServiceImpl) Save(ctx context.Context, sessionID string, result *domain.Result) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot store nil result")
	}

	key := s.generateKey(sessionID)
	dataBytes, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("Failed to marshal questionnaire result for storing", zap.Error(err), zap.String("sessionID", sessionID))
		return domain.NewInternalError("failed to marshal result for storing", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to store questionnaire result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set result to store for key %s", key), err)
	}
	logger.Get().Debug("Successfully stored questionnaire result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves the stored result for a session.
func (s *resultStoreServiceImpl) Get(ctx context.Context, sessionID string) (*domain.Result, error) {
	key := s.generateKey(sessionID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Questionnaire result store miss", zap.String("key", key))
			return nil, ErrResultNotFound
		}
		logger.Get().Error("Failed to get questionnaire result from store", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get result from store for key %s", key), err)
	}

	if dataString == "" {
		logger.Get().Debug("Questionnaire result store miss (empty data string)", zap.String("key", key))
		return nil, ErrResultNotFound
	}

	var result domain.Result
	if err := json.Unmarshal([]byte(dataString), &result); err != nil {
		logger.Get().Error("Failed to unmarshal questionnaire result from store", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal result from store for key %s", key), err)
	}

	return &result, nil
}

// Clear removes the stored result for a session.
func (s *resultStoreServiceImpl) Clear(ctx context.Context, sessionID string) error {
	key := s.generateKey(sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to clear questionnaire result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to clear result for key %s", key), err)
	}
	return nil
}

// HasRecent reports whether the session has a result completed within
// maxAge. A missing result is simply false, not an error.
func (s *resultStoreServiceImpl) HasRecent(ctx context.Context, sessionID string, maxAge time.Duration) (bool, error) {
	result, err := s.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResultNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.now().Sub(result.CompletedAt) < maxAge, nil
}

// noopResultStoreService is used when the backing store is unavailable.
type noopResultStoreService struct{}

func (s *noopResultStoreService) Save(ctx context.Context, sessionID string, result *domain.Result) error {
	logger.Get().Debug("No-op ResultStoreService: Save called", zap.String("sessionID", sessionID))
	return nil
}

func (s *noopResultStoreService) Get(ctx context.Context, sessionID string) (*domain.Result, error) {
	logger.Get().Debug("No-op ResultStoreService: Get called", zap.String("sessionID", sessionID))
	return nil, ErrResultNotFound
}

func (s *noopResultStoreService) Clear(ctx context.Context, sessionID string) error {
	return nil
}

func (s *noopResultStoreService) HasRecent(ctx context.Context, sessionID string, maxAge time.Duration) (bool, error) {
	return false, nil
}
