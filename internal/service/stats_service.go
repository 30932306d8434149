package service

import (
	"context"
	"sync"
	"time"

	"waltgoat/walker-app/internal/cache"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/stats"
	"waltgoat/walker-app/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const DefaultSessionLimit = 1000

type StatsService interface {
	GetStats(ctx context.Context, userID string) (*stats.Report, error)
	StatsInvalidator
}

type statsService struct {
	sessionRepo  repository.SessionRepository
	cache        *cache.JSONCache
	metrics      *metrics.Manager
	sessionLimit int
	now          func() time.Time

	mu sync.Mutex
	// gen counts invalidations per user; a report read before the latest
	// invalidation is not cached.
	gen map[string]uint64
}

// NewStatsService builds the progress report service. A nil cache disables
// caching; m may be nil.
func NewStatsService(sessionRepo repository.SessionRepository, c *cache.JSONCache, m *metrics.Manager, sessionLimit int) StatsService {
	if sessionLimit <= 0 {
		sessionLimit = DefaultSessionLimit
	}
	return &statsService{
		sessionRepo:  sessionRepo,
		cache:        c,
		metrics:      m,
		sessionLimit: sessionLimit,
		now:          time.Now,
		gen:          make(map[string]uint64),
	}
}

func statsKey(userID string) string {
	return "stats:" + userID
}

func (s *statsService) GetStats(ctx context.Context, userID string) (*stats.Report, error) {
	var report stats.Report
	if s.cache != nil && s.cache.Get(statsKey(userID), &report) {
		s.cacheLookup("hit")
		return &report, nil
	}
	s.cacheLookup("miss")
	gen := s.generation(userID)

	q := repository.SessionQuery{Limit: s.sessionLimit}
	walks, err := s.sessionRepo.ListWalks(ctx, userID, q)
	if err != nil {
		return nil, storeError(err, nil)
	}
	circuits, err := s.sessionRepo.ListCircuits(ctx, userID, q)
	if err != nil {
		return nil, storeError(err, nil)
	}
	if len(walks) == s.sessionLimit || len(circuits) == s.sessionLimit {
		log.Warnf("stats for %s truncated at %d sessions", userID, s.sessionLimit)
	}

	report = stats.Aggregate(walks, circuits, s.now())
	if s.cache != nil {
		s.mu.Lock()
		if s.gen[userID] == gen {
			s.cache.Set(statsKey(userID), report)
		} else {
			log.Debugf("stats for %s changed during read, not cached", userID)
		}
		s.mu.Unlock()
	}
	return &report, nil
}

func (s *statsService) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen[userID]
}

// Invalidate drops the cached report of userID.
func (s *statsService) Invalidate(userID string) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[userID]++
	s.cache.Delete(statsKey(userID))
}

func (s *statsService) cacheLookup(result string) {
	if s.metrics != nil && s.cache != nil {
		s.metrics.CounterStatsCache.WithLabelValues(result).Inc()
	}
}
