package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"waltgoat/walker-app/internal/cache"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/repository/memory"
	"waltgoat/walker-app/internal/service"
	"waltgoat/walker-app/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner)

	empty, err := env.stats.GetStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Totals.Walks)
	assert.Len(t, empty.DailySeries, 14)

	_, err = env.sessions.LogWalk(ctx, user.ID, service.WalkInput{DistanceKm: 2.5, DurationSec: 1800, Steps: 3000})
	require.NoError(t, err)
	_, err = env.sessions.LogCircuit(ctx, user.ID, service.CircuitInput{
		DurationMinutes: 20,
		Exercises: []domain.ExerciseLog{
			{ExerciseID: "ex_bicipiti_manubri", Sets: 2, Reps: 10, WeightKg: 2},
		},
	})
	require.NoError(t, err)

	report, err := env.stats.GetStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Totals.Walks)
	assert.Equal(t, 1, report.Totals.Circuits)
	assert.Equal(t, 2.5, report.Totals.Km)
	assert.Equal(t, 40.0, report.Totals.VolumeKg)
	assert.Equal(t, 1, report.Streak)
	// 60 * 2.5 + 5 * 20
	assert.Equal(t, 250, report.Totals.Calories)
}

func TestStatsService_CacheAndInvalidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner)
	lookups := env.metrics.CounterStatsCache

	_, err := env.stats.GetStats(ctx, user.ID)
	require.NoError(t, err)
	_, err = env.stats.GetStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("hit")))

	// logging a session drops the cached report
	_, err = env.sessions.LogWalk(ctx, user.ID, service.WalkInput{DistanceKm: 1})
	require.NoError(t, err)

	report, err := env.stats.GetStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Totals.Walks)
	assert.Equal(t, 2.0, testutil.ToFloat64(lookups.WithLabelValues("miss")))
}

func TestStatsService_UsersAreSeparate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	a := env.registerUser(t, domain.LevelBeginner)
	b := env.registerUser(t, domain.LevelBeginner)

	_, err := env.sessions.LogWalk(ctx, a.ID, service.WalkInput{DistanceKm: 4})
	require.NoError(t, err)

	report, err := env.stats.GetStats(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, report.Totals.Km)
}

// interleavedSessions runs onListWalks once, between the report's read and
// its cache write, the way a concurrent LogWalk would.
type interleavedSessions struct {
	repository.SessionRepository
	once        sync.Once
	onListWalks func()
}

func (s *interleavedSessions) ListWalks(ctx context.Context, userID string, q repository.SessionQuery) ([]domain.WalkSession, error) {
	walks, err := s.SessionRepository.ListWalks(ctx, userID, q)
	s.once.Do(s.onListWalks)
	return walks, err
}

func TestStatsService_StaleReportNotCached(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	m := metrics.NewTestManager()
	repo := &interleavedSessions{SessionRepository: store.Sessions()}
	statsSvc := service.NewStatsService(repo, cache.NewJSONCache(1, time.Minute), m, 0)
	sessions := service.NewSessionService(store.Sessions(), nil, statsSvc, m, 0)

	repo.onListWalks = func() {
		_, err := sessions.LogWalk(ctx, "user_1", service.WalkInput{DistanceKm: 2})
		require.NoError(t, err)
	}

	stale, err := statsSvc.GetStats(ctx, "user_1")
	require.NoError(t, err)
	assert.Zero(t, stale.Totals.Walks)

	fresh, err := statsSvc.GetStats(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Totals.Walks)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterStatsCache.WithLabelValues("miss")))
	assert.Zero(t, testutil.ToFloat64(m.CounterStatsCache.WithLabelValues("hit")))
}
