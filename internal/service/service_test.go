package service_test

import (
	"context"
	"testing"
	"time"

	"waltgoat/walker-app/internal/cache"
	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/challenge"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository/memory"
	"waltgoat/walker-app/internal/service"
	"waltgoat/walker-app/internal/storage"
	"waltgoat/walker-app/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testEnv struct {
	store      *memory.Store
	metrics    *metrics.Manager
	catalog    *catalog.Catalog
	auth       service.AuthService
	profiles   service.ProfileService
	sessions   service.SessionService
	stats      service.StatsService
	plans      service.PlanService
	challenges service.ChallengeService
}

type envOptions struct {
	tracks storage.ObjectStorage
	engine *challenge.Engine
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	store := memory.NewStore()
	m := metrics.NewTestManager()
	c := catalog.Default()
	statsSvc := service.NewStatsService(store.Sessions(), cache.NewJSONCache(1, time.Minute), m, 0)
	return &testEnv{
		store:      store,
		metrics:    m,
		catalog:    c,
		auth:       service.NewAuthService(store.Users(), testSecret, time.Hour),
		profiles:   service.NewProfileService(store.Users()),
		sessions:   service.NewSessionService(store.Sessions(), opts.tracks, statsSvc, m, 0),
		stats:      statsSvc,
		plans:      service.NewPlanService(store.Users(), store.Plans(), c, m),
		challenges: service.NewChallengeService(store.Users(), store.Challenges(), store.Sessions(), opts.engine, m, 0),
	}
}

// registerUser creates an account with a completed profile at level.
func (e *testEnv) registerUser(t *testing.T, level domain.FitnessLevel, days ...string) *domain.User {
	t.Helper()
	ctx := context.Background()
	user, err := e.auth.Register(ctx, gofakeit.Name(), gofakeit.Email(), gofakeit.Password(true, true, true, false, false, 12))
	require.NoError(t, err)

	user, err = e.profiles.UpdateProfile(ctx, user.ID, service.ProfileInput{
		Age:           70,
		Level:         string(level),
		AvailableDays: days,
	})
	require.NoError(t, err)
	return user
}
