package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/repository/memory"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func activeCount(t *testing.T, repo repository.PlanRepository, userID string) int {
	t.Helper()
	plans, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	n := 0
	for _, p := range plans {
		if p.Active {
			n++
		}
	}
	return n
}

func TestPlans_OneActivePerUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Plans()

	assert.Equal(t, 0, activeCount(t, repo, "user_a"))

	var ids []string
	for i := 0; i < 5; i++ {
		p := &domain.WorkoutPlan{UserID: "user_a", Name: gofakeit.Word()}
		require.NoError(t, repo.CreateActive(ctx, p))
		ids = append(ids, p.ID)
		assert.Equal(t, 1, activeCount(t, repo, "user_a"))
	}
	other := &domain.WorkoutPlan{UserID: "user_b", Name: "b"}
	require.NoError(t, repo.CreateActive(ctx, other))

	require.NoError(t, repo.Activate(ctx, "user_a", ids[1]))
	assert.Equal(t, 1, activeCount(t, repo, "user_a"))
	assert.Equal(t, 1, activeCount(t, repo, "user_b"))

	active, err := repo.GetActive(ctx, "user_a")
	require.NoError(t, err)
	assert.Equal(t, ids[1], active.ID)

	err = repo.Activate(ctx, "user_a", other.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 1, activeCount(t, repo, "user_a"))
}

func TestPlans_ConcurrentCreateActive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Plans()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.CreateActive(ctx, &domain.WorkoutPlan{UserID: "user_a", Name: "p"})
		}()
	}
	wg.Wait()

	plans, err := repo.ListByUser(ctx, "user_a")
	require.NoError(t, err)
	assert.Len(t, plans, 20)
	assert.Equal(t, 1, activeCount(t, repo, "user_a"))
}

func TestPlans_OwnershipAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Plans()

	p := &domain.WorkoutPlan{
		UserID: "user_a",
		Name:   "p",
		Days: []domain.PlanDay{{
			Label:      "Lun",
			Kind:       domain.DayKindCircuit,
			Activities: []domain.Activity{{ExerciseID: "ex_superman", Sets: 2}},
		}},
	}
	require.NoError(t, repo.CreateActive(ctx, p))

	_, err := repo.GetByID(ctx, "user_b", p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.GetByID(ctx, "user_a", p.ID)
	require.NoError(t, err)
	got.Days[0].Activities[0].Sets = 3

	again, err := repo.GetByID(ctx, "user_a", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Days[0].Activities[0].Sets, "stored plan must not alias returned copies")

	require.NoError(t, repo.UpdateDays(ctx, "user_a", p.ID, got.Days))
	again, err = repo.GetByID(ctx, "user_a", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Days[0].Activities[0].Sets)

	assert.ErrorIs(t, repo.UpdateDays(ctx, "user_b", p.ID, got.Days), repository.ErrNotFound)
}

func TestSessions_Query(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Sessions()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.CreateWalk(ctx, &domain.WalkSession{
			UserID:     "user_a",
			DistanceKm: float64(i),
			Date:       base.Add(-time.Duration(i) * 24 * time.Hour),
		}))
	}
	require.NoError(t, repo.CreateWalk(ctx, &domain.WalkSession{UserID: "user_b", Date: base}))

	all, err := repo.ListWalks(ctx, "user_a", repository.SessionQuery{})
	require.NoError(t, err)
	require.Len(t, all, 10)
	assert.Equal(t, 0.0, all[0].DistanceKm)
	assert.Equal(t, 9.0, all[9].DistanceKm)

	since := base.Add(-3 * 24 * time.Hour)
	recent, err := repo.ListWalks(ctx, "user_a", repository.SessionQuery{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 4)

	capped, err := repo.ListWalks(ctx, "user_a", repository.SessionQuery{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, capped, 3)

	_, err = repo.GetWalkByID(ctx, "user_b", all[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	circuits, err := repo.ListCircuits(ctx, "user_a", repository.SessionQuery{})
	require.NoError(t, err)
	assert.NotNil(t, circuits)
	assert.Empty(t, circuits)
}

func TestSessions_CircuitIsCopied(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Sessions()

	in := &domain.CircuitSession{
		UserID: "user_a",
		Exercises: []domain.ExerciseLog{{
			ExerciseID: "ex_squat_sedia",
			SetRecords: []domain.SetRecord{{Number: 1, Reps: 10, WeightKg: 2, Completed: true}},
		}},
		Date: time.Now(),
	}
	require.NoError(t, repo.CreateCircuit(ctx, in))

	// mutating the logged input leaves the stored session alone
	in.Exercises[0].SetRecords[0].Reps = 99

	got, err := repo.ListCircuits(ctx, "user_a", repository.SessionQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Exercises[0].SetRecords[0].Reps)

	// and so does mutating a read result
	got[0].Exercises[0].SetRecords[0].WeightKg = 50
	again, err := repo.ListCircuits(ctx, "user_a", repository.SessionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, again[0].Exercises[0].SetRecords[0].WeightKg)
}

func TestChallenges_UpdateOnlyPending(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Challenges()

	require.NoError(t, repo.CreateMany(ctx, []domain.Challenge{
		{ID: "sfida_1", UserID: "user_a", TargetValue: 5},
		{ID: "sfida_2", UserID: "user_a", TargetValue: 5, Completed: true},
	}))

	ok, err := repo.UpdateProgress(ctx, &domain.Challenge{ID: "sfida_1", UserID: "user_a", CurrentValue: 5, Completed: true})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateProgress(ctx, &domain.Challenge{ID: "sfida_1", UserID: "user_a", CurrentValue: 1})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateProgress(ctx, &domain.Challenge{ID: "sfida_2", UserID: "user_a", Expired: true})
	require.NoError(t, err)
	assert.False(t, ok)

	pending, err := repo.ListPending(ctx, "user_a")
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := repo.ListByUser(ctx, "user_a")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, ch := range all {
		assert.True(t, ch.Completed)
		assert.False(t, ch.Expired)
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()

	email := gofakeit.Email()
	u := &domain.User{Email: email, PasswordHash: "x", Name: gofakeit.Name()}
	id, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = repo.Create(ctx, &domain.User{Email: email, PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	got.Age = 75
	got.Level = domain.LevelIntermediate
	require.NoError(t, repo.UpdateProfile(ctx, got))

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 75, got.Age)
	assert.Equal(t, domain.LevelIntermediate, got.Level)

	assert.ErrorIs(t, repo.UpdateProfile(ctx, &domain.User{ID: "user_missing"}), repository.ErrNotFound)
}
