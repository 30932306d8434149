package service_test

import (
	"context"
	"sync"
	"testing"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/planner"
	"waltgoat/walker-app/internal/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePlans(t *testing.T, svc service.PlanService, userID string) []domain.WorkoutPlan {
	t.Helper()
	plans, err := svc.ListPlans(context.Background(), userID)
	require.NoError(t, err)
	var active []domain.WorkoutPlan
	for _, p := range plans {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

func TestPlanService_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner, "Lunedì", "Mercoledì", "Venerdì")

	plan, err := env.plans.GeneratePlan(ctx, user.ID, planner.Options{Energy: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.True(t, plan.Active)
	assert.Equal(t, domain.PlanKindGenerated, plan.Kind)
	assert.Equal(t, "Piano Automatico - Fascia 70", plan.Name)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, 25, plan.Days[0].Activities[0].DurationMinutes)
	assert.Equal(t, 2.0, plan.Days[0].Activities[0].DistanceKm)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CounterPlansGenerated))

	active, err := env.plans.GetActivePlan(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, active.ID)
}

func TestPlanService_GeneratePlan_Errors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner)

	_, err := env.plans.GeneratePlan(ctx, user.ID, planner.Options{Energy: 11})
	assert.ErrorIs(t, err, service.ErrValidationFailed)
	assert.ErrorIs(t, err, planner.ErrInvalidOptions)

	_, err = env.plans.GeneratePlan(ctx, user.ID, planner.Options{FocusCategories: []domain.Category{"Yoga"}})
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	_, err = env.plans.GeneratePlan(ctx, "user_missing", planner.Options{})
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = env.plans.GetActivePlan(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrNoActivePlan)
}

func TestPlanService_OneActivePlan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelIntermediate, "Lunedì", "Martedì")

	first, err := env.plans.GeneratePlan(ctx, user.ID, planner.Options{})
	require.NoError(t, err)
	_, err = env.plans.GeneratePlan(ctx, user.ID, planner.Options{Energy: 8})
	require.NoError(t, err)
	custom, err := env.plans.CreatePlan(ctx, user.ID, service.CustomPlanInput{
		Name: "Il mio piano",
		Days: []domain.PlanDay{{Label: "Sabato", Kind: domain.DayKindWalk, Activities: []domain.Activity{{Name: "Camminata", DurationMinutes: 20}}}},
	})
	require.NoError(t, err)

	active := activePlans(t, env.plans, user.ID)
	require.Len(t, active, 1)
	assert.Equal(t, custom.ID, active[0].ID)

	_, err = env.plans.ActivatePlan(ctx, user.ID, first.ID)
	require.NoError(t, err)
	active = activePlans(t, env.plans, user.ID)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	plans, err := env.plans.ListPlans(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestPlanService_OneActivePlan_Concurrent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.plans.GeneratePlan(ctx, user.ID, planner.Options{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, activePlans(t, env.plans, user.ID), 1)
}

func TestPlanService_ActivatePlan_OtherUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	owner := env.registerUser(t, domain.LevelBeginner)
	other := env.registerUser(t, domain.LevelBeginner)

	plan, err := env.plans.GeneratePlan(ctx, owner.ID, planner.Options{})
	require.NoError(t, err)

	_, err = env.plans.ActivatePlan(ctx, other.ID, plan.ID)
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
	assert.Empty(t, activePlans(t, env.plans, other.ID))
}

func TestPlanService_CreatePlan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner)

	plan, err := env.plans.CreatePlan(ctx, user.ID, service.CustomPlanInput{
		Name: " Forza ",
		Days: []domain.PlanDay{{
			Label: "Martedì",
			Kind:  domain.DayKindCircuit,
			Activities: []domain.Activity{
				{ExerciseID: "ex_squat_sedia", Sets: 4},
				{Name: "Esercizio libero"},
			},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Forza", plan.Name)
	assert.Equal(t, domain.PlanKindCustom, plan.Kind)

	squat, ok := env.catalog.ByID("ex_squat_sedia")
	require.True(t, ok)
	acts := plan.Days[0].Activities
	assert.Equal(t, squat.Name, acts[0].Name)
	assert.Equal(t, 4, acts[0].Sets)
	assert.Equal(t, squat.DefaultReps, acts[0].Reps)
	assert.Equal(t, squat.Technique, acts[0].Technique)
	require.NotNil(t, acts[0].Variants)
	assert.Equal(t, 1, acts[1].Sets)

	bad := []service.CustomPlanInput{
		{Name: "", Days: plan.Days},
		{Name: "x"},
		{Name: "x", Days: []domain.PlanDay{{Label: "Lun", Kind: "nuoto"}}},
		{Name: "x", Days: []domain.PlanDay{{Label: "", Kind: domain.DayKindWalk}}},
		{Name: "x", Days: []domain.PlanDay{{Label: "Lun", Kind: domain.DayKindWalk, Activities: []domain.Activity{{Name: "c", DurationMinutes: -1}}}}},
		{Name: "x", Days: []domain.PlanDay{{Label: "Lun", Kind: domain.DayKindCircuit, Activities: []domain.Activity{{}}}}},
	}
	for i, in := range bad {
		_, err := env.plans.CreatePlan(ctx, user.ID, in)
		assert.ErrorIs(t, err, service.ErrValidationFailed, "case %d", i)
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestPlanService_UpdatePlanActivity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{})
	user := env.registerUser(t, domain.LevelBeginner, "Lunedì", "Mercoledì")
	other := env.registerUser(t, domain.LevelBeginner)

	plan, err := env.plans.GeneratePlan(ctx, user.ID, planner.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.DayKindCircuit, plan.Days[1].Kind)
	before := plan.Days[1].Activities[0]

	updated, err := env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, 1, 0, service.ActivityUpdate{
		Sets:     intPtr(3),
		WeightKg: floatPtr(1.5),
	})
	require.NoError(t, err)
	act := updated.Days[1].Activities[0]
	assert.Equal(t, 3, act.Sets)
	assert.Equal(t, 1.5, act.WeightKg)
	assert.Equal(t, before.Reps, act.Reps)

	stored, err := env.plans.GetActivePlan(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Days[1].Activities[0].Sets)

	upd := service.ActivityUpdate{Sets: intPtr(2)}
	_, err = env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, 5, 0, upd)
	assert.ErrorIs(t, err, service.ErrValidationFailed)
	_, err = env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, 1, 99, upd)
	assert.ErrorIs(t, err, service.ErrValidationFailed)
	_, err = env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, -1, 0, upd)
	assert.ErrorIs(t, err, service.ErrValidationFailed)
	_, err = env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, 0, 0, upd)
	assert.ErrorIs(t, err, service.ErrValidationFailed, "walk days are not editable")
	_, err = env.plans.UpdatePlanActivity(ctx, user.ID, plan.ID, 1, 0, service.ActivityUpdate{Reps: intPtr(0)})
	assert.ErrorIs(t, err, service.ErrValidationFailed)
	_, err = env.plans.UpdatePlanActivity(ctx, other.ID, plan.ID, 1, 0, upd)
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
}
