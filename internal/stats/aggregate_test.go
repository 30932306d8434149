package stats_test

import (
	"testing"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/stats"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

func walkAt(t time.Time, km float64, steps int) domain.WalkSession {
	return domain.WalkSession{
		ID:          domain.NewID(domain.PrefixWalk),
		UserID:      "user_1",
		DistanceKm:  km,
		DurationSec: int(km * 12 * 60),
		Steps:       steps,
		AvgSpeedKmh: 5,
		Date:        t,
	}
}

func circuitAt(t time.Time, minutes int, logs ...domain.ExerciseLog) domain.CircuitSession {
	return domain.CircuitSession{
		ID:              domain.NewID(domain.PrefixCircuit),
		UserID:          "user_1",
		DurationMinutes: minutes,
		Exercises:       logs,
		Date:            t,
	}
}

func TestAggregate_Empty(t *testing.T) {
	r := stats.Aggregate(nil, nil, now)

	assert.Equal(t, stats.Totals{}, r.Totals)
	assert.Equal(t, stats.Window{}, r.Weekly)
	assert.Equal(t, stats.Window{}, r.Monthly)
	assert.Equal(t, stats.Records{}, r.Records)
	assert.Equal(t, 0, r.Streak)
	assert.NotNil(t, r.WalkSeries)
	assert.Empty(t, r.WalkSeries)
	assert.NotNil(t, r.CircuitSeries)
	assert.Empty(t, r.CircuitSeries)
	assert.Empty(t, r.VolumePerExercise)

	require.Len(t, r.DailySeries, 14)
	assert.Equal(t, "2025-02-25", r.DailySeries[0].Date)
	assert.Equal(t, "2025-03-10", r.DailySeries[13].Date)
	for _, p := range r.DailySeries {
		assert.Zero(t, p.Km)
		assert.Zero(t, p.Steps)
		assert.Zero(t, p.Circuits)
		assert.Zero(t, p.Calories)
	}
}

func TestAggregate_Volume(t *testing.T) {
	circuits := []domain.CircuitSession{
		circuitAt(now.Add(-time.Hour), 30,
			domain.ExerciseLog{
				ExerciseID: "ex_bicipiti_manubri",
				SetRecords: []domain.SetRecord{
					{Number: 1, Reps: 12, WeightKg: 2.0, Completed: true},
					{Number: 2, Reps: 10, WeightKg: 2.5, Completed: true},
					{Number: 3, Reps: 8, WeightKg: 3.0, Completed: false},
				},
				PlannedSets: 3, PlannedReps: 10, PlannedWeightKg: 2.0,
			},
			domain.ExerciseLog{
				ExerciseID: "ex_bicipiti_elastico",
				BandColor:  domain.BandRed,
				SetRecords: []domain.SetRecord{
					{Number: 1, Reps: 15, Completed: true},
					{Number: 2, Reps: 15, Completed: true},
				},
			},
		),
		circuitAt(now.Add(-50*24*time.Hour), 20,
			domain.ExerciseLog{ExerciseID: "ex_rematore_manubri", Sets: 3, Reps: 10, WeightKg: 3.0},
			domain.ExerciseLog{ExerciseID: "ex_pull_elastico", Sets: 2, Reps: 12, BandColor: domain.BandYellow},
		),
	}

	r := stats.Aggregate(nil, circuits, now)

	// 12*2 + 10*2.5 + 2*15*3 + 3*10*3 + 2*12*1.5
	assert.InDelta(t, 265.0, r.Totals.VolumeKg, 0.001)
	assert.InDelta(t, 139.0, r.Weekly.VolumeKg, 0.001)
	assert.InDelta(t, 139.0, r.Monthly.VolumeKg, 0.001)

	assert.InDelta(t, 49.0, r.VolumePerExercise["ex_bicipiti_manubri"], 0.001)
	assert.InDelta(t, 90.0, r.VolumePerExercise["ex_bicipiti_elastico"], 0.001)
	assert.InDelta(t, 90.0, r.VolumePerExercise["ex_rematore_manubri"], 0.001)
	assert.InDelta(t, 36.0, r.VolumePerExercise["ex_pull_elastico"], 0.001)

	assert.Equal(t, stats.ExerciseBest{MaxWeightKg: 2.5, MaxReps: 12}, r.ExerciseBests["ex_bicipiti_manubri"])
	assert.Equal(t, stats.ExerciseBest{MaxWeightKg: 3.0, MaxReps: 15}, r.ExerciseBests["ex_bicipiti_elastico"])
	assert.Equal(t, stats.ExerciseBest{MaxWeightKg: 3.0, MaxReps: 10}, r.ExerciseBests["ex_rematore_manubri"])

	assert.Equal(t, 2, r.Totals.Circuits)
	assert.Equal(t, 50, r.Totals.CircuitMinutes)
	assert.Equal(t, 25.0, r.Averages.CircuitDurationMin)

	require.Len(t, r.CircuitSeries, 2)
	assert.InDelta(t, 126.0, r.CircuitSeries[0].VolumeKg, 0.001)
	assert.InDelta(t, 139.0, r.CircuitSeries[1].VolumeKg, 0.001)
}

func TestAggregate_WindowsAndCalories(t *testing.T) {
	walks := []domain.WalkSession{
		walkAt(now.Add(-40*24*time.Hour), 4.0, 5000),
		walkAt(now.Add(-7*24*time.Hour), 2.5, 3000),
		walkAt(now.Add(-20*24*time.Hour), 3.0, 4000),
	}
	circuits := []domain.CircuitSession{
		circuitAt(now.Add(-2*24*time.Hour), 30),
	}

	r := stats.Aggregate(walks, circuits, now)

	assert.Equal(t, 9.5, r.Totals.Km)
	assert.Equal(t, 12000, r.Totals.Steps)
	assert.Equal(t, 3, r.Totals.Walks)
	assert.Equal(t, 4, r.Totals.ActiveDays)
	// 60 * 9.5 + 5 * 30
	assert.Equal(t, 720, r.Totals.Calories)

	assert.Equal(t, 2.5, r.Weekly.Km)
	assert.Equal(t, 1, r.Weekly.Walks)
	assert.Equal(t, 1, r.Weekly.Circuits)
	assert.Equal(t, 300, r.Weekly.Calories)

	assert.Equal(t, 5.5, r.Monthly.Km)
	assert.Equal(t, 2, r.Monthly.Walks)
	assert.Equal(t, 480, r.Monthly.Calories)

	assert.Equal(t, 4.0, r.Records.BestKm)
	assert.Equal(t, 5000, r.Records.BestSteps)
	assert.Equal(t, 48.0, r.Records.LongestWalkMin)
	assert.InDelta(t, 3.2, r.Averages.KmPerWalk, 0.001)
}

func TestAggregate_Streak(t *testing.T) {
	today := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	walks := []domain.WalkSession{
		walkAt(today, 1, 1000),
		walkAt(time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), 1, 1000),
		walkAt(time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC), 1, 1000),
	}
	circuits := []domain.CircuitSession{
		circuitAt(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), 20),
	}

	r := stats.Aggregate(walks, circuits, now)
	assert.Equal(t, 3, r.Streak)

	r = stats.Aggregate(walks[1:], circuits, now)
	assert.Equal(t, 0, r.Streak)
}

func TestAggregate_StreakHorizon(t *testing.T) {
	var walks []domain.WalkSession
	for i := 0; i < 45; i++ {
		walks = append(walks, walkAt(now.Add(-time.Duration(i)*24*time.Hour), 1, 100))
	}

	r := stats.Aggregate(walks, nil, now)
	assert.Equal(t, 30, r.Streak)
}

func TestAggregate_SeriesAreCappedAndChronological(t *testing.T) {
	var walks []domain.WalkSession
	for i := 0; i < 35; i++ {
		walks = append(walks, walkAt(now.Add(-time.Duration(i)*24*time.Hour), gofakeit.Float64Range(1, 5), gofakeit.Number(500, 8000)))
	}
	gofakeit.ShuffleAnySlice(walks)

	r := stats.Aggregate(walks, nil, now)

	require.Len(t, r.WalkSeries, 30)
	assert.Equal(t, "2025-02-09", r.WalkSeries[0].Date)
	assert.Equal(t, "2025-03-10", r.WalkSeries[29].Date)
	for i := 1; i < len(r.WalkSeries); i++ {
		assert.Less(t, r.WalkSeries[i-1].Date, r.WalkSeries[i].Date)
	}

	require.Len(t, r.DailySeries, 14)
	for _, p := range r.DailySeries {
		assert.Positive(t, p.Steps)
	}
}

func TestAggregate_InputIsNotReordered(t *testing.T) {
	walks := []domain.WalkSession{
		walkAt(now.Add(-48*time.Hour), 1, 100),
		walkAt(now.Add(-time.Hour), 2, 200),
	}
	first := walks[0].ID

	stats.Aggregate(walks, nil, now)
	assert.Equal(t, first, walks[0].ID)
}

func TestWeeklyMetrics(t *testing.T) {
	walks := []domain.WalkSession{
		walkAt(now.Add(-time.Hour), 2.0, 3000),
		walkAt(now.Add(-24*time.Hour), 1.5, 2000),
		walkAt(now.Add(-10*24*time.Hour), 9.0, 12000),
	}
	walks[0].AvgSpeedKmh = 5.6
	circuits := []domain.CircuitSession{
		circuitAt(now.Add(-3*24*time.Hour), 20,
			domain.ExerciseLog{ExerciseID: "ex_rematore_manubri", Sets: 3, Reps: 10, WeightKg: 3.0},
		),
	}

	m := stats.WeeklyMetrics(walks, circuits, now)

	assert.Equal(t, 3.5, m[stats.FieldKm])
	assert.Equal(t, 5000.0, m[stats.FieldSteps])
	assert.Equal(t, 1.0, m[stats.FieldCircuits])
	assert.Equal(t, 90.0, m[stats.FieldVolume])
	assert.Equal(t, 2.0, m[stats.FieldStreak])
	assert.Equal(t, 5.6, m[stats.FieldSpeed])
	// 60 * 3.5 + 5 * 20
	assert.Equal(t, 310.0, m[stats.FieldCalories])
}
