package challenge_test

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"waltgoat/walker-app/internal/challenge"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func TestGenerate_ThreeDistinct(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		e := challenge.NewEngine(
			challenge.WithRand(rand.New(rand.NewPCG(seed, seed+1))),
			challenge.WithClock(fixedClock),
		)
		got := e.Generate(domain.UserProfile{UserID: "user_1", Level: domain.LevelIntermediate})
		require.Len(t, got, 3)

		seen := map[string]bool{}
		for _, ch := range got {
			assert.False(t, seen[ch.Type], "duplicate template %s", ch.Type)
			seen[ch.Type] = true

			assert.Equal(t, "user_1", ch.UserID)
			assert.Equal(t, domain.DifficultyMedium, ch.Difficulty)
			assert.Equal(t, now.Add(7*24*time.Hour), ch.ExpiresAt)
			assert.Zero(t, ch.CurrentValue)
			assert.False(t, ch.Completed)
			assert.False(t, ch.Expired)
			assert.NotEmpty(t, ch.ID)
		}
	}
}

func TestGenerate_TierByLevel(t *testing.T) {
	only := []challenge.Template{challenge.DefaultTemplates()[0]}
	e := challenge.NewEngine(challenge.WithTemplates(only), challenge.WithClock(fixedClock))

	tests := []struct {
		level  domain.FitnessLevel
		target float64
		tier   domain.Difficulty
		desc   string
	}{
		{domain.LevelBeginner, 5, domain.DifficultyEasy, "Cammina 5 km in 7 giorni"},
		{domain.LevelIntermediate, 10, domain.DifficultyMedium, "Cammina 10 km in 7 giorni"},
		{domain.LevelAdvanced, 15, domain.DifficultyHard, "Cammina 15 km in 7 giorni"},
	}
	for _, tt := range tests {
		got := e.Generate(domain.UserProfile{Level: tt.level})
		require.Len(t, got, 1)
		assert.Equal(t, tt.target, got[0].TargetValue)
		assert.Equal(t, tt.tier, got[0].Difficulty)
		assert.Equal(t, tt.desc, got[0].Description)
		assert.Equal(t, "footprints", got[0].Icon)
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	e := challenge.NewEngine(challenge.WithClock(fixedClock))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := e.Generate(domain.UserProfile{UserID: "user_1", Level: domain.LevelBeginner})
				if !assert.Len(t, got, challenge.PerBatch) {
					return
				}
				assert.NotEqual(t, got[0].Type, got[1].Type)
				assert.NotEqual(t, got[1].Type, got[2].Type)
				assert.NotEqual(t, got[0].Type, got[2].Type)
			}
		}()
	}
	wg.Wait()
}

func TestDefaultTemplates(t *testing.T) {
	templates := challenge.DefaultTemplates()
	require.Len(t, templates, 7)
	fields := map[string]bool{}
	for _, tpl := range templates {
		fields[tpl.TargetField] = true
		assert.Equal(t, 7*24*time.Hour, tpl.Duration)
		assert.Less(t, tpl.Easy, tpl.Medium)
		assert.Less(t, tpl.Medium, tpl.Hard)
	}
	assert.Len(t, fields, 7)
}

func pending(field string, target float64) domain.Challenge {
	return domain.Challenge{
		ID:          "sfida_1",
		TargetField: field,
		TargetValue: target,
		ExpiresAt:   now.Add(24 * time.Hour),
	}
}

func TestEvaluate(t *testing.T) {
	ch := pending(stats.FieldKm, 10)

	ch, tr := challenge.Evaluate(ch, stats.Metrics{stats.FieldKm: 4}, now)
	assert.Equal(t, challenge.Progress, tr)
	assert.Equal(t, 4.0, ch.CurrentValue)
	assert.False(t, ch.Completed)

	// the window slides, so progress may go down
	ch, tr = challenge.Evaluate(ch, stats.Metrics{stats.FieldKm: 2.5}, now)
	assert.Equal(t, challenge.Progress, tr)
	assert.Equal(t, 2.5, ch.CurrentValue)

	ch, tr = challenge.Evaluate(ch, stats.Metrics{stats.FieldKm: 2.5}, now)
	assert.Equal(t, challenge.Unchanged, tr)

	ch, tr = challenge.Evaluate(ch, stats.Metrics{stats.FieldKm: 10}, now)
	assert.Equal(t, challenge.Completed, tr)
	assert.True(t, ch.Completed)
	require.NotNil(t, ch.CompletedAt)
	assert.Equal(t, now, *ch.CompletedAt)
}

func TestEvaluate_Expires(t *testing.T) {
	ch := pending(stats.FieldSteps, 1000)

	ch, tr := challenge.Evaluate(ch, stats.Metrics{stats.FieldSteps: 5000}, now.Add(25*time.Hour))
	assert.Equal(t, challenge.Expired, tr)
	assert.True(t, ch.Expired)
	assert.False(t, ch.Completed)
	assert.Zero(t, ch.CurrentValue)
}

func TestEvaluate_TerminalNeverChanges(t *testing.T) {
	completed := pending(stats.FieldKm, 5)
	completed, _ = challenge.Evaluate(completed, stats.Metrics{stats.FieldKm: 6}, now)
	require.True(t, completed.Completed)

	expired := pending(stats.FieldKm, 5)
	expired, _ = challenge.Evaluate(expired, stats.Metrics{}, now.Add(48*time.Hour))
	require.True(t, expired.Expired)

	inputs := []struct {
		metrics stats.Metrics
		at      time.Time
	}{
		{stats.Metrics{stats.FieldKm: 0}, now},
		{stats.Metrics{stats.FieldKm: 100}, now},
		{stats.Metrics{stats.FieldKm: 0}, now.Add(30 * 24 * time.Hour)},
		{stats.Metrics{stats.FieldKm: 100}, now.Add(30 * 24 * time.Hour)},
	}
	for _, in := range inputs {
		got, tr := challenge.Evaluate(completed, in.metrics, in.at)
		assert.Equal(t, challenge.Unchanged, tr)
		assert.Equal(t, completed, got)

		got, tr = challenge.Evaluate(expired, in.metrics, in.at)
		assert.Equal(t, challenge.Unchanged, tr)
		assert.Equal(t, expired, got)
	}
}
