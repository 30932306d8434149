// Package challenge creates weekly goals and moves them through their
// pending -> completed | expired lifecycle.
package challenge

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/stats"
)

// PerBatch is how many challenges Generate hands out at once.
const PerBatch = 3

// Transition is the outcome of evaluating a challenge.
type Transition string

const (
	Unchanged Transition = "unchanged"
	Progress  Transition = "progress"
	Completed Transition = "completed"
	Expired   Transition = "expired"
)

// Engine is safe for concurrent use.
type Engine struct {
	templates []Template
	now       func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

type Option func(*Engine)

// WithRand makes template selection reproducible.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithTemplates(t []Template) Option {
	return func(e *Engine) { e.templates = t }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		templates: DefaultTemplates(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

func (e *Engine) Now() time.Time {
	return e.now().UTC()
}

// Generate picks PerBatch distinct templates at random and instantiates them
// for the profile. Fewer templates than PerBatch yields one challenge each.
func (e *Engine) Generate(profile domain.UserProfile) []domain.Challenge {
	now := e.Now()
	n := min(PerBatch, len(e.templates))
	tier := tierFor(domain.ParseFitnessLevel(string(profile.Level)))

	e.mu.Lock()
	picked := e.rng.Perm(len(e.templates))[:n]
	e.mu.Unlock()

	out := make([]domain.Challenge, 0, n)
	for _, i := range picked {
		t := e.templates[i]
		target := t.target(tier)
		out = append(out, domain.Challenge{
			ID:          domain.NewID(domain.PrefixChallenge),
			UserID:      profile.UserID,
			Name:        t.Name,
			Description: fmt.Sprintf(t.Description, target),
			Type:        t.Type,
			TargetField: t.TargetField,
			TargetValue: target,
			ExpiresAt:   now.Add(t.Duration),
			Icon:        t.Icon,
			Difficulty:  tier,
			CreatedAt:   now,
		})
	}
	return out
}

// Evaluate applies the current weekly metrics to ch. Terminal challenges are
// returned untouched. An expired deadline wins over any progress.
func Evaluate(ch domain.Challenge, metrics stats.Metrics, now time.Time) (domain.Challenge, Transition) {
	if ch.Terminal() {
		return ch, Unchanged
	}
	if now.After(ch.ExpiresAt) {
		ch.Expired = true
		return ch, Expired
	}

	current := metrics[ch.TargetField]
	changed := current != ch.CurrentValue
	ch.CurrentValue = current
	if current >= ch.TargetValue {
		ch.Completed = true
		at := now.UTC()
		ch.CompletedAt = &at
		return ch, Completed
	}
	if changed {
		return ch, Progress
	}
	return ch, Unchanged
}

func tierFor(level domain.FitnessLevel) domain.Difficulty {
	switch level {
	case domain.LevelBeginner:
		return domain.DifficultyEasy
	case domain.LevelIntermediate:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}

func (t Template) target(d domain.Difficulty) float64 {
	switch d {
	case domain.DifficultyEasy:
		return t.Easy
	case domain.DifficultyMedium:
		return t.Medium
	default:
		return t.Hard
	}
}
