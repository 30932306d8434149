package repository

import (
	"context"
	"time"

	"waltgoat/walker-app/internal/domain"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionQuery bounds a session history read. Results are always sorted most
// recent first.
type SessionQuery struct {
	Since *time.Time // inclusive lower bound on the session date
	Limit int        // zero means no cap
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// ExerciseRepository stores the catalog dataset. It is only read at startup.
type ExerciseRepository interface {
	ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error)
	// SeedIfEmpty inserts defs when the collection is empty and reports how
	// many were written.
	SeedIfEmpty(ctx context.Context, defs []domain.ExerciseDefinition) (int, error)
}

// SessionRepository is the append-only session log.
type SessionRepository interface {
	CreateWalk(ctx context.Context, walk *domain.WalkSession) error
	CreateCircuit(ctx context.Context, circuit *domain.CircuitSession) error
	GetWalkByID(ctx context.Context, userID, walkID string) (*domain.WalkSession, error)
	ListWalks(ctx context.Context, userID string, q SessionQuery) ([]domain.WalkSession, error)
	ListCircuits(ctx context.Context, userID string, q SessionQuery) ([]domain.CircuitSession, error)
}

type PlanRepository interface {
	// CreateActive stores plan as the user's only active plan. Deactivating
	// the previous plans and inserting the new one happen atomically.
	CreateActive(ctx context.Context, plan *domain.WorkoutPlan) error
	// Activate makes planID the user's only active plan, atomically.
	Activate(ctx context.Context, userID, planID string) error
	GetByID(ctx context.Context, userID, planID string) (*domain.WorkoutPlan, error)
	GetActive(ctx context.Context, userID string) (*domain.WorkoutPlan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
	// UpdateDays replaces the days of a plan owned by userID.
	UpdateDays(ctx context.Context, userID, planID string, days []domain.PlanDay) error
}

type ChallengeRepository interface {
	CreateMany(ctx context.Context, challenges []domain.Challenge) error
	ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error)
	ListPending(ctx context.Context, userID string) ([]domain.Challenge, error)
	// UpdateProgress writes the evaluation result of ch, but only while the
	// stored challenge is still pending. It reports whether a write happened.
	UpdateProgress(ctx context.Context, ch *domain.Challenge) (bool, error)
}
