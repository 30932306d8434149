// Package memory is an in-process implementation of the repository
// interfaces. It backs the "memory" storage driver and the service tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"
)

// Store holds every collection behind one lock.
type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	exercises  []domain.ExerciseDefinition
	walks      []domain.WalkSession
	circuits   []domain.CircuitSession
	plans      map[string]domain.WorkoutPlan
	challenges map[string]domain.Challenge
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		plans:      make(map[string]domain.WorkoutPlan),
		challenges: make(map[string]domain.Challenge),
		now:        time.Now,
	}
}

// SetClock replaces the time source used for created/updated stamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }
func (s *Store) Exercises() repository.ExerciseRepository { return (*exerciseRepo)(s) }
func (s *Store) Sessions() repository.SessionRepository { return (*sessionRepo)(s) }
func (s *Store) Plans() repository.PlanRepository { return (*planRepo)(s) }
func (s *Store) Challenges() repository.ChallengeRepository { return (*challengeRepo)(s) }

// --- users ---

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return "", repository.ErrConflict
		}
	}
	user.ID = domain.NewID(domain.PrefixUser)
	now := r.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = cloneUser(*user)
	return user.ID, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r *userRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = user.Name
	stored.Age = user.Age
	stored.WeightKg = user.WeightKg
	stored.HeightCm = user.HeightCm
	stored.Level = user.Level
	stored.Goal = user.Goal
	stored.AvailableDays = slices.Clone(user.AvailableDays)
	stored.JointPain = slices.Clone(user.JointPain)
	stored.ProfileComplete = user.ProfileComplete
	stored.UpdatedAt = r.now().UTC()
	user.UpdatedAt = stored.UpdatedAt
	r.users[user.ID] = stored
	return nil
}

func cloneUser(u domain.User) domain.User {
	u.AvailableDays = slices.Clone(u.AvailableDays)
	u.JointPain = slices.Clone(u.JointPain)
	return u
}

// --- exercises ---

type exerciseRepo Store

func (r *exerciseRepo) ListAll(_ context.Context) ([]domain.ExerciseDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ExerciseDefinition, len(r.exercises))
	for i, d := range r.exercises {
		out[i] = d.Clone()
	}
	return out, nil
}

func (r *exerciseRepo) SeedIfEmpty(_ context.Context, defs []domain.ExerciseDefinition) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.exercises) > 0 {
		return 0, nil
	}
	for _, d := range defs {
		r.exercises = append(r.exercises, d.Clone())
	}
	return len(defs), nil
}

// --- sessions ---

type sessionRepo Store

func (r *sessionRepo) CreateWalk(_ context.Context, walk *domain.WalkSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	walk.ID = domain.NewID(domain.PrefixWalk)
	walk.Date = walk.Date.UTC()
	r.walks = append(r.walks, cloneWalk(*walk))
	return nil
}

func (r *sessionRepo) CreateCircuit(_ context.Context, circuit *domain.CircuitSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	circuit.ID = domain.NewID(domain.PrefixCircuit)
	circuit.Date = circuit.Date.UTC()
	r.circuits = append(r.circuits, cloneCircuit(*circuit))
	return nil
}

func (r *sessionRepo) GetWalkByID(_ context.Context, userID, walkID string) (*domain.WalkSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.walks {
		if w.ID == walkID && w.UserID == userID {
			w = cloneWalk(w)
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *sessionRepo) ListWalks(_ context.Context, userID string, q repository.SessionQuery) ([]domain.WalkSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query(r.walks, userID, q,
		func(w domain.WalkSession) string { return w.UserID },
		func(w domain.WalkSession) time.Time { return w.Date },
		cloneWalk,
	), nil
}

func (r *sessionRepo) ListCircuits(_ context.Context, userID string, q repository.SessionQuery) ([]domain.CircuitSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query(r.circuits, userID, q,
		func(c domain.CircuitSession) string { return c.UserID },
		func(c domain.CircuitSession) time.Time { return c.Date },
		cloneCircuit,
	), nil
}

func query[T any](all []T, userID string, q repository.SessionQuery, owner func(T) string, date func(T) time.Time, clone func(T) T) []T {
	out := []T{}
	for _, s := range all {
		if owner(s) != userID {
			continue
		}
		if q.Since != nil && date(s).Before(*q.Since) {
			continue
		}
		out = append(out, clone(s))
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return date(b).Compare(date(a))
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func cloneWalk(w domain.WalkSession) domain.WalkSession {
	w.Path = slices.Clone(w.Path)
	return w
}

// cloneCircuit copies down to the per-set records so stored sessions share
// nothing with callers.
func cloneCircuit(c domain.CircuitSession) domain.CircuitSession {
	exercises := slices.Clone(c.Exercises)
	for i := range exercises {
		exercises[i].SetRecords = slices.Clone(exercises[i].SetRecords)
	}
	c.Exercises = exercises
	return c
}

// --- plans ---

type planRepo Store

func (r *planRepo) CreateActive(_ context.Context, plan *domain.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	r.deactivateAll(plan.UserID, now)

	plan.ID = domain.NewID(domain.PrefixPlan)
	plan.CreatedAt = now
	plan.UpdatedAt = now
	plan.Active = true
	r.plans[plan.ID] = clonePlan(*plan)
	return nil
}

func (r *planRepo) Activate(_ context.Context, userID, planID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[planID]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	now := r.now().UTC()
	r.deactivateAll(userID, now)
	p.Active = true
	p.UpdatedAt = now
	r.plans[planID] = p
	return nil
}

// deactivateAll must be called with the write lock held.
func (r *planRepo) deactivateAll(userID string, now time.Time) {
	for id, p := range r.plans {
		if p.UserID == userID && p.Active {
			p.Active = false
			p.UpdatedAt = now
			r.plans[id] = p
		}
	}
}

func (r *planRepo) GetByID(_ context.Context, userID, planID string) (*domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[planID]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := clonePlan(p)
	return &out, nil
}

func (r *planRepo) GetActive(_ context.Context, userID string) (*domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plans {
		if p.UserID == userID && p.Active {
			out := clonePlan(p)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *planRepo) ListByUser(_ context.Context, userID string) ([]domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.WorkoutPlan{}
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, clonePlan(p))
		}
	}
	slices.SortFunc(out, func(a, b domain.WorkoutPlan) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *planRepo) UpdateDays(_ context.Context, userID, planID string, days []domain.PlanDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[planID]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	p.Days = days
	p.UpdatedAt = r.now().UTC()
	r.plans[planID] = clonePlan(p)
	return nil
}

func clonePlan(p domain.WorkoutPlan) domain.WorkoutPlan {
	days := make([]domain.PlanDay, len(p.Days))
	for i, d := range p.Days {
		d.Activities = slices.Clone(d.Activities)
		days[i] = d
	}
	p.Days = days
	return p
}

// --- challenges ---

type challengeRepo Store

func (r *challengeRepo) CreateMany(_ context.Context, challenges []domain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range challenges {
		r.challenges[ch.ID] = ch
	}
	return nil
}

func (r *challengeRepo) ListByUser(_ context.Context, userID string) ([]domain.Challenge, error) {
	return r.list(userID, func(domain.Challenge) bool { return true }), nil
}

func (r *challengeRepo) ListPending(_ context.Context, userID string) ([]domain.Challenge, error) {
	return r.list(userID, func(ch domain.Challenge) bool { return !ch.Terminal() }), nil
}

func (r *challengeRepo) list(userID string, keep func(domain.Challenge) bool) []domain.Challenge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Challenge{}
	for _, ch := range r.challenges {
		if ch.UserID == userID && keep(ch) {
			out = append(out, ch)
		}
	}
	slices.SortFunc(out, func(a, b domain.Challenge) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func (r *challengeRepo) UpdateProgress(_ context.Context, ch *domain.Challenge) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.challenges[ch.ID]
	if !ok || stored.UserID != ch.UserID || stored.Terminal() {
		return false, nil
	}
	stored.CurrentValue = ch.CurrentValue
	stored.Completed = ch.Completed
	stored.CompletedAt = ch.CompletedAt
	stored.Expired = ch.Expired
	r.challenges[ch.ID] = stored
	return true, nil
}
