package service

import (
	"context"

	"waltgoat/walker-app/internal/challenge"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/stats"
	"waltgoat/walker-app/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// ProgressResult reports a progress check over the pending challenges.
type ProgressResult struct {
	Checked    int                `json:"controllate"`
	Completed  []domain.Challenge `json:"completate"`
	Expired    int                `json:"scadute"`
	Challenges []domain.Challenge `json:"sfide"`
}

type ChallengeService interface {
	GenerateChallenges(ctx context.Context, userID string) ([]domain.Challenge, error)
	ListChallenges(ctx context.Context, userID string) ([]domain.Challenge, error)
	CheckProgress(ctx context.Context, userID string) (*ProgressResult, error)
}

type challengeService struct {
	userRepo      repository.UserRepository
	challengeRepo repository.ChallengeRepository
	sessionRepo   repository.SessionRepository
	engine        *challenge.Engine
	metrics       *metrics.Manager
	sessionLimit  int
}

func NewChallengeService(
	userRepo repository.UserRepository,
	challengeRepo repository.ChallengeRepository,
	sessionRepo repository.SessionRepository,
	engine *challenge.Engine,
	m *metrics.Manager,
	sessionLimit int,
) ChallengeService {
	if engine == nil {
		engine = challenge.NewEngine()
	}
	if sessionLimit <= 0 {
		sessionLimit = DefaultSessionLimit
	}
	return &challengeService{
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
		sessionRepo:   sessionRepo,
		engine:        engine,
		metrics:       m,
		sessionLimit:  sessionLimit,
	}
}

// GenerateChallenges hands the user a fresh batch. Challenges already pending
// are kept.
func (s *challengeService) GenerateChallenges(ctx context.Context, userID string) ([]domain.Challenge, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, ErrUserNotFound)
	}

	batch := s.engine.Generate(user.Profile())
	if err := s.challengeRepo.CreateMany(ctx, batch); err != nil {
		return nil, storeError(err, nil)
	}

	log.WithFields(log.Fields{"user_id": userID, "count": len(batch)}).Info("challenges generated")
	return batch, nil
}

func (s *challengeService) ListChallenges(ctx context.Context, userID string) ([]domain.Challenge, error) {
	list, err := s.challengeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, nil)
	}
	return list, nil
}

// CheckProgress evaluates every pending challenge against the trailing week.
// Stores only accept the write while the challenge is still pending, so a
// concurrent check cannot undo a terminal state.
func (s *challengeService) CheckProgress(ctx context.Context, userID string) (*ProgressResult, error) {
	pending, err := s.challengeRepo.ListPending(ctx, userID)
	if err != nil {
		return nil, storeError(err, nil)
	}

	result := &ProgressResult{
		Completed:  []domain.Challenge{},
		Challenges: []domain.Challenge{},
	}
	if len(pending) == 0 {
		return result, nil
	}

	now := s.engine.Now()
	since := now.Add(-stats.WeekWindow)
	q := repository.SessionQuery{Since: &since, Limit: s.sessionLimit}
	walks, err := s.sessionRepo.ListWalks(ctx, userID, q)
	if err != nil {
		return nil, storeError(err, nil)
	}
	circuits, err := s.sessionRepo.ListCircuits(ctx, userID, q)
	if err != nil {
		return nil, storeError(err, nil)
	}
	weekly := stats.WeeklyMetrics(walks, circuits, now)

	for _, ch := range pending {
		next, transition := challenge.Evaluate(ch, weekly, now)
		result.Checked++
		if transition == challenge.Unchanged {
			result.Challenges = append(result.Challenges, next)
			continue
		}

		written, err := s.challengeRepo.UpdateProgress(ctx, &next)
		if err != nil {
			return nil, storeError(err, nil)
		}
		if !written {
			// another check got there first
			log.Debugf("challenge %s no longer pending", ch.ID)
			continue
		}
		result.Challenges = append(result.Challenges, next)

		switch transition {
		case challenge.Completed:
			result.Completed = append(result.Completed, next)
			s.countTransition(transition)
		case challenge.Expired:
			result.Expired++
			s.countTransition(transition)
		}
	}

	log.WithFields(log.Fields{
		"user_id":   userID,
		"checked":   result.Checked,
		"completed": len(result.Completed),
		"expired":   result.Expired,
	}).Debug("challenge progress checked")

	return result, nil
}

func (s *challengeService) countTransition(t challenge.Transition) {
	if s.metrics != nil {
		s.metrics.CounterChallengeTransitions.WithLabelValues(string(t)).Inc()
	}
}
