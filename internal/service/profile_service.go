package service

import (
	"context"
	"slices"
	"strings"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

const maxAge = 120

// ProfileInput replaces the training profile of a user.
type ProfileInput struct {
	Name          string
	Age           int
	WeightKg      float64
	HeightCm      float64
	Level         string
	Goal          string
	AvailableDays []string
	JointPain     []domain.JointPain
}

type ProfileService interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, ErrUserNotFound)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile validates in and stores it. The level is normalised, so an
// unknown level ends up as Principiante.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	if in.Age < 0 || in.Age > maxAge {
		return nil, validationError("age must be between 0 and %d", maxAge)
	}
	if in.WeightKg < 0 || in.HeightCm < 0 {
		return nil, validationError("weight and height cannot be negative")
	}
	days, err := normaliseDays(in.AvailableDays)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, ErrUserNotFound)
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	user.Age = in.Age
	user.WeightKg = in.WeightKg
	user.HeightCm = in.HeightCm
	user.Level = domain.ParseFitnessLevel(in.Level)
	user.Goal = strings.TrimSpace(in.Goal)
	user.AvailableDays = days
	user.JointPain = dedupe(in.JointPain)
	user.ProfileComplete = true

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, storeError(err, ErrUserNotFound)
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"level":   user.Level,
		"days":    len(days),
	}).Debug("profile updated")

	user.PasswordHash = ""
	return user, nil
}

// normaliseDays trims the labels and rejects blanks and repeats. Order is kept
// because the plan generator alternates day kinds by position.
func normaliseDays(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, d := range in {
		d = strings.TrimSpace(d)
		if d == "" {
			return nil, validationError("empty day label")
		}
		if slices.ContainsFunc(out, func(seen string) bool { return strings.EqualFold(seen, d) }) {
			return nil, validationError("day %q listed twice", d)
		}
		out = append(out, d)
	}
	return out, nil
}

func dedupe[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
