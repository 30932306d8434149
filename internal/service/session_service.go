package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/storage"
	"waltgoat/walker-app/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultListLimit = 100

	trackContentType = "application/json"
)

// WalkInput is a finished walk as reported by the client.
type WalkInput struct {
	DistanceKm  float64
	DurationSec int
	Steps       int
	// AvgSpeedKmh is derived from distance and duration when zero.
	AvgSpeedKmh float64
	Path        []domain.PathPoint
	Note        string
}

type CircuitInput struct {
	DurationMinutes int
	Exercises       []domain.ExerciseLog
	Note            string
}

// WalkTrack is the GPS path of a walk. Archived paths come back as a
// presigned URL instead of inline points.
type WalkTrack struct {
	WalkID     string             `json:"walk_id"`
	PointCount int                `json:"num_punti"`
	Points     []domain.PathPoint `json:"percorso,omitempty"`
	URL        string             `json:"url,omitempty"`
	ExpiresAt  *time.Time         `json:"scadenza_url,omitempty"`
}

// StatsInvalidator drops whatever was derived from a user's session history.
type StatsInvalidator interface {
	Invalidate(userID string)
}

type SessionService interface {
	LogWalk(ctx context.Context, userID string, in WalkInput) (*domain.WalkSession, error)
	LogCircuit(ctx context.Context, userID string, in CircuitInput) (*domain.CircuitSession, error)
	ListWalks(ctx context.Context, userID string) ([]domain.WalkSession, error)
	ListCircuits(ctx context.Context, userID string) ([]domain.CircuitSession, error)
	GetWalkTrack(ctx context.Context, userID, walkID string) (*WalkTrack, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	// tracks is nil when object storage is disabled
	tracks      storage.ObjectStorage
	invalidator StatsInvalidator
	metrics     *metrics.Manager
	listLimit   int
}

// NewSessionService wires the session log. tracks, invalidator and m may be nil.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tracks storage.ObjectStorage,
	invalidator StatsInvalidator,
	m *metrics.Manager,
	listLimit int,
) SessionService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &sessionService{
		sessionRepo: sessionRepo,
		tracks:      tracks,
		invalidator: invalidator,
		metrics:     m,
		listLimit:   listLimit,
	}
}

func (s *sessionService) LogWalk(ctx context.Context, userID string, in WalkInput) (*domain.WalkSession, error) {
	if err := validateWalk(in); err != nil {
		return nil, err
	}

	walk := &domain.WalkSession{
		UserID:      userID,
		DistanceKm:  in.DistanceKm,
		DurationSec: in.DurationSec,
		Steps:       in.Steps,
		AvgSpeedKmh: in.AvgSpeedKmh,
		Path:        in.Path,
		PointCount:  len(in.Path),
		Note:        strings.TrimSpace(in.Note),
		Date:        time.Now().UTC(),
	}
	if walk.AvgSpeedKmh == 0 && walk.DurationSec > 0 {
		walk.AvgSpeedKmh = math.Round(walk.DistanceKm/(float64(walk.DurationSec)/3600)*10) / 10
	}

	if s.tracks != nil && len(walk.Path) > 0 {
		if err := s.archiveTrack(ctx, walk); err != nil {
			return nil, err
		}
	}

	if err := s.sessionRepo.CreateWalk(ctx, walk); err != nil {
		if walk.TrackKey != "" {
			if delErr := s.tracks.DeleteObject(ctx, walk.TrackKey); delErr != nil {
				log.Warnf("orphaned track %s: %s", walk.TrackKey, delErr)
			}
		}
		return nil, storeError(err, nil)
	}

	s.logged(userID, "walk")
	log.WithFields(log.Fields{
		"user_id": userID,
		"walk_id": walk.ID,
		"km":      walk.DistanceKm,
		"points":  walk.PointCount,
	}).Debug("walk logged")

	return walk, nil
}

// archiveTrack uploads the path and leaves only its key on the walk.
func (s *sessionService) archiveTrack(ctx context.Context, walk *domain.WalkSession) error {
	body, err := json.Marshal(walk.Path)
	if err != nil {
		return fmt.Errorf("encode track: %w", err)
	}
	key := storage.TrackKey(walk.UserID, domain.NewID(domain.PrefixTrack))
	if err := s.tracks.PutObject(ctx, key, trackContentType, body); err != nil {
		return fmt.Errorf("%w: upload track: %w", ErrUpstreamUnavailable, err)
	}
	walk.TrackKey = key
	walk.Path = nil
	return nil
}

func (s *sessionService) LogCircuit(ctx context.Context, userID string, in CircuitInput) (*domain.CircuitSession, error) {
	if err := validateCircuit(in); err != nil {
		return nil, err
	}

	circuit := &domain.CircuitSession{
		UserID:          userID,
		DurationMinutes: in.DurationMinutes,
		Exercises:       in.Exercises,
		Note:            strings.TrimSpace(in.Note),
		Date:            time.Now().UTC(),
	}
	if circuit.Exercises == nil {
		circuit.Exercises = []domain.ExerciseLog{}
	}

	if err := s.sessionRepo.CreateCircuit(ctx, circuit); err != nil {
		return nil, storeError(err, nil)
	}

	s.logged(userID, "circuit")
	log.WithFields(log.Fields{
		"user_id":    userID,
		"circuit_id": circuit.ID,
		"exercises":  len(circuit.Exercises),
	}).Debug("circuit logged")

	return circuit, nil
}

func (s *sessionService) logged(userID, kind string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metrics != nil {
		s.metrics.CounterSessionsLogged.WithLabelValues(kind).Inc()
	}
}

func (s *sessionService) ListWalks(ctx context.Context, userID string) ([]domain.WalkSession, error) {
	walks, err := s.sessionRepo.ListWalks(ctx, userID, repository.SessionQuery{Limit: s.listLimit})
	if err != nil {
		return nil, storeError(err, nil)
	}
	return walks, nil
}

func (s *sessionService) ListCircuits(ctx context.Context, userID string) ([]domain.CircuitSession, error) {
	circuits, err := s.sessionRepo.ListCircuits(ctx, userID, repository.SessionQuery{Limit: s.listLimit})
	if err != nil {
		return nil, storeError(err, nil)
	}
	return circuits, nil
}

func (s *sessionService) GetWalkTrack(ctx context.Context, userID, walkID string) (*WalkTrack, error) {
	walk, err := s.sessionRepo.GetWalkByID(ctx, userID, walkID)
	if err != nil {
		return nil, storeError(err, ErrWalkNotFound)
	}

	track := &WalkTrack{WalkID: walk.ID, PointCount: walk.PointCount}
	if walk.TrackKey == "" {
		track.Points = walk.Path
		if track.Points == nil {
			track.Points = []domain.PathPoint{}
		}
		track.PointCount = len(track.Points)
		return track, nil
	}

	if s.tracks == nil {
		return nil, fmt.Errorf("%w: track storage is disabled", ErrUpstreamUnavailable)
	}
	url, err := s.tracks.GeneratePresignedDownloadURL(ctx, walk.TrackKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: presign track: %w", ErrUpstreamUnavailable, err)
	}
	expires := time.Now().UTC().Add(storage.DefaultPresignedURLExpiry)
	track.URL = url
	track.ExpiresAt = &expires
	return track, nil
}

func validateWalk(in WalkInput) error {
	if in.DistanceKm < 0 || in.DurationSec < 0 || in.Steps < 0 || in.AvgSpeedKmh < 0 {
		return validationError("walk values cannot be negative")
	}
	for i, p := range in.Path {
		if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			return validationError("path point %d out of range", i)
		}
	}
	return nil
}

func validateCircuit(in CircuitInput) error {
	if in.DurationMinutes < 0 {
		return validationError("duration cannot be negative")
	}
	for i, l := range in.Exercises {
		if strings.TrimSpace(l.ExerciseID) == "" {
			return validationError("exercise %d has no id", i)
		}
		if l.Sets < 0 || l.Reps < 0 || l.WeightKg < 0 || l.PlannedSets < 0 || l.PlannedReps < 0 || l.PlannedWeightKg < 0 {
			return validationError("exercise %s has negative values", l.ExerciseID)
		}
		if l.BandColor != "" {
			if _, ok := l.BandColor.Kg(); !ok {
				return validationError("exercise %s has unknown band %q", l.ExerciseID, l.BandColor)
			}
		}
		for _, set := range l.SetRecords {
			if set.Number < 1 {
				return validationError("exercise %s: set numbers start at 1", l.ExerciseID)
			}
			if set.Reps < 0 || set.WeightKg < 0 {
				return validationError("exercise %s: set %d has negative values", l.ExerciseID, set.Number)
			}
		}
	}
	return nil
}
