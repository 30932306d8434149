package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/planner"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// CustomPlanInput is a plan composed by the user.
type CustomPlanInput struct {
	Name string
	Days []domain.PlanDay
}

// ActivityUpdate changes the prescription of one circuit activity. Nil fields
// are left as they are.
type ActivityUpdate struct {
	Sets     *int
	Reps     *int
	WeightKg *float64
}

type PlanService interface {
	GeneratePlan(ctx context.Context, userID string, opts planner.Options) (*domain.WorkoutPlan, error)
	CreatePlan(ctx context.Context, userID string, in CustomPlanInput) (*domain.WorkoutPlan, error)
	UpdatePlanActivity(ctx context.Context, userID, planID string, dayIdx, activityIdx int, upd ActivityUpdate) (*domain.WorkoutPlan, error)
	ActivatePlan(ctx context.Context, userID, planID string) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
	GetActivePlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error)
}

type planService struct {
	userRepo  repository.UserRepository
	planRepo  repository.PlanRepository
	catalog   *catalog.Catalog
	generator *planner.Generator
	metrics   *metrics.Manager
}

func NewPlanService(
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	c *catalog.Catalog,
	m *metrics.Manager,
) PlanService {
	return &planService{
		userRepo:  userRepo,
		planRepo:  planRepo,
		catalog:   c,
		generator: planner.New(c, nil),
		metrics:   m,
	}
}

// GeneratePlan builds a plan from the stored profile and makes it the only
// active plan of the user.
func (s *planService) GeneratePlan(ctx context.Context, userID string, opts planner.Options) (*domain.WorkoutPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, ErrUserNotFound)
	}

	plan, err := s.generator.Generate(user.Profile(), opts)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidOptions) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return nil, err
	}

	if err := s.planRepo.CreateActive(ctx, &plan); err != nil {
		return nil, storeError(err, nil)
	}

	if s.metrics != nil {
		s.metrics.CounterPlansGenerated.Inc()
	}
	log.WithFields(log.Fields{
		"user_id": userID,
		"plan_id": plan.ID,
		"days":    len(plan.Days),
		"energy":  opts.Energy,
	}).Info("plan generated")

	return &plan, nil
}

// CreatePlan stores a custom plan as the active one. Circuit activities that
// reference a catalog exercise get the catalog snapshot for any field left empty.
func (s *planService) CreatePlan(ctx context.Context, userID string, in CustomPlanInput) (*domain.WorkoutPlan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationError("plan name is required")
	}
	if len(in.Days) == 0 {
		return nil, validationError("plan needs at least one day")
	}

	days := make([]domain.PlanDay, len(in.Days))
	for i, d := range in.Days {
		if strings.TrimSpace(d.Label) == "" {
			return nil, validationError("day %d has no label", i)
		}
		if d.Kind != domain.DayKindWalk && d.Kind != domain.DayKindCircuit {
			return nil, validationError("day %d has unknown type %q", i, d.Kind)
		}
		acts := make([]domain.Activity, len(d.Activities))
		for j, a := range d.Activities {
			if err := validateActivity(d.Kind, a); err != nil {
				return nil, fmt.Errorf("day %d activity %d: %w", i, j, err)
			}
			if d.Kind == domain.DayKindCircuit {
				a = s.fillFromCatalog(a)
			}
			acts[j] = a
		}
		days[i] = domain.PlanDay{Label: strings.TrimSpace(d.Label), Kind: d.Kind, Activities: acts}
	}

	plan := &domain.WorkoutPlan{
		UserID: userID,
		Name:   name,
		Kind:   domain.PlanKindCustom,
		Days:   days,
	}
	if err := s.planRepo.CreateActive(ctx, plan); err != nil {
		return nil, storeError(err, nil)
	}

	log.WithFields(log.Fields{"user_id": userID, "plan_id": plan.ID}).Info("custom plan created")
	return plan, nil
}

func validateActivity(kind domain.DayKind, a domain.Activity) error {
	if a.DurationMinutes < 0 || a.DistanceKm < 0 || a.DurationSeconds < 0 || a.WeightKg < 0 || a.Reps < 0 {
		return validationError("negative values")
	}
	if kind == domain.DayKindWalk {
		if strings.TrimSpace(a.Name) == "" {
			return validationError("walk activity needs a name")
		}
		return nil
	}
	if a.ExerciseID == "" && strings.TrimSpace(a.Name) == "" {
		return validationError("circuit activity needs an exercise id or a name")
	}
	if a.Sets < 0 {
		return validationError("negative sets")
	}
	return nil
}

func (s *planService) fillFromCatalog(a domain.Activity) domain.Activity {
	ex, ok := s.catalog.ByID(a.ExerciseID)
	if !ok {
		if a.Sets == 0 {
			a.Sets = 1
		}
		return a
	}
	if a.Name == "" {
		a.Name = ex.Name
	}
	if a.Category == "" {
		a.Category = ex.Category
	}
	if a.Sets == 0 {
		a.Sets = ex.DefaultSets
	}
	if a.Reps == 0 {
		a.Reps = ex.DefaultReps
	}
	if a.WeightKg == 0 {
		a.WeightKg = ex.DefaultWeightKg
	}
	if a.DurationSeconds == 0 {
		a.DurationSeconds = ex.DurationSeconds
	}
	if a.Technique == "" {
		a.Technique = ex.Technique
	}
	if a.SafetyNote == "" {
		a.SafetyNote = ex.SafetyNote
	}
	if a.Variants == nil {
		v := ex.Variants
		a.Variants = &v
	}
	if a.MuscleGroups == nil {
		a.MuscleGroups = append([]string(nil), ex.MuscleGroups...)
	}
	if a.Equipment == nil {
		a.Equipment = append([]string(nil), ex.Equipment...)
	}
	if a.BandColor == "" {
		a.BandColor = ex.BandColor
	}
	return a
}

// UpdatePlanActivity edits one circuit activity in place. Indexes out of range
// are rejected, never clamped.
func (s *planService) UpdatePlanActivity(ctx context.Context, userID, planID string, dayIdx, activityIdx int, upd ActivityUpdate) (*domain.WorkoutPlan, error) {
	if upd.Sets != nil && *upd.Sets < 1 {
		return nil, validationError("sets must be at least 1")
	}
	if upd.Reps != nil && *upd.Reps < 1 {
		return nil, validationError("reps must be at least 1")
	}
	if upd.WeightKg != nil && *upd.WeightKg < 0 {
		return nil, validationError("weight cannot be negative")
	}

	plan, err := s.planRepo.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, storeError(err, ErrPlanNotFound)
	}

	if dayIdx < 0 || dayIdx >= len(plan.Days) {
		return nil, validationError("day index %d out of range [0,%d)", dayIdx, len(plan.Days))
	}
	day := &plan.Days[dayIdx]
	if day.Kind != domain.DayKindCircuit {
		return nil, validationError("day %d is not a circuit day", dayIdx)
	}
	if activityIdx < 0 || activityIdx >= len(day.Activities) {
		return nil, validationError("activity index %d out of range [0,%d)", activityIdx, len(day.Activities))
	}

	act := &day.Activities[activityIdx]
	if upd.Sets != nil {
		act.Sets = *upd.Sets
	}
	if upd.Reps != nil {
		act.Reps = *upd.Reps
	}
	if upd.WeightKg != nil {
		act.WeightKg = *upd.WeightKg
	}

	if err := s.planRepo.UpdateDays(ctx, userID, planID, plan.Days); err != nil {
		return nil, storeError(err, ErrPlanNotFound)
	}
	return plan, nil
}

func (s *planService) ActivatePlan(ctx context.Context, userID, planID string) (*domain.WorkoutPlan, error) {
	if err := s.planRepo.Activate(ctx, userID, planID); err != nil {
		return nil, storeError(err, ErrPlanNotFound)
	}
	plan, err := s.planRepo.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, storeError(err, ErrPlanNotFound)
	}
	log.WithFields(log.Fields{"user_id": userID, "plan_id": planID}).Info("plan activated")
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	plans, err := s.planRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, nil)
	}
	return plans, nil
}

func (s *planService) GetActivePlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, storeError(err, ErrNoActivePlan)
	}
	return plan, nil
}
