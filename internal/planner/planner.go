// Package planner builds rotating walk/circuit training plans from a user
// profile and the exercise catalog.
package planner

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"waltgoat/walker-app/internal/domain"
)

var ErrInvalidOptions = errors.New("invalid plan options")

const (
	DefaultEnergy = 5
	DefaultAge    = 72

	walkName = "Camminata"
	walkNote = "Passo moderato, con pause se necessario"

	// km per minute, i.e. 4.8 km/h
	walkPaceKmPerMin = 0.08
)

// DefaultDays is used when a profile lists no available days.
var DefaultDays = []string{"Lunedì", "Mercoledì", "Venerdì"}

var rotation = []domain.Category{
	domain.CategoryLegs,
	domain.CategoryCore,
	domain.CategoryArms,
	domain.CategoryShoulders,
	domain.CategoryChest,
	domain.CategoryBack,
}

var avoidance = map[domain.JointPain][]string{
	domain.JointKnees:     {"ex_squat_sedia", "ex_affondi_supporto", "ex_step_up"},
	domain.JointShoulders: {"ex_shoulder_press", "ex_alzate_laterali", "ex_alzate_frontali"},
	domain.JointBack:      {"ex_superman", "ex_rematore_manubri"},
}

// Options tune a single generation run.
type Options struct {
	// Energy is 1..10; zero means DefaultEnergy.
	Energy          int
	FocusCategories []domain.Category
	JointPain       []domain.JointPain
}

// Source is the read side of the exercise catalog.
type Source interface {
	All() []domain.ExerciseDefinition
}

type Generator struct {
	catalog  Source
	selector Selector
}

// New returns a generator over catalog. A nil selector means PrefixSelector.
func New(catalog Source, selector Selector) *Generator {
	if selector == nil {
		selector = PrefixSelector{}
	}
	return &Generator{catalog: catalog, selector: selector}
}

// Generate builds a plan for profile. The result has no id and is not active;
// persisting and activating it is up to the caller.
func (g *Generator) Generate(profile domain.UserProfile, opts Options) (domain.WorkoutPlan, error) {
	energy, err := opts.energy()
	if err != nil {
		return domain.WorkoutPlan{}, err
	}
	focus, err := opts.focus()
	if err != nil {
		return domain.WorkoutPlan{}, err
	}

	level := domain.ParseFitnessLevel(string(profile.Level))
	avoid := avoidedIDs(profile.JointPain, opts.JointPain)
	catalog := g.catalog.All()

	days := profile.AvailableDays
	if len(days) == 0 {
		days = DefaultDays
	}

	age := profile.Age
	if age <= 0 {
		age = DefaultAge
	}

	plan := domain.WorkoutPlan{
		UserID: profile.UserID,
		Name:   fmt.Sprintf("Piano Automatico - Fascia %d", age),
		Kind:   domain.PlanKindGenerated,
		Days:   make([]domain.PlanDay, 0, len(days)),
	}

	for i, label := range days {
		if i%2 == 0 {
			plan.Days = append(plan.Days, walkDay(label, level, energy))
			continue
		}

		cats := focus
		if len(cats) == 0 {
			idx := (i / 2) % len(rotation)
			cats = []domain.Category{rotation[idx], rotation[(idx+1)%len(rotation)], domain.CategoryCardio}
		}

		candidates := make([]domain.ExerciseDefinition, 0, len(catalog))
		for _, ex := range catalog {
			if slices.Contains(cats, ex.Category) && !avoid[ex.ID] {
				candidates = append(candidates, ex)
			}
		}

		chosen := g.selector.Select(candidates, exercisesPerDay(level))
		day := domain.PlanDay{
			Label:      label,
			Kind:       domain.DayKindCircuit,
			Activities: make([]domain.Activity, 0, len(chosen)),
		}
		for _, ex := range chosen {
			day.Activities = append(day.Activities, circuitActivity(ex, level, energy))
		}
		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}

func (o Options) energy() (int, error) {
	if o.Energy == 0 {
		return DefaultEnergy, nil
	}
	if o.Energy < 1 || o.Energy > 10 {
		return 0, fmt.Errorf("%w: energy must be between 1 and 10, got %d", ErrInvalidOptions, o.Energy)
	}
	return o.Energy, nil
}

func (o Options) focus() ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(o.FocusCategories))
	for _, c := range o.FocusCategories {
		parsed, ok := domain.ParseCategory(string(c))
		if !ok {
			return nil, fmt.Errorf("%w: unknown focus category %q", ErrInvalidOptions, c)
		}
		out = append(out, parsed)
	}
	return out, nil
}

// unknown tags have no entry in the avoidance table and are ignored
func avoidedIDs(tagSets ...[]domain.JointPain) map[string]bool {
	out := make(map[string]bool)
	for _, tags := range tagSets {
		for _, tag := range tags {
			for _, id := range avoidance[tag] {
				out[id] = true
			}
		}
	}
	return out
}

func walkDay(label string, level domain.FitnessLevel, energy int) domain.PlanDay {
	minutes := WalkMinutes(level, energy)
	return domain.PlanDay{
		Label: label,
		Kind:  domain.DayKindWalk,
		Activities: []domain.Activity{{
			Name:            walkName,
			DurationMinutes: minutes,
			DistanceKm:      WalkDistanceKm(minutes),
			Note:            walkNote,
		}},
	}
}

// WalkMinutes is the planned walk duration for a level and energy score.
func WalkMinutes(level domain.FitnessLevel, energy int) int {
	minutes := 30
	switch {
	case energy < 4:
		minutes = 25
	case energy > 7:
		minutes = 35
	}
	if level != domain.LevelBeginner {
		minutes += 10
	}
	return minutes
}

// WalkDistanceKm converts a walk duration to distance at 4.8 km/h, one decimal.
func WalkDistanceKm(minutes int) float64 {
	return math.Round(float64(minutes)*walkPaceKmPerMin*10) / 10
}

func exercisesPerDay(level domain.FitnessLevel) int {
	if level == domain.LevelBeginner {
		return 4
	}
	return 6
}

// AssignedSets is max(1, min(base(level) + energy modifier, default sets)).
func AssignedSets(level domain.FitnessLevel, energy, defaultSets int) int {
	sets := 3
	if level == domain.LevelBeginner {
		sets = 2
	}
	switch {
	case energy < 4:
		sets--
	case energy > 7:
		sets++
	}
	return max(1, min(sets, defaultSets))
}

func circuitActivity(ex domain.ExerciseDefinition, level domain.FitnessLevel, energy int) domain.Activity {
	variants := ex.Variants
	return domain.Activity{
		Name:            ex.Name,
		ExerciseID:      ex.ID,
		Category:        ex.Category,
		Sets:            AssignedSets(level, energy, ex.DefaultSets),
		Reps:            ex.DefaultReps,
		WeightKg:        ex.DefaultWeightKg,
		DurationSeconds: ex.DurationSeconds,
		Technique:       ex.Technique,
		SafetyNote:      ex.SafetyNote,
		Variants:        &variants,
		MuscleGroups:    append([]string(nil), ex.MuscleGroups...),
		Equipment:       append([]string(nil), ex.Equipment...),
		BandColor:       ex.BandColor,
	}
}
