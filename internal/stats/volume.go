package stats

import "waltgoat/walker-app/internal/domain"

// logAggregate is the normalised view of an ExerciseLog, resolved once per log.
type logAggregate interface {
	volume() float64
	// best returns the heaviest effective weight and the most reps seen.
	// ok is false when the log contributes nothing to personal bests.
	best() (weightKg float64, reps int, ok bool)
}

// perSetAggregate covers logs with per-set records. Only completed sets count.
type perSetAggregate struct {
	sets   []domain.SetRecord
	bandKg float64
}

// legacyAggregate covers the flat sets x reps x weight shape.
type legacyAggregate struct {
	sets     int
	reps     int
	weightKg float64
}

func resolveLog(l domain.ExerciseLog) logAggregate {
	bandKg, _ := l.BandColor.Kg()
	if l.IsLegacy() {
		return legacyAggregate{
			sets:     l.Sets,
			reps:     l.Reps,
			weightKg: effectiveWeight(l.WeightKg, bandKg),
		}
	}
	return perSetAggregate{sets: l.SetRecords, bandKg: bandKg}
}

// a set logged without weight but with a band counts the band equivalent
func effectiveWeight(weightKg, bandKg float64) float64 {
	if weightKg > 0 {
		return weightKg
	}
	return bandKg
}

func (a perSetAggregate) volume() float64 {
	var v float64
	for _, s := range a.sets {
		if s.Completed {
			v += float64(s.Reps) * effectiveWeight(s.WeightKg, a.bandKg)
		}
	}
	return v
}

func (a perSetAggregate) best() (float64, int, bool) {
	var (
		weight float64
		reps   int
		found  bool
	)
	for _, s := range a.sets {
		if !s.Completed {
			continue
		}
		found = true
		weight = max(weight, effectiveWeight(s.WeightKg, a.bandKg))
		reps = max(reps, s.Reps)
	}
	return weight, reps, found
}

func (a legacyAggregate) volume() float64 {
	return float64(a.sets) * float64(a.reps) * a.weightKg
}

func (a legacyAggregate) best() (float64, int, bool) {
	if a.sets <= 0 {
		return 0, 0, false
	}
	return a.weightKg, a.reps, true
}
