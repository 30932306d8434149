package stats

import (
	"time"

	"waltgoat/walker-app/internal/domain"
)

// Names of the weekly aggregates a challenge can target.
const (
	FieldKm       = "km"
	FieldSteps    = "passi"
	FieldCircuits = "circuiti"
	FieldVolume   = "volume"
	FieldStreak   = "streak"
	FieldSpeed    = "velocita"
	FieldCalories = "calorie"
)

// Metrics maps a target field to its value over the trailing seven days.
type Metrics map[string]float64

// WeeklyMetrics aggregates only the sessions of the seven days before now.
func WeeklyMetrics(walks []domain.WalkSession, circuits []domain.CircuitSession, now time.Time) Metrics {
	cut := now.UTC().Add(-WeekWindow)

	var recentWalks []domain.WalkSession
	for _, w := range walks {
		if !w.Date.Before(cut) {
			recentWalks = append(recentWalks, w)
		}
	}
	var recentCircuits []domain.CircuitSession
	for _, c := range circuits {
		if !c.Date.Before(cut) {
			recentCircuits = append(recentCircuits, c)
		}
	}

	r := Aggregate(recentWalks, recentCircuits, now)
	return Metrics{
		FieldKm:       r.Weekly.Km,
		FieldSteps:    float64(r.Weekly.Steps),
		FieldCircuits: float64(r.Weekly.Circuits),
		FieldVolume:   r.Weekly.VolumeKg,
		FieldStreak:   float64(r.Streak),
		FieldSpeed:    r.Weekly.MaxSpeedKmh,
		FieldCalories: float64(r.Weekly.Calories),
	}
}
