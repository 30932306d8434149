// internal/domain/training_plan.go
package domain

import "time"

type PlanKind string

const (
	PlanKindGenerated PlanKind = "automatico"
	PlanKindCustom    PlanKind = "custom"
)

type DayKind string

const (
	DayKindWalk    DayKind = "camminata"
	DayKindCircuit DayKind = "circuito"
)

// Activity is one entry of a plan day. Walk days use the name, duration,
// distance and note; circuit days carry a snapshot of the catalog entry taken
// when the plan was built.
type Activity struct {
	Name            string  `bson:"nome" json:"nome"`
	DurationMinutes int     `bson:"durata_minuti,omitempty" json:"durata_minuti,omitempty"`
	DistanceKm      float64 `bson:"distanza_km,omitempty" json:"distanza_km,omitempty"`
	Note            string  `bson:"note,omitempty" json:"note,omitempty"`

	ExerciseID      string    `bson:"exercise_id,omitempty" json:"exercise_id,omitempty"`
	Category        Category  `bson:"categoria,omitempty" json:"categoria,omitempty"`
	Sets            int       `bson:"serie,omitempty" json:"serie,omitempty"`
	Reps            int       `bson:"ripetizioni,omitempty" json:"ripetizioni,omitempty"`
	WeightKg        float64   `bson:"peso_kg" json:"peso_kg"`
	DurationSeconds int       `bson:"tempo_secondi,omitempty" json:"tempo_secondi,omitempty"`
	Technique       string    `bson:"descrizione_tecnica,omitempty" json:"descrizione_tecnica,omitempty"`
	SafetyNote      string    `bson:"note_sicurezza,omitempty" json:"note_sicurezza,omitempty"`
	Variants        *Variants `bson:"varianti,omitempty" json:"varianti,omitempty"`
	MuscleGroups    []string  `bson:"gruppo_muscolare,omitempty" json:"gruppo_muscolare,omitempty"`
	Equipment       []string  `bson:"attrezzi,omitempty" json:"attrezzi,omitempty"`
	BandColor       BandColor `bson:"elastico_colore,omitempty" json:"elastico_colore,omitempty"`
}

// PlanDay is one training day of a plan.
type PlanDay struct {
	Label      string     `bson:"giorno" json:"giorno"`
	Kind       DayKind    `bson:"tipo" json:"tipo"`
	Activities []Activity `bson:"attivita" json:"attivita"`
}

// WorkoutPlan is a multi-day plan owned by a single user.
// At most one plan per user is Active.
type WorkoutPlan struct {
	ID        string    `bson:"_id" json:"plan_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"nome" json:"nome"`
	Kind      PlanKind  `bson:"tipo" json:"tipo"`
	Days      []PlanDay `bson:"giorni" json:"giorni"`
	Active    bool      `bson:"attivo" json:"attivo"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
