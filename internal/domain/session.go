package domain

import "time"

// PathPoint is a single GPS fix recorded during a walk.
type PathPoint struct {
	Lat       float64    `bson:"lat" json:"lat"`
	Lng       float64    `bson:"lng" json:"lng"`
	Timestamp *time.Time `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// WalkSession is an append-only record of one walk.
type WalkSession struct {
	ID          string      `bson:"_id" json:"walk_id"`
	UserID      string      `bson:"user_id" json:"user_id"`
	DistanceKm  float64     `bson:"distanza_km" json:"distanza_km"`
	DurationSec int         `bson:"tempo_secondi" json:"tempo_secondi"`
	Steps       int         `bson:"passi" json:"passi"`
	AvgSpeedKmh float64     `bson:"velocita_media_kmh" json:"velocita_media_kmh"`
	Path        []PathPoint `bson:"percorso,omitempty" json:"percorso,omitempty"`
	TrackKey    string      `bson:"track_key,omitempty" json:"-"` // archived path in object storage
	PointCount  int         `bson:"num_punti,omitempty" json:"num_punti,omitempty"`
	Note        string      `bson:"note,omitempty" json:"note,omitempty"`
	Date        time.Time   `bson:"data" json:"data"`
}

// DurationMinutes returns the walk duration in (fractional) minutes.
func (w WalkSession) DurationMinutes() float64 {
	return float64(w.DurationSec) / 60
}

// SetRecord is one performed set of an exercise. Number is 1-based.
type SetRecord struct {
	Number    int     `bson:"set_number" json:"set_number"`
	Reps      int     `bson:"ripetizioni" json:"ripetizioni"`
	WeightKg  float64 `bson:"peso_kg" json:"peso_kg"`
	Completed bool    `bson:"completato" json:"completato"`
}

// ExerciseLog records what was done for one exercise inside a circuit.
//
// Logs written before per-set tracking carry only the flat Sets/Reps/WeightKg
// triple and no SetRecords; both shapes are read back unchanged.
type ExerciseLog struct {
	ExerciseID string      `bson:"exercise_id" json:"exercise_id"`
	Name       string      `bson:"nome" json:"nome"`
	SetRecords []SetRecord `bson:"sets,omitempty" json:"sets,omitempty"`

	PlannedSets     int     `bson:"piano_serie,omitempty" json:"piano_serie,omitempty"`
	PlannedReps     int     `bson:"piano_ripetizioni,omitempty" json:"piano_ripetizioni,omitempty"`
	PlannedWeightKg float64 `bson:"piano_peso_kg,omitempty" json:"piano_peso_kg,omitempty"`

	Sets     int     `bson:"serie,omitempty" json:"serie,omitempty"`
	Reps     int     `bson:"ripetizioni,omitempty" json:"ripetizioni,omitempty"`
	WeightKg float64 `bson:"peso_kg,omitempty" json:"peso_kg,omitempty"`

	BandColor BandColor `bson:"elastico_colore,omitempty" json:"elastico_colore,omitempty"`
}

// IsLegacy reports whether the log predates per-set records.
func (l ExerciseLog) IsLegacy() bool {
	return len(l.SetRecords) == 0
}

// CircuitSession is an append-only record of one strength circuit.
type CircuitSession struct {
	ID              string        `bson:"_id" json:"circuit_id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	DurationMinutes int           `bson:"durata_minuti" json:"durata_minuti"`
	Exercises       []ExerciseLog `bson:"esercizi" json:"esercizi"`
	Note            string        `bson:"note,omitempty" json:"note,omitempty"`
	Date            time.Time     `bson:"data" json:"data"`
}
