// internal/domain/exercise.go
package domain

import "strings"

// Category is the fixed muscle-area grouping of a catalog exercise.
type Category string

const (
	CategoryLegs      Category = "Gambe"
	CategoryCore      Category = "Core"
	CategoryArms      Category = "Braccia"
	CategoryShoulders Category = "Spalle"
	CategoryChest     Category = "Petto"
	CategoryBack      Category = "Schiena"
	CategoryCardio    Category = "Cardio"
)

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryLegs, CategoryCore, CategoryArms, CategoryShoulders,
		CategoryChest, CategoryBack, CategoryCardio,
	}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// BandColor identifies a resistance band by its colour.
type BandColor string

const (
	BandYellow BandColor = "giallo"
	BandRed    BandColor = "rosso"
	BandGreen  BandColor = "verde"
	BandBlue   BandColor = "blu"
	BandBlack  BandColor = "nero"
)

// BandInfo is the equivalent load of a band colour.
type BandInfo struct {
	Color        BandColor `json:"colore"`
	KgEquivalent float64   `json:"kg_equivalente"`
	Description  string    `json:"descrizione"`
}

var bandTable = []BandInfo{
	{Color: BandYellow, KgEquivalent: 1.5, Description: "Leggero - Principianti"},
	{Color: BandRed, KgEquivalent: 3.0, Description: "Medio - Intermedi"},
	{Color: BandGreen, KgEquivalent: 4.5, Description: "Medio-Forte"},
	{Color: BandBlue, KgEquivalent: 6.0, Description: "Forte - Avanzati"},
	{Color: BandBlack, KgEquivalent: 8.0, Description: "Molto Forte - Esperti"},
}

// Bands returns the band table, lightest first.
func Bands() []BandInfo {
	out := make([]BandInfo, len(bandTable))
	copy(out, bandTable)
	return out
}

// Kg returns the weight equivalent of the band. Unknown colours weigh nothing.
func (b BandColor) Kg() (float64, bool) {
	for _, info := range bandTable {
		if strings.EqualFold(string(info.Color), string(b)) {
			return info.KgEquivalent, true
		}
	}
	return 0, false
}

// Variants are the canned easy/medium/hard alternatives of an exercise.
type Variants struct {
	Easy   string `bson:"facile" json:"facile"`
	Medium string `bson:"medio" json:"medio"`
	Hard   string `bson:"difficile" json:"difficile"`
}

// ExerciseDefinition is a catalog entry. Definitions are never mutated once loaded.
type ExerciseDefinition struct {
	ID              string       `bson:"_id" json:"exercise_id"`
	Name            string       `bson:"nome" json:"nome"`
	Category        Category     `bson:"categoria" json:"categoria"`
	MuscleGroups    []string     `bson:"gruppo_muscolare" json:"gruppo_muscolare"`
	Equipment       []string     `bson:"attrezzi" json:"attrezzi"`
	Technique       string       `bson:"descrizione_tecnica" json:"descrizione_tecnica"`
	DefaultSets     int          `bson:"serie_default" json:"serie_default"`
	DefaultReps     int          `bson:"ripetizioni_default" json:"ripetizioni_default"`
	DefaultWeightKg float64      `bson:"peso_default" json:"peso_default"`
	DurationSeconds int          `bson:"tempo_secondi,omitempty" json:"tempo_secondi,omitempty"`
	Level           FitnessLevel `bson:"livello" json:"livello"`
	Variants        Variants     `bson:"varianti" json:"varianti"`
	SafetyNote      string       `bson:"note_sicurezza" json:"note_sicurezza"`
	BandColor       BandColor    `bson:"elastico_colore,omitempty" json:"elastico_colore,omitempty"`
}

// Clone returns a copy that shares no slices with the receiver.
func (e ExerciseDefinition) Clone() ExerciseDefinition {
	e.MuscleGroups = append([]string(nil), e.MuscleGroups...)
	e.Equipment = append([]string(nil), e.Equipment...)
	return e
}
