package domain

import (
	"strings"
	"time"
)

// FitnessLevel is the self-declared training level of a user.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Principiante"
	LevelIntermediate FitnessLevel = "Intermedio"
	LevelAdvanced     FitnessLevel = "Avanzato"
)

// ParseFitnessLevel matches case-insensitively. Anything unknown is a beginner.
func ParseFitnessLevel(s string) FitnessLevel {
	for _, l := range []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced} {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l
		}
	}
	return LevelBeginner
}

// JointPain tags a body area the plan generator must spare.
type JointPain string

const (
	JointKnees     JointPain = "ginocchia"
	JointShoulders JointPain = "spalle"
	JointBack      JointPain = "schiena"
)

// User is a registered account together with its training profile.
type User struct {
	ID              string       `bson:"_id" json:"user_id"`
	Email           string       `bson:"email" json:"email"` // unique
	Name            string       `bson:"nome" json:"nome"`
	PasswordHash    string       `bson:"passwordHash" json:"-"`
	Age             int          `bson:"eta,omitempty" json:"eta,omitempty"`
	WeightKg        float64      `bson:"peso,omitempty" json:"peso,omitempty"`
	HeightCm        float64      `bson:"altezza,omitempty" json:"altezza,omitempty"`
	Level           FitnessLevel `bson:"livello" json:"livello"`
	Goal            string       `bson:"obiettivo,omitempty" json:"obiettivo,omitempty"`
	AvailableDays   []string     `bson:"giorni_disponibili,omitempty" json:"giorni_disponibili,omitempty"`
	JointPain       []JointPain  `bson:"dolori_articolari,omitempty" json:"dolori_articolari,omitempty"`
	ProfileComplete bool         `bson:"profile_complete" json:"profile_complete"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// UserProfile is the read-only slice of a user the planning logic works on.
type UserProfile struct {
	UserID        string
	Level         FitnessLevel
	Age           int
	AvailableDays []string
	Goal          string
	JointPain     []JointPain
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		UserID:        u.ID,
		Level:         ParseFitnessLevel(string(u.Level)),
		Age:           u.Age,
		AvailableDays: append([]string(nil), u.AvailableDays...),
		Goal:          u.Goal,
		JointPain:     append([]JointPain(nil), u.JointPain...),
	}
}
