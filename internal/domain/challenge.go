package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "facile"
	DifficultyMedium Difficulty = "medio"
	DifficultyHard   Difficulty = "difficile"
)

// Challenge is a time-boxed goal. It starts pending and ends either completed
// or expired; neither terminal state is ever left.
type Challenge struct {
	ID           string     `bson:"_id" json:"sfida_id"`
	UserID       string     `bson:"user_id" json:"user_id"`
	Name         string     `bson:"nome" json:"nome"`
	Description  string     `bson:"descrizione" json:"descrizione"`
	Type         string     `bson:"tipo" json:"tipo"`
	TargetField  string     `bson:"target_field" json:"target_field"`
	TargetValue  float64    `bson:"target_value" json:"target_value"`
	CurrentValue float64    `bson:"current_value" json:"current_value"`
	Completed    bool       `bson:"completata" json:"completata"`
	CompletedAt  *time.Time `bson:"completata_il,omitempty" json:"completata_il,omitempty"`
	ExpiresAt    time.Time  `bson:"scadenza" json:"scadenza"`
	Expired      bool       `bson:"scaduta" json:"scaduta"`
	Icon         string     `bson:"icona" json:"icona"`
	Difficulty   Difficulty `bson:"difficolta" json:"difficolta"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// Terminal reports whether the challenge is completed or expired.
func (c Challenge) Terminal() bool {
	return c.Completed || c.Expired
}
