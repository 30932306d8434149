package challenge

import (
	"time"

	"waltgoat/walker-app/internal/stats"
)

// Template describes one kind of challenge and its per-tier targets.
type Template struct {
	Type        string
	Name        string
	Description string // fmt format, receives the target
	TargetField string
	Easy        float64
	Medium      float64
	Hard        float64
	Duration    time.Duration
	Icon        string
}

const week = 7 * 24 * time.Hour

var defaultTemplates = []Template{
	{
		Type:        "km_settimanali",
		Name:        "Camminatore della settimana",
		Description: "Cammina %v km in 7 giorni",
		TargetField: stats.FieldKm,
		Easy:        5,
		Medium:      10,
		Hard:        15,
		Duration:    week,
		Icon:        "footprints",
	},
	{
		Type:        "passi_settimanali",
		Name:        "Passo dopo passo",
		Description: "Fai %v passi in 7 giorni",
		TargetField: stats.FieldSteps,
		Easy:        15000,
		Medium:      30000,
		Hard:        50000,
		Duration:    week,
		Icon:        "shoe",
	},
	{
		Type:        "circuiti_settimanali",
		Name:        "Forza costante",
		Description: "Completa %v circuiti in 7 giorni",
		TargetField: stats.FieldCircuits,
		Easy:        1,
		Medium:      2,
		Hard:        3,
		Duration:    week,
		Icon:        "dumbbell",
	},
	{
		Type:        "volume_settimanale",
		Name:        "Sollevatore",
		Description: "Solleva %v kg di volume totale in 7 giorni",
		TargetField: stats.FieldVolume,
		Easy:        200,
		Medium:      500,
		Hard:        1000,
		Duration:    week,
		Icon:        "weight",
	},
	{
		Type:        "streak_giorni",
		Name:        "Sempre in movimento",
		Description: "Allenati %v giorni di fila",
		TargetField: stats.FieldStreak,
		Easy:        3,
		Medium:      5,
		Hard:        7,
		Duration:    week,
		Icon:        "flame",
	},
	{
		Type:        "velocita_massima",
		Name:        "Passo svelto",
		Description: "Raggiungi una velocità media di %v km/h in una camminata",
		TargetField: stats.FieldSpeed,
		Easy:        4,
		Medium:      5,
		Hard:        6,
		Duration:    week,
		Icon:        "zap",
	},
	{
		Type:        "calorie_settimanali",
		Name:        "Brucia calorie",
		Description: "Brucia %v calorie stimate in 7 giorni",
		TargetField: stats.FieldCalories,
		Easy:        300,
		Medium:      600,
		Hard:        1000,
		Duration:    week,
		Icon:        "target",
	},
}

// DefaultTemplates returns a copy of the built-in templates.
func DefaultTemplates() []Template {
	out := make([]Template, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}
