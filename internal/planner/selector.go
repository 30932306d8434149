package planner

import "waltgoat/walker-app/internal/domain"

// Selector picks which candidates end up in a circuit day.
type Selector interface {
	Select(candidates []domain.ExerciseDefinition, n int) []domain.ExerciseDefinition
}

// PrefixSelector keeps the first n candidates in catalog order.
// There is no variety beyond what the catalog order gives.
type PrefixSelector struct{}

func (PrefixSelector) Select(candidates []domain.ExerciseDefinition, n int) []domain.ExerciseDefinition {
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
