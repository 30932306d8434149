package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an opaque identifier of the form "<prefix>_<12 hex chars>".
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}

// Identifier prefixes, one per stored entity.
const (
	PrefixUser      = "user"
	PrefixWalk      = "walk"
	PrefixCircuit   = "circuit"
	PrefixPlan      = "plan"
	PrefixChallenge = "sfida"
	PrefixTrack     = "track"
)
