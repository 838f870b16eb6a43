package player

import (
	"time"

	"github.com/vitalisapp/vitalis/vitalis/progression"
)

// State is the mutable gamification aggregate for one user. Rank and Aspect
// are cached projections and must always be re-derivable from XP and
// Attributes.
type State struct {
	XP         int64
	Coins      int64
	Vitality   int
	Rank       progression.Rank
	Attributes progression.Attributes
	Aspect     progression.Aspect
	Boost      progression.Boost

	// Version increments on every local mutation and is the primary
	// reconciliation signal against the remote copy.
	Version   int64
	UpdatedAt time.Time
}

// NewState returns the default aggregate for a user's first load.
func NewState() State {
	return State{
		Rank:   progression.ComputeRank(0),
		Aspect: progression.AspectBalanced,
	}
}

// RemoteAggregate is the reconciliation view of the remotely stored
// aggregate row.
type RemoteAggregate struct {
	XP         int64
	Coins      int64
	Vitality   int
	Rank       progression.Rank
	Attributes progression.Attributes
	Aspect     progression.Aspect
	Boost      progression.Boost
	Version    int64
	UpdatedAt  time.Time
}

// CacheEntry is the fast local cache row written before every remote push
// resolves, so a restart before the push completes does not lose the
// just-computed values.
type CacheEntry struct {
	XP           int64     `json:"xp"`
	Coins        int64     `json:"coins"`
	Vitality     int       `json:"vitality"`
	RankIndex    int       `json:"rank_index"`
	RankTier     string    `json:"rank_tier"`
	RankDivision int       `json:"rank_division"`
	Version      int64     `json:"version"`
	LastUpdated  time.Time `json:"last_updated"`
}

// CacheWriter persists cache entries synchronously with mutations.
type CacheWriter interface {
	WriteAggregate(entry CacheEntry)
}
