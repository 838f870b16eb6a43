package progression

import "time"

// ActionKind is the closed set of XP-granting action types.
type ActionKind string

const (
	KindHabit ActionKind = "habit"
	KindTask  ActionKind = "task"
	KindGoal  ActionKind = "goal"
)

// KnownKind reports whether k is one of the configured action kinds.
func KnownKind(k ActionKind) bool {
	switch k {
	case KindHabit, KindTask, KindGoal:
		return true
	}
	return false
}

type RankTier string

const (
	TierBronze   RankTier = "Bronze"
	TierSilver   RankTier = "Silver"
	TierGold     RankTier = "Gold"
	TierPlatinum RankTier = "Platinum"
	TierDiamond  RankTier = "Diamond"
	TierMaster   RankTier = "Master"
	TierGod      RankTier = "God"
)

// Rank is a cached projection of cumulative XP. Division is 1..3 for the
// regular tiers and 0 for the terminal tier.
type Rank struct {
	Index    int      `json:"index"`
	Tier     RankTier `json:"tier"`
	Division int      `json:"division"`
}

type AttributeKey string

const (
	AttrStrength   AttributeKey = "str"
	AttrIntellect  AttributeKey = "int"
	AttrCreativity AttributeKey = "cre"
	AttrSocial     AttributeKey = "soc"
)

// Attributes holds cumulative tag-matched XP per trait.
type Attributes struct {
	Str int64 `json:"str"`
	Int int64 `json:"int"`
	Cre int64 `json:"cre"`
	Soc int64 `json:"soc"`
}

type Aspect string

const (
	AspectStrength   Aspect = "str"
	AspectIntellect  Aspect = "int"
	AspectCreativity Aspect = "cre"
	AspectSocial     Aspect = "soc"
	AspectBalanced   Aspect = "balanced"
)

// Boost temporarily multiplies XP gains until it expires.
type Boost struct {
	Multiplier float64   `json:"multiplier"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Active returns the multiplier in effect at the given time.
func (b Boost) Active(now time.Time) float64 {
	if b.Multiplier > 1 && now.Before(b.ExpiresAt) {
		return b.Multiplier
	}
	return 1
}

// DayStats counts today's completions per kind.
type DayStats struct {
	Habits int
	Tasks  int
	Goals  int
}

func (d DayStats) Total() int {
	return d.Habits + d.Tasks + d.Goals
}
