package progression

const (
	// terminalXP is the cumulative XP threshold for the terminal rank.
	terminalXP = 4200
	// xpPerRankIndex is the XP width of one rank index step.
	xpPerRankIndex = 200
	terminalIndex  = 24
)

// regularTiers are the six ordered non-terminal tiers; each spans three
// rank indexes (divisions 1..3).
var regularTiers = [...]RankTier{
	TierBronze,
	TierSilver,
	TierGold,
	TierPlatinum,
	TierDiamond,
	TierMaster,
}

// ComputeRank derives the rank projection from cumulative XP. Pure and total:
// any xp >= terminalXP collapses to the terminal rank, everything below maps
// to index floor(xp/200) with division (index mod 3)+1.
func ComputeRank(xp int64) Rank {
	if xp >= terminalXP {
		return Rank{Index: terminalIndex, Tier: TierGod, Division: 0}
	}
	if xp < 0 {
		xp = 0
	}

	index := int(xp / xpPerRankIndex)
	tierIndex := index / 3
	if tierIndex >= len(regularTiers) {
		tierIndex = len(regularTiers) - 1
	}

	return Rank{
		Index:    index,
		Tier:     regularTiers[tierIndex],
		Division: index%3 + 1,
	}
}
