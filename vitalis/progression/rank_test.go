package progression

import "testing"

func TestComputeRank(t *testing.T) {
	tests := []struct {
		name string
		xp   int64
		want Rank
	}{
		{name: "zero", xp: 0, want: Rank{Index: 0, Tier: TierBronze, Division: 1}},
		{name: "negative clamps to zero", xp: -50, want: Rank{Index: 0, Tier: TierBronze, Division: 1}},
		{name: "just below first step", xp: 199, want: Rank{Index: 0, Tier: TierBronze, Division: 1}},
		{name: "first step", xp: 200, want: Rank{Index: 1, Tier: TierBronze, Division: 2}},
		{name: "last bronze", xp: 599, want: Rank{Index: 2, Tier: TierBronze, Division: 3}},
		{name: "first silver", xp: 600, want: Rank{Index: 3, Tier: TierSilver, Division: 1}},
		{name: "first master", xp: 3000, want: Rank{Index: 15, Tier: TierMaster, Division: 1}},
		{name: "master division three", xp: 3500, want: Rank{Index: 17, Tier: TierMaster, Division: 3}},
		{name: "beyond named tiers stays master", xp: 4000, want: Rank{Index: 20, Tier: TierMaster, Division: 3}},
		{name: "just below terminal", xp: 4199, want: Rank{Index: 20, Tier: TierMaster, Division: 3}},
		{name: "terminal threshold", xp: 4200, want: Rank{Index: 24, Tier: TierGod, Division: 0}},
		{name: "far beyond terminal", xp: 1_000_000, want: Rank{Index: 24, Tier: TierGod, Division: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRank(tt.xp); got != tt.want {
				t.Errorf("ComputeRank(%d) = %+v, want %+v", tt.xp, got, tt.want)
			}
		})
	}
}

func TestComputeRankMonotonic(t *testing.T) {
	prev := ComputeRank(0)
	for xp := int64(0); xp <= 5000; xp += 50 {
		got := ComputeRank(xp)
		if got.Index < prev.Index {
			t.Fatalf("rank index decreased: xp=%d index=%d, previous index=%d", xp, got.Index, prev.Index)
		}
		prev = got
	}
}
