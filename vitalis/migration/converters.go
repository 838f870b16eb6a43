package migration

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

func (m *Migrator) convertUser(lu LegacyUser) *models.PlayerState {
	xp := clampNonNegative(int64(lu.XP))
	attrs := progression.Attributes{
		Str: clampNonNegative(int64(lu.Attributes.Strength)),
		Int: clampNonNegative(int64(lu.Attributes.Intelligence)),
		Cre: clampNonNegative(int64(lu.Attributes.Creativity)),
		Soc: clampNonNegative(int64(lu.Attributes.Social)),
	}
	rank := progression.ComputeRank(xp)

	state := &models.PlayerState{
		UserID:          lu.UserID,
		XP:              xp,
		Coins:           clampNonNegative(int64(lu.Coins)),
		Vitality:        clampVitality(int(lu.Vitality)),
		RankIndex:       rank.Index,
		RankTier:        string(rank.Tier),
		RankDivision:    rank.Division,
		AttrStr:         attrs.Str,
		AttrInt:         attrs.Int,
		AttrCre:         attrs.Cre,
		AttrSoc:         attrs.Soc,
		Aspect:          string(progression.ComputeAspect(attrs)),
		BoostMultiplier: 1,
		// Legacy rows never carry a version; reconciliation uses the
		// timestamp fallback for them.
		Version:   0,
		UpdatedAt: legacyTime(lu.UpdatedAt),
	}

	if lu.Boost != nil && lu.Boost.Multiplier > 1 {
		expires := legacyTime(lu.Boost.ExpiresAt)
		if expires.After(time.Now()) {
			state.BoostMultiplier = lu.Boost.Multiplier
			state.BoostExpiresAt = expires
		}
	}
	return state
}

func (m *Migrator) convertEvent(le LegacyHistoryEvent) *models.ActionEvent {
	kind := strings.ToLower(strings.TrimSpace(le.Kind))
	if !progression.KnownKind(progression.ActionKind(kind)) {
		return nil
	}
	return &models.ActionEvent{
		UserID:     le.UserID,
		OccurredAt: int64(le.T),
		Kind:       kind,
		XPDelta:    int(le.XP),
		CoinDelta:  int(le.Coins),
		Tags:       cleanseTags(le.Tags),
		Category:   cleanseString(le.Category),
	}
}

func (m *Migrator) convertTask(lt LegacyTask) *models.Task {
	if lt.ItemID == "" {
		return nil
	}
	return &models.Task{
		UserID:    lt.UserID,
		ItemID:    lt.ItemID,
		Title:     cleanseString(lt.Title),
		Tags:      cleanseTags(lt.Tags),
		Category:  cleanseString(lt.Category),
		Done:      lt.Done,
		DueAt:     legacyTime(lt.DueAt),
		UpdatedAt: time.Now(),
	}
}

func (m *Migrator) convertHabit(lh LegacyHabit) *models.Habit {
	if lh.ItemID == "" {
		return nil
	}
	return &models.Habit{
		UserID:     lh.UserID,
		ItemID:     lh.ItemID,
		Title:      cleanseString(lh.Title),
		Tags:       cleanseTags(lh.Tags),
		Category:   cleanseString(lh.Category),
		Streak:     int(clampNonNegative(int64(lh.Streak))),
		LastDoneAt: legacyTime(lh.LastDoneAt),
		UpdatedAt:  time.Now(),
	}
}

func (m *Migrator) convertGoal(lg LegacyGoal) *models.Goal {
	if lg.ItemID == "" {
		return nil
	}
	return &models.Goal{
		UserID:    lg.UserID,
		ItemID:    lg.ItemID,
		Title:     cleanseString(lg.Title),
		Tags:      cleanseTags(lg.Tags),
		Category:  cleanseString(lg.Category),
		Done:      lg.Done,
		TargetAt:  legacyTime(lg.TargetAt),
		UpdatedAt: time.Now(),
	}
}

func (m *Migrator) convertShopItem(ls LegacyShopItem) *models.ShopItem {
	if ls.ItemID == "" {
		return nil
	}
	multiplier := ls.BoostMultiplier
	if multiplier < 1 {
		multiplier = 1
	}
	return &models.ShopItem{
		UserID:          ls.UserID,
		ItemID:          ls.ItemID,
		Name:            cleanseString(ls.Name),
		Price:           clampNonNegative(int64(ls.Price)),
		Owned:           int(clampNonNegative(int64(ls.Owned))),
		BoostMultiplier: multiplier,
		BoostMinutes:    int(clampNonNegative(int64(ls.BoostMinutes))),
		UpdatedAt:       time.Now(),
	}
}

// legacyTime converts epoch milliseconds to time.Time, treating zero and
// garbage negatives as unset.
func legacyTime(ms float64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampVitality(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// cleanseString strips NUL bytes and invalid UTF-8 that Postgres text columns
// reject.
func cleanseString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.TrimSpace(s)
}

func cleanseTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if cleaned := cleanseString(tag); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
