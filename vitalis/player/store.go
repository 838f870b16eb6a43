// Package player owns the mutable gamification aggregate: XP, coins,
// vitality, rank, attributes and the append-only action history.
package player

import (
	"log/slog"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/category"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

const rollingWindow = 30 * 24 * time.Hour

// attributeKeywords maps folded tag keywords to the attribute they feed. A
// tag matching a keyword adds the full XP delta of the action to that
// attribute.
var attributeKeywords = map[string]progression.AttributeKey{
	"strength": progression.AttrStrength,
	"exercise": progression.AttrStrength,
	"gym":      progression.AttrStrength,
	"workout":  progression.AttrStrength,
	"run":      progression.AttrStrength,
	"sport":    progression.AttrStrength,

	"study":    progression.AttrIntellect,
	"reading":  progression.AttrIntellect,
	"learning": progression.AttrIntellect,
	"course":   progression.AttrIntellect,
	"book":     progression.AttrIntellect,

	"art":     progression.AttrCreativity,
	"music":   progression.AttrCreativity,
	"writing": progression.AttrCreativity,
	"drawing": progression.AttrCreativity,
	"create":  progression.AttrCreativity,

	"social":  progression.AttrSocial,
	"friends": progression.AttrSocial,
	"family":  progression.AttrSocial,
	"call":    progression.AttrSocial,
}

// ReconcileOutcome reports which side a reconciliation picked.
type ReconcileOutcome int

const (
	// OutcomeRemoteApplied means the remote snapshot overwrote local state.
	OutcomeRemoteApplied ReconcileOutcome = iota
	// OutcomeLocalKept means the local copy was fresher and must be pushed.
	OutcomeLocalKept
)

// Store is the single owner of one user's State and History. All mutations
// run to completion under the lock; no other component reaches into the
// fields directly.
type Store struct {
	mu      sync.Mutex
	userID  string
	state   State
	history *History

	calc       *progression.Calculator
	categories *category.Resolver
	cache      CacheWriter // may be nil
	notify     func()      // dirty marker for the aggregate collection, may be nil
	now        func() time.Time
}

func NewStore(userID string, calc *progression.Calculator, categories *category.Resolver, cache CacheWriter, notify func()) *Store {
	return &Store{
		userID:     userID,
		state:      NewState(),
		history:    NewHistory(),
		calc:       calc,
		categories: categories,
		cache:      cache,
		notify:     notify,
		now:        time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) UserID() string {
	return s.userID
}

// GrantAction records one completed action: computes the XP and coin deltas,
// accumulates tag-matched attributes, recomputes the derived projections and
// appends exactly one history event. The remote push happens asynchronously
// via the dirty marker; the local cache write is synchronous.
func (s *Store) GrantAction(kind progression.ActionKind, tags []string, explicitCategory string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	xp := s.calc.XPGain(kind, s.state.Boost, now)
	coins := s.calc.CoinGain(xp)

	s.state.XP += int64(xp)
	s.state.Coins += int64(coins)

	for _, tag := range tags {
		if attr, ok := attributeKeywords[category.Fold(tag)]; ok {
			s.addAttribute(attr, int64(xp))
		}
	}

	cat := ""
	if explicitCategory != "" {
		cat = s.categories.Normalize(explicitCategory).CanonicalName
	} else if resolved, ok := s.categories.ResolveFromTags(tags); ok {
		cat = resolved
	}

	s.history.Append(Event{
		Timestamp: now.UnixMilli(),
		Kind:      kind,
		XPDelta:   xp,
		CoinDelta: coins,
		Tags:      append([]string(nil), tags...),
		Category:  cat,
	})

	s.recomputeLocked(now)
	s.bumpLocked(now)

	slog.Debug("Action granted",
		slog.String("type", "state"),
		slog.String("user_id", s.userID),
		slog.String("kind", string(kind)),
		slog.Int("xp", xp),
		slog.Int("coins", coins))
}

// Spend deducts coins. Returns false and changes nothing when the balance is
// insufficient; an expected outcome, not an error.
func (s *Store) Spend(amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount < 0 || s.state.Coins < amount {
		return false
	}
	s.state.Coins -= amount
	s.bumpLocked(s.now())
	return true
}

// Credit unconditionally increases the coin balance.
func (s *Store) Credit(amount int64) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Coins += amount
	s.bumpLocked(s.now())
}

// ActivateBoost applies a temporary XP multiplier until expiry.
func (s *Store) ActivateBoost(multiplier float64, expiresAt time.Time) {
	if multiplier <= 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Boost = progression.Boost{Multiplier: multiplier, ExpiresAt: expiresAt}
	s.bumpLocked(s.now())
}

// Hydrate preloads the aggregate from a local cache entry on cold start,
// before the remote pull resolves. The cache holds no history, so derived
// projections that need it keep their cached values until the next action.
// Does not bump the version or mark anything dirty.
func (s *Store) Hydrate(entry CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.XP = entry.XP
	s.state.Coins = entry.Coins
	s.state.Vitality = entry.Vitality
	s.state.Rank = progression.ComputeRank(entry.XP)
	s.state.Version = entry.Version
	s.state.UpdatedAt = entry.LastUpdated
}

// Reset zeroes all fields and clears the history. Explicit user-triggered
// operation; the zeroed state still syncs so the remote copy resets too.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.state.Version
	s.state = NewState()
	s.state.Version = version
	s.history.Replace(nil)
	s.bumpLocked(s.now())

	slog.Info("Player state reset",
		slog.String("type", "state"),
		slog.String("user_id", s.userID))
}

// Restore replaces the aggregate and history with an archived snapshot. Rank
// and Aspect are recomputed rather than trusted, and the version bump makes
// the restored values win the next reconciliation and sync out.
func (s *Store) Restore(state State, events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.state.Version
	if state.Version > version {
		version = state.Version
	}
	s.state = state
	s.state.Version = version
	s.state.Rank = progression.ComputeRank(state.XP)
	s.state.Aspect = progression.ComputeAspect(state.Attributes)
	s.history.Replace(events)
	s.bumpLocked(s.now())

	slog.Info("Player state restored from snapshot",
		slog.String("type", "state"),
		slog.String("user_id", s.userID),
		slog.Int64("xp", s.state.XP),
		slog.Int("history", s.history.Len()))
}

// State returns a copy of the aggregate.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Events returns a copy of the history log.
func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Events()
}

// EventsFrom returns the history events at index i and later.
func (s *Store) EventsFrom(i int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.EventsFrom(i)
}

func (s *Store) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// XP30d recomputes the trailing 30 day XP sum. Derived, never stored.
func (s *Store) XP30d() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.XPWithin(s.now(), rollingWindow)
}

// Snapshot returns the aggregate in its remote form together with the full
// history, for pushing.
func (s *Store) Snapshot() RemoteAggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RemoteAggregate{
		XP:         s.state.XP,
		Coins:      s.state.Coins,
		Vitality:   s.state.Vitality,
		Rank:       s.state.Rank,
		Attributes: s.state.Attributes,
		Aspect:     s.state.Aspect,
		Boost:      s.state.Boost,
		Version:    s.state.Version,
		UpdatedAt:  s.state.UpdatedAt,
	}
}

// Reconcile merges the remote aggregate into local state. The version
// counter decides: a strictly greater local version keeps the local copy
// (OutcomeLocalKept, caller must push); otherwise remote wins. Rows written
// before the version column existed (version 0 on both sides) fall back to
// the protection window heuristic: a local write inside the window that is
// newer than the remote row survives, everything else yields to remote.
func (s *Store) Reconcile(remote RemoteAggregate, events []Event, protectionWindow time.Duration) ReconcileOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.localWinsLocked(remote, protectionWindow) {
		slog.Info("Reconcile kept fresher local state",
			slog.String("type", "sync"),
			slog.String("user_id", s.userID),
			slog.Int64("local_version", s.state.Version),
			slog.Int64("remote_version", remote.Version))
		return OutcomeLocalKept
	}

	s.state.XP = remote.XP
	s.state.Coins = remote.Coins
	// Vitality is adopted verbatim: the daily close job may have applied
	// penalties the local bonus-only formula must not undo.
	s.state.Vitality = remote.Vitality
	s.state.Attributes = remote.Attributes
	s.state.Boost = remote.Boost
	s.state.Rank = progression.ComputeRank(remote.XP)
	s.state.Aspect = progression.ComputeAspect(remote.Attributes)
	s.state.Version = remote.Version
	s.state.UpdatedAt = remote.UpdatedAt
	s.history.Replace(events)

	s.writeCacheLocked()

	slog.Info("Reconcile applied remote state",
		slog.String("type", "sync"),
		slog.String("user_id", s.userID),
		slog.Int64("version", remote.Version))
	return OutcomeRemoteApplied
}

func (s *Store) localWinsLocked(remote RemoteAggregate, protectionWindow time.Duration) bool {
	if s.state.Version != remote.Version {
		return s.state.Version > remote.Version
	}
	if s.state.Version != 0 {
		// Same non-zero version: the copies should agree, remote is the
		// source of truth by default.
		return false
	}

	// Legacy rows without a version. Both timestamps missing: remote wins.
	if s.state.UpdatedAt.IsZero() {
		return false
	}
	now := s.now()
	if now.Sub(s.state.UpdatedAt) > protectionWindow {
		return false
	}
	return remote.UpdatedAt.IsZero() || s.state.UpdatedAt.After(remote.UpdatedAt)
}

func (s *Store) addAttribute(attr progression.AttributeKey, xp int64) {
	switch attr {
	case progression.AttrStrength:
		s.state.Attributes.Str += xp
	case progression.AttrIntellect:
		s.state.Attributes.Int += xp
	case progression.AttrCreativity:
		s.state.Attributes.Cre += xp
	case progression.AttrSocial:
		s.state.Attributes.Soc += xp
	}
}

func (s *Store) recomputeLocked(now time.Time) {
	xp30d := s.history.XPWithin(now, rollingWindow)
	s.state.Vitality = s.calc.Vitality(xp30d, s.history.DayStats(now), s.history.ActiveDays(now, s.calc.Config().ConsistencyDays))
	s.state.Rank = progression.ComputeRank(s.state.XP)
	s.state.Aspect = progression.ComputeAspect(s.state.Attributes)
}

// bumpLocked finishes every mutation: version increment, cache write, dirty
// marker. The cache write must land before the asynchronous push resolves.
func (s *Store) bumpLocked(now time.Time) {
	s.state.Version++
	s.state.UpdatedAt = now
	s.writeCacheLocked()
	if s.notify != nil {
		s.notify()
	}
}

func (s *Store) writeCacheLocked() {
	if s.cache == nil {
		return
	}
	s.cache.WriteAggregate(CacheEntry{
		XP:           s.state.XP,
		Coins:        s.state.Coins,
		Vitality:     s.state.Vitality,
		RankIndex:    s.state.Rank.Index,
		RankTier:     string(s.state.Rank.Tier),
		RankDivision: s.state.Rank.Division,
		Version:      s.state.Version,
		LastUpdated:  s.state.UpdatedAt,
	})
}
