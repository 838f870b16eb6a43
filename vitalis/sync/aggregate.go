package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
)

// AggregateSyncer pushes and pulls the gamification aggregate plus its
// append-only history tail.
type AggregateSyncer struct {
	userID           string
	store            *player.Store
	remote           RemoteStore
	protectionWindow time.Duration

	mu     sync.Mutex
	pushed int // history events already appended remotely
}

func NewAggregateSyncer(userID string, store *player.Store, remote RemoteStore, protectionWindow time.Duration) *AggregateSyncer {
	return &AggregateSyncer{
		userID:           userID,
		store:            store,
		remote:           remote,
		protectionWindow: protectionWindow,
	}
}

func (a *AggregateSyncer) Name() Collection {
	return CollectionPlayer
}

// Rebase overrides how many history events count as already persisted. Used
// after the remote log is wiped so the next push starts from n.
func (a *AggregateSyncer) Rebase(n int) {
	a.mu.Lock()
	a.pushed = n
	a.mu.Unlock()
}

// Push writes the full aggregate row and appends any history events not yet
// persisted remotely. Events are never re-sent once appended.
func (a *AggregateSyncer) Push(ctx context.Context) error {
	snap := a.store.Snapshot()
	if err := a.remote.SaveAggregate(ctx, aggregateToModel(a.userID, snap)); err != nil {
		return fmt.Errorf("save aggregate: %w", err)
	}

	a.mu.Lock()
	offset := a.pushed
	a.mu.Unlock()

	total := a.store.HistoryLen()
	if total < offset {
		// History shrank: a reset or a remote reconcile replaced the log.
		a.mu.Lock()
		a.pushed = total
		a.mu.Unlock()
		return nil
	}

	pending := a.store.EventsFrom(offset)
	if len(pending) == 0 {
		return nil
	}

	rows := make([]*models.ActionEvent, 0, len(pending))
	for _, e := range pending {
		rows = append(rows, eventToModel(a.userID, e))
	}
	if err := a.remote.AppendHistory(ctx, rows); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	a.mu.Lock()
	a.pushed = offset + len(pending)
	a.mu.Unlock()
	return nil
}

// Pull loads the remote aggregate and history and reconciles them into the
// local store. Returns dirty=true when the local copy won and must be pushed.
func (a *AggregateSyncer) Pull(ctx context.Context) (bool, error) {
	remoteState, err := a.remote.GetAggregate(ctx, a.userID)
	if err != nil {
		return false, fmt.Errorf("get aggregate: %w", err)
	}
	if remoteState == nil {
		// First load for this user: nothing remote to reconcile. Local
		// state (possibly cache-hydrated) is authoritative, and the empty
		// remote log holds none of it yet.
		a.mu.Lock()
		a.pushed = 0
		a.mu.Unlock()
		return a.store.State().Version > 0, nil
	}

	rows, err := a.remote.ListHistory(ctx, a.userID)
	if err != nil {
		return false, fmt.Errorf("list history: %w", err)
	}

	outcome := a.store.Reconcile(aggregateFromModel(remoteState), eventsFromModels(rows), a.protectionWindow)
	if outcome == player.OutcomeRemoteApplied {
		a.mu.Lock()
		a.pushed = a.store.HistoryLen()
		a.mu.Unlock()
		return false, nil
	}

	// Local copy kept: remote history is the persisted prefix of ours.
	a.mu.Lock()
	a.pushed = len(rows)
	a.mu.Unlock()
	return true, nil
}
