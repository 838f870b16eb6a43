// Package sync mirrors local state to the remote store: a debounced
// change-detector pushes full snapshots per watched collection, and the
// startup pull reconciles the remote copy against local cached values.
package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vitalisapp/vitalis/vitalis/logger"
)

// Collection names one watched collection.
type Collection string

const (
	CollectionPlayer Collection = "player"
	CollectionTasks  Collection = "tasks"
	CollectionHabits Collection = "habits"
	CollectionGoals  Collection = "goals"
	CollectionShop   Collection = "shop"
)

// collState is the per-collection push state machine. Idle is the only state
// from which a new pending push may be scheduled; a change arriving during
// PendingPush resets the debounce timer, a change during Pushing re-marks the
// collection for the next round.
type collState int

const (
	stateIdle collState = iota
	statePendingPush
	statePushing
)

const pushTimeout = 15 * time.Second

// CollectionSyncer pushes and pulls one watched collection. Pull returns
// dirty=true when the local copy turned out fresher than the remote one and
// must be pushed.
type CollectionSyncer interface {
	Name() Collection
	Push(ctx context.Context) error
	Pull(ctx context.Context) (dirty bool, err error)
}

// Coordinator owns the debounce timer and the per-collection state machines.
// Push failures are logged and absorbed; the next debounced trigger or the
// next startup pull retries. There is no retry queue.
type Coordinator struct {
	userID   string
	debounce time.Duration
	baseCtx  context.Context

	mu      sync.Mutex
	syncers map[Collection]CollectionSyncer
	states  map[Collection]collState
	dirty   map[Collection]bool
	timer   *time.Timer
	stopped bool
}

func NewCoordinator(ctx context.Context, userID string, debounce time.Duration) *Coordinator {
	return &Coordinator{
		userID:   userID,
		debounce: debounce,
		baseCtx:  ctx,
		syncers:  make(map[Collection]CollectionSyncer),
		states:   make(map[Collection]collState),
		dirty:    make(map[Collection]bool),
	}
}

func (c *Coordinator) Register(s CollectionSyncer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncers[s.Name()] = s
	c.states[s.Name()] = stateIdle
}

// MarkDirty records a local mutation and (re)schedules the debounced push.
func (c *Coordinator) MarkDirty(name Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	if _, ok := c.syncers[name]; !ok {
		return
	}

	c.dirty[name] = true
	switch c.states[name] {
	case stateIdle:
		c.states[name] = statePendingPush
		c.resetTimerLocked()
	case statePendingPush:
		c.resetTimerLocked()
	case statePushing:
		// The running push already snapshotted the old value; the dirty
		// marker keeps the collection queued for the next round.
	}
}

func (c *Coordinator) resetTimerLocked() {
	if c.timer == nil {
		c.timer = time.AfterFunc(c.debounce, c.drain)
		return
	}
	c.timer.Reset(c.debounce)
}

// drain runs when the debounce timer fires: it snapshots the dirty set and
// performs one push per pending collection.
func (c *Coordinator) drain() {
	c.mu.Lock()
	var batch []CollectionSyncer
	for name, d := range c.dirty {
		if !d || c.states[name] != statePendingPush {
			continue
		}
		c.states[name] = statePushing
		c.dirty[name] = false
		batch = append(batch, c.syncers[name])
	}
	c.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	c.push(batch)
}

// push runs the sub-pushes independently: a failure in one collection never
// blocks or rolls back the others.
func (c *Coordinator) push(batch []CollectionSyncer) {
	g := new(errgroup.Group)
	for _, s := range batch {
		s := s
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(c.baseCtx, pushTimeout)
			defer cancel()

			start := time.Now()
			err := s.Push(ctx)
			logger.LogSync(string(s.Name()), time.Since(start), err)

			c.mu.Lock()
			c.states[s.Name()] = stateIdle
			if c.dirty[s.Name()] && !c.stopped {
				c.states[s.Name()] = statePendingPush
				c.resetTimerLocked()
			}
			c.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

// PushAll serializes the current value of every watched collection and
// writes each to the remote store, ignoring the debounce.
func (c *Coordinator) PushAll(ctx context.Context) {
	c.mu.Lock()
	batch := make([]CollectionSyncer, 0, len(c.syncers))
	for name, s := range c.syncers {
		if c.states[name] == statePushing {
			continue
		}
		c.states[name] = statePushing
		c.dirty[name] = false
		batch = append(batch, s)
	}
	c.mu.Unlock()

	g := new(errgroup.Group)
	for _, s := range batch {
		s := s
		g.Go(func() error {
			start := time.Now()
			err := s.Push(ctx)
			logger.LogSync(string(s.Name()), time.Since(start), err)

			c.mu.Lock()
			c.states[s.Name()] = stateIdle
			c.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

// PullAll reads every remote table and reconciles. Per-collection failures
// are logged and skipped; the remaining collections still load.
func (c *Coordinator) PullAll(ctx context.Context) {
	c.mu.Lock()
	syncers := make([]CollectionSyncer, 0, len(c.syncers))
	for _, s := range c.syncers {
		syncers = append(syncers, s)
	}
	c.mu.Unlock()

	for _, s := range syncers {
		dirty, err := s.Pull(ctx)
		if err != nil {
			slog.Error("Pull failed",
				slog.String("type", "sync"),
				slog.String("collection", string(s.Name())),
				slog.String("user_id", c.userID),
				slog.Any("error", err))
			continue
		}
		if dirty {
			c.MarkDirty(s.Name())
		}
	}
}

// Flush performs one final best-effort push of everything. Called on
// shutdown; not guaranteed to complete.
func (c *Coordinator) Flush(ctx context.Context) {
	slog.Info("Flushing pending state",
		slog.String("type", "sync"),
		slog.String("user_id", c.userID))
	c.PushAll(ctx)
}

// Stop cancels the pending debounce. In-flight pushes finish on their own.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

// State reports the current push state of a collection. Test hook.
func (c *Coordinator) State(name Collection) (pending, pushing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[name] == statePendingPush, c.states[name] == statePushing
}
