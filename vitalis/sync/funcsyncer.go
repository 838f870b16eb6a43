package sync

import "context"

// FuncSyncer adapts a pair of closures into a CollectionSyncer. The sibling
// collection stores register through this instead of implementing the
// interface themselves.
type FuncSyncer struct {
	Collection Collection
	PushFunc   func(ctx context.Context) error
	PullFunc   func(ctx context.Context) error
}

func (f FuncSyncer) Name() Collection {
	return f.Collection
}

func (f FuncSyncer) Push(ctx context.Context) error {
	return f.PushFunc(ctx)
}

func (f FuncSyncer) Pull(ctx context.Context) (bool, error) {
	if f.PullFunc == nil {
		return false, nil
	}
	return false, f.PullFunc(ctx)
}
