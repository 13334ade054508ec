package collection

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/idgen"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/metrics"
)

// Status is the busy/error pair rendered by the view layer.
type Status struct {
	Loading bool
	Err     error
}

type Collection[T any] struct {
	opts     Options[T]
	storage  Storage
	notifier Notifier
	log      logging.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	// opMu serializes read-modify-write sequences.
	opMu sync.Mutex

	mu      sync.RWMutex
	items   []T
	loading bool
	err     error
}

// New returns an empty collection in the loading state; call Load before use.
func New[T any](opts Options[T], deps Deps) *Collection[T] {
	c := &Collection[T]{
		opts:     opts,
		storage:  deps.Storage,
		notifier: deps.Notifier,
		log:      deps.Logger,
		metrics:  deps.Metrics,
		now:      deps.Now,
		loading:  true,
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.log == nil {
		c.log = logging.NewNopLogger()
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.log = c.log.With("collection", opts.Key)
	return c
}

// Load replaces the cache with the stored collection. A key that was never
// written yields an empty collection. Load always leaves the collection
// ready; on failure the cache is empty and the error is recorded.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading()

	var items []T
	_, err := c.storage.Get(ctx, c.opts.Key, &items)
	if err != nil {
		err = fmt.Errorf("load %s: %w", c.opts.Key, err)
		items = nil
		c.log.Error(ctx, "load failed", "error", err)
	} else {
		c.log.Debug(ctx, "loaded", "count", len(items))
	}
	c.metrics.ObserveOperation(c.opts.Key, string(OpLoad), err)

	c.mu.Lock()
	c.items = items
	c.loading = false
	c.err = err
	c.mu.Unlock()

	return slices.Clone(items), err
}

// Add validates rec, assigns its id and stamps, appends it and persists.
func (c *Collection[T]) Add(ctx context.Context, rec T) (T, error) {
	return c.mutate(ctx, OpAdd, func(current []T) ([]T, T, error) {
		c.opts.Init(&rec, idgen.New(c.opts.IDPrefix), c.now())
		if err := c.verify(OpAdd, current, rec); err != nil {
			return nil, rec, err
		}
		return append(current, rec), rec, nil
	})
}

// Update applies change to the record with id, refreshes its modification
// stamp, validates and persists. It fails with common.ErrorNotFound when
// no such record exists.
func (c *Collection[T]) Update(ctx context.Context, id string, change func(*T)) (T, error) {
	return c.mutate(ctx, OpUpdate, func(current []T) ([]T, T, error) {
		i := c.indexOf(current, id)
		if i < 0 {
			var zero T
			return nil, zero, fmt.Errorf("%w: %s %s", common.ErrorNotFound, strings.ToLower(c.opts.Entity), id)
		}

		rec := current[i]
		change(&rec)
		if got := c.opts.ID(rec); got != id {
			return nil, rec, fmt.Errorf("%w: id cannot change (%s -> %s)", common.ErrorValidation, id, got)
		}
		if c.opts.Touch != nil {
			c.opts.Touch(&rec, c.stampAfter(current[i]))
		}
		if err := c.verify(OpUpdate, current, rec); err != nil {
			return nil, rec, err
		}
		current[i] = rec
		return current, rec, nil
	})
}

// Delete removes the record with id and persists. Deleting an unknown id
// still persists the unchanged collection and reports true.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	_, err := c.mutate(ctx, OpDelete, func(current []T) ([]T, T, error) {
		var removed T
		next := current[:0]
		for _, rec := range current {
			if c.opts.ID(rec) == id {
				removed = rec
				continue
			}
			next = append(next, rec)
		}
		return next, removed, nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteWhere removes every record matching pred in one write and returns
// how many were removed.
func (c *Collection[T]) DeleteWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	_, err := c.mutate(ctx, OpDelete, func(current []T) ([]T, T, error) {
		var last T
		next := current[:0]
		for _, rec := range current {
			if pred(rec) {
				last = rec
				removed++
				continue
			}
			next = append(next, rec)
		}
		return next, last, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Get looks a record up in the cache.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(c.items, id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the cache in stored order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Filter returns the cached records matching pred, in stored order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, rec := range c.items {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Count returns the number of cached records matching pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, rec := range c.items {
		if pred(rec) {
			n++
		}
	}
	return n
}

func (c *Collection[T]) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{Loading: c.loading, Err: c.err}
}

// mutate runs one serialized read-modify-write. build receives a private
// copy of the cache and returns the next collection and the affected record.
func (c *Collection[T]) mutate(ctx context.Context, op Op, build func(current []T) ([]T, T, error)) (T, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	current := c.setLoading()

	next, rec, err := build(current)
	if err == nil {
		if next == nil {
			next = []T{}
		}
		err = c.storage.Set(ctx, c.opts.Key, next)
	}

	c.metrics.ObserveOperation(c.opts.Key, string(op), err)

	c.mu.Lock()
	c.loading = false
	c.err = err
	if err == nil {
		c.items = next
	}
	c.mu.Unlock()

	if err != nil {
		c.notifier.Error(fmt.Sprintf("Failed to %s %s: %v", op, strings.ToLower(c.opts.Entity), err))
		c.log.Error(ctx, "operation failed", "op", op, "error", err)
		var zero T
		return zero, err
	}

	if op == OpDelete && c.opts.ID(rec) == "" {
		c.notifier.Info(fmt.Sprintf("%s not found; nothing deleted", c.opts.Entity))
		c.log.Info(ctx, "nothing matched", "op", op)
		return rec, nil
	}
	c.notifier.Success(c.describe(op, rec))
	c.log.Info(ctx, "operation succeeded", "op", op, "id", c.opts.ID(rec))
	return rec, nil
}

// setLoading marks the collection busy and returns a copy of the cache.
func (c *Collection[T]) setLoading() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	return slices.Clone(c.items)
}

func (c *Collection[T]) verify(op Op, current []T, rec T) error {
	if v, ok := any(rec).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if c.opts.Check != nil {
		return c.opts.Check(op, current, rec)
	}
	return nil
}

// stampAfter returns the current time, moved forward if needed so that it
// is strictly after prev's modification stamp.
func (c *Collection[T]) stampAfter(prev T) time.Time {
	now := c.now()
	if c.opts.UpdatedAt == nil {
		return now
	}
	if last := c.opts.UpdatedAt(prev); !now.After(last) {
		now = last.Add(time.Millisecond)
	}
	return now
}

func (c *Collection[T]) describe(op Op, rec T) string {
	if c.opts.Describe != nil {
		if msg := c.opts.Describe(op, rec); msg != "" {
			return msg
		}
	}
	verb := map[Op]string{OpAdd: "added", OpUpdate: "updated", OpDelete: "deleted"}[op]
	return fmt.Sprintf("%s %s successfully", c.opts.Entity, verb)
}

func (c *Collection[T]) indexOf(items []T, id string) int {
	return slices.IndexFunc(items, func(rec T) bool { return c.opts.ID(rec) == id })
}
