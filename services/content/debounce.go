package content

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

// DebouncedQuery coalesces rapid query updates into a bounded rate of store
// reads. Each Update restarts the window; only the last value within a
// window fires. A monotonically increasing generation counter stamps every
// fired request, and results carrying a stale generation are dropped, so a
// slow early request can never overwrite a later one.
type DebouncedQuery[T any] struct {
	window time.Duration
	list   func(ctx context.Context) (T, error)
	search func(ctx context.Context, term string) (T, error)
	apply  func(term string, result T)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncedQuery builds a controller. list handles the empty-query
// fallback, search everything else, apply receives winning results.
func NewDebouncedQuery[T any](
	window time.Duration,
	list func(ctx context.Context) (T, error),
	search func(ctx context.Context, term string) (T, error),
	apply func(term string, result T),
) *DebouncedQuery[T] {
	return &DebouncedQuery[T]{
		window: window,
		list:   list,
		search: search,
		apply:  apply,
	}
}

// Update registers a new query value, restarting the debounce window and
// invalidating any request already in flight.
func (d *DebouncedQuery[T]) Update(ctx context.Context, term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(ctx, gen, term)
	})
}

// Cancel stops the pending timer and invalidates in-flight requests.
func (d *DebouncedQuery[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *DebouncedQuery[T]) current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}

func (d *DebouncedQuery[T]) fire(ctx context.Context, gen uint64, term string) {
	if !d.current(gen) {
		return
	}

	trimmed := strings.TrimSpace(term)
	var (
		result T
		err    error
	)
	if trimmed == "" {
		result, err = d.list(ctx)
	} else {
		result, err = d.search(ctx, trimmed)
	}
	if err != nil {
		utils.GetLogger().Error("Debounced query failed", zap.String("term", trimmed), zap.Error(err))
		return
	}

	// Last writer wins by issue order, not resolve order.
	if !d.current(gen) {
		return
	}
	d.apply(term, result)
}
