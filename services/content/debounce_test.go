package content

import (
	"context"
	"sync"
	"testing"
	"time"
)

type applied struct {
	term   string
	result string
}

// debounceHarness collects apply calls from a DebouncedQuery under test.
type debounceHarness struct {
	mu      sync.Mutex
	applies []applied

	// searchDelay slows the search query down to simulate a laggy store.
	searchDelay time.Duration
}

func (h *debounceHarness) list(ctx context.Context) (string, error) {
	return "all", nil
}

func (h *debounceHarness) search(ctx context.Context, term string) (string, error) {
	if h.searchDelay > 0 {
		time.Sleep(h.searchDelay)
	}
	return "results:" + term, nil
}

func (h *debounceHarness) apply(term, result string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applies = append(h.applies, applied{term: term, result: result})
}

func (h *debounceHarness) snapshot() []applied {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]applied, len(h.applies))
	copy(out, h.applies)
	return out
}

func (h *debounceHarness) waitFor(t *testing.T, n int, timeout time.Duration) []applied {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := h.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d applies, have %v", n, h.snapshot())
	return nil
}

func newHarness(window time.Duration) (*debounceHarness, *DebouncedQuery[string]) {
	h := &debounceHarness{}
	d := NewDebouncedQuery(window, h.list, h.search, h.apply)
	return h, d
}

func TestDebounceCoalescesRapidUpdates(t *testing.T) {
	h, d := newHarness(50 * time.Millisecond)
	ctx := context.Background()

	// Two keystrokes inside one window: only the later value may fire.
	d.Update(ctx, "g")
	time.Sleep(10 * time.Millisecond)
	d.Update(ctx, "gr")

	got := h.waitFor(t, 1, time.Second)
	time.Sleep(100 * time.Millisecond) // give a stray "g" query time to surface
	got = h.snapshot()

	if len(got) != 1 {
		t.Fatalf("got %d applies %v, want exactly 1", len(got), got)
	}
	if got[0].term != "gr" || got[0].result != "results:gr" {
		t.Errorf("applied %+v, want the final term gr", got[0])
	}
}

func TestDebounceFiresOncePerSettledWindow(t *testing.T) {
	h, d := newHarness(30 * time.Millisecond)
	ctx := context.Background()

	d.Update(ctx, "alpha")
	h.waitFor(t, 1, time.Second)
	d.Update(ctx, "beta")
	got := h.waitFor(t, 2, time.Second)

	if got[0].term != "alpha" || got[1].term != "beta" {
		t.Errorf("applies = %v, want [alpha beta]", got)
	}
}

func TestDebounceEmptyTermFallsBackToList(t *testing.T) {
	h, d := newHarness(20 * time.Millisecond)

	d.Update(context.Background(), "   ")
	got := h.waitFor(t, 1, time.Second)

	if got[0].result != "all" {
		t.Errorf("blank query applied %+v, want the list fallback", got[0])
	}
}

func TestDebounceStaleResultNeverLands(t *testing.T) {
	h, d := newHarness(10 * time.Millisecond)
	h.searchDelay = 60 * time.Millisecond
	ctx := context.Background()

	// The first query fires and is still in flight when the second value
	// arrives. Its late result must be dropped even though it resolves after
	// the winner was issued.
	d.Update(ctx, "slow")
	time.Sleep(30 * time.Millisecond)
	d.Update(ctx, "fast")

	got := h.waitFor(t, 1, time.Second)
	time.Sleep(120 * time.Millisecond)
	got = h.snapshot()

	for _, a := range got {
		if a.term == "slow" {
			t.Fatalf("stale in-flight result landed: %v", got)
		}
	}
	if got[len(got)-1].term != "fast" {
		t.Errorf("final apply = %+v, want fast", got[len(got)-1])
	}
}

func TestDebounceCancelDropsPendingWork(t *testing.T) {
	h, d := newHarness(20 * time.Millisecond)

	d.Update(context.Background(), "doomed")
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	if got := h.snapshot(); len(got) != 0 {
		t.Fatalf("applies after Cancel = %v, want none", got)
	}
}
