package cache

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSnapshot(ttl time.Duration) (*Snapshot[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	snap := New[string]("songs", ttl, func(s string) string { return s })
	snap.Now = clock.Now
	return snap, clock
}

func TestSnapshotEmptyMisses(t *testing.T) {
	snap, _ := newTestSnapshot(time.Minute)
	if _, ok := snap.Get(); ok {
		t.Fatal("empty snapshot reported a hit")
	}
}

func TestSnapshotFreshness(t *testing.T) {
	ttl := 5 * time.Minute
	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"immediately", 0, true},
		{"within window", ttl - time.Millisecond, true},
		{"exactly at boundary", ttl, false},
		{"past boundary", ttl + time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, clock := newTestSnapshot(ttl)
			snap.Set([]string{"a", "b"})
			clock.Advance(tt.elapsed)

			items, ok := snap.Get()
			if ok != tt.wantHit {
				t.Fatalf("Get() hit = %v, want %v", ok, tt.wantHit)
			}
			if tt.wantHit && len(items) != 2 {
				t.Fatalf("Get() returned %d items, want 2", len(items))
			}
		})
	}
}

func TestSnapshotCompositeKeys(t *testing.T) {
	snap, _ := newTestSnapshot(time.Minute)
	// Duplicate source values must still produce distinct keys.
	snap.Set([]string{"t101", "t101", "t205"})

	items, ok := snap.Get()
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	want := []string{"songs_t101_0", "songs_t101_1", "songs_t205_2"}
	for i, w := range want {
		if items[i].Key != w {
			t.Errorf("key[%d] = %q, want %q", i, items[i].Key, w)
		}
	}
}

func TestSnapshotReturnsCopies(t *testing.T) {
	snap, _ := newTestSnapshot(time.Minute)
	snap.Set([]string{"a", "b"})

	items, _ := snap.Get()
	items[0].Item = "mutated"

	again, _ := snap.Get()
	if again[0].Item != "a" {
		t.Fatalf("cached item changed to %q after caller mutation", again[0].Item)
	}
}

func TestSnapshotInvalidate(t *testing.T) {
	snap, _ := newTestSnapshot(time.Minute)
	snap.Set([]string{"a"})
	snap.Invalidate()
	if _, ok := snap.Get(); ok {
		t.Fatal("invalidated snapshot reported a hit")
	}
}

func TestSnapshotRefreshRestartsWindow(t *testing.T) {
	ttl := time.Minute
	snap, clock := newTestSnapshot(ttl)

	snap.Set([]string{"a"})
	clock.Advance(ttl) // stale now
	if _, ok := snap.Get(); ok {
		t.Fatal("expected stale entry")
	}

	snap.Set([]string{"b"})
	clock.Advance(ttl - time.Second)
	items, ok := snap.Items()
	if !ok || len(items) != 1 || items[0] != "b" {
		t.Fatalf("Items() = %v, %v; want fresh [b]", items, ok)
	}
}
