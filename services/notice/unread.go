package notice

import (
	"sync"

	"github.com/Omoefe-bazunu/hhaven/models"
)

// UnreadCount is the derivation both streams feed into: the number of
// notices whose id carries no read receipt.
func UnreadCount(notices []models.Notice, readIDs []string) int {
	read := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		read[id] = struct{}{}
	}
	count := 0
	for _, n := range notices {
		if _, ok := read[n.ID]; !ok {
			count++
		}
	}
	return count
}

// unreadTracker is a combine-latest over the notice stream and the
// read-receipt stream. The count is recomputed from the latest snapshot of
// both whenever either emits; nothing is maintained incrementally. No value
// is emitted until both streams have produced their first snapshot, so a
// fast notices emission cannot briefly report everything unread.
type unreadTracker struct {
	mu           sync.Mutex
	notices      []models.Notice
	readIDs      []string
	haveNotices  bool
	haveReceipts bool
	emit         func(int)
}

func newUnreadTracker(emit func(int)) *unreadTracker {
	return &unreadTracker{emit: emit}
}

func (t *unreadTracker) SetNotices(notices []models.Notice) {
	t.mu.Lock()
	t.notices = notices
	t.haveNotices = true
	t.recomputeLocked()
}

func (t *unreadTracker) SetReadIDs(ids []string) {
	t.mu.Lock()
	t.readIDs = ids
	t.haveReceipts = true
	t.recomputeLocked()
}

// recomputeLocked releases the mutex before emitting so a callback may call
// back into the tracker's owner.
func (t *unreadTracker) recomputeLocked() {
	if !t.haveNotices || !t.haveReceipts {
		t.mu.Unlock()
		return
	}
	count := UnreadCount(t.notices, t.readIDs)
	emit := t.emit
	t.mu.Unlock()
	emit(count)
}
