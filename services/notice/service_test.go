package notice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"
)

var noticeTime = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func seedNotice(st *store.MemoryStore, id, title string, createdAt time.Time) {
	st.Seed("notices", id, map[string]interface{}{
		"title":     title,
		"message":   "body of " + title,
		"createdAt": createdAt,
	})
}

func seedReceipt(st *store.MemoryStore, userID, noticeID string) {
	st.Seed("users/"+userID+"/readNotices", noticeID, map[string]interface{}{
		"readAt": noticeTime,
	})
}

func TestListNoticesOrdersNewestFirst(t *testing.T) {
	st := store.NewMemoryStore()
	seedNotice(st, "n1", "Old", noticeTime)
	seedNotice(st, "n2", "New", noticeTime.Add(time.Hour))
	svc := &DefaultNoticeService{Store: st}

	got := svc.ListNotices(context.Background())
	if len(got) != 2 || got[0].ID != "n2" || got[1].ID != "n1" {
		t.Fatalf("notices = %v, want [n2 n1]", got)
	}
	if got[0].Date != "2026-02-10" {
		t.Errorf("Date = %q, want the creation day", got[0].Date)
	}
}

func TestListNoticesDegradesToEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	st.FailReads = errors.New("backend down")
	svc := &DefaultNoticeService{Store: st}

	got := svc.ListNotices(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("ListNotices = %v, want empty non-nil slice", got)
	}
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	seedNotice(st, "n1", "Service Update", noticeTime)
	svc := &DefaultNoticeService{Store: st}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.MarkAsRead(ctx, "u1", "n1"); err != nil {
			t.Fatalf("MarkAsRead attempt %d: %v", i+1, err)
		}
	}

	ids := svc.ReadNoticeIDs(ctx, "u1")
	if len(ids) != 1 || ids[0] != "n1" {
		t.Fatalf("ReadNoticeIDs = %v, want exactly [n1]", ids)
	}
}

func TestMarkAsReadValidation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := &DefaultNoticeService{Store: st}
	ctx := context.Background()

	err := svc.MarkAsRead(ctx, "u1", "")
	if _, ok := utils.AsValidationError(err); !ok {
		t.Fatalf("empty notice id returned %v, want a validation error", err)
	}

	// Guests are a silent no-op: no error, no write.
	if err := svc.MarkAsRead(ctx, "", "n1"); err != nil {
		t.Fatalf("guest MarkAsRead = %v, want nil", err)
	}
	if ids := svc.ReadNoticeIDs(ctx, ""); len(ids) != 0 {
		t.Fatalf("guest ReadNoticeIDs = %v, want empty", ids)
	}
}

func TestMarkAsReadPropagatesWriteErrors(t *testing.T) {
	st := store.NewMemoryStore()
	st.FailWrites = errors.New("rejected")
	svc := &DefaultNoticeService{Store: st}

	err := svc.MarkAsRead(context.Background(), "u1", "n1")
	we, ok := utils.AsWriteError(err)
	if !ok {
		t.Fatalf("MarkAsRead = %v, want a categorized write error", err)
	}
	if we.Category != utils.WriteErrorGeneric {
		t.Errorf("category = %q, want generic for a non-gRPC failure", we.Category)
	}
}

func TestUnreadCount(t *testing.T) {
	tests := []struct {
		name    string
		notices []string
		readIDs []string
		want    int
	}{
		{"no notices", nil, nil, 0},
		{"nothing read", []string{"n1", "n2"}, nil, 2},
		{"one of three read", []string{"n1", "n2", "n3"}, []string{"n1"}, 2},
		{"all read", []string{"n1", "n2"}, []string{"n1", "n2"}, 0},
		{"stale receipt for a deleted notice", []string{"n1"}, []string{"gone", "n1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notices := make([]models.Notice, len(tt.notices))
			for i, id := range tt.notices {
				notices[i] = models.Notice{ID: id}
			}
			if got := UnreadCount(notices, tt.readIDs); got != tt.want {
				t.Errorf("UnreadCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnreadCountOneShot(t *testing.T) {
	st := store.NewMemoryStore()
	seedNotice(st, "n1", "A", noticeTime)
	seedNotice(st, "n2", "B", noticeTime.Add(time.Minute))
	seedNotice(st, "n3", "C", noticeTime.Add(2*time.Minute))
	seedReceipt(st, "u1", "n1")
	svc := &DefaultNoticeService{Store: st}
	ctx := context.Background()

	if got := svc.UnreadCount(ctx, "u1"); got != 2 {
		t.Errorf("UnreadCount(u1) = %d, want 2", got)
	}
	// Guests carry no read state: every notice counts as unread.
	if got := svc.UnreadCount(ctx, ""); got != 3 {
		t.Errorf("UnreadCount(guest) = %d, want 3", got)
	}
}

func TestTrackUnreadReactsToBothStreams(t *testing.T) {
	st := store.NewMemoryStore()
	seedNotice(st, "n1", "A", noticeTime)
	seedNotice(st, "n2", "B", noticeTime.Add(time.Minute))
	svc := &DefaultNoticeService{Store: st}
	ctx := context.Background()

	var counts []int
	stop := svc.TrackUnread("u1", func(n int) {
		counts = append(counts, n)
	})
	defer stop()

	if len(counts) == 0 || counts[len(counts)-1] != 2 {
		t.Fatalf("initial counts = %v, want final 2", counts)
	}

	// Reading a notice updates through the receipt stream.
	if err := svc.MarkAsRead(ctx, "u1", "n1"); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}
	if counts[len(counts)-1] != 1 {
		t.Fatalf("counts after read = %v, want final 1", counts)
	}

	// A new notice updates through the notice stream.
	if _, err := svc.PublishNotice(ctx, "C", "third", "admin"); err != nil {
		t.Fatalf("PublishNotice: %v", err)
	}
	if counts[len(counts)-1] != 2 {
		t.Fatalf("counts after publish = %v, want final 2", counts)
	}
}

func TestTrackUnreadGuest(t *testing.T) {
	st := store.NewMemoryStore()
	seedNotice(st, "n1", "A", noticeTime)
	svc := &DefaultNoticeService{Store: st}

	var counts []int
	stop := svc.TrackUnread("", func(n int) {
		counts = append(counts, n)
	})
	defer stop()

	if len(counts) == 0 || counts[len(counts)-1] != 1 {
		t.Fatalf("guest counts = %v, want 1 (no read state)", counts)
	}
}

func TestUnreadTrackerWaitsForBothStreams(t *testing.T) {
	var emitted []int
	tracker := newUnreadTracker(func(n int) { emitted = append(emitted, n) })

	tracker.SetNotices([]models.Notice{{ID: "n1"}, {ID: "n2"}})
	if len(emitted) != 0 {
		t.Fatalf("emitted %v before receipts arrived, want nothing", emitted)
	}

	tracker.SetReadIDs([]string{"n1"})
	if len(emitted) != 1 || emitted[0] != 1 {
		t.Fatalf("emitted = %v, want [1] once both streams are live", emitted)
	}

	tracker.SetNotices([]models.Notice{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}})
	if emitted[len(emitted)-1] != 2 {
		t.Fatalf("emitted = %v, want final 2 after new notice", emitted)
	}
}

type fakeBroadcaster struct {
	payloads []models.NoticePushPayload
	err      error
}

func (f *fakeBroadcaster) EnqueueNoticePush(ctx context.Context, payload models.NoticePushPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestPublishNotice(t *testing.T) {
	st := store.NewMemoryStore()
	push := &fakeBroadcaster{}
	svc := &DefaultNoticeService{Store: st, Push: push}
	ctx := context.Background()

	id, err := svc.PublishNotice(ctx, "Harvest Service", "Sunday 9am", "admin@example.com")
	if err != nil {
		t.Fatalf("PublishNotice: %v", err)
	}
	if id == "" {
		t.Fatal("PublishNotice returned an empty id")
	}

	notices := svc.ListNotices(ctx)
	if len(notices) != 1 || notices[0].Title != "Harvest Service" {
		t.Fatalf("notices = %v, want the published one", notices)
	}
	if len(push.payloads) != 1 || push.payloads[0].NoticeID != id {
		t.Fatalf("push payloads = %v, want one for %s", push.payloads, id)
	}
}

func TestPublishNoticeValidation(t *testing.T) {
	svc := &DefaultNoticeService{Store: store.NewMemoryStore()}
	ctx := context.Background()

	if _, err := svc.PublishNotice(ctx, "", "body", "admin"); err == nil {
		t.Error("empty title accepted, want a validation error")
	}
	if _, err := svc.PublishNotice(ctx, "title", "", "admin"); err == nil {
		t.Error("empty message accepted, want a validation error")
	}
}

func TestPublishNoticeSurvivesPushFailure(t *testing.T) {
	st := store.NewMemoryStore()
	push := &fakeBroadcaster{err: errors.New("queue down")}
	svc := &DefaultNoticeService{Store: st, Push: push}

	id, err := svc.PublishNotice(context.Background(), "Title", "Body", "admin")
	if err != nil {
		t.Fatalf("PublishNotice = %v, want success despite a failed broadcast", err)
	}
	if id == "" {
		t.Fatal("notice was not stored")
	}
}
