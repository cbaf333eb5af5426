package notice

import (
	"context"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
)

// Broadcaster queues a push broadcast for a freshly published notice.
type Broadcaster interface {
	EnqueueNoticePush(ctx context.Context, payload models.NoticePushPayload) error
}

// NoticeService owns notices and per-user read state.
//
// Reads degrade to empty results. Writes (MarkAsRead, PublishNotice) always
// propagate their errors so callers can surface them.
type NoticeService interface {
	ListNotices(ctx context.Context) []models.Notice
	SubscribeNotices(cb func([]models.Notice)) func()

	// MarkAsRead upserts the caller's read receipt. Idempotent; marking an
	// already-read notice overwrites the receipt. Guests (empty userID) are
	// a no-op.
	MarkAsRead(ctx context.Context, userID, noticeID string) error

	ReadNoticeIDs(ctx context.Context, userID string) []string
	SubscribeReadNotices(userID string, cb func([]string)) func()

	// TrackUnread merges the notice stream and the user's read-receipt
	// stream and pushes the derived unread count on every change.
	TrackUnread(userID string, cb func(int)) func()

	// UnreadCount computes the current unread count once.
	UnreadCount(ctx context.Context, userID string) int

	// PublishNotice creates a notice and queues its push broadcast.
	PublishNotice(ctx context.Context, title, message, uploadedBy string) (string, error)
}

// DefaultNoticeService is the production implementation.
type DefaultNoticeService struct {
	Store store.Store
	Push  Broadcaster // optional; nil disables push broadcasts
}
