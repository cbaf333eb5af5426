package notice

import (
	"context"
	"sort"
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

const noticesCollection = "notices"

func readNoticesPath(userID string) string {
	return "users/" + userID + "/readNotices"
}

// NormalizeNotice maps a raw notices document into a Notice record.
func NormalizeNotice(doc store.Document) models.Notice {
	createdAt := doc.CreatedAt()
	date := createdAt
	if date.IsZero() {
		date = time.Now()
	}
	return models.Notice{
		ID:         doc.ID,
		Title:      doc.String("title"),
		Message:    doc.String("message"),
		Date:       date.UTC().Format("2006-01-02"),
		UploadedBy: doc.String("uploadedBy"),
		CreatedAt:  createdAt,
	}
}

func normalizeNotices(docs []store.Document) []models.Notice {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt().After(docs[j].CreatedAt())
	})
	out := make([]models.Notice, 0, len(docs))
	for _, d := range docs {
		out = append(out, NormalizeNotice(d))
	}
	return out
}

func (s *DefaultNoticeService) ListNotices(ctx context.Context) []models.Notice {
	docs, err := s.Store.ListCollection(ctx, noticesCollection)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch notices", zap.Error(err))
		return []models.Notice{}
	}
	return normalizeNotices(docs)
}

func (s *DefaultNoticeService) SubscribeNotices(cb func([]models.Notice)) func() {
	return s.Store.Subscribe(noticesCollection, true, func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Notices listener error", zap.Error(err))
			cb([]models.Notice{})
			return
		}
		cb(normalizeNotices(docs))
	})
}

func (s *DefaultNoticeService) MarkAsRead(ctx context.Context, userID, noticeID string) error {
	if noticeID == "" {
		return &utils.ValidationError{Field: "noticeId", Reason: "must not be empty"}
	}
	// Guests track nothing; a tap is a no-op rather than an error.
	if userID == "" {
		return nil
	}

	path := readNoticesPath(userID) + "/" + noticeID
	if err := s.Store.SetDocument(ctx, path, map[string]interface{}{
		"readAt": time.Now(),
	}); err != nil {
		return utils.WrapWriteError("MarkAsRead", err)
	}
	return nil
}

func (s *DefaultNoticeService) ReadNoticeIDs(ctx context.Context, userID string) []string {
	if userID == "" {
		return []string{}
	}
	docs, err := s.Store.ListAll(ctx, readNoticesPath(userID))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch read notice ids", zap.String("userID", userID), zap.Error(err))
		return []string{}
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

func (s *DefaultNoticeService) SubscribeReadNotices(userID string, cb func([]string)) func() {
	if userID == "" {
		// Guests read nothing; emit the empty set once so combiners fire.
		cb([]string{})
		return func() {}
	}
	return s.Store.Subscribe(readNoticesPath(userID), false, func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Read notices listener error", zap.String("userID", userID), zap.Error(err))
			cb([]string{})
			return
		}
		ids := make([]string, 0, len(docs))
		for _, d := range docs {
			ids = append(ids, d.ID)
		}
		cb(ids)
	})
}

func (s *DefaultNoticeService) TrackUnread(userID string, cb func(int)) func() {
	tracker := newUnreadTracker(cb)
	stopNotices := s.SubscribeNotices(tracker.SetNotices)
	stopReceipts := s.SubscribeReadNotices(userID, tracker.SetReadIDs)
	return func() {
		stopNotices()
		stopReceipts()
	}
}

func (s *DefaultNoticeService) UnreadCount(ctx context.Context, userID string) int {
	return UnreadCount(s.ListNotices(ctx), s.ReadNoticeIDs(ctx, userID))
}

func (s *DefaultNoticeService) PublishNotice(ctx context.Context, title, message, uploadedBy string) (string, error) {
	if title == "" {
		return "", &utils.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if message == "" {
		return "", &utils.ValidationError{Field: "message", Reason: "must not be empty"}
	}

	id, err := s.Store.AddDocument(ctx, noticesCollection, map[string]interface{}{
		"title":      title,
		"message":    message,
		"uploadedBy": uploadedBy,
	})
	if err != nil {
		return "", utils.WrapWriteError("PublishNotice", err)
	}

	if s.Push != nil {
		payload := models.NoticePushPayload{NoticeID: id, Title: title, Body: message}
		if err := s.Push.EnqueueNoticePush(ctx, payload); err != nil {
			// The notice is already durable; a failed broadcast is not fatal.
			utils.GetLogger().Error("Failed to enqueue notice push", zap.String("noticeID", id), zap.Error(err))
		}
	}
	return id, nil
}
