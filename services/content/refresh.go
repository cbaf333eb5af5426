package content

import (
	"context"
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

// Refresher keeps the cached views warm. It listens to the three content
// collections and rebuilds the shared recent bundle when they change; bursts
// of snapshot emissions (an admin uploading several items back to back)
// collapse into a single rebuild through the debounce controller.
type Refresher struct {
	svc      *DefaultContentService
	debounce *DebouncedQuery[models.RecentContent]
	stops    []func()
}

// StartRefresher subscribes to the content collections and returns the
// running refresher. Callers must Stop it on shutdown.
func StartRefresher(svc *DefaultContentService, window time.Duration) *Refresher {
	r := &Refresher{svc: svc}

	rebuild := func(ctx context.Context) (models.RecentContent, error) {
		svc.InvalidateSnapshots(ctx)
		return svc.RecentContent(ctx), nil
	}

	r.debounce = NewDebouncedQuery(
		window,
		rebuild,
		func(ctx context.Context, _ string) (models.RecentContent, error) { return rebuild(ctx) },
		func(_ string, bundle models.RecentContent) {
			utils.GetLogger().Debug("Recent content refreshed",
				zap.Int("sermons", len(bundle.Sermons)),
				zap.Int("songs", len(bundle.Songs)),
				zap.Int("videos", len(bundle.Videos)))
		},
	)

	onChange := func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Refresher listener error", zap.Error(err))
			return
		}
		r.debounce.Update(context.Background(), "")
	}

	for _, t := range []models.ContentType{
		models.ContentTypeSermons,
		models.ContentTypeSongs,
		models.ContentTypeVideos,
	} {
		r.stops = append(r.stops, svc.Store.Subscribe(string(t), true, onChange))
	}
	return r
}

// Stop tears down the listeners and pending refreshes.
func (r *Refresher) Stop() {
	r.debounce.Cancel()
	for _, stop := range r.stops {
		stop()
	}
	r.stops = nil
}

// InvalidateSnapshots drops every per-type snapshot plus the shared recent
// bundle, forcing the next read to hit the store.
func (s *DefaultContentService) InvalidateSnapshots(ctx context.Context) {
	s.sermons.Invalidate()
	s.songs.Invalidate()
	s.videos.Invalidate()
	s.quiz.Invalidate()
	if s.Recent != nil {
		s.Recent.Invalidate(ctx)
	}
}
