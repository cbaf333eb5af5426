package content

import (
	"context"
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/services/content/cache"
)

// ContentService is the query layer over the content collections. Read
// failures degrade to empty results; they are logged, never returned.
type ContentService interface {
	ListSermons(ctx context.Context) []models.Sermon
	GetSermon(ctx context.Context, id string) *models.Sermon
	ListSongs(ctx context.Context) []models.Song
	ListSongsByCategory(ctx context.Context, category string) []models.Song
	GetSong(ctx context.Context, id string) *models.Song
	ListVideos(ctx context.Context) []models.Video
	GetVideo(ctx context.Context, id string) *models.Video
	ListQuizResources(ctx context.Context) []models.QuizResource
	GetQuizResource(ctx context.Context, id string) *models.QuizResource

	// RecentContent returns the landing overview: up to three newest items
	// per collection.
	RecentContent(ctx context.Context) models.RecentContent

	// Search matches term case-insensitively against titles (and sermon
	// bodies), optionally restricted to a song category facet.
	Search(ctx context.Context, term, category string) models.SearchResults

	SubscribeSermons(cb func([]models.Sermon)) func()
	SubscribeSongs(cb func([]models.Song)) func()
	SubscribeVideos(cb func([]models.Video)) func()
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Store  store.Store
	Recent *RecentCache // optional shared cache for the landing bundle

	sermons *cache.Snapshot[models.Sermon]
	songs   *cache.Snapshot[models.Song]
	videos  *cache.Snapshot[models.Video]
	quiz    *cache.Snapshot[models.QuizResource]
}

// NewDefaultContentService wires the service with per-type snapshot caches.
func NewDefaultContentService(st store.Store, recent *RecentCache, ttl time.Duration) *DefaultContentService {
	return &DefaultContentService{
		Store:  st,
		Recent: recent,
		sermons: cache.New(string(models.ContentTypeSermons), ttl,
			func(s models.Sermon) string { return s.ID }),
		songs: cache.New(string(models.ContentTypeSongs), ttl,
			func(s models.Song) string { return s.ID }),
		videos: cache.New(string(models.ContentTypeVideos), ttl,
			func(v models.Video) string { return v.ID }),
		quiz: cache.New(string(models.ContentTypeQuizResources), ttl,
			func(q models.QuizResource) string { return q.ID }),
	}
}
