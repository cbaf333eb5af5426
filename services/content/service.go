package content

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/services/content/cache"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

const recentLimit = 3

// sortDocsDesc re-sorts newest first. The store already orders this way, but
// a stable local sort keeps ties deterministic (store order is preserved).
func sortDocsDesc(docs []store.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt().After(docs[j].CreatedAt())
	})
}

func normalizeAll[T any](docs []store.Document, normalize func(store.Document) T) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, normalize(d))
	}
	return out
}

// listCached serves from the snapshot cache when fresh, otherwise fetches,
// normalizes and repopulates. A fetch failure yields an empty list.
func listCached[T any](ctx context.Context, st store.Store, snap *cache.Snapshot[T], path string, normalize func(store.Document) T) []T {
	if items, ok := snap.Items(); ok {
		return items
	}

	docs, err := st.ListCollection(ctx, path)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch collection", zap.String("collection", path), zap.Error(err))
		return []T{}
	}
	sortDocsDesc(docs)
	items := normalizeAll(docs, normalize)
	snap.Set(items)
	return items
}

func getOne[T any](ctx context.Context, st store.Store, path, id string, normalize func(store.Document) T) *T {
	doc, err := st.GetDocument(ctx, path, id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch document", zap.String("collection", path), zap.String("id", id), zap.Error(err))
		return nil
	}
	if doc == nil {
		return nil
	}
	item := normalize(*doc)
	return &item
}

func (s *DefaultContentService) ListSermons(ctx context.Context) []models.Sermon {
	return listCached(ctx, s.Store, s.sermons, string(models.ContentTypeSermons), NormalizeSermon)
}

func (s *DefaultContentService) GetSermon(ctx context.Context, id string) *models.Sermon {
	return getOne(ctx, s.Store, string(models.ContentTypeSermons), id, NormalizeSermon)
}

func (s *DefaultContentService) ListSongs(ctx context.Context) []models.Song {
	return listCached(ctx, s.Store, s.songs, string(models.ContentTypeSongs), NormalizeSong)
}

// ListSongsByCategory filters server-side by the canonical category value
// and, for compatibility with older documents, its legacy spelling.
func (s *DefaultContentService) ListSongsByCategory(ctx context.Context, category string) []models.Song {
	canonical := models.NormalizeSongCategory(category)

	docs, err := s.Store.ListWhere(ctx, string(models.ContentTypeSongs), "category", string(canonical))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch songs by category", zap.String("category", string(canonical)), zap.Error(err))
		return []models.Song{}
	}
	if canonical == models.SongCategoryAcappella {
		legacy, err := s.Store.ListWhere(ctx, string(models.ContentTypeSongs), "category", "acapella")
		if err != nil {
			utils.GetLogger().Error("Failed to fetch songs by legacy category", zap.Error(err))
		} else {
			docs = append(docs, legacy...)
		}
	}
	sortDocsDesc(docs)
	return normalizeAll(docs, NormalizeSong)
}

func (s *DefaultContentService) GetSong(ctx context.Context, id string) *models.Song {
	return getOne(ctx, s.Store, string(models.ContentTypeSongs), id, NormalizeSong)
}

func (s *DefaultContentService) ListVideos(ctx context.Context) []models.Video {
	return listCached(ctx, s.Store, s.videos, string(models.ContentTypeVideos), NormalizeVideo)
}

func (s *DefaultContentService) GetVideo(ctx context.Context, id string) *models.Video {
	return getOne(ctx, s.Store, string(models.ContentTypeVideos), id, NormalizeVideo)
}

func (s *DefaultContentService) ListQuizResources(ctx context.Context) []models.QuizResource {
	return listCached(ctx, s.Store, s.quiz, string(models.ContentTypeQuizResources), NormalizeQuizResource)
}

func (s *DefaultContentService) GetQuizResource(ctx context.Context, id string) *models.QuizResource {
	return getOne(ctx, s.Store, string(models.ContentTypeQuizResources), id, NormalizeQuizResource)
}

// RecentContent fans out three bounded queries concurrently and merges the
// results. The shared Redis cache short-circuits the fan-out when warm.
func (s *DefaultContentService) RecentContent(ctx context.Context) models.RecentContent {
	if s.Recent != nil {
		if bundle, ok := s.Recent.Get(ctx); ok {
			return bundle
		}
	}

	bundle := models.RecentContent{
		Sermons: []models.Sermon{},
		Songs:   []models.Song{},
		Videos:  []models.Video{},
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if docs, err := s.Store.ListRecent(ctx, string(models.ContentTypeSermons), recentLimit); err == nil {
			bundle.Sermons = normalizeAll(docs, NormalizeSermon)
		} else {
			utils.GetLogger().Error("Failed to fetch recent sermons", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if docs, err := s.Store.ListRecent(ctx, string(models.ContentTypeSongs), recentLimit); err == nil {
			bundle.Songs = normalizeAll(docs, NormalizeSong)
		} else {
			utils.GetLogger().Error("Failed to fetch recent songs", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if docs, err := s.Store.ListRecent(ctx, string(models.ContentTypeVideos), recentLimit); err == nil {
			bundle.Videos = normalizeAll(docs, NormalizeVideo)
		} else {
			utils.GetLogger().Error("Failed to fetch recent videos", zap.Error(err))
		}
	}()
	wg.Wait()

	if s.Recent != nil {
		s.Recent.Set(ctx, bundle)
	}
	return bundle
}

// Search pulls the full collections and matches in memory. Catalogs are
// small (tens to low hundreds of items); this does not pretend to scale to
// large ones.
func (s *DefaultContentService) Search(ctx context.Context, term, category string) models.SearchResults {
	needle := strings.ToLower(strings.TrimSpace(term))
	facet := models.SongCategory("")
	if category != "" {
		facet = models.NormalizeSongCategory(category)
	}

	results := models.SearchResults{
		Sermons: []models.Sermon{},
		Songs:   []models.Song{},
		Videos:  []models.Video{},
	}

	for _, sermon := range s.ListSermons(ctx) {
		if strings.Contains(strings.ToLower(sermon.Title), needle) ||
			strings.Contains(strings.ToLower(sermon.Content), needle) {
			results.Sermons = append(results.Sermons, sermon)
		}
	}
	for _, song := range s.ListSongs(ctx) {
		if !strings.Contains(strings.ToLower(song.Title), needle) {
			continue
		}
		if facet != "" && song.Category != facet {
			continue
		}
		results.Songs = append(results.Songs, song)
	}
	for _, video := range s.ListVideos(ctx) {
		if strings.Contains(strings.ToLower(video.Title), needle) {
			results.Videos = append(results.Videos, video)
		}
	}
	return results
}

// subscribeList adapts a raw store subscription into a normalized one.
// Listener errors are logged and surfaced as an empty list.
func subscribeList[T any](st store.Store, path string, normalize func(store.Document) T, cb func([]T)) func() {
	return st.Subscribe(path, true, func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Listener error", zap.String("collection", path), zap.Error(err))
			cb([]T{})
			return
		}
		sortDocsDesc(docs)
		cb(normalizeAll(docs, normalize))
	})
}

func (s *DefaultContentService) SubscribeSermons(cb func([]models.Sermon)) func() {
	return subscribeList(s.Store, string(models.ContentTypeSermons), NormalizeSermon, cb)
}

func (s *DefaultContentService) SubscribeSongs(cb func([]models.Song)) func() {
	return subscribeList(s.Store, string(models.ContentTypeSongs), NormalizeSong, cb)
}

func (s *DefaultContentService) SubscribeVideos(cb func([]models.Video)) func() {
	return subscribeList(s.Store, string(models.ContentTypeVideos), NormalizeVideo, cb)
}
