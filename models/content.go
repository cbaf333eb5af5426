package models

import "time"

// ContentType names a Firestore content collection.
type ContentType string

const (
	ContentTypeSermons       ContentType = "sermons"
	ContentTypeSongs         ContentType = "songs"
	ContentTypeVideos        ContentType = "videos"
	ContentTypeQuizResources ContentType = "quizResources"
)

// IsValid reports whether t names a known content collection.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeSermons, ContentTypeSongs, ContentTypeVideos, ContentTypeQuizResources:
		return true
	}
	return false
}

// SongCategory is the canonical song category enum.
type SongCategory string

const (
	SongCategoryNative    SongCategory = "native"
	SongCategoryAcappella SongCategory = "acappella"
	SongCategoryEnglish   SongCategory = "english"
)

// NormalizeSongCategory maps legacy spellings onto the canonical enum.
// Older uploads wrote "acapella"; reads must keep matching them.
func NormalizeSongCategory(raw string) SongCategory {
	if raw == "acapella" {
		return SongCategoryAcappella
	}
	return SongCategory(raw)
}

// StyleForCategory derives the display style label when a song document
// carries none.
func StyleForCategory(category SongCategory) string {
	switch category {
	case SongCategoryAcappella:
		return "A Cappella Gospel"
	case SongCategoryNative:
		return "Contemporary Gospel"
	case SongCategoryEnglish:
		return "English Gospel"
	default:
		return "Gospel"
	}
}

// DurationUnknown is the sentinel for documents without a duration field.
const DurationUnknown = "unknown"

// DefaultThumbnailURL is used for videos uploaded without a thumbnail.
const DefaultThumbnailURL = "https://images.pexels.com/photos/8879724/pexels-photo-8879724.jpeg?auto=compress&cs=tinysrgb&w=800"

// Sermon is the normalized record for a sermons document.
type Sermon struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AudioURL   string    `json:"audioUrl,omitempty"`
	Date       string    `json:"date"`
	Duration   string    `json:"duration"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Song is the normalized record for a songs document.
type Song struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Category   SongCategory `json:"category"`
	AudioURL   string       `json:"audioUrl"`
	Duration   string       `json:"duration"`
	Style      string       `json:"style"`
	UploadedBy string       `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Video is the normalized record for a videos document.
type Video struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Duration         string    `json:"duration"`
	LanguageCategory string    `json:"languageCategory"`
	VideoURL         string    `json:"videoUrl"`
	ThumbnailURL     string    `json:"thumbnailUrl"`
	UploadedBy       string    `json:"uploadedBy,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RecentContent is the landing-page overview bundle.
type RecentContent struct {
	Sermons []Sermon `json:"sermons"`
	Songs   []Song   `json:"songs"`
	Videos  []Video  `json:"videos"`
}

// SearchResults groups matches from a cross-collection search.
type SearchResults struct {
	Sermons []Sermon `json:"sermons"`
	Songs   []Song   `json:"songs"`
	Videos  []Video  `json:"videos"`
}
