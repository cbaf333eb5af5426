package content

import (
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
)

// dateOf truncates a creation timestamp to its day. Documents written before
// server timestamps were enforced may lack the field; those fall back to the
// current day, matching what clients always displayed.
func dateOf(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format("2006-01-02")
}

func stringOr(doc store.Document, field, fallback string) string {
	if v := doc.String(field); v != "" {
		return v
	}
	return fallback
}

// NormalizeSermon maps a raw sermons document into a Sermon record.
func NormalizeSermon(doc store.Document) models.Sermon {
	createdAt := doc.CreatedAt()
	return models.Sermon{
		ID:         doc.ID,
		Title:      doc.String("title"),
		Content:    doc.String("content"),
		AudioURL:   doc.String("audioUrl"),
		Date:       dateOf(createdAt),
		Duration:   stringOr(doc, "duration", models.DurationUnknown),
		UploadedBy: doc.String("uploadedBy"),
		CreatedAt:  createdAt,
	}
}

// NormalizeSong maps a raw songs document into a Song record. The category
// is canonicalized and the style label derived when absent.
func NormalizeSong(doc store.Document) models.Song {
	category := models.NormalizeSongCategory(doc.String("category"))
	return models.Song{
		ID:         doc.ID,
		Title:      doc.String("title"),
		Category:   category,
		AudioURL:   doc.String("audioUrl"),
		Duration:   stringOr(doc, "duration", models.DurationUnknown),
		Style:      stringOr(doc, "style", models.StyleForCategory(category)),
		UploadedBy: doc.String("uploadedBy"),
		CreatedAt:  doc.CreatedAt(),
	}
}

// NormalizeVideo maps a raw videos document into a Video record.
func NormalizeVideo(doc store.Document) models.Video {
	return models.Video{
		ID:               doc.ID,
		Title:            doc.String("title"),
		Duration:         stringOr(doc, "duration", models.DurationUnknown),
		LanguageCategory: stringOr(doc, "languageCategory", "Multi-language"),
		VideoURL:         doc.String("videoUrl"),
		ThumbnailURL:     stringOr(doc, "thumbnailUrl", models.DefaultThumbnailURL),
		UploadedBy:       doc.String("uploadedBy"),
		CreatedAt:        doc.CreatedAt(),
	}
}

// NormalizeQuizResource maps a raw quizResources document into a
// QuizResource record.
func NormalizeQuizResource(doc store.Document) models.QuizResource {
	return models.QuizResource{
		ID:         doc.ID,
		Title:      doc.String("title"),
		Year:       doc.Int("year"),
		AgeGroup:   models.AgeGroup(doc.String("age")),
		Gender:     models.Gender(stringOr(doc, "gender", string(models.GenderGeneral))),
		Content:    doc.String("content"),
		UploadedBy: doc.String("uploadedBy"),
		CreatedAt:  doc.CreatedAt(),
	}
}
