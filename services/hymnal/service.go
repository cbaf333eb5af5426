// Package hymnal serves the bundled hymn (TSP) and psalm datasets. Unlike
// the Firestore collections these ship as per-language JSON assets and are
// read locally, but they flow through the same snapshot cache so rapid
// screen refocus does not re-read and re-decode the files.
package hymnal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/services/content/cache"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

// DataType selects a dataset.
type DataType string

const (
	DataTypeTSPs   DataType = "tsps"
	DataTypePsalms DataType = "psalms"
)

// IsValid reports whether t names a known dataset.
func (t DataType) IsValid() bool {
	return t == DataTypeTSPs || t == DataTypePsalms
}

const fallbackLocale = "en"

// Service loads, caches and filters hymnal datasets. One snapshot cache
// exists per (dataType, locale) pair.
type Service struct {
	ttl time.Duration

	// Load reads a dataset; the default reads JSON from assetsDir. Tests
	// swap it out.
	Load func(dataType DataType, locale string) ([]models.HymnEntry, error)

	mu     sync.Mutex
	caches map[string]*cache.Snapshot[models.HymnEntry]
}

// NewService builds a hymnal service over the given assets directory.
func NewService(assetsDir string, ttl time.Duration) *Service {
	s := &Service{
		ttl:    ttl,
		caches: make(map[string]*cache.Snapshot[models.HymnEntry]),
	}
	s.Load = func(dataType DataType, locale string) ([]models.HymnEntry, error) {
		name := fmt.Sprintf("%s_%s.json", fileStem(dataType), locale)
		data, err := os.ReadFile(filepath.Join(assetsDir, name))
		if err != nil {
			return nil, err
		}
		var entries []models.HymnEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("hymnal: decode %s: %w", name, err)
		}
		return entries, nil
	}
	return s
}

func fileStem(dataType DataType) string {
	if dataType == DataTypeTSPs {
		return "hymns"
	}
	return "psalms"
}

func (s *Service) snapshotFor(dataType DataType, locale string) *cache.Snapshot[models.HymnEntry] {
	key := string(dataType) + ":" + locale

	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.caches[key]
	if !ok {
		snap = cache.New(string(dataType), s.ttl, func(e models.HymnEntry) string {
			return strconv.Itoa(e.Number())
		})
		s.caches[key] = snap
	}
	return snap
}

// Entries returns the dataset for a locale, falling back to English when no
// localized dataset exists. Load failures degrade to an empty list.
func (s *Service) Entries(dataType DataType, locale string) []cache.Keyed[models.HymnEntry] {
	snap := s.snapshotFor(dataType, locale)
	if items, ok := snap.Get(); ok {
		return items
	}

	entries, err := s.Load(dataType, locale)
	if err != nil && locale != fallbackLocale {
		entries, err = s.Load(dataType, fallbackLocale)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load hymnal dataset",
			zap.String("dataType", string(dataType)), zap.String("locale", locale), zap.Error(err))
		return []cache.Keyed[models.HymnEntry]{}
	}

	snap.Set(entries)
	keyed, _ := snap.Get()
	return keyed
}

// Search filters entries whose source number or title contains the term.
func (s *Service) Search(dataType DataType, locale, term string) []cache.Keyed[models.HymnEntry] {
	entries := s.Entries(dataType, locale)
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return entries
	}

	out := make([]cache.Keyed[models.HymnEntry], 0, len(entries))
	for _, e := range entries {
		number := strconv.Itoa(e.Item.Number())
		if strings.Contains(number, needle) ||
			strings.Contains(strings.ToLower(e.Item.Title), needle) {
			out = append(out, e)
		}
	}
	return out
}
