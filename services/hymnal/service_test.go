package hymnal

import (
	"errors"
	"testing"
	"time"

	"github.com/Omoefe-bazunu/hhaven/models"
)

func testEntries(locale string) []models.HymnEntry {
	return []models.HymnEntry{
		{TSPNumber: 101, Title: "Great Is Thy Faithfulness (" + locale + ")"},
		{TSPNumber: 205, Title: "Blessed Assurance (" + locale + ")"},
	}
}

// stubLoader counts calls and fails for locales not in the available set.
type stubLoader struct {
	calls     int
	available map[string]bool
}

func (l *stubLoader) load(dataType DataType, locale string) ([]models.HymnEntry, error) {
	l.calls++
	if !l.available[locale] {
		return nil, errors.New("no dataset for " + locale)
	}
	return testEntries(locale), nil
}

func newTestHymnal(available ...string) (*Service, *stubLoader) {
	loader := &stubLoader{available: make(map[string]bool)}
	for _, l := range available {
		loader.available[l] = true
	}
	svc := NewService("unused", time.Minute)
	svc.Load = loader.load
	return svc, loader
}

func TestEntriesLoadsAndCaches(t *testing.T) {
	svc, loader := newTestHymnal("en")

	first := svc.Entries(DataTypeTSPs, "en")
	if len(first) != 2 {
		t.Fatalf("got %d entries, want 2", len(first))
	}
	if first[0].Key != "tsps_101_0" {
		t.Errorf("key = %q, want tsps_101_0", first[0].Key)
	}

	svc.Entries(DataTypeTSPs, "en")
	if loader.calls != 1 {
		t.Fatalf("loader called %d times, want 1 (second read must hit the cache)", loader.calls)
	}
}

func TestEntriesFallsBackToEnglish(t *testing.T) {
	svc, _ := newTestHymnal("en")

	got := svc.Entries(DataTypeTSPs, "yo")
	if len(got) != 2 {
		t.Fatalf("got %d entries, want the English fallback", len(got))
	}
	if got[0].Item.Title != "Great Is Thy Faithfulness (en)" {
		t.Errorf("title = %q, want the English dataset", got[0].Item.Title)
	}
}

func TestEntriesDegradeToEmpty(t *testing.T) {
	svc, _ := newTestHymnal() // nothing available, not even English

	got := svc.Entries(DataTypePsalms, "fr")
	if got == nil || len(got) != 0 {
		t.Fatalf("Entries = %v, want empty non-nil slice", got)
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newTestHymnal("en")

	tests := []struct {
		name string
		term string
		want int
	}{
		{"blank term returns all", "  ", 2},
		{"by number", "101", 1},
		{"by title substring", "assurance", 1},
		{"no matches", "zzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(DataTypeTSPs, "en", tt.term)
			if len(got) != tt.want {
				t.Errorf("Search(%q) returned %d entries, want %d", tt.term, len(got), tt.want)
			}
		})
	}
}

func TestDataTypeValidity(t *testing.T) {
	if !DataTypeTSPs.IsValid() || !DataTypePsalms.IsValid() {
		t.Error("known dataset types reported invalid")
	}
	if DataType("hymns").IsValid() {
		t.Error("unknown dataset type reported valid")
	}
}

func TestLocalesCacheIndependently(t *testing.T) {
	svc, loader := newTestHymnal("en", "yo")

	svc.Entries(DataTypeTSPs, "en")
	svc.Entries(DataTypeTSPs, "yo")
	svc.Entries(DataTypeTSPs, "en")
	svc.Entries(DataTypeTSPs, "yo")

	if loader.calls != 2 {
		t.Fatalf("loader called %d times, want 2 (one per locale)", loader.calls)
	}
}
