package store

import (
	"context"
	"testing"
	"time"
)

var memTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestListCollectionOrdersNewestFirstWithStableTies(t *testing.T) {
	m := NewMemoryStore()
	m.Seed("items", "a", map[string]interface{}{"createdAt": memTime})
	m.Seed("items", "b", map[string]interface{}{"createdAt": memTime.Add(time.Hour)})
	m.Seed("items", "c", map[string]interface{}{"createdAt": memTime})

	docs, err := m.ListCollection(context.Background(), "items")
	if err != nil {
		t.Fatalf("ListCollection: %v", err)
	}
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if docs[i].ID != id {
			t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, id)
		}
	}
}

func TestSetDocumentUpserts(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.SetDocument(ctx, "users/u1/readNotices/n1", map[string]interface{}{"readAt": memTime}); err != nil {
		t.Fatalf("SetDocument create: %v", err)
	}
	if err := m.SetDocument(ctx, "users/u1/readNotices/n1", map[string]interface{}{"readAt": memTime.Add(time.Hour)}); err != nil {
		t.Fatalf("SetDocument overwrite: %v", err)
	}

	docs, err := m.ListAll(ctx, "users/u1/readNotices")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d receipts, want 1 (upsert must not duplicate)", len(docs))
	}
	if got := docs[0].Data["readAt"].(time.Time); !got.Equal(memTime.Add(time.Hour)) {
		t.Errorf("readAt = %v, want the overwritten value", got)
	}
}

func TestSubscribeDeliversInitialAndMutationSnapshots(t *testing.T) {
	m := NewMemoryStore()
	m.Seed("items", "a", map[string]interface{}{"createdAt": memTime})

	var sizes []int
	stop := m.Subscribe("items", true, func(docs []Document, err error) {
		if err != nil {
			t.Fatalf("listener error: %v", err)
		}
		sizes = append(sizes, len(docs))
	})

	if _, err := m.AddDocument(context.Background(), "items", map[string]interface{}{}); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	stop()
	if _, err := m.AddDocument(context.Background(), "items", map[string]interface{}{}); err != nil {
		t.Fatalf("AddDocument after stop: %v", err)
	}

	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 2 {
		t.Fatalf("snapshot sizes = %v, want [1 2] and silence after stop", sizes)
	}
}

func TestDocumentFieldHelpers(t *testing.T) {
	doc := Document{ID: "d1", Data: map[string]interface{}{
		"title":   "Hello",
		"year":    int64(2024),
		"ratio":   float64(7),
		"created": "not a time",
	}}

	if got := doc.String("title"); got != "Hello" {
		t.Errorf("String(title) = %q", got)
	}
	if got := doc.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := doc.Int("year"); got != 2024 {
		t.Errorf("Int(year) = %d, want 2024", got)
	}
	if got := doc.Int("ratio"); got != 7 {
		t.Errorf("Int(ratio) = %d, want 7", got)
	}
	if !doc.CreatedAt().IsZero() {
		t.Error("CreatedAt on a document without the field should be zero")
	}
}
