package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store. It backs package tests and the offline
// mock-data mode, and mirrors the remote store's observable behavior:
// snapshot listeners receive the current state immediately and again after
// every mutation.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document
	subs        map[int]*memorySub
	nextSub     int

	// FailReads, when set, makes every read operation return this error.
	// Lets tests exercise the degrade-to-empty policy.
	FailReads error
	// FailWrites, when set, makes every write operation return this error.
	FailWrites error

	// Now supplies timestamps for generated createdAt fields.
	Now func() time.Time
}

type memorySub struct {
	path    string
	ordered bool
	cb      func([]Document, error)
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
		subs:        make(map[int]*memorySub),
		Now:         time.Now,
	}
}

// Seed inserts a document with a fixed id, without notifying subscribers.
func (m *MemoryStore) Seed(path, id string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[path] = append(m.collections[path], Document{ID: id, Data: fields})
}

func cloneDocs(docs []Document) []Document {
	out := make([]Document, len(docs))
	copy(out, docs)
	return out
}

// sortByCreatedAtDesc orders newest first; ties keep insertion order.
func sortByCreatedAtDesc(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt().After(docs[j].CreatedAt())
	})
}

func (m *MemoryStore) snapshotLocked(path string, ordered bool) []Document {
	docs := cloneDocs(m.collections[path])
	if ordered {
		sortByCreatedAtDesc(docs)
	}
	return docs
}

func (m *MemoryStore) ListCollection(ctx context.Context, path string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.snapshotLocked(path, true), nil
}

func (m *MemoryStore) ListAll(ctx context.Context, path string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.snapshotLocked(path, false), nil
}

func (m *MemoryStore) ListRecent(ctx context.Context, path string, limit int) ([]Document, error) {
	docs, err := m.ListCollection(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *MemoryStore) ListWhere(ctx context.Context, path, field string, equals interface{}) ([]Document, error) {
	docs, err := m.ListCollection(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []Document
	for _, d := range docs {
		if d.Data[field] == equals {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MemoryStore) GetDocument(ctx context.Context, path, id string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	for _, d := range m.collections[path] {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error) {
	m.mu.Lock()
	if m.FailWrites != nil {
		m.mu.Unlock()
		return "", m.FailWrites
	}
	if _, ok := fields["createdAt"]; !ok {
		fields["createdAt"] = m.Now()
	}
	id := uuid.NewString()
	m.collections[path] = append(m.collections[path], Document{ID: id, Data: fields})
	subs := m.subsForLocked(path)
	m.mu.Unlock()

	m.notify(subs)
	return id, nil
}

func (m *MemoryStore) SetDocument(ctx context.Context, path string, fields map[string]interface{}) error {
	collection, id := splitDocPath(path)

	m.mu.Lock()
	if m.FailWrites != nil {
		m.mu.Unlock()
		return m.FailWrites
	}
	replaced := false
	for i, d := range m.collections[collection] {
		if d.ID == id {
			m.collections[collection][i] = Document{ID: id, Data: fields}
			replaced = true
			break
		}
	}
	if !replaced {
		m.collections[collection] = append(m.collections[collection], Document{ID: id, Data: fields})
	}
	subs := m.subsForLocked(collection)
	m.mu.Unlock()

	m.notify(subs)
	return nil
}

func (m *MemoryStore) subsForLocked(path string) []*memorySub {
	var out []*memorySub
	for _, s := range m.subs {
		if s.path == path {
			out = append(out, s)
		}
	}
	return out
}

func (m *MemoryStore) notify(subs []*memorySub) {
	for _, s := range subs {
		m.mu.Lock()
		snap := m.snapshotLocked(s.path, s.ordered)
		m.mu.Unlock()
		s.cb(snap, nil)
	}
}

func (m *MemoryStore) Subscribe(path string, ordered bool, onSnapshot func([]Document, error)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	sub := &memorySub{path: path, ordered: ordered, cb: onSnapshot}
	m.subs[id] = sub
	snap := m.snapshotLocked(path, ordered)
	m.mu.Unlock()

	// Initial snapshot, matching the remote listener contract.
	onSnapshot(snap, nil)

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func splitDocPath(path string) (collection, id string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return path, ""
	}
	return path[:i], path[i+1:]
}
