package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is the production Store backed by Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func collectDocs(it *firestore.DocumentIterator) ([]Document, error) {
	var docs []Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) ListCollection(ctx context.Context, path string) ([]Document, error) {
	it := s.client.Collection(path).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()
	docs, err := collectDocs(it)
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", path, err)
	}
	return docs, nil
}

func (s *FirestoreStore) ListAll(ctx context.Context, path string) ([]Document, error) {
	it := s.client.Collection(path).Documents(ctx)
	defer it.Stop()
	docs, err := collectDocs(it)
	if err != nil {
		return nil, fmt.Errorf("store: list all %s: %w", path, err)
	}
	return docs, nil
}

func (s *FirestoreStore) ListRecent(ctx context.Context, path string, limit int) ([]Document, error) {
	it := s.client.Collection(path).OrderBy("createdAt", firestore.Desc).Limit(limit).Documents(ctx)
	defer it.Stop()
	docs, err := collectDocs(it)
	if err != nil {
		return nil, fmt.Errorf("store: list recent %s: %w", path, err)
	}
	return docs, nil
}

func (s *FirestoreStore) ListWhere(ctx context.Context, path, field string, equals interface{}) ([]Document, error) {
	it := s.client.Collection(path).
		Where(field, "==", equals).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()
	docs, err := collectDocs(it)
	if err != nil {
		return nil, fmt.Errorf("store: list %s where %s: %w", path, field, err)
	}
	return docs, nil
}

func (s *FirestoreStore) GetDocument(ctx context.Context, path, id string) (*Document, error) {
	snap, err := s.client.Collection(path).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("store: get %s/%s: %w", path, id, err)
	}
	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error) {
	if _, ok := fields["createdAt"]; !ok {
		fields["createdAt"] = firestore.ServerTimestamp
	}
	ref, _, err := s.client.Collection(path).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("store: add to %s: %w", path, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) SetDocument(ctx context.Context, path string, fields map[string]interface{}) error {
	if _, err := s.client.Doc(path).Set(ctx, fields); err != nil {
		return fmt.Errorf("store: set %s: %w", path, err)
	}
	return nil
}

func (s *FirestoreStore) Subscribe(path string, ordered bool, onSnapshot func([]Document, error)) func() {
	ctx, cancel := context.WithCancel(context.Background())

	query := s.client.Collection(path).Query
	if ordered {
		query = query.OrderBy("createdAt", firestore.Desc)
	}
	snaps := query.Snapshots(ctx)

	go func() {
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					onSnapshot(nil, err)
				}
				return
			}
			docs, err := collectDocs(snap.Documents)
			if err != nil {
				onSnapshot(nil, err)
				return
			}
			onSnapshot(docs, nil)
		}
	}()

	return cancel
}
