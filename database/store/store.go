// Package store adapts the remote document database behind a narrow
// interface. Everything above this package works with plain Document values;
// Firestore types never escape it.
package store

import (
	"context"
	"time"
)

// Document is one raw document from the remote store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// CreatedAt extracts the document's creation timestamp, or the zero time if
// the field is missing or malformed.
func (d Document) CreatedAt() time.Time {
	if t, ok := d.Data["createdAt"].(time.Time); ok {
		return t
	}
	return time.Time{}
}

// String returns the named field as a string, or "" if absent.
func (d Document) String(field string) string {
	if s, ok := d.Data[field].(string); ok {
		return s
	}
	return ""
}

// Int returns the named field as an int, tolerating the numeric types the
// store may hand back.
func (d Document) Int(field string) int {
	switch v := d.Data[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Store is the access pattern the app imposes on the remote document store.
//
// Reads degrade at a higher layer: implementations return errors, and the
// services above convert them to empty results.
type Store interface {
	// ListCollection returns all documents ordered by createdAt descending.
	ListCollection(ctx context.Context, path string) ([]Document, error)
	// ListAll returns all documents in store-natural order. Used for
	// collections whose documents carry no createdAt field.
	ListAll(ctx context.Context, path string) ([]Document, error)
	// ListRecent returns at most limit documents, newest first.
	ListRecent(ctx context.Context, path string, limit int) ([]Document, error)
	// ListWhere returns documents with field == equals, newest first.
	ListWhere(ctx context.Context, path, field string, equals interface{}) ([]Document, error)
	// GetDocument returns one document, or nil if absent.
	GetDocument(ctx context.Context, path, id string) (*Document, error)
	// AddDocument creates a document with a generated id. A createdAt server
	// timestamp is added when the caller did not set one.
	AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error)
	// SetDocument upserts the document at a full slash-separated path.
	SetDocument(ctx context.Context, path string, fields map[string]interface{}) error
	// Subscribe delivers the full current snapshot of a collection on every
	// underlying change until the returned stop function is called. Errors
	// are pushed to the callback; the listener then terminates.
	Subscribe(path string, ordered bool, onSnapshot func([]Document, error)) (stop func())
}
