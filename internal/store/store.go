package store

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means no store is configured; handlers map it to 500.
	ErrUnavailable = errors.New("document store not configured")

	// ErrInvalidID means the id cannot be parsed into the store's identifier format.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNotFound means no document matched.
	ErrNotFound = errors.New("document not found")
)

// Document is a schemaless record as returned by the store.
// Implementations normalize the identifier into the "_id" key as a hex string.
type Document = map[string]any

// Store is the document database collaborator. Records are grouped by
// collection name; identifiers are store-assigned and opaque to callers
// beyond their string form.
type Store interface {
	// FindMany returns up to limit documents matching the filter, in the
	// store's natural order.
	FindMany(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// FindOne returns the document with the given id. Returns ErrInvalidID
	// when id is not parseable, ErrNotFound when nothing matches.
	FindOne(ctx context.Context, collection, id string) (Document, error)

	// InsertOne stores doc and returns the assigned identifier.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)

	// ListCollections returns the names of existing collections.
	ListCollections(ctx context.Context) ([]string, error)

	// Name returns the database name.
	Name() string

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
