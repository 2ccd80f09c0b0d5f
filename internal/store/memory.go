package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used in tests. It assigns hex ObjectIDs
// so identifier parsing behaves exactly like the Mongo-backed store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// FindMany returns up to limit documents matching the filter, in insertion order.
func (s *MemoryStore) FindMany(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, doc := range s.collections[collection] {
		if !filter.Matches(doc) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

// FindOne fetches a document by its hex id.
func (s *MemoryStore) FindOne(ctx context.Context, collection, id string) (Document, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

// InsertOne stores doc under a fresh hex ObjectID and returns the id.
// Typed documents are round-tripped through bson so reads see the same
// schemaless shape the Mongo store would return.
func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	stored, err := toDocument(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	stored["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

// ListCollections returns the collection names in sorted order.
func (s *MemoryStore) ListCollections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Name identifies the store in diagnostics output.
func (s *MemoryStore) Name() string {
	return "memory"
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func toDocument(doc any) (Document, error) {
	if d, ok := doc.(Document); ok {
		out := make(Document, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out, nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
