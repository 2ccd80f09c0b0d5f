package service

import (
	"context"

	"github.com/gramtop961/storefront-api/internal/models"
	"github.com/gramtop961/storefront-api/internal/store"
)

// Collection names in the document store.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// DefaultListLimit caps product listings when the caller gives no limit.
const DefaultListLimit = 50

// ListQuery holds the optional product listing parameters.
type ListQuery struct {
	Category string
	Text     string
	Limit    int64
}

// CatalogService answers product queries against the document store.
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a catalog service backed by st, which may be
// nil when no store is configured.
func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// ListProducts returns up to q.Limit product views. An exact category match
// and a case-insensitive free-text match over title, description, and
// category combine with logical AND.
func (s *CatalogService) ListProducts(ctx context.Context, q ListQuery) ([]models.ProductView, error) {
	if s.store == nil {
		return nil, store.ErrUnavailable
	}

	var filter store.Filter
	if q.Category != "" {
		filter = filter.Eq("category", q.Category)
	}
	if q.Text != "" {
		filter = filter.ContainsFold(q.Text, "title", "description", "category")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	docs, err := s.store.FindMany(ctx, ProductCollection, filter, limit)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, models.NewProductView(doc))
	}
	return views, nil
}

// GetProduct returns the product with the given id. Propagates
// store.ErrInvalidID for malformed ids and store.ErrNotFound when absent.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.ProductView, error) {
	if s.store == nil {
		return models.ProductView{}, store.ErrUnavailable
	}

	doc, err := s.store.FindOne(ctx, ProductCollection, id)
	if err != nil {
		return models.ProductView{}, err
	}
	return models.NewProductView(doc), nil
}

// SeedDemoProducts inserts the demo catalog, best-effort per item, and
// returns the number of documents actually inserted.
func (s *CatalogService) SeedDemoProducts(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, store.ErrUnavailable
	}

	inserted := 0
	for _, doc := range demoCatalog() {
		if _, err := s.store.InsertOne(ctx, ProductCollection, doc); err != nil {
			continue
		}
		inserted++
	}
	return inserted, nil
}

func demoCatalog() []store.Document {
	return []store.Document{
		{
			"title":       "Wireless Noise-Cancelling Headphones",
			"description": "Immersive sound with active noise cancellation and 30h battery.",
			"price":       199.99,
			"category":    "Electronics",
			"image":       "https://images.unsplash.com/photo-1518443895914-6df8ccca9fd8?q=80&w=1200&auto=format&fit=crop",
			"rating":      4.6,
			"in_stock":    true,
		},
		{
			"title":       "Ergonomic Office Chair",
			"description": "Lumbar support, breathable mesh, adjustable height and tilt.",
			"price":       129.0,
			"category":    "Home",
			"image":       "https://images.unsplash.com/photo-1582582429416-2f6b24fd4a62?q=80&w=1200&auto=format&fit=crop",
			"rating":      4.4,
			"in_stock":    true,
		},
		{
			"title":       "Stainless Steel Water Bottle 1L",
			"description": "Keeps drinks cold 24h or hot 12h, leak-proof design.",
			"price":       24.99,
			"category":    "Outdoors",
			"image":       "https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1200&auto=format&fit=crop",
			"rating":      4.8,
			"in_stock":    true,
		},
		{
			"title":       "Smart LED Light Bulb (4-pack)",
			"description": "16M colors, app control, works with Alexa and Google.",
			"price":       39.99,
			"category":    "Electronics",
			"image":       "https://images.unsplash.com/photo-1482192596544-9eb780fc7f66?q=80&w=1200&auto=format&fit=crop",
			"rating":      4.3,
			"in_stock":    true,
		},
	}
}
