package models

// Default field values applied when a stored product record omits them.
const (
	DefaultCategory = "Other"
	DefaultRating   = 4.5
)

// ProductView is the public projection of a stored product record.
// Schema matches the /schema endpoint.
type ProductView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"in_stock"`
}

// NewProductView builds the public view of a schemaless product document,
// applying the named defaults for absent fields.
func NewProductView(doc map[string]any) ProductView {
	return ProductView{
		ID:          docString(doc, "_id", ""),
		Title:       docString(doc, "title", ""),
		Description: docString(doc, "description", ""),
		Price:       docFloat(doc, "price", 0),
		Category:    docString(doc, "category", DefaultCategory),
		Image:       docOptString(doc, "image"),
		Rating:      docFloat(doc, "rating", DefaultRating),
		InStock:     docBool(doc, "in_stock", true),
	}
}

func docString(doc map[string]any, key, def string) string {
	if s, ok := doc[key].(string); ok && s != "" {
		return s
	}
	return def
}

func docOptString(doc map[string]any, key string) *string {
	if s, ok := doc[key].(string); ok {
		return &s
	}
	return nil
}

// docFloat coerces the numeric types the bson decoder may produce.
func docFloat(doc map[string]any, key string, def float64) float64 {
	switch n := doc[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

func docBool(doc map[string]any, key string, def bool) bool {
	if b, ok := doc[key].(bool); ok {
		return b
	}
	return def
}
