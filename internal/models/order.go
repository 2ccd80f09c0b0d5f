package models

import "time"

// RawLineItem is a client-submitted line item before normalization.
// Absent price defaults to 0, absent quantity to 1.
type RawLineItem struct {
	ProductID string   `json:"product_id"`
	Title     string   `json:"title"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
	Image     *string  `json:"image"`
}

// OrderLineItem is a normalized line item as persisted within an order.
// The product_id reference is not validated against the catalog; the order
// is priced from the submitted fields (trust-the-client, see service docs).
type OrderLineItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     *string `json:"image,omitempty" bson:"image,omitempty"`
}

// Order is a persisted order record. All monetary fields are rounded to
// 2 decimals before storage; total = subtotal + shipping + taxes.
type Order struct {
	Items           []OrderLineItem `json:"items" bson:"items"`
	Subtotal        float64         `json:"subtotal" bson:"subtotal"`
	Shipping        float64         `json:"shipping" bson:"shipping"`
	Taxes           float64         `json:"taxes" bson:"taxes"`
	Total           float64         `json:"total" bson:"total"`
	CustomerName    string          `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string          `json:"customer_email" bson:"customer_email"`
	CustomerAddress string          `json:"customer_address" bson:"customer_address"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
}

// CreateOrderRequest is the POST /api/orders request body.
type CreateOrderRequest struct {
	Items           []RawLineItem `json:"items"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerAddress string        `json:"customer_address"`
}

// OrderReceipt is returned to the caller after an order is persisted.
type OrderReceipt struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}
