package service

import (
	"context"
	"math"
	"time"

	"github.com/gramtop961/storefront-api/internal/models"
	"github.com/gramtop961/storefront-api/internal/store"
)

// Fixed pricing rules. Orders at or above the threshold ship free;
// everything else pays the flat rate. Tax is applied to the subtotal only.
const (
	freeShippingThreshold = 50.0
	flatShippingRate      = 6.99
	taxRate               = 0.07
)

// Totals holds the monetary breakdown of an order, each field rounded to
// 2 decimals.
type Totals struct {
	Subtotal float64
	Shipping float64
	Taxes    float64
	Total    float64
}

// OrderService normalizes submitted line items, prices them, and persists
// the resulting order.
//
// Pricing trusts the client-supplied price and product_id fields; line items
// are not cross-checked against the catalog. This is a known weakness of the
// API contract, kept deliberately.
type OrderService struct {
	store store.Store
}

// NewOrderService creates an order service backed by st, which may be nil
// when no store is configured.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// CreateOrder prices the submitted items, persists the order, and returns
// the assigned order id with the computed total.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderReceipt, error) {
	if s.store == nil {
		return nil, store.ErrUnavailable
	}

	items := normalizeItems(req.Items)
	totals := PriceItems(items)

	order := models.Order{
		Items:           items,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Taxes:           totals.Taxes,
		Total:           totals.Total,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CreatedAt:       time.Now().UTC(),
	}

	orderID, err := s.store.InsertOne(ctx, OrderCollection, order)
	if err != nil {
		return nil, err
	}

	return &models.OrderReceipt{
		OrderID: orderID,
		Total:   totals.Total,
	}, nil
}

// PriceItems computes the monetary breakdown for a set of line items.
// An empty item list yields a zero subtotal, which still incurs shipping.
func PriceItems(items []models.OrderLineItem) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	shipping := flatShippingRate
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	taxes := round2(subtotal * taxRate)

	return Totals{
		Subtotal: round2(subtotal),
		Shipping: round2(shipping),
		Taxes:    taxes,
		Total:    round2(subtotal + shipping + taxes),
	}
}

// normalizeItems applies the line-item defaults: price 0, quantity 1.
func normalizeItems(raw []models.RawLineItem) []models.OrderLineItem {
	items := make([]models.OrderLineItem, 0, len(raw))
	for _, r := range raw {
		item := models.OrderLineItem{
			ProductID: r.ProductID,
			Title:     r.Title,
			Quantity:  1,
			Image:     r.Image,
		}
		if r.Price != nil {
			item.Price = *r.Price
		}
		if r.Quantity != nil {
			item.Quantity = *r.Quantity
		}
		items = append(items, item)
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
