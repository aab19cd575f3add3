package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is the projection used for list views and placement
// responses. It never carries items or the shipping address.
type OrderSummary struct {
	ID          uuid.UUID       `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int32           `json:"total_items"`
	Status      string          `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserId          uuid.UUID       `json:"user_id"`
	Status          string          `json:"status"`
	DeliveryMethod  string          `json:"delivery_method"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalItems      int32           `json:"total_items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	OrderItems      []OrderItem     `json:"order_items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductId uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
	Images    []string        `json:"images"`
}

func (o Order) Summary() OrderSummary {
	return OrderSummary{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		TotalItems:  o.TotalItems,
		Status:      o.Status,
		OrderDate:   o.CreatedAt,
	}
}

type Orders struct {
	Orders     []OrderSummary `json:"orders"`
	NextCursor string         `json:"next_cursor"`
}

// CheckoutSummary previews a selection before placement; unlike OrderSummary
// it carries full line detail for the checkout screen.
type CheckoutSummary struct {
	Items       []CheckoutItem  `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int32           `json:"total_items"`
	ItemCount   int             `json:"item_count"`
}

type CheckoutItem struct {
	CartItemId uuid.UUID       `json:"cart_item_id"`
	ProductId  uuid.UUID       `json:"product_id"`
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int32           `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Images     []string        `json:"images"`
	Category   string          `json:"category"`
}
