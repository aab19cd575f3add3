package request

import (
	"github.com/google/uuid"
)

type ShippingAddress struct {
	Address string `validate:"required" json:"address"`
	Phone   string `validate:"required" json:"phone"`
}

type PlaceOrder struct {
	SelectedItems   []uuid.UUID     `validate:"required,gt=0"                           json:"selected_items"`
	ShippingAddress ShippingAddress `validate:"required"                                json:"shipping_address"`
	DeliveryMethod  string          `validate:"omitempty,oneof=standard express pickup" json:"delivery_method"`
	// Taken from the Idempotency-Key header, never the body.
	IdempotencyKey string `json:"-"`
}

type CheckoutSummary struct {
	SelectedItems []uuid.UUID `validate:"required,gt=0" json:"selected_items"`
}

type FindOrders struct {
	Limit  int32  `validate:"gte=0,lte=100" json:"limit"`
	Cursor string `                         json:"cursor"`
}
