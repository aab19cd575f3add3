package repository

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	cartResponse "github.com/arvellene/storefront/cart/pkg/response"
	orderResponse "github.com/arvellene/storefront/order/pkg/response"
)

func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func (f FindOrderByIdRow) Response() (orderResponse.Order, error) {
	orderItems := []orderResponse.OrderItem{}
	err := json.Unmarshal(f.OrderItems, &orderItems)
	if err != nil {
		return orderResponse.Order{}, err
	}
	return orderResponse.Order{
		ID:             f.ID,
		UserId:         f.UserID,
		Status:         string(f.Status),
		DeliveryMethod: string(f.DeliveryMethod),
		TotalAmount:    DecimalFromNumeric(f.TotalAmount),
		TotalItems:     f.TotalItems,
		ShippingAddress: orderResponse.ShippingAddress{
			Address: f.ShippingAddress,
			Phone:   f.ShippingPhone,
		},
		OrderItems: orderItems,
		CreatedAt:  f.CreatedAt.Time,
		UpdatedAt:  f.UpdatedAt.Time,
	}, nil
}

func (o Order) Summary() orderResponse.OrderSummary {
	return orderResponse.OrderSummary{
		ID:          o.ID,
		TotalAmount: DecimalFromNumeric(o.TotalAmount),
		TotalItems:  o.TotalItems,
		Status:      string(o.Status),
		OrderDate:   o.CreatedAt.Time,
	}
}

func (o FindOrdersByUserIdRow) Summary() orderResponse.OrderSummary {
	return orderResponse.OrderSummary{
		ID:          o.ID,
		TotalAmount: DecimalFromNumeric(o.TotalAmount),
		TotalItems:  o.TotalItems,
		Status:      string(o.Status),
		OrderDate:   o.CreatedAt.Time,
	}
}

func (f FindCartItemsWithProductRow) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:        f.ID,
		CartID:    f.CartID,
		ProductID: f.ProductID,
		Title:     f.ProductTitle,
		Price:     DecimalFromNumeric(f.Price),
		Quantity:  f.Quantity,
		Images:    f.ProductImages,
		Category:  f.ProductCategory,
		CreatedAt: f.CreatedAt.Time,
		UpdatedAt: f.UpdatedAt.Time,
	}
}
