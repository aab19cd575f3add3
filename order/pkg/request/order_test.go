package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPlaceOrderValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	address := ShippingAddress{Address: "1 Test Street", Phone: "+10000000000"}

	t.Run("valid request passes", func(t *testing.T) {
		err := validate.Struct(PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New()},
			ShippingAddress: address,
			DeliveryMethod:  "express",
		})
		assert.NoError(t, err)
	})

	t.Run("empty selection fails", func(t *testing.T) {
		err := validate.Struct(PlaceOrder{
			SelectedItems:   []uuid.UUID{},
			ShippingAddress: address,
		})
		assert.Error(t, err)
	})

	t.Run("missing shipping address fails", func(t *testing.T) {
		err := validate.Struct(PlaceOrder{
			SelectedItems: []uuid.UUID{uuid.New()},
		})
		assert.Error(t, err)
	})

	t.Run("unknown delivery method fails", func(t *testing.T) {
		err := validate.Struct(PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New()},
			ShippingAddress: address,
			DeliveryMethod:  "drone",
		})
		assert.Error(t, err)
	})

	t.Run("delivery method is optional", func(t *testing.T) {
		err := validate.Struct(PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New()},
			ShippingAddress: address,
		})
		assert.NoError(t, err)
	})
}

func TestFindOrdersValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	assert.NoError(t, validate.Struct(FindOrders{Limit: 0}))
	assert.NoError(t, validate.Struct(FindOrders{Limit: 100, Cursor: "abc"}))
	assert.Error(t, validate.Struct(FindOrders{Limit: 101}))
	assert.Error(t, validate.Struct(FindOrders{Limit: -1}))
}
