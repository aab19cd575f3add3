package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/arvellene/storefront/internal/errors"
	"github.com/arvellene/storefront/order/pkg/request"
)

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

func shippingAddress() request.ShippingAddress {
	return request.ShippingAddress{Address: "1 Test Street", Phone: "+10000000000"}
}

func TestPlaceOrder(t *testing.T) {
	c := testContext()
	h := setup(t, c)
	defer h.teardown(t)

	t.Run("computes totals over selection and drains only consumed lines", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		shirt := h.seedProduct(t, c, "shirt", 10)
		mug := h.seedProduct(t, c, "mug", 25)
		poster := h.seedProduct(t, c, "poster", 7)
		shirtLine := h.seedCartItem(t, c, cart.ID, shirt, 2)
		mugLine := h.seedCartItem(t, c, cart.ID, mug, 1)
		posterLine := h.seedCartItem(t, c, cart.ID, poster, 3)

		summary, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{shirtLine.ID, mugLine.ID},
			ShippingAddress: shippingAddress(),
		})
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(45).Equal(summary.TotalAmount),
			"total should be 2*10+1*25 got %s", summary.TotalAmount)
		assert.EqualValues(t, 3, summary.TotalItems)
		assert.EqualValues(t, "pending", summary.Status)

		remaining, err := h.queries.FindCartItemsWithProduct(c, cart.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1, "unselected line should survive the drain")
		assert.EqualValues(t, posterLine.ID, remaining[0].ID)

		order, err := h.service.FindOrderById(c, userId, summary.ID)
		require.NoError(t, err)
		assert.Len(t, order.OrderItems, 2)
		assert.EqualValues(t, "1 Test Street", order.ShippingAddress.Address)
	})

	t.Run("retry with same idempotency key returns the original order", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		book := h.seedProduct(t, c, "book", 15)
		bookLine := h.seedCartItem(t, c, cart.ID, book, 1)
		lampLine := h.seedCartItem(t, c, cart.ID, h.seedProduct(t, c, "lamp", 40), 1)

		first, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{bookLine.ID},
			ShippingAddress: shippingAddress(),
			IdempotencyKey:  "retry-key-1",
		})
		require.NoError(t, err)

		second, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{lampLine.ID},
			ShippingAddress: shippingAddress(),
			IdempotencyKey:  "retry-key-1",
		})
		require.NoError(t, err)

		assert.EqualValues(t, first.ID, second.ID)
		assert.True(t, first.TotalAmount.Equal(second.TotalAmount))

		remaining, err := h.queries.FindCartItemsWithProduct(c, cart.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1, "retry must not drain more cart lines")
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		userId := uuid.New()
		h.seedCart(t, c, userId)

		_, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New()},
			ShippingAddress: shippingAddress(),
		})
		assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	})

	t.Run("missing cart is rejected as empty", func(t *testing.T) {
		_, err := h.service.PlaceOrder(c, uuid.New(), request.PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New()},
			ShippingAddress: shippingAddress(),
		})
		assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	})

	t.Run("selection that resolves nothing is rejected", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		h.seedCartItem(t, c, cart.ID, h.seedProduct(t, c, "pen", 3), 1)

		_, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{uuid.New(), uuid.New()},
			ShippingAddress: shippingAddress(),
		})
		assert.ErrorIs(t, err, inErrors.ErrNoValidItems)

		remaining, err := h.queries.FindCartItemsWithProduct(c, cart.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1, "rejected placement must not touch the cart")
	})

	t.Run("lines whose product was deleted cannot be ordered", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		doomed := h.seedProduct(t, c, "doomed", 99)
		doomedLine := h.seedCartItem(t, c, cart.ID, doomed, 5)
		require.NoError(t, h.queries.DeleteProduct(c, doomed.ID))

		_, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{doomedLine.ID},
			ShippingAddress: shippingAddress(),
		})
		assert.ErrorIs(t, err, inErrors.ErrNoValidItems)
	})
}

func TestCheckoutSummary(t *testing.T) {
	c := testContext()
	h := setup(t, c)
	defer h.teardown(t)

	t.Run("previews totals without persisting anything", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		shirt := h.seedProduct(t, c, "shirt", 10)
		shirtLine := h.seedCartItem(t, c, cart.ID, shirt, 2)

		summary, err := h.service.CheckoutSummary(c, userId, request.CheckoutSummary{
			SelectedItems: []uuid.UUID{shirtLine.ID},
		})
		require.NoError(t, err)

		require.Len(t, summary.Items, 1)
		assert.True(t, decimal.NewFromInt(20).Equal(summary.TotalAmount))
		assert.True(t, decimal.NewFromInt(20).Equal(summary.Items[0].LineTotal))
		assert.EqualValues(t, 2, summary.TotalItems)

		remaining, err := h.queries.FindCartItemsWithProduct(c, cart.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1, "preview must not drain the cart")

		orders, err := h.service.FindOrders(c, userId, request.FindOrders{})
		require.NoError(t, err)
		assert.Empty(t, orders.Orders, "preview must not create an order")
	})

	t.Run("all-stale selection yields zero totals instead of an error", func(t *testing.T) {
		userId := uuid.New()
		cart := h.seedCart(t, c, userId)
		h.seedCartItem(t, c, cart.ID, h.seedProduct(t, c, "pen", 3), 1)

		summary, err := h.service.CheckoutSummary(c, userId, request.CheckoutSummary{
			SelectedItems: []uuid.UUID{uuid.New()},
		})
		require.NoError(t, err)

		assert.Empty(t, summary.Items)
		assert.True(t, summary.TotalAmount.IsZero())
		assert.EqualValues(t, 0, summary.TotalItems)
		assert.EqualValues(t, 0, summary.ItemCount)
	})

	t.Run("empty cart is still rejected", func(t *testing.T) {
		_, err := h.service.CheckoutSummary(c, uuid.New(), request.CheckoutSummary{
			SelectedItems: []uuid.UUID{uuid.New()},
		})
		assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	})
}

func TestFindOrders(t *testing.T) {
	c := testContext()
	h := setup(t, c)
	defer h.teardown(t)

	placeOrder := func(t *testing.T, userId uuid.UUID, price int64) uuid.UUID {
		t.Helper()
		cart := h.seedCart(t, c, userId)
		line := h.seedCartItem(t, c, cart.ID, h.seedProduct(t, c, "item", price), 1)
		summary, err := h.service.PlaceOrder(c, userId, request.PlaceOrder{
			SelectedItems:   []uuid.UUID{line.ID},
			ShippingAddress: shippingAddress(),
		})
		require.NoError(t, err)
		return summary.ID
	}

	t.Run("lists newest first and pages with a cursor", func(t *testing.T) {
		userId := uuid.New()
		orderIds := make([]uuid.UUID, 0, 5)
		for i := range 5 {
			orderIds = append(orderIds, placeOrder(t, userId, int64(10+i)))
		}

		firstPage, err := h.service.FindOrders(c, userId, request.FindOrders{Limit: 3})
		require.NoError(t, err)
		require.Len(t, firstPage.Orders, 3)
		require.NotEmpty(t, firstPage.NextCursor)
		assert.EqualValues(t, orderIds[4], firstPage.Orders[0].ID, "newest order comes first")

		secondPage, err := h.service.FindOrders(c, userId, request.FindOrders{
			Limit:  3,
			Cursor: firstPage.NextCursor,
		})
		require.NoError(t, err)
		require.Len(t, secondPage.Orders, 2)
		assert.EqualValues(t, orderIds[0], secondPage.Orders[1].ID, "oldest order comes last")

		seen := map[uuid.UUID]struct{}{}
		for _, o := range append(firstPage.Orders, secondPage.Orders...) {
			_, dup := seen[o.ID]
			assert.False(t, dup, "pages must not overlap")
			seen[o.ID] = struct{}{}
		}
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		_, err := h.service.FindOrders(c, uuid.New(), request.FindOrders{Cursor: "@@@"})
		assert.ErrorIs(t, err, inErrors.ErrInvalidCursor)
	})

	t.Run("other users orders are invisible", func(t *testing.T) {
		owner := uuid.New()
		stranger := uuid.New()
		orderId := placeOrder(t, owner, 10)

		orders, err := h.service.FindOrders(c, stranger, request.FindOrders{})
		require.NoError(t, err)
		assert.Empty(t, orders.Orders)

		_, err = h.service.FindOrderById(c, stranger, orderId)
		assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)

		_, err = h.service.FindOrderById(c, owner, orderId)
		assert.NoError(t, err)
	})

	t.Run("unknown order id is not found", func(t *testing.T) {
		_, err := h.service.FindOrderById(c, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
	})
}
