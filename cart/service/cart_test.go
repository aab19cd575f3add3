package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/arvellene/storefront/cart/pkg/request"
	inErrors "github.com/arvellene/storefront/internal/errors"
	"github.com/arvellene/storefront/internal/repository"
)

func setup(t *testing.T, c context.Context) (*repository.Queries, *CartService, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join("..", "..", "migrations", "20250603101500_create_table_products.up.sql"),
			filepath.Join("..", "..", "migrations", "20250603101600_create_table_carts.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pool, err := pgxpool.New(c, pgConnStr)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	queries := repository.New(pool)
	teardown := func() {
		pool.Close()
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
	return queries, NewCartService(pool, queries), teardown
}

func seedProduct(t *testing.T, c context.Context, queries *repository.Queries, price int64) repository.Product {
	t.Helper()

	product, err := queries.InsertProduct(c, repository.InsertProductParams{
		ID:       uuid.New(),
		Title:    "product",
		Price:    repository.NumericFromDecimal(decimal.NewFromInt(price)),
		Images:   []string{"https://img.example.com/product.png"},
		Category: "test",
	})
	if err != nil {
		t.Fatalf("failed seeding product with error: %s", err)
	}
	return product
}

func TestCartService(t *testing.T) {
	c := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
	queries, svc, teardown := setup(t, c)
	defer teardown()

	t.Run("add cart item snapshots the product price", func(t *testing.T) {
		userId := uuid.New()
		product := seedProduct(t, c, queries, 42)

		cartItem, err := svc.AddCartItem(c, userId, request.AddCartItem{
			ProductId: product.ID,
			Quantity:  2,
		})
		require.NoError(t, err)

		assert.EqualValues(t, product.ID, cartItem.ProductID)
		assert.True(t, decimal.NewFromInt(42).Equal(cartItem.Price))
		assert.EqualValues(t, 2, cartItem.Quantity)

		cart, err := svc.FindCart(c, userId)
		require.NoError(t, err)
		require.Len(t, cart.CartItems, 1)
		assert.EqualValues(t, cartItem.ID, cart.CartItems[0].ID)
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		_, err := svc.AddCartItem(c, uuid.New(), request.AddCartItem{
			ProductId: uuid.New(),
			Quantity:  1,
		})
		assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
	})

	t.Run("user without a cart gets an empty one", func(t *testing.T) {
		cart, err := svc.FindCart(c, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, cart.CartItems)
	})

	t.Run("remove cart item", func(t *testing.T) {
		userId := uuid.New()
		product := seedProduct(t, c, queries, 10)
		cartItem, err := svc.AddCartItem(c, userId, request.AddCartItem{
			ProductId: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)

		require.NoError(t, svc.RemoveCartItem(c, userId, cartItem.ID))

		cart, err := svc.FindCart(c, userId)
		require.NoError(t, err)
		assert.Empty(t, cart.CartItems)

		err = svc.RemoveCartItem(c, userId, cartItem.ID)
		assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)
	})

	t.Run("removing another users cart item is not found", func(t *testing.T) {
		owner := uuid.New()
		product := seedProduct(t, c, queries, 10)
		cartItem, err := svc.AddCartItem(c, owner, request.AddCartItem{
			ProductId: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)

		err = svc.RemoveCartItem(c, uuid.New(), cartItem.ID)
		assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)

		cart, err := svc.FindCart(c, owner)
		require.NoError(t, err)
		assert.Len(t, cart.CartItems, 1)
	})
}
