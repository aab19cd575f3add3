package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/arvellene/storefront/internal/repository"
)

type testHarness struct {
	pool           *pgxpool.Pool
	cache          *redis.Client
	pgContainer    *postgres.PostgresContainer
	redisContainer *testRedis.RedisContainer
	queries        *repository.Queries
	service        *OrderService
}

func setup(t *testing.T, c context.Context) *testHarness {
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
			filepath.Join("..", "..", "migrations", "20250603101700_create_table_orders.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgconfig with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}

	queries := repository.New(pool)
	return &testHarness{
		pool:           pool,
		cache:          redisClient,
		pgContainer:    pgContainer,
		redisContainer: redisContainer,
		queries:        queries,
		service:        NewOrderService(pool, queries, redisClient),
	}
}

func (h *testHarness) teardown(t *testing.T) {
	t.Helper()

	h.cache.Close()
	h.pool.Close()
	if err := testcontainers.TerminateContainer(h.pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(h.redisContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}

func (h *testHarness) seedProduct(
	t *testing.T,
	c context.Context,
	title string,
	price int64,
) repository.Product {
	t.Helper()

	product, err := h.queries.InsertProduct(c, repository.InsertProductParams{
		ID:       uuid.New(),
		Title:    title,
		Price:    repository.NumericFromDecimal(decimal.NewFromInt(price)),
		Images:   []string{"https://img.example.com/" + title + ".png"},
		Category: "test",
	})
	if err != nil {
		t.Fatalf("failed seeding product with error: %s", err)
	}
	return product
}

func (h *testHarness) seedCart(t *testing.T, c context.Context, userId uuid.UUID) repository.Cart {
	t.Helper()

	cart, err := h.queries.UpsertCart(c, repository.UpsertCartParams{
		ID:     uuid.New(),
		UserID: userId,
	})
	if err != nil {
		t.Fatalf("failed seeding cart with error: %s", err)
	}
	return cart
}

func (h *testHarness) seedCartItem(
	t *testing.T,
	c context.Context,
	cartId uuid.UUID,
	product repository.Product,
	quantity int32,
) repository.CartItem {
	t.Helper()

	cartItem, err := h.queries.InsertCartItem(c, repository.InsertCartItemParams{
		ID:        uuid.New(),
		CartID:    cartId,
		ProductID: product.ID,
		Price:     product.Price,
		Quantity:  quantity,
	})
	if err != nil {
		t.Fatalf("failed seeding cart item with error: %s", err)
	}
	return cartItem
}
