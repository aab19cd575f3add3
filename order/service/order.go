package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inErrors "github.com/arvellene/storefront/internal/errors"
	"github.com/arvellene/storefront/internal/log"
	inOtel "github.com/arvellene/storefront/internal/otel"
	"github.com/arvellene/storefront/internal/repository"
	"github.com/arvellene/storefront/order/otel"
	"github.com/arvellene/storefront/order/pkg/request"
	"github.com/arvellene/storefront/order/pkg/response"
)

const (
	KEY_ORDER_CACHE = "orders:%s:%s"

	orderCacheTTL    = time.Hour
	defaultPageLimit = 20
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *OrderService {
	return &OrderService{pool: pool, queries: queries, cache: cache}
}

// PlaceOrder turns the selected cart lines into an order. The order insert
// and the cart drain commit in one transaction; a retry carrying the same
// idempotency key returns the original order untouched.
func (s OrderService) PlaceOrder(
	c context.Context,
	userId uuid.UUID,
	param request.PlaceOrder,
) (response.OrderSummary, error) {
	c, span := otel.Tracer.Start(c, "OrderService PlaceOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService PlaceOrder").
		Str(log.KeyUserID, userId.String()).
		Logger()

	if param.IdempotencyKey != "" {
		logger = logger.With().
			Str(log.KeyProcess, "checking idempotency key").
			Str(log.KeyIdempotencyKey, param.IdempotencyKey).
			Logger()
		logger.Info().Msg("checking idempotency key")
		existing, err := s.queries.FindOrderByIdempotencyKey(
			c,
			repository.FindOrderByIdempotencyKeyParams{
				UserID:         userId,
				IdempotencyKey: pgtype.Text{String: param.IdempotencyKey, Valid: true},
			},
		)
		if err == nil {
			logger.Info().
				Str(log.KeyOrderID, existing.ID.String()).
				Msg("idempotency key already used, returning existing order")
			return existing.Summary(), nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed checking idempotency key with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.OrderSummary{}, err
		}
		logger.Info().Msg("idempotency key unused")
	}

	logger = logger.With().Str(log.KeyProcess, "loading cart").Logger()
	logger.Info().Msg("loading cart")
	cart, lines, err := s.loadCart(c, userId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msgf("loaded cart with %d items", len(lines))

	logger = logger.With().Str(log.KeyProcess, "resolving selection").Logger()
	logger.Info().Msg("resolving selection")
	resolved, totalAmount, totalItems := resolveSelection(lines, param.SelectedItems)
	if len(resolved) == 0 {
		err = fmt.Errorf(
			"failed resolving selection of %d ids with error=%w",
			len(param.SelectedItems),
			inErrors.ErrNoValidItems,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	logger.Info().Msgf("resolved %d of %d selected ids", len(resolved), len(param.SelectedItems))

	deliveryMethod := repository.DeliveryMethodStandard
	if param.DeliveryMethod != "" {
		deliveryMethod = repository.DeliveryMethod(param.DeliveryMethod)
	}
	idempotencyKey := pgtype.Text{String: param.IdempotencyKey, Valid: param.IdempotencyKey != ""}

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := s.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	defer func() {
		err := tx.Rollback(c)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()
	logger.Info().Msg("initialized transaction")

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	qtx := s.queries.WithTx(tx)
	insertedOrder, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		ID:              uuid.New(),
		UserID:          userId,
		DeliveryMethod:  deliveryMethod,
		TotalAmount:     repository.NumericFromDecimal(totalAmount),
		TotalItems:      totalItems,
		ShippingAddress: param.ShippingAddress.Address,
		ShippingPhone:   param.ShippingAddress.Phone,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, insertedOrder.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("inserting order items")
	orderItems := make([]response.OrderItem, 0, len(resolved))
	consumedIds := make([]uuid.UUID, 0, len(resolved))
	for _, item := range resolved {
		inserted, err := qtx.InsertOrderItem(c, repository.InsertOrderItemParams{
			ID:        uuid.New(),
			OrderID:   insertedOrder.ID,
			ProductID: item.ProductId,
			Title:     item.Title,
			Price:     repository.NumericFromDecimal(item.Price),
			Quantity:  item.Quantity,
			Images:    item.Images,
		})
		if err != nil {
			err = fmt.Errorf("failed inserting order item with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.OrderSummary{}, err
		}
		orderItems = append(orderItems, response.OrderItem{
			ID:        inserted.ID,
			ProductId: inserted.ProductID,
			Title:     inserted.Title,
			Price:     repository.DecimalFromNumeric(inserted.Price),
			Quantity:  inserted.Quantity,
			Images:    inserted.Images,
		})
		consumedIds = append(consumedIds, item.CartItemId)
	}
	logger.Info().Msgf("inserted %d order items", len(orderItems))

	logger = logger.With().Str(log.KeyProcess, "draining cart").Logger()
	logger.Info().Msg("draining consumed cart items")
	drained, err := qtx.DeleteCartItemsByIds(c, repository.DeleteCartItemsByIdsParams{
		CartID: cart.ID,
		Ids:    consumedIds,
	})
	if err != nil {
		err = fmt.Errorf("failed draining cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	logger.Info().Msgf("drained %d cart items", drained)

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderSummary{}, err
	}
	logger.Info().Msg("committed transaction")

	order := response.Order{
		ID:             insertedOrder.ID,
		UserId:         insertedOrder.UserID,
		Status:         string(insertedOrder.Status),
		DeliveryMethod: string(insertedOrder.DeliveryMethod),
		TotalAmount:    repository.DecimalFromNumeric(insertedOrder.TotalAmount),
		TotalItems:     insertedOrder.TotalItems,
		ShippingAddress: response.ShippingAddress{
			Address: insertedOrder.ShippingAddress,
			Phone:   insertedOrder.ShippingPhone,
		},
		OrderItems: orderItems,
		CreatedAt:  insertedOrder.CreatedAt.Time,
		UpdatedAt:  insertedOrder.UpdatedAt.Time,
	}
	s.cacheOrder(c, order)

	return order.Summary(), nil
}

// CheckoutSummary runs the same cart-load and selection resolution as
// PlaceOrder without persisting or draining anything. An all-stale selection
// yields empty items and zero totals rather than an error.
func (s OrderService) CheckoutSummary(
	c context.Context,
	userId uuid.UUID,
	param request.CheckoutSummary,
) (response.CheckoutSummary, error) {
	c, span := otel.Tracer.Start(c, "OrderService CheckoutSummary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CheckoutSummary").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "loading cart").Logger()
	logger.Info().Msg("loading cart")
	cart, lines, err := s.loadCart(c, userId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CheckoutSummary{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msgf("loaded cart with %d items", len(lines))

	logger = logger.With().Str(log.KeyProcess, "resolving selection").Logger()
	logger.Info().Msg("resolving selection")
	resolved, totalAmount, totalItems := resolveSelection(lines, param.SelectedItems)
	logger.Info().Msgf("resolved %d of %d selected ids", len(resolved), len(param.SelectedItems))

	items := make([]response.CheckoutItem, 0, len(resolved))
	for _, item := range resolved {
		items = append(items, response.CheckoutItem{
			CartItemId: item.CartItemId,
			ProductId:  item.ProductId,
			Title:      item.Title,
			UnitPrice:  item.Price,
			Quantity:   item.Quantity,
			LineTotal:  item.Price.Mul(decimal.NewFromInt32(item.Quantity)),
			Images:     item.Images,
			Category:   item.Category,
		})
	}

	return response.CheckoutSummary{
		Items:       items,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
		ItemCount:   len(items),
	}, nil
}

// FindOrders lists the caller's orders newest first as summary projections,
// paginated by an opaque keyset cursor.
func (s OrderService) FindOrders(
	c context.Context,
	userId uuid.UUID,
	param request.FindOrders,
) (response.Orders, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProcess, "finding orders").
		Logger()

	limit := param.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	logger.Info().Msg("finding orders")
	var rows []repository.FindOrdersByUserIdRow
	var err error
	if param.Cursor == "" {
		rows, err = s.queries.FindOrdersByUserId(c, repository.FindOrdersByUserIdParams{
			UserID: userId,
			Limit:  limit,
		})
	} else {
		createdAt, lastId, decodeErr := decodeCursor(param.Cursor)
		if decodeErr != nil {
			inOtel.RecordError(decodeErr, span)
			logger.Error().Err(decodeErr).Msg(decodeErr.Error())
			return response.Orders{}, decodeErr
		}
		rows, err = s.queries.FindOrdersByUserIdBefore(c, repository.FindOrdersByUserIdBeforeParams{
			UserID:    userId,
			CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
			ID:        lastId,
			Limit:     limit,
		})
	}
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Orders{}, err
	}
	logger.Info().Msgf("found %d orders", len(rows))

	orders := make([]response.OrderSummary, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.Summary())
	}

	nextCursor := ""
	if int32(len(rows)) == limit {
		last := rows[len(rows)-1]
		nextCursor = encodeCursor(last.CreatedAt.Time, last.ID)
	}

	return response.Orders{Orders: orders, NextCursor: nextCursor}, nil
}

// FindOrderById returns the full order document scoped to (orderId, userId).
// Cross-user and unknown ids are indistinguishable: both are not found.
func (s OrderService) FindOrderById(
	c context.Context,
	userId uuid.UUID,
	orderId uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	cacheKey := fmt.Sprintf(KEY_ORDER_CACHE, userId.String(), orderId.String())
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyOrderID, orderId.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking cache").Logger()
	logger.Info().Msg("checking order cache")
	cached, err := s.cache.Get(c, cacheKey).Bytes()
	if err == nil {
		order := response.Order{}
		if err := json.Unmarshal(cached, &order); err == nil {
			logger.Info().Msg("order cache hit")
			return order, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn().Err(err).Msg("failed reading order cache")
	}
	logger.Info().Msg("order cache miss")

	logger = logger.With().Str(log.KeyProcess, "finding order by id").Logger()
	logger.Info().Msg("finding order by id")
	row, err := s.queries.FindOrderById(c, repository.FindOrderByIdParams{
		UserID: userId,
		ID:     orderId,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding order by id=%s with error=%w",
				orderId.String(),
				inErrors.ErrOrderNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding order by id=%s with error=%w", orderId.String(), err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order by id")

	order, err := row.Response()
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	s.cacheOrder(c, order)
	return order, nil
}

// loadCart reads the caller's cart and its lines; a missing cart and a cart
// with zero lines are the same failure.
func (s OrderService) loadCart(
	c context.Context,
	userId uuid.UUID,
) (repository.Cart, []repository.FindCartItemsWithProductRow, error) {
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Cart{}, nil, fmt.Errorf(
				"failed loading cart for user=%s with error=%w",
				userId.String(),
				inErrors.ErrEmptyCart,
			)
		}
		return repository.Cart{}, nil, fmt.Errorf(
			"failed loading cart for user=%s with error=%w",
			userId.String(),
			err,
		)
	}

	lines, err := s.queries.FindCartItemsWithProduct(c, cart.ID)
	if err != nil {
		return repository.Cart{}, nil, fmt.Errorf(
			"failed loading cart items for cart=%s with error=%w",
			cart.ID.String(),
			err,
		)
	}
	if len(lines) == 0 {
		return repository.Cart{}, nil, fmt.Errorf(
			"failed loading cart for user=%s with error=%w",
			userId.String(),
			inErrors.ErrEmptyCart,
		)
	}
	return cart, lines, nil
}

// cacheOrder is best effort: cache failures are logged, never surfaced.
func (s OrderService) cacheOrder(c context.Context, order response.Order) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService cacheOrder").
		Str(log.KeyOrderID, order.ID.String()).
		Logger()

	payload, err := json.Marshal(order)
	if err != nil {
		logger.Warn().Err(err).Msg("failed marshaling order for cache")
		return
	}
	cacheKey := fmt.Sprintf(KEY_ORDER_CACHE, order.UserId.String(), order.ID.String())
	err = s.cache.Set(c, cacheKey, payload, orderCacheTTL).Err()
	if err != nil {
		logger.Warn().Err(err).Msg("failed writing order cache")
	}
}
