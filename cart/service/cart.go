package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/arvellene/storefront/cart/otel"
	"github.com/arvellene/storefront/cart/pkg/request"
	"github.com/arvellene/storefront/cart/pkg/response"
	sfErrors "github.com/arvellene/storefront/internal/errors"
	"github.com/arvellene/storefront/internal/log"
	inOtel "github.com/arvellene/storefront/internal/otel"
	"github.com/arvellene/storefront/internal/repository"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewCartService(pool *pgxpool.Pool, queries *repository.Queries) *CartService {
	return &CartService{pool: pool, queries: queries}
}

func (s *CartService) AddCartItem(
	c context.Context,
	userId uuid.UUID,
	param request.AddCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.queries.FindProductById(c, param.ProductId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding product with productId=%s with error=%w",
				param.ProductId.String(),
				sfErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding product with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "upserting cart").Logger()
	logger.Info().Msg("upserting cart")
	cart, err := s.queries.UpsertCart(c, repository.UpsertCartParams{
		ID:     uuid.New(),
		UserID: userId,
	})
	if err != nil {
		err = fmt.Errorf("failed upserting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("upserted cart")

	logger = logger.With().Str(log.KeyProcess, "inserting cart item").Logger()
	logger.Info().Msg("inserting cart item")
	cartItem, err := s.queries.InsertCartItem(c, repository.InsertCartItemParams{
		ID:        uuid.New(),
		CartID:    cart.ID,
		ProductID: product.ID,
		Price:     product.Price,
		Quantity:  param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Str(log.KeyCartItemID, cartItem.ID.String()).Msg("inserted cart item")

	return response.CartItem{
		ID:        cartItem.ID,
		CartID:    cartItem.CartID,
		ProductID: cartItem.ProductID,
		Title:     product.Title,
		Price:     repository.DecimalFromNumeric(cartItem.Price),
		Quantity:  cartItem.Quantity,
		Images:    product.Images,
		Category:  product.Category,
		CreatedAt: cartItem.CreatedAt.Time,
		UpdatedAt: cartItem.UpdatedAt.Time,
	}, nil
}

func (s *CartService) FindCart(
	c context.Context,
	userId uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("user has no cart yet")
			return response.Cart{UserID: userId, CartItems: []response.CartItem{}}, nil
		}
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	lines, err := s.queries.FindCartItemsWithProduct(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found %d cart items", len(lines))

	cartItems := make([]response.CartItem, 0, len(lines))
	for _, line := range lines {
		cartItems = append(cartItems, line.Response())
	}
	return response.Cart{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CartItems: cartItems,
		CreatedAt: cart.CreatedAt.Time,
		UpdatedAt: cart.UpdatedAt.Time,
	}, nil
}

func (s *CartService) RemoveCartItem(
	c context.Context,
	userId uuid.UUID,
	cartItemId uuid.UUID,
) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartItemID, cartItemId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding cart with error=%w", sfErrors.ErrCartItemNotFound)
		} else {
			err = fmt.Errorf("failed finding cart with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(log.KeyProcess, "deleting cart item").Logger()
	logger.Info().Msg("deleting cart item")
	deleted, err := s.queries.DeleteCartItem(c, repository.DeleteCartItemParams{
		ID:     cartItemId,
		CartID: cart.ID,
	})
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf(
			"failed deleting cart item with cartItemId=%s with error=%w",
			cartItemId.String(),
			sfErrors.ErrCartItemNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart item")

	return nil
}
