package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arvellene/storefront/internal/repository"
)

func cartLine(price int64, quantity int32, productOk bool) repository.FindCartItemsWithProductRow {
	return repository.FindCartItemsWithProductRow{
		ID:        uuid.New(),
		CartID:    uuid.New(),
		ProductID: uuid.New(),
		Price:     repository.NumericFromDecimal(decimal.NewFromInt(price)),
		Quantity:  quantity,
		ProductOk: productOk,
	}
}

func TestResolveSelection(t *testing.T) {
	t.Run("resolves only selected lines and sums totals", func(t *testing.T) {
		lines := []repository.FindCartItemsWithProductRow{
			cartLine(10, 2, true),
			cartLine(25, 1, true),
			cartLine(99, 3, true),
		}
		selected := []uuid.UUID{lines[0].ID, lines[1].ID}

		resolved, totalAmount, totalItems := resolveSelection(lines, selected)

		assert.Len(t, resolved, 2)
		assert.True(t, decimal.NewFromInt(45).Equal(totalAmount), "totalAmount should be 45 got %s", totalAmount)
		assert.EqualValues(t, 3, totalItems)
	})

	t.Run("skips ids that are not in the cart", func(t *testing.T) {
		lines := []repository.FindCartItemsWithProductRow{cartLine(10, 1, true)}
		selected := []uuid.UUID{lines[0].ID, uuid.New(), uuid.New()}

		resolved, totalAmount, totalItems := resolveSelection(lines, selected)

		assert.Len(t, resolved, 1)
		assert.True(t, decimal.NewFromInt(10).Equal(totalAmount))
		assert.EqualValues(t, 1, totalItems)
	})

	t.Run("skips lines whose product no longer exists", func(t *testing.T) {
		lines := []repository.FindCartItemsWithProductRow{
			cartLine(10, 2, true),
			cartLine(500, 4, false),
		}
		selected := []uuid.UUID{lines[0].ID, lines[1].ID}

		resolved, totalAmount, totalItems := resolveSelection(lines, selected)

		assert.Len(t, resolved, 1)
		assert.EqualValues(t, lines[0].ID, resolved[0].CartItemId)
		assert.True(t, decimal.NewFromInt(20).Equal(totalAmount))
		assert.EqualValues(t, 2, totalItems)
	})

	t.Run("duplicate ids resolve once", func(t *testing.T) {
		lines := []repository.FindCartItemsWithProductRow{cartLine(10, 2, true)}
		selected := []uuid.UUID{lines[0].ID, lines[0].ID, lines[0].ID}

		resolved, totalAmount, totalItems := resolveSelection(lines, selected)

		assert.Len(t, resolved, 1)
		assert.True(t, decimal.NewFromInt(20).Equal(totalAmount))
		assert.EqualValues(t, 2, totalItems)
	})

	t.Run("nothing resolves when every product is gone", func(t *testing.T) {
		lines := []repository.FindCartItemsWithProductRow{
			cartLine(10, 1, false),
			cartLine(20, 1, false),
		}
		selected := []uuid.UUID{lines[0].ID, lines[1].ID}

		resolved, totalAmount, totalItems := resolveSelection(lines, selected)

		assert.Empty(t, resolved)
		assert.True(t, totalAmount.IsZero())
		assert.EqualValues(t, 0, totalItems)
	})
}
