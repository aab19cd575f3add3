package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arvellene/storefront/internal/repository"
)

type resolvedItem struct {
	CartItemId uuid.UUID
	ProductId  uuid.UUID
	Title      string
	Price      decimal.Decimal
	Quantity   int32
	Images     []string
	Category   string
}

// resolveSelection matches the selected cart item ids against the cart's
// lines. Ids that do not resolve to a line with an existing product are
// skipped without error; duplicate ids resolve once. Totals are accumulated
// over the resolved lines only.
func resolveSelection(
	lines []repository.FindCartItemsWithProductRow,
	selected []uuid.UUID,
) (resolved []resolvedItem, totalAmount decimal.Decimal, totalItems int32) {
	byId := make(map[uuid.UUID]repository.FindCartItemsWithProductRow, len(lines))
	for _, line := range lines {
		byId[line.ID] = line
	}

	seen := make(map[uuid.UUID]struct{}, len(selected))
	totalAmount = decimal.Zero
	for _, id := range selected {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		line, ok := byId[id]
		if !ok || !line.ProductOk {
			continue
		}

		price := repository.DecimalFromNumeric(line.Price)
		resolved = append(resolved, resolvedItem{
			CartItemId: line.ID,
			ProductId:  line.ProductID,
			Title:      line.ProductTitle,
			Price:      price,
			Quantity:   line.Quantity,
			Images:     line.ProductImages,
			Category:   line.ProductCategory,
		})
		totalAmount = totalAmount.Add(price.Mul(decimal.NewFromInt32(line.Quantity)))
		totalItems += line.Quantity
	}
	return resolved, totalAmount, totalItems
}
