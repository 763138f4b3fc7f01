package matching

import (
	"context"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

// Repository is the read surface the matching engine needs from the inventory
// store. Implementations must filter by quantity (tradeable > 0, desired > 0)
// and resolve the card relation before returning.
type Repository interface {
	GetTradeableCards(ctx context.Context, userID string) ([]*models.InventoryEntry, error)
	GetWishlist(ctx context.Context, userID string) ([]*models.InventoryEntry, error)
	GetUsersWantingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardInterest, error)
	GetUsersSupplyingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardSupply, error)
	GetUserNames(ctx context.Context, userIDs []string) (map[string]string, error)
}
