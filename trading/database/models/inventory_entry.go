package models

import (
	"time"

	"github.com/uptrace/bun"
)

// InventoryEntry is one (user, card) row of the collection. QuantityTradeable
// advertises willingness to give copies away, QuantityDesired is the wishlist
// weight. Both are mutated by the card-management UI; the trade engine only
// reads them.
type InventoryEntry struct {
	bun.BaseModel `bun:"table:inventory_entries,alias:ie"`

	ID                int64     `bun:"id,pk,autoincrement"`
	UserID            string    `bun:"user_id,notnull"`
	CardID            int64     `bun:"card_id,notnull"`
	QuantityOwned     int64     `bun:"quantity_owned,notnull,default:0"`
	QuantityTradeable int64     `bun:"quantity_tradeable,notnull,default:0"`
	QuantityDesired   int64     `bun:"quantity_desired,notnull,default:0"`
	CreatedAt         time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:"updated_at,notnull"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`
}

// CardInterest is one normalized (user, card) demand row from a cross-user
// wishlist query.
type CardInterest struct {
	UserID string `bun:"user_id"`
	CardID int64  `bun:"card_id"`
}

// CardSupply is one normalized (user, card) supply row with its catalog card
// resolved. The gateway flattens the join before the matching engine sees it.
type CardSupply struct {
	UserID string
	CardID int64
	Card   *Card
}
