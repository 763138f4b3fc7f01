package models

import (
	"time"

	"github.com/uptrace/bun"
)

// TradeLineItem records which side contributes which card at session-creation
// time. Immutable once written.
type TradeLineItem struct {
	bun.BaseModel `bun:"table:trade_line_items,alias:tli"`

	ID        int64     `bun:"id,pk,autoincrement"`
	SessionID int64     `bun:"session_id,notnull"`
	OwnerID   string    `bun:"owner_id,notnull"`
	CardID    int64     `bun:"card_id,notnull"`
	Quantity  int64     `bun:"quantity,notnull,default:1"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`
}
