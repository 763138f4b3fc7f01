package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Card is reference data owned by the card catalog. The trade engine only
// reads it.
type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID        int64     `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	ImageURL  string    `bun:"image_url,type:text,default:''"`
	Rarity    string    `bun:"rarity,notnull,type:text"`
	CardType  string    `bun:"card_type,type:text,default:''"`
	Element   string    `bun:"element,type:text,default:''"`
	PackID    string    `bun:"pack_id,type:text,default:''"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
