package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ChatSessionStatus string

const (
	ChatSessionActive  ChatSessionStatus = "active"
	ChatSessionExpired ChatSessionStatus = "expired"
)

// ChatSession pairs a trade session with its messaging channel. Multiple rows
// for the same trade can transiently exist (placeholder + real); the
// provisioner's dedup pass converges to exactly one authoritative row.
type ChatSession struct {
	bun.BaseModel `bun:"table:chat_sessions,alias:cs"`

	ID           int64             `bun:"id,pk,autoincrement"`
	TradeID      int64             `bun:"trade_id,notnull"`
	ChannelRef   string            `bun:"channel_ref,notnull,type:text"`
	Participants []string          `bun:"participants,type:jsonb"`
	Status       ChatSessionStatus `bun:"status,notnull"`
	ExpiresAt    time.Time         `bun:"expires_at,notnull"`
	CreatedAt    time.Time         `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time         `bun:"updated_at,notnull"`
}
