package session

import (
	"context"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

// TradeStore is the persistence surface the provisioner and lifecycle need
// for trade sessions. Lookups return (nil, nil) when no row matches.
type TradeStore interface {
	Create(ctx context.Context, trade *models.TradeSession) error
	AddLineItems(ctx context.Context, items []*models.TradeLineItem) error
	GetByTradeID(ctx context.Context, tradeID string) (*models.TradeSession, error)
	GetByChannelRef(ctx context.Context, channelRef string) (*models.TradeSession, error)
	SetChannelRef(ctx context.Context, id int64, channelRef string) error
	UpdateStatus(ctx context.Context, id int64, status models.TradeSessionStatus) error
}

// ChatStore is the persistence surface for chat session rows. Lookups return
// (nil, nil) when no row matches.
type ChatStore interface {
	Create(ctx context.Context, chat *models.ChatSession) error
	Update(ctx context.Context, chat *models.ChatSession) error
	GetActiveByTradeID(ctx context.Context, tradeID int64) (*models.ChatSession, error)
	ListByTradeID(ctx context.Context, tradeID int64) ([]*models.ChatSession, error)
	Delete(ctx context.Context, id int64) error
	SetChannelRefByTradeID(ctx context.Context, tradeID int64, channelRef string) error
}
