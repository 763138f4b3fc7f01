package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/uptrace/bun"
)

const sessionTTL = 7 * 24 * time.Hour

type TradeSessionRepository interface {
	Create(ctx context.Context, trade *models.TradeSession) error
	AddLineItems(ctx context.Context, items []*models.TradeLineItem) error
	GetByID(ctx context.Context, id int64) (*models.TradeSession, error)
	GetByTradeID(ctx context.Context, tradeID string) (*models.TradeSession, error)
	GetByChannelRef(ctx context.Context, channelRef string) (*models.TradeSession, error)
	GetWithLineItems(ctx context.Context, id int64) (*models.TradeSession, error)
	GetUserSessions(ctx context.Context, userID string, status models.TradeSessionStatus) ([]*models.TradeSession, error)
	SetChannelRef(ctx context.Context, id int64, channelRef string) error
	UpdateStatus(ctx context.Context, id int64, status models.TradeSessionStatus) error
	ExpireOld(ctx context.Context) (int64, error)
}

type tradeSessionRepository struct {
	db *bun.DB
}

func NewTradeSessionRepository(db *bun.DB) TradeSessionRepository {
	return &tradeSessionRepository{db: db}
}

func (r *tradeSessionRepository) Create(ctx context.Context, trade *models.TradeSession) error {
	trade.Status = models.TradeSessionPending
	trade.ExpiresAt = time.Now().Add(sessionTTL)
	trade.CreatedAt = time.Now()
	trade.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().Model(trade).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trade session: %w", err)
	}
	return nil
}

func (r *tradeSessionRepository) AddLineItems(ctx context.Context, items []*models.TradeLineItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		item.CreatedAt = time.Now()
	}

	_, err := r.db.NewInsert().Model(&items).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add trade line items: %w", err)
	}
	return nil
}

func (r *tradeSessionRepository) GetByID(ctx context.Context, id int64) (*models.TradeSession, error) {
	trade := new(models.TradeSession)
	err := r.db.NewSelect().
		Model(trade).
		Where("ts.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade session: %w", err)
	}
	return trade, nil
}

func (r *tradeSessionRepository) GetByTradeID(ctx context.Context, tradeID string) (*models.TradeSession, error) {
	trade := new(models.TradeSession)
	err := r.db.NewSelect().
		Model(trade).
		Where("ts.trade_id = ?", tradeID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade session: %w", err)
	}
	return trade, nil
}

func (r *tradeSessionRepository) GetByChannelRef(ctx context.Context, channelRef string) (*models.TradeSession, error) {
	trade := new(models.TradeSession)
	err := r.db.NewSelect().
		Model(trade).
		Where("ts.channel_ref = ?", channelRef).
		Order("ts.created_at DESC").
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade session by channel: %w", err)
	}
	return trade, nil
}

func (r *tradeSessionRepository) GetWithLineItems(ctx context.Context, id int64) (*models.TradeSession, error) {
	trade := new(models.TradeSession)
	err := r.db.NewSelect().
		Model(trade).
		Relation("LineItems").
		Relation("LineItems.Card").
		Where("ts.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade session with line items: %w", err)
	}
	return trade, nil
}

func (r *tradeSessionRepository) GetUserSessions(ctx context.Context, userID string, status models.TradeSessionStatus) ([]*models.TradeSession, error) {
	var trades []*models.TradeSession
	err := r.db.NewSelect().
		Model(&trades).
		Where("(initiator_id = ? OR receiver_id = ?) AND status = ?", userID, userID, status).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get user trade sessions: %w", err)
	}
	return trades, nil
}

func (r *tradeSessionRepository) SetChannelRef(ctx context.Context, id int64, channelRef string) error {
	_, err := r.db.NewUpdate().
		Model((*models.TradeSession)(nil)).
		Set("channel_ref = ?", channelRef).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set channel ref: %w", err)
	}
	return nil
}

func (r *tradeSessionRepository) UpdateStatus(ctx context.Context, id int64, status models.TradeSessionStatus) error {
	_, err := r.db.NewUpdate().
		Model((*models.TradeSession)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update trade session status: %w", err)
	}
	return nil
}

func (r *tradeSessionRepository) ExpireOld(ctx context.Context) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.TradeSession)(nil)).
		Set("status = ?", models.TradeSessionExpired).
		Set("updated_at = ?", time.Now()).
		Where("status = ? AND expires_at <= ?", models.TradeSessionPending, time.Now()).
		Exec(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to expire old trade sessions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired trade sessions: %w", err)
	}
	if affected > 0 {
		slog.Info("Expired stale trade sessions",
			slog.String("type", "trade"),
			slog.Int64("count", affected))
	}
	return affected, nil
}
