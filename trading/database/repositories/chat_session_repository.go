package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/uptrace/bun"
)

const chatTTL = 24 * time.Hour

type ChatSessionRepository interface {
	Create(ctx context.Context, chat *models.ChatSession) error
	Update(ctx context.Context, chat *models.ChatSession) error
	GetActiveByTradeID(ctx context.Context, tradeID int64) (*models.ChatSession, error)
	ListByTradeID(ctx context.Context, tradeID int64) ([]*models.ChatSession, error)
	Delete(ctx context.Context, id int64) error
	SetChannelRefByTradeID(ctx context.Context, tradeID int64, channelRef string) error
	ExpireOld(ctx context.Context) (int64, error)
}

type chatSessionRepository struct {
	db *bun.DB
}

func NewChatSessionRepository(db *bun.DB) ChatSessionRepository {
	return &chatSessionRepository{db: db}
}

func (r *chatSessionRepository) Create(ctx context.Context, chat *models.ChatSession) error {
	if chat.Status == "" {
		chat.Status = models.ChatSessionActive
	}
	if chat.ExpiresAt.IsZero() {
		chat.ExpiresAt = time.Now().Add(chatTTL)
	}
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().Model(chat).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

func (r *chatSessionRepository) Update(ctx context.Context, chat *models.ChatSession) error {
	chat.UpdatedAt = time.Now()

	_, err := r.db.NewUpdate().
		Model(chat).
		WherePK().
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update chat session: %w", err)
	}
	return nil
}

func (r *chatSessionRepository) GetActiveByTradeID(ctx context.Context, tradeID int64) (*models.ChatSession, error) {
	chat := new(models.ChatSession)
	err := r.db.NewSelect().
		Model(chat).
		Where("cs.trade_id = ? AND cs.status = ?", tradeID, models.ChatSessionActive).
		Order("cs.created_at DESC").
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active chat session: %w", err)
	}
	return chat, nil
}

func (r *chatSessionRepository) ListByTradeID(ctx context.Context, tradeID int64) ([]*models.ChatSession, error) {
	var chats []*models.ChatSession
	err := r.db.NewSelect().
		Model(&chats).
		Where("cs.trade_id = ?", tradeID).
		Order("cs.created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return chats, nil
}

func (r *chatSessionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.ChatSession)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	return nil
}

func (r *chatSessionRepository) SetChannelRefByTradeID(ctx context.Context, tradeID int64, channelRef string) error {
	_, err := r.db.NewUpdate().
		Model((*models.ChatSession)(nil)).
		Set("channel_ref = ?", channelRef).
		Set("updated_at = ?", time.Now()).
		Where("trade_id = ?", tradeID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set chat session channel ref: %w", err)
	}
	return nil
}

func (r *chatSessionRepository) ExpireOld(ctx context.Context) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.ChatSession)(nil)).
		Set("status = ?", models.ChatSessionExpired).
		Set("updated_at = ?", time.Now()).
		Where("status = ? AND expires_at <= ?", models.ChatSessionActive, time.Now()).
		Exec(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to expire old chat sessions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired chat sessions: %w", err)
	}
	return affected, nil
}
