package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

var (
	ErrInvalidTransition = errors.New("invalid trade session transition")
	ErrNotParticipant    = errors.New("user is not part of this trade session")
	ErrTradeNotFound     = errors.New("trade session not found")
)

// Lifecycle applies the trade session state machine. All terminal states are
// final; expiry of stale pending sessions is handled by the sweeper, not here.
type Lifecycle struct {
	trades TradeStore
}

func NewLifecycle(trades TradeStore) *Lifecycle {
	return &Lifecycle{trades: trades}
}

// Accept moves a pending session to active. Only the receiver may accept.
func (l *Lifecycle) Accept(ctx context.Context, tradeID, userID string) error {
	trade, err := l.load(ctx, tradeID)
	if err != nil {
		return err
	}
	if trade.ReceiverID != userID {
		return ErrNotParticipant
	}
	return l.transition(ctx, trade, models.TradeSessionActive)
}

// Decline rejects a pending session. Only the receiver may decline.
func (l *Lifecycle) Decline(ctx context.Context, tradeID, userID string) error {
	trade, err := l.load(ctx, tradeID)
	if err != nil {
		return err
	}
	if trade.ReceiverID != userID {
		return ErrNotParticipant
	}
	return l.transition(ctx, trade, models.TradeSessionRejected)
}

// Cancel withdraws a pending session. Either party may cancel before
// acceptance.
func (l *Lifecycle) Cancel(ctx context.Context, tradeID, userID string) error {
	trade, err := l.load(ctx, tradeID)
	if err != nil {
		return err
	}
	if !trade.HasParticipant(userID) {
		return ErrNotParticipant
	}
	return l.transition(ctx, trade, models.TradeSessionCancelled)
}

// Complete finalizes an active session.
func (l *Lifecycle) Complete(ctx context.Context, tradeID, userID string) error {
	trade, err := l.load(ctx, tradeID)
	if err != nil {
		return err
	}
	if !trade.HasParticipant(userID) {
		return ErrNotParticipant
	}
	return l.transition(ctx, trade, models.TradeSessionCompleted)
}

func (l *Lifecycle) load(ctx context.Context, tradeID string) (*models.TradeSession, error) {
	trade, err := l.trades.GetByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade session: %w", err)
	}
	if trade == nil {
		return nil, ErrTradeNotFound
	}
	return trade, nil
}

func (l *Lifecycle) transition(ctx context.Context, trade *models.TradeSession, next models.TradeSessionStatus) error {
	if !trade.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, trade.Status, next)
	}
	if err := l.trades.UpdateStatus(ctx, trade.ID, next); err != nil {
		return fmt.Errorf("failed to update trade session status: %w", err)
	}
	trade.Status = next

	slog.Info("Trade session status changed",
		slog.String("type", "trade"),
		slog.String("trade_id", trade.TradeID),
		slog.String("status", string(next)))
	return nil
}
