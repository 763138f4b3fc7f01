// Package chat keeps trade messaging channels healthy. The backend is an
// external SaaS whose channel membership can silently drift, so every message
// read re-validates membership and escalates to full recreation after
// repeated failures.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/thong1990/t3turbo-sub000/trading/messaging"
	"github.com/thong1990/t3turbo-sub000/trading/session"
)

// ErrNeedsRecreation signals that a channel keeps dropping a participant and
// must be recreated rather than blindly retried. Callers surface it
// distinctly from generic I/O failures.
var ErrNeedsRecreation = errors.New("channel needs recreation")

const (
	failureThreshold = 2
	counterSize      = 1024
	counterTTL       = 30 * time.Minute
)

// Monitor tracks per-channel membership failures and repairs or recreates
// channels on demand. The failure counter is process-local and lossy on
// restart; it only gates a recovery heuristic, not correctness.
type Monitor struct {
	trades    session.TradeStore
	chats     session.ChatStore
	messenger messaging.Client
	failures  *expirable.LRU[string, int]
}

func NewMonitor(trades session.TradeStore, chats session.ChatStore, messenger messaging.Client) *Monitor {
	return &Monitor{
		trades:    trades,
		chats:     chats,
		messenger: messenger,
		failures:  expirable.NewLRU[string, int](counterSize, nil, counterTTL),
	}
}

// EnsureMembership verifies that userID can read channelRef, repairing
// membership or recreating the channel when verification keeps failing. It
// returns the authoritative channel reference, which changes when the channel
// is recreated. Call it before every read of a channel's message history.
func (m *Monitor) EnsureMembership(ctx context.Context, channelRef, userID string) (string, error) {
	if count, ok := m.failures.Get(channelRef); ok && count >= failureThreshold {
		trade, err := m.trades.GetByChannelRef(ctx, channelRef)
		if err != nil {
			slog.Warn("Failed to resolve owning trade session for failing channel",
				slog.String("type", "chat"),
				slog.String("channel_ref", channelRef),
				slog.Any("error", err))
		}
		if trade != nil {
			newRef, err := m.Recreate(ctx, trade)
			if err != nil {
				return "", fmt.Errorf("failed to recreate channel: %w", err)
			}
			return newRef, nil
		}
		// No owning session; fall through to the normal membership check.
	}

	channel, err := m.messenger.GetChannel(ctx, channelRef)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel: %w", err)
	}
	if channel.HasMember(userID) {
		return channelRef, nil
	}

	if err := m.messenger.InviteMembers(ctx, channelRef, []string{userID}); err != nil {
		slog.Warn("Failed to invite user to channel",
			slog.String("type", "chat"),
			slog.String("channel_ref", channelRef),
			slog.String("user_id", userID),
			slog.Any("error", err))
	}

	// The backend acks invites it then drops; trust only a re-fetch.
	channel, err = m.messenger.GetChannel(ctx, channelRef)
	if err != nil {
		return "", fmt.Errorf("failed to verify channel membership: %w", err)
	}
	if channel.HasMember(userID) {
		return channelRef, nil
	}

	// Best-effort increment; a lost update under a race is acceptable.
	count, _ := m.failures.Get(channelRef)
	m.failures.Add(channelRef, count+1)

	return "", fmt.Errorf("%w: user %s absent from %s after invite", ErrNeedsRecreation, userID, channelRef)
}

// Recreate replaces a channel that keeps losing membership: best-effort
// delete of the old channel, a fresh channel with both participants, and
// re-linking of the trade and chat rows. Both counters are reset.
func (m *Monitor) Recreate(ctx context.Context, trade *models.TradeSession) (string, error) {
	oldRef := trade.ChannelRef
	if oldRef != "" {
		if err := m.messenger.DeleteChannel(ctx, oldRef); err != nil {
			slog.Warn("Failed to delete stale channel, orphaning it",
				slog.String("type", "chat"),
				slog.String("channel_ref", oldRef),
				slog.Any("error", err))
		}
	}

	newRef, err := m.messenger.CreateChannel(ctx, []string{trade.InitiatorID, trade.ReceiverID}, messaging.Metadata{
		TradeID: trade.TradeID,
		Kind:    "trade",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create replacement channel: %w", err)
	}

	if err := m.trades.SetChannelRef(ctx, trade.ID, newRef); err != nil {
		return "", fmt.Errorf("failed to relink trade session: %w", err)
	}
	if err := m.chats.SetChannelRefByTradeID(ctx, trade.ID, newRef); err != nil {
		// The chat row converges on the next provisioning or dedup pass.
		slog.Warn("Failed to relink chat session",
			slog.String("type", "chat"),
			slog.String("trade_id", trade.TradeID),
			slog.Any("error", err))
	}
	trade.ChannelRef = newRef

	m.failures.Remove(oldRef)
	m.failures.Remove(newRef)

	slog.Info("Recreated trade channel",
		slog.String("type", "chat"),
		slog.String("trade_id", trade.TradeID),
		slog.String("old_channel_ref", oldRef),
		slog.String("new_channel_ref", newRef))

	return newRef, nil
}
