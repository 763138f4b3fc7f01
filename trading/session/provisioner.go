package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/thong1990/t3turbo-sub000/trading/matching"
	"github.com/thong1990/t3turbo-sub000/trading/messaging"
)

var (
	ErrSameParticipant  = errors.New("initiator and receiver must differ")
	ErrEmptyParticipant = errors.New("participant id must not be empty")
)

// Provisioner turns a chosen proposal into a durable trade session with an
// attached messaging channel. The session store and the messaging backend are
// not covered by a shared transaction; each step is either fatal (session
// row, line items) or tolerable-partial-failure (channel, link, chat row),
// and the dedup pass repairs whatever the partial failures leave behind.
type Provisioner struct {
	trades    TradeStore
	chats     ChatStore
	messenger messaging.Client
}

func NewProvisioner(trades TradeStore, chats ChatStore, messenger messaging.Client) *Provisioner {
	return &Provisioner{
		trades:    trades,
		chats:     chats,
		messenger: messenger,
	}
}

// CreateTradeSession persists a new trade session for the chosen proposal and
// provisions its messaging channel. Persistence failures on the session row
// or its line items abort the call; everything after that degrades to a
// session without a linked channel, repaired lazily on first access. Calling
// this twice for the same proposal is tolerated: each call creates its own
// trade session, and chat session rows are converged to one per trade.
func (p *Provisioner) CreateTradeSession(ctx context.Context, proposal *matching.TradeProposal, initiatorID string) (*models.TradeSession, error) {
	if initiatorID == "" || proposal.PartnerID == "" {
		return nil, ErrEmptyParticipant
	}
	if initiatorID == proposal.PartnerID {
		return nil, ErrSameParticipant
	}

	trade := &models.TradeSession{
		TradeID:     uuid.NewString(),
		InitiatorID: initiatorID,
		ReceiverID:  proposal.PartnerID,
	}
	if err := p.trades.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade session: %w", err)
	}

	items := make([]*models.TradeLineItem, 0, len(proposal.CardsIGive)+len(proposal.CardsIWant))
	for _, card := range proposal.CardsIGive {
		items = append(items, &models.TradeLineItem{SessionID: trade.ID, OwnerID: initiatorID, CardID: card.ID, Quantity: 1})
	}
	for _, card := range proposal.CardsIWant {
		items = append(items, &models.TradeLineItem{SessionID: trade.ID, OwnerID: proposal.PartnerID, CardID: card.ID, Quantity: 1})
	}
	if len(items) > 0 {
		if err := p.trades.AddLineItems(ctx, items); err != nil {
			return nil, fmt.Errorf("failed to record trade line items: %w", err)
		}
	}

	channelRef, err := p.messenger.CreateChannel(ctx, []string{initiatorID, proposal.PartnerID}, messaging.Metadata{
		TradeID: trade.TradeID,
		Kind:    "trade",
	})
	if err != nil {
		slog.Warn("Channel provisioning failed, trade session continues without channel",
			slog.String("type", "chat"),
			slog.String("trade_id", trade.TradeID),
			slog.Any("error", err))
		channelRef = ""
	}

	if channelRef != "" {
		if err := p.trades.SetChannelRef(ctx, trade.ID, channelRef); err != nil {
			// Relinked lazily on next channel access.
			slog.Warn("Failed to link channel to trade session",
				slog.String("type", "chat"),
				slog.String("trade_id", trade.TradeID),
				slog.String("channel_ref", channelRef),
				slog.Any("error", err))
		} else {
			trade.ChannelRef = channelRef
		}
	}

	p.upsertChatSession(ctx, trade, channelRef)
	p.dedupeChatSessions(ctx, trade.ID)

	slog.Info("Trade session provisioned",
		slog.String("type", "trade"),
		slog.String("trade_id", trade.TradeID),
		slog.String("initiator_id", trade.InitiatorID),
		slog.String("receiver_id", trade.ReceiverID),
		slog.Bool("channel_linked", trade.ChannelRef != ""))

	return trade, nil
}

// upsertChatSession merges into an existing placeholder row when one exists,
// otherwise inserts a new row. Failures are non-fatal: the trade session
// stays valid either way.
func (p *Provisioner) upsertChatSession(ctx context.Context, trade *models.TradeSession, channelRef string) {
	ref := channelRef
	if ref == "" {
		ref = messaging.PlaceholderRef(trade.TradeID)
	}

	existing, err := p.chats.GetActiveByTradeID(ctx, trade.ID)
	if err != nil {
		slog.Warn("Failed to look up chat session",
			slog.String("type", "chat"),
			slog.String("trade_id", trade.TradeID),
			slog.Any("error", err))
	}
	if existing != nil && messaging.IsPlaceholder(existing.ChannelRef) {
		existing.ChannelRef = ref
		if err := p.chats.Update(ctx, existing); err != nil {
			slog.Warn("Failed to update placeholder chat session",
				slog.String("type", "chat"),
				slog.String("trade_id", trade.TradeID),
				slog.Any("error", err))
		}
		return
	}

	chat := &models.ChatSession{
		TradeID:      trade.ID,
		ChannelRef:   ref,
		Participants: []string{trade.InitiatorID, trade.ReceiverID},
	}
	if err := p.chats.Create(ctx, chat); err != nil {
		slog.Warn("Failed to create chat session record",
			slog.String("type", "chat"),
			slog.String("trade_id", trade.TradeID),
			slog.Any("error", err))
	}
}

// dedupeChatSessions converges on exactly one chat session row per trade.
// Retries and double-taps are expected to leave duplicates behind because
// steps are not transactional across stores.
func (p *Provisioner) dedupeChatSessions(ctx context.Context, tradeID int64) {
	rows, err := p.chats.ListByTradeID(ctx, tradeID)
	if err != nil {
		slog.Warn("Failed to list chat sessions for dedup",
			slog.String("type", "chat"),
			slog.Int64("trade_id", tradeID),
			slog.Any("error", err))
		return
	}
	if len(rows) <= 1 {
		return
	}

	keep := pickAuthoritative(rows)
	removed := 0
	for _, row := range rows {
		if row.ID == keep.ID {
			continue
		}
		if err := p.chats.Delete(ctx, row.ID); err != nil {
			slog.Warn("Failed to delete duplicate chat session",
				slog.String("type", "chat"),
				slog.Int64("chat_session_id", row.ID),
				slog.Any("error", err))
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Removed duplicate chat sessions",
			slog.String("type", "chat"),
			slog.Int64("trade_id", tradeID),
			slog.Int("removed", removed))
	}
}

// pickAuthoritative prefers the newest row with a backend-assigned channel,
// falling back to the newest row overall.
func pickAuthoritative(rows []*models.ChatSession) *models.ChatSession {
	var keep *models.ChatSession
	for _, row := range rows {
		if messaging.IsPlaceholder(row.ChannelRef) {
			continue
		}
		if keep == nil || row.CreatedAt.After(keep.CreatedAt) {
			keep = row
		}
	}
	if keep != nil {
		return keep
	}
	keep = rows[0]
	for _, row := range rows[1:] {
		if row.CreatedAt.After(keep.CreatedAt) {
			keep = row
		}
	}
	return keep
}
