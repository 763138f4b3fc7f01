package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/thong1990/t3turbo-sub000/trading/matching"
	"github.com/thong1990/t3turbo-sub000/trading/messaging"
	msgmock "github.com/thong1990/t3turbo-sub000/trading/messaging/mock"
	storemock "github.com/thong1990/t3turbo-sub000/trading/session/mock"
)

const (
	initiator = "user-1"
	receiver  = "user-2"
)

func proposal() *matching.TradeProposal {
	return &matching.TradeProposal{
		PartnerID:  receiver,
		RarityTier: "d1",
		CardsIGive: []*models.Card{{ID: 1, Rarity: "d1"}},
		CardsIWant: []*models.Card{{ID: 2, Rarity: "d1"}},
	}
}

func TestProvisioner_CreateTradeSession(t *testing.T) {
	const channelRef = "sendbird_group_channel_42"

	tests := []struct {
		name      string
		initiator string
		partner   string
		setup     func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient)
		wantErr   error
		check     func(t *testing.T, trade *models.TradeSession)
	}{
		{
			name:      "empty initiator is rejected before any store call",
			initiator: "",
			partner:   receiver,
			setup:     func(*storemock.MockTradeStore, *storemock.MockChatStore, *msgmock.MockClient) {},
			wantErr:   ErrEmptyParticipant,
		},
		{
			name:      "self trade is rejected before any store call",
			initiator: initiator,
			partner:   initiator,
			setup:     func(*storemock.MockTradeStore, *storemock.MockChatStore, *msgmock.MockClient) {},
			wantErr:   ErrSameParticipant,
		},
		{
			name:      "session row failure is fatal",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:      "line item failure is fatal",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, trade *models.TradeSession) error {
						trade.ID = 7
						return nil
					})
				trades.EXPECT().AddLineItems(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:      "happy path links channel and chat session",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, trade *models.TradeSession) error {
						if trade.TradeID == "" {
							t.Error("Create called without a trade id")
						}
						if trade.InitiatorID != initiator || trade.ReceiverID != receiver {
							t.Errorf("Create called with participants %s/%s", trade.InitiatorID, trade.ReceiverID)
						}
						trade.ID = 7
						return nil
					})
				trades.EXPECT().AddLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, items []*models.TradeLineItem) error {
						if len(items) != 2 {
							t.Errorf("AddLineItems called with %d items, want 2", len(items))
							return nil
						}
						if items[0].OwnerID != initiator || items[1].OwnerID != receiver {
							t.Errorf("line item owners = %s/%s, want %s/%s", items[0].OwnerID, items[1].OwnerID, initiator, receiver)
						}
						return nil
					})
				messenger.EXPECT().CreateChannel(gomock.Any(), []string{initiator, receiver}, gomock.Any()).
					Return(channelRef, nil)
				trades.EXPECT().SetChannelRef(gomock.Any(), int64(7), channelRef).Return(nil)
				chats.EXPECT().GetActiveByTradeID(gomock.Any(), int64(7)).Return(nil, nil)
				chats.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, chat *models.ChatSession) error {
						if chat.ChannelRef != channelRef {
							t.Errorf("chat session channel ref = %q, want %q", chat.ChannelRef, channelRef)
						}
						if len(chat.Participants) != 2 {
							t.Errorf("chat session has %d participants, want 2", len(chat.Participants))
						}
						chat.ID = 11
						return nil
					})
				chats.EXPECT().ListByTradeID(gomock.Any(), int64(7)).
					Return([]*models.ChatSession{{ID: 11, TradeID: 7, ChannelRef: channelRef}}, nil)
			},
			check: func(t *testing.T, trade *models.TradeSession) {
				if trade.ChannelRef != channelRef {
					t.Errorf("trade channel ref = %q, want %q", trade.ChannelRef, channelRef)
				}
			},
		},
		{
			name:      "channel failure degrades to placeholder chat session",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, trade *models.TradeSession) error {
						trade.ID = 7
						return nil
					})
				trades.EXPECT().AddLineItems(gomock.Any(), gomock.Any()).Return(nil)
				messenger.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("backend down"))
				chats.EXPECT().GetActiveByTradeID(gomock.Any(), int64(7)).Return(nil, nil)
				chats.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, chat *models.ChatSession) error {
						if !messaging.IsPlaceholder(chat.ChannelRef) || !strings.HasPrefix(chat.ChannelRef, "pending-trade-") {
							t.Errorf("chat session channel ref = %q, want a placeholder", chat.ChannelRef)
						}
						return nil
					})
				chats.EXPECT().ListByTradeID(gomock.Any(), int64(7)).
					Return([]*models.ChatSession{{ID: 11, TradeID: 7}}, nil)
			},
			check: func(t *testing.T, trade *models.TradeSession) {
				if trade.ChannelRef != "" {
					t.Errorf("trade channel ref = %q, want empty after channel failure", trade.ChannelRef)
				}
			},
		},
		{
			name:      "channel link failure is tolerated",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, trade *models.TradeSession) error {
						trade.ID = 7
						return nil
					})
				trades.EXPECT().AddLineItems(gomock.Any(), gomock.Any()).Return(nil)
				messenger.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(channelRef, nil)
				trades.EXPECT().SetChannelRef(gomock.Any(), int64(7), channelRef).
					Return(errors.New("db down"))
				chats.EXPECT().GetActiveByTradeID(gomock.Any(), int64(7)).Return(nil, nil)
				chats.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				chats.EXPECT().ListByTradeID(gomock.Any(), int64(7)).
					Return([]*models.ChatSession{{ID: 11, TradeID: 7, ChannelRef: channelRef}}, nil)
			},
			check: func(t *testing.T, trade *models.TradeSession) {
				if trade.ChannelRef != "" {
					t.Errorf("trade channel ref = %q, want empty when linking failed", trade.ChannelRef)
				}
			},
		},
		{
			name:      "placeholder chat session is upgraded in place",
			initiator: initiator,
			partner:   receiver,
			setup: func(trades *storemock.MockTradeStore, chats *storemock.MockChatStore, messenger *msgmock.MockClient) {
				trades.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, trade *models.TradeSession) error {
						trade.ID = 7
						return nil
					})
				trades.EXPECT().AddLineItems(gomock.Any(), gomock.Any()).Return(nil)
				messenger.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(channelRef, nil)
				trades.EXPECT().SetChannelRef(gomock.Any(), int64(7), channelRef).Return(nil)
				chats.EXPECT().GetActiveByTradeID(gomock.Any(), int64(7)).
					Return(&models.ChatSession{ID: 11, TradeID: 7, ChannelRef: "pending-trade-old"}, nil)
				chats.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, chat *models.ChatSession) error {
						if chat.ID != 11 || chat.ChannelRef != channelRef {
							t.Errorf("Update called with id %d ref %q, want 11 %q", chat.ID, chat.ChannelRef, channelRef)
						}
						return nil
					})
				chats.EXPECT().ListByTradeID(gomock.Any(), int64(7)).
					Return([]*models.ChatSession{{ID: 11, TradeID: 7, ChannelRef: channelRef}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			trades := storemock.NewMockTradeStore(ctrl)
			chats := storemock.NewMockChatStore(ctrl)
			messenger := msgmock.NewMockClient(ctrl)
			tt.setup(trades, chats, messenger)

			p := NewProvisioner(trades, chats, messenger)
			prop := proposal()
			prop.PartnerID = tt.partner

			trade, err := p.CreateTradeSession(context.Background(), prop, tt.initiator)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("CreateTradeSession() expected error, got nil")
				}
				if errors.Is(tt.wantErr, ErrEmptyParticipant) || errors.Is(tt.wantErr, ErrSameParticipant) {
					if !errors.Is(err, tt.wantErr) {
						t.Fatalf("CreateTradeSession() error = %v, want %v", err, tt.wantErr)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateTradeSession() error = %v", err)
			}
			if trade.ID != 7 {
				t.Errorf("trade id = %d, want 7", trade.ID)
			}
			if tt.check != nil {
				tt.check(t, trade)
			}
		})
	}
}

func TestProvisioner_DedupeChatSessions(t *testing.T) {
	t0 := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	trades := storemock.NewMockTradeStore(ctrl)
	chats := storemock.NewMockChatStore(ctrl)
	messenger := msgmock.NewMockClient(ctrl)

	rows := []*models.ChatSession{
		{ID: 11, TradeID: 7, ChannelRef: "pending-trade-abc", CreatedAt: t0},
		{ID: 12, TradeID: 7, ChannelRef: "sendbird_group_channel_42", CreatedAt: t0.Add(time.Minute)},
		{ID: 13, TradeID: 7, ChannelRef: "pending-trade-abc", CreatedAt: t0.Add(2 * time.Minute)},
	}
	chats.EXPECT().ListByTradeID(gomock.Any(), int64(7)).Return(rows, nil)
	chats.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
	chats.EXPECT().Delete(gomock.Any(), int64(13)).Return(nil)

	p := NewProvisioner(trades, chats, messenger)
	p.dedupeChatSessions(context.Background(), 7)
}

func TestPickAuthoritative(t *testing.T) {
	t0 := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rows []*models.ChatSession
		want int64
	}{
		{
			name: "real channel beats newer placeholder",
			rows: []*models.ChatSession{
				{ID: 1, ChannelRef: "sendbird_group_channel_1", CreatedAt: t0},
				{ID: 2, ChannelRef: "pending-trade-abc", CreatedAt: t0.Add(time.Hour)},
			},
			want: 1,
		},
		{
			name: "newest real channel wins",
			rows: []*models.ChatSession{
				{ID: 1, ChannelRef: "sendbird_group_channel_1", CreatedAt: t0},
				{ID: 2, ChannelRef: "sendbird_group_channel_2", CreatedAt: t0.Add(time.Hour)},
			},
			want: 2,
		},
		{
			name: "all placeholders keeps the newest",
			rows: []*models.ChatSession{
				{ID: 1, ChannelRef: "pending-trade-abc", CreatedAt: t0},
				{ID: 2, ChannelRef: "", CreatedAt: t0.Add(time.Hour)},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickAuthoritative(tt.rows); got.ID != tt.want {
				t.Errorf("pickAuthoritative() kept id %d, want %d", got.ID, tt.want)
			}
		})
	}
}
